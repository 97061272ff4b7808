package domain

import (
	"context"
	"time"
)

// ApplicationStatusCounts buckets a candidate's applications by status.
// The component buckets always sum to Total.
type ApplicationStatusCounts struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Reviewed    int64 `json:"reviewed"`
	Shortlisted int64 `json:"shortlisted"`
	Interview   int64 `json:"interview"`
	Rejected    int64 `json:"rejected"`
	Accepted    int64 `json:"accepted"`
}

type NotificationCounts struct {
	Unread int64 `json:"unread"`
	Total  int64 `json:"total"`
}

type RecentApplication struct {
	ID        int64     `json:"id"`
	JobTitle  string    `json:"job_title"`
	Company   string    `json:"company"`
	AppliedAt time.Time `json:"applied_at"`
	Status    string    `json:"status"`
	LogoURL   *string   `json:"logo_url"`
}

type RecentNotification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

type RecentSavedJob struct {
	ID       int64     `json:"id"`
	JobID    int64     `json:"job_id"`
	JobTitle string    `json:"job_title"`
	Company  string    `json:"company"`
	SavedAt  time.Time `json:"saved_at"`
	LogoURL  *string   `json:"logo_url"`
}

type CandidateDashboard struct {
	Status  string `json:"status"`
	Profile struct {
		Name         string  `json:"name"`
		Headline     string  `json:"headline"`
		Avatar       *string `json:"avatar"`
		Completeness int     `json:"completeness"`
	} `json:"profile"`
	Stats struct {
		Applications  ApplicationStatusCounts `json:"applications"`
		Notifications NotificationCounts      `json:"notifications"`
		SavedJobs     int64                   `json:"saved_jobs_count"`
	} `json:"stats"`
	RecentApplications  []RecentApplication  `json:"recent_applications"`
	RecentNotifications []RecentNotification `json:"recent_notifications"`
	SavedJobs           []RecentSavedJob     `json:"saved_jobs"`
}

type JobStatusCounts struct {
	Draft  int64 `json:"draft"`
	Active int64 `json:"active"`
	Closed int64 `json:"closed"`
	Total  int64 `json:"total"`
}

type EmployerApplicationCounts struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Shortlisted int64 `json:"shortlisted"`
}

type ReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	Count         int64   `json:"count"`
}

type EmployerRecentApplication struct {
	ID            int64     `json:"id"`
	CandidateName string    `json:"candidate_name"`
	JobTitle      string    `json:"job_title"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// JobApplicationCount ranks a posting by its count of active applications.
type JobApplicationCount struct {
	JobID        int64  `json:"job_id"`
	Title        string `json:"title"`
	Applications int64  `json:"applications"`
}

type EmployerDashboard struct {
	Status  string `json:"status"`
	Company struct {
		Name       string  `json:"name"`
		Industry   string  `json:"industry"`
		LogoURL    *string `json:"logo_url"`
		IsVerified bool    `json:"is_verified"`
	} `json:"company"`
	Stats struct {
		Jobs         JobStatusCounts           `json:"jobs"`
		Applications EmployerApplicationCounts `json:"applications"`
		ExpiringSoon int64                     `json:"jobs_expiring_soon"`
		UnreadCount  int64                     `json:"unread_notifications"`
		Reviews      ReviewStats               `json:"reviews"`
		StatusCounts map[string]int64          `json:"application_histogram"`
	} `json:"stats"`
	RecentApplications []EmployerRecentApplication `json:"recent_applications"`
	TopJobs            []JobApplicationCount       `json:"top_jobs"`
}

// DashboardRepository serves the read-only rollup queries behind the
// landing view. All methods are single SELECTs with no side effects.
type DashboardRepository interface {
	CandidateStatusCounts(ctx context.Context, candidateID int64) (*ApplicationStatusCounts, error)
	RecentApplications(ctx context.Context, candidateID int64, limit int) ([]RecentApplication, error)
	NotificationCounts(ctx context.Context, userID int64) (*NotificationCounts, error)
	RecentNotifications(ctx context.Context, userID int64, limit int) ([]RecentNotification, error)
	SavedJobsCount(ctx context.Context, candidateID int64) (int64, error)
	RecentSavedJobs(ctx context.Context, candidateID int64, limit int) ([]RecentSavedJob, error)

	JobStatusCounts(ctx context.Context, employerID int64) (*JobStatusCounts, error)
	EmployerApplicationCounts(ctx context.Context, employerID int64) (*EmployerApplicationCounts, error)
	ExpiringJobsCount(ctx context.Context, employerID int64, before time.Time) (int64, error)
	ReviewStats(ctx context.Context, companyID int64) (*ReviewStats, error)
	ApplicationStatusHistogram(ctx context.Context, employerID int64) (map[string]int64, error)
	RecentEmployerApplications(ctx context.Context, employerID int64, limit int) ([]EmployerRecentApplication, error)
	TopJobsByApplications(ctx context.Context, employerID int64, limit int) ([]JobApplicationCount, error)
}

type DashboardUsecase interface {
	// GetDashboard dispatches on the user's role; a missing role profile
	// yields a payload with status "profile_not_found" rather than an error.
	GetDashboard(ctx context.Context, user *User) (interface{}, error)
}
