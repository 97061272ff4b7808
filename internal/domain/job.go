package domain

import (
	"context"
	"time"
)

// Job posting lifecycle statuses. Only an ACTIVE posting with the active flag
// set accepts applications.
const (
	JobStatusDraft  = "DRAFT"
	JobStatusActive = "ACTIVE"
	JobStatusClosed = "CLOSED"
)

type JobPosting struct {
	ID               int64      `json:"id"`
	EmployerID       int64      `json:"employer_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Status           string     `json:"status"`
	EmploymentType   string     `json:"employment_type"`
	JobType          string     `json:"job_type"`
	ExperienceLevel  string     `json:"experience_level"`
	SalaryMin        float64    `json:"salary_min"`
	SalaryMax        float64    `json:"salary_max"`
	Deadline         *time.Time `json:"deadline"`
	IsActive         bool       `json:"is_active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// AcceptsApplications reports whether the posting is open for candidates.
func (j *JobPosting) AcceptsApplications() bool {
	return j.Status == JobStatusActive && j.IsActive
}

// JobWithCompany extends a posting with employer display fields for
// public listings.
type JobWithCompany struct {
	JobPosting
	CompanyName    string  `json:"company_name"`
	CompanyLogoURL *string `json:"company_logo_url"`
	Industry       *string `json:"industry"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobPosting) error
	GetByID(ctx context.Context, id int64) (*JobPosting, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobWithCompany, error)
	// FetchPublicActive returns only ACTIVE postings with the active flag set.
	FetchPublicActive(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]JobPosting, int64, error)
	Update(ctx context.Context, job *JobPosting) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID int64, job *JobPosting) error
	GetJobDetails(ctx context.Context, user *User, id int64) (*JobWithCompany, error)
	ListPublicJobs(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListEmployerJobs(ctx context.Context, userID int64, page, pageSize int) ([]JobPosting, int64, error)
	// UpdateJob applies the new field values; a nil isActive keeps the
	// stored active flag, mirroring how a blank status is preserved.
	UpdateJob(ctx context.Context, userID int64, job *JobPosting, isActive *bool) error
	DeleteJob(ctx context.Context, userID int64, id int64) error
}
