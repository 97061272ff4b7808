package domain

import (
	"context"
	"time"
)

// Application status workflow:
// PENDING → REVIEWED → SHORTLISTED → INTERVIEW → ACCEPTED / REJECTED
const (
	ApplicationStatusPending     = "PENDING"
	ApplicationStatusReviewed    = "REVIEWED"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusInterview   = "INTERVIEW"
	ApplicationStatusAccepted    = "ACCEPTED"
	ApplicationStatusRejected    = "REJECTED"
)

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	CoverLetter string    `json:"cover_letter"`
	ResumePath  *string   `json:"-"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	IsActive    bool      `json:"is_active"`

	// Joined display fields for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company,omitempty"`
	CandidateName *string `json:"candidate_name,omitempty"`
}

type ApplyInput struct {
	JobID       int64
	CoverLetter string
	ResumeName  string
	ResumeData  []byte
}

type ResumeDownload struct {
	ResumeURL     string `json:"resume_url"`
	ApplicantName string `json:"applicant_name"`
	ExpiresIn     int    `json:"expires_in"`
}

type ApplicationRepository interface {
	// Create relies on the unique index on (job_id, candidate_id); a conflict
	// surfaces as ErrDuplicate.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	Exists(ctx context.Context, jobID, candidateID int64) (bool, error)
	FetchByCandidateID(ctx context.Context, candidateID int64) ([]Application, error)
	FetchByEmployerID(ctx context.Context, employerID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, user *User, in ApplyInput) (*Application, error)
	ListForUser(ctx context.Context, user *User) ([]Application, error)
	DownloadResume(ctx context.Context, user *User, applicationID int64) (*ResumeDownload, error)
	UpdateStatus(ctx context.Context, user *User, applicationID int64, status string) error
}
