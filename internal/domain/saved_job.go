package domain

import (
	"context"
	"time"
)

type SavedJob struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"-"`
	JobID       int64     `json:"job_id"`
	CreatedAt   time.Time `json:"saved_at"`

	// Joined display fields
	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

type SavedJobRepository interface {
	// Save is idempotent: saving an already-saved job is a no-op.
	Save(ctx context.Context, candidateID, jobID int64) error
	Unsave(ctx context.Context, candidateID, jobID int64) error
	FetchByCandidateID(ctx context.Context, candidateID int64) ([]SavedJob, error)
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, user *User, jobID int64) error
	UnsaveJob(ctx context.Context, user *User, jobID int64) error
	ListSavedJobs(ctx context.Context, user *User) ([]SavedJob, error)
}
