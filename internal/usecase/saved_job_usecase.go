package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedJobRepo domain.SavedJobRepository
	jobRepo      domain.JobRepository
}

func NewSavedJobUsecase(savedJobRepo domain.SavedJobRepository, jobRepo domain.JobRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
	}
}

// SaveJob bookmarks a posting for later. Saving twice is a no-op.
func (u *savedJobUsecase) SaveJob(ctx context.Context, user *domain.User, jobID int64) error {
	if !user.IsCandidate() {
		return apperror.Forbidden("Only candidates can save jobs")
	}

	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := u.savedJobRepo.Save(ctx, user.ID, jobID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *savedJobUsecase) UnsaveJob(ctx context.Context, user *domain.User, jobID int64) error {
	if !user.IsCandidate() {
		return apperror.Forbidden("Only candidates can save jobs")
	}

	if err := u.savedJobRepo.Unsave(ctx, user.ID, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Saved job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *savedJobUsecase) ListSavedJobs(ctx context.Context, user *domain.User) ([]domain.SavedJob, error) {
	if !user.IsCandidate() {
		return nil, apperror.Forbidden("Only candidates can save jobs")
	}

	saved, err := u.savedJobRepo.FetchByCandidateID(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return saved, nil
}
