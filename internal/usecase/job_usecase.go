package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

// CreateJob resolves the caller's employer profile and validates the posting
// before persisting. New postings without a status start as DRAFT.
func (u *jobUsecase) CreateJob(ctx context.Context, userID int64, job *domain.JobPosting) error {
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Employer profile not found")
		}
		return apperror.Internal(err)
	}
	job.EmployerID = profile.ID

	if err := validateJob(job); err != nil {
		return err
	}
	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// GetJobDetails returns a posting with company data. Non-public postings
// (drafts, closed, deactivated) are visible only to the owning employer.
func (u *jobUsecase) GetJobDetails(ctx context.Context, user *domain.User, id int64) (*domain.JobWithCompany, error) {
	job, err := u.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	if job.AcceptsApplications() {
		return job, nil
	}

	owner, err := u.isOwner(ctx, user, job.EmployerID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListPublicJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithCompany, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchPublicActive(ctx, pageSize, offset)
}

func (u *jobUsecase) ListEmployerJobs(ctx context.Context, userID int64, page, pageSize int) ([]domain.JobPosting, int64, error) {
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, apperror.NotFound("Employer profile not found")
		}
		return nil, 0, apperror.Internal(err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByEmployerID(ctx, profile.ID, pageSize, offset)
}

// UpdateJob enforces ownership: only the employer who created the posting
// may change it. Fields the request omits (status, active flag) keep their
// stored values.
func (u *jobUsecase) UpdateJob(ctx context.Context, userID int64, job *domain.JobPosting, isActive *bool) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := u.requireOwner(ctx, userID, existing.EmployerID); err != nil {
		return err
	}

	if err := validateJob(job); err != nil {
		return err
	}
	if job.Status == "" {
		job.Status = existing.Status
	}
	if isActive == nil {
		job.IsActive = existing.IsActive
	} else {
		job.IsActive = *isActive
	}
	job.EmployerID = existing.EmployerID

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, userID int64, id int64) error {
	existing, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := u.requireOwner(ctx, userID, existing.EmployerID); err != nil {
		return err
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) isOwner(ctx context.Context, user *domain.User, employerID int64) (bool, error) {
	if user == nil || !user.IsEmployer() {
		return false, nil
	}
	profile, err := u.employerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, apperror.Internal(err)
	}
	return profile.ID == employerID, nil
}

func (u *jobUsecase) requireOwner(ctx context.Context, userID, employerID int64) error {
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.Forbidden("You do not own this job posting")
		}
		return apperror.Internal(err)
	}
	if profile.ID != employerID {
		return apperror.Forbidden("You do not own this job posting")
	}
	return nil
}

// validateJob reports the first missing or inconsistent field.
func validateJob(job *domain.JobPosting) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if len(job.Requirements) == 0 {
		return apperror.BadRequest("Requirements are required")
	}
	if len(job.Responsibilities) == 0 {
		return apperror.BadRequest("Responsibilities are required")
	}
	if job.SalaryMin < 0 || job.SalaryMax < 0 {
		return apperror.BadRequest("Salary cannot be negative")
	}
	if job.SalaryMax > 0 && job.SalaryMin > job.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	switch job.Status {
	case "", domain.JobStatusDraft, domain.JobStatusActive, domain.JobStatusClosed:
	default:
		return apperror.BadRequest("Status must be DRAFT, ACTIVE or CLOSED")
	}
	return nil
}
