package usecase

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/upload"
)

const resumeDownloadTTLSeconds = 3600

type applicationUsecase struct {
	appRepo       domain.ApplicationRepository
	jobRepo       domain.JobRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	notifications domain.NotificationUsecase
	store         storage.ObjectStore
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	notifications domain.NotificationUsecase,
	store storage.ObjectStore,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:       appRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		notifications: notifications,
		store:         store,
	}
}

// Apply submits a candidate's application. Preconditions run in a fixed
// order: role, candidate profile, job existence, job open, no duplicate,
// resume validity. Notifications after the insert are best-effort.
func (u *applicationUsecase) Apply(ctx context.Context, user *domain.User, in domain.ApplyInput) (*domain.Application, error) {
	if !user.IsCandidate() {
		return nil, apperror.Forbidden("Only candidates can apply to jobs")
	}

	if _, err := u.candidateRepo.GetByUserID(ctx, user.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Complete your candidate profile before applying")
		}
		return nil, apperror.Internal(err)
	}

	job, err := u.jobRepo.GetByID(ctx, in.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.AcceptsApplications() {
		return nil, apperror.BadRequest("This job is not accepting applications")
	}

	exists, err := u.appRepo.Exists(ctx, job.ID, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	var resumePath *string
	if len(in.ResumeData) > 0 {
		if err := upload.ValidateResume(in.ResumeName, in.ResumeData); err != nil {
			return nil, apperror.BadRequest(err.Error())
		}
		key := storage.NewObjectKey("resumes", in.ResumeName)
		contentType := mime.TypeByExtension(filepath.Ext(in.ResumeName))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if err := u.store.Put(ctx, key, in.ResumeData, contentType); err != nil {
			return nil, apperror.Internal(err)
		}
		resumePath = &key
	}

	app := &domain.Application{
		JobID:       job.ID,
		CandidateID: user.ID,
		CoverLetter: in.CoverLetter,
		ResumePath:  resumePath,
		Status:      domain.ApplicationStatusPending,
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	app.JobTitle = &job.Title

	// Both notifications are fire-and-forget: a failure here never rolls
	// back the submitted application.
	u.notifications.Notify(ctx, user.ID,
		"Application submitted",
		fmt.Sprintf("Your application for %q was submitted.", job.Title),
		domain.NotificationTypeApplication)

	if employer, err := u.employerRepo.GetByID(ctx, job.EmployerID); err == nil {
		u.notifications.Notify(ctx, employer.UserID,
			"New application received",
			fmt.Sprintf("%s applied for %q.", user.FullName(), job.Title),
			domain.NotificationTypeApplication)
	}

	return app, nil
}

// ListForUser returns the caller's applications: submitted ones for a
// candidate, received ones for an employer.
func (u *applicationUsecase) ListForUser(ctx context.Context, user *domain.User) ([]domain.Application, error) {
	switch user.Role {
	case domain.RoleCandidate:
		apps, err := u.appRepo.FetchByCandidateID(ctx, user.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return apps, nil
	case domain.RoleEmployer:
		profile, err := u.employerRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Employer profile not found")
			}
			return nil, apperror.Internal(err)
		}
		apps, err := u.appRepo.FetchByEmployerID(ctx, profile.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return apps, nil
	default:
		return nil, apperror.Forbidden("Applications are not available for this account type")
	}
}

// DownloadResume returns a presigned link to the application's resume.
// Employer-only, and the employer must own the job applied to.
func (u *applicationUsecase) DownloadResume(ctx context.Context, user *domain.User, applicationID int64) (*domain.ResumeDownload, error) {
	if !user.IsEmployer() {
		return nil, apperror.Forbidden("Only employers can download applicant resumes")
	}

	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	owned, err := u.ownsApplication(ctx, user.ID, app)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperror.Forbidden("You do not own the job for this application")
	}

	if app.ResumePath == nil {
		return nil, apperror.NotFound("No resume was attached to this application")
	}

	url, err := u.store.PresignGet(ctx, *app.ResumePath, resumeLinkTTL)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	name := ""
	if app.CandidateName != nil {
		name = *app.CandidateName
	}
	return &domain.ResumeDownload{
		ResumeURL:     url,
		ApplicantName: name,
		ExpiresIn:     resumeDownloadTTLSeconds,
	}, nil
}

// UpdateStatus moves an application through the review workflow. Only the
// employer owning the job may change it; the candidate is notified.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, user *domain.User, applicationID int64, status string) error {
	if !validApplicationStatus(status) {
		return apperror.BadRequest("Invalid application status")
	}

	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if !user.IsEmployer() {
		return apperror.Forbidden("Only employers can update application status")
	}
	owned, err := u.ownsApplication(ctx, user.ID, app)
	if err != nil {
		return err
	}
	if !owned {
		return apperror.Forbidden("You do not own the job for this application")
	}

	if err := u.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}

	title := "Application status updated"
	content := fmt.Sprintf("Your application is now %s.", status)
	if app.JobTitle != nil {
		content = fmt.Sprintf("Your application for %q is now %s.", *app.JobTitle, status)
	}
	u.notifications.Notify(ctx, app.CandidateID, title, content, domain.NotificationTypeStatus)

	return nil
}

func (u *applicationUsecase) ownsApplication(ctx context.Context, userID int64, app *domain.Application) (bool, error) {
	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, apperror.Internal(err)
	}
	return job.EmployerID == profile.ID, nil
}

func validApplicationStatus(status string) bool {
	switch status {
	case domain.ApplicationStatusPending,
		domain.ApplicationStatusReviewed,
		domain.ApplicationStatusShortlisted,
		domain.ApplicationStatusInterview,
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected:
		return true
	}
	return false
}
