package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type applyFixture struct {
	appRepo       *MockApplicationRepo
	jobRepo       *MockJobRepo
	candidateRepo *MockCandidateRepo
	employerRepo  *MockEmployerRepo
	notifRepo     *MockNotificationRepo
	store         *MockObjectStore
	uc            domain.ApplicationUsecase
}

func newApplyFixture() *applyFixture {
	f := &applyFixture{
		appRepo:       new(MockApplicationRepo),
		jobRepo:       new(MockJobRepo),
		candidateRepo: new(MockCandidateRepo),
		employerRepo:  new(MockEmployerRepo),
		notifRepo:     new(MockNotificationRepo),
		store:         new(MockObjectStore),
	}
	notifUC := usecase.NewNotificationUsecase(f.notifRepo)
	f.uc = usecase.NewApplicationUsecase(f.appRepo, f.jobRepo, f.candidateRepo, f.employerRepo, notifUC, f.store)
	return f
}

var (
	testCandidate = &domain.User{ID: 10, Email: "jane@example.com", FirstName: "Jane", LastName: "Doe", Role: domain.RoleCandidate, IsActive: true}
	testEmployer  = &domain.User{ID: 20, Email: "acme@example.com", Role: domain.RoleEmployer, IsActive: true}
)

func openJob() *domain.JobPosting {
	return &domain.JobPosting{
		ID:         3,
		EmployerID: 5,
		Title:      "Backend Engineer",
		Status:     domain.JobStatusActive,
		IsActive:   true,
	}
}

func TestApplyPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non-candidates", func(t *testing.T) {
		f := newApplyFixture()
		_, err := f.uc.Apply(ctx, testEmployer, domain.ApplyInput{JobID: 3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates")
	})

	t.Run("Should require a candidate profile", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{JobID: 3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "candidate profile")
		f.jobRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should reject jobs not accepting applications", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(&domain.CandidateProfile{ID: 1, UserID: 10}, nil)

		closed := openJob()
		closed.Status = domain.JobStatusClosed
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(closed, nil)

		_, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{JobID: 3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not accepting applications")
	})

	t.Run("Should reject a posting with the active flag cleared", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(&domain.CandidateProfile{ID: 1, UserID: 10}, nil)

		flagged := openJob()
		flagged.IsActive = false
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(flagged, nil)

		_, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{JobID: 3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not accepting applications")
	})

	t.Run("Should reject a second application to the same job", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(&domain.CandidateProfile{ID: 1, UserID: 10}, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.appRepo.On("Exists", ctx, int64(3), int64(10)).Return(true, nil)

		_, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{JobID: 3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
		f.appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject an oversize resume before touching storage", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(&domain.CandidateProfile{ID: 1, UserID: 10}, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.appRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil)

		_, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{
			JobID:      3,
			ResumeName: "resume.pdf",
			ResumeData: make([]byte, upload.MaxResumeSize+1),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "maximum size")
		f.store.AssertNotCalled(t, "Put")
	})

	t.Run("Should map a storage-level duplicate to the same error", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(&domain.CandidateProfile{ID: 1, UserID: 10}, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.appRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil)
		f.appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(domain.ErrDuplicate)

		_, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{JobID: 3})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})
}

func TestApplySuccess(t *testing.T) {
	ctx := context.Background()
	// Minimal but magic-byte-valid PDF payload
	resume := []byte("%PDF-1.4 test resume body")

	t.Run("Should upload the resume and create a PENDING application", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(&domain.CandidateProfile{ID: 1, UserID: 10}, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.appRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil)
		f.store.On("Put", ctx, mock.AnythingOfType("string"), resume, "application/pdf").Return(nil)

		f.appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			app.ID = 99
			assert.Equal(t, domain.ApplicationStatusPending, app.Status)
			assert.NotNil(t, app.ResumePath)
		})
		f.employerRepo.On("GetByID", ctx, int64(5)).Return(&domain.EmployerProfile{ID: 5, UserID: 20}, nil)
		f.notifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Twice()

		app, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{
			JobID:       3,
			CoverLetter: "I would like to apply.",
			ResumeName:  "resume.pdf",
			ResumeData:  resume,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(99), app.ID)
		f.notifRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("Should not abort when notification creation fails", func(t *testing.T) {
		f := newApplyFixture()
		f.candidateRepo.On("GetByUserID", ctx, int64(10)).Return(&domain.CandidateProfile{ID: 1, UserID: 10}, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.appRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil)
		f.appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		f.employerRepo.On("GetByID", ctx, int64(5)).Return(&domain.EmployerProfile{ID: 5, UserID: 20}, nil)
		f.notifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(errors.New("notifications table is down"))

		app, err := f.uc.Apply(ctx, testCandidate, domain.ApplyInput{JobID: 3, CoverLetter: "hello"})
		assert.NoError(t, err)
		assert.NotNil(t, app)
	})
}

func TestDownloadResume(t *testing.T) {
	ctx := context.Background()
	resumeKey := "resumes/2026/8/31/abc.pdf"
	applicantName := "Jane Doe"

	storedApp := &domain.Application{
		ID:            99,
		JobID:         3,
		CandidateID:   10,
		ResumePath:    &resumeKey,
		CandidateName: &applicantName,
	}

	t.Run("Should presign a one hour link for the owning employer", func(t *testing.T) {
		f := newApplyFixture()
		f.appRepo.On("GetByID", ctx, int64(99)).Return(storedApp, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.employerRepo.On("GetByUserID", ctx, int64(20)).Return(&domain.EmployerProfile{ID: 5, UserID: 20}, nil)
		f.store.On("PresignGet", ctx, resumeKey, time.Hour).Return("https://bucket/signed", nil)

		download, err := f.uc.DownloadResume(ctx, testEmployer, 99)
		assert.NoError(t, err)
		assert.Equal(t, "https://bucket/signed", download.ResumeURL)
		assert.Equal(t, "Jane Doe", download.ApplicantName)
		assert.Equal(t, 3600, download.ExpiresIn)
	})

	t.Run("Should reject candidates", func(t *testing.T) {
		f := newApplyFixture()
		_, err := f.uc.DownloadResume(ctx, testCandidate, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only employers")
	})

	t.Run("Should reject an employer who does not own the job", func(t *testing.T) {
		f := newApplyFixture()
		f.appRepo.On("GetByID", ctx, int64(99)).Return(storedApp, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.employerRepo.On("GetByUserID", ctx, int64(20)).Return(&domain.EmployerProfile{ID: 77, UserID: 20}, nil)

		_, err := f.uc.DownloadResume(ctx, testEmployer, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not own")
		f.store.AssertNotCalled(t, "PresignGet")
	})

	t.Run("Should 404 when no resume was attached", func(t *testing.T) {
		f := newApplyFixture()
		bare := *storedApp
		bare.ResumePath = nil
		f.appRepo.On("GetByID", ctx, int64(99)).Return(&bare, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.employerRepo.On("GetByUserID", ctx, int64(20)).Return(&domain.EmployerProfile{ID: 5, UserID: 20}, nil)

		_, err := f.uc.DownloadResume(ctx, testEmployer, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "No resume")
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	jobTitle := "Backend Engineer"
	storedApp := &domain.Application{ID: 99, JobID: 3, CandidateID: 10, Status: domain.ApplicationStatusPending, JobTitle: &jobTitle}

	t.Run("Should update status and notify the candidate", func(t *testing.T) {
		f := newApplyFixture()
		f.appRepo.On("GetByID", ctx, int64(99)).Return(storedApp, nil)
		f.jobRepo.On("GetByID", ctx, int64(3)).Return(openJob(), nil)
		f.employerRepo.On("GetByUserID", ctx, int64(20)).Return(&domain.EmployerProfile{ID: 5, UserID: 20}, nil)
		f.appRepo.On("UpdateStatus", ctx, int64(99), domain.ApplicationStatusShortlisted).Return(nil)
		f.notifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Run(func(args mock.Arguments) {
			n := args.Get(1).(*domain.Notification)
			assert.Equal(t, int64(10), n.UserID)
			assert.Equal(t, domain.NotificationTypeStatus, n.Type)
		})

		err := f.uc.UpdateStatus(ctx, testEmployer, 99, domain.ApplicationStatusShortlisted)
		assert.NoError(t, err)
		f.notifRepo.AssertExpectations(t)
	})

	t.Run("Should reject an unknown status value", func(t *testing.T) {
		f := newApplyFixture()
		err := f.uc.UpdateStatus(ctx, testEmployer, 99, "ON_HOLD")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid application status")
	})
}
