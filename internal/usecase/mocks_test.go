package usecase_test

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock repositories and collaborators shared by the usecase tests.

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) GetDetails(ctx context.Context, userID int64) (*domain.CandidateDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateDetails), args.Error(1)
}
func (m *MockCandidateRepo) UpdateDetails(ctx context.Context, userID int64, upd *domain.CandidateUpdate) error {
	return m.Called(ctx, userID, upd).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) Update(ctx context.Context, userID int64, upd *domain.EmployerUpdate) error {
	return m.Called(ctx, userID, upd).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}
func (m *MockJobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithCompany), args.Error(1)
}
func (m *MockJobRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobWithCompany), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.JobPosting, int64, error) {
	args := m.Called(ctx, employerID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.JobPosting), args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) FetchByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockNotificationRepo) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Save(ctx context.Context, candidateID, jobID int64) error {
	return m.Called(ctx, candidateID, jobID).Error(0)
}
func (m *MockSavedJobRepo) Unsave(ctx context.Context, candidateID, jobID int64) error {
	return m.Called(ctx, candidateID, jobID).Error(0)
}
func (m *MockSavedJobRepo) FetchByCandidateID(ctx context.Context, candidateID int64) ([]domain.SavedJob, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, r *domain.CompanyReview) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyReview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyReview), args.Error(1)
}
func (m *MockReviewRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.CompanyReview, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.CompanyReview), args.Get(1).(int64), args.Error(2)
}
func (m *MockReviewRepo) FetchByCompanyID(ctx context.Context, companyID int64) ([]domain.CompanyReview, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyReview), args.Error(1)
}
func (m *MockReviewRepo) Update(ctx context.Context, r *domain.CompanyReview) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockDashboardRepo struct {
	mock.Mock
}

func (m *MockDashboardRepo) CandidateStatusCounts(ctx context.Context, candidateID int64) (*domain.ApplicationStatusCounts, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStatusCounts), args.Error(1)
}
func (m *MockDashboardRepo) RecentApplications(ctx context.Context, candidateID int64, limit int) ([]domain.RecentApplication, error) {
	args := m.Called(ctx, candidateID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentApplication), args.Error(1)
}
func (m *MockDashboardRepo) NotificationCounts(ctx context.Context, userID int64) (*domain.NotificationCounts, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationCounts), args.Error(1)
}
func (m *MockDashboardRepo) RecentNotifications(ctx context.Context, userID int64, limit int) ([]domain.RecentNotification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentNotification), args.Error(1)
}
func (m *MockDashboardRepo) SavedJobsCount(ctx context.Context, candidateID int64) (int64, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockDashboardRepo) RecentSavedJobs(ctx context.Context, candidateID int64, limit int) ([]domain.RecentSavedJob, error) {
	args := m.Called(ctx, candidateID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentSavedJob), args.Error(1)
}
func (m *MockDashboardRepo) JobStatusCounts(ctx context.Context, employerID int64) (*domain.JobStatusCounts, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobStatusCounts), args.Error(1)
}
func (m *MockDashboardRepo) EmployerApplicationCounts(ctx context.Context, employerID int64) (*domain.EmployerApplicationCounts, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerApplicationCounts), args.Error(1)
}
func (m *MockDashboardRepo) ExpiringJobsCount(ctx context.Context, employerID int64, before time.Time) (int64, error) {
	args := m.Called(ctx, employerID, before)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockDashboardRepo) ReviewStats(ctx context.Context, companyID int64) (*domain.ReviewStats, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewStats), args.Error(1)
}
func (m *MockDashboardRepo) ApplicationStatusHistogram(ctx context.Context, employerID int64) (map[string]int64, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
func (m *MockDashboardRepo) RecentEmployerApplications(ctx context.Context, employerID int64, limit int) ([]domain.EmployerRecentApplication, error) {
	args := m.Called(ctx, employerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployerRecentApplication), args.Error(1)
}
func (m *MockDashboardRepo) TopJobsByApplications(ctx context.Context, employerID int64, limit int) ([]domain.JobApplicationCount, error) {
	args := m.Called(ctx, employerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplicationCount), args.Error(1)
}

// MockObjectStore stands in for S3 so uploads and presigned links can be
// asserted without a bucket.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return m.Called(ctx, key, data, contentType).Error(0)
}
func (m *MockObjectStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	args := m.Called(ctx, key, expires)
	return args.String(0), args.Error(1)
}
func (m *MockObjectStore) PublicURL(key string) string {
	return m.Called(key).String(0)
}
