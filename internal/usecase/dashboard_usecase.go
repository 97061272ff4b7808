package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"
)

const (
	recentCandidateItems = 5
	recentEmployerItems  = 10
	topJobsLimit         = 5
	expiringWindow       = 7 * 24 * time.Hour

	// Profile completeness: a role profile is worth 85%, a bare account 10%.
	completenessWithProfile = 85
	completenessAccountOnly = 10
)

type dashboardUsecase struct {
	dashboardRepo domain.DashboardRepository
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	store         storage.ObjectStore
}

func NewDashboardUsecase(
	dashboardRepo domain.DashboardRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
	store storage.ObjectStore,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		dashboardRepo: dashboardRepo,
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		store:         store,
	}
}

// GetDashboard dispatches on role. A missing role profile returns a payload
// with status "profile_not_found" instead of an error, so the landing view
// can render an onboarding prompt.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, user *domain.User) (interface{}, error) {
	switch user.Role {
	case domain.RoleCandidate:
		return u.candidateDashboard(ctx, user)
	case domain.RoleEmployer:
		return u.employerDashboard(ctx, user)
	default:
		return map[string]string{"status": "unsupported_role"}, nil
	}
}

func (u *dashboardUsecase) candidateDashboard(ctx context.Context, user *domain.User) (*domain.CandidateDashboard, error) {
	d := &domain.CandidateDashboard{Status: "active"}
	d.Profile.Name = user.FullName()
	d.Profile.Completeness = completenessAccountOnly
	d.RecentApplications = []domain.RecentApplication{}
	d.RecentNotifications = []domain.RecentNotification{}
	d.SavedJobs = []domain.RecentSavedJob{}

	profile, err := u.candidateRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	if profile != nil {
		d.Profile.Headline = profile.Headline
		d.Profile.Completeness = completenessWithProfile
		if profile.ProfilePicturePath != nil {
			url := u.store.PublicURL(*profile.ProfilePicturePath)
			d.Profile.Avatar = &url
		}

		counts, err := u.dashboardRepo.CandidateStatusCounts(ctx, user.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		d.Stats.Applications = *counts

		recent, err := u.dashboardRepo.RecentApplications(ctx, user.ID, recentCandidateItems)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for i := range recent {
			recent[i].LogoURL = u.publicURLPtr(recent[i].LogoURL)
		}
		d.RecentApplications = recent

		savedCount, err := u.dashboardRepo.SavedJobsCount(ctx, user.ID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		d.Stats.SavedJobs = savedCount

		saved, err := u.dashboardRepo.RecentSavedJobs(ctx, user.ID, recentCandidateItems)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		for i := range saved {
			saved[i].LogoURL = u.publicURLPtr(saved[i].LogoURL)
		}
		d.SavedJobs = saved
	}

	// Notifications are keyed by user, so they render without a profile.
	nc, err := u.dashboardRepo.NotificationCounts(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.Stats.Notifications = *nc

	notifications, err := u.dashboardRepo.RecentNotifications(ctx, user.ID, recentCandidateItems)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.RecentNotifications = notifications

	return d, nil
}

func (u *dashboardUsecase) employerDashboard(ctx context.Context, user *domain.User) (interface{}, error) {
	profile, err := u.employerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return map[string]string{"status": "profile_not_found"}, nil
		}
		return nil, apperror.Internal(err)
	}

	d := &domain.EmployerDashboard{Status: "active"}
	d.Company.Name = profile.CompanyName
	d.Company.Industry = profile.Industry
	d.Company.IsVerified = profile.IsVerified
	d.Company.LogoURL = u.publicURLPtr(profile.LogoPath)
	d.RecentApplications = []domain.EmployerRecentApplication{}
	d.TopJobs = []domain.JobApplicationCount{}

	jobCounts, err := u.dashboardRepo.JobStatusCounts(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.Stats.Jobs = *jobCounts

	appCounts, err := u.dashboardRepo.EmployerApplicationCounts(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.Stats.Applications = *appCounts

	expiring, err := u.dashboardRepo.ExpiringJobsCount(ctx, profile.ID, time.Now().Add(expiringWindow))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.Stats.ExpiringSoon = expiring

	nc, err := u.dashboardRepo.NotificationCounts(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.Stats.UnreadCount = nc.Unread

	reviews, err := u.dashboardRepo.ReviewStats(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.Stats.Reviews = *reviews

	histogram, err := u.dashboardRepo.ApplicationStatusHistogram(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.Stats.StatusCounts = histogram

	recent, err := u.dashboardRepo.RecentEmployerApplications(ctx, profile.ID, recentEmployerItems)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.RecentApplications = recent

	topJobs, err := u.dashboardRepo.TopJobsByApplications(ctx, profile.ID, topJobsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	d.TopJobs = topJobs

	return d, nil
}

func (u *dashboardUsecase) publicURLPtr(path *string) *string {
	if path == nil {
		return nil
	}
	url := u.store.PublicURL(*path)
	return &url
}
