package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

const resumeLinkTTL = time.Hour

type profileUsecase struct {
	candidateRepo domain.CandidateRepository
	employerRepo  domain.EmployerRepository
	store         storage.ObjectStore
	validate      *validator.Validate
}

func NewProfileUsecase(candidateRepo domain.CandidateRepository, employerRepo domain.EmployerRepository, store storage.ObjectStore, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		candidateRepo: candidateRepo,
		employerRepo:  employerRepo,
		store:         store,
		validate:      validate,
	}
}

// GetProfile dispatches on the caller's role and returns the role-shaped
// profile view.
func (u *profileUsecase) GetProfile(ctx context.Context, user *domain.User) (interface{}, error) {
	switch user.Role {
	case domain.RoleCandidate:
		return u.candidateView(ctx, user)
	case domain.RoleEmployer:
		return u.employerView(ctx, user)
	default:
		return nil, apperror.Forbidden("No profile exists for this account type")
	}
}

func (u *profileUsecase) candidateView(ctx context.Context, user *domain.User) (*domain.CandidateProfileView, error) {
	details, err := u.candidateRepo.GetDetails(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, apperror.Internal(err)
	}

	p := details.Profile
	view := &domain.CandidateProfileView{
		ID:       p.ID,
		Name:     user.FullName(),
		Email:    user.Email,
		Phone:    p.Phone,
		Headline: p.Headline,
		About:    p.About,
		SocialLinks: map[string]string{
			"linkedin":  p.LinkedinURL,
			"github":    p.GithubURL,
			"portfolio": p.PortfolioURL,
		},
		IsVerified:     p.IsVerified,
		Skills:         details.Skills,
		Education:      details.Education,
		Certifications: details.Certifications,
		Address:        details.Address,
	}

	if p.ProfilePicturePath != nil {
		url := u.store.PublicURL(*p.ProfilePicturePath)
		view.PictureURL = &url
	}
	if p.ResumePath != nil {
		// Resumes are private objects, so the view carries a short-lived link.
		url, err := u.store.PresignGet(ctx, *p.ResumePath, resumeLinkTTL)
		if err != nil {
			logger.Log.Warn("failed to presign resume link", "user_id", user.ID, "error", err)
		} else {
			view.ResumeURL = &url
		}
	}

	return view, nil
}

func (u *profileUsecase) employerView(ctx context.Context, user *domain.User) (*domain.EmployerProfileView, error) {
	p, err := u.employerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}

	view := &domain.EmployerProfileView{
		ID:          p.ID,
		CompanyName: p.CompanyName,
		Description: p.Description,
		Industry:    p.Industry,
		Website:     p.Website,
		IsVerified:  p.IsVerified,
		Email:       user.Email,
	}
	if p.LogoPath != nil {
		url := u.store.PublicURL(*p.LogoPath)
		view.LogoURL = &url
	}
	return view, nil
}

// UpdateCandidateProfile validates nested dates, applies the write, and
// returns the fresh view. Each non-nil collection fully replaces the stored
// rows.
func (u *profileUsecase) UpdateCandidateProfile(ctx context.Context, user *domain.User, upd *domain.CandidateUpdate) (interface{}, error) {
	if !user.IsCandidate() {
		return nil, apperror.Forbidden("Only candidates can update a candidate profile")
	}

	// Multipart uploads bypass gin's binding validation, so required fields
	// are re-checked here.
	for i, s := range upd.Skills {
		if err := u.validate.Var(s.Name, "required"); err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("skills[%d]: name is required", i))
		}
	}
	for i, e := range upd.Education {
		if err := u.validate.Var(e.Institution, "required"); err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("education[%d]: institution is required", i))
		}
		if err := u.validate.Var(e.StartDate, "required"); err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("education[%d]: start date is required", i))
		}
		if err := validateDateRange(e.StartDate, e.EndDate); err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("education[%d]: %s", i, err.Error()))
		}
	}
	for i, c := range upd.Certifications {
		if err := u.validate.Var(c.Name, "required"); err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("certifications[%d]: name is required", i))
		}
		if err := validateDateRange(c.IssueDate, c.ExpiryDate); err != nil {
			return nil, apperror.BadRequest(fmt.Sprintf("certifications[%d]: %s", i, err.Error()))
		}
	}

	if err := u.candidateRepo.UpdateDetails(ctx, user.ID, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, apperror.Internal(err)
	}

	return u.candidateView(ctx, user)
}

func (u *profileUsecase) UpdateEmployerProfile(ctx context.Context, user *domain.User, upd *domain.EmployerUpdate) (interface{}, error) {
	if !user.IsEmployer() {
		return nil, apperror.Forbidden("Only employers can update an employer profile")
	}

	if err := u.employerRepo.Update(ctx, user.ID, upd); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}

	return u.employerView(ctx, user)
}

// validateDateRange checks YYYY-MM-DD dates and rejects an end date before
// the start. Either date may be empty.
func validateDateRange(start, end string) error {
	var startT, endT time.Time
	var err error

	if start != "" {
		startT, err = time.Parse("2006-01-02", start)
		if err != nil {
			return errors.New("start date must be in YYYY-MM-DD format")
		}
	}
	if end != "" {
		endT, err = time.Parse("2006-01-02", end)
		if err != nil {
			return errors.New("end date must be in YYYY-MM-DD format")
		}
	}
	if start != "" && end != "" && endT.Before(startT) {
		return errors.New("end date cannot be before start date")
	}
	return nil
}
