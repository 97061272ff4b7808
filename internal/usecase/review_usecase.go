package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type reviewUsecase struct {
	reviewRepo   domain.ReviewRepository
	employerRepo domain.EmployerRepository
}

func NewReviewUsecase(reviewRepo domain.ReviewRepository, employerRepo domain.EmployerRepository) domain.ReviewUsecase {
	return &reviewUsecase{
		reviewRepo:   reviewRepo,
		employerRepo: employerRepo,
	}
}

// CreateReview lets a candidate rate a company. Rating is a 1-5 integer.
func (u *reviewUsecase) CreateReview(ctx context.Context, user *domain.User, r *domain.CompanyReview) error {
	if !user.IsCandidate() {
		return apperror.Forbidden("Only candidates can review companies")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return apperror.BadRequest("Rating must be between 1 and 5")
	}

	if _, err := u.employerRepo.GetByID(ctx, r.CompanyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}

	r.ReviewerID = user.ID
	if err := u.reviewRepo.Create(ctx, r); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *reviewUsecase) GetReview(ctx context.Context, id int64) (*domain.CompanyReview, error) {
	r, err := u.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Review not found")
		}
		return nil, apperror.Internal(err)
	}
	return r, nil
}

func (u *reviewUsecase) ListReviews(ctx context.Context, page, pageSize int) ([]domain.CompanyReview, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	reviews, total, err := u.reviewRepo.Fetch(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return reviews, total, nil
}

// ListCompanyReviews returns the reviews of the calling employer's company.
func (u *reviewUsecase) ListCompanyReviews(ctx context.Context, user *domain.User) ([]domain.CompanyReview, error) {
	if !user.IsEmployer() {
		return nil, apperror.Forbidden("Only employers can list their company reviews")
	}
	profile, err := u.employerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}

	reviews, err := u.reviewRepo.FetchByCompanyID(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}

// UpdateReview edits a review. Only its author may change it.
func (u *reviewUsecase) UpdateReview(ctx context.Context, user *domain.User, r *domain.CompanyReview) error {
	if r.Rating < 1 || r.Rating > 5 {
		return apperror.BadRequest("Rating must be between 1 and 5")
	}

	existing, err := u.reviewRepo.GetByID(ctx, r.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Review not found")
		}
		return apperror.Internal(err)
	}
	if existing.ReviewerID != user.ID {
		return apperror.Forbidden("You can only edit your own reviews")
	}

	if err := u.reviewRepo.Update(ctx, r); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteReview removes a review. The author or an admin may delete it.
func (u *reviewUsecase) DeleteReview(ctx context.Context, user *domain.User, id int64) error {
	existing, err := u.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Review not found")
		}
		return apperror.Internal(err)
	}
	if existing.ReviewerID != user.ID && !user.IsAdmin() {
		return apperror.Forbidden("You can only delete your own reviews")
	}

	if err := u.reviewRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
