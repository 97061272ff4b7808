package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid employers from reviewing", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		err := uc.CreateReview(ctx, testEmployer, &domain.CompanyReview{CompanyID: 5, Rating: 4})
		assert.Error(t, err)
		reviewRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject out-of-range ratings", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		err := uc.CreateReview(ctx, testCandidate, &domain.CompanyReview{CompanyID: 5, Rating: 6})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "between 1 and 5")
	})

	t.Run("Should require an existing company", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		employerRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		err := uc.CreateReview(ctx, testCandidate, &domain.CompanyReview{CompanyID: 404, Rating: 4})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Company not found")
	})

	t.Run("Should stamp the reviewer from the session, not the payload", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		employerRepo.On("GetByID", ctx, int64(5)).Return(&domain.EmployerProfile{ID: 5}, nil)

		r := &domain.CompanyReview{CompanyID: 5, Rating: 4, ReviewerID: 999}
		reviewRepo.On("Create", ctx, r).Return(nil)

		err := uc.CreateReview(ctx, testCandidate, r)
		assert.NoError(t, err)
		assert.Equal(t, testCandidate.ID, r.ReviewerID)
	})
}

func TestEditReview(t *testing.T) {
	ctx := context.Background()

	stored := &domain.CompanyReview{ID: 9, CompanyID: 5, ReviewerID: testCandidate.ID, Rating: 3}

	t.Run("Should let only the author update", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		reviewRepo.On("GetByID", ctx, int64(9)).Return(stored, nil)

		other := &domain.User{ID: 42, Role: domain.RoleCandidate}
		err := uc.UpdateReview(ctx, other, &domain.CompanyReview{ID: 9, Rating: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "your own reviews")
		reviewRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should let the author update", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		reviewRepo.On("GetByID", ctx, int64(9)).Return(stored, nil)
		upd := &domain.CompanyReview{ID: 9, Rating: 5, ReviewText: "Better now"}
		reviewRepo.On("Update", ctx, upd).Return(nil)

		assert.NoError(t, uc.UpdateReview(ctx, testCandidate, upd))
		reviewRepo.AssertExpectations(t)
	})

	t.Run("Should let an admin delete someone else's review", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		reviewRepo.On("GetByID", ctx, int64(9)).Return(stored, nil)
		reviewRepo.On("Delete", ctx, int64(9)).Return(nil)

		admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
		assert.NoError(t, uc.DeleteReview(ctx, admin, 9))
	})

	t.Run("Should forbid deletes by unrelated users", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		reviewRepo.On("GetByID", ctx, int64(9)).Return(stored, nil)

		other := &domain.User{ID: 42, Role: domain.RoleCandidate}
		err := uc.DeleteReview(ctx, other, 9)
		assert.Error(t, err)
		reviewRepo.AssertNotCalled(t, "Delete")
	})
}

func TestListCompanyReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("Should resolve the employer's own company", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		employerRepo.On("GetByUserID", ctx, int64(20)).Return(&domain.EmployerProfile{ID: 5}, nil)
		reviewRepo.On("FetchByCompanyID", ctx, int64(5)).Return([]domain.CompanyReview{
			{ID: 9, CompanyID: 5, Rating: 4},
		}, nil)

		reviews, err := uc.ListCompanyReviews(ctx, testEmployer)
		assert.NoError(t, err)
		assert.Len(t, reviews, 1)
	})

	t.Run("Should forbid candidates", func(t *testing.T) {
		reviewRepo := new(MockReviewRepo)
		employerRepo := new(MockEmployerRepo)
		uc := usecase.NewReviewUsecase(reviewRepo, employerRepo)

		_, err := uc.ListCompanyReviews(ctx, testCandidate)
		assert.Error(t, err)
	})
}
