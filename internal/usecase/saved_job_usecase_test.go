package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestSaveJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid employers", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(savedRepo, jobRepo)

		err := uc.SaveJob(ctx, testEmployer, 3)
		assert.Error(t, err)
		savedRepo.AssertNotCalled(t, "Save")
	})

	t.Run("Should require the job to exist", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(savedRepo, jobRepo)

		jobRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		err := uc.SaveJob(ctx, testCandidate, 404)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})

	t.Run("Should bookmark under the caller's id", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(savedRepo, jobRepo)

		jobRepo.On("GetByID", ctx, int64(3)).Return(&domain.JobPosting{ID: 3}, nil)
		savedRepo.On("Save", ctx, testCandidate.ID, int64(3)).Return(nil)

		assert.NoError(t, uc.SaveJob(ctx, testCandidate, 3))
		savedRepo.AssertExpectations(t)
	})
}

func TestUnsaveJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Should surface a missing bookmark as not found", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(savedRepo, jobRepo)

		savedRepo.On("Unsave", ctx, testCandidate.ID, int64(3)).Return(domain.ErrNotFound)

		err := uc.UnsaveJob(ctx, testCandidate, 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Saved job not found")
	})

	t.Run("Should remove an existing bookmark", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(savedRepo, jobRepo)

		savedRepo.On("Unsave", ctx, testCandidate.ID, int64(3)).Return(nil)
		assert.NoError(t, uc.UnsaveJob(ctx, testCandidate, 3))
	})
}

func TestListSavedJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should list the caller's bookmarks", func(t *testing.T) {
		savedRepo := new(MockSavedJobRepo)
		jobRepo := new(MockJobRepo)
		uc := usecase.NewSavedJobUsecase(savedRepo, jobRepo)

		savedRepo.On("FetchByCandidateID", ctx, testCandidate.ID).Return([]domain.SavedJob{
			{ID: 1, JobID: 3, CandidateID: testCandidate.ID},
		}, nil)

		saved, err := uc.ListSavedJobs(ctx, testCandidate)
		assert.NoError(t, err)
		assert.Len(t, saved, 1)
	})
}
