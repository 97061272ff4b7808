package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type profileFixture struct {
	candidateRepo *MockCandidateRepo
	employerRepo  *MockEmployerRepo
	store         *MockObjectStore
	uc            domain.ProfileUsecase
}

func newProfileFixture() *profileFixture {
	f := &profileFixture{
		candidateRepo: new(MockCandidateRepo),
		employerRepo:  new(MockEmployerRepo),
		store:         new(MockObjectStore),
	}
	f.uc = usecase.NewProfileUsecase(f.candidateRepo, f.employerRepo, f.store, validator.New())
	return f
}

func strPtr(s string) *string { return &s }

func TestGetCandidateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should flatten social links and derive the display name", func(t *testing.T) {
		f := newProfileFixture()
		f.candidateRepo.On("GetDetails", ctx, int64(10)).Return(&domain.CandidateDetails{
			Profile: domain.CandidateProfile{
				ID:          1,
				UserID:      10,
				Headline:    "Go developer",
				LinkedinURL: "https://linkedin.com/in/janedoe",
				GithubURL:   "https://github.com/janedoe",
			},
			Skills:         []domain.Skill{{Name: "Go", Level: "senior"}},
			Education:      []domain.Education{},
			Certifications: []domain.Certification{},
		}, nil)

		got, err := f.uc.GetProfile(ctx, testCandidate)
		assert.NoError(t, err)

		view := got.(*domain.CandidateProfileView)
		assert.Equal(t, "Jane Doe", view.Name)
		assert.Equal(t, "https://github.com/janedoe", view.SocialLinks["github"])
		assert.Nil(t, view.PictureURL)
		assert.Len(t, view.Skills, 1)
	})

	t.Run("Should expose a public picture URL and a signed resume link", func(t *testing.T) {
		f := newProfileFixture()
		f.candidateRepo.On("GetDetails", ctx, int64(10)).Return(&domain.CandidateDetails{
			Profile: domain.CandidateProfile{
				ID:                 1,
				UserID:             10,
				ProfilePicturePath: strPtr("avatars/2026/8/31/pic.png"),
				ResumePath:         strPtr("resumes/2026/8/31/cv.pdf"),
			},
		}, nil)
		f.store.On("PublicURL", "avatars/2026/8/31/pic.png").Return("https://bucket/avatars/pic.png")
		f.store.On("PresignGet", ctx, "resumes/2026/8/31/cv.pdf", mock.Anything).Return("https://bucket/signed-cv", nil)

		got, err := f.uc.GetProfile(ctx, testCandidate)
		assert.NoError(t, err)

		view := got.(*domain.CandidateProfileView)
		assert.Equal(t, "https://bucket/avatars/pic.png", *view.PictureURL)
		assert.Equal(t, "https://bucket/signed-cv", *view.ResumeURL)
	})

	t.Run("Should 404 when the profile row is missing", func(t *testing.T) {
		f := newProfileFixture()
		f.candidateRepo.On("GetDetails", ctx, int64(10)).Return(nil, domain.ErrNotFound)

		_, err := f.uc.GetProfile(ctx, testCandidate)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestUpdateCandidateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject education ending before it starts", func(t *testing.T) {
		f := newProfileFixture()

		_, err := f.uc.UpdateCandidateProfile(ctx, testCandidate, &domain.CandidateUpdate{
			Education: []domain.Education{{
				Institution: "State University",
				StartDate:   "2022-09-01",
				EndDate:     "2020-06-01",
			}},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "end date cannot be before start date")
		f.candidateRepo.AssertNotCalled(t, "UpdateDetails")
	})

	t.Run("Should reject certifications expiring before issue", func(t *testing.T) {
		f := newProfileFixture()

		_, err := f.uc.UpdateCandidateProfile(ctx, testCandidate, &domain.CandidateUpdate{
			Certifications: []domain.Certification{{
				Name:       "Cloud Cert",
				IssueDate:  "2024-01-01",
				ExpiryDate: "2023-01-01",
			}},
		})
		assert.Error(t, err)
		f.candidateRepo.AssertNotCalled(t, "UpdateDetails")
	})

	t.Run("Should require names on supplied skills", func(t *testing.T) {
		f := newProfileFixture()

		_, err := f.uc.UpdateCandidateProfile(ctx, testCandidate, &domain.CandidateUpdate{
			Skills: []domain.Skill{{Level: "senior"}},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "skills[0]")
	})

	t.Run("Should pass the full-replacement update through and return the fresh view", func(t *testing.T) {
		f := newProfileFixture()

		upd := &domain.CandidateUpdate{
			Headline: strPtr("Senior Go developer"),
			Skills:   []domain.Skill{{Name: "Go"}, {Name: "SQL"}},
		}
		f.candidateRepo.On("UpdateDetails", ctx, int64(10), upd).Return(nil)
		f.candidateRepo.On("GetDetails", ctx, int64(10)).Return(&domain.CandidateDetails{
			Profile: domain.CandidateProfile{ID: 1, UserID: 10, Headline: "Senior Go developer"},
			Skills:  []domain.Skill{{Name: "Go"}, {Name: "SQL"}},
		}, nil)

		got, err := f.uc.UpdateCandidateProfile(ctx, testCandidate, upd)
		assert.NoError(t, err)
		view := got.(*domain.CandidateProfileView)
		assert.Equal(t, "Senior Go developer", view.Headline)
		assert.Len(t, view.Skills, 2)
		f.candidateRepo.AssertExpectations(t)
	})

	t.Run("Should forbid employers", func(t *testing.T) {
		f := newProfileFixture()
		_, err := f.uc.UpdateCandidateProfile(ctx, testEmployer, &domain.CandidateUpdate{})
		assert.Error(t, err)
		f.candidateRepo.AssertNotCalled(t, "UpdateDetails")
	})
}

func TestEmployerProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should compute the logo URL on reads", func(t *testing.T) {
		f := newProfileFixture()
		f.employerRepo.On("GetByUserID", ctx, int64(20)).Return(&domain.EmployerProfile{
			ID:          5,
			UserID:      20,
			CompanyName: "Acme",
			LogoPath:    strPtr("logos/2026/8/31/acme.png"),
		}, nil)
		f.store.On("PublicURL", "logos/2026/8/31/acme.png").Return("https://bucket/logos/acme.png")

		got, err := f.uc.GetProfile(ctx, testEmployer)
		assert.NoError(t, err)
		view := got.(*domain.EmployerProfileView)
		assert.Equal(t, "Acme", view.CompanyName)
		assert.Equal(t, "https://bucket/logos/acme.png", *view.LogoURL)
	})

	t.Run("Should apply scalar updates", func(t *testing.T) {
		f := newProfileFixture()
		upd := &domain.EmployerUpdate{Industry: strPtr("Fintech")}
		f.employerRepo.On("Update", ctx, int64(20), upd).Return(nil)
		f.employerRepo.On("GetByUserID", ctx, int64(20)).Return(&domain.EmployerProfile{
			ID: 5, UserID: 20, Industry: "Fintech",
		}, nil)

		got, err := f.uc.UpdateEmployerProfile(ctx, testEmployer, upd)
		assert.NoError(t, err)
		assert.Equal(t, "Fintech", got.(*domain.EmployerProfileView).Industry)
	})
}
