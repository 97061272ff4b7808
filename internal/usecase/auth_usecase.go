package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Service
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Service) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates the user account with its role profile. Admin accounts
// cannot be self-registered.
func (u *authUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" {
		return nil, apperror.BadRequest("Email is required")
	}
	if in.Password == "" {
		return nil, apperror.BadRequest("Password is required")
	}
	if in.Password != in.ConfirmPassword {
		return nil, apperror.BadRequest("Passwords do not match")
	}
	if len(in.Password) < 8 {
		return nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	role := strings.ToUpper(in.Role)
	if role != domain.RoleCandidate && role != domain.RoleEmployer {
		return nil, apperror.BadRequest("Role must be CANDIDATE or EMPLOYER")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("An account with this email already exists")
		}
		return nil, apperror.Internal(err)
	}

	return user, nil
}

// Login verifies credentials and issues a token pair. Invalid email and
// invalid password return the same message so the endpoint does not leak
// which accounts exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.BadRequest("Invalid email or password")
		}
		return nil, nil, apperror.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.BadRequest("Invalid email or password")
	}

	if !user.IsActive {
		return nil, nil, apperror.BadRequest("This account has been deactivated")
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return user, pair, nil
}

// Refresh validates the refresh token, reloads the user, and issues a fresh
// pair. Reloading picks up role or deactivation changes since issuance.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid or expired refresh token")
		}
		return nil, apperror.Internal(err)
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("This account has been deactivated")
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return pair, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{Access: access, Refresh: refresh}, nil
}
