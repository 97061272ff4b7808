package domain

import (
	"context"
	"errors"
	"time"
)

// Role constants. The uppercase values are the wire format carried in JWT
// claims and the users table.
const (
	RoleAdmin     = "ADMIN"
	RoleEmployer  = "EMPLOYER"
	RoleCandidate = "CANDIDATE"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName joins first and last name, dropping the separator when either is empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

func (u *User) IsCandidate() bool { return u.Role == RoleCandidate }
func (u *User) IsEmployer() bool  { return u.Role == RoleEmployer }
func (u *User) IsAdmin() bool     { return u.Role == RoleAdmin }

type UserRepository interface {
	// Create persists the user and, in the same transaction, the role profile
	// plus an empty address row (get-or-create, so a retry is a no-op).
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type RegisterInput struct {
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
	Role            string
}

// TokenPair is the access/refresh pair issued on login and refresh.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
