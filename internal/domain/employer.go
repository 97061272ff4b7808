package domain

import (
	"context"
	"time"
)

type EmployerProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CompanyName string    `json:"company_name"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website"`
	LogoPath    *string   `json:"-"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployerProfileView is the read shape with the computed logo URL.
type EmployerProfileView struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	Description string  `json:"description"`
	Industry    string  `json:"industry"`
	Website     string  `json:"website"`
	LogoURL     *string `json:"logo_url"`
	IsVerified  bool    `json:"is_verified"`
	Email       string  `json:"email"`
}

type EmployerUpdate struct {
	CompanyName *string
	Description *string
	Industry    *string
	Website     *string
	LogoPath    *string
}

type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*EmployerProfile, error)
	GetByID(ctx context.Context, id int64) (*EmployerProfile, error)
	Update(ctx context.Context, userID int64, upd *EmployerUpdate) error
}

// ProfileUsecase serves the role-dispatched profile read/write endpoints.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, user *User) (interface{}, error)
	UpdateCandidateProfile(ctx context.Context, user *User, upd *CandidateUpdate) (interface{}, error)
	UpdateEmployerProfile(ctx context.Context, user *User, upd *EmployerUpdate) (interface{}, error)
}
