package domain

import (
	"context"
	"time"
)

type CompanyReview struct {
	ID         int64     `json:"id"`
	CompanyID  int64     `json:"company_id"`
	ReviewerID int64     `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`

	// Joined display fields
	CompanyName  *string `json:"company_name,omitempty"`
	ReviewerName *string `json:"reviewer_name,omitempty"`
}

type ReviewRepository interface {
	Create(ctx context.Context, r *CompanyReview) error
	GetByID(ctx context.Context, id int64) (*CompanyReview, error)
	Fetch(ctx context.Context, limit, offset int) ([]CompanyReview, int64, error)
	FetchByCompanyID(ctx context.Context, companyID int64) ([]CompanyReview, error)
	Update(ctx context.Context, r *CompanyReview) error
	Delete(ctx context.Context, id int64) error
}

type ReviewUsecase interface {
	CreateReview(ctx context.Context, user *User, r *CompanyReview) error
	GetReview(ctx context.Context, id int64) (*CompanyReview, error)
	ListReviews(ctx context.Context, page, pageSize int) ([]CompanyReview, int64, error)
	ListCompanyReviews(ctx context.Context, user *User) ([]CompanyReview, error)
	UpdateReview(ctx context.Context, user *User, r *CompanyReview) error
	DeleteReview(ctx context.Context, user *User, id int64) error
}
