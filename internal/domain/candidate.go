package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	Phone              string    `json:"phone"`
	Headline           string    `json:"headline"`
	About              string    `json:"about"`
	LinkedinURL        string    `json:"linkedin_url"`
	GithubURL          string    `json:"github_url"`
	PortfolioURL       string    `json:"portfolio_url"`
	ProfilePicturePath *string   `json:"-"`
	ResumePath         *string   `json:"-"`
	IsVerified         bool      `json:"is_verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Skill struct {
	ID        int64  `json:"id"`
	ProfileID int64  `json:"-"`
	Name      string `json:"name" binding:"required"`
	Level     string `json:"level"`
}

// Education dates use the YYYY-MM-DD wire format; EndDate is empty for
// in-progress entries.
type Education struct {
	ID           int64  `json:"id"`
	ProfileID    int64  `json:"-"`
	Institution  string `json:"institution" binding:"required"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date"`
}

type Certification struct {
	ID         int64  `json:"id"`
	ProfileID  int64  `json:"-"`
	Name       string `json:"name" binding:"required"`
	IssuedBy   string `json:"issued_by"`
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`
}

// Address is keyed by user, created empty at registration alongside the
// role profile.
type Address struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"-"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// CandidateDetails is the aggregate the profile endpoints read and write.
// On writes, each non-nil collection fully replaces the stored rows.
type CandidateDetails struct {
	Profile        CandidateProfile `json:"profile"`
	Skills         []Skill          `json:"skills"`
	Education      []Education      `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Address        *Address         `json:"address,omitempty"`
}

// CandidateProfileView is the nested read shape with derived fields.
type CandidateProfileView struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Headline       string            `json:"headline"`
	About          string            `json:"about"`
	SocialLinks    map[string]string `json:"social_links"`
	PictureURL     *string           `json:"picture_url"`
	ResumeURL      *string           `json:"resume_url"`
	IsVerified     bool              `json:"is_verified"`
	Skills         []Skill           `json:"skills"`
	Education      []Education       `json:"education"`
	Certifications []Certification   `json:"certifications"`
	Address        *Address          `json:"address"`
}

// CandidateUpdate carries a profile write. Nil collection = leave untouched,
// non-nil (including empty) = full replacement.
type CandidateUpdate struct {
	Phone          *string
	Headline       *string
	About          *string
	LinkedinURL    *string
	GithubURL      *string
	PortfolioURL   *string
	PicturePath    *string
	ResumePath     *string
	Skills         []Skill
	Education      []Education
	Certifications []Certification
	Address        *Address
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*CandidateProfile, error)
	GetDetails(ctx context.Context, userID int64) (*CandidateDetails, error)
	// UpdateDetails overwrites scalar fields and replaces each supplied nested
	// collection (delete-then-insert) in one transaction.
	UpdateDetails(ctx context.Context, userID int64, upd *CandidateUpdate) error
}
