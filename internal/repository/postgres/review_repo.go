package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.CompanyReview) error {
	query := `INSERT INTO company_reviews (company_id, reviewer_id, rating, review_text, created_at)
	          VALUES ($1, $2, $3, $4, NOW())
	          RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		review.CompanyID, review.ReviewerID, review.Rating, review.ReviewText,
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyReview, error) {
	query := `SELECT r.id, r.company_id, r.reviewer_id, r.rating, r.review_text, r.created_at,
	                 e.company_name, u.first_name || ' ' || u.last_name
	          FROM company_reviews r
	          JOIN employer_profiles e ON e.id = r.company_id
	          JOIN users u ON u.id = r.reviewer_id
	          WHERE r.id = $1`
	var review domain.CompanyReview
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID, &review.CompanyID, &review.ReviewerID, &review.Rating, &review.ReviewText,
		&review.CreatedAt, &review.CompanyName, &review.ReviewerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.CompanyReview, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM company_reviews`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := `SELECT r.id, r.company_id, r.reviewer_id, r.rating, r.review_text, r.created_at,
	                 e.company_name, u.first_name || ' ' || u.last_name
	          FROM company_reviews r
	          JOIN employer_profiles e ON e.id = r.company_id
	          JOIN users u ON u.id = r.reviewer_id
	          ORDER BY r.created_at DESC
	          LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.CompanyReview{}
	for rows.Next() {
		var review domain.CompanyReview
		err := rows.Scan(
			&review.ID, &review.CompanyID, &review.ReviewerID, &review.Rating, &review.ReviewText,
			&review.CreatedAt, &review.CompanyName, &review.ReviewerName,
		)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}
	return reviews, total, rows.Err()
}

func (r *reviewRepo) FetchByCompanyID(ctx context.Context, companyID int64) ([]domain.CompanyReview, error) {
	query := `SELECT r.id, r.company_id, r.reviewer_id, r.rating, r.review_text, r.created_at,
	                 e.company_name, u.first_name || ' ' || u.last_name
	          FROM company_reviews r
	          JOIN employer_profiles e ON e.id = r.company_id
	          JOIN users u ON u.id = r.reviewer_id
	          WHERE r.company_id = $1
	          ORDER BY r.created_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company reviews: %w", err)
	}
	defer rows.Close()

	reviews := []domain.CompanyReview{}
	for rows.Next() {
		var review domain.CompanyReview
		err := rows.Scan(
			&review.ID, &review.CompanyID, &review.ReviewerID, &review.Rating, &review.ReviewText,
			&review.CreatedAt, &review.CompanyName, &review.ReviewerName,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *reviewRepo) Update(ctx context.Context, review *domain.CompanyReview) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE company_reviews SET rating = $2, review_text = $3 WHERE id = $1`,
		review.ID, review.Rating, review.ReviewText)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM company_reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
