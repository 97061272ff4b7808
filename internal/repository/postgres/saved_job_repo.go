package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

// Save is idempotent: re-saving a job hits the (candidate_id, job_id) unique
// constraint and does nothing.
func (r *savedJobRepo) Save(ctx context.Context, candidateID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (candidate_id, job_id, created_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (candidate_id, job_id) DO NOTHING`, candidateID, jobID)
	return err
}

func (r *savedJobRepo) Unsave(ctx context.Context, candidateID, jobID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`, candidateID, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *savedJobRepo) FetchByCandidateID(ctx context.Context, candidateID int64) ([]domain.SavedJob, error) {
	query := `SELECT s.id, s.candidate_id, s.job_id, s.created_at,
	                 j.title, e.company_name, e.logo_path
	          FROM saved_jobs s
	          JOIN job_postings j ON j.id = s.job_id
	          JOIN employer_profiles e ON e.id = j.employer_id
	          WHERE s.candidate_id = $1
	          ORDER BY s.created_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved jobs: %w", err)
	}
	defer rows.Close()

	saved := []domain.SavedJob{}
	for rows.Next() {
		var s domain.SavedJob
		err := rows.Scan(&s.ID, &s.CandidateID, &s.JobID, &s.CreatedAt, &s.JobTitle, &s.CompanyName, &s.LogoURL)
		if err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}
