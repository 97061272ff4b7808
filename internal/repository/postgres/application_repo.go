package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts the application. The unique index on (job_id, candidate_id)
// backs the one-application-per-job rule; a conflict maps to ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, candidate_id, cover_letter, resume_path, status, is_active, applied_at)
	          VALUES ($1, $2, $3, $4, $5, TRUE, NOW())
	          RETURNING id, is_active, applied_at`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.CoverLetter, app.ResumePath, app.Status,
	).Scan(&app.ID, &app.IsActive, &app.AppliedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.resume_path, a.status,
	                 a.applied_at, a.is_active,
	                 j.title, e.company_name,
	                 u.first_name || ' ' || u.last_name
	          FROM applications a
	          JOIN job_postings j ON j.id = a.job_id
	          JOIN employer_profiles e ON e.id = j.employer_id
	          JOIN users u ON u.id = a.candidate_id
	          WHERE a.id = $1`
	var a domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.ResumePath, &a.Status,
		&a.AppliedAt, &a.IsActive,
		&a.JobTitle, &a.CompanyName, &a.CandidateName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, candidateID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) FetchByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.resume_path, a.status,
	                 a.applied_at, a.is_active, j.title, e.company_name
	          FROM applications a
	          JOIN job_postings j ON j.id = a.job_id
	          JOIN employer_profiles e ON e.id = j.employer_id
	          WHERE a.candidate_id = $1
	          ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.ResumePath, &a.Status,
			&a.AppliedAt, &a.IsActive, &a.JobTitle, &a.CompanyName,
		)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) FetchByEmployerID(ctx context.Context, employerID int64) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.resume_path, a.status,
	                 a.applied_at, a.is_active, j.title,
	                 u.first_name || ' ' || u.last_name
	          FROM applications a
	          JOIN job_postings j ON j.id = a.job_id
	          JOIN users u ON u.id = a.candidate_id
	          WHERE j.employer_id = $1
	          ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employer applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		err := rows.Scan(
			&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.ResumePath, &a.Status,
			&a.AppliedAt, &a.IsActive, &a.JobTitle, &a.CandidateName,
		)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
