package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings
	            (employer_id, title, description, requirements, responsibilities, status,
	             employment_type, job_type, experience_level, salary_min, salary_max, deadline,
	             is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE, NOW(), NOW())
	          RETURNING id, is_active, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description,
		pq.Array(job.Requirements), pq.Array(job.Responsibilities),
		job.Status, job.EmploymentType, job.JobType, job.ExperienceLevel,
		job.SalaryMin, job.SalaryMax, job.Deadline,
	).Scan(&job.ID, &job.IsActive, &job.CreatedAt, &job.UpdatedAt)
}

const jobColumns = `id, employer_id, title, description, requirements, responsibilities, status,
	employment_type, job_type, experience_level, salary_min, salary_max, deadline, is_active,
	created_at, updated_at`

func scanJob(row pgx.Row, j *domain.JobPosting) error {
	return row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description,
		pq.Array(&j.Requirements), pq.Array(&j.Responsibilities),
		&j.Status, &j.EmploymentType, &j.JobType, &j.ExperienceLevel,
		&j.SalaryMin, &j.SalaryMax, &j.Deadline, &j.IsActive,
		&j.CreatedAt, &j.UpdatedAt,
	)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	var j domain.JobPosting
	err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id), &j)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	query := `SELECT j.id, j.employer_id, j.title, j.description, j.requirements, j.responsibilities,
	                 j.status, j.employment_type, j.job_type, j.experience_level, j.salary_min,
	                 j.salary_max, j.deadline, j.is_active, j.created_at, j.updated_at,
	                 e.company_name, e.logo_path, e.industry
	          FROM job_postings j
	          JOIN employer_profiles e ON e.id = j.employer_id
	          WHERE j.id = $1`
	var jc domain.JobWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&jc.ID, &jc.EmployerID, &jc.Title, &jc.Description,
		pq.Array(&jc.Requirements), pq.Array(&jc.Responsibilities),
		&jc.Status, &jc.EmploymentType, &jc.JobType, &jc.ExperienceLevel,
		&jc.SalaryMin, &jc.SalaryMax, &jc.Deadline, &jc.IsActive,
		&jc.CreatedAt, &jc.UpdatedAt,
		&jc.CompanyName, &jc.CompanyLogoURL, &jc.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &jc, nil
}

// FetchPublicActive returns ACTIVE postings with the active flag set, newest
// first. The status filter is deliberate: drafts and closed postings never
// appear on the public board.
func (r *jobRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_postings WHERE status = $1 AND is_active = TRUE`,
		domain.JobStatusActive).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count public jobs: %w", err)
	}

	query := `SELECT j.id, j.employer_id, j.title, j.description, j.requirements, j.responsibilities,
	                 j.status, j.employment_type, j.job_type, j.experience_level, j.salary_min,
	                 j.salary_max, j.deadline, j.is_active, j.created_at, j.updated_at,
	                 e.company_name, e.logo_path, e.industry
	          FROM job_postings j
	          JOIN employer_profiles e ON e.id = j.employer_id
	          WHERE j.status = $1 AND j.is_active = TRUE
	          ORDER BY j.created_at DESC
	          LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, domain.JobStatusActive, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch public jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.JobWithCompany{}
	for rows.Next() {
		var jc domain.JobWithCompany
		err := rows.Scan(
			&jc.ID, &jc.EmployerID, &jc.Title, &jc.Description,
			pq.Array(&jc.Requirements), pq.Array(&jc.Responsibilities),
			&jc.Status, &jc.EmploymentType, &jc.JobType, &jc.ExperienceLevel,
			&jc.SalaryMin, &jc.SalaryMax, &jc.Deadline, &jc.IsActive,
			&jc.CreatedAt, &jc.UpdatedAt,
			&jc.CompanyName, &jc.CompanyLogoURL, &jc.Industry,
		)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, jc)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.JobPosting, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_postings WHERE employer_id = $1`, employerID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employer jobs: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM job_postings WHERE employer_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, employerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch employer jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.JobPosting{}
	for rows.Next() {
		var j domain.JobPosting
		if err := scanJob(rows, &j); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	return jobs, total, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings SET
	            title = $2, description = $3, requirements = $4, responsibilities = $5,
	            status = $6, employment_type = $7, job_type = $8, experience_level = $9,
	            salary_min = $10, salary_max = $11, deadline = $12, is_active = $13,
	            updated_at = NOW()
	          WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description,
		pq.Array(job.Requirements), pq.Array(job.Responsibilities),
		job.Status, job.EmploymentType, job.JobType, job.ExperienceLevel,
		job.SalaryMin, job.SalaryMax, job.Deadline, job.IsActive,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
