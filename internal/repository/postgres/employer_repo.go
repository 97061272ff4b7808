package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

const employerColumns = `id, user_id, company_name, description, industry, website, logo_path, is_verified, created_at, updated_at`

func (r *employerRepo) scanRow(row pgx.Row) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.Description, &p.Industry, &p.Website,
		&p.LogoPath, &p.IsVerified, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	return r.scanRow(r.db.QueryRow(ctx,
		`SELECT `+employerColumns+` FROM employer_profiles WHERE user_id = $1`, userID))
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	return r.scanRow(r.db.QueryRow(ctx,
		`SELECT `+employerColumns+` FROM employer_profiles WHERE id = $1`, id))
}

func (r *employerRepo) Update(ctx context.Context, userID int64, upd *domain.EmployerUpdate) error {
	query := `UPDATE employer_profiles SET
	            company_name = COALESCE($2, company_name),
	            description = COALESCE($3, description),
	            industry = COALESCE($4, industry),
	            website = COALESCE($5, website),
	            logo_path = COALESCE($6, logo_path),
	            updated_at = NOW()
	          WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, query, userID,
		upd.CompanyName, upd.Description, upd.Industry, upd.Website, upd.LogoPath)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
