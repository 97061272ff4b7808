package postgres

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

// Create inserts the user together with its role profile and an empty
// address row. The side-effect inserts use ON CONFLICT DO NOTHING so a
// retried registration is a no-op for them.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO users (email, first_name, last_name, role, password_hash, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW()) RETURNING id, is_active, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		user.Email, user.FirstName, user.LastName, user.Role, user.PasswordHash,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}

	switch user.Role {
	case domain.RoleCandidate:
		_, err = tx.Exec(ctx, `INSERT INTO candidate_profiles (user_id, created_at, updated_at)
		                       VALUES ($1, NOW(), NOW()) ON CONFLICT (user_id) DO NOTHING`, user.ID)
	case domain.RoleEmployer:
		_, err = tx.Exec(ctx, `INSERT INTO employer_profiles (user_id, created_at, updated_at)
		                       VALUES ($1, NOW(), NOW()) ON CONFLICT (user_id) DO NOTHING`, user.ID)
	}
	if err != nil {
		return err
	}

	if user.Role == domain.RoleCandidate || user.Role == domain.RoleEmployer {
		_, err = tx.Exec(ctx, `INSERT INTO addresses (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, user.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, email, first_name, last_name, role, password_hash, is_active, created_at, updated_at
	          FROM users WHERE id = $1`
	var u domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, first_name, last_name, role, password_hash, is_active, created_at, updated_at
	          FROM users WHERE email = $1`
	var u domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
