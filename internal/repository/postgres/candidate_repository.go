package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	query := `SELECT id, user_id, phone, headline, about, linkedin_url, github_url, portfolio_url,
	                 profile_picture_path, resume_path, is_verified, created_at, updated_at
	          FROM candidate_profiles WHERE user_id = $1`
	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Phone, &p.Headline, &p.About, &p.LinkedinURL, &p.GithubURL, &p.PortfolioURL,
		&p.ProfilePicturePath, &p.ResumePath, &p.IsVerified, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetDetails loads the profile aggregate: scalar profile row plus skills,
// education, certifications and the address.
func (r *candidateRepo) GetDetails(ctx context.Context, userID int64) (*domain.CandidateDetails, error) {
	profile, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := &domain.CandidateDetails{
		Profile:        *profile,
		Skills:         []domain.Skill{},
		Education:      []domain.Education{},
		Certifications: []domain.Certification{},
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, name, level FROM candidate_skills WHERE profile_id = $1 ORDER BY id`, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Level); err != nil {
			rows.Close()
			return nil, err
		}
		details.Skills = append(details.Skills, s)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = r.db.Query(ctx,
		`SELECT id, profile_id, institution, degree, field_of_study,
		        to_char(start_date, 'YYYY-MM-DD'), COALESCE(to_char(end_date, 'YYYY-MM-DD'), '')
		 FROM candidate_education WHERE profile_id = $1 ORDER BY start_date DESC, id`, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate); err != nil {
			rows.Close()
			return nil, err
		}
		details.Education = append(details.Education, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = r.db.Query(ctx,
		`SELECT id, profile_id, name, issued_by,
		        COALESCE(to_char(issue_date, 'YYYY-MM-DD'), ''), COALESCE(to_char(expiry_date, 'YYYY-MM-DD'), '')
		 FROM candidate_certifications WHERE profile_id = $1 ORDER BY id`, profile.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch certifications: %w", err)
	}
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Name, &c.IssuedBy, &c.IssueDate, &c.ExpiryDate); err != nil {
			rows.Close()
			return nil, err
		}
		details.Certifications = append(details.Certifications, c)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	var addr domain.Address
	err = r.db.QueryRow(ctx,
		`SELECT id, user_id, street, city, state, country, postal_code FROM addresses WHERE user_id = $1`, userID).
		Scan(&addr.ID, &addr.UserID, &addr.Street, &addr.City, &addr.State, &addr.Country, &addr.PostalCode)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		details.Address = &addr
	}

	return details, nil
}

// UpdateDetails overwrites scalar fields and replaces each supplied nested
// collection in one transaction. A nil collection leaves the stored rows
// untouched; a non-nil empty slice clears them.
func (r *candidateRepo) UpdateDetails(ctx context.Context, userID int64, upd *domain.CandidateUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var profileID int64
	query := `UPDATE candidate_profiles SET
	            phone = COALESCE($2, phone),
	            headline = COALESCE($3, headline),
	            about = COALESCE($4, about),
	            linkedin_url = COALESCE($5, linkedin_url),
	            github_url = COALESCE($6, github_url),
	            portfolio_url = COALESCE($7, portfolio_url),
	            profile_picture_path = COALESCE($8, profile_picture_path),
	            resume_path = COALESCE($9, resume_path),
	            updated_at = NOW()
	          WHERE user_id = $1 RETURNING id`
	err = tx.QueryRow(ctx, query, userID,
		upd.Phone, upd.Headline, upd.About, upd.LinkedinURL, upd.GithubURL, upd.PortfolioURL,
		upd.PicturePath, upd.ResumePath,
	).Scan(&profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	if upd.Skills != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE profile_id = $1`, profileID); err != nil {
			return fmt.Errorf("failed to clear skills: %w", err)
		}
		for _, s := range upd.Skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO candidate_skills (profile_id, name, level) VALUES ($1, $2, $3)`,
				profileID, s.Name, s.Level)
			if err != nil {
				return fmt.Errorf("failed to insert skill: %w", err)
			}
		}
	}

	if upd.Education != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM candidate_education WHERE profile_id = $1`, profileID); err != nil {
			return fmt.Errorf("failed to clear education: %w", err)
		}
		for _, e := range upd.Education {
			_, err := tx.Exec(ctx,
				`INSERT INTO candidate_education (profile_id, institution, degree, field_of_study, start_date, end_date)
				 VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::date)`,
				profileID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate)
			if err != nil {
				return fmt.Errorf("failed to insert education: %w", err)
			}
		}
	}

	if upd.Certifications != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM candidate_certifications WHERE profile_id = $1`, profileID); err != nil {
			return fmt.Errorf("failed to clear certifications: %w", err)
		}
		for _, c := range upd.Certifications {
			_, err := tx.Exec(ctx,
				`INSERT INTO candidate_certifications (profile_id, name, issued_by, issue_date, expiry_date)
				 VALUES ($1, $2, $3, NULLIF($4, '')::date, NULLIF($5, '')::date)`,
				profileID, c.Name, c.IssuedBy, c.IssueDate, c.ExpiryDate)
			if err != nil {
				return fmt.Errorf("failed to insert certification: %w", err)
			}
		}
	}

	if upd.Address != nil {
		_, err := tx.Exec(ctx,
			`INSERT INTO addresses (user_id, street, city, state, country, postal_code)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (user_id) DO UPDATE SET
			   street = EXCLUDED.street, city = EXCLUDED.city, state = EXCLUDED.state,
			   country = EXCLUDED.country, postal_code = EXCLUDED.postal_code`,
			userID, upd.Address.Street, upd.Address.City, upd.Address.State, upd.Address.Country, upd.Address.PostalCode)
		if err != nil {
			return fmt.Errorf("failed to upsert address: %w", err)
		}
	}

	return tx.Commit(ctx)
}
