package postgres

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepo struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

// CandidateStatusCounts buckets the candidate's applications by status in a
// single scan. FILTER keeps it one round trip instead of seven.
func (r *dashboardRepo) CandidateStatusCounts(ctx context.Context, candidateID int64) (*domain.ApplicationStatusCounts, error) {
	query := `SELECT COUNT(*),
	                 COUNT(*) FILTER (WHERE status = 'PENDING'),
	                 COUNT(*) FILTER (WHERE status = 'REVIEWED'),
	                 COUNT(*) FILTER (WHERE status = 'SHORTLISTED'),
	                 COUNT(*) FILTER (WHERE status = 'INTERVIEW'),
	                 COUNT(*) FILTER (WHERE status = 'REJECTED'),
	                 COUNT(*) FILTER (WHERE status = 'ACCEPTED')
	          FROM applications WHERE candidate_id = $1`
	var c domain.ApplicationStatusCounts
	err := r.db.QueryRow(ctx, query, candidateID).Scan(
		&c.Total, &c.Pending, &c.Reviewed, &c.Shortlisted, &c.Interview, &c.Rejected, &c.Accepted,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	return &c, nil
}

func (r *dashboardRepo) RecentApplications(ctx context.Context, candidateID int64, limit int) ([]domain.RecentApplication, error) {
	query := `SELECT a.id, j.title, e.company_name, a.applied_at, a.status, e.logo_path
	          FROM applications a
	          JOIN job_postings j ON j.id = a.job_id
	          JOIN employer_profiles e ON e.id = j.employer_id
	          WHERE a.candidate_id = $1
	          ORDER BY a.applied_at DESC
	          LIMIT $2`
	rows, err := r.db.Query(ctx, query, candidateID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.RecentApplication{}
	for rows.Next() {
		var a domain.RecentApplication
		if err := rows.Scan(&a.ID, &a.JobTitle, &a.Company, &a.AppliedAt, &a.Status, &a.LogoURL); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *dashboardRepo) NotificationCounts(ctx context.Context, userID int64) (*domain.NotificationCounts, error) {
	var c domain.NotificationCounts
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE is_read = FALSE), COUNT(*)
		 FROM notifications WHERE user_id = $1`, userID).Scan(&c.Unread, &c.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}
	return &c, nil
}

func (r *dashboardRepo) RecentNotifications(ctx context.Context, userID int64, limit int) ([]domain.RecentNotification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, type, created_at, is_read
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.RecentNotification{}
	for rows.Next() {
		var n domain.RecentNotification
		if err := rows.Scan(&n.ID, &n.Title, &n.Type, &n.CreatedAt, &n.IsRead); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *dashboardRepo) SavedJobsCount(ctx context.Context, candidateID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM saved_jobs WHERE candidate_id = $1`, candidateID).Scan(&count)
	return count, err
}

func (r *dashboardRepo) RecentSavedJobs(ctx context.Context, candidateID int64, limit int) ([]domain.RecentSavedJob, error) {
	query := `SELECT s.id, s.job_id, j.title, e.company_name, s.created_at, e.logo_path
	          FROM saved_jobs s
	          JOIN job_postings j ON j.id = s.job_id
	          JOIN employer_profiles e ON e.id = j.employer_id
	          WHERE s.candidate_id = $1
	          ORDER BY s.created_at DESC
	          LIMIT $2`
	rows, err := r.db.Query(ctx, query, candidateID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent saved jobs: %w", err)
	}
	defer rows.Close()

	saved := []domain.RecentSavedJob{}
	for rows.Next() {
		var s domain.RecentSavedJob
		if err := rows.Scan(&s.ID, &s.JobID, &s.JobTitle, &s.Company, &s.SavedAt, &s.LogoURL); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

func (r *dashboardRepo) JobStatusCounts(ctx context.Context, employerID int64) (*domain.JobStatusCounts, error) {
	query := `SELECT COUNT(*) FILTER (WHERE status = 'DRAFT'),
	                 COUNT(*) FILTER (WHERE status = 'ACTIVE'),
	                 COUNT(*) FILTER (WHERE status = 'CLOSED'),
	                 COUNT(*)
	          FROM job_postings WHERE employer_id = $1`
	var c domain.JobStatusCounts
	err := r.db.QueryRow(ctx, query, employerID).Scan(&c.Draft, &c.Active, &c.Closed, &c.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	return &c, nil
}

func (r *dashboardRepo) EmployerApplicationCounts(ctx context.Context, employerID int64) (*domain.EmployerApplicationCounts, error) {
	query := `SELECT COUNT(*),
	                 COUNT(*) FILTER (WHERE a.status = 'PENDING'),
	                 COUNT(*) FILTER (WHERE a.status = 'SHORTLISTED')
	          FROM applications a
	          JOIN job_postings j ON j.id = a.job_id
	          WHERE j.employer_id = $1`
	var c domain.EmployerApplicationCounts
	err := r.db.QueryRow(ctx, query, employerID).Scan(&c.Total, &c.Pending, &c.Shortlisted)
	if err != nil {
		return nil, fmt.Errorf("failed to count employer applications: %w", err)
	}
	return &c, nil
}

// ExpiringJobsCount counts ACTIVE postings whose deadline falls between now
// and the given cutoff.
func (r *dashboardRepo) ExpiringJobsCount(ctx context.Context, employerID int64, before time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_postings
		 WHERE employer_id = $1 AND status = 'ACTIVE' AND deadline IS NOT NULL
		   AND deadline >= NOW() AND deadline <= $2`, employerID, before).Scan(&count)
	return count, err
}

func (r *dashboardRepo) ReviewStats(ctx context.Context, companyID int64) (*domain.ReviewStats, error) {
	var s domain.ReviewStats
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM company_reviews WHERE company_id = $1`,
		companyID).Scan(&s.AverageRating, &s.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to compute review stats: %w", err)
	}
	return &s, nil
}

func (r *dashboardRepo) ApplicationStatusHistogram(ctx context.Context, employerID int64) (map[string]int64, error) {
	query := `SELECT a.status, COUNT(*)
	          FROM applications a
	          JOIN job_postings j ON j.id = a.job_id
	          WHERE j.employer_id = $1
	          GROUP BY a.status`
	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build status histogram: %w", err)
	}
	defer rows.Close()

	histogram := map[string]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		histogram[status] = count
	}
	return histogram, rows.Err()
}

func (r *dashboardRepo) RecentEmployerApplications(ctx context.Context, employerID int64, limit int) ([]domain.EmployerRecentApplication, error) {
	query := `SELECT a.id, u.first_name || ' ' || u.last_name, j.title, a.status, a.applied_at
	          FROM applications a
	          JOIN job_postings j ON j.id = a.job_id
	          JOIN users u ON u.id = a.candidate_id
	          WHERE j.employer_id = $1
	          ORDER BY a.applied_at DESC
	          LIMIT $2`
	rows, err := r.db.Query(ctx, query, employerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent employer applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.EmployerRecentApplication{}
	for rows.Next() {
		var a domain.EmployerRecentApplication
		if err := rows.Scan(&a.ID, &a.CandidateName, &a.JobTitle, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// TopJobsByApplications ranks the employer's postings by count of active
// applications, ties broken by job id ascending.
func (r *dashboardRepo) TopJobsByApplications(ctx context.Context, employerID int64, limit int) ([]domain.JobApplicationCount, error) {
	query := `SELECT j.id, j.title, COUNT(a.id) FILTER (WHERE a.is_active = TRUE)
	          FROM job_postings j
	          LEFT JOIN applications a ON a.job_id = j.id
	          WHERE j.employer_id = $1
	          GROUP BY j.id, j.title
	          ORDER BY 3 DESC, j.id ASC
	          LIMIT $2`
	rows, err := r.db.Query(ctx, query, employerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.JobApplicationCount{}
	for rows.Next() {
		var j domain.JobApplicationCount
		if err := rows.Scan(&j.JobID, &j.Title, &j.Applications); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
