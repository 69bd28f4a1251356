package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/dberrors"
)

const applicationColumns = `a.id, a.job_id, a.student_id, a.cover_letter, a.resume_path,
	a.status, a.applied_at, a.updated_at,
	j.title, s.full_name, s.email`

// ApplicationRepository handles database operations for job applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	a := &models.Application{}
	err := row.Scan(
		&a.ID, &a.JobID, &a.StudentID, &a.CoverLetter, &a.ResumePath,
		&a.Status, &a.AppliedAt, &a.UpdatedAt,
		&a.JobTitle, &a.StudentName, &a.StudentEmail,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new application. A second application by the same
// student to the same job trips the unique pair constraint and maps to
// ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	query := `
		INSERT INTO applications (job_id, student_id, cover_letter, resume_path, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, applied_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		application.JobID, application.StudentID,
		application.CoverLetter, application.ResumePath, application.Status,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// Exists checks whether a student has already applied to a job
func (r *ApplicationRepository) Exists(ctx context.Context, jobID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND student_id = $2)`,
		jobID, studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return exists, nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users s ON s.id = a.student_id
		WHERE a.id = $1`, applicationColumns)

	application, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return application, nil
}

func (r *ApplicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, application)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// ListByJob lists the applications received by a job, newest first
func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]*models.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users s ON s.id = a.student_id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`, applicationColumns)

	return r.queryApplications(ctx, query, jobID)
}

// ListByStudent lists the applications submitted by a student, newest first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users s ON s.id = a.student_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC`, applicationColumns)

	return r.queryApplications(ctx, query, studentID)
}

// UpdateStatus moves an application to a new review status
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Count counts all applications on the platform
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// CountByStudent counts the applications submitted by one student
func (r *ApplicationRepository) CountByStudent(ctx context.Context, studentID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE student_id = $1`, studentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}
