package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
)

// jobColumns selects a job joined with its poster's name and a live
// application count
const jobColumns = `j.id, j.alumni_id, j.title, j.company, j.location, j.job_type,
	j.description, j.requirements, j.salary_range, j.application_deadline,
	j.is_active, j.created_at, j.updated_at,
	u.full_name,
	(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id)`

// JobRepository handles database operations for job postings
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{db: db}
}

func scanJob(row pgx.Row) (*models.Job, error) {
	j := &models.Job{}
	err := row.Scan(
		&j.ID, &j.AlumniID, &j.Title, &j.Company, &j.Location, &j.JobType,
		&j.Description, &j.Requirements, &j.SalaryRange, &j.ApplicationDeadline,
		&j.IsActive, &j.CreatedAt, &j.UpdatedAt,
		&j.AlumniName, &j.ApplicationsCount,
	)
	if err != nil {
		return nil, err
	}
	return j, nil
}

// Create inserts a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (
			alumni_id, title, company, location, job_type, description,
			requirements, salary_range, application_deadline, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		job.AlumniID, job.Title, job.Company, job.Location, job.JobType,
		job.Description, job.Requirements, job.SalaryRange,
		job.ApplicationDeadline, job.IsActive,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs j JOIN users u ON u.id = j.alumni_id WHERE j.id = $1`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	return job, nil
}

func (r *JobRepository) queryJobs(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Job, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// List lists active jobs newest first with conjunctive filters
func (r *JobRepository) List(ctx context.Context, jobType, company, location, search string) ([]*models.Job, error) {
	builder := squirrel.Select(jobColumns).
		From("jobs j").
		Join("users u ON u.id = j.alumni_id").
		Where(squirrel.Eq{"j.is_active": true}).
		OrderBy("j.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if jobType != "" {
		builder = builder.Where(squirrel.Eq{"j.job_type": jobType})
	}
	if company != "" {
		builder = builder.Where(squirrel.ILike{"j.company": "%" + company + "%"})
	}
	if location != "" {
		builder = builder.Where(squirrel.ILike{"j.location": "%" + location + "%"})
	}
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"j.title": pattern},
			squirrel.ILike{"j.description": pattern},
		})
	}

	return r.queryJobs(ctx, builder)
}

// ListByAlumni lists every job posted by one alumnus, active or not,
// newest first
func (r *JobRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]*models.Job, error) {
	builder := squirrel.Select(jobColumns).
		From("jobs j").
		Join("users u ON u.id = j.alumni_id").
		Where(squirrel.Eq{"j.alumni_id": alumniID}).
		OrderBy("j.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryJobs(ctx, builder)
}

// Update persists the mutable columns of a job posting
func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	query := `
		UPDATE jobs SET
			title = $1, company = $2, location = $3, job_type = $4,
			description = $5, requirements = $6, salary_range = $7,
			application_deadline = $8, is_active = $9, updated_at = now()
		WHERE id = $10
	`

	result, err := r.db.Exec(ctx, query,
		job.Title, job.Company, job.Location, job.JobType,
		job.Description, job.Requirements, job.SalaryRange,
		job.ApplicationDeadline, job.IsActive, job.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Delete removes a job posting. Its applications cascade at the
// schema level.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}

// CountActive counts the currently active job postings
func (r *JobRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}
	return count, nil
}

// CountByAlumni counts the jobs posted by one alumnus
func (r *JobRepository) CountByAlumni(ctx context.Context, alumniID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE alumni_id = $1`, alumniID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting jobs: %w", err)
	}
	return count, nil
}
