package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anurg29/Aluminiconnect/internal/app/models"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/apperrors"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/dberrors"
)

// userColumns is the full column list scanned into models.User
const userColumns = `id, full_name, email, password_hash, college_id, college_email, department,
	user_type, is_verified, is_active, passing_year, current_company, current_position,
	bio, linkedin_url, github_url, expected_passing_year, current_year,
	profile_picture, skills, created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.CollegeID, &u.CollegeEmail,
		&u.Department, &u.UserType, &u.IsVerified, &u.IsActive,
		&u.PassingYear, &u.CurrentCompany, &u.CurrentPosition,
		&u.Bio, &u.LinkedinURL, &u.GithubURL,
		&u.ExpectedPassingYear, &u.CurrentYear,
		&u.ProfilePicture, &u.Skills, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. Unique violations on the login or college
// email surface as the matching apperrors sentinel.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			full_name, email, password_hash, college_id, college_email, department,
			user_type, is_verified, is_active, passing_year, current_company,
			current_position, bio, linkedin_url, github_url,
			expected_passing_year, current_year, profile_picture, skills
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.FullName, user.Email, user.PasswordHash, user.CollegeID, user.CollegeEmail,
		user.Department, user.UserType, user.IsVerified, user.IsActive,
		user.PassingYear, user.CurrentCompany, user.CurrentPosition,
		user.Bio, user.LinkedinURL, user.GithubURL,
		user.ExpectedPassingYear, user.CurrentYear,
		user.ProfilePicture, user.Skills,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_college_email_key") {
			return apperrors.ErrCollegeEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by login email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if a login email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// CollegeEmailExists checks if a college email is already registered
func (r *UserRepository) CollegeEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE college_email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking college email: %w", err)
	}
	return exists, nil
}

// Update persists the mutable profile columns of a user
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			full_name = $1, skills = $2, profile_picture = $3,
			current_company = $4, current_position = $5, bio = $6,
			linkedin_url = $7, github_url = $8, current_year = $9,
			updated_at = now()
		WHERE id = $10
	`

	result, err := r.db.Exec(ctx, query,
		user.FullName, user.Skills, user.ProfilePicture,
		user.CurrentCompany, user.CurrentPosition, user.Bio,
		user.LinkedinURL, user.GithubURL, user.CurrentYear,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the stored credential hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`,
		passwordHash, userID)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateProfilePicture stores the path of an uploaded avatar
func (r *UserRepository) UpdateProfilePicture(ctx context.Context, userID int64, path string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET profile_picture = $1, updated_at = now() WHERE id = $2`,
		path, userID)
	if err != nil {
		return fmt.Errorf("error updating profile picture: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetVerified flips the admin verification flag
func (r *UserRepository) SetVerified(ctx context.Context, userID int64, verified bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET is_verified = $1, updated_at = now() WHERE id = $2`,
		verified, userID)
	if err != nil {
		return fmt.Errorf("error updating verification flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetActive flips the activation flag. Deactivation blocks login
// without deleting any data.
func (r *UserRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE users SET is_active = $1, updated_at = now() WHERE id = $2`,
		active, userID)
	if err != nil {
		return fmt.Errorf("error updating activation flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user. Jobs, applications, messages and
// conversations cascade at the schema level.
func (r *UserRepository) Delete(ctx context.Context, userID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) queryUsers(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.User, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func directoryBase(userType models.UserType) squirrel.SelectBuilder {
	return squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"user_type": userType, "is_verified": true, "is_active": true}).
		PlaceholderFormat(squirrel.Dollar)
}

// ListAlumni lists verified, active alumni with conjunctive filters.
// Text filters are case-insensitive substring matches.
func (r *UserRepository) ListAlumni(ctx context.Context, department, company, search string, passingYear *int) ([]*models.User, error) {
	builder := directoryBase(models.UserTypeAlumni)

	if department != "" {
		builder = builder.Where(squirrel.Eq{"department": department})
	}
	if company != "" {
		builder = builder.Where(squirrel.ILike{"current_company": "%" + company + "%"})
	}
	if passingYear != nil {
		builder = builder.Where(squirrel.Eq{"passing_year": *passingYear})
	}
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"current_company": pattern},
			squirrel.ILike{"current_position": pattern},
		})
	}

	return r.queryUsers(ctx, builder)
}

// ListStudents lists verified, active students with conjunctive filters
func (r *UserRepository) ListStudents(ctx context.Context, department, search string, currentYear *int) ([]*models.User, error) {
	builder := directoryBase(models.UserTypeStudent)

	if department != "" {
		builder = builder.Where(squirrel.Eq{"department": department})
	}
	if currentYear != nil {
		builder = builder.Where(squirrel.Eq{"current_year": *currentYear})
	}
	if search != "" {
		builder = builder.Where(squirrel.ILike{"full_name": "%" + search + "%"})
	}

	return r.queryUsers(ctx, builder)
}

// DistinctDepartments returns the sorted distinct departments of the
// verified, active population
func (r *UserRepository) DistinctDepartments(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT department FROM users WHERE is_verified = true AND is_active = true`)
	if err != nil {
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		if d != "" {
			departments = append(departments, d)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	sort.Strings(departments)
	return departments, nil
}

// CountDirectory counts the verified, active users of one role
func (r *UserRepository) CountDirectory(ctx context.Context, userType models.UserType) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE user_type = $1 AND is_verified = true AND is_active = true`,
		userType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// ListPending lists unverified users, newest first, optionally
// restricted to one role
func (r *UserRepository) ListPending(ctx context.Context, userType string) ([]*models.User, error) {
	builder := squirrel.Select(userColumns).
		From("users").
		Where(squirrel.Eq{"is_verified": false}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if userType != "" {
		builder = builder.Where(squirrel.Eq{"user_type": userType})
	}

	return r.queryUsers(ctx, builder)
}

// ListAll lists every user with the admin filters applied, newest first
func (r *UserRepository) ListAll(ctx context.Context, userType string, isVerified, isActive *bool, search string) ([]*models.User, error) {
	builder := squirrel.Select(userColumns).
		From("users").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if userType != "" {
		builder = builder.Where(squirrel.Eq{"user_type": userType})
	}
	if isVerified != nil {
		builder = builder.Where(squirrel.Eq{"is_verified": *isVerified})
	}
	if isActive != nil {
		builder = builder.Where(squirrel.Eq{"is_active": *isActive})
	}
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"full_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"college_id": pattern},
		})
	}

	return r.queryUsers(ctx, builder)
}

// UserCounts aggregates the platform-wide user statistics
type UserCounts struct {
	Total            int64
	Verified         int64
	Pending          int64
	Active           int64
	TotalStudents    int64
	TotalAlumni      int64
	VerifiedStudents int64
	VerifiedAlumni   int64
}

// CountAll computes all admin dashboard counters in one round trip
func (r *UserRepository) CountAll(ctx context.Context) (*UserCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_verified),
			COUNT(*) FILTER (WHERE NOT is_verified),
			COUNT(*) FILTER (WHERE is_verified AND is_active),
			COUNT(*) FILTER (WHERE user_type = 'student'),
			COUNT(*) FILTER (WHERE user_type = 'alumni'),
			COUNT(*) FILTER (WHERE user_type = 'student' AND is_verified),
			COUNT(*) FILTER (WHERE user_type = 'alumni' AND is_verified)
		FROM users
	`

	counts := &UserCounts{}
	err := r.db.QueryRow(ctx, query).Scan(
		&counts.Total, &counts.Verified, &counts.Pending, &counts.Active,
		&counts.TotalStudents, &counts.TotalAlumni,
		&counts.VerifiedStudents, &counts.VerifiedAlumni,
	)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}

	return counts, nil
}
