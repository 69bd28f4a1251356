package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Anurg29/Aluminiconnect/internal/app/models"
	appRepos "github.com/Anurg29/Aluminiconnect/internal/app/repositories"
	"github.com/Anurg29/Aluminiconnect/internal/config"
	"github.com/Anurg29/Aluminiconnect/internal/pkg/auth"
)

// CreateDefaultData ensures each configured admin email has a user row.
// Admin accounts are created as verified, active alumni so they can log in
// immediately after a fresh deployment.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin accounts...")
	var finalErr error

	for _, adminEmail := range cfg.Admin.Emails {
		email := strings.ToLower(strings.TrimSpace(adminEmail))
		if email == "" {
			continue
		}

		exists, err := userRepo.EmailExists(ctx, email)
		if err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Error checking if admin user exists")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			lgr.Debug().Str("email", email).Msg("Admin user already exists, skipping creation")
			continue
		}

		hashedPassword, err := auth.HashPassword(cfg.Admin.SeedPassword)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		admin := &appModels.User{
			FullName:     "System Administrator",
			Email:        email,
			PasswordHash: hashedPassword,
			CollegeID:    "ADMIN",
			CollegeEmail: email,
			Department:   "Administration",
			UserType:     appModels.UserTypeAlumni,
			IsVerified:   true,
			IsActive:     true,
		}

		if err := userRepo.Create(ctx, admin); err != nil {
			lgr.Error().Err(err).Str("email", email).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Int64("adminID", admin.ID).Str("email", email).Msg("Default admin user created")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
