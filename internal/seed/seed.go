// Package seed creates the default records a fresh deployment needs: the
// admin account and the baseline site settings.
package seed

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/eohue/ibookee-web-sub001/internal/app/models"
	appRepos "github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/config"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/auth"
)

// CreateDefaultData creates the admin user and default settings if they
// don't exist. Failures are collected rather than aborting startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	settingRepo := appRepos.NewSettingRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (admin user, site settings)...")
	var finalErr error

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		exists, err := userRepo.ExistsByEmail(ctx, cfg.Admin.Email)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking for admin user")
			finalErr = errors.Join(finalErr, err)
		} else if !exists {
			hash, err := auth.HashPassword(cfg.Admin.Password)
			if err != nil {
				lgr.Error().Err(err).Msg("Error hashing admin password")
				finalErr = errors.Join(finalErr, err)
			} else {
				admin := &appModels.User{
					Email:      cfg.Admin.Email,
					Password:   hash,
					Name:       "Administrator",
					RoleType:   appModels.RoleAdmin,
					IsVerified: true,
					IsActive:   true,
				}
				if _, err := userRepo.CreateUser(ctx, admin); err != nil {
					lgr.Error().Err(err).Msg("Error creating admin user")
					finalErr = errors.Join(finalErr, err)
				} else {
					lgr.Info().Str("email", cfg.Admin.Email).Msg("Admin user created")
				}
			}
		}
	} else {
		lgr.Warn().Msg("Admin credentials not configured, skipping admin seed")
	}

	// Settings are only seeded when absent so admin edits survive restarts.
	defaults := map[string]json.RawMessage{
		"site-info": json.RawMessage(`{"companyName":"ibookee","phone":"","email":"contact@ibookee.co.kr","address":""}`),
		"main-hero": json.RawMessage(`{"title":"","subtitle":"","buttonText":"","buttonLink":""}`),
	}
	for key, value := range defaults {
		if _, err := settingRepo.GetSetting(ctx, key); err == nil {
			continue
		}
		setting := &appModels.SiteSetting{Key: key, Value: value}
		if err := settingRepo.UpsertSetting(ctx, setting); err != nil {
			lgr.Error().Err(err).Str("key", key).Msg("Error seeding default setting")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check complete")
	return finalErr
}
