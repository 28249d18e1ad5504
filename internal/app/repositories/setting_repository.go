package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// Setting error types
var ErrSettingNotFound = ErrNotFound

// SettingRepository handles keyed site setting database operations. Values
// are opaque JSONB blobs owned by the client.
type SettingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// GetSetting retrieves a setting by key
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (*models.SiteSetting, error) {
	sql, args, err := r.sb.Select("key", "value", "updated_at").
		From("site_settings").
		Where(squirrel.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get setting query: %w", err)
	}

	setting := &models.SiteSetting{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		logger.Error().Err(err).Str("key", key).Msg("Error scanning setting row")
		return nil, fmt.Errorf("error getting setting: %w", err)
	}

	return setting, nil
}

// GetSettings retrieves every stored setting keyed by name
func (r *SettingRepository) GetSettings(ctx context.Context) ([]*models.SiteSetting, error) {
	sql, args, err := r.sb.Select("key", "value", "updated_at").
		From("site_settings").
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get settings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get settings query")
		return nil, fmt.Errorf("error querying settings: %w", err)
	}
	defer rows.Close()

	settings := []*models.SiteSetting{}
	for rows.Next() {
		setting := &models.SiteSetting{}
		if err := rows.Scan(&setting.Key, &setting.Value, &setting.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning setting row during list")
			return nil, fmt.Errorf("error scanning setting row: %w", err)
		}
		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", err)
	}

	return settings, nil
}

// UpsertSetting stores a setting value, inserting the key on first write
func (r *SettingRepository) UpsertSetting(ctx context.Context, setting *models.SiteSetting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO site_settings (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		setting.Key, setting.Value)
	if err != nil {
		logger.Error().Err(err).Str("key", setting.Key).Msg("Error upserting setting")
		return fmt.Errorf("error upserting setting: %w", err)
	}

	return nil
}

// DeleteSetting removes a setting by key
func (r *SettingRepository) DeleteSetting(ctx context.Context, key string) error {
	sql, args, err := r.sb.Delete("site_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete setting query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Error executing delete setting query")
		return fmt.Errorf("error deleting setting: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSettingNotFound
	}

	return nil
}
