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

// Social account error types
var ErrSocialAccountNotFound = ErrNotFound

// SocialAccountRepository handles linked social media account database operations
type SocialAccountRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSocialAccountRepository creates a new SocialAccountRepository
func NewSocialAccountRepository(db *pgxpool.Pool) *SocialAccountRepository {
	return &SocialAccountRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const socialAccountColumns = "id, name, platform, username, profile_url, profile_image_url, is_active, created_at"

func scanSocialAccount(row pgx.Row) (*models.SocialAccount, error) {
	account := &models.SocialAccount{}
	err := row.Scan(
		&account.ID, &account.Name, &account.Platform, &account.Username,
		&account.ProfileURL, &account.ProfileImageURL, &account.IsActive, &account.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// CreateAccount inserts a new social account and returns its id
func (r *SocialAccountRepository) CreateAccount(ctx context.Context, account *models.SocialAccount) (int64, error) {
	sql, args, err := r.sb.Insert("social_accounts").
		Columns("name", "platform", "username", "profile_url", "profile_image_url", "is_active").
		Values(account.Name, account.Platform, account.Username, account.ProfileURL, account.ProfileImageURL, account.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create social account query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create social account query")
		return 0, fmt.Errorf("error creating social account: %w", err)
	}

	return id, nil
}

// GetAccountByID retrieves a social account by id
func (r *SocialAccountRepository) GetAccountByID(ctx context.Context, id int64) (*models.SocialAccount, error) {
	sql, args, err := r.sb.Select(socialAccountColumns).
		From("social_accounts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get social account query: %w", err)
	}

	account, err := scanSocialAccount(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSocialAccountNotFound
		}
		logger.Error().Err(err).Int64("accountID", id).Msg("Error scanning social account row")
		return nil, fmt.Errorf("error getting social account by ID: %w", err)
	}

	return account, nil
}

// GetAccounts retrieves social accounts. When activeOnly is set, accounts
// that have been switched off are skipped.
func (r *SocialAccountRepository) GetAccounts(ctx context.Context, activeOnly bool) ([]*models.SocialAccount, error) {
	query := r.sb.Select(socialAccountColumns).
		From("social_accounts").
		OrderBy("id ASC")
	if activeOnly {
		query = query.Where(squirrel.Eq{"is_active": true})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get social accounts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get social accounts query")
		return nil, fmt.Errorf("error querying social accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*models.SocialAccount{}
	for rows.Next() {
		account, err := scanSocialAccount(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning social account row during list")
			return nil, fmt.Errorf("error scanning social account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating social account rows: %w", err)
	}

	return accounts, nil
}

// UpdateAccount updates an existing social account
func (r *SocialAccountRepository) UpdateAccount(ctx context.Context, account *models.SocialAccount) error {
	sql, args, err := r.sb.Update("social_accounts").
		SetMap(map[string]interface{}{
			"name":              account.Name,
			"platform":          account.Platform,
			"username":          account.Username,
			"profile_url":       account.ProfileURL,
			"profile_image_url": account.ProfileImageURL,
			"is_active":         account.IsActive,
		}).
		Where(squirrel.Eq{"id": account.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update social account query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", account.ID).Msg("Error executing update social account query")
		return fmt.Errorf("error updating social account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSocialAccountNotFound
	}

	return nil
}

// DeleteAccount deletes a social account by id
func (r *SocialAccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("social_accounts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete social account query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("accountID", id).Msg("Error executing delete social account query")
		return fmt.Errorf("error deleting social account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrSocialAccountNotFound
	}

	return nil
}
