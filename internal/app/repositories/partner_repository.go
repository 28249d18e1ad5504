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

// Partner error types
var ErrPartnerNotFound = ErrNotFound

// PartnerRepository handles partner organization database operations
type PartnerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPartnerRepository creates a new PartnerRepository
func NewPartnerRepository(db *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const partnerColumns = "id, name, logo_url, category, display_order, created_at"

func scanPartner(row pgx.Row) (*models.Partner, error) {
	partner := &models.Partner{}
	err := row.Scan(
		&partner.ID, &partner.Name, &partner.LogoURL, &partner.Category,
		&partner.DisplayOrder, &partner.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return partner, nil
}

// CreatePartner inserts a new partner and returns its id
func (r *PartnerRepository) CreatePartner(ctx context.Context, partner *models.Partner) (int64, error) {
	sql, args, err := r.sb.Insert("partners").
		Columns("name", "logo_url", "category", "display_order").
		Values(partner.Name, partner.LogoURL, partner.Category, partner.DisplayOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create partner query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create partner query")
		return 0, fmt.Errorf("error creating partner: %w", err)
	}

	return id, nil
}

// GetPartnerByID retrieves a partner by id
func (r *PartnerRepository) GetPartnerByID(ctx context.Context, id int64) (*models.Partner, error) {
	sql, args, err := r.sb.Select(partnerColumns).
		From("partners").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get partner query: %w", err)
	}

	partner, err := scanPartner(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPartnerNotFound
		}
		logger.Error().Err(err).Int64("partnerID", id).Msg("Error scanning partner row")
		return nil, fmt.Errorf("error getting partner by ID: %w", err)
	}

	return partner, nil
}

// GetPartners retrieves all partners in display order, optionally filtered
// by category
func (r *PartnerRepository) GetPartners(ctx context.Context, category string) ([]*models.Partner, error) {
	query := r.sb.Select(partnerColumns).
		From("partners").
		OrderBy("display_order ASC, id ASC")
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get partners query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get partners query")
		return nil, fmt.Errorf("error querying partners: %w", err)
	}
	defer rows.Close()

	partners := []*models.Partner{}
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning partner row during list")
			return nil, fmt.Errorf("error scanning partner row: %w", err)
		}
		partners = append(partners, partner)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating partner rows: %w", err)
	}

	return partners, nil
}

// UpdatePartner updates an existing partner
func (r *PartnerRepository) UpdatePartner(ctx context.Context, partner *models.Partner) error {
	sql, args, err := r.sb.Update("partners").
		SetMap(map[string]interface{}{
			"name":          partner.Name,
			"logo_url":      partner.LogoURL,
			"category":      partner.Category,
			"display_order": partner.DisplayOrder,
		}).
		Where(squirrel.Eq{"id": partner.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update partner query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("partnerID", partner.ID).Msg("Error executing update partner query")
		return fmt.Errorf("error updating partner: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPartnerNotFound
	}

	return nil
}

// DeletePartner deletes a partner by id
func (r *PartnerRepository) DeletePartner(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("partners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete partner query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("partnerID", id).Msg("Error executing delete partner query")
		return fmt.Errorf("error deleting partner: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPartnerNotFound
	}

	return nil
}
