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

// History error types
var ErrMilestoneNotFound = ErrNotFound

// HistoryRepository handles company history timeline database operations
type HistoryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const milestoneColumns = "id, year, month, title, description, link, is_highlight, display_order, created_at"

func scanMilestone(row pgx.Row) (*models.HistoryMilestone, error) {
	m := &models.HistoryMilestone{}
	err := row.Scan(
		&m.ID, &m.Year, &m.Month, &m.Title, &m.Description,
		&m.Link, &m.IsHighlight, &m.DisplayOrder, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMilestone inserts a new history milestone and returns its id
func (r *HistoryRepository) CreateMilestone(ctx context.Context, m *models.HistoryMilestone) (int64, error) {
	sql, args, err := r.sb.Insert("history_milestones").
		Columns("year", "month", "title", "description", "link", "is_highlight", "display_order").
		Values(m.Year, m.Month, m.Title, m.Description, m.Link, m.IsHighlight, m.DisplayOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create milestone query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create milestone query")
		return 0, fmt.Errorf("error creating milestone: %w", err)
	}

	return id, nil
}

// GetMilestoneByID retrieves a milestone by id
func (r *HistoryRepository) GetMilestoneByID(ctx context.Context, id int64) (*models.HistoryMilestone, error) {
	sql, args, err := r.sb.Select(milestoneColumns).
		From("history_milestones").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get milestone query: %w", err)
	}

	m, err := scanMilestone(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMilestoneNotFound
		}
		logger.Error().Err(err).Int64("milestoneID", id).Msg("Error scanning milestone row")
		return nil, fmt.Errorf("error getting milestone by ID: %w", err)
	}

	return m, nil
}

// GetMilestones retrieves the full timeline, most recent year first and
// display order within each year
func (r *HistoryRepository) GetMilestones(ctx context.Context) ([]*models.HistoryMilestone, error) {
	sql, args, err := r.sb.Select(milestoneColumns).
		From("history_milestones").
		OrderBy("year DESC, display_order ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get milestones query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get milestones query")
		return nil, fmt.Errorf("error querying milestones: %w", err)
	}
	defer rows.Close()

	milestones := []*models.HistoryMilestone{}
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning milestone row during list")
			return nil, fmt.Errorf("error scanning milestone row: %w", err)
		}
		milestones = append(milestones, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating milestone rows: %w", err)
	}

	return milestones, nil
}

// UpdateMilestone updates an existing milestone
func (r *HistoryRepository) UpdateMilestone(ctx context.Context, m *models.HistoryMilestone) error {
	sql, args, err := r.sb.Update("history_milestones").
		SetMap(map[string]interface{}{
			"year":          m.Year,
			"month":         m.Month,
			"title":         m.Title,
			"description":   m.Description,
			"link":          m.Link,
			"is_highlight":  m.IsHighlight,
			"display_order": m.DisplayOrder,
		}).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update milestone query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("milestoneID", m.ID).Msg("Error executing update milestone query")
		return fmt.Errorf("error updating milestone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}

// DeleteMilestone deletes a milestone by id
func (r *HistoryRepository) DeleteMilestone(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("history_milestones").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete milestone query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("milestoneID", id).Msg("Error executing delete milestone query")
		return fmt.Errorf("error deleting milestone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMilestoneNotFound
	}

	return nil
}
