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

// ErrRecruitmentNotFound is returned when a recruitment row is missing.
var ErrRecruitmentNotFound = ErrNotFound

// RecruitmentRepository handles housing recruitment database operations
type RecruitmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRecruitmentRepository creates a new RecruitmentRepository
func NewRecruitmentRepository(db *pgxpool.Pool) *RecruitmentRepository {
	return &RecruitmentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const recruitmentColumns = "id, title, content, file_url, published, created_at"

func scanRecruitment(row pgx.Row) (*models.HousingRecruitment, error) {
	rec := &models.HousingRecruitment{}
	err := row.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.FileURL, &rec.Published, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateRecruitment inserts a new recruitment notice and returns its id
func (r *RecruitmentRepository) CreateRecruitment(ctx context.Context, rec *models.HousingRecruitment) (int64, error) {
	sql, args, err := r.sb.Insert("housing_recruitments").
		Columns("title", "content", "file_url", "published").
		Values(rec.Title, rec.Content, rec.FileURL, rec.Published).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create recruitment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("title", rec.Title).Msg("Error executing create recruitment query")
		return 0, fmt.Errorf("error creating recruitment: %w", err)
	}

	return id, nil
}

// GetRecruitmentByID retrieves a recruitment notice by id
func (r *RecruitmentRepository) GetRecruitmentByID(ctx context.Context, id int64) (*models.HousingRecruitment, error) {
	sql, args, err := r.sb.Select(recruitmentColumns).
		From("housing_recruitments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get recruitment query: %w", err)
	}

	rec, err := scanRecruitment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecruitmentNotFound
		}
		logger.Error().Err(err).Int64("recruitmentID", id).Msg("Error scanning recruitment row")
		return nil, fmt.Errorf("error getting recruitment by ID: %w", err)
	}

	return rec, nil
}

// GetRecruitments retrieves a page of recruitment notices, newest first.
// When publishedOnly is true, unpublished drafts are excluded.
func (r *RecruitmentRepository) GetRecruitments(ctx context.Context, publishedOnly bool, offset uint64, limit int) ([]*models.HousingRecruitment, error) {
	builder := r.sb.Select(recruitmentColumns).
		From("housing_recruitments").
		OrderBy("created_at DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))

	if publishedOnly {
		builder = builder.Where(squirrel.Eq{"published": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get recruitments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get recruitments query")
		return nil, fmt.Errorf("error querying recruitments: %w", err)
	}
	defer rows.Close()

	recs := []*models.HousingRecruitment{}
	for rows.Next() {
		rec, err := scanRecruitment(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning recruitment row during list")
			return nil, fmt.Errorf("error scanning recruitment row: %w", err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recruitment rows: %w", err)
	}

	return recs, nil
}

// CountRecruitments counts recruitment notices
func (r *RecruitmentRepository) CountRecruitments(ctx context.Context, publishedOnly bool) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("housing_recruitments")
	if publishedOnly {
		builder = builder.Where(squirrel.Eq{"published": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count recruitments query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting recruitments")
		return 0, fmt.Errorf("error counting recruitments: %w", err)
	}

	return count, nil
}

// UpdateRecruitment updates an existing recruitment notice
func (r *RecruitmentRepository) UpdateRecruitment(ctx context.Context, rec *models.HousingRecruitment) error {
	sql, args, err := r.sb.Update("housing_recruitments").
		SetMap(map[string]interface{}{
			"title":     rec.Title,
			"content":   rec.Content,
			"file_url":  rec.FileURL,
			"published": rec.Published,
		}).
		Where(squirrel.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update recruitment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("recruitmentID", rec.ID).Msg("Error executing update recruitment query")
		return fmt.Errorf("error updating recruitment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrRecruitmentNotFound
	}

	return nil
}

// DeleteRecruitment deletes a recruitment notice by id
func (r *RecruitmentRepository) DeleteRecruitment(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("housing_recruitments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete recruitment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("recruitmentID", id).Msg("Error executing delete recruitment query")
		return fmt.Errorf("error deleting recruitment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrRecruitmentNotFound
	}

	return nil
}
