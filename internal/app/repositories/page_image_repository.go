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

// Page image error types
var ErrPageImageNotFound = ErrNotFound

// PageImageRepository handles page image slot database operations
type PageImageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPageImageRepository creates a new PageImageRepository
func NewPageImageRepository(db *pgxpool.Pool) *PageImageRepository {
	return &PageImageRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const pageImageColumns = "id, page_key, image_key, image_url, display_order, created_at"

func scanPageImage(row pgx.Row) (*models.PageImage, error) {
	image := &models.PageImage{}
	err := row.Scan(
		&image.ID, &image.PageKey, &image.ImageKey, &image.ImageURL,
		&image.DisplayOrder, &image.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return image, nil
}

// CreateImage inserts an image into a page slot and returns its id
func (r *PageImageRepository) CreateImage(ctx context.Context, image *models.PageImage) (int64, error) {
	sql, args, err := r.sb.Insert("page_images").
		Columns("page_key", "image_key", "image_url", "display_order").
		Values(image.PageKey, image.ImageKey, image.ImageURL, image.DisplayOrder).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create page image query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("pageKey", image.PageKey).Str("imageKey", image.ImageKey).Msg("Error executing create page image query")
		return 0, fmt.Errorf("error creating page image: %w", err)
	}

	return id, nil
}

// GetImageByID retrieves a page image by id
func (r *PageImageRepository) GetImageByID(ctx context.Context, id int64) (*models.PageImage, error) {
	sql, args, err := r.sb.Select(pageImageColumns).
		From("page_images").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get page image query: %w", err)
	}

	image, err := scanPageImage(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPageImageNotFound
		}
		logger.Error().Err(err).Int64("imageID", id).Msg("Error scanning page image row")
		return nil, fmt.Errorf("error getting page image by ID: %w", err)
	}

	return image, nil
}

// GetImages retrieves all images for a page in slot and display order.
// When imageKey is non-empty only that slot is returned.
func (r *PageImageRepository) GetImages(ctx context.Context, pageKey, imageKey string) ([]*models.PageImage, error) {
	query := r.sb.Select(pageImageColumns).
		From("page_images").
		Where(squirrel.Eq{"page_key": pageKey}).
		OrderBy("image_key ASC, display_order ASC, id ASC")
	if imageKey != "" {
		query = query.Where(squirrel.Eq{"image_key": imageKey})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get page images query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("pageKey", pageKey).Msg("Error executing get page images query")
		return nil, fmt.Errorf("error querying page images: %w", err)
	}
	defer rows.Close()

	images := []*models.PageImage{}
	for rows.Next() {
		image, err := scanPageImage(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning page image row during list")
			return nil, fmt.Errorf("error scanning page image row: %w", err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating page image rows: %w", err)
	}

	return images, nil
}

// CountSlotImages counts how many images already occupy a (pageKey, imageKey)
// slot so the service can enforce the per-slot cap.
func (r *PageImageRepository) CountSlotImages(ctx context.Context, pageKey, imageKey string) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("page_images").
		Where(squirrel.Eq{"page_key": pageKey, "image_key": imageKey}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count slot images query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("pageKey", pageKey).Str("imageKey", imageKey).Msg("Error counting slot images")
		return 0, fmt.Errorf("error counting slot images: %w", err)
	}

	return count, nil
}

// UpdateImage replaces the URL and order of an image in its slot
func (r *PageImageRepository) UpdateImage(ctx context.Context, image *models.PageImage) error {
	sql, args, err := r.sb.Update("page_images").
		SetMap(map[string]interface{}{
			"image_url":     image.ImageURL,
			"display_order": image.DisplayOrder,
		}).
		Where(squirrel.Eq{"id": image.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update page image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("imageID", image.ID).Msg("Error executing update page image query")
		return fmt.Errorf("error updating page image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPageImageNotFound
	}

	return nil
}

// UpdateDisplayOrder reorders the images of one slot in a single
// transaction. Ids not belonging to the slot are ignored.
func (r *PageImageRepository) UpdateDisplayOrder(ctx context.Context, pageKey, imageKey string, orderedIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, id := range orderedIDs {
		if _, err := tx.Exec(ctx,
			`UPDATE page_images SET display_order = $1 WHERE id = $2 AND page_key = $3 AND image_key = $4`,
			i, id, pageKey, imageKey); err != nil {
			logger.Error().Err(err).Int64("imageID", id).Msg("Error reordering page image")
			return fmt.Errorf("error updating display order: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	return nil
}

// DeleteImage deletes a page image by id
func (r *PageImageRepository) DeleteImage(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("page_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete page image query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("imageID", id).Msg("Error executing delete page image query")
		return fmt.Errorf("error deleting page image: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPageImageNotFound
	}

	return nil
}
