package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/dberrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// Application error types
var (
	ErrApplicationNotFound = ErrNotFound
	ErrApplicationOrphaned = errors.New("application references a missing program")
)

// ApplicationRepository handles program application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// CreateApplication inserts a program application and returns its id
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.ProgramApplication) (int64, error) {
	sql, args, err := r.sb.Insert("program_applications").
		Columns("program_id", "name", "email", "phone", "message").
		Values(app.ProgramID, app.Name, app.Email, app.Phone, app.Message).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create application query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, ErrApplicationOrphaned
		}
		logger.Error().Err(err).Int64("programID", app.ProgramID).Msg("Error executing create application query")
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// GetApplications retrieves a page of applications, newest first
func (r *ApplicationRepository) GetApplications(ctx context.Context, programID int64, offset uint64, limit int) ([]*models.ProgramApplication, error) {
	builder := r.sb.Select("id", "program_id", "name", "email", "phone", "message", "created_at").
		From("program_applications").
		OrderBy("created_at DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))

	if programID > 0 {
		builder = builder.Where(squirrel.Eq{"program_id": programID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.ProgramApplication{}
	for rows.Next() {
		app := &models.ProgramApplication{}
		if err := rows.Scan(&app.ID, &app.ProgramID, &app.Name, &app.Email, &app.Phone, &app.Message, &app.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning application row")
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}

// CountApplications counts all applications, optionally per program
func (r *ApplicationRepository) CountApplications(ctx context.Context, programID int64) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("program_applications")
	if programID > 0 {
		builder = builder.Where(squirrel.Eq{"program_id": programID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count applications query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting applications")
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}

// DeleteApplication deletes an application by id
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("program_applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error executing delete application query")
		return fmt.Errorf("error deleting application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
