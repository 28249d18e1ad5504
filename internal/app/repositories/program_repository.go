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

// Program error types
var (
	ErrProgramNotFound = ErrNotFound
)

// ProgramRepository handles resident program database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const programColumns = "id, program_type, title, description, content, start_date, end_date, max_participants, status, created_at"

func scanProgram(row pgx.Row) (*models.ResidentProgram, error) {
	program := &models.ResidentProgram{}
	err := row.Scan(
		&program.ID, &program.ProgramType, &program.Title, &program.Description,
		&program.Content, &program.StartDate, &program.EndDate,
		&program.MaxParticipants, &program.Status, &program.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// CreateProgram inserts a new resident program and returns its id
func (r *ProgramRepository) CreateProgram(ctx context.Context, program *models.ResidentProgram) (int64, error) {
	sql, args, err := r.sb.Insert("resident_programs").
		Columns("program_type", "title", "description", "content", "start_date", "end_date", "max_participants", "status").
		Values(program.ProgramType, program.Title, program.Description, program.Content, program.StartDate, program.EndDate, program.MaxParticipants, program.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create program query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("title", program.Title).Msg("Error executing create program query")
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	return id, nil
}

// GetProgramByID retrieves a resident program by id
func (r *ProgramRepository) GetProgramByID(ctx context.Context, id int64) (*models.ResidentProgram, error) {
	sql, args, err := r.sb.Select(programColumns).
		From("resident_programs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		logger.Error().Err(err).Int64("programID", id).Msg("Error scanning program row")
		return nil, fmt.Errorf("error getting program by ID: %w", err)
	}

	return program, nil
}

// GetPrograms retrieves a page of programs, newest start date first
func (r *ProgramRepository) GetPrograms(ctx context.Context, status models.ProgramStatus, offset uint64, limit int) ([]*models.ResidentProgram, error) {
	builder := r.sb.Select(programColumns).
		From("resident_programs").
		OrderBy("start_date DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get programs query")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.ResidentProgram{}
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning program row during list")
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// CountPrograms counts programs matching the optional status filter
func (r *ProgramRepository) CountPrograms(ctx context.Context, status models.ProgramStatus) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("resident_programs")
	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count programs query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting programs")
		return 0, fmt.Errorf("error counting programs: %w", err)
	}

	return count, nil
}

// UpdateProgram updates an existing resident program
func (r *ProgramRepository) UpdateProgram(ctx context.Context, program *models.ResidentProgram) error {
	sql, args, err := r.sb.Update("resident_programs").
		SetMap(map[string]interface{}{
			"program_type":     program.ProgramType,
			"title":            program.Title,
			"description":      program.Description,
			"content":          program.Content,
			"start_date":       program.StartDate,
			"end_date":         program.EndDate,
			"max_participants": program.MaxParticipants,
			"status":           program.Status,
		}).
		Where(squirrel.Eq{"id": program.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", program.ID).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// DeleteProgram deletes a resident program by id
func (r *ProgramRepository) DeleteProgram(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("resident_programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", id).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}
