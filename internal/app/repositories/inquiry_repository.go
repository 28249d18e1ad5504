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

// Inquiry error types
var ErrInquiryNotFound = ErrNotFound

// InquiryRepository handles contact inquiry database operations. Inquiries
// are write-once: there is no update path.
type InquiryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const inquiryColumns = "id, type, name, email, phone, company, message, created_at"

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{}
	err := row.Scan(
		&inquiry.ID, &inquiry.Type, &inquiry.Name, &inquiry.Email,
		&inquiry.Phone, &inquiry.Company, &inquiry.Message, &inquiry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

// CreateInquiry inserts a new inquiry and returns its id
func (r *InquiryRepository) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) (int64, error) {
	sql, args, err := r.sb.Insert("inquiries").
		Columns("type", "name", "email", "phone", "company", "message").
		Values(inquiry.Type, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Company, inquiry.Message).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create inquiry query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create inquiry query")
		return 0, fmt.Errorf("error creating inquiry: %w", err)
	}

	return id, nil
}

// GetInquiryByID retrieves an inquiry by id
func (r *InquiryRepository) GetInquiryByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	sql, args, err := r.sb.Select(inquiryColumns).
		From("inquiries").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get inquiry query: %w", err)
	}

	inquiry, err := scanInquiry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInquiryNotFound
		}
		logger.Error().Err(err).Int64("inquiryID", id).Msg("Error scanning inquiry row")
		return nil, fmt.Errorf("error getting inquiry by ID: %w", err)
	}

	return inquiry, nil
}

// GetInquiries retrieves a page of inquiries, newest first, optionally
// filtered by type
func (r *InquiryRepository) GetInquiries(ctx context.Context, inquiryType models.InquiryType, offset uint64, limit int) ([]*models.Inquiry, error) {
	query := r.sb.Select(inquiryColumns).
		From("inquiries").
		OrderBy("created_at DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))
	if inquiryType != "" {
		query = query.Where(squirrel.Eq{"type": inquiryType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get inquiries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get inquiries query")
		return nil, fmt.Errorf("error querying inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := []*models.Inquiry{}
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning inquiry row during list")
			return nil, fmt.Errorf("error scanning inquiry row: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiry rows: %w", err)
	}

	return inquiries, nil
}

// CountInquiries counts inquiries, optionally filtered by type
func (r *InquiryRepository) CountInquiries(ctx context.Context, inquiryType models.InquiryType) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("inquiries")
	if inquiryType != "" {
		query = query.Where(squirrel.Eq{"type": inquiryType})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count inquiries query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting inquiries")
		return 0, fmt.Errorf("error counting inquiries: %w", err)
	}

	return count, nil
}

// DeleteInquiry deletes an inquiry by id
func (r *InquiryRepository) DeleteInquiry(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("inquiries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete inquiry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("inquiryID", id).Msg("Error executing delete inquiry query")
		return fmt.Errorf("error deleting inquiry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrInquiryNotFound
	}

	return nil
}
