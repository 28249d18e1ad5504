package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// RecruitmentService defines the interface for housing recruitment notices.
// The public site only sees published notices; admins see everything.
type RecruitmentService interface {
	GetRecruitments(ctx context.Context, publishedOnly bool, page, size int) ([]*models.HousingRecruitment, int64, error)
	GetRecruitmentByID(ctx context.Context, id int64, publishedOnly bool) (*models.HousingRecruitment, error)
	CreateRecruitment(ctx context.Context, rec *models.HousingRecruitment) (*models.HousingRecruitment, error)
	UpdateRecruitment(ctx context.Context, rec *models.HousingRecruitment) (*models.HousingRecruitment, error)
	DeleteRecruitment(ctx context.Context, id int64) error
}

type recruitmentServiceImpl struct {
	recruitmentRepo *repositories.RecruitmentRepository
}

// NewRecruitmentService creates a new recruitment service instance
func NewRecruitmentService(recruitmentRepo *repositories.RecruitmentRepository) RecruitmentService {
	return &recruitmentServiceImpl{recruitmentRepo: recruitmentRepo}
}

func (s *recruitmentServiceImpl) validateRecruitment(rec *models.HousingRecruitment) error {
	if strings.TrimSpace(rec.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetRecruitments lists recruitment notices
func (s *recruitmentServiceImpl) GetRecruitments(ctx context.Context, publishedOnly bool, page, size int) ([]*models.HousingRecruitment, int64, error) {
	offset, limit := calculateOffsetLimit(page, size)

	recruitments, err := s.recruitmentRepo.GetRecruitments(ctx, publishedOnly, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing recruitments: %w", err)
	}

	total, err := s.recruitmentRepo.CountRecruitments(ctx, publishedOnly)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting recruitments: %w", err)
	}

	return recruitments, total, nil
}

// GetRecruitmentByID retrieves one notice. With publishedOnly set, an
// unpublished notice reads as not found so drafts never leak.
func (s *recruitmentServiceImpl) GetRecruitmentByID(ctx context.Context, id int64, publishedOnly bool) (*models.HousingRecruitment, error) {
	rec, err := s.recruitmentRepo.GetRecruitmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecruitmentNotFound) {
			return nil, apperrors.ErrRecruitmentNotFound
		}
		return nil, fmt.Errorf("error getting recruitment: %w", err)
	}

	if publishedOnly && !rec.Published {
		return nil, apperrors.ErrRecruitmentNotFound
	}

	return rec, nil
}

// CreateRecruitment stores a new notice
func (s *recruitmentServiceImpl) CreateRecruitment(ctx context.Context, rec *models.HousingRecruitment) (*models.HousingRecruitment, error) {
	if err := s.validateRecruitment(rec); err != nil {
		return nil, err
	}

	id, err := s.recruitmentRepo.CreateRecruitment(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("error creating recruitment: %w", err)
	}

	return s.GetRecruitmentByID(ctx, id, false)
}

// UpdateRecruitment replaces an existing notice
func (s *recruitmentServiceImpl) UpdateRecruitment(ctx context.Context, rec *models.HousingRecruitment) (*models.HousingRecruitment, error) {
	if err := s.validateRecruitment(rec); err != nil {
		return nil, err
	}

	if err := s.recruitmentRepo.UpdateRecruitment(ctx, rec); err != nil {
		if errors.Is(err, repositories.ErrRecruitmentNotFound) {
			return nil, apperrors.ErrRecruitmentNotFound
		}
		return nil, fmt.Errorf("error updating recruitment: %w", err)
	}

	return s.GetRecruitmentByID(ctx, rec.ID, false)
}

// DeleteRecruitment removes a notice
func (s *recruitmentServiceImpl) DeleteRecruitment(ctx context.Context, id int64) error {
	if err := s.recruitmentRepo.DeleteRecruitment(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrRecruitmentNotFound) {
			return apperrors.ErrRecruitmentNotFound
		}
		return fmt.Errorf("error deleting recruitment: %w", err)
	}
	return nil
}
