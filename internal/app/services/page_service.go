package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// PageService manages page image slots and the keyed site settings.
type PageService interface {
	GetPageImages(ctx context.Context, pageKey, imageKey string) ([]*models.PageImage, error)
	AddPageImage(ctx context.Context, req *dto.PageImageRequest) (*models.PageImage, error)
	UpdatePageImage(ctx context.Context, image *models.PageImage) (*models.PageImage, error)
	ReorderSlot(ctx context.Context, pageKey, imageKey string, orderedIDs []int64) error
	DeletePageImage(ctx context.Context, id int64) error

	GetSetting(ctx context.Context, key string) (*models.SiteSetting, error)
	GetSettings(ctx context.Context) ([]*models.SiteSetting, error)
	UpsertSetting(ctx context.Context, key string, value json.RawMessage) (*models.SiteSetting, error)
	DeleteSetting(ctx context.Context, key string) error
}

type pageServiceImpl struct {
	pageImageRepo *repositories.PageImageRepository
	settingRepo   *repositories.SettingRepository
}

// NewPageService creates a new page service instance
func NewPageService(pageImageRepo *repositories.PageImageRepository, settingRepo *repositories.SettingRepository) PageService {
	return &pageServiceImpl{
		pageImageRepo: pageImageRepo,
		settingRepo:   settingRepo,
	}
}

// GetPageImages lists the images of a page, or of one slot when imageKey is set
func (s *pageServiceImpl) GetPageImages(ctx context.Context, pageKey, imageKey string) ([]*models.PageImage, error) {
	if pageKey == "" {
		return nil, fmt.Errorf("%w: page key is required", apperrors.ErrValidationFailed)
	}

	images, err := s.pageImageRepo.GetImages(ctx, pageKey, imageKey)
	if err != nil {
		return nil, fmt.Errorf("error listing page images: %w", err)
	}
	return images, nil
}

// AddPageImage binds an uploaded URL to a slot, enforcing the per-slot cap
func (s *pageServiceImpl) AddPageImage(ctx context.Context, req *dto.PageImageRequest) (*models.PageImage, error) {
	count, err := s.pageImageRepo.CountSlotImages(ctx, req.PageKey, req.ImageKey)
	if err != nil {
		return nil, fmt.Errorf("error counting slot images: %w", err)
	}
	if count >= models.MaxImagesPerSlot {
		return nil, apperrors.ErrImageSlotFull
	}

	image := &models.PageImage{
		PageKey:      req.PageKey,
		ImageKey:     req.ImageKey,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}

	id, err := s.pageImageRepo.CreateImage(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("error creating page image: %w", err)
	}

	created, err := s.pageImageRepo.GetImageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading page image: %w", err)
	}
	return created, nil
}

// UpdatePageImage replaces the URL or order of a slot image
func (s *pageServiceImpl) UpdatePageImage(ctx context.Context, image *models.PageImage) (*models.PageImage, error) {
	if err := s.pageImageRepo.UpdateImage(ctx, image); err != nil {
		if errors.Is(err, repositories.ErrPageImageNotFound) {
			return nil, apperrors.ErrPageImageNotFound
		}
		return nil, fmt.Errorf("error updating page image: %w", err)
	}

	updated, err := s.pageImageRepo.GetImageByID(ctx, image.ID)
	if err != nil {
		return nil, fmt.Errorf("error reloading page image: %w", err)
	}
	return updated, nil
}

// ReorderSlot rewrites the display order of one slot
func (s *pageServiceImpl) ReorderSlot(ctx context.Context, pageKey, imageKey string, orderedIDs []int64) error {
	if pageKey == "" || imageKey == "" {
		return fmt.Errorf("%w: page key and image key are required", apperrors.ErrValidationFailed)
	}
	if len(orderedIDs) == 0 {
		return fmt.Errorf("%w: ordered ids cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.pageImageRepo.UpdateDisplayOrder(ctx, pageKey, imageKey, orderedIDs); err != nil {
		return fmt.Errorf("error reordering slot: %w", err)
	}
	return nil
}

// DeletePageImage removes a slot image
func (s *pageServiceImpl) DeletePageImage(ctx context.Context, id int64) error {
	if err := s.pageImageRepo.DeleteImage(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPageImageNotFound) {
			return apperrors.ErrPageImageNotFound
		}
		return fmt.Errorf("error deleting page image: %w", err)
	}
	return nil
}

// GetSetting retrieves one settings blob
func (s *pageServiceImpl) GetSetting(ctx context.Context, key string) (*models.SiteSetting, error) {
	setting, err := s.settingRepo.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return nil, apperrors.ErrSettingNotFound
		}
		return nil, fmt.Errorf("error getting setting: %w", err)
	}
	return setting, nil
}

// GetSettings retrieves every settings blob
func (s *pageServiceImpl) GetSettings(ctx context.Context) ([]*models.SiteSetting, error) {
	settings, err := s.settingRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing settings: %w", err)
	}
	return settings, nil
}

// UpsertSetting stores a settings blob after checking it is valid JSON
func (s *pageServiceImpl) UpsertSetting(ctx context.Context, key string, value json.RawMessage) (*models.SiteSetting, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: setting key is required", apperrors.ErrValidationFailed)
	}
	if !json.Valid(value) {
		return nil, fmt.Errorf("%w: setting value must be valid JSON", apperrors.ErrValidationFailed)
	}

	setting := &models.SiteSetting{Key: key, Value: value}
	if err := s.settingRepo.UpsertSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("error upserting setting: %w", err)
	}

	return s.GetSetting(ctx, key)
}

// DeleteSetting removes a settings blob
func (s *pageServiceImpl) DeleteSetting(ctx context.Context, key string) error {
	if err := s.settingRepo.DeleteSetting(ctx, key); err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return apperrors.ErrSettingNotFound
		}
		return fmt.Errorf("error deleting setting: %w", err)
	}
	return nil
}
