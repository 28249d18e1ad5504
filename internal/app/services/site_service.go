package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// SiteService covers the small site-content collections: partners, the
// company history timeline and linked social accounts.
type SiteService interface {
	GetPartners(ctx context.Context, category string) ([]*models.Partner, error)
	CreatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error)
	UpdatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error)
	DeletePartner(ctx context.Context, id int64) error

	GetMilestones(ctx context.Context) ([]*models.HistoryMilestone, error)
	CreateMilestone(ctx context.Context, m *models.HistoryMilestone) (*models.HistoryMilestone, error)
	UpdateMilestone(ctx context.Context, m *models.HistoryMilestone) (*models.HistoryMilestone, error)
	DeleteMilestone(ctx context.Context, id int64) error

	GetSocialAccounts(ctx context.Context, activeOnly bool) ([]*models.SocialAccount, error)
	CreateSocialAccount(ctx context.Context, account *models.SocialAccount) (*models.SocialAccount, error)
	UpdateSocialAccount(ctx context.Context, account *models.SocialAccount) (*models.SocialAccount, error)
	DeleteSocialAccount(ctx context.Context, id int64) error
}

type siteServiceImpl struct {
	partnerRepo *repositories.PartnerRepository
	historyRepo *repositories.HistoryRepository
	socialRepo  *repositories.SocialAccountRepository
}

// NewSiteService creates a new site service instance
func NewSiteService(
	partnerRepo *repositories.PartnerRepository,
	historyRepo *repositories.HistoryRepository,
	socialRepo *repositories.SocialAccountRepository,
) SiteService {
	return &siteServiceImpl{
		partnerRepo: partnerRepo,
		historyRepo: historyRepo,
		socialRepo:  socialRepo,
	}
}

// GetPartners lists partners in display order
func (s *siteServiceImpl) GetPartners(ctx context.Context, category string) ([]*models.Partner, error) {
	partners, err := s.partnerRepo.GetPartners(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error listing partners: %w", err)
	}
	return partners, nil
}

// CreatePartner stores a new partner
func (s *siteServiceImpl) CreatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	if strings.TrimSpace(partner.Name) == "" {
		return nil, fmt.Errorf("%w: partner name cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.partnerRepo.CreatePartner(ctx, partner)
	if err != nil {
		return nil, fmt.Errorf("error creating partner: %w", err)
	}

	created, err := s.partnerRepo.GetPartnerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading partner: %w", err)
	}
	return created, nil
}

// UpdatePartner replaces an existing partner
func (s *siteServiceImpl) UpdatePartner(ctx context.Context, partner *models.Partner) (*models.Partner, error) {
	if strings.TrimSpace(partner.Name) == "" {
		return nil, fmt.Errorf("%w: partner name cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.partnerRepo.UpdatePartner(ctx, partner); err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return nil, apperrors.NewResourceNotFoundError("partner not found")
		}
		return nil, fmt.Errorf("error updating partner: %w", err)
	}

	updated, err := s.partnerRepo.GetPartnerByID(ctx, partner.ID)
	if err != nil {
		return nil, fmt.Errorf("error reloading partner: %w", err)
	}
	return updated, nil
}

// DeletePartner removes a partner
func (s *siteServiceImpl) DeletePartner(ctx context.Context, id int64) error {
	if err := s.partnerRepo.DeletePartner(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPartnerNotFound) {
			return apperrors.NewResourceNotFoundError("partner not found")
		}
		return fmt.Errorf("error deleting partner: %w", err)
	}
	return nil
}

func (s *siteServiceImpl) validateMilestone(m *models.HistoryMilestone) error {
	if m.Year < 1990 || m.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: year %d is out of range", apperrors.ErrValidationFailed, m.Year)
	}
	if m.Month != nil && (*m.Month < 1 || *m.Month > 12) {
		return fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetMilestones lists the full history timeline
func (s *siteServiceImpl) GetMilestones(ctx context.Context) ([]*models.HistoryMilestone, error) {
	milestones, err := s.historyRepo.GetMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing milestones: %w", err)
	}
	return milestones, nil
}

// CreateMilestone stores a new milestone
func (s *siteServiceImpl) CreateMilestone(ctx context.Context, m *models.HistoryMilestone) (*models.HistoryMilestone, error) {
	if err := s.validateMilestone(m); err != nil {
		return nil, err
	}

	id, err := s.historyRepo.CreateMilestone(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("error creating milestone: %w", err)
	}

	created, err := s.historyRepo.GetMilestoneByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading milestone: %w", err)
	}
	return created, nil
}

// UpdateMilestone replaces an existing milestone
func (s *siteServiceImpl) UpdateMilestone(ctx context.Context, m *models.HistoryMilestone) (*models.HistoryMilestone, error) {
	if err := s.validateMilestone(m); err != nil {
		return nil, err
	}

	if err := s.historyRepo.UpdateMilestone(ctx, m); err != nil {
		if errors.Is(err, repositories.ErrMilestoneNotFound) {
			return nil, apperrors.NewResourceNotFoundError("history milestone not found")
		}
		return nil, fmt.Errorf("error updating milestone: %w", err)
	}

	updated, err := s.historyRepo.GetMilestoneByID(ctx, m.ID)
	if err != nil {
		return nil, fmt.Errorf("error reloading milestone: %w", err)
	}
	return updated, nil
}

// DeleteMilestone removes a milestone
func (s *siteServiceImpl) DeleteMilestone(ctx context.Context, id int64) error {
	if err := s.historyRepo.DeleteMilestone(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMilestoneNotFound) {
			return apperrors.NewResourceNotFoundError("history milestone not found")
		}
		return fmt.Errorf("error deleting milestone: %w", err)
	}
	return nil
}

func validateSocialPlatform(platform models.SocialPlatform) error {
	switch platform {
	case models.PlatformInstagram, models.PlatformYoutube, models.PlatformBlog, models.PlatformFacebook:
		return nil
	default:
		return fmt.Errorf("%w: unknown social platform %q", apperrors.ErrValidationFailed, platform)
	}
}

// GetSocialAccounts lists linked social accounts
func (s *siteServiceImpl) GetSocialAccounts(ctx context.Context, activeOnly bool) ([]*models.SocialAccount, error) {
	accounts, err := s.socialRepo.GetAccounts(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("error listing social accounts: %w", err)
	}
	return accounts, nil
}

// CreateSocialAccount stores a new social account
func (s *siteServiceImpl) CreateSocialAccount(ctx context.Context, account *models.SocialAccount) (*models.SocialAccount, error) {
	if err := validateSocialPlatform(account.Platform); err != nil {
		return nil, err
	}

	id, err := s.socialRepo.CreateAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error creating social account: %w", err)
	}

	created, err := s.socialRepo.GetAccountByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading social account: %w", err)
	}
	return created, nil
}

// UpdateSocialAccount replaces an existing social account
func (s *siteServiceImpl) UpdateSocialAccount(ctx context.Context, account *models.SocialAccount) (*models.SocialAccount, error) {
	if err := validateSocialPlatform(account.Platform); err != nil {
		return nil, err
	}

	if err := s.socialRepo.UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrSocialAccountNotFound) {
			return nil, apperrors.NewResourceNotFoundError("social account not found")
		}
		return nil, fmt.Errorf("error updating social account: %w", err)
	}

	updated, err := s.socialRepo.GetAccountByID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("error reloading social account: %w", err)
	}
	return updated, nil
}

// DeleteSocialAccount removes a social account
func (s *siteServiceImpl) DeleteSocialAccount(ctx context.Context, id int64) error {
	if err := s.socialRepo.DeleteAccount(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSocialAccountNotFound) {
			return apperrors.NewResourceNotFoundError("social account not found")
		}
		return fmt.Errorf("error deleting social account: %w", err)
	}
	return nil
}
