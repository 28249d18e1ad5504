package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/email"
)

// InquiryService defines the interface for contact-form inquiries
type InquiryService interface {
	CreateInquiry(ctx context.Context, req *dto.InquiryRequest) (*models.Inquiry, error)
	GetInquiries(ctx context.Context, inquiryType models.InquiryType, page, size int) ([]*models.Inquiry, int64, error)
	GetInquiryByID(ctx context.Context, id int64) (*models.Inquiry, error)
	DeleteInquiry(ctx context.Context, id int64) error
}

type inquiryServiceImpl struct {
	inquiryRepo  *repositories.InquiryRepository
	emailService email.EmailService
	logger       zerolog.Logger
}

// NewInquiryService creates a new inquiry service instance
func NewInquiryService(inquiryRepo *repositories.InquiryRepository, emailService email.EmailService, logger zerolog.Logger) InquiryService {
	return &inquiryServiceImpl{
		inquiryRepo:  inquiryRepo,
		emailService: emailService,
		logger:       logger,
	}
}

func validateInquiryType(inquiryType models.InquiryType) error {
	switch inquiryType {
	case models.InquiryMoveIn, models.InquiryBusiness, models.InquiryRecruit:
		return nil
	default:
		return fmt.Errorf("%w: unknown inquiry type %q", apperrors.ErrValidationFailed, inquiryType)
	}
}

// CreateInquiry stores a submission and notifies the admin mailbox. The
// notification is best effort; a mail failure never loses the inquiry.
func (s *inquiryServiceImpl) CreateInquiry(ctx context.Context, req *dto.InquiryRequest) (*models.Inquiry, error) {
	inquiryType := models.InquiryType(req.Type)
	if err := validateInquiryType(inquiryType); err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		Type:    inquiryType,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Company: req.Company,
		Message: strings.TrimSpace(req.Message),
	}

	id, err := s.inquiryRepo.CreateInquiry(ctx, inquiry)
	if err != nil {
		return nil, fmt.Errorf("error creating inquiry: %w", err)
	}
	inquiry.ID = id

	go func(inq models.Inquiry) {
		if err := s.emailService.SendInquiryNotification(&inq); err != nil {
			s.logger.Warn().Err(err).Int64("inquiryID", inq.ID).Msg("Failed to send inquiry notification")
		}
	}(*inquiry)

	return inquiry, nil
}

// GetInquiries lists inquiries, optionally filtered by type
func (s *inquiryServiceImpl) GetInquiries(ctx context.Context, inquiryType models.InquiryType, page, size int) ([]*models.Inquiry, int64, error) {
	if inquiryType != "" {
		if err := validateInquiryType(inquiryType); err != nil {
			return nil, 0, err
		}
	}

	offset, limit := calculateOffsetLimit(page, size)

	inquiries, err := s.inquiryRepo.GetInquiries(ctx, inquiryType, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing inquiries: %w", err)
	}

	total, err := s.inquiryRepo.CountInquiries(ctx, inquiryType)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting inquiries: %w", err)
	}

	return inquiries, total, nil
}

// GetInquiryByID retrieves one inquiry
func (s *inquiryServiceImpl) GetInquiryByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	inquiry, err := s.inquiryRepo.GetInquiryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInquiryNotFound) {
			return nil, apperrors.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("error getting inquiry: %w", err)
	}
	return inquiry, nil
}

// DeleteInquiry removes an inquiry
func (s *inquiryServiceImpl) DeleteInquiry(ctx context.Context, id int64) error {
	if err := s.inquiryRepo.DeleteInquiry(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInquiryNotFound) {
			return apperrors.ErrInquiryNotFound
		}
		return fmt.Errorf("error deleting inquiry: %w", err)
	}
	return nil
}
