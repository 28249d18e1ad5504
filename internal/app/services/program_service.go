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
)

// ProgramService defines the interface for resident program operations,
// including the application flow.
type ProgramService interface {
	GetPrograms(ctx context.Context, status models.ProgramStatus, page, size int) ([]*models.ResidentProgram, int64, error)
	GetProgramByID(ctx context.Context, id int64) (*models.ResidentProgram, error)
	CreateProgram(ctx context.Context, program *models.ResidentProgram) (*models.ResidentProgram, error)
	UpdateProgram(ctx context.Context, program *models.ResidentProgram) (*models.ResidentProgram, error)
	DeleteProgram(ctx context.Context, id int64) error

	// Apply submits an application against a recruiting program. Closed and
	// full programs reject applications.
	Apply(ctx context.Context, req *dto.ApplicationRequest) (*models.ProgramApplication, error)
	GetApplications(ctx context.Context, programID int64, page, size int) ([]*models.ProgramApplication, int64, error)
	DeleteApplication(ctx context.Context, id int64) error
}

type programServiceImpl struct {
	programRepo     *repositories.ProgramRepository
	applicationRepo *repositories.ApplicationRepository
	logger          zerolog.Logger
}

// NewProgramService creates a new program service instance
func NewProgramService(
	programRepo *repositories.ProgramRepository,
	applicationRepo *repositories.ApplicationRepository,
	logger zerolog.Logger,
) ProgramService {
	return &programServiceImpl{
		programRepo:     programRepo,
		applicationRepo: applicationRepo,
		logger:          logger,
	}
}

func validateProgramStatus(status models.ProgramStatus) error {
	switch status {
	case models.ProgramRecruiting, models.ProgramInProgress, models.ProgramClosed:
		return nil
	default:
		return fmt.Errorf("%w: unknown program status %q", apperrors.ErrValidationFailed, status)
	}
}

func validateProgramType(programType models.ProgramType) error {
	switch programType {
	case models.ProgramCulture, models.ProgramEducation, models.ProgramCommunity, models.ProgramVolunteer:
		return nil
	default:
		return fmt.Errorf("%w: unknown program type %q", apperrors.ErrValidationFailed, programType)
	}
}

func (s *programServiceImpl) validateProgram(program *models.ResidentProgram) error {
	if strings.TrimSpace(program.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if err := validateProgramType(program.ProgramType); err != nil {
		return err
	}
	if err := validateProgramStatus(program.Status); err != nil {
		return err
	}
	if program.MaxParticipants < 0 {
		return fmt.Errorf("%w: max participants cannot be negative", apperrors.ErrValidationFailed)
	}
	if program.EndDate.Before(program.StartDate) {
		return fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetPrograms lists programs, optionally narrowed to a status
func (s *programServiceImpl) GetPrograms(ctx context.Context, status models.ProgramStatus, page, size int) ([]*models.ResidentProgram, int64, error) {
	if status != "" {
		if err := validateProgramStatus(status); err != nil {
			return nil, 0, err
		}
	}

	offset, limit := calculateOffsetLimit(page, size)

	programs, err := s.programRepo.GetPrograms(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing programs: %w", err)
	}

	total, err := s.programRepo.CountPrograms(ctx, status)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting programs: %w", err)
	}

	return programs, total, nil
}

// GetProgramByID retrieves one program
func (s *programServiceImpl) GetProgramByID(ctx context.Context, id int64) (*models.ResidentProgram, error) {
	program, err := s.programRepo.GetProgramByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error getting program: %w", err)
	}
	return program, nil
}

// CreateProgram stores a new program
func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.ResidentProgram) (*models.ResidentProgram, error) {
	if err := s.validateProgram(program); err != nil {
		return nil, err
	}

	id, err := s.programRepo.CreateProgram(ctx, program)
	if err != nil {
		return nil, fmt.Errorf("error creating program: %w", err)
	}

	return s.GetProgramByID(ctx, id)
}

// UpdateProgram replaces an existing program
func (s *programServiceImpl) UpdateProgram(ctx context.Context, program *models.ResidentProgram) (*models.ResidentProgram, error) {
	if err := s.validateProgram(program); err != nil {
		return nil, err
	}

	if err := s.programRepo.UpdateProgram(ctx, program); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error updating program: %w", err)
	}

	return s.GetProgramByID(ctx, program.ID)
}

// DeleteProgram removes a program and its applications
func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	if err := s.programRepo.DeleteProgram(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error deleting program: %w", err)
	}
	return nil
}

// Apply submits an application after checking the program is recruiting and
// under its participant cap. A cap of zero means unlimited.
func (s *programServiceImpl) Apply(ctx context.Context, req *dto.ApplicationRequest) (*models.ProgramApplication, error) {
	program, err := s.GetProgramByID(ctx, req.ProgramID)
	if err != nil {
		return nil, err
	}

	if program.Status != models.ProgramRecruiting {
		return nil, apperrors.ErrProgramClosed
	}

	if program.MaxParticipants > 0 {
		count, err := s.applicationRepo.CountApplications(ctx, program.ID)
		if err != nil {
			return nil, fmt.Errorf("error counting applications: %w", err)
		}
		if count >= int64(program.MaxParticipants) {
			return nil, apperrors.ErrProgramFull
		}
	}

	application := &models.ProgramApplication{
		ProgramID: req.ProgramID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   req.Message,
	}

	id, err := s.applicationRepo.CreateApplication(ctx, application)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationOrphaned) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error creating application: %w", err)
	}
	application.ID = id

	s.logger.Info().Int64("programID", program.ID).Int64("applicationID", id).Msg("Program application received")
	return application, nil
}

// GetApplications lists applications, optionally for one program. A zero
// programID returns applications across all programs.
func (s *programServiceImpl) GetApplications(ctx context.Context, programID int64, page, size int) ([]*models.ProgramApplication, int64, error) {
	offset, limit := calculateOffsetLimit(page, size)

	applications, err := s.applicationRepo.GetApplications(ctx, programID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing applications: %w", err)
	}

	total, err := s.applicationRepo.CountApplications(ctx, programID)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting applications: %w", err)
	}

	return applications, total, nil
}

// DeleteApplication removes an application
func (s *programServiceImpl) DeleteApplication(ctx context.Context, id int64) error {
	if err := s.applicationRepo.DeleteApplication(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return fmt.Errorf("error deleting application: %w", err)
	}
	return nil
}
