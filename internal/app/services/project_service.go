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

// ProjectService defines the interface for housing project operations
type ProjectService interface {
	GetProjects(ctx context.Context, category string, page, size int) ([]*models.Project, int64, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type projectServiceImpl struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo *repositories.ProjectRepository) ProjectService {
	return &projectServiceImpl{projectRepo: projectRepo}
}

func (s *projectServiceImpl) validateProject(project *models.Project) error {
	if strings.TrimSpace(project.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(project.Categories) == 0 {
		return fmt.Errorf("%w: at least one category is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetProjects lists projects, optionally narrowed to a category
func (s *projectServiceImpl) GetProjects(ctx context.Context, category string, page, size int) ([]*models.Project, int64, error) {
	offset, limit := calculateOffsetLimit(page, size)

	projects, err := s.projectRepo.GetProjects(ctx, category, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing projects: %w", err)
	}

	total, err := s.projectRepo.CountProjects(ctx, category)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting projects: %w", err)
	}

	return projects, total, nil
}

// GetProjectByID retrieves one project
func (s *projectServiceImpl) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	project, err := s.projectRepo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	return project, nil
}

// CreateProject stores a new project
func (s *projectServiceImpl) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := s.validateProject(project); err != nil {
		return nil, err
	}

	id, err := s.projectRepo.CreateProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	return s.GetProjectByID(ctx, id)
}

// UpdateProject replaces an existing project
func (s *projectServiceImpl) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := s.validateProject(project); err != nil {
		return nil, err
	}

	if err := s.projectRepo.UpdateProject(ctx, project); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error updating project: %w", err)
	}

	return s.GetProjectByID(ctx, project.ID)
}

// DeleteProject removes a project
func (s *projectServiceImpl) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projectRepo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("error deleting project: %w", err)
	}
	return nil
}
