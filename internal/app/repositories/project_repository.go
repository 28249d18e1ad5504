package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// ErrProjectNotFound is returned when a project row is missing.
var ErrProjectNotFound = ErrNotFound

// ProjectRepository handles housing project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const projectColumns = "id, title, categories, location, year, units, description, pdf_url, related_articles, partner_logos, created_at"

func scanProject(row pgx.Row) (*models.Project, error) {
	project := &models.Project{}
	var relatedRaw []byte
	err := row.Scan(
		&project.ID, &project.Title, &project.Categories, &project.Location,
		&project.Year, &project.Units, &project.Description, &project.PDFURL,
		&relatedRaw, &project.PartnerLogos, &project.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(relatedRaw) > 0 {
		if err := json.Unmarshal(relatedRaw, &project.RelatedArticles); err != nil {
			return nil, fmt.Errorf("error decoding related articles: %w", err)
		}
	}
	if project.Categories == nil {
		project.Categories = []string{}
	}
	if project.PartnerLogos == nil {
		project.PartnerLogos = []string{}
	}
	if project.RelatedArticles == nil {
		project.RelatedArticles = []models.RelatedArticle{}
	}
	return project, nil
}

// CreateProject inserts a new project and returns its id
func (r *ProjectRepository) CreateProject(ctx context.Context, project *models.Project) (int64, error) {
	relatedRaw, err := json.Marshal(project.RelatedArticles)
	if err != nil {
		return 0, fmt.Errorf("error encoding related articles: %w", err)
	}

	sql, args, err := r.sb.Insert("projects").
		Columns("title", "categories", "location", "year", "units", "description", "pdf_url", "related_articles", "partner_logos").
		Values(project.Title, project.Categories, project.Location, project.Year, project.Units, project.Description, project.PDFURL, relatedRaw, project.PartnerLogos).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create project query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("title", project.Title).Msg("Error executing create project query")
		return 0, fmt.Errorf("error creating project: %w", err)
	}

	return id, nil
}

// GetProjectByID retrieves a project by id
func (r *ProjectRepository) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	project, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Error scanning project row")
		return nil, fmt.Errorf("error getting project by ID: %w", err)
	}

	return project, nil
}

// GetProjects retrieves a page of projects, optionally filtered by category.
// Category filtering matches any element of the categories array.
func (r *ProjectRepository) GetProjects(ctx context.Context, category string, offset uint64, limit int) ([]*models.Project, error) {
	builder := r.sb.Select(projectColumns).
		From("projects").
		OrderBy("year DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))

	if category != "" {
		builder = builder.Where("? = ANY (categories)", category)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get projects query")
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning project row during list")
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// CountProjects counts projects matching the optional category filter
func (r *ProjectRepository) CountProjects(ctx context.Context, category string) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("projects")
	if category != "" {
		builder = builder.Where("? = ANY (categories)", category)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count projects query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting projects")
		return 0, fmt.Errorf("error counting projects: %w", err)
	}

	return count, nil
}

// UpdateProject updates an existing project in place
func (r *ProjectRepository) UpdateProject(ctx context.Context, project *models.Project) error {
	relatedRaw, err := json.Marshal(project.RelatedArticles)
	if err != nil {
		return fmt.Errorf("error encoding related articles: %w", err)
	}

	sql, args, err := r.sb.Update("projects").
		SetMap(map[string]interface{}{
			"title":            project.Title,
			"categories":       project.Categories,
			"location":         project.Location,
			"year":             project.Year,
			"units":            project.Units,
			"description":      project.Description,
			"pdf_url":          project.PDFURL,
			"related_articles": relatedRaw,
			"partner_logos":    project.PartnerLogos,
		}).
		Where(squirrel.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update project query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", project.ID).Msg("Error executing update project query")
		return fmt.Errorf("error updating project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// DeleteProject deletes a project by id
func (r *ProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete project query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error executing delete project query")
		return fmt.Errorf("error deleting project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}

	return nil
}
