package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/dberrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/logger"
)

// Reporter error types
var (
	ErrReporterArticleNotFound = ErrNotFound
	ErrReporterCommentNotFound = errors.New("reporter comment not found")
)

// ReporterRepository handles resident reporter article database operations
type ReporterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReporterRepository creates a new ReporterRepository
func NewReporterRepository(db *pgxpool.Pool) *ReporterRepository {
	return &ReporterRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const reporterArticleColumns = "id, title, content, author_id, author_name, image_url, status, likes, created_at"

func scanReporterArticle(row pgx.Row) (*models.ReporterArticle, error) {
	article := &models.ReporterArticle{}
	err := row.Scan(
		&article.ID, &article.Title, &article.Content, &article.AuthorID, &article.AuthorName,
		&article.ImageURL, &article.Status, &article.Likes, &article.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return article, nil
}

// CreateArticle inserts a submitted reporter article and returns its id.
// New submissions always start out pending.
func (r *ReporterRepository) CreateArticle(ctx context.Context, article *models.ReporterArticle) (int64, error) {
	sql, args, err := r.sb.Insert("reporter_articles").
		Columns("title", "content", "author_id", "author_name", "image_url", "status").
		Values(article.Title, article.Content, article.AuthorID, article.AuthorName, article.ImageURL, models.ReporterPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create reporter article query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create reporter article query")
		return 0, fmt.Errorf("error creating reporter article: %w", err)
	}

	return id, nil
}

// GetArticleByID retrieves a reporter article by id
func (r *ReporterRepository) GetArticleByID(ctx context.Context, id int64) (*models.ReporterArticle, error) {
	sql, args, err := r.sb.Select(reporterArticleColumns).
		From("reporter_articles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get reporter article query: %w", err)
	}

	article, err := scanReporterArticle(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReporterArticleNotFound
		}
		logger.Error().Err(err).Int64("articleID", id).Msg("Error scanning reporter article row")
		return nil, fmt.Errorf("error getting reporter article by ID: %w", err)
	}

	return article, nil
}

// GetArticles retrieves a page of reporter articles, optionally filtered by
// status. An empty status returns every article regardless of approval.
func (r *ReporterRepository) GetArticles(ctx context.Context, status models.ReporterStatus, offset uint64, limit int) ([]*models.ReporterArticle, error) {
	query := r.sb.Select(reporterArticleColumns).
		From("reporter_articles").
		OrderBy("created_at DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))
	if status != "" {
		query = query.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get reporter articles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get reporter articles query")
		return nil, fmt.Errorf("error querying reporter articles: %w", err)
	}
	defer rows.Close()

	articles := []*models.ReporterArticle{}
	for rows.Next() {
		article, err := scanReporterArticle(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning reporter article row during list")
			return nil, fmt.Errorf("error scanning reporter article row: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reporter article rows: %w", err)
	}

	return articles, nil
}

// CountArticles counts reporter articles, optionally filtered by status
func (r *ReporterRepository) CountArticles(ctx context.Context, status models.ReporterStatus) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("reporter_articles")
	if status != "" {
		query = query.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count reporter articles query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting reporter articles")
		return 0, fmt.Errorf("error counting reporter articles: %w", err)
	}

	return count, nil
}

// UpdateStatus moves an article to the given approval status
func (r *ReporterRepository) UpdateStatus(ctx context.Context, id int64, status models.ReporterStatus) error {
	sql, args, err := r.sb.Update("reporter_articles").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update reporter status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("articleID", id).Msg("Error executing update reporter status query")
		return fmt.Errorf("error updating reporter article status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrReporterArticleNotFound
	}

	return nil
}

// DeleteArticle deletes a reporter article by id; its comments go with it.
func (r *ReporterRepository) DeleteArticle(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reporter_articles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete reporter article query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("articleID", id).Msg("Error executing delete reporter article query")
		return fmt.Errorf("error deleting reporter article: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrReporterArticleNotFound
	}

	return nil
}

// IncrementLikes bumps the like counter by one and returns the stored value
func (r *ReporterRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var likes int
	err := r.db.QueryRow(ctx,
		`UPDATE reporter_articles SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrReporterArticleNotFound
		}
		logger.Error().Err(err).Int64("articleID", id).Msg("Error incrementing reporter article likes")
		return 0, fmt.Errorf("error incrementing likes: %w", err)
	}

	return likes, nil
}

// CreateComment inserts an authenticated comment on a reporter article
func (r *ReporterRepository) CreateComment(ctx context.Context, comment *models.ReporterComment) (int64, error) {
	sql, args, err := r.sb.Insert("reporter_comments").
		Columns("article_id", "user_id", "content").
		Values(comment.ArticleID, comment.UserID, comment.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create reporter comment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, ErrReporterArticleNotFound
		}
		logger.Error().Err(err).Int64("articleID", comment.ArticleID).Msg("Error inserting reporter comment")
		return 0, fmt.Errorf("error creating reporter comment: %w", err)
	}

	return id, nil
}

// GetComments retrieves all comments on a reporter article, oldest first.
// The commenter's display name is joined in from the users table.
func (r *ReporterRepository) GetComments(ctx context.Context, articleID int64) ([]*models.ReporterComment, error) {
	sql, args, err := r.sb.Select("c.id", "c.article_id", "c.user_id", "u.name", "c.content", "c.created_at").
		From("reporter_comments c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"c.article_id": articleID}).
		OrderBy("c.created_at ASC, c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get reporter comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("articleID", articleID).Msg("Error executing get reporter comments query")
		return nil, fmt.Errorf("error querying reporter comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.ReporterComment{}
	for rows.Next() {
		comment := &models.ReporterComment{}
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.UserID, &comment.UserName, &comment.Content, &comment.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning reporter comment row")
			return nil, fmt.Errorf("error scanning reporter comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reporter comment rows: %w", err)
	}

	return comments, nil
}

// DeleteComment removes a comment from a reporter article
func (r *ReporterRepository) DeleteComment(ctx context.Context, articleID, commentID int64) error {
	sql, args, err := r.sb.Delete("reporter_comments").
		Where(squirrel.Eq{"id": commentID, "article_id": articleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete reporter comment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("commentID", commentID).Msg("Error executing delete reporter comment query")
		return fmt.Errorf("error deleting reporter comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrReporterCommentNotFound
	}

	return nil
}
