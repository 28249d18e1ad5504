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

// Community error types
var (
	ErrPostNotFound        = ErrNotFound
	ErrPostCommentNotFound = errors.New("post comment not found")
)

// CommunityRepository handles community post and comment database operations
type CommunityRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

const postColumns = "id, image_url, caption, hashtags, location, likes, comment_count, source_url, posted_at, created_at"

func scanPost(row pgx.Row) (*models.CommunityPost, error) {
	post := &models.CommunityPost{}
	err := row.Scan(
		&post.ID, &post.ImageURL, &post.Caption, &post.Hashtags, &post.Location,
		&post.Likes, &post.CommentCount, &post.SourceURL, &post.PostedAt, &post.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if post.Hashtags == nil {
		post.Hashtags = []string{}
	}
	return post, nil
}

// CreatePost inserts a new community post and returns its id
func (r *CommunityRepository) CreatePost(ctx context.Context, post *models.CommunityPost) (int64, error) {
	sql, args, err := r.sb.Insert("community_posts").
		Columns("image_url", "caption", "hashtags", "location", "source_url", "posted_at").
		Values(post.ImageURL, post.Caption, post.Hashtags, post.Location, post.SourceURL, post.PostedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create post query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create post query")
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return id, nil
}

// GetPostByID retrieves a community post by id
func (r *CommunityRepository) GetPostByID(ctx context.Context, id int64) (*models.CommunityPost, error) {
	sql, args, err := r.sb.Select(postColumns).
		From("community_posts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Error scanning post row")
		return nil, fmt.Errorf("error getting post by ID: %w", err)
	}

	return post, nil
}

// GetPosts retrieves a page of posts, newest social posting first
func (r *CommunityRepository) GetPosts(ctx context.Context, offset uint64, limit int) ([]*models.CommunityPost, error) {
	sql, args, err := r.sb.Select(postColumns).
		From("community_posts").
		OrderBy("posted_at DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get posts query")
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.CommunityPost{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning post row during list")
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// CountPosts counts all community posts
func (r *CommunityRepository) CountPosts(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("community_posts").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count posts query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting posts")
		return 0, fmt.Errorf("error counting posts: %w", err)
	}

	return count, nil
}

// UpdatePost updates an existing post. Engagement counters are managed by
// IncrementLikes and the comment operations, never by update.
func (r *CommunityRepository) UpdatePost(ctx context.Context, post *models.CommunityPost) error {
	sql, args, err := r.sb.Update("community_posts").
		SetMap(map[string]interface{}{
			"image_url":  post.ImageURL,
			"caption":    post.Caption,
			"hashtags":   post.Hashtags,
			"location":   post.Location,
			"source_url": post.SourceURL,
			"posted_at":  post.PostedAt,
		}).
		Where(squirrel.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", post.ID).Msg("Error executing update post query")
		return fmt.Errorf("error updating post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

// DeletePost deletes a post by id; its comments go with it.
func (r *CommunityRepository) DeletePost(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("community_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", id).Msg("Error executing delete post query")
		return fmt.Errorf("error deleting post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPostNotFound
	}

	return nil
}

// IncrementLikes bumps the like counter by one and returns the stored value.
// The increment happens in SQL so concurrent likes never lose updates.
func (r *CommunityRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var likes int
	err := r.db.QueryRow(ctx,
		`UPDATE community_posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id).Scan(&likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Error incrementing post likes")
		return 0, fmt.Errorf("error incrementing likes: %w", err)
	}

	return likes, nil
}

// CreateComment inserts a comment and bumps the denormalized comment count
// in the same transaction.
func (r *CommunityRepository) CreateComment(ctx context.Context, comment *models.PostComment) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin comment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO post_comments (post_id, nickname, content) VALUES ($1, $2, $3) RETURNING id`,
		comment.PostID, comment.Nickname, comment.Content).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", comment.PostID).Msg("Error inserting post comment")
		return 0, fmt.Errorf("error creating comment: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE community_posts SET comment_count = comment_count + 1 WHERE id = $1`, comment.PostID); err != nil {
		logger.Error().Err(err).Int64("postID", comment.PostID).Msg("Error bumping comment count")
		return 0, fmt.Errorf("error updating comment count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit comment transaction: %w", err)
	}

	return id, nil
}

// GetComments retrieves all comments for a post, oldest first
func (r *CommunityRepository) GetComments(ctx context.Context, postID int64) ([]*models.PostComment, error) {
	sql, args, err := r.sb.Select("id", "post_id", "nickname", "content", "created_at").
		From("post_comments").
		Where(squirrel.Eq{"post_id": postID}).
		OrderBy("created_at ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", postID).Msg("Error executing get comments query")
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.PostComment{}
	for rows.Next() {
		comment := &models.PostComment{}
		if err := rows.Scan(&comment.ID, &comment.PostID, &comment.Nickname, &comment.Content, &comment.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning comment row")
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// DeleteComment removes a comment from a post and decrements the
// denormalized counter in the same transaction.
func (r *CommunityRepository) DeleteComment(ctx context.Context, postID, commentID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin delete comment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx,
		`DELETE FROM post_comments WHERE id = $1 AND post_id = $2`, commentID, postID)
	if err != nil {
		logger.Error().Err(err).Int64("commentID", commentID).Msg("Error deleting post comment")
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrPostCommentNotFound
	}

	if _, err := tx.Exec(ctx,
		`UPDATE community_posts SET comment_count = GREATEST(comment_count - 1, 0) WHERE id = $1`, postID); err != nil {
		logger.Error().Err(err).Int64("postID", postID).Msg("Error decrementing comment count")
		return fmt.Errorf("error updating comment count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete comment transaction: %w", err)
	}

	return nil
}
