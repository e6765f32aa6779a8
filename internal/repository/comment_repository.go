package repository

import (
	"context"
	"fmt"
	"time"

	"bragboard/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CommentRepositoryImpl struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO shoutout_comments (comment_id, shoutout_id, author_id, content, created_at)
		VALUES (:comment_id, :shoutout_id, :author_id, :content, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// ListByShoutOut returns comments oldest first. The comment_id tie-break
// keeps repeated reads identical when timestamps collide.
func (r *CommentRepositoryImpl) ListByShoutOut(ctx context.Context, shoutoutID string) ([]models.Comment, error) {
	query := `
		SELECT c.comment_id, c.shoutout_id, c.author_id, c.content, c.created_at,
			COALESCE(NULLIF(u.display_name, ''), u.username, 'Unknown') AS author_name
		FROM shoutout_comments c
		LEFT JOIN users u ON u.user_id = c.author_id
		WHERE c.shoutout_id = $1
		ORDER BY c.created_at, c.comment_id
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, shoutoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) ListAll(ctx context.Context) ([]models.Comment, error) {
	query := `
		SELECT comment_id, shoutout_id, author_id, content, created_at
		FROM shoutout_comments
		ORDER BY created_at, comment_id
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}
