package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bragboard/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ShoutOutRepositoryImpl struct {
	db *sqlx.DB
}

func NewShoutOutRepository(db *sqlx.DB) *ShoutOutRepositoryImpl {
	return &ShoutOutRepositoryImpl{db: db}
}

// tagRow mirrors the shoutout_tags link table. The serial id keeps the
// order the author tagged people in.
type tagRow struct {
	ID         int64  `db:"id"`
	ShoutOutID string `db:"shoutout_id"`
	UserID     string `db:"user_id"`
}

func (r *ShoutOutRepositoryImpl) Create(ctx context.Context, shoutout *models.ShoutOut) error {
	if shoutout.ShoutOutID == "" {
		shoutout.ShoutOutID = uuid.New().String()
	}
	if shoutout.CreatedAt.IsZero() {
		shoutout.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO shoutouts (shoutout_id, author_id, message, image_url, created_at)
		VALUES (:shoutout_id, :author_id, :message, :image_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, shoutout)
	if err != nil {
		return fmt.Errorf("failed to create shoutout: %w", err)
	}

	tagQuery := `INSERT INTO shoutout_tags (shoutout_id, user_id) VALUES ($1, $2)`
	for _, userID := range shoutout.TaggedUserIDs {
		if _, err := r.db.ExecContext(ctx, tagQuery, shoutout.ShoutOutID, userID); err != nil {
			return fmt.Errorf("failed to tag user %s: %w", userID, err)
		}
	}

	return nil
}

func (r *ShoutOutRepositoryImpl) GetByID(ctx context.Context, shoutoutID string) (*models.ShoutOut, error) {
	query := `SELECT * FROM shoutouts WHERE shoutout_id = $1`

	var shoutout models.ShoutOut
	err := r.db.GetContext(ctx, &shoutout, query, shoutoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shoutout %s: %w", shoutoutID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shoutout: %w", err)
	}

	tags, err := r.tagsFor(ctx, shoutoutID)
	if err != nil {
		return nil, err
	}
	shoutout.TaggedUserIDs = tags

	return &shoutout, nil
}

func (r *ShoutOutRepositoryImpl) ListAll(ctx context.Context) ([]models.ShoutOut, error) {
	query := `SELECT * FROM shoutouts`

	var shoutouts []models.ShoutOut
	err := r.db.SelectContext(ctx, &shoutouts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shoutouts: %w", err)
	}

	var tags []tagRow
	err = r.db.SelectContext(ctx, &tags, `SELECT id, shoutout_id, user_id FROM shoutout_tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shoutout tags: %w", err)
	}

	tagged := make(map[string][]string)
	for _, t := range tags {
		tagged[t.ShoutOutID] = append(tagged[t.ShoutOutID], t.UserID)
	}

	for i := range shoutouts {
		shoutouts[i].TaggedUserIDs = tagged[shoutouts[i].ShoutOutID]
	}

	return shoutouts, nil
}

func (r *ShoutOutRepositoryImpl) tagsFor(ctx context.Context, shoutoutID string) ([]string, error) {
	var userIDs []string

	query := `SELECT user_id FROM shoutout_tags WHERE shoutout_id = $1 ORDER BY id`

	err := r.db.SelectContext(ctx, &userIDs, query, shoutoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tags for shoutout: %w", err)
	}

	return userIDs, nil
}
