package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bragboard/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ReactionRepositoryImpl struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) *ReactionRepositoryImpl {
	return &ReactionRepositoryImpl{db: db}
}

func (r *ReactionRepositoryImpl) Exists(ctx context.Context, shoutoutID, userID, emoji string) (bool, error) {
	query := `
		SELECT COUNT(*) FROM shoutout_reactions
		WHERE shoutout_id = $1 AND user_id = $2 AND emoji = $3
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, shoutoutID, userID, emoji)
	if err != nil {
		return false, fmt.Errorf("failed to check reaction: %w", err)
	}

	return count > 0, nil
}

func (r *ReactionRepositoryImpl) Insert(ctx context.Context, reaction *models.Reaction) error {
	if reaction.ReactionID == "" {
		reaction.ReactionID = uuid.New().String()
	}
	if reaction.CreatedAt.IsZero() {
		reaction.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO shoutout_reactions (reaction_id, shoutout_id, user_id, emoji, created_at)
		VALUES (:reaction_id, :shoutout_id, :user_id, :emoji, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, reaction)
	if err != nil {
		// unique_violation on (shoutout_id, user_id, emoji): the row is
		// already there, a concurrent toggle won the race
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("reaction already exists: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert reaction: %w", err)
	}

	return nil
}

func (r *ReactionRepositoryImpl) Delete(ctx context.Context, shoutoutID, userID, emoji string) error {
	query := `
		DELETE FROM shoutout_reactions
		WHERE shoutout_id = $1 AND user_id = $2 AND emoji = $3
	`

	_, err := r.db.ExecContext(ctx, query, shoutoutID, userID, emoji)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}

	return nil
}

// CountByEmoji re-derives the per-emoji count from the rows themselves, so a
// toggle never reports a count drifted from storage.
func (r *ReactionRepositoryImpl) CountByEmoji(ctx context.Context, shoutoutID, emoji string) (int, error) {
	query := `
		SELECT COUNT(*) FROM shoutout_reactions
		WHERE shoutout_id = $1 AND emoji = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, shoutoutID, emoji)
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}

	return count, nil
}

func (r *ReactionRepositoryImpl) ListByShoutOut(ctx context.Context, shoutoutID string) ([]models.Reaction, error) {
	query := `SELECT * FROM shoutout_reactions WHERE shoutout_id = $1`

	var reactions []models.Reaction
	err := r.db.SelectContext(ctx, &reactions, query, shoutoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}

	return reactions, nil
}

func (r *ReactionRepositoryImpl) ListAll(ctx context.Context) ([]models.Reaction, error) {
	query := `SELECT * FROM shoutout_reactions`

	var reactions []models.Reaction
	err := r.db.SelectContext(ctx, &reactions, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}

	return reactions, nil
}
