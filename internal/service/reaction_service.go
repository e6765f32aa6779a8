package service

import (
	"context"
	"errors"
	"fmt"

	"bragboard/internal/config"
	"bragboard/internal/models"
	"bragboard/internal/repository"
)

type ToggleResult struct {
	Added    bool   `json:"added"`
	Emoji    string `json:"emoji"`
	NewCount int    `json:"newCount"`
}

type ReactionService interface {
	Toggle(ctx context.Context, shoutoutID, userID, emoji string) (*ToggleResult, error)
}

type reactionService struct {
	reactionRepo repository.ReactionRepository
	shoutOutRepo repository.ShoutOutRepository
	allowed      map[string]bool
}

func NewReactionService(reactionRepo repository.ReactionRepository, shoutOutRepo repository.ShoutOutRepository, cfg *config.Config) ReactionService {
	allowed := make(map[string]bool, len(cfg.ReactionEmojis))
	for _, e := range cfg.ReactionEmojis {
		allowed[e] = true
	}

	return &reactionService{
		reactionRepo: reactionRepo,
		shoutOutRepo: shoutOutRepo,
		allowed:      allowed,
	}
}

// Toggle removes the (shoutout, user, emoji) row if present, inserts it
// otherwise. Calling it twice returns the state and count to their
// pre-call values. The returned count is recounted from rows after the
// write, so concurrent toggles from other users never skew it.
func (s *reactionService) Toggle(ctx context.Context, shoutoutID, userID, emoji string) (*ToggleResult, error) {
	if !s.allowed[emoji] {
		return nil, fmt.Errorf("emoji %q: %w", emoji, models.ErrInvalidReactionType)
	}
	if userID == "" {
		return nil, models.ErrUnauthorized
	}

	if _, err := s.shoutOutRepo.GetByID(ctx, shoutoutID); err != nil {
		return nil, err
	}

	exists, err := s.reactionRepo.Exists(ctx, shoutoutID, userID, emoji)
	if err != nil {
		return nil, err
	}

	added := !exists
	if exists {
		if err = s.reactionRepo.Delete(ctx, shoutoutID, userID, emoji); err != nil {
			return nil, err
		}
	} else {
		reaction := &models.Reaction{
			ShoutOutID: shoutoutID,
			UserID:     userID,
			Emoji:      emoji,
		}
		err = s.reactionRepo.Insert(ctx, reaction)
		if err != nil && !errors.Is(err, models.ErrDuplicate) {
			return nil, err
		}
		// a duplicate means a concurrent toggle already inserted the
		// row; the end state is the same, keep going and recount
	}

	count, err := s.reactionRepo.CountByEmoji(ctx, shoutoutID, emoji)
	if err != nil {
		return nil, err
	}

	return &ToggleResult{Added: added, Emoji: emoji, NewCount: count}, nil
}
