package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"bragboard/internal/feed"
	"bragboard/internal/models"
	"bragboard/internal/repository"
	"bragboard/internal/storage"

	"github.com/google/uuid"
)

type CreateShoutOutRequest struct {
	AuthorID      string
	Message       string
	TaggedUserIDs []string

	// Optional image; uploaded before the row is written so the stored
	// URL is never dangling.
	ImageFile io.Reader
	ImageName string
	ImageSize int64
}

type ShoutOutService interface {
	Create(ctx context.Context, req CreateShoutOutRequest) (*models.ShoutOut, error)
	Feed(ctx context.Context, viewerID string, criteria feed.Criteria) ([]feed.Item, error)
	Get(ctx context.Context, viewerID, shoutoutID string) (*feed.Item, error)
}

type shoutOutService struct {
	shoutOutRepo repository.ShoutOutRepository
	reactionRepo repository.ReactionRepository
	commentRepo  repository.CommentRepository
	userRepo     repository.UserRepository
	storage      storage.Storage
}

func NewShoutOutService(
	shoutOutRepo repository.ShoutOutRepository,
	reactionRepo repository.ReactionRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	storage storage.Storage,
) ShoutOutService {
	return &shoutOutService{
		shoutOutRepo: shoutOutRepo,
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		storage:      storage,
	}
}

func (s *shoutOutService) Create(ctx context.Context, req CreateShoutOutRequest) (*models.ShoutOut, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, models.ErrEmptyContent
	}

	// the id is needed before the insert so the image object name can
	// reference it
	shoutout := &models.ShoutOut{
		ShoutOutID:    uuid.New().String(),
		AuthorID:      req.AuthorID,
		Message:       message,
		TaggedUserIDs: dedupe(req.TaggedUserIDs),
	}

	var objectName string
	if req.ImageFile != nil {
		name, imageURL, err := s.storage.UploadImage(ctx, shoutout.ShoutOutID, req.ImageName, req.ImageFile, req.ImageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
		objectName = name
		shoutout.ImageURL = imageURL
	}

	if err := s.shoutOutRepo.Create(ctx, shoutout); err != nil {
		if objectName != "" {
			s.storage.DeleteImage(ctx, objectName)
		}
		return nil, err
	}

	return shoutout, nil
}

func (s *shoutOutService) Feed(ctx context.Context, viewerID string, criteria feed.Criteria) ([]feed.Item, error) {
	shoutouts, err := s.shoutOutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	reactions, err := s.reactionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	directory, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	items := feed.Build(viewerID, shoutouts, reactions, comments, directory)
	return feed.Filter(items, criteria), nil
}

func (s *shoutOutService) Get(ctx context.Context, viewerID, shoutoutID string) (*feed.Item, error) {
	shoutout, err := s.shoutOutRepo.GetByID(ctx, shoutoutID)
	if err != nil {
		return nil, err
	}

	reactions, err := s.reactionRepo.ListByShoutOut(ctx, shoutoutID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByShoutOut(ctx, shoutoutID)
	if err != nil {
		return nil, err
	}

	directory, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	items := feed.Build(viewerID, []models.ShoutOut{*shoutout}, reactions, comments, directory)
	return &items[0], nil
}

func (s *shoutOutService) directory(ctx context.Context) (map[string]models.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	directory := make(map[string]models.User, len(users))
	for _, u := range users {
		directory[u.UserID] = u
	}
	return directory, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
