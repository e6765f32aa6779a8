package service

import (
	"context"
	"strings"

	"bragboard/internal/models"
	"bragboard/internal/repository"
)

type CommentService interface {
	Add(ctx context.Context, shoutoutID, userID, content string) (*models.Comment, error)
	List(ctx context.Context, shoutoutID string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo  repository.CommentRepository
	shoutOutRepo repository.ShoutOutRepository
}

func NewCommentService(commentRepo repository.CommentRepository, shoutOutRepo repository.ShoutOutRepository) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		shoutOutRepo: shoutOutRepo,
	}
}

func (s *commentService) Add(ctx context.Context, shoutoutID, userID, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.ErrEmptyContent
	}
	if userID == "" {
		return nil, models.ErrUnauthorized
	}

	if _, err := s.shoutOutRepo.GetByID(ctx, shoutoutID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ShoutOutID: shoutoutID,
		AuthorID:   userID,
		Content:    content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) List(ctx context.Context, shoutoutID string) ([]models.Comment, error) {
	if _, err := s.shoutOutRepo.GetByID(ctx, shoutoutID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByShoutOut(ctx, shoutoutID)
}
