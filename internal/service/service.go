package service

import (
	"bragboard/internal/config"
	"bragboard/internal/repository"
	"bragboard/internal/storage"
)

type Service struct {
	Auth     AuthService
	ShoutOut ShoutOutService
	Reaction ReactionService
	Comment  CommentService
	User     UserService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		ShoutOut: NewShoutOutService(rep.ShoutOut, rep.Reaction, rep.Comment, rep.User, storage),
		Reaction: NewReactionService(rep.Reaction, rep.ShoutOut, cfg),
		Comment:  NewCommentService(rep.Comment, rep.ShoutOut),
		User:     NewUserService(rep.User),
		Stats:    NewStatsService(rep.Stats),
	}
}
