package repository

import (
	"context"
	"time"

	"bragboard/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type ShoutOutRepository interface {
	Create(ctx context.Context, shoutout *models.ShoutOut) error
	GetByID(ctx context.Context, shoutoutID string) (*models.ShoutOut, error)
	ListAll(ctx context.Context) ([]models.ShoutOut, error)
}

type ReactionRepository interface {
	Exists(ctx context.Context, shoutoutID, userID, emoji string) (bool, error)
	Insert(ctx context.Context, reaction *models.Reaction) error
	Delete(ctx context.Context, shoutoutID, userID, emoji string) error
	CountByEmoji(ctx context.Context, shoutoutID, emoji string) (int, error)
	ListByShoutOut(ctx context.Context, shoutoutID string) ([]models.Reaction, error)
	ListAll(ctx context.Context) ([]models.Reaction, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByShoutOut(ctx context.Context, shoutoutID string) ([]models.Comment, error)
	ListAll(ctx context.Context) ([]models.Comment, error)
}

type StatsRepository interface {
	CountEmployees(ctx context.Context) (int, error)
	CountShoutOuts(ctx context.Context) (int, error)
	CountEmployeesByDepartment(ctx context.Context) (map[string]int, error)
}

type Repository struct {
	User     UserRepository
	ShoutOut ShoutOutRepository
	Reaction ReactionRepository
	Comment  CommentRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		ShoutOut: NewShoutOutRepository(db),
		Reaction: NewReactionRepository(db),
		Comment:  NewCommentRepository(db),
		Stats:    NewStatsRepository(db),
	}
}
