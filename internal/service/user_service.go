package service

import (
	"context"

	"bragboard/internal/models"
	"bragboard/internal/repository"
)

type UpdateProfileRequest struct {
	UserID         string
	DisplayName    string
	Department     string
	AvatarURL      string
	JoiningDate    string
	CurrentProject string
	Skills         string
	Experience     string
}

type UserService interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.JoiningDate != "" {
		user.JoiningDate = req.JoiningDate
	}
	if req.CurrentProject != "" {
		user.CurrentProject = req.CurrentProject
	}
	if req.Skills != "" {
		user.Skills = req.Skills
	}
	if req.Experience != "" {
		user.Experience = req.Experience
	}

	if err = s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
