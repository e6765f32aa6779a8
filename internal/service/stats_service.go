package service

import (
	"context"

	"bragboard/internal/models"
	"bragboard/internal/repository"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	employees, err := s.statsRepo.CountEmployees(ctx)
	if err != nil {
		return nil, err
	}

	shoutouts, err := s.statsRepo.CountShoutOuts(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.statsRepo.CountEmployeesByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		EmployeeCount:   employees,
		ShoutOutCount:   shoutouts,
		DepartmentSizes: departments,
	}, nil
}
