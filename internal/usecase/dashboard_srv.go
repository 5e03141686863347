package usecase

import (
	"context"
	"fmt"
	"math"

	"resort-booking/internal/data/entity"
	"resort-booking/internal/data/repository"
	"resort-booking/internal/dto/response"

	"go.uber.org/zap"
)

const popularResortLimit = 5

type DashboardService interface {
	GetStats(ctx context.Context) (*response.DashboardStatsResponse, error)
	GetPopularResorts(ctx context.Context) ([]response.PopularResortResponse, error)
}

type dashboardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDashboardService(repo *repository.Repository, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo: repo,
		log:  log.With(zap.String("service", "dashboard")),
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	// Admin accounts are not counted as customers
	totalUsers, err := s.repo.User.CountByRole(ctx, entity.RoleUser)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalResorts, err := s.repo.Resort.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count resorts", zap.Error(err))
		return nil, fmt.Errorf("count resorts: %w", err)
	}

	avgRating, err := s.repo.Resort.AverageRating(ctx)
	if err != nil {
		s.log.Error("Failed to average ratings", zap.Error(err))
		return nil, fmt.Errorf("average rating: %w", err)
	}

	s.log.Info("Dashboard stats computed",
		zap.Int64("total_users", totalUsers),
		zap.Int64("total_resorts", totalResorts),
		zap.Float64("average_rating", avgRating),
	)

	return &response.DashboardStatsResponse{
		TotalUsers:   totalUsers,
		TotalResorts: totalResorts,
		// one decimal, matching what the dashboard cards display
		AverageRating: math.Round(avgRating*10) / 10,
	}, nil
}

func (s *dashboardService) GetPopularResorts(ctx context.Context) ([]response.PopularResortResponse, error) {
	resorts, err := s.repo.Resort.FindPopular(ctx, popularResortLimit)
	if err != nil {
		s.log.Error("Failed to get popular resorts", zap.Error(err))
		return nil, fmt.Errorf("get popular resorts: %w", err)
	}

	popular := make([]response.PopularResortResponse, len(resorts))
	for i, resort := range resorts {
		popular[i] = response.ResortToPopularResponse(resort)
	}

	return popular, nil
}
