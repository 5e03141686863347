package usecase

import (
	"resort-booking/internal/data/repository"
	"resort-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Resort    ResortService
	Dashboard DashboardService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo, log),
		Resort:    NewResortService(repo, log),
		Dashboard: NewDashboardService(repo, log),
	}
}
