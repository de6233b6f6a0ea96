package service

import (
	"github.com/lettercraft/backend/internal/config"
	"github.com/lettercraft/backend/internal/logger"
	"github.com/lettercraft/backend/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
	}
}
