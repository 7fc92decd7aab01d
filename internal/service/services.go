package service

import (
	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/store"
)

type Services struct {
	TokenIssuer  TokenIssuer
	AuthService  AuthService
	HabitService HabitService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	tokenIssuer := NewTokenIssuer(storages.TokenRepository, cfg.App, logger)

	return &Services{
		TokenIssuer:  tokenIssuer,
		AuthService:  NewAuthService(storages.UserRepository, tokenIssuer, cfg.App, logger),
		HabitService: NewHabitService(storages.HabitRepository, logger),
	}
}
