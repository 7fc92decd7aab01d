package store

import (
	"context"

	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
)

type Storages struct {
	UserRepository  UserRepository
	TokenRepository TokenRepository
	HabitRepository HabitRepository
}

// NewStorages connects to the configured database, applies pending
// migrations, and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		TokenRepository: NewTokenRepository(db, log),
		HabitRepository: NewHabitRepository(db, log),
	}, nil
}
