package http

import (
	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	// apiVersion is the version string advertised by the info endpoint and
	// the version test route.
	apiVersion string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		apiVersion: cfg.APIVersion,
		logger:     logger,
	}
}
