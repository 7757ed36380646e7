package http

import (
	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
)

type Handler struct {
	services *service.Services
	api      config.API

	logger *logger.Logger
}

func NewHandler(services *service.Services, api config.API, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		api:      api,
		logger:   logger,
	}
}
