package http

import (
	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/service"
)

type Handler struct {
	services *service.Services

	// defaultUserID acts on favorites when the request has no usable user_id.
	defaultUserID int64
	corsOrigins   []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		defaultUserID: cfg.App.DefaultUserID,
		corsOrigins:   cfg.Server.CORSAllowedOrigins,
		logger:        logger,
	}
}
