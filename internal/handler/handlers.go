package handler

import (
	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/handler/http"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
