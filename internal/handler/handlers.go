package handler

import (
	"github.com/MKhiriev/timi-sync/internal/config"
	"github.com/MKhiriev/timi-sync/internal/handler/http"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, m, cfg, logger),
	}, nil
}
