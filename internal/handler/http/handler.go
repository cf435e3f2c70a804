package http

import (
	"time"

	"github.com/MKhiriev/timi-sync/internal/config"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	maxBodyBytes   int64
	requestTimeout time.Duration
	staticDir      string
	adminDir       string

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		maxBodyBytes:   cfg.MaxBodyBytes,
		requestTimeout: cfg.RequestTimeout,
		staticDir:      cfg.StaticDir,
		adminDir:       cfg.AdminDir,
		logger:         logger,
	}
}
