package service

import (
	"github.com/MKhiriev/timi-sync/internal/config"
	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/internal/metrics"
	"github.com/MKhiriev/timi-sync/internal/store"
	"github.com/MKhiriev/timi-sync/internal/validators"
	"github.com/MKhiriev/timi-sync/models"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	AuthService    AuthService
	SyncService    SyncService
	AdminService   AdminService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. All of them share one
// request validator and one metrics instance.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.InviteCodeRepository, validator, cfg.App, m, logger),
		SyncService:    NewSyncService(storages.SyncRepository, validator, m, logger),
		AdminService:   NewAdminService(storages.UserRepository, storages.InviteCodeRepository, validator, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
