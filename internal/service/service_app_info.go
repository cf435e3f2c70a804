package service

import (
	"context"

	"github.com/MKhiriev/timi-sync/internal/logger"
	"github.com/MKhiriev/timi-sync/models"
)

// appInfoService serves the build metadata the binary was linked with.
type appInfoService struct {
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when buildInfo carries
// no version.
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.buildInfo.Info()
}
