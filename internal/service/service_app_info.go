package service

import (
	"context"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo. A build without a linker-injected
// version reports cfg.Version instead.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	if buildInfo.BuildVersion() == notAvailable && cfg.Version != "" {
		buildInfo = models.NewAppBuildInfo(cfg.Version, buildInfo.BuildDate(), buildInfo.BuildCommit())
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
