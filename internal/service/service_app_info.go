package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type appInfoService struct {
	buildInfo models.AppBuildInfo
	db        Pinger

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, db Pinger, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		db:        db,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.VersionResponse {
	return s.buildInfo.Response()
}

// CheckHealth pings the database.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.CheckHealth").Msg("database is unreachable")
		return fmt.Errorf("database is unreachable: %w", err)
	}

	return nil
}
