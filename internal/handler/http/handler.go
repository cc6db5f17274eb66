package http

import (
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/metrics"
	"github.com/MKhiriev/go-car-rental/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	policy   routePolicy

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		policy:   defaultRoutePolicy,
		logger:   logger,
	}
}
