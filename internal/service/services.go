package service

import (
	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	CatalogService  CatalogService
	PaymentService  PaymentService
	DeliveryService DeliveryService
	OrderService    OrderService
	AppInfoService  AppInfoService
}

func NewServices(storage *store.Storage, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, storage, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()
	repos := storage.Repositories

	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, cfg.App, logger),
		UserService:     NewUserService(repos.UserRepository, storage, validator, cfg.App, logger),
		CatalogService:  NewCatalogService(repos, validator, logger),
		PaymentService:  NewPaymentService(repos, validator, logger),
		DeliveryService: NewDeliveryService(repos, storage, logger),
		OrderService:    NewOrderService(repos, storage, utils.NewAccessKeyCodes(), validator, logger),
		AppInfoService:  appInfoService,
	}, nil
}
