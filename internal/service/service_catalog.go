package service

import (
	"context"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
)

// catalogService manages cars and car packages. Cars reference their
// package by name in requests; the name is resolved to an id here.
type catalogService struct {
	carRepository        store.CarRepository
	carPackageRepository store.CarPackageRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewCatalogService(repos *store.Repositories, validator validators.Validator, logger *logger.Logger) CatalogService {
	return &catalogService{
		carRepository:        repos.CarRepository,
		carPackageRepository: repos.CarPackageRepository,
		validator:            validator,
		logger:               logger,
	}
}

func (c *catalogService) ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	filter.Page = filter.Page.Normalize()

	cars, err := c.carRepository.ListCars(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.ListCars").Msg("error listing cars")
		return nil, translateError(err)
	}

	return cars, nil
}

func (c *catalogService) GetCar(ctx context.Context, carID int64) (models.Car, error) {
	car, err := c.carRepository.FindCarByID(ctx, carID)
	if err != nil {
		return models.Car{}, translateError(err)
	}

	return car, nil
}

func (c *catalogService) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	if err := c.prepareCar(ctx, &car); err != nil {
		return models.Car{}, err
	}

	created, err := c.carRepository.CreateCar(ctx, car)
	if err != nil {
		log.Err(err).Str("func", "*catalogService.CreateCar").Str("registration_nr", car.RegistrationNr).Msg("error creating car")
		return models.Car{}, translateError(err)
	}

	return created, nil
}

// UpdateCar overwrites every attribute of car.CarID and returns the stored
// car.
func (c *catalogService) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	if err := c.prepareCar(ctx, &car); err != nil {
		return models.Car{}, err
	}

	if err := c.carRepository.UpdateCar(ctx, car); err != nil {
		log.Err(err).Str("func", "*catalogService.UpdateCar").Int64("car_id", car.CarID).Msg("error updating car")
		return models.Car{}, translateError(err)
	}

	return c.GetCar(ctx, car.CarID)
}

func (c *catalogService) DeleteCar(ctx context.Context, carID int64) error {
	if err := c.carRepository.DeleteCar(ctx, carID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.DeleteCar").Int64("car_id", carID).Msg("error deleting car")
		return translateError(err)
	}

	return nil
}

func (c *catalogService) ListCarPackages(ctx context.Context) ([]models.CarPackage, error) {
	packages, err := c.carPackageRepository.ListCarPackages(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.ListCarPackages").Msg("error listing car packages")
		return nil, translateError(err)
	}

	return packages, nil
}

func (c *catalogService) CreateCarPackage(ctx context.Context, carPackage models.CarPackage) (models.CarPackage, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, carPackage); err != nil {
		log.Info().Err(err).Str("func", "*catalogService.CreateCarPackage").Msg("invalid car package provided")
		return models.CarPackage{}, translateError(err)
	}

	created, err := c.carPackageRepository.CreateCarPackage(ctx, carPackage)
	if err != nil {
		log.Err(err).Str("func", "*catalogService.CreateCarPackage").Str("package_name", carPackage.PackageName).Msg("error creating car package")
		return models.CarPackage{}, translateError(err)
	}

	return created, nil
}

func (c *catalogService) DeleteCarPackage(ctx context.Context, packageID int64) error {
	if err := c.carPackageRepository.DeleteCarPackage(ctx, packageID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogService.DeleteCarPackage").Int64("package_id", packageID).Msg("error deleting car package")
		return translateError(err)
	}

	return nil
}

// prepareCar validates car and resolves its package name to an id.
func (c *catalogService) prepareCar(ctx context.Context, car *models.Car) error {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, car); err != nil {
		log.Info().Err(err).Str("func", "*catalogService.prepareCar").Msg("invalid car provided")
		return translateError(err)
	}

	carPackage, err := c.carPackageRepository.FindCarPackageByName(ctx, car.PackageName)
	if err != nil {
		log.Info().Err(err).Str("func", "*catalogService.prepareCar").Str("package_name", car.PackageName).Msg("car package lookup failed")
		return translateError(err)
	}
	car.PackageID = carPackage.PackageID

	return nil
}
