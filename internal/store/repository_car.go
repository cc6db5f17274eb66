package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

// carRepository is the SQL implementation of [CarRepository]. Reads join
// "car_packages" so the returned cars carry the package name.
type carRepository struct {
	sqlStore
}

func (r *carRepository) selectCars() sq.SelectBuilder {
	return r.dialect.builder().
		Select(carColumns...).
		From(tableCars + " c").
		Join(tableCarPackages + " p ON p.id = c.package_id")
}

// CreateCar persists car. car.PackageID must reference an existing package.
//
// Error handling:
//   - unique violation on registration_nr → [ErrCarAlreadyExists];
//   - foreign key violation on package_id → [ErrNoCarPackageWasFound].
func (r *carRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	fuel, gearBox, doors, seats, airCon := carParameterValues(car.Parameters)

	id, err := r.insertReturningID(ctx, r.dialect.builder().
		Insert(tableCars).
		Columns("registration_nr", "brand", "model", "is_available", "package_id",
			"fuel_type", "gear_box_type", "number_of_doors", "number_of_seats", "is_air_conditioning_available").
		Values(car.RegistrationNr, car.Brand, car.Model, car.IsAvailable, car.PackageID,
			fuel, gearBox, doors, seats, airCon))
	if err != nil {
		if mapped := r.mapWriteError(err); mapped != nil {
			return models.Car{}, mapped
		}
		logger.FromContext(ctx).Err(err).Str("func", "*carRepository.CreateCar").Msg("error inserting car")
		return models.Car{}, err
	}

	car.CarID = id
	return car, nil
}

func (r *carRepository) FindCarByID(ctx context.Context, carID int64) (models.Car, error) {
	row, err := r.queryRow(ctx, r.selectCars().Where(sq.Eq{"c.id": carID}))
	if err != nil {
		return models.Car{}, err
	}

	car, err := scanCar(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, ErrNoCarWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*carRepository.FindCarByID").Int64("car_id", carID).Msg("error scanning car")
		return models.Car{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return car, nil
}

// ListCars returns one page of cars ordered by id.
func (r *carRepository) ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	page := filter.Page.Normalize()

	query := r.selectCars().
		OrderBy("c.id").
		Limit(uint64(page.Size)).
		Offset(page.Offset())
	if filter.AvailableOnly {
		query = query.Where(sq.Eq{"c.is_available": true})
	}

	rows, err := r.query(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*carRepository.ListCars").Msg("error querying cars")
		return nil, err
	}

	return scanAll(rows, scanCar)
}

// UpdateCar overwrites every column of car.CarID.
func (r *carRepository) UpdateCar(ctx context.Context, car models.Car) error {
	fuel, gearBox, doors, seats, airCon := carParameterValues(car.Parameters)

	affected, err := r.exec(ctx, r.dialect.builder().
		Update(tableCars).
		Set("registration_nr", car.RegistrationNr).
		Set("brand", car.Brand).
		Set("model", car.Model).
		Set("is_available", car.IsAvailable).
		Set("package_id", car.PackageID).
		Set("fuel_type", fuel).
		Set("gear_box_type", gearBox).
		Set("number_of_doors", doors).
		Set("number_of_seats", seats).
		Set("is_air_conditioning_available", airCon).
		Where(sq.Eq{"id": car.CarID}))
	if err != nil {
		if mapped := r.mapWriteError(err); mapped != nil {
			return mapped
		}
		logger.FromContext(ctx).Err(err).Str("func", "*carRepository.UpdateCar").Int64("car_id", car.CarID).Msg("error updating car")
		return err
	}
	if affected == 0 {
		return ErrNoCarWasFound
	}

	return nil
}

// DeleteCar removes the car. Orders keep their copy of brand and model;
// their car_id is cleared.
func (r *carRepository) DeleteCar(ctx context.Context, carID int64) error {
	affected, err := r.exec(ctx, r.dialect.builder().Delete(tableCars).Where(sq.Eq{"id": carID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*carRepository.DeleteCar").Int64("car_id", carID).Msg("error deleting car")
		return err
	}
	if affected == 0 {
		return ErrNoCarWasFound
	}

	return nil
}

// ReserveAvailableCar picks the available car of the package with the lowest
// id, marks it unavailable and returns it. On PostgreSQL cars locked by other
// transactions are skipped.
func (r *carRepository) ReserveAvailableCar(ctx context.Context, packageID int64) (models.Car, error) {
	log := logger.FromContext(ctx)

	query := r.dialect.builder().
		Select("id").
		From(tableCars).
		Where(sq.Eq{"package_id": packageID, "is_available": true}).
		OrderBy("id").
		Limit(1)

	row, err := r.queryRow(ctx, r.dialect.lockForUpdate(query, true))
	if err != nil {
		return models.Car{}, err
	}

	var carID int64
	err = row.Scan(&carID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, ErrNoCarWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*carRepository.ReserveAvailableCar").Int64("package_id", packageID).Msg("error selecting available car")
		return models.Car{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	affected, err := r.exec(ctx, r.dialect.builder().
		Update(tableCars).
		Set("is_available", false).
		Where(sq.Eq{"id": carID, "is_available": true}))
	if err != nil {
		log.Err(err).Str("func", "*carRepository.ReserveAvailableCar").Int64("car_id", carID).Msg("error reserving car")
		return models.Car{}, err
	}
	if affected == 0 {
		return models.Car{}, ErrNoCarWasFound
	}

	return r.FindCarByID(ctx, carID)
}

func (r *carRepository) SetCarAvailability(ctx context.Context, carID int64, available bool) error {
	affected, err := r.exec(ctx, r.dialect.builder().
		Update(tableCars).
		Set("is_available", available).
		Where(sq.Eq{"id": carID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*carRepository.SetCarAvailability").Int64("car_id", carID).Msg("error updating car availability")
		return err
	}
	if affected == 0 {
		return ErrNoCarWasFound
	}

	return nil
}

func (r *carRepository) mapWriteError(err error) error {
	switch r.classify(err) {
	case UniqueViolation:
		return ErrCarAlreadyExists
	case ForeignKeyViolation:
		return ErrNoCarPackageWasFound
	}
	return nil
}

func carParameterValues(p *models.CarParameters) (fuel, gearBox, doors, seats, airCon any) {
	if p == nil {
		return nil, nil, nil, nil, nil
	}
	return string(p.FuelType), string(p.GearBoxType), p.NumberOfDoors, p.NumberOfSeats, p.IsAirConditioningAvailable
}

func scanCar(row rowScanner) (models.Car, error) {
	var (
		car     models.Car
		fuel    sql.NullString
		gearBox sql.NullString
		doors   sql.NullInt64
		seats   sql.NullInt64
		airCon  sql.NullBool
	)

	err := row.Scan(&car.CarID, &car.RegistrationNr, &car.Brand, &car.Model, &car.IsAvailable, &car.PackageID, &car.PackageName,
		&fuel, &gearBox, &doors, &seats, &airCon)
	if err != nil {
		return models.Car{}, err
	}

	if fuel.Valid {
		car.Parameters = &models.CarParameters{
			FuelType:                   models.FuelType(fuel.String),
			GearBoxType:                models.GearBoxType(gearBox.String),
			NumberOfDoors:              int(doors.Int64),
			NumberOfSeats:              int(seats.Int64),
			IsAirConditioningAvailable: airCon.Bool,
		}
	}

	return car, nil
}
