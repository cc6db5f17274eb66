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

type carPackageRepository struct {
	sqlStore
}

func (r *carPackageRepository) CreateCarPackage(ctx context.Context, carPackage models.CarPackage) (models.CarPackage, error) {
	id, err := r.insertReturningID(ctx, r.dialect.builder().
		Insert(tableCarPackages).
		Columns("package_name", "price_per_hour").
		Values(carPackage.PackageName, carPackage.PricePerHour))
	if err != nil {
		if r.classify(err) == UniqueViolation {
			return models.CarPackage{}, ErrCarPackageAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*carPackageRepository.CreateCarPackage").Msg("error inserting car package")
		return models.CarPackage{}, err
	}

	carPackage.PackageID = id
	return carPackage, nil
}

func (r *carPackageRepository) FindCarPackageByName(ctx context.Context, name string) (models.CarPackage, error) {
	row, err := r.queryRow(ctx, r.dialect.builder().
		Select(carPackageColumns...).
		From(tableCarPackages).
		Where(sq.Eq{"package_name": name}))
	if err != nil {
		return models.CarPackage{}, err
	}

	carPackage, err := scanCarPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CarPackage{}, ErrNoCarPackageWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*carPackageRepository.FindCarPackageByName").Msg("error scanning car package")
		return models.CarPackage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return carPackage, nil
}

func (r *carPackageRepository) ListCarPackages(ctx context.Context) ([]models.CarPackage, error) {
	rows, err := r.query(ctx, r.dialect.builder().
		Select(carPackageColumns...).
		From(tableCarPackages).
		OrderBy("id"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*carPackageRepository.ListCarPackages").Msg("error querying car packages")
		return nil, err
	}

	return scanAll(rows, scanCarPackage)
}

// DeleteCarPackage removes a package. Packages still referenced by a car
// are kept and [ErrCarPackageInUse] is returned.
func (r *carPackageRepository) DeleteCarPackage(ctx context.Context, packageID int64) error {
	affected, err := r.exec(ctx, r.dialect.builder().Delete(tableCarPackages).Where(sq.Eq{"id": packageID}))
	if err != nil {
		if r.classify(err) == ForeignKeyViolation {
			return ErrCarPackageInUse
		}
		logger.FromContext(ctx).Err(err).Str("func", "*carPackageRepository.DeleteCarPackage").Int64("package_id", packageID).Msg("error deleting car package")
		return err
	}
	if affected == 0 {
		return ErrNoCarPackageWasFound
	}

	return nil
}

func scanCarPackage(row rowScanner) (models.CarPackage, error) {
	var p models.CarPackage
	err := row.Scan(&p.PackageID, &p.PackageName, &p.PricePerHour)
	return p, err
}
