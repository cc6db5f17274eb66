package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-car-rental/models"
)

// UserRepository persists user accounts together with their roles.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID int64) error
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// CreditCardRepository persists the single card linked to a user.
type CreditCardRepository interface {
	CreateCreditCard(ctx context.Context, card models.CreditCard) (models.CreditCard, error)
	// FindCreditCardByUserID loads the card of userID. With forUpdate the row
	// stays locked until the surrounding transaction ends (PostgreSQL).
	FindCreditCardByUserID(ctx context.Context, userID int64, forUpdate bool) (models.CreditCard, error)
	UpdateBalance(ctx context.Context, cardID int64, balance int64) error
}

// CarPackageRepository persists car packages.
type CarPackageRepository interface {
	CreateCarPackage(ctx context.Context, carPackage models.CarPackage) (models.CarPackage, error)
	FindCarPackageByName(ctx context.Context, name string) (models.CarPackage, error)
	ListCarPackages(ctx context.Context) ([]models.CarPackage, error)
	DeleteCarPackage(ctx context.Context, packageID int64) error
}

// CarRepository persists cars.
type CarRepository interface {
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	FindCarByID(ctx context.Context, carID int64) (models.Car, error)
	ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) error
	DeleteCar(ctx context.Context, carID int64) error
	// ReserveAvailableCar marks the first available car of the package as
	// unavailable and returns it. ErrNoCarWasFound means none is available.
	ReserveAvailableCar(ctx context.Context, packageID int64) (models.Car, error)
	SetCarAvailability(ctx context.Context, carID int64, available bool) error
}

// OrderRepository persists placed orders and car returns.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.PlacedOrder) (models.PlacedOrder, error)
	FindOrderByID(ctx context.Context, orderID int64) (models.PlacedOrder, error)
	ListOrders(ctx context.Context) ([]models.PlacedOrder, error)
	// MarkOrderReturned records that the car of the order was handed back.
	// A second call for the same order yields ErrOrderAlreadyReturned.
	MarkOrderReturned(ctx context.Context, orderID int64) error
}

// AccessKeyRepository persists issued rental keys.
type AccessKeyRepository interface {
	CreateAccessKey(ctx context.Context, key models.AccessKey) (models.AccessKey, error)
	ListAccessKeysByUserID(ctx context.Context, userID int64) ([]models.AccessKey, error)
}

// UnitOfWork runs fn inside one database transaction. The repositories
// passed to fn are bound to that transaction; the transaction is committed
// when fn returns nil and rolled back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

// ErrorClassificator maps driver errors to a driver-independent
// [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
