package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-car-rental/models"
)

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	// Authenticate checks the credentials and issues an access and a refresh
	// token whose issuer is issuer.
	Authenticate(ctx context.Context, username, password, issuer string) (models.TokenPair, error)
	// Refresh exchanges a refresh token for a new access token. The roles are
	// read from the store again.
	Refresh(ctx context.Context, refreshToken, issuer string) (models.TokenPair, error)
	// ParseAccessToken verifies an access token and returns the identity it
	// carries.
	ParseAccessToken(ctx context.Context, token string) (models.Identity, error)
}

type UserService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, page models.Page) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	// EnsureAdmin creates an account holding every role unless username
	// already exists.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type CatalogService interface {
	ListCars(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	GetCar(ctx context.Context, carID int64) (models.Car, error)
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) (models.Car, error)
	DeleteCar(ctx context.Context, carID int64) error

	ListCarPackages(ctx context.Context) ([]models.CarPackage, error)
	CreateCarPackage(ctx context.Context, carPackage models.CarPackage) (models.CarPackage, error)
	DeleteCarPackage(ctx context.Context, packageID int64) error
}

// PaymentService manages the credit card of the calling user.
type PaymentService interface {
	LinkCreditCard(ctx context.Context, card models.CreditCard) (models.CreditCard, error)
	GetBalance(ctx context.Context) (models.BalanceResponse, error)
}

// DeliveryService hands out the rental keys of the calling user and takes
// cars back.
type DeliveryService interface {
	ListAccessKeys(ctx context.Context) ([]models.AccessKey, error)
	ReturnCar(ctx context.Context, orderID int64) error
}

type OrderService interface {
	// SubmitOrder charges the calling user for hours of packageName and
	// issues an access key, all in one transaction.
	SubmitOrder(ctx context.Context, packageName string, hours int) (models.AccessKeyDTO, error)
	GetOrders(ctx context.Context) ([]models.PlacedOrder, error)
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.VersionResponse
	CheckHealth(ctx context.Context) error
}
