package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-car-rental/models"
)

// RentalAPI is the client-side view of the car rental REST service.
//
// Methods that need an identity send the access token obtained by the last
// successful [RentalAPI.Login] or [RentalAPI.Refresh]. Server errors are
// returned wrapped in one of the sentinel errors of this package, so callers
// can branch with errors.Is.
type RentalAPI interface {
	// Login exchanges username and password for a token pair and keeps it.
	Login(ctx context.Context, username, password string) error
	// Refresh trades the kept refresh token for a new pair.
	Refresh(ctx context.Context) error
	// Tokens returns the access and refresh tokens currently held.
	Tokens() (access, refresh string)

	Register(ctx context.Context, user models.User) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)

	ListCars(ctx context.Context, availableOnly bool, page models.Page) (models.PageResponse[models.Car], error)
	ListCarPackages(ctx context.Context) ([]models.CarPackage, error)

	SubmitOrder(ctx context.Context, order models.OrderRequest) (models.AccessKeyDTO, error)
	GetOrders(ctx context.Context) ([]models.PlacedOrder, error)

	LinkCreditCard(ctx context.Context, card models.CreditCard) error
	GetBalance(ctx context.Context) (models.BalanceResponse, error)

	ListAccessKeys(ctx context.Context) ([]models.AccessKey, error)
	ReturnCar(ctx context.Context, orderID int64) error

	Version(ctx context.Context) (models.VersionResponse, error)
}
