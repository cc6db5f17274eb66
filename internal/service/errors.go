package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenExpired        = errors.New("token is expired")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")

	ErrNoCreditCard            = errors.New("no credit card linked to the account")
	ErrInsufficientFunds       = errors.New("insufficient funds on the credit card")
	ErrCreditCardAlreadyLinked = errors.New("a credit card is already linked to the account")

	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username is already taken")

	ErrPackageNotFound  = errors.New("car package not found")
	ErrDuplicatePackage = errors.New("car package already exists")
	ErrPackageInUse     = errors.New("car package is still assigned to cars")

	ErrCarNotFound  = errors.New("car not found")
	ErrDuplicateCar = errors.New("car with this registration number already exists")

	ErrOrderNotFound      = errors.New("order not found")
	ErrCarNotAssigned     = errors.New("no car is assigned to the order")
	ErrCarAlreadyReturned = errors.New("car of the order was already returned")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// storeErrors maps repository sentinels to the service errors reported to
// callers.
var storeErrors = []struct {
	storeErr   error
	serviceErr error
}{
	{store.ErrNoUserWasFound, ErrUserNotFound},
	{store.ErrUsernameAlreadyExists, ErrDuplicateUsername},
	{store.ErrNoCreditCardWasFound, ErrNoCreditCard},
	{store.ErrCreditCardAlreadyExists, ErrCreditCardAlreadyLinked},
	{store.ErrNoCarPackageWasFound, ErrPackageNotFound},
	{store.ErrCarPackageAlreadyExists, ErrDuplicatePackage},
	{store.ErrCarPackageInUse, ErrPackageInUse},
	{store.ErrNoCarWasFound, ErrCarNotFound},
	{store.ErrCarAlreadyExists, ErrDuplicateCar},
	{store.ErrNoOrderWasFound, ErrOrderNotFound},
	{store.ErrOrderAlreadyReturned, ErrCarAlreadyReturned},
}

// translateError wraps err with the matching service error, keeping the
// original in the chain. Errors without a mapping are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	for _, m := range storeErrors {
		if errors.Is(err, m.storeErr) {
			return fmt.Errorf("%w: %w", m.serviceErr, err)
		}
	}

	if errors.Is(err, validators.ErrInvalidInput) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return err
}
