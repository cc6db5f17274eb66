package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

// currentUser resolves the user behind the identity of the request.
// A missing identity, or one whose account no longer exists, yields
// ErrUnauthenticated.
func currentUser(ctx context.Context, users store.UserRepository) (models.User, error) {
	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return models.User{}, ErrUnauthenticated
	}

	user, err := users.FindUserByUsername(ctx, identity.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
