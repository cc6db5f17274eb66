package service

import (
	"context"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/models"
)

type deliveryService struct {
	repos      *store.Repositories
	unitOfWork store.UnitOfWork

	logger *logger.Logger
}

func NewDeliveryService(repos *store.Repositories, unitOfWork store.UnitOfWork, logger *logger.Logger) DeliveryService {
	return &deliveryService{
		repos:      repos,
		unitOfWork: unitOfWork,
		logger:     logger,
	}
}

// ListAccessKeys returns the keys issued to the calling user, oldest first.
func (d *deliveryService) ListAccessKeys(ctx context.Context) ([]models.AccessKey, error) {
	user, err := currentUser(ctx, d.repos.UserRepository)
	if err != nil {
		return nil, err
	}

	keys, err := d.repos.AccessKeyRepository.ListAccessKeysByUserID(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deliveryService.ListAccessKeys").Int64("user_id", user.UserID).Msg("error listing access keys")
		return nil, translateError(err)
	}

	return keys, nil
}

// ReturnCar records the return of the car assigned to orderID and makes the
// car available again. Orders of other users are reported as not found.
func (d *deliveryService) ReturnCar(ctx context.Context, orderID int64) error {
	log := logger.FromContext(ctx)

	user, err := currentUser(ctx, d.repos.UserRepository)
	if err != nil {
		return err
	}

	err = d.unitOfWork.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		order, err := repos.OrderRepository.FindOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.UserID != user.UserID {
			return ErrOrderNotFound
		}
		if order.CarID == nil {
			return ErrCarNotAssigned
		}

		if err = repos.OrderRepository.MarkOrderReturned(ctx, orderID); err != nil {
			return err
		}

		return repos.CarRepository.SetCarAvailability(ctx, *order.CarID, true)
	})
	if err != nil {
		log.Info().Err(err).Str("func", "*deliveryService.ReturnCar").Int64("order_id", orderID).Msg("car return failed")
		return translateError(err)
	}

	log.Info().Str("func", "*deliveryService.ReturnCar").Int64("order_id", orderID).Msg("car returned")
	return nil
}
