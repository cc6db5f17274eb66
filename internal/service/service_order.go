package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
)

// CodeGenerator produces access-key codes.
type CodeGenerator interface {
	Generate() string
}

// orderService places orders. Every submission runs as one unit of work:
// the card debit, the car reservation, the order record and the access key
// are committed together or not at all.
type orderService struct {
	orderRepository store.OrderRepository
	unitOfWork      store.UnitOfWork
	codeGenerator   CodeGenerator
	validator       validators.Validator

	logger *logger.Logger
}

func NewOrderService(repos *store.Repositories, unitOfWork store.UnitOfWork, codeGenerator CodeGenerator, validator validators.Validator, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: repos.OrderRepository,
		unitOfWork:      unitOfWork,
		codeGenerator:   codeGenerator,
		validator:       validator,
		logger:          logger,
	}
}

// SubmitOrder charges the calling user price_per_hour × hours for packageName
// and issues an access key.
//
// The caller is taken from the request context only. Inside one transaction
// the user's card is loaded with a row lock, the package resolved, the
// balance checked and debited, the first available car of the package
// reserved when there is one, and the order and key stored.
//
// Returns:
//   - ErrUnauthenticated without an identity in ctx;
//   - ErrInvalidDataProvided for an empty package name or hours < 1;
//   - ErrNoCreditCard when the user has no linked card;
//   - ErrPackageNotFound for an unknown package;
//   - ErrInsufficientFunds when the balance is lower than the charge.
//
// On any error nothing is written.
func (o *orderService) SubmitOrder(ctx context.Context, packageName string, hours int) (models.AccessKeyDTO, error) {
	log := logger.FromContext(ctx)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return models.AccessKeyDTO{}, ErrUnauthenticated
	}

	request := models.OrderRequest{CarPackage: packageName, Hours: hours}
	if err := o.validator.Validate(ctx, request); err != nil {
		log.Info().Err(err).Str("func", "*orderService.SubmitOrder").Msg("invalid order provided")
		return models.AccessKeyDTO{}, translateError(err)
	}

	var key models.AccessKey
	err := o.unitOfWork.Do(ctx, func(ctx context.Context, repos *store.Repositories) error {
		user, err := repos.UserRepository.FindUserByUsername(ctx, identity.Username)
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUnauthenticated
		}
		if err != nil {
			return err
		}

		card, err := repos.CreditCardRepository.FindCreditCardByUserID(ctx, user.UserID, true)
		if err != nil {
			return err
		}

		carPackage, err := repos.CarPackageRepository.FindCarPackageByName(ctx, request.CarPackage)
		if err != nil {
			return err
		}

		charge, ok := carPackage.Charge(request.Hours)
		if !ok {
			log.Info().Str("func", "*orderService.SubmitOrder").Str("package", carPackage.PackageName).
				Int64("price_per_hour", carPackage.PricePerHour).Int("hours", request.Hours).Msg("charge out of range")
			return fmt.Errorf("%w: charge out of range", ErrInvalidDataProvided)
		}
		if card.AccountBalance < charge {
			log.Info().Str("func", "*orderService.SubmitOrder").Int64("balance", card.AccountBalance).
				Int64("charge", charge).Msg("insufficient funds")
			return ErrInsufficientFunds
		}

		if err = repos.CreditCardRepository.UpdateBalance(ctx, card.CardID, card.AccountBalance-charge); err != nil {
			return err
		}

		order := models.PlacedOrder{
			UserID:     user.UserID,
			CarPackage: carPackage.PackageName,
			Hours:      request.Hours,
			Charge:     charge,
		}

		car, err := repos.CarRepository.ReserveAvailableCar(ctx, carPackage.PackageID)
		switch {
		case err == nil:
			order.CarID = &car.CarID
			order.Brand = car.Brand
			order.Model = car.Model
		case errors.Is(err, store.ErrNoCarWasFound):
			log.Info().Str("func", "*orderService.SubmitOrder").Str("package", carPackage.PackageName).Msg("no available car, order placed without car")
		default:
			return err
		}

		order, err = repos.OrderRepository.CreateOrder(ctx, order)
		if err != nil {
			return err
		}

		key, err = repos.AccessKeyRepository.CreateAccessKey(ctx, models.AccessKey{
			UserID:     user.UserID,
			OrderID:    order.OrderID,
			Code:       o.codeGenerator.Generate(),
			CarPackage: carPackage.PackageName,
			Hours:      request.Hours,
		})
		return err
	})
	if err != nil {
		log.Info().Err(err).Str("func", "*orderService.SubmitOrder").
			Str("username", identity.Username).
			Str("package", packageName).
			Int("hours", hours).
			Msg("order submission failed")
		return models.AccessKeyDTO{}, translateError(err)
	}

	log.Info().Str("func", "*orderService.SubmitOrder").
		Str("username", identity.Username).
		Int64("order_id", key.OrderID).
		Msg("order placed")

	return key.ToDTO(), nil
}

// GetOrders returns every placed order ordered by id.
func (o *orderService) GetOrders(ctx context.Context) ([]models.PlacedOrder, error) {
	orders, err := o.orderRepository.ListOrders(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderService.GetOrders").Msg("error listing orders")
		return nil, translateError(err)
	}

	return orders, nil
}
