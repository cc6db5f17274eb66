package service

import (
	"context"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/validators"
	"github.com/MKhiriev/go-car-rental/models"
)

type paymentService struct {
	userRepository       store.UserRepository
	creditCardRepository store.CreditCardRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewPaymentService(repos *store.Repositories, validator validators.Validator, logger *logger.Logger) PaymentService {
	return &paymentService{
		userRepository:       repos.UserRepository,
		creditCardRepository: repos.CreditCardRepository,
		validator:            validator,
		logger:               logger,
	}
}

// LinkCreditCard stores card as the card of the calling user. A user links
// one card at most; a second one yields ErrCreditCardAlreadyLinked.
func (p *paymentService) LinkCreditCard(ctx context.Context, card models.CreditCard) (models.CreditCard, error) {
	log := logger.FromContext(ctx)

	user, err := currentUser(ctx, p.userRepository)
	if err != nil {
		return models.CreditCard{}, err
	}

	if err = p.validator.Validate(ctx, card); err != nil {
		log.Info().Err(err).Str("func", "*paymentService.LinkCreditCard").Msg("invalid credit card provided")
		return models.CreditCard{}, translateError(err)
	}
	card.UserID = user.UserID

	linked, err := p.creditCardRepository.CreateCreditCard(ctx, card)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.LinkCreditCard").Int64("user_id", user.UserID).Msg("error linking credit card")
		return models.CreditCard{}, translateError(err)
	}

	return linked, nil
}

func (p *paymentService) GetBalance(ctx context.Context) (models.BalanceResponse, error) {
	user, err := currentUser(ctx, p.userRepository)
	if err != nil {
		return models.BalanceResponse{}, err
	}

	card, err := p.creditCardRepository.FindCreditCardByUserID(ctx, user.UserID, false)
	if err != nil {
		return models.BalanceResponse{}, translateError(err)
	}

	return models.BalanceResponse{AccountBalance: card.AccountBalance}, nil
}
