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

type creditCardRepository struct {
	sqlStore
}

// CreateCreditCard links card to card.UserID. A user holds at most one card.
func (r *creditCardRepository) CreateCreditCard(ctx context.Context, card models.CreditCard) (models.CreditCard, error) {
	insert := r.dialect.builder().
		Insert(tableCreditCards).
		Columns("user_id", "card_number", "month", "year", "cvv", "account_balance").
		Values(card.UserID, card.CardNumber, card.Month, card.Year, card.CVV, card.AccountBalance)

	id, err := r.insertReturningID(ctx, insert)
	if err != nil {
		switch r.classify(err) {
		case UniqueViolation:
			return models.CreditCard{}, ErrCreditCardAlreadyExists
		case ForeignKeyViolation:
			return models.CreditCard{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*creditCardRepository.CreateCreditCard").Msg("error inserting credit card")
		return models.CreditCard{}, err
	}

	card.CardID = id
	return card, nil
}

func (r *creditCardRepository) FindCreditCardByUserID(ctx context.Context, userID int64, forUpdate bool) (models.CreditCard, error) {
	query := r.dialect.builder().
		Select(creditCardColumns...).
		From(tableCreditCards).
		Where(sq.Eq{"user_id": userID})
	if forUpdate {
		query = r.dialect.lockForUpdate(query, false)
	}

	row, err := r.queryRow(ctx, query)
	if err != nil {
		return models.CreditCard{}, err
	}

	var card models.CreditCard
	err = row.Scan(&card.CardID, &card.UserID, &card.CardNumber, &card.Month, &card.Year, &card.CVV, &card.AccountBalance)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CreditCard{}, ErrNoCreditCardWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*creditCardRepository.FindCreditCardByUserID").Int64("user_id", userID).Msg("error scanning credit card")
		return models.CreditCard{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// UpdateBalance overwrites the balance of the card. The CHECK constraint on
// account_balance rejects negative values.
func (r *creditCardRepository) UpdateBalance(ctx context.Context, cardID int64, balance int64) error {
	affected, err := r.exec(ctx, r.dialect.builder().
		Update(tableCreditCards).
		Set("account_balance", balance).
		Where(sq.Eq{"id": cardID}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*creditCardRepository.UpdateBalance").Int64("card_id", cardID).Msg("error updating balance")
		return err
	}
	if affected == 0 {
		return ErrNoCreditCardWasFound
	}

	return nil
}
