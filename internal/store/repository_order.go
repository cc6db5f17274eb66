package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

// orderRepository is the SQL implementation of [OrderRepository]. Placed
// orders are never updated; returns are recorded in "car_returns".
type orderRepository struct {
	sqlStore
}

func (r *orderRepository) CreateOrder(ctx context.Context, order models.PlacedOrder) (models.PlacedOrder, error) {
	order.CreatedAt = time.Now().UTC()

	id, err := r.insertReturningID(ctx, r.dialect.builder().
		Insert(tablePlacedOrders).
		Columns("user_id", "car_id", "brand", "model", "car_package", "hours", "charge", "created_at").
		Values(order.UserID, order.CarID, order.Brand, order.Model, order.CarPackage, order.Hours, order.Charge, order.CreatedAt))
	if err != nil {
		if r.classify(err) == ForeignKeyViolation {
			return models.PlacedOrder{}, ErrNoUserWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order")
		return models.PlacedOrder{}, err
	}

	order.OrderID = id
	return order, nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, orderID int64) (models.PlacedOrder, error) {
	row, err := r.queryRow(ctx, r.dialect.builder().
		Select(placedOrderColumns...).
		From(tablePlacedOrders).
		Where(sq.Eq{"id": orderID}))
	if err != nil {
		return models.PlacedOrder{}, err
	}

	order, err := scanPlacedOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PlacedOrder{}, ErrNoOrderWasFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.FindOrderByID").Int64("order_id", orderID).Msg("error scanning order")
		return models.PlacedOrder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return order, nil
}

// ListOrders returns every placed order ordered by id.
func (r *orderRepository) ListOrders(ctx context.Context) ([]models.PlacedOrder, error) {
	rows, err := r.query(ctx, r.dialect.builder().
		Select(placedOrderColumns...).
		From(tablePlacedOrders).
		OrderBy("id"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.ListOrders").Msg("error querying orders")
		return nil, err
	}

	return scanAll(rows, scanPlacedOrder)
}

func (r *orderRepository) MarkOrderReturned(ctx context.Context, orderID int64) error {
	_, err := r.exec(ctx, r.dialect.builder().
		Insert(tableCarReturns).
		Columns("order_id", "returned_at").
		Values(orderID, time.Now().UTC()))
	if err != nil {
		switch r.classify(err) {
		case UniqueViolation:
			return ErrOrderAlreadyReturned
		case ForeignKeyViolation:
			return ErrNoOrderWasFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.MarkOrderReturned").Int64("order_id", orderID).Msg("error recording car return")
		return err
	}

	return nil
}

func scanPlacedOrder(row rowScanner) (models.PlacedOrder, error) {
	var (
		o     models.PlacedOrder
		carID sql.NullInt64
	)

	err := row.Scan(&o.OrderID, &o.UserID, &carID, &o.Brand, &o.Model, &o.CarPackage, &o.Hours, &o.Charge, &o.CreatedAt)
	if err != nil {
		return models.PlacedOrder{}, err
	}
	if carID.Valid {
		o.CarID = &carID.Int64
	}

	return o, nil
}
