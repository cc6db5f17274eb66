package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/models"
)

type accessKeyRepository struct {
	sqlStore
}

// CreateAccessKey persists key. One key is issued per order.
func (r *accessKeyRepository) CreateAccessKey(ctx context.Context, key models.AccessKey) (models.AccessKey, error) {
	key.CreatedAt = time.Now().UTC()

	id, err := r.insertReturningID(ctx, r.dialect.builder().
		Insert(tableAccessKeys).
		Columns("user_id", "order_id", "code", "car_package", "hours", "created_at").
		Values(key.UserID, key.OrderID, key.Code, key.CarPackage, key.Hours, key.CreatedAt))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessKeyRepository.CreateAccessKey").Int64("order_id", key.OrderID).Msg("error inserting access key")
		return models.AccessKey{}, err
	}

	key.KeyID = id
	return key, nil
}

func (r *accessKeyRepository) ListAccessKeysByUserID(ctx context.Context, userID int64) ([]models.AccessKey, error) {
	rows, err := r.query(ctx, r.dialect.builder().
		Select(accessKeyColumns...).
		From(tableAccessKeys).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id"))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accessKeyRepository.ListAccessKeysByUserID").Int64("user_id", userID).Msg("error querying access keys")
		return nil, err
	}

	return scanAll(rows, func(row rowScanner) (models.AccessKey, error) {
		var k models.AccessKey
		err := row.Scan(&k.KeyID, &k.UserID, &k.OrderID, &k.Code, &k.CarPackage, &k.Hours, &k.CreatedAt)
		return k, err
	})
}
