package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	tableUsers        = "users"
	tableUserRoles    = "user_roles"
	tableCreditCards  = "credit_cards"
	tableCarPackages  = "car_packages"
	tableCars         = "cars"
	tablePlacedOrders = "placed_orders"
	tableCarReturns   = "car_returns"
	tableAccessKeys   = "access_keys"
)

var (
	userColumns = []string{
		"id", "first_name", "last_name", "username", "password_hash", "email", "phone", "created_at",
	}
	creditCardColumns = []string{
		"id", "user_id", "card_number", "month", "year", "cvv", "account_balance",
	}
	carPackageColumns = []string{
		"id", "package_name", "price_per_hour",
	}
	carColumns = []string{
		"c.id", "c.registration_nr", "c.brand", "c.model", "c.is_available", "c.package_id", "p.package_name",
		"c.fuel_type", "c.gear_box_type", "c.number_of_doors", "c.number_of_seats", "c.is_air_conditioning_available",
	}
	placedOrderColumns = []string{
		"id", "user_id", "car_id", "brand", "model", "car_package", "hours", "charge", "created_at",
	}
	accessKeyColumns = []string{
		"id", "user_id", "order_id", "code", "car_package", "hours", "created_at",
	}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryRow builds query and runs it, returning the single result row.
func (s sqlStore) queryRow(ctx context.Context, query sq.Sqlizer) (*sql.Row, error) {
	text, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.q.QueryRowContext(ctx, text, args...), nil
}

// query builds query and runs it. The caller closes the returned rows.
func (s sqlStore) query(ctx context.Context, query sq.Sqlizer) (*sql.Rows, error) {
	text, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.q.QueryContext(ctx, text, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows, nil
}

// exec builds statement, runs it and returns the number of affected rows.
// Driver errors are wrapped, so they can still be classified.
func (s sqlStore) exec(ctx context.Context, statement sq.Sqlizer) (int64, error) {
	text, args, err := statement.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.q.ExecContext(ctx, text, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// insertReturningID runs an INSERT ... RETURNING id statement.
func (s sqlStore) insertReturningID(ctx context.Context, insert sq.InsertBuilder) (int64, error) {
	row, err := s.queryRow(ctx, insert.Suffix("RETURNING id"))
	if err != nil {
		return 0, err
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// scanAll scans every row with scan and closes rows.
func scanAll[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
