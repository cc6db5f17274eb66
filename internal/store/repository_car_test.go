package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-car-rental/models"
)

var carRowColumns = []string{
	"id", "registration_nr", "brand", "model", "is_available", "package_id", "package_name",
	"fuel_type", "gear_box_type", "number_of_doors", "number_of_seats", "is_air_conditioning_available",
}

func TestReserveAvailableCar_LocksAndReserves(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &carRepository{s}

	mock.ExpectQuery("SELECT id FROM cars WHERE (.+) ORDER BY id LIMIT 1 FOR UPDATE SKIP LOCKED").
		WithArgs(true, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectExec("UPDATE cars SET is_available = \\$1 WHERE").
		WithArgs(false, int64(11), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM cars c JOIN car_packages p ON p.id = c.package_id WHERE c.id = \\$1").
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows(carRowColumns).
			AddRow(11, "WX 1234", "Audi", "A6", false, 3, "Luxury", "PETROL", "AUTOMATIC", 4, 5, true))

	car, err := repo.ReserveAvailableCar(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), car.CarID)
	assert.Equal(t, "Luxury", car.PackageName)
	assert.False(t, car.IsAvailable)
	require.NotNil(t, car.Parameters)
	assert.Equal(t, models.FuelPetrol, car.Parameters.FuelType)
	assert.Equal(t, 5, car.Parameters.NumberOfSeats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveAvailableCar_NoneAvailable(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &carRepository{s}

	mock.ExpectQuery("SELECT id FROM cars").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.ReserveAvailableCar(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNoCarWasFound)
}

func TestFindCarByID_WithoutParameters(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &carRepository{s}

	mock.ExpectQuery("SELECT (.+) FROM cars c").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(carRowColumns).
			AddRow(2, "KR 777", "Fiat", "Panda", true, 1, "Economy", nil, nil, nil, nil, nil))

	car, err := repo.FindCarByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, car.Parameters)
	assert.Equal(t, "Economy", car.PackageName)
}

func TestListCars_AvailableOnly(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &carRepository{s}

	mock.ExpectQuery("SELECT (.+) FROM cars c (.+) WHERE c.is_available = \\$1 ORDER BY c.id LIMIT 20 OFFSET 0").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(carRowColumns).
			AddRow(1, "A1", "Fiat", "Panda", true, 1, "Economy", nil, nil, nil, nil, nil))

	cars, err := repo.ListCars(context.Background(), models.CarFilter{AvailableOnly: true})
	require.NoError(t, err)
	assert.Len(t, cars, 1)
}

func TestCreateCar_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "duplicate plate", code: pgerrcode.UniqueViolation, wantErr: ErrCarAlreadyExists},
		{name: "unknown package", code: pgerrcode.ForeignKeyViolation, wantErr: ErrNoCarPackageWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock, db := newTestSQLStore(t)
			defer db.Close()
			repo := &carRepository{s}

			mock.ExpectQuery("INSERT INTO cars").WillReturnError(pgError(tt.code))

			_, err := repo.CreateCar(context.Background(), models.Car{RegistrationNr: "X", PackageID: 1})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteCarPackage_InUse(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &carPackageRepository{s}

	mock.ExpectExec("DELETE FROM car_packages WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.DeleteCarPackage(context.Background(), 1)
	assert.ErrorIs(t, err, ErrCarPackageInUse)
}

func TestFindCreditCardByUserID_ForUpdate(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &creditCardRepository{s}

	mock.ExpectQuery("SELECT (.+) FROM credit_cards WHERE user_id = \\$1 FOR UPDATE$").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "card_number", "month", "year", "cvv", "account_balance"}).
			AddRow(1, 4, "4111111111111111", 12, 2030, "123", 1200))

	card, err := repo.FindCreditCardByUserID(context.Background(), 4, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), card.AccountBalance)
}

func TestFindCreditCardByUserID_NotFound(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &creditCardRepository{s}

	mock.ExpectQuery("SELECT (.+) FROM credit_cards").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindCreditCardByUserID(context.Background(), 4, false)
	assert.ErrorIs(t, err, ErrNoCreditCardWasFound)
}

func TestMarkOrderReturned_Twice(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &orderRepository{s}

	mock.ExpectExec("INSERT INTO car_returns").
		WithArgs(int64(8), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.MarkOrderReturned(context.Background(), 8)
	assert.ErrorIs(t, err, ErrOrderAlreadyReturned)
}

func TestCreateOrder_WithoutCar(t *testing.T) {
	s, mock, db := newTestSQLStore(t)
	defer db.Close()
	repo := &orderRepository{s}

	mock.ExpectQuery("INSERT INTO placed_orders (.+) RETURNING id").
		WithArgs(int64(1), nil, "", "", "Luxury", 2, int64(1000), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	order, err := repo.CreateOrder(context.Background(), models.PlacedOrder{
		UserID: 1, CarPackage: "Luxury", Hours: 2, Charge: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), order.OrderID)
	assert.Nil(t, order.CarID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
