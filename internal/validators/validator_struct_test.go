// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-car-rental/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func testValidator() *StructValidator {
	return newStructValidator(func() time.Time { return fixedNow })
}

func validUser() models.User {
	return models.User{
		FirstName: "John",
		LastName:  "Doe",
		Username:  "johndoe",
		Password:  "s3cret!",
		Email:     "john@example.com",
		Roles:     []models.Role{models.RoleUser},
	}
}

func validCard() models.CreditCard {
	return models.CreditCard{
		CardNumber: "4111111111111111",
		Month:      12,
		Year:       2027,
		CVV:        "123",
	}
}

func TestNewStructValidator(t *testing.T) {
	require.NotNil(t, NewStructValidator())
}

func TestValidate_User(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *models.User)
		wantErr bool
	}{
		{name: "valid", mutate: func(*models.User) {}},
		{name: "no password is allowed", mutate: func(u *models.User) { u.Password = "" }},
		{name: "no roles is allowed", mutate: func(u *models.User) { u.Roles = nil }},
		{name: "short username", mutate: func(u *models.User) { u.Username = "jo" }, wantErr: true},
		{name: "missing username", mutate: func(u *models.User) { u.Username = "" }, wantErr: true},
		{name: "short password", mutate: func(u *models.User) { u.Password = "123" }, wantErr: true},
		{name: "bad email", mutate: func(u *models.User) { u.Email = "not-an-email" }, wantErr: true},
		{name: "unknown role", mutate: func(u *models.User) { u.Roles = []models.Role{"ROOT"} }, wantErr: true},
		{name: "duplicate roles", mutate: func(u *models.User) { u.Roles = []models.Role{models.RoleUser, models.RoleUser} }, wantErr: true},
	}

	v := testValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(context.Background(), u)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_PointerToStruct(t *testing.T) {
	u := validUser()
	u.Username = ""

	err := testValidator().Validate(context.Background(), &u)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Username")
}

func TestValidate_CreditCard(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.CreditCard)
		wantErr bool
	}{
		{name: "valid", mutate: func(*models.CreditCard) {}},
		{name: "expires this month", mutate: func(c *models.CreditCard) { c.Year, c.Month = 2026, 6 }},
		{name: "expired last month", mutate: func(c *models.CreditCard) { c.Year, c.Month = 2026, 5 }, wantErr: true},
		{name: "expired last year", mutate: func(c *models.CreditCard) { c.Year = 2025 }, wantErr: true},
		{name: "letters in number", mutate: func(c *models.CreditCard) { c.CardNumber = "4111-1111-1111" }, wantErr: true},
		{name: "month out of range", mutate: func(c *models.CreditCard) { c.Month = 13 }, wantErr: true},
		{name: "short cvv", mutate: func(c *models.CreditCard) { c.CVV = "12" }, wantErr: true},
		{name: "negative balance", mutate: func(c *models.CreditCard) { c.AccountBalance = -1 }, wantErr: true},
	}

	v := testValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCard()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_CarWithParameters(t *testing.T) {
	car := models.Car{
		RegistrationNr: "WX 12345",
		Brand:          "Audi",
		Model:          "A4",
		PackageName:    "Luxury",
		Parameters: &models.CarParameters{
			FuelType:      models.FuelPetrol,
			GearBoxType:   models.GearBoxAutomatic,
			NumberOfDoors: 5,
			NumberOfSeats: 5,
		},
	}

	v := testValidator()
	require.NoError(t, v.Validate(context.Background(), car))

	car.Parameters.FuelType = "STEAM"
	assert.ErrorIs(t, v.Validate(context.Background(), car), ErrInvalidInput)
}

func TestValidate_CarPackagePrice(t *testing.T) {
	v := testValidator()

	assert.NoError(t, v.Validate(context.Background(), models.CarPackage{PackageName: "Top", PricePerHour: models.MaxPricePerHour}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.CarPackage{PackageName: "Huge", PricePerHour: 1 << 60}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(context.Background(), models.CarPackage{PackageName: "Free"}), ErrInvalidInput)
}

func TestValidate_OrderRequest(t *testing.T) {
	v := testValidator()

	assert.NoError(t, v.Validate(context.Background(), models.OrderRequest{CarPackage: "Luxury", Hours: 2}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.OrderRequest{CarPackage: "Luxury", Hours: 0}), ErrInvalidInput)
	assert.ErrorIs(t, v.Validate(context.Background(), models.OrderRequest{Hours: 1}), ErrInvalidInput)
}

func TestValidate_PartialFields(t *testing.T) {
	u := validUser()
	u.Email = "broken"

	v := testValidator()
	assert.NoError(t, v.Validate(context.Background(), u, "Username", "Password"))
	assert.ErrorIs(t, v.Validate(context.Background(), u, "Email"), ErrInvalidInput)
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := testValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
