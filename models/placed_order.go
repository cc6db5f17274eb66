package models

import "time"

// PlacedOrder is the immutable record of a submitted order.
//
// CarID, Brand and Model are set when a car of the package was available at
// submission time and got assigned to the order.
type PlacedOrder struct {
	OrderID    int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CarID      *int64    `json:"car_id,omitempty"`
	Brand      string    `json:"brand,omitempty"`
	Model      string    `json:"model,omitempty"`
	CarPackage string    `json:"car_package"`
	Hours      int       `json:"hours"`
	Charge     int64     `json:"charge"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PlacedOrder model.
func (o PlacedOrder) TableName() string {
	return "placed_orders"
}

// OrderRequest is the body of an order submission.
type OrderRequest struct {
	CarPackage string `json:"carPackage" validate:"required"`
	Hours      int    `json:"hours" validate:"required,min=1,max=8760"`
}
