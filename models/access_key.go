package models

import "time"

// AccessKey is the rental credential issued for a paid order.
type AccessKey struct {
	KeyID      int64     `json:"-"`
	UserID     int64     `json:"-"`
	OrderID    int64     `json:"order_id"`
	Code       string    `json:"code"`
	CarPackage string    `json:"car_package"`
	Hours      int       `json:"hours"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AccessKey model.
func (k AccessKey) TableName() string {
	return "access_keys"
}

// AccessKeyDTO mirrors the public fields of an [AccessKey] returned from an
// order submission. No balance or card data is echoed back.
type AccessKeyDTO struct {
	CarPackage string `json:"carPackage"`
	Hours      int    `json:"hours"`
}

// ToDTO returns the descriptor of k.
func (k AccessKey) ToDTO() AccessKeyDTO {
	return AccessKeyDTO{CarPackage: k.CarPackage, Hours: k.Hours}
}
