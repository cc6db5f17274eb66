package models

import "math"

// MaxPricePerHour caps the hourly price so that a charge for the longest
// allowed rental always fits in int64.
const MaxPricePerHour = 1_000_000_000

// CarPackage groups cars sold at the same hourly price.
type CarPackage struct {
	PackageID    int64  `json:"id"`
	PackageName  string `json:"package_name" validate:"required,max=50"`
	PricePerHour int64  `json:"price_per_hour" validate:"required,min=1,max=1000000000"`
}

// TableName returns the name of the database table
// associated with the CarPackage model.
func (p CarPackage) TableName() string {
	return "car_packages"
}

// Charge returns the exact price of renting the package for hours. ok is
// false when hours or the price is not positive or the product overflows.
func (p CarPackage) Charge(hours int) (charge int64, ok bool) {
	if hours <= 0 || p.PricePerHour <= 0 {
		return 0, false
	}
	if p.PricePerHour > math.MaxInt64/int64(hours) {
		return 0, false
	}
	return p.PricePerHour * int64(hours), true
}
