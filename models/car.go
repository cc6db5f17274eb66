package models

// Car is a rentable vehicle. It references its package by id; the package
// name is resolved on reads for the API.
type Car struct {
	CarID          int64          `json:"id"`
	RegistrationNr string         `json:"registration_nr" validate:"required,max=20"`
	Brand          string         `json:"brand" validate:"required,max=50"`
	Model          string         `json:"model" validate:"required,max=50"`
	IsAvailable    bool           `json:"is_available"`
	PackageID      int64          `json:"-"`
	PackageName    string         `json:"car_package" validate:"required"`
	Parameters     *CarParameters `json:"parameters,omitempty" validate:"omitempty"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "cars"
}

// CarFilter narrows car listings.
type CarFilter struct {
	AvailableOnly bool
	Page          Page
}
