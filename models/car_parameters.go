package models

// FuelType is the kind of fuel a car runs on.
type FuelType string

const (
	FuelPetrol   FuelType = "PETROL"
	FuelDiesel   FuelType = "DIESEL"
	FuelLPG      FuelType = "LPG"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
)

// GearBoxType is the transmission kind of a car.
type GearBoxType string

const (
	GearBoxManual    GearBoxType = "MANUAL"
	GearBoxAutomatic GearBoxType = "AUTOMATIC"
)

// CarParameters describes the technical details of a car.
type CarParameters struct {
	FuelType                   FuelType    `json:"fuel_type" validate:"required,oneof=PETROL DIESEL LPG ELECTRIC HYBRID"`
	GearBoxType                GearBoxType `json:"gear_box_type" validate:"required,oneof=MANUAL AUTOMATIC"`
	NumberOfDoors              int         `json:"number_of_doors" validate:"min=1,max=9"`
	NumberOfSeats              int         `json:"number_of_seats" validate:"min=1,max=60"`
	IsAirConditioningAvailable bool        `json:"is_air_conditioning_available"`
}
