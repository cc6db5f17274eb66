package models

import "time"

// User represents a customer or staff account.
//
// Password carries the plain-text password only on the way in (registration,
// user creation, password change) and is never serialized back. PasswordHash
// is the bcrypt hash stored in the database.
type User struct {
	UserID       int64     `json:"id"`
	FirstName    string    `json:"first_name" validate:"max=100"`
	LastName     string    `json:"last_name" validate:"max=100"`
	Username     string    `json:"username" validate:"required,min=3,max=50"`
	Password     string    `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email" validate:"omitempty,email"`
	Phone        string    `json:"phone" validate:"omitempty,max=20"`
	Roles        []Role    `json:"roles" validate:"omitempty,unique,dive,role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
