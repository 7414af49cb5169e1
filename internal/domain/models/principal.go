package models

import "time"

// Principal is the shared shape of a users or admin row.
// Admin rows leave Phone and Location empty.
type Principal struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            string    `db:"email" json:"email"`
	PasswordHash     string    `db:"password" json:"-"`
	Role             string    `db:"role" json:"role"`
	Phone            string    `db:"phone" json:"phone,omitempty"`
	Location         string    `db:"location" json:"location,omitempty"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}

type RegisterInput struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Confirm  string `form:"confirm_password"`
}

type ProfileInput struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Phone    string `form:"phone"`
	Location string `form:"location"`
}

type PasswordChange struct {
	Current string `form:"current_password"`
	New     string `form:"new_password"`
	Confirm string `form:"confirm_password"`
}

// UserSummary is a row of the admin user listing.
type UserSummary struct {
	ID               int64     `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Email            string    `db:"email" json:"email"`
	Phone            string    `db:"phone" json:"phone"`
	Location         string    `db:"location" json:"location"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}
