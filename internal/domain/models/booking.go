package models

import "time"

// UserBooking is a my-bookings row: a booking joined with its package.
type UserBooking struct {
	ID          int64     `db:"id" json:"id"`
	PackageID   int64     `db:"package_id" json:"package_id"`
	BookedOn    time.Time `db:"booked_on" json:"booked_on"`
	Title       string    `db:"title" json:"title"`
	Destination string    `db:"destination" json:"destination"`
	Description string    `db:"description" json:"description"`
	Price       int64     `db:"price" json:"price"`
	Duration    string    `db:"duration" json:"duration"`
	ImageURL    string    `db:"image_url" json:"image_url"`
}

// AdminBooking is a row of the admin booking listing.
type AdminBooking struct {
	ID           int64     `db:"id" json:"id"`
	BookedOn     time.Time `db:"booked_on" json:"booked_on"`
	UserName     string    `db:"user_name" json:"user_name"`
	Email        string    `db:"email" json:"email"`
	PackageTitle string    `db:"package_title" json:"package_title"`
	Price        int64     `db:"price" json:"price"`
}
