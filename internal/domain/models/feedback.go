package models

import "time"

type Feedback struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"user_email" json:"email"`
	Subject     string    `db:"subject" json:"subject"`
	Message     string    `db:"message" json:"message"`
	SubmittedOn time.Time `db:"submitted_on" json:"submitted_on"`
}

type FeedbackInput struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// AdminStats holds the live counts shown on the admin profile.
type AdminStats struct {
	TotalPackages  int64 `json:"total_packages"`
	TotalBookings  int64 `json:"total_bookings"`
	TotalFeedbacks int64 `json:"total_feedbacks"`
}
