package repositories

import (
	"context"
	"fmt"
	"time"

	intdb "tourism/internal/db"
	"tourism/internal/domain"
	"tourism/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type BookingRepository struct {
	Q intdb.Querier
}

func NewBookingRepository(q intdb.Querier) BookingRepository {
	return BookingRepository{Q: q}
}

// Create inserts a booking without looking at the package first; a missing
// package surfaces as the driver's foreign-key error.
func (r BookingRepository) Create(ctx context.Context, userID, packageID int64, bookedOn time.Time) (int64, error) {
	res, err := r.Q.ExecContext(ctx,
		`INSERT INTO bookings (user_id, package_id, booked_on) VALUES (?, ?, ?)`,
		userID, packageID, bookedOn)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

const userBookingSelect = `
	SELECT b.id, b.package_id, b.booked_on,
		p.title, p.destination, p.description, p.price, p.duration,
		COALESCE(p.image_url, '') AS image_url
	FROM bookings b
	JOIN packages p ON b.package_id = p.id`

// ListByUser returns the user's bookings, most recent first.
func (r BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.UserBooking, error) {
	out := []models.UserBooking{}
	err := sqlx.SelectContext(ctx, r.Q, &out, userBookingSelect+`
	WHERE b.user_id = ?
	ORDER BY b.booked_on DESC, b.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	return out, nil
}

// GetForUser returns one booking only when it belongs to userID.
func (r BookingRepository) GetForUser(ctx context.Context, bookingID, userID int64) (models.UserBooking, error) {
	var b models.UserBooking
	err := sqlx.GetContext(ctx, r.Q, &b, userBookingSelect+`
	WHERE b.id = ? AND b.user_id = ?
	LIMIT 1`, bookingID, userID)
	if err != nil {
		if intdb.IsNoRows(err) {
			return b, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return b, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListAll returns every booking with its user and package, most recent first.
func (r BookingRepository) ListAll(ctx context.Context) ([]models.AdminBooking, error) {
	out := []models.AdminBooking{}
	err := sqlx.SelectContext(ctx, r.Q, &out, `
		SELECT b.id, b.booked_on, u.name AS user_name, u.email,
			p.title AS package_title, p.price
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		JOIN packages p ON b.package_id = p.id
		ORDER BY b.booked_on DESC, b.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (r BookingRepository) CountByPackage(ctx context.Context, packageID int64) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, r.Q, &n, `SELECT COUNT(*) FROM bookings WHERE package_id = ?`, packageID); err != nil {
		return 0, fmt.Errorf("count package bookings: %w", err)
	}
	return n, nil
}

func (r BookingRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.Q, "bookings")
}
