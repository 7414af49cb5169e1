package services

import (
	"context"
	"time"

	intdb "tourism/internal/db"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/metrics"
	"tourism/internal/repositories"
	"tourism/internal/utils"
)

type BookingService struct {
	Store     *intdb.Store
	Now       func() time.Time
	RequestID string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Book ties the user to the package at the current time. Neither the
// package's existence nor its status is checked; a missing package fails
// with the storage foreign-key error.
func (s BookingService) Book(ctx context.Context, id domain.Identity, packageID int64) (int64, error) {
	if !id.IsUser() {
		return 0, domain.UnauthorizedError{}
	}
	var bookingID int64
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		bookingID, err = repositories.NewBookingRepository(q).Create(ctx, int64(id.SubjectID), packageID, s.now())
		return err
	})
	if err != nil {
		return 0, err
	}
	metrics.Bookings.Inc()
	return bookingID, nil
}

// MyBookings lists the user's bookings joined with packages, most recent first.
func (s BookingService) MyBookings(ctx context.Context, id domain.Identity) ([]models.UserBooking, error) {
	if !id.IsUser() {
		return nil, domain.UnauthorizedError{}
	}
	var out []models.UserBooking
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		out, err = repositories.NewBookingRepository(q).ListByUser(ctx, int64(id.SubjectID))
		return err
	})
	return out, err
}

// AllBookings lists every booking for the admin view.
func (s BookingService) AllBookings(ctx context.Context) ([]models.AdminBooking, error) {
	var out []models.AdminBooking
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		out, err = repositories.NewBookingRepository(q).ListAll(ctx)
		return err
	})
	return out, err
}

// Receipt renders a PDF receipt for one of the user's own bookings.
func (s BookingService) Receipt(ctx context.Context, id domain.Identity, bookingID int64) ([]byte, string, error) {
	if !id.IsUser() {
		return nil, "", domain.UnauthorizedError{}
	}
	var data receiptData
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		b, err := repositories.NewBookingRepository(q).GetForUser(ctx, bookingID, int64(id.SubjectID))
		if err != nil {
			return err
		}
		p, err := repositories.NewPrincipalRepository(q, domain.KindUser).FindByID(ctx, int64(id.SubjectID))
		if err != nil {
			return err
		}
		data = receiptData{Booking: b, Customer: p}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "booking", "generate_receipt", "booking_id="+itoa(bookingID))
	return buildReceiptPDF(data, s.now())
}
