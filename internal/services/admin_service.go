package services

import (
	"context"

	intdb "tourism/internal/db"
	"tourism/internal/domain"
	"tourism/internal/domain/models"
	"tourism/internal/repositories"
)

// AdminService backs the read-only admin views that are not owned by a
// single catalog or booking flow.
type AdminService struct {
	Store *intdb.Store
}

// Stats counts packages, bookings and feedback at call time.
func (s AdminService) Stats(ctx context.Context) (models.AdminStats, error) {
	var st models.AdminStats
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		if st.TotalPackages, err = repositories.NewPackageRepository(q).Count(ctx); err != nil {
			return err
		}
		if st.TotalBookings, err = repositories.NewBookingRepository(q).Count(ctx); err != nil {
			return err
		}
		st.TotalFeedbacks, err = repositories.NewFeedbackRepository(q).Count(ctx)
		return err
	})
	return st, err
}

// Users lists registered users.
func (s AdminService) Users(ctx context.Context) ([]models.UserSummary, error) {
	var out []models.UserSummary
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		out, err = repositories.NewPrincipalRepository(q, domain.KindUser).ListUsers(ctx)
		return err
	})
	return out, err
}
