package services

import (
	"context"

	intdb "tourism/internal/db"
	"tourism/internal/domain/models"
	"tourism/internal/metrics"
	"tourism/internal/repositories"
)

// CatalogService serves the package catalog to visitors and admins.
type CatalogService struct {
	Store *intdb.Store
}

func (s CatalogService) List(ctx context.Context) ([]models.Package, error) {
	var out []models.Package
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		out, err = repositories.NewPackageRepository(q).List(ctx)
		return err
	})
	return out, err
}

func (s CatalogService) Get(ctx context.Context, id int64) (models.Package, error) {
	var p models.Package
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		p, err = repositories.NewPackageRepository(q).GetByID(ctx, id)
		return err
	})
	return p, err
}

// Create stores the package as submitted. There is no numeric check on
// price or duration.
func (s CatalogService) Create(ctx context.Context, in models.PackageInput) (int64, error) {
	var id int64
	err := s.Store.WithConn(ctx, func(q intdb.Querier) error {
		var err error
		id, err = repositories.NewPackageRepository(q).Create(ctx, in)
		return err
	})
	if err != nil {
		return 0, err
	}
	metrics.PackageChanges.WithLabelValues("create").Inc()
	return id, nil
}

// Update replaces the package fields, or returns NotFoundError when id is unknown.
func (s CatalogService) Update(ctx context.Context, id int64, in models.PackageInput) error {
	err := s.Store.WithTx(ctx, func(q intdb.Querier) error {
		repo := repositories.NewPackageRepository(q)
		if _, err := repo.GetByID(ctx, id); err != nil {
			return err
		}
		return repo.Update(ctx, id, in)
	})
	if err != nil {
		return err
	}
	metrics.PackageChanges.WithLabelValues("update").Inc()
	return nil
}

// Delete removes the package unconditionally and reports how many bookings
// went with it through the cascade.
func (s CatalogService) Delete(ctx context.Context, id int64) (int64, error) {
	var cascaded int64
	err := s.Store.WithTx(ctx, func(q intdb.Querier) error {
		var err error
		if cascaded, err = repositories.NewBookingRepository(q).CountByPackage(ctx, id); err != nil {
			return err
		}
		_, err = repositories.NewPackageRepository(q).Delete(ctx, id)
		return err
	})
	if err != nil {
		return 0, err
	}
	metrics.PackageChanges.WithLabelValues("delete").Inc()
	return cascaded, nil
}
