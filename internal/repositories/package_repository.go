package repositories

import (
	"context"
	"fmt"

	intdb "tourism/internal/db"
	"tourism/internal/domain"
	"tourism/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

const packageColumns = `id, title, destination, description, price, duration,
	COALESCE(image_url, '') AS image_url, COALESCE(status, 'Available') AS status`

type PackageRepository struct {
	Q intdb.Querier
}

func NewPackageRepository(q intdb.Querier) PackageRepository {
	return PackageRepository{Q: q}
}

// List returns every package. Status is not a filter.
func (r PackageRepository) List(ctx context.Context) ([]models.Package, error) {
	out := []models.Package{}
	if err := sqlx.SelectContext(ctx, r.Q, &out, `SELECT `+packageColumns+` FROM packages ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return out, nil
}

func (r PackageRepository) GetByID(ctx context.Context, id int64) (models.Package, error) {
	var p models.Package
	err := sqlx.GetContext(ctx, r.Q, &p, `SELECT `+packageColumns+` FROM packages WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if intdb.IsNoRows(err) {
			return p, domain.NotFoundError{Resource: "package", Err: err}
		}
		return p, fmt.Errorf("get package: %w", err)
	}
	return p, nil
}

// Create stores the fields as submitted; price is handed to the column untouched.
func (r PackageRepository) Create(ctx context.Context, in models.PackageInput) (int64, error) {
	res, err := r.Q.ExecContext(ctx, `
		INSERT INTO packages (title, destination, price, duration, description, image_url, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.Title, in.Destination, in.Price, in.Duration, in.Description, intdb.NullIfEmpty(in.ImageURL), statusOrDefault(in.Status))
	if err != nil {
		return 0, fmt.Errorf("insert package: %w", err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r PackageRepository) Update(ctx context.Context, id int64, in models.PackageInput) error {
	_, err := r.Q.ExecContext(ctx, `
		UPDATE packages
		SET title = ?, destination = ?, price = ?, duration = ?, description = ?,
			image_url = COALESCE(?, image_url), status = ?
		WHERE id = ?
	`, in.Title, in.Destination, in.Price, in.Duration, in.Description, intdb.NullIfEmpty(in.ImageURL), statusOrDefault(in.Status), id)
	if err != nil {
		return fmt.Errorf("update package: %w", err)
	}
	return nil
}

// Delete removes the package; bookings referencing it cascade at the storage layer.
func (r PackageRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.Q.ExecContext(ctx, `DELETE FROM packages WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete package: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r PackageRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.Q, "packages")
}

func statusOrDefault(s string) string {
	if s == "" {
		return models.PackageAvailable
	}
	return s
}
