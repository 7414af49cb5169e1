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

// PrincipalRepository reads and writes one credential table. The users and
// admin tables share this code but never each other's rows.
type PrincipalRepository struct {
	Q    intdb.Querier
	Kind domain.PrincipalKind
}

func NewPrincipalRepository(q intdb.Querier, kind domain.PrincipalKind) PrincipalRepository {
	return PrincipalRepository{Q: q, Kind: kind}
}

func (r PrincipalRepository) table() string {
	if r.Kind == domain.KindAdmin {
		return "admin"
	}
	return "users"
}

func (r PrincipalRepository) selectColumns() string {
	if r.Kind == domain.KindAdmin {
		return `id, name, email, password, COALESCE(role, 'admin') AS role,
			'' AS phone, '' AS location, registration_date`
	}
	return `id, name, email, password, COALESCE(role, 'user') AS role,
		COALESCE(phone, '') AS phone, COALESCE(location, '') AS location, registration_date`
}

func (r PrincipalRepository) FindByEmail(ctx context.Context, email string) (models.Principal, error) {
	var p models.Principal
	query := `SELECT ` + r.selectColumns() + ` FROM ` + r.table() + ` WHERE email = ? LIMIT 1`
	if err := sqlx.GetContext(ctx, r.Q, &p, query, email); err != nil {
		if intdb.IsNoRows(err) {
			return p, domain.NotFoundError{Resource: string(r.Kind), Err: err}
		}
		return p, fmt.Errorf("find %s by email: %w", r.Kind, err)
	}
	return p, nil
}

func (r PrincipalRepository) FindByID(ctx context.Context, id int64) (models.Principal, error) {
	var p models.Principal
	query := `SELECT ` + r.selectColumns() + ` FROM ` + r.table() + ` WHERE id = ? LIMIT 1`
	if err := sqlx.GetContext(ctx, r.Q, &p, query, id); err != nil {
		if intdb.IsNoRows(err) {
			return p, domain.NotFoundError{Resource: string(r.Kind), Err: err}
		}
		return p, fmt.Errorf("find %s by id: %w", r.Kind, err)
	}
	return p, nil
}

func (r PrincipalRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var ids []int64
	query := `SELECT id FROM ` + r.table() + ` WHERE email = ? LIMIT 1`
	if err := sqlx.SelectContext(ctx, r.Q, &ids, query, email); err != nil {
		return false, fmt.Errorf("check %s email: %w", r.Kind, err)
	}
	return len(ids) > 0, nil
}

func (r PrincipalRepository) Create(ctx context.Context, name, email, passwordHash string, role domain.Role, registeredAt time.Time) (int64, error) {
	query := `INSERT INTO ` + r.table() + ` (name, email, password, role, registration_date) VALUES (?, ?, ?, ?, ?)`
	res, err := r.Q.ExecContext(ctx, query, name, email, passwordHash, string(role), registeredAt)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", r.Kind, err)
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// UpdateProfile overwrites the editable fields of a user row.
func (r PrincipalRepository) UpdateProfile(ctx context.Context, id int64, in models.ProfileInput) error {
	if r.Kind != domain.KindUser {
		return fmt.Errorf("update %s profile: only user rows are editable", r.Kind)
	}
	_, err := r.Q.ExecContext(ctx, `UPDATE users SET name = ?, email = ?, phone = ?, location = ? WHERE id = ?`,
		in.Name, in.Email, intdb.NullIfEmpty(in.Phone), intdb.NullIfEmpty(in.Location), id)
	if err != nil {
		return fmt.Errorf("update %s profile: %w", r.Kind, err)
	}
	return nil
}

func (r PrincipalRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE ` + r.table() + ` SET password = ? WHERE id = ?`
	if _, err := r.Q.ExecContext(ctx, query, passwordHash, id); err != nil {
		return fmt.Errorf("update %s password: %w", r.Kind, err)
	}
	return nil
}

// ListUsers returns the public columns of every registered user.
func (r PrincipalRepository) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	out := []models.UserSummary{}
	err := sqlx.SelectContext(ctx, r.Q, &out, `
		SELECT id, name, email,
			COALESCE(phone, '') AS phone,
			COALESCE(location, '') AS location,
			registration_date
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func (r PrincipalRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.Q, r.table())
}

func count(ctx context.Context, q intdb.Querier, table string) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, q, &n, `SELECT COUNT(*) FROM `+table); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
