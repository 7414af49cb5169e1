package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"tourism/internal/domain"
	"tourism/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "mysql"), mock
}

var principalCols = []string{"id", "name", "email", "password", "role", "phone", "location", "registration_date"}

func TestPrincipalRepositoryUsesKindTable(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery("FROM admin WHERE email = \\?").
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows(principalCols).
			AddRow(1, "Super Admin", "admin@example.com", "hash", "admin", "", "", now))

	p, err := NewPrincipalRepository(db, domain.KindAdmin).FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if p.ID != 1 || p.Role != "admin" || p.PasswordHash != "hash" {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPrincipalRepositoryNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM users WHERE id = \\?").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := NewPrincipalRepository(db, domain.KindUser).FindByID(context.Background(), 9)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPrincipalRepositoryEmailExists(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT id FROM users WHERE email = \\?").
		WithArgs("t@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery("SELECT id FROM users WHERE email = \\?").
		WithArgs("new@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewPrincipalRepository(db, domain.KindUser)
	if ok, err := repo.EmailExists(context.Background(), "t@x.com"); err != nil || !ok {
		t.Fatalf("expected existing email, got %v %v", ok, err)
	}
	if ok, err := repo.EmailExists(context.Background(), "new@x.com"); err != nil || ok {
		t.Fatalf("expected free email, got %v %v", ok, err)
	}
}

func TestPrincipalRepositoryUpdateUserProfile(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE users SET name = \\?, email = \\?, phone = \\?, location = \\? WHERE id = \\?").
		WithArgs("Test", "t@x.com", "123", nil, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewPrincipalRepository(db, domain.KindUser).UpdateProfile(context.Background(), 2,
		models.ProfileInput{Name: "Test", Email: "t@x.com", Phone: "123"})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPrincipalRepositoryAdminProfileIsNotEditable(t *testing.T) {
	db, mock := newMock(t)
	err := NewPrincipalRepository(db, domain.KindAdmin).UpdateProfile(context.Background(), 1,
		models.ProfileInput{Name: "Boss", Email: "boss@x.com"})
	if err == nil {
		t.Fatalf("expected admin profile update to be refused")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database use: %v", err)
	}
}

func TestPackageRepositoryCreateKeepsSubmittedPrice(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("INSERT INTO packages").
		WithArgs("Goa Beach Tour", "Goa", "12000", "4 Days / 3 Nights", "Sun", nil, "Available").
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := NewPackageRepository(db).Create(context.Background(), models.PackageInput{
		Title:       "Goa Beach Tour",
		Destination: "Goa",
		Price:       "12000",
		Duration:    "4 Days / 3 Nights",
		Description: "Sun",
	})
	if err != nil {
		t.Fatalf("create package: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPackageRepositoryGetMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("FROM packages WHERE id = \\?").WithArgs(int64(3)).WillReturnError(sql.ErrNoRows)

	_, err := NewPackageRepository(db).GetByID(context.Background(), 3)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingRepositoryListByUser(t *testing.T) {
	db, mock := newMock(t)
	newer := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	mock.ExpectQuery("ORDER BY b.booked_on DESC").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "booked_on", "title", "destination", "description", "price", "duration", "image_url"}).
			AddRow(2, 1, newer, "Goa Beach Tour", "Goa", "Sun", 12000, "4D", "").
			AddRow(1, 1, older, "Goa Beach Tour", "Goa", "Sun", 12000, "4D", ""))

	rows, err := NewBookingRepository(db).ListByUser(context.Background(), 5)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(rows) != 2 || !rows[0].BookedOn.After(rows[1].BookedOn) {
		t.Fatalf("expected most recent first, got %+v", rows)
	}
	if rows[0].PackageID != 1 || rows[0].Price != 12000 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

func TestFeedbackRepositoryCreateAndCount(t *testing.T) {
	db, mock := newMock(t)
	at := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)

	mock.ExpectExec("INSERT INTO feedback").
		WithArgs("Ann", "ann@x.com", "Hi", "Great trip", at).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM feedback")).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	repo := NewFeedbackRepository(db)
	if _, err := repo.Create(context.Background(), models.FeedbackInput{
		Name: "Ann", Email: "ann@x.com", Subject: "Hi", Message: "Great trip",
	}, at); err != nil {
		t.Fatalf("create feedback: %v", err)
	}
	n, err := repo.Count(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("expected count 1, got %d %v", n, err)
	}
}

func TestFeedbackRepositoryListNewestFirst(t *testing.T) {
	db, mock := newMock(t)
	newer := time.Date(2025, 5, 6, 8, 0, 0, 0, time.UTC)
	older := newer.Add(-48 * time.Hour)

	mock.ExpectQuery("FROM feedback\\s+ORDER BY submitted_on DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_email", "subject", "message", "submitted_on"}).
			AddRow(2, "Bo", "bo@x.com", "Refund", "Late bus", newer).
			AddRow(1, "Ann", "ann@x.com", "Hi", "Great trip", older))

	rows, err := NewFeedbackRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("list feedback: %v", err)
	}
	if len(rows) != 2 || !rows[0].SubmittedOn.After(rows[1].SubmittedOn) {
		t.Fatalf("expected most recent first, got %+v", rows)
	}
	if rows[0].Email != "bo@x.com" || rows[1].Subject != "Hi" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestBookingRepositoryListAllNewestFirst(t *testing.T) {
	db, mock := newMock(t)
	newer := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("JOIN users u ON b.user_id = u.id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booked_on", "user_name", "email", "package_title", "price"}).
			AddRow(4, newer, "Test", "t@x.com", "Goa Beach Tour", 12000).
			AddRow(3, newer.Add(-time.Hour), "Ann", "ann@x.com", "Goa Beach Tour", 12000))

	rows, err := NewBookingRepository(db).ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all bookings: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != 4 || rows[0].UserName != "Test" || rows[0].PackageTitle != "Goa Beach Tour" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
