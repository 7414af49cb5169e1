package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return NewStore(sqlx.NewDb(mockDB, "mysql")), mock
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE packages").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.WithTx(context.Background(), func(q Querier) error {
		_, err := q.ExecContext(context.Background(), "UPDATE packages SET status = ? WHERE id = ?", "Available", 1)
		return err
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.WithTx(context.Background(), func(q Querier) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if recover() == nil {
			t.Fatalf("panic should propagate")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet expectations: %v", err)
		}
	}()
	_ = store.WithTx(context.Background(), func(q Querier) error { panic("bad") })
}

func TestWithConnReleasesOnError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT id FROM users").WillReturnError(errors.New("gone"))

	err := store.WithConn(context.Background(), func(q Querier) error {
		var id int64
		return sqlx.GetContext(context.Background(), q, &id, "SELECT id FROM users WHERE id = ?", 1)
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if n := store.DB.Stats().InUse; n != 0 {
		t.Fatalf("connection not released, in use = %d", n)
	}
}

func TestNilStoreIsReported(t *testing.T) {
	var store *Store
	if err := store.WithConn(context.Background(), func(Querier) error { return nil }); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if err := store.WithTx(context.Background(), func(Querier) error { return nil }); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestMigrateCreatesEveryTable(t *testing.T) {
	store, mock := newMockStore(t)
	for _, table := range Tables() {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table + " ").WillReturnResult(sqlmock.NewResult(0, 0))
	}
	if err := Migrate(context.Background(), store.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingsCascadeWithParents(t *testing.T) {
	var ddl string
	for _, s := range schema {
		if s.table == "bookings" {
			ddl = s.ddl
		}
	}
	for _, want := range []string{
		"REFERENCES users(id) ON DELETE CASCADE",
		"REFERENCES packages(id) ON DELETE CASCADE",
	} {
		if !strings.Contains(ddl, want) {
			t.Fatalf("bookings ddl missing %q", want)
		}
	}
}

func TestSeedInsertsMissingRows(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM admin WHERE email = ?")).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO admin").
		WithArgs("Super Admin", "admin@example.com", hashedNot("admin123"), "admin", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE email = ?")).
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM packages WHERE title = ?")).
		WithArgs("Goa Beach Tour").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO packages").
		WithArgs("Goa Beach Tour", "Goa", sqlmock.AnyArg(), int64(12000), "4 Days / 3 Nights", sqlmock.AnyArg(), "Available").
		WillReturnResult(sqlmock.NewResult(1, 1))

	n, err := Seed(context.Background(), store.DB)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLErrorClassification(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	fk := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}

	if !IsDuplicateKey(errors.Join(errors.New("insert users"), dup)) {
		t.Fatalf("wrapped 1062 should be a duplicate key")
	}
	if IsDuplicateKey(fk) {
		t.Fatalf("1452 is not a duplicate key")
	}
	if !IsForeignKeyViolation(fk) {
		t.Fatalf("1452 should be a foreign key violation")
	}
	if IsForeignKeyViolation(errors.New("plain")) {
		t.Fatalf("plain errors are not driver errors")
	}
}

// hashedNot matches any string argument that is not the plaintext.
type hashedNot string

func (p hashedNot) Match(v driver.Value) bool {
	s, ok := v.(string)
	return ok && s != "" && s != string(p)
}
