package db

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
	mysqlRowIsReferenced = 1451
)

func mysqlNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsDuplicateKey reports a unique-key violation.
func IsDuplicateKey(err error) bool {
	return mysqlNumber(err) == mysqlDuplicateEntry
}

// IsForeignKeyViolation reports an insert or update that references a missing parent row.
func IsForeignKeyViolation(err error) bool {
	n := mysqlNumber(err)
	return n == mysqlNoReferencedRow || n == mysqlRowIsReferenced
}

// IsNoRows reports an empty single-row lookup.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// NullIfEmpty helps store optional strings as NULL.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
