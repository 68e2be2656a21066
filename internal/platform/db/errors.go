package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsDuplicateKey reports whether err is a unique-constraint violation,
// across the drivers this server can run on.
func IsDuplicateKey(err error) bool {
	// MySQL error 1062: duplicate entry for a unique key
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}

	// Postgres 23505: unique_violation
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	// gorm's translated error, used by the sqlite test driver
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
