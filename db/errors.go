package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const dupKeyErrNumber = 1062

// IsDupKeyErr reports whether err is a MySQL duplicate-key violation.
func IsDupKeyErr(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == dupKeyErrNumber
}
