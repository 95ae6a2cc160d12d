package repository

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
)

const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgInvalidTextRepresent = "22P02"
	pgNotNullViolation     = "23502"
)

var (
	pgDuplicateKey  = regexp.MustCompile(`Key \(([^)]+)\)=`)
	sqliteDuplicate = regexp.MustCompile(`UNIQUE constraint failed: \w+\.(\w+)`)
)

// translateError maps storage failures to application errors. Duplicate keys
// and rejected values become InvalidInput naming the field; anything else
// becomes a generic internal failure so driver text never reaches a client.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			field := "Record"
			if m := pgDuplicateKey.FindStringSubmatch(pgErr.Detail); m != nil {
				field = jsonField(m[1])
			}
			return apperror.NewInvalidInputError(fmt.Sprintf("%s already exists", field))
		case pgCheckViolation, pgNotNullViolation:
			if pgErr.ColumnName != "" {
				return apperror.NewInvalidInputError(fmt.Sprintf("Invalid value for %s", jsonField(pgErr.ColumnName)))
			}
			return apperror.NewInvalidInputError("Invalid value")
		case pgInvalidTextRepresent:
			return apperror.NewInvalidInputError("Invalid value")
		}
	}

	if m := sqliteDuplicate.FindStringSubmatch(err.Error()); m != nil {
		return apperror.NewInvalidInputError(fmt.Sprintf("%s already exists", jsonField(m[1])))
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewInvalidInputError("Record already exists")
	}

	return apperror.NewInternalError("Database operation failed", err)
}

// jsonField turns a column name such as bill_number into billNumber
func jsonField(column string) string {
	return lo.CamelCase(column)
}
