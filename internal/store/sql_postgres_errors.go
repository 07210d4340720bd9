package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.inTx] whether a failed transaction may be
// run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// Violation names the integrity constraint a failed statement broke.
type Violation int

const (
	NoViolation Violation = iota
	UniqueViolation
	ForeignKeyViolation
)

// PostgresErrorClassifier reads SQLSTATE codes from *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify marks connection loss (class 08), transaction rollbacks such as
// serialization failures and deadlocks (class 40) and 57P03 "cannot connect
// now" as retryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := sqlState(err)
	if !ok {
		return NonRetryable
	}

	if pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		code == pgerrcode.CannotConnectNow {
		return Retryable
	}
	return NonRetryable
}

func (c *PostgresErrorClassifier) Violation(err error) Violation {
	code, _ := sqlState(err)
	switch code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	default:
		return NoViolation
	}
}

func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
