package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement against the document
// store is worth repeating.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier classifies errors of the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats lost connections, rolled back transactions and a server
// that is starting up or shutting down as transient.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := pgCode(err)
	if !ok {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case pgerrcode.IsOperatorIntervention(code) && code != pgerrcode.QueryCanceled:
		return Retryable
	}
	return NonRetryable
}

// IsUniqueViolation reports a duplicate key, e.g. a second registration of an
// email.
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgerrcode.UniqueViolation
}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
