package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ValidationError carries field-level detail for user-correctable input
// problems. Rejected before any write.
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

func (ve *ValidationError) add(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

func (ve *ValidationError) hasErrors() bool { return len(ve.fields) > 0 }

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %+v", ve.fields)
}

func (ve *ValidationError) Fields() map[string][]string { return ve.fields }

func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// ConflictError marks a state conflict (room no longer available, booking
// already checked out). The user should retry with a different selection.
type ConflictError struct {
	Reason string
}

func (ce *ConflictError) Error() string { return ce.Reason }

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IntegrityError marks a failed post-commit verification: the transaction
// committed but the read-back did not reflect it. A storage anomaly, not a
// user error.
type IntegrityError struct {
	Detail string
}

func (ie *IntegrityError) Error() string {
	return "post-commit verification failed: " + ie.Detail
}

func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// NotFoundError names the entity a lookup missed.
type NotFoundError struct {
	Entity string
}

func (ne *NotFoundError) Error() string { return ne.Entity + " not found" }

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne) || errors.Is(err, gorm.ErrRecordNotFound)
}

// TxFailure is the classified "booking failed" signal for a write sequence
// that rolled back. Reason is for diagnostics; the raw driver error never
// reaches the user.
type TxFailure struct {
	Reason string
	Err    error
}

const (
	ReasonConstraint  = "constraint_violation"
	ReasonForeignKey  = "foreign_key_violation"
	ReasonLockTimeout = "lock_timeout"
	ReasonTimeout     = "timeout"
	ReasonUnknown     = "unknown"
)

func (tf *TxFailure) Error() string {
	return fmt.Sprintf("transaction failed (%s): %v", tf.Reason, tf.Err)
}

func (tf *TxFailure) Unwrap() error { return tf.Err }

// MySQL server error codes we care about.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
	mysqlErrNoReferencedRow = 1452
)

// classifyTxError buckets a failed write sequence by cause.
// Duplicate keys and lock waits on the room row are how a concurrent
// double-booking surfaces, so callers map those to a ConflictError.
func classifyTxError(err error) *TxFailure {
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return &TxFailure{Reason: ReasonConstraint, Err: err}
		case mysqlErrNoReferencedRow:
			return &TxFailure{Reason: ReasonForeignKey, Err: err}
		case mysqlErrLockWaitTimeout, mysqlErrDeadlock:
			return &TxFailure{Reason: ReasonLockTimeout, Err: err}
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &TxFailure{Reason: ReasonConstraint, Err: err}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &TxFailure{Reason: ReasonForeignKey, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &TxFailure{Reason: ReasonTimeout, Err: err}
	}

	// sqlite (tests) reports constraints as plain text
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"):
		return &TxFailure{Reason: ReasonConstraint, Err: err}
	case strings.Contains(msg, "foreign key constraint"):
		return &TxFailure{Reason: ReasonForeignKey, Err: err}
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "database table is locked"):
		return &TxFailure{Reason: ReasonLockTimeout, Err: err}
	}

	return &TxFailure{Reason: ReasonUnknown, Err: err}
}
