package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// DatabaseExecuteError reports a failed repository call as a 500. The cause stays
// reachable through Unwrap for logging but never reaches the client.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps err; details describes the operation that failed.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
