package httpx

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error is a domain error carrying the HTTP status it should surface as.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a status-carrying error.
func NewError(status int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Status: status}
}

// NotFound builds a 404 error.
func NotFound(format string, args ...any) *Error {
	return NewError(http.StatusNotFound, format, args...)
}

// PostgreSQL SQLSTATE codes worth classifying for clients.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ClassifyPgError reclassifies constraint violations into client errors.
// Everything else passes through untouched and falls into the 500 default.
func ClassifyPgError(err error, entity string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return NewError(http.StatusConflict, "%s already exists", entity)
	case pgForeignKeyViolation:
		return NewError(http.StatusBadRequest, "%s references a missing record", entity)
	}
	return err
}

// RespondError maps a handler error onto the response. Errors that do not
// carry a status become a generic 500; store error text never reaches the
// client.
func RespondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		JSON(w, appErr.Status, appErr)
		return
	}
	if logger != nil {
		logger.Error("unclassified error", slog.Any("error", err))
	}
	JSON(w, http.StatusInternalServerError, &Error{
		Message: "Internal Server Error",
		Status:  http.StatusInternalServerError,
	})
}
