package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorWithStatus(t *testing.T) {
	res := httptest.NewRecorder()
	RespondError(res, nil, NotFound("No company was found with code %s", "lala"))

	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "application/json", res.Header().Get("Content-Type"))

	var body Error
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Equal(t, http.StatusNotFound, body.Status)
	require.Contains(t, body.Message, "lala")
}

func TestRespondErrorDefaultDoesNotLeak(t *testing.T) {
	res := httptest.NewRecorder()
	RespondError(res, nil, errors.New(`pq: connection refused at host "db-internal"`))

	require.Equal(t, http.StatusInternalServerError, res.Code)

	var body Error
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Equal(t, "Internal Server Error", body.Message)
	require.NotContains(t, res.Body.String(), "db-internal")
}

func TestClassifyPgError(t *testing.T) {
	dup := ClassifyPgError(&pgconn.PgError{Code: "23505"}, "company code")
	var appErr *Error
	require.True(t, errors.As(dup, &appErr))
	require.Equal(t, http.StatusConflict, appErr.Status)

	fk := ClassifyPgError(&pgconn.PgError{Code: "23503"}, "invoice")
	require.True(t, errors.As(fk, &appErr))
	require.Equal(t, http.StatusBadRequest, appErr.Status)

	// Anything not explicitly classified passes through and lands on the
	// 500 default.
	plain := errors.New("connection reset")
	require.Equal(t, plain, ClassifyPgError(plain, "company"))

	other := &pgconn.PgError{Code: "57P01"}
	require.Equal(t, error(other), ClassifyPgError(other, "company"))
}
