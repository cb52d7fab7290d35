package invoices

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, repo Repository, cfg ServiceConfig) http.Handler {
	t.Helper()
	handler := NewHandler(nil, NewService(repo, cfg))
	r := chi.NewRouter()
	r.Route("/invoices", handler.MountRoutes)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestCreateInvoice(t *testing.T) {
	repo := newMemoryRepo()
	seedCompany(repo)
	router := newTestRouter(t, repo, ServiceConfig{})

	res := doJSON(t, router, http.MethodPost, "/invoices", `{"comp_code":"goog","amt":400}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var body struct {
		Invoice Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Equal(t, "goog", body.Invoice.CompCode)
	require.False(t, body.Invoice.Paid)
	require.Nil(t, body.Invoice.PaidDate)
}

func TestCreateInvoiceUnknownCompany(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(), ServiceConfig{})

	res := doJSON(t, router, http.MethodPost, "/invoices", `{"comp_code":"ghost","amt":400}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestCreateInvoiceMissingFields(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(), ServiceConfig{})

	res := doJSON(t, router, http.MethodPost, "/invoices", `{"amt":400}`)
	require.Equal(t, http.StatusBadRequest, res.Code)

	res = doJSON(t, router, http.MethodPost, "/invoices", `{"comp_code":"goog"}`)
	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestGetInvoiceIncludesCompany(t *testing.T) {
	repo := newMemoryRepo()
	seedCompany(repo)
	router := newTestRouter(t, repo, ServiceConfig{})

	res := doJSON(t, router, http.MethodPost, "/invoices", `{"comp_code":"goog","amt":400}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var created struct {
		Invoice Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	res = doJSON(t, router, http.MethodGet, fmt.Sprintf("/invoices/%d", created.Invoice.ID), "")
	require.Equal(t, http.StatusOK, res.Code)

	var detail struct {
		Invoice Invoice `json:"invoice"`
		Company Company `json:"company"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &detail))
	require.Equal(t, created.Invoice.ID, detail.Invoice.ID)
	require.Equal(t, "goog", detail.Company.Code)
}

func TestGetMissingInvoice(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(), ServiceConfig{})

	res := doJSON(t, router, http.MethodGet, "/invoices/99", "")
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestGetNonNumericID(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(), ServiceConfig{})

	res := doJSON(t, router, http.MethodGet, "/invoices/abc", "")
	require.Equal(t, http.StatusNotFound, res.Code)

	var body struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.Contains(t, body.Message, "abc")
}

func TestUpdateInvoicePaid(t *testing.T) {
	repo := newMemoryRepo()
	seedCompany(repo)
	router := newTestRouter(t, repo, ServiceConfig{})

	res := doJSON(t, router, http.MethodPost, "/invoices", `{"comp_code":"goog","amt":400}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var created struct {
		Invoice Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))

	res = doJSON(t, router, http.MethodPut, fmt.Sprintf("/invoices/%d", created.Invoice.ID), `{"amt":123,"paid":true}`)
	require.Equal(t, http.StatusCreated, res.Code)

	var updated struct {
		Invoice Invoice `json:"invoice"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &updated))
	require.Equal(t, float64(123), updated.Invoice.Amt)
	require.True(t, updated.Invoice.Paid)
	require.NotNil(t, updated.Invoice.PaidDate)
}

func TestUpdateMissingInvoiceYields404(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(), ServiceConfig{})

	res := doJSON(t, router, http.MethodPut, "/invoices/42", `{"amt":10,"paid":false}`)
	require.Equal(t, http.StatusNotFound, res.Code)
}

func TestDeleteIsBlindSuccess(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(), ServiceConfig{})

	res := doJSON(t, router, http.MethodDelete, "/invoices/42", "")
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, `{"status":"Deleted"}`, res.Body.String())
}

func TestListEmptyYields404(t *testing.T) {
	router := newTestRouter(t, newMemoryRepo(), ServiceConfig{EmptyListNotFound: true})

	res := doJSON(t, router, http.MethodGet, "/invoices", "")
	require.Equal(t, http.StatusNotFound, res.Code)
}
