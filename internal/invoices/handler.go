package invoices

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

// Handler manages the /invoices endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers invoice routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

type createInvoiceRequest struct {
	CompCode string   `json:"comp_code" validate:"required"`
	Amt      *float64 `json:"amt" validate:"required"`
}

type updateInvoiceRequest struct {
	Amt  *float64 `json:"amt" validate:"required"`
	Paid bool     `json:"paid"`
}

// invoiceID reads the path parameter. A non-numeric value can never match
// a row, so it reports the same lookup miss a missing id does.
func invoiceID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, httpx.NotFound("No invoice was found with id %s", raw)
	}
	return id, nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if invoices == nil {
		invoices = []Invoice{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoices": invoices})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	invoice, company, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"invoice": invoice, "company": company})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, h.logger, httpx.NewError(http.StatusBadRequest, "invalid JSON body"))
		return
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	invoice, err := h.service.Create(r.Context(), req.CompCode, *req.Amt)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"invoice": invoice})
}

// Update performs a full replace of amt and paid. The 201 status mirrors
// the legacy contract clients already depend on.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	var req updateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, h.logger, httpx.NewError(http.StatusBadRequest, "invalid JSON body"))
		return
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	invoice, err := h.service.Update(r.Context(), id, *req.Amt, req.Paid)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"invoice": invoice})
}

// Delete reports success whether or not a row was removed. The affected
// count is checked so silent no-ops at least leave a trace in the logs.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	rows, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if rows == 0 && h.logger != nil {
		h.logger.Debug("delete invoice matched no rows", slog.Int64("id", id))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"status": "Deleted"})
}

// validate applies presence checks only.
func (h *Handler) validate(req any) error {
	if err := h.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return httpx.NewError(http.StatusBadRequest, "%s is required", fieldName(fieldErrs[0]))
		}
		return httpx.NewError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "CompCode":
		return "comp_code"
	default:
		return strings.ToLower(fe.Field())
	}
}
