package companies

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

// Handler manages the /companies endpoints.
type Handler struct {
	logger      *slog.Logger
	service     *Service
	validator   *validator.Validate
	requireCode bool
}

// NewHandler builds a Handler instance. requireCode should be true in
// explicit mode, where clients must supply the company code themselves.
func NewHandler(logger *slog.Logger, service *Service, requireCode bool) *Handler {
	return &Handler{
		logger:      logger,
		service:     service,
		validator:   validator.New(),
		requireCode: requireCode,
	}
}

// MountRoutes registers company routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{code}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{code}", h.Update)
	r.Delete("/{code}", h.Delete)
}

type companyRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if companies == nil {
		companies = []Company{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"companies": companies})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	company, invoices, err := h.service.Get(r.Context(), code)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if invoices == nil {
		invoices = []Invoice{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"company": company, "invoices": invoices})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, h.logger, httpx.NewError(http.StatusBadRequest, "invalid JSON body"))
		return
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), Company{Code: req.Code, Name: req.Name, Description: req.Description})
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"company": created})
}

// Update performs a full replace. The 201 status mirrors the legacy
// contract clients already depend on.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	var req companyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, h.logger, httpx.NewError(http.StatusBadRequest, "invalid JSON body"))
		return
	}
	if err := h.validate(req); err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}

	updated, err := h.service.Update(r.Context(), code, Company{Code: req.Code, Name: req.Name, Description: req.Description})
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"company": updated})
}

// Delete reports success whether or not a row was removed. The affected
// count is checked so silent no-ops at least leave a trace in the logs.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	rows, err := h.service.Delete(r.Context(), code)
	if err != nil {
		httpx.RespondError(w, h.logger, err)
		return
	}
	if rows == 0 && h.logger != nil {
		h.logger.Debug("delete company matched no rows", slog.String("code", code))
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"status": "Deleted"})
}
