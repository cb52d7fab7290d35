package companies

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
)

// validate applies presence checks only. Shape validation beyond presence
// is deliberately out of scope.
func (h *Handler) validate(req companyRequest) error {
	if err := h.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return httpx.NewError(http.StatusBadRequest, "%s is required", strings.ToLower(fieldErrs[0].Field()))
		}
		return httpx.NewError(http.StatusBadRequest, "invalid request body")
	}
	if h.requireCode && strings.TrimSpace(req.Code) == "" {
		return httpx.NewError(http.StatusBadRequest, "code is required")
	}
	return nil
}
