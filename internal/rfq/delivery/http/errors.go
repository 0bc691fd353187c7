package http

import (
	"errors"
	"net/http"

	"rfq-agent/internal/rfq"
	pkgErrors "rfq-agent/pkg/errors"
)

const msgValidationError = "request body does not match schema"

var (
	errQueryRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "query is required")
	errProcessFailed = pkgErrors.NewHTTPError(http.StatusInternalServerError, "failed to process request")
	errInvalidBody   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is reported as a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, rfq.ErrInvalidQuery):
		return errQueryRequired
	default:
		return errProcessFailed
	}
}
