package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/fault"
)

// writeFault maps the engine's typed errors onto HTTP responses, carrying the
// structured detail (missing roles, per-member violations) through to the
// caller so the dashboard can render a specific message.
func writeFault(c echo.Context, err error) error {
	var (
		ve *fault.ValidationError
		se *fault.StateError
		ae *fault.AuthorizationError
		be *fault.BusinessRuleError
		nf *fault.NotFoundError
		st *fault.StoreError
	)
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ve.Error()})
	case errors.As(err, &se):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: se.Error()})
	case errors.As(err, &ae):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: ae.Error(), Missing: ae.MissingRoles})
	case errors.As(err, &be):
		resp := ErrorResponse{Error: be.Error()}
		if len(be.Violations) > 0 {
			resp.Violations = be.Violations
		}
		return c.JSON(http.StatusUnprocessableEntity, resp)
	case errors.As(err, &nf):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Error()})
	case errors.As(err, &st):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// actorID pulls the authenticated actor identity the edge attaches.
func actorID(c echo.Context) string {
	return c.Request().Header.Get("X-Actor-Id")
}
