package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/signing"
)

type signReq struct {
	EntityType     string `json:"entity_type"      validate:"required,oneof=loan payout"`
	EntityID       string `json:"entity_id"        validate:"required"`
	Role           string `json:"role"             validate:"required"`
	SignerName     string `json:"signer_name"      validate:"required"`
	SignerMemberID uint64 `json:"signer_member_id" validate:"required"`
}

func (h *Handler) Sign(c echo.Context) error {
	var req signReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.Signing.Sign(c.Request().Context(), signing.SignInput{
		EntityType:     req.EntityType,
		EntityID:       req.EntityID,
		Role:           req.Role,
		SignerName:     req.SignerName,
		SignerMemberID: req.SignerMemberID,
		Actor:          actorID(c),
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) MissingRoles(c echo.Context) error {
	missing, err := h.Signing.MissingRoles(c.Request().Context(), c.Param("entity_type"), c.Param("entity_id"))
	if err != nil {
		return writeFault(c, err)
	}
	if missing == nil {
		missing = []string{}
	}
	return c.JSON(http.StatusOK, map[string]any{"missing_roles": missing})
}
