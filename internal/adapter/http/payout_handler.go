package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ExecutePayout(c echo.Context) error {
	dto, err := h.Payouts.Execute(c.Request().Context(), actorID(c))
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Handler) NextBeneficiary(c echo.Context) error {
	dto, err := h.Payouts.NextBeneficiary(c.Request().Context())
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) AccrueInterest(c echo.Context) error {
	res, err := h.Accrual.AccrueMonthly(c.Request().Context(), actorID(c))
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
