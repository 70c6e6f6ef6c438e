package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/payment"
)

type recordPaymentReq struct {
	LoanID string  `json:"loan_id" validate:"required,len=32"`
	Amount float64 `json:"amount"  validate:"required,gt=0,dec2"`
	// Canonical date `YYYY-MM-DD`; defaults to today when omitted.
	PaidOn string `json:"paid_on" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) RecordPayment(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	var paidOn time.Time
	if req.PaidOn != "" {
		paidOn, _ = time.Parse("2006-01-02", req.PaidOn)
	}
	dto, err := h.Payments.RecordPending(c.Request().Context(), payment.RecordInput{
		LoanID:     req.LoanID,
		Amount:     req.Amount,
		PaidOn:     paidOn,
		RecordedBy: actorID(c),
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Handler) ConfirmPayment(c echo.Context) error {
	dto, err := h.Payments.Confirm(c.Request().Context(), c.Param("payment_id"), actorID(c))
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectPaymentReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *Handler) RejectPayment(c echo.Context) error {
	var req rejectPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.Payments.Reject(c.Request().Context(), c.Param("payment_id"), actorID(c), req.Reason)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
