package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/loanreq"
)

type createLoanRequestReq struct {
	BorrowerID      uint64  `json:"borrower_id"       validate:"required"`
	SuretyID        uint64  `json:"surety_id"         validate:"required"`
	Amount          float64 `json:"amount"            validate:"required,gt=0,dec2"`
	RequesterUserID string  `json:"requester_user_id" validate:"uuidopt"`
}

func (h *Handler) CreateLoanRequest(c echo.Context) error {
	var req createLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.Loans.CreateRequest(c.Request().Context(), loanreq.CreateRequestInput{
		BorrowerID:      req.BorrowerID,
		SuretyID:        req.SuretyID,
		Amount:          req.Amount,
		RequesterUserID: req.RequesterUserID,
		Actor:           actorID(c),
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *Handler) ApproveLoanRequest(c echo.Context) error {
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	dto, err := h.Loans.Approve(c.Request().Context(), requestID, actorID(c))
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type denyLoanRequestReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *Handler) DenyLoanRequest(c echo.Context) error {
	requestID := c.Param("request_id")
	var req denyLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.Loans.Deny(c.Request().Context(), requestID, req.Reason, actorID(c))
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) GetLoan(c echo.Context) error {
	dto, err := h.Loans.GetLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *Handler) GetDelinquency(c echo.Context) error {
	days, err := h.Loans.DaysPastDue(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"days_past_due": days})
}
