package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/accrual"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/loanreq"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/payment"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/payout"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/signing"
)

// Handler bundles the engine's caller-facing operations.
type Handler struct {
	Loans    *loanreq.Usecase
	Payments *payment.Usecase
	Payouts  *payout.Usecase
	Signing  *signing.Usecase
	Accrual  *accrual.Usecase
}

func NewHandler(loans *loanreq.Usecase, payments *payment.Usecase, payouts *payout.Usecase, signing *signing.Usecase, accrual *accrual.Usecase) *Handler {
	return &Handler{Loans: loans, Payments: payments, Payouts: payouts, Signing: signing, Accrual: accrual}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Register wires every engine route onto e.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)

	e.POST("/loans", h.CreateLoanRequest)
	e.GET("/loans/:loan_id", h.GetLoan)
	e.GET("/loans/:loan_id/delinquency", h.GetDelinquency)
	e.POST("/loans/:request_id/approve", h.ApproveLoanRequest)
	e.POST("/loans/:request_id/deny", h.DenyLoanRequest)

	e.POST("/signatures", h.Sign)
	e.GET("/signatures/:entity_type/:entity_id/missing", h.MissingRoles)

	e.POST("/payments", h.RecordPayment)
	e.POST("/payments/:payment_id/confirm", h.ConfirmPayment)
	e.POST("/payments/:payment_id/reject", h.RejectPayment)

	e.POST("/interest/accruals", h.AccrueInterest)

	e.POST("/payouts", h.ExecutePayout)
	e.GET("/payouts/next", h.NextBeneficiary)
}
