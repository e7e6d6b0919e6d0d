package http

import (
	"net/http"

	"simpan-pinjam-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	MemberID string  `json:"member_id" validate:"required,hex32"`
	LoanID   string  `json:"loan_id" validate:"omitempty,hex32"`
	Amount   float64 `json:"amount" validate:"required,gt=0,dec2"`
	Type     string  `json:"type" validate:"required"`
	Method   string  `json:"method" validate:"required,paymethod"`
}

func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Record(c.Request().Context(), payment.RecordPaymentInput(req))
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}
