package http

import (
	"net/http"

	"simpan-pinjam-backend/internal/usecase/ledger"

	"github.com/labstack/echo/v4"
)

type FundHandler struct{ uc *ledger.Usecase }

func NewFundHandler(uc *ledger.Usecase) *FundHandler { return &FundHandler{uc: uc} }

func (h *FundHandler) GetState(c echo.Context) error {
	dto, err := h.uc.GetFundState(c.Request().Context())
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: "fund state unavailable"})
	}
	return c.JSON(http.StatusOK, dto)
}

type investmentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *FundHandler) RecordInvestment(c echo.Context) error {
	var req investmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.RecordInvestment(c.Request().Context(), req.Amount)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FundHandler) RecordWithdrawal(c echo.Context) error {
	var req investmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.RecordInvestmentWithdrawal(c.Request().Context(), req.Amount)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FundHandler) ApplyInterest(c echo.Context) error {
	dto, err := h.uc.ApplyAnnualInterest(c.Request().Context())
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
