package http

import (
	"net/http"

	"simpan-pinjam-backend/internal/usecase/eligibility"
	"simpan-pinjam-backend/internal/usecase/membership"
	"simpan-pinjam-backend/internal/usecase/statement"

	"github.com/labstack/echo/v4"
)

type MemberHandler struct {
	members     *membership.Usecase
	eligibility *eligibility.Usecase
	statements  *statement.Usecase
}

func NewMemberHandler(m *membership.Usecase, e *eligibility.Usecase, s *statement.Usecase) *MemberHandler {
	return &MemberHandler{members: m, eligibility: e, statements: s}
}

type enrollReq struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role" validate:"required,memberrole"`
}

func (h *MemberHandler) Enroll(c echo.Context) error {
	var req enrollReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.members.Enroll(c.Request().Context(), membership.EnrollInput(req))
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MemberHandler) Get(c echo.Context) error {
	dto, err := h.members.Get(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) GetCapacity(c echo.Context) error {
	dto, err := h.eligibility.GetMemberLoanCapacity(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) CashOut(c echo.Context) error {
	dto, err := h.members.CashOut(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) ListTransactions(c echo.Context) error {
	entries, err := h.statements.ListByMember(c.Request().Context(), c.Param("member_id"), 100)
	if err != nil {
		return c.JSON(errorStatus(err), ErrorResponse{Error: "transactions unavailable"})
	}
	return c.JSON(http.StatusOK, entries)
}
