package http

import (
	"errors"
	"net/http"
	"strings"

	fundDomain "simpan-pinjam-backend/internal/domain/fund"
	loanDomain "simpan-pinjam-backend/internal/domain/loan"
	memberDomain "simpan-pinjam-backend/internal/domain/member"
	paymentDomain "simpan-pinjam-backend/internal/domain/payment"
	loanUC "simpan-pinjam-backend/internal/usecase/loan"

	"gorm.io/gorm"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// errorStatus maps domain errors onto HTTP status codes; anything
// unrecognized is a 500 so repository failures are never dressed up as
// client mistakes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, memberDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, paymentDomain.ErrMixedAllocationUndefined):
		return http.StatusUnprocessableEntity
	case errors.Is(err, fundDomain.ErrInsufficientInvestment),
		errors.Is(err, loanDomain.ErrOverpayment),
		errors.Is(err, loanDomain.ErrNotActive),
		errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, loanUC.ErrExceedsCapacity),
		errors.Is(err, memberDomain.ErrNotActive),
		errors.Is(err, memberDomain.ErrHasActiveLoan),
		errors.Is(err, memberDomain.ErrAlreadyCashedOut):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
