package loan

import (
	"math"
	"time"

	domain "simpan-pinjam-backend/internal/domain/loan"
)

// Schedule derivations are pure functions over a loaded loan record; they
// report state but never transition it.

func CalculateMonthlyPayment(l *domain.Loan) float64 {
	if l.RepaymentMonths <= 0 {
		return 0
	}
	return l.Amount / float64(l.RepaymentMonths)
}

func IsOverdue(l *domain.Loan, now time.Time) bool {
	return l.Status == domain.StatusActive && l.DueDate != nil && now.After(*l.DueDate)
}

// RemainingPayments is ceil(balance / monthlyPayment), 0 when the payment
// is not positive (degenerate amortization, reported as done).
func RemainingPayments(l *domain.Loan) int {
	if l.MonthlyPayment <= 0 {
		return 0
	}
	return int(math.Ceil(l.Balance / l.MonthlyPayment))
}

// NextPaymentDue is issueDate + (paidMonths+1) months, where paidMonths is
// how many full installments the repaid principal covers. Only defined for
// active loans with a known issue date.
func NextPaymentDue(l *domain.Loan) *time.Time {
	if l.Status != domain.StatusActive || l.IssueDate == nil || l.MonthlyPayment <= 0 {
		return nil
	}
	paidMonths := int(math.Floor((l.Amount - l.Balance) / l.MonthlyPayment))
	due := l.IssueDate.AddDate(0, paidMonths+1, 0)
	return &due
}

func CompletionPercentage(l *domain.Loan) float64 {
	if l.Amount <= 0 {
		return 0
	}
	return (l.Amount - l.Balance) / l.Amount * 100
}
