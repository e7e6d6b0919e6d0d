package eligibility

import (
	"context"
	"fmt"
	"time"

	"simpan-pinjam-backend/internal/domain/loan"
	"simpan-pinjam-backend/internal/domain/member"
)

// Role-based loan ceilings. securityGuard and partTime are self-capped by
// their own savings up to the shared cap.
const (
	limitSenior     = 40_000 // driver, assistant
	limitHousehold  = 19_000 // housekeeper, groundsKeeper
	limitSelfCapped = 12_000 // securityGuard, partTime: min(contributions, cap)

	// securityGuard needs this much tenure, in whole calendar months.
	securityGuardMinTenureMonths = 3

	DefaultCashOutInterestRate = 0.13
)

type Usecase struct {
	members member.Repository
	loans   loan.Repository
}

func NewUsecase(members member.Repository, loans loan.Repository) *Usecase {
	return &Usecase{members: members, loans: loans}
}

type CapacityDTO struct {
	MemberID      string  `json:"member_id"`
	Limit         float64 `json:"limit"`
	Eligible      bool    `json:"eligible"`
	MaxBorrowable float64 `json:"max_borrowable"`
}

// LoanLimit is the fixed role table.
func LoanLimit(m *member.Member) float64 {
	switch m.Role {
	case member.RoleDriver, member.RoleAssistant:
		return limitSenior
	case member.RoleHousekeeper, member.RoleGroundsKeeper:
		return limitHousehold
	case member.RoleSecurityGuard, member.RolePartTime:
		if m.TotalContributions < limitSelfCapped {
			return m.TotalContributions
		}
		return limitSelfCapped
	}
	return 0
}

// MonthsAsMember counts whole calendar months between the join date and
// now; 2 months 29 days is still 2.
func MonthsAsMember(m *member.Member, now time.Time) int {
	if m.JoinDate == nil {
		return 0
	}
	return wholeMonthsBetween(*m.JoinDate, now)
}

func wholeMonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (int(to.Year())-int(from.Year()))*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// IsEligibleForLoan: must be active; securityGuard additionally needs three
// whole months of tenure.
func IsEligibleForLoan(m *member.Member, now time.Time) bool {
	if m.Status != member.StatusActive {
		return false
	}
	if m.Role == member.RoleSecurityGuard && MonthsAsMember(m, now) < securityGuardMinTenureMonths {
		return false
	}
	return true
}

// CalculateCashOutAmount is the exit payout: principal plus the fixed rate.
func CalculateCashOutAmount(m *member.Member, interestRate float64) float64 {
	return m.TotalContributions * (1 + interestRate)
}

// MaximumLoanAmount is the role limit minus current active exposure,
// floored at zero; zero when the member is not eligible at all.
func (u *Usecase) MaximumLoanAmount(ctx context.Context, m *member.Member) (float64, error) {
	if !IsEligibleForLoan(m, time.Now().UTC()) {
		return 0, nil
	}
	outstanding, err := u.loans.SumActiveBalancesByMember(ctx, m.MemberID)
	if err != nil {
		return 0, fmt.Errorf("sum member active balances: %w", err)
	}
	if remaining := LoanLimit(m) - outstanding; remaining > 0 {
		return remaining, nil
	}
	return 0, nil
}

func (u *Usecase) GetMemberLoanCapacity(ctx context.Context, memberID string) (*CapacityDTO, error) {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	maxBorrowable, err := u.MaximumLoanAmount(ctx, m)
	if err != nil {
		return nil, err
	}
	return &CapacityDTO{
		MemberID:      m.MemberID,
		Limit:         LoanLimit(m),
		Eligible:      IsEligibleForLoan(m, time.Now().UTC()),
		MaxBorrowable: maxBorrowable,
	}, nil
}
