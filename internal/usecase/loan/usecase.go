package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "simpan-pinjam-backend/internal/domain/loan"
	domainMember "simpan-pinjam-backend/internal/domain/member"
	"simpan-pinjam-backend/internal/domain/transaction"
	"simpan-pinjam-backend/internal/domain/uow"
	"simpan-pinjam-backend/internal/usecase/eligibility"
	"simpan-pinjam-backend/internal/usecase/ledger"
	"simpan-pinjam-backend/pkg/id"
)

var ErrExceedsCapacity = errors.New("requested amount exceeds borrowing capacity")

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

// Disburse checks the member's borrowing capacity and, in one transaction,
// creates the loan and its loanDisbursement ledger entry.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*LoanDTO, error) {
	if in.MemberID == "" || len(in.MemberID) != 32 || in.Amount <= 0 || in.RepaymentMonths <= 0 {
		return nil, errors.New("invalid input")
	}

	var dto *LoanDTO

	err := u.uow.WithinMemberTx(ctx, in.MemberID, func(r uow.Repos, m *domainMember.Member) error {
		now := time.Now().UTC()
		if !eligibility.IsEligibleForLoan(m, now) {
			return domainMember.ErrNotActive
		}
		outstanding, err := r.Loans.SumActiveBalancesByMember(ctx, m.MemberID)
		if err != nil {
			return fmt.Errorf("sum member active balances: %w", err)
		}
		if capacity := eligibility.LoanLimit(m) - outstanding; in.Amount > capacity {
			return ErrExceedsCapacity
		}

		balanceBefore, err := ledger.FundBalanceIn(ctx, r)
		if err != nil {
			return err
		}

		issueDate := now
		dueDate := issueDate.AddDate(0, in.RepaymentMonths, 0)
		l := &domain.Loan{
			LoanID:          id.NewID32(),
			MemberID:        m.MemberID,
			Amount:          in.Amount,
			Balance:         in.Amount,
			MonthlyPayment:  in.Amount / float64(in.RepaymentMonths),
			RepaymentMonths: in.RepaymentMonths,
			IssueDate:       &issueDate,
			DueDate:         &dueDate,
			Status:          domain.StatusActive,
			StatusUpdatedAt: now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		entry := &transaction.Transaction{
			TransactionID:   id.NewID32(),
			MemberID:        m.MemberID,
			Type:            transaction.TypeLoanDisbursement,
			Amount:          in.Amount,
			Balance:         balanceBefore - in.Amount,
			TransactionDate: now,
		}
		if err := r.Transactions.Create(ctx, entry); err != nil {
			return err
		}

		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// MarkDefaulted is an explicit operator action; active is the only state it
// can leave, and defaulted is terminal.
func (u *Usecase) MarkDefaulted(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusActive {
			return domain.ErrInvalidTransition
		}
		l.Status = domain.StatusDefaulted
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

// GetSchedule derives the time-based state of a loan.
func (u *Usecase) GetSchedule(ctx context.Context, loanID string) (*ScheduleDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return &ScheduleDTO{
		LoanID:            l.LoanID,
		Overdue:           IsOverdue(l, time.Now().UTC()),
		RemainingPayments: RemainingPayments(l),
		NextDueDate:       NextPaymentDue(l),
		CompletionPct:     CompletionPercentage(l),
	}, nil
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		MemberID:        l.MemberID,
		Amount:          l.Amount,
		Balance:         l.Balance,
		MonthlyPayment:  l.MonthlyPayment,
		RepaymentMonths: l.RepaymentMonths,
		IssueDate:       l.IssueDate,
		DueDate:         l.DueDate,
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
	}
}
