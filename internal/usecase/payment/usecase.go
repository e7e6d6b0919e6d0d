package payment

import (
	"context"
	"errors"
	"math"
	"time"

	domainLoan "simpan-pinjam-backend/internal/domain/loan"
	domainMember "simpan-pinjam-backend/internal/domain/member"
	domain "simpan-pinjam-backend/internal/domain/payment"
	"simpan-pinjam-backend/internal/domain/transaction"
	"simpan-pinjam-backend/internal/domain/uow"
	"simpan-pinjam-backend/internal/usecase/ledger"
	"simpan-pinjam-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func roundCents(v float64) float64 { return math.Round(v*100) / 100 }

type RecordPaymentInput struct {
	MemberID string  `json:"member_id"`
	LoanID   string  `json:"loan_id,omitempty"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Method   string  `json:"method"`
}

type PaymentDTO struct {
	PaymentID   string    `json:"payment_id"`
	MemberID    string    `json:"member_id"`
	LoanID      string    `json:"loan_id,omitempty"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Method      string    `json:"method"`
	PaymentDate time.Time `json:"payment_date"`
	LoanBalance *float64  `json:"loan_balance,omitempty"`
	LoanStatus  string    `json:"loan_status,omitempty"`
}

// Record routes a payment through the allocator and applies its ledger
// effects in one transaction. mixed payments are rejected up front: no
// split rule is defined for them, and guessing one would corrupt the
// ledger silently.
func (u *Usecase) Record(ctx context.Context, in RecordPaymentInput) (*PaymentDTO, error) {
	if in.MemberID == "" || len(in.MemberID) != 32 || in.Amount <= 0 {
		return nil, errors.New("invalid input")
	}
	method := domain.Method(in.Method)
	if !method.Valid() {
		return nil, errors.New("invalid payment method")
	}

	alloc, err := domain.Allocate(domain.Type(in.Type), in.Amount)
	if err != nil {
		return nil, err
	}

	switch {
	case alloc.ToLoan > 0:
		if in.LoanID == "" || len(in.LoanID) != 32 {
			return nil, errors.New("loan_id required for repayment")
		}
		return u.recordRepayment(ctx, in, method, alloc.ToLoan)
	default:
		return u.recordContribution(ctx, in, method, alloc.ToContribution)
	}
}

func (u *Usecase) recordRepayment(ctx context.Context, in RecordPaymentInput, method domain.Method, amount float64) (*PaymentDTO, error) {
	var dto *PaymentDTO

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusActive {
			return domainLoan.ErrNotActive
		}
		if l.MemberID != in.MemberID {
			return domainLoan.ErrNotFound
		}
		// Installments like amount/months produce repeating decimals, so
		// balances are settled in cents: compare and store rounded values
		// or an exact payoff leaves a residue no valid payment can clear.
		outstanding := roundCents(l.Balance)
		if amount > outstanding {
			return domainLoan.ErrOverpayment
		}

		balanceBefore, err := ledger.FundBalanceIn(ctx, r)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		l.Balance = roundCents(outstanding - amount)
		if l.Balance == 0 {
			l.Status = domainLoan.StatusCompleted
			l.StatusUpdatedAt = now
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		p := &domain.Payment{
			PaymentID:   id.NewID32(),
			MemberID:    in.MemberID,
			LoanID:      l.LoanID,
			Amount:      amount,
			PaymentDate: now,
			Type:        domain.TypeLoanRepayment,
			Method:      method,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		// Repayment shrinks active loan exposure, so the fund balance rises.
		entry := &transaction.Transaction{
			TransactionID:   id.NewID32(),
			MemberID:        in.MemberID,
			Type:            transaction.TypeLoanRepayment,
			Amount:          amount,
			Balance:         balanceBefore + amount,
			TransactionDate: now,
		}
		if err := r.Transactions.Create(ctx, entry); err != nil {
			return err
		}

		balance := l.Balance
		dto = &PaymentDTO{
			PaymentID:   p.PaymentID,
			MemberID:    p.MemberID,
			LoanID:      p.LoanID,
			Amount:      p.Amount,
			Type:        string(p.Type),
			Method:      string(p.Method),
			PaymentDate: p.PaymentDate,
			LoanBalance: &balance,
			LoanStatus:  string(l.Status),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) recordContribution(ctx context.Context, in RecordPaymentInput, method domain.Method, amount float64) (*PaymentDTO, error) {
	var dto *PaymentDTO

	err := u.uow.WithinMemberTx(ctx, in.MemberID, func(r uow.Repos, m *domainMember.Member) error {
		if m.Status != domainMember.StatusActive {
			return domainMember.ErrNotActive
		}

		balanceBefore, err := ledger.FundBalanceIn(ctx, r)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		m.TotalContributions += amount
		if err := r.Members.Save(ctx, m); err != nil {
			return err
		}

		p := &domain.Payment{
			PaymentID:   id.NewID32(),
			MemberID:    m.MemberID,
			Amount:      amount,
			PaymentDate: now,
			Type:        domain.TypeContribution,
			Method:      method,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		entry := &transaction.Transaction{
			TransactionID:   id.NewID32(),
			MemberID:        m.MemberID,
			Type:            transaction.TypeContribution,
			Amount:          amount,
			Balance:         balanceBefore + amount,
			TransactionDate: now,
		}
		if err := r.Transactions.Create(ctx, entry); err != nil {
			return err
		}

		dto = &PaymentDTO{
			PaymentID:   p.PaymentID,
			MemberID:    p.MemberID,
			Amount:      p.Amount,
			Type:        string(p.Type),
			Method:      string(p.Method),
			PaymentDate: p.PaymentDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
