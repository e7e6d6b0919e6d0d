// Package repomock provides function-field test doubles for the domain
// repositories and the unit of work. Unset fields fall back to benign
// zero-value behavior so each test only wires what it asserts on.
package repomock

import (
	"context"
	"errors"

	"simpan-pinjam-backend/internal/domain/fund"
	"simpan-pinjam-backend/internal/domain/loan"
	"simpan-pinjam-backend/internal/domain/member"
	"simpan-pinjam-backend/internal/domain/payment"
	"simpan-pinjam-backend/internal/domain/transaction"
	"simpan-pinjam-backend/internal/domain/uow"
)

var errNotImplemented = errors.New("not implemented")

type MemberRepo struct {
	CreateFn                 func(ctx context.Context, m *member.Member) error
	SaveFn                   func(ctx context.Context, m *member.Member) error
	GetByMemberIDFn          func(ctx context.Context, memberID string) (*member.Member, error)
	GetByMemberIDForUpdateFn func(ctx context.Context, memberID string) (*member.Member, error)
	SumContributionsFn       func(ctx context.Context) (float64, error)
	SumCashOutsFn            func(ctx context.Context) (float64, error)
}

func (r *MemberRepo) Create(ctx context.Context, m *member.Member) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, m)
	}
	return nil
}
func (r *MemberRepo) Save(ctx context.Context, m *member.Member) error {
	if r.SaveFn != nil {
		return r.SaveFn(ctx, m)
	}
	return nil
}
func (r *MemberRepo) GetByMemberID(ctx context.Context, memberID string) (*member.Member, error) {
	if r.GetByMemberIDFn != nil {
		return r.GetByMemberIDFn(ctx, memberID)
	}
	return nil, errNotImplemented
}
func (r *MemberRepo) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*member.Member, error) {
	if r.GetByMemberIDForUpdateFn != nil {
		return r.GetByMemberIDForUpdateFn(ctx, memberID)
	}
	return r.GetByMemberID(ctx, memberID)
}
func (r *MemberRepo) SumContributions(ctx context.Context) (float64, error) {
	if r.SumContributionsFn != nil {
		return r.SumContributionsFn(ctx)
	}
	return 0, nil
}
func (r *MemberRepo) SumCashOuts(ctx context.Context) (float64, error) {
	if r.SumCashOutsFn != nil {
		return r.SumCashOutsFn(ctx)
	}
	return 0, nil
}

type LoanRepo struct {
	CreateFn                    func(ctx context.Context, l *loan.Loan) error
	SaveFn                      func(ctx context.Context, l *loan.Loan) error
	GetByLoanIDFn               func(ctx context.Context, loanID string) (*loan.Loan, error)
	GetByLoanIDForUpdateFn      func(ctx context.Context, loanID string) (*loan.Loan, error)
	ListActiveByMemberIDFn      func(ctx context.Context, memberID string) ([]loan.Loan, error)
	SumActiveBalancesFn         func(ctx context.Context) (float64, error)
	SumActiveBalancesByMemberFn func(ctx context.Context, memberID string) (float64, error)
}

func (r *LoanRepo) Create(ctx context.Context, l *loan.Loan) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, l)
	}
	return nil
}
func (r *LoanRepo) Save(ctx context.Context, l *loan.Loan) error {
	if r.SaveFn != nil {
		return r.SaveFn(ctx, l)
	}
	return nil
}
func (r *LoanRepo) GetByLoanID(ctx context.Context, loanID string) (*loan.Loan, error) {
	if r.GetByLoanIDFn != nil {
		return r.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errNotImplemented
}
func (r *LoanRepo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loan.Loan, error) {
	if r.GetByLoanIDForUpdateFn != nil {
		return r.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return r.GetByLoanID(ctx, loanID)
}
func (r *LoanRepo) ListActiveByMemberID(ctx context.Context, memberID string) ([]loan.Loan, error) {
	if r.ListActiveByMemberIDFn != nil {
		return r.ListActiveByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}
func (r *LoanRepo) SumActiveBalances(ctx context.Context) (float64, error) {
	if r.SumActiveBalancesFn != nil {
		return r.SumActiveBalancesFn(ctx)
	}
	return 0, nil
}
func (r *LoanRepo) SumActiveBalancesByMember(ctx context.Context, memberID string) (float64, error) {
	if r.SumActiveBalancesByMemberFn != nil {
		return r.SumActiveBalancesByMemberFn(ctx, memberID)
	}
	return 0, nil
}

type TransactionRepo struct {
	CreateFn         func(ctx context.Context, tx *transaction.Transaction) error
	ListByMemberIDFn func(ctx context.Context, memberID string, limit int) ([]transaction.Transaction, error)
	ListRecentFn     func(ctx context.Context, limit int) ([]transaction.Transaction, error)
}

func (r *TransactionRepo) Create(ctx context.Context, tx *transaction.Transaction) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, tx)
	}
	return nil
}
func (r *TransactionRepo) ListByMemberID(ctx context.Context, memberID string, limit int) ([]transaction.Transaction, error) {
	if r.ListByMemberIDFn != nil {
		return r.ListByMemberIDFn(ctx, memberID, limit)
	}
	return nil, nil
}
func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]transaction.Transaction, error) {
	if r.ListRecentFn != nil {
		return r.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

type PaymentRepo struct {
	CreateFn         func(ctx context.Context, p *payment.Payment) error
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*payment.Payment, error)
	ListByMemberIDFn func(ctx context.Context, memberID string, limit int) ([]payment.Payment, error)
}

func (r *PaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, p)
	}
	return nil
}
func (r *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	if r.GetByPaymentIDFn != nil {
		return r.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, errNotImplemented
}
func (r *PaymentRepo) ListByMemberID(ctx context.Context, memberID string, limit int) ([]payment.Payment, error) {
	if r.ListByMemberIDFn != nil {
		return r.ListByMemberIDFn(ctx, memberID, limit)
	}
	return nil, nil
}

type FundRepo struct {
	Settings *fund.Settings
	SaveFn   func(ctx context.Context, s *fund.Settings) error
}

func (r *FundRepo) FetchOrCreate(ctx context.Context) (*fund.Settings, error) {
	if r.Settings == nil {
		r.Settings = fund.NewDefaultSettings()
	}
	return r.Settings, nil
}
func (r *FundRepo) FetchForUpdate(ctx context.Context) (*fund.Settings, error) {
	return r.FetchOrCreate(ctx)
}
func (r *FundRepo) Save(ctx context.Context, s *fund.Settings) error {
	r.Settings = s
	if r.SaveFn != nil {
		return r.SaveFn(ctx, s)
	}
	return nil
}

// UoW dispatches callbacks straight to the bundled repos; no transaction
// semantics, the tests only care about the flow.
type UoW struct{ Repos uow.Repos }

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(u.Repos)
}
func (u *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	l, err := u.Repos.Loans.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		return err
	}
	return fn(u.Repos, l)
}
func (u *UoW) WithinMemberTx(ctx context.Context, memberID string, fn func(r uow.Repos, m *member.Member) error) error {
	m, err := u.Repos.Members.GetByMemberIDForUpdate(ctx, memberID)
	if err != nil {
		return err
	}
	return fn(u.Repos, m)
}
