package uow

import (
	"context"

	"simpan-pinjam-backend/internal/domain/fund"
	"simpan-pinjam-backend/internal/domain/loan"
	"simpan-pinjam-backend/internal/domain/member"
	"simpan-pinjam-backend/internal/domain/payment"
	"simpan-pinjam-backend/internal/domain/transaction"
)

type Repos struct {
	Members      member.Repository
	Loans        loan.Repository
	Transactions transaction.Repository
	Payments     payment.Repository
	Fund         fund.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
	// convenience: lock member first (cash-out, contribution flows)
	WithinMemberTx(ctx context.Context, memberID string, fn func(r Repos, m *member.Member) error) error
}
