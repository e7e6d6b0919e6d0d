package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "simpan-pinjam-backend/internal/adapter/http"
	"simpan-pinjam-backend/internal/adapter/middleware"
	"simpan-pinjam-backend/internal/adapter/repository/mysql"
	"simpan-pinjam-backend/internal/config"
	"simpan-pinjam-backend/internal/infrastructure/cache"
	"simpan-pinjam-backend/internal/infrastructure/db"
	"simpan-pinjam-backend/internal/usecase/eligibility"
	"simpan-pinjam-backend/internal/usecase/ledger"
	loanUC "simpan-pinjam-backend/internal/usecase/loan"
	"simpan-pinjam-backend/internal/usecase/membership"
	paymentUC "simpan-pinjam-backend/internal/usecase/payment"
	"simpan-pinjam-backend/internal/usecase/statement"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("open redis: %v", err)
	}

	members := mysql.NewMemberRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	transactions := mysql.NewTransactionRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	fundRepo := mysql.NewFundRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	ledgerUC := ledger.NewUsecase(members, loans, fundRepo, uow)
	eligibilityUC := eligibility.NewUsecase(members, loans)
	membershipUC := membership.NewUsecase(members, uow)
	loansUC := loanUC.NewUsecase(loans, uow)
	paymentsUC := paymentUC.NewUsecase(payments, uow)
	statementUC := statement.NewUsecase(transactions)

	h := httpadp.NewHandler()
	fundH := httpadp.NewFundHandler(ledgerUC)
	memberH := httpadp.NewMemberHandler(membershipUC, eligibilityUC, statementUC)
	loanH := httpadp.NewLoanHandler(loansUC)
	paymentH := httpadp.NewPaymentHandler(paymentsUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.GET("/fund/state", fundH.GetState)
	e.POST("/fund/interest", fundH.ApplyInterest, idemp)
	e.POST("/fund/investments", fundH.RecordInvestment, idemp)
	e.POST("/fund/withdrawals", fundH.RecordWithdrawal, idemp)

	e.POST("/members", memberH.Enroll, idemp)
	e.GET("/members/:member_id", memberH.Get)
	e.GET("/members/:member_id/capacity", memberH.GetCapacity)
	e.GET("/members/:member_id/transactions", memberH.ListTransactions)
	e.POST("/members/:member_id/cashout", memberH.CashOut, idemp)

	e.POST("/loans", loanH.Disburse, idemp)
	e.GET("/loans/:loan_id", loanH.Get)
	e.GET("/loans/:loan_id/schedule", loanH.GetSchedule)
	e.POST("/loans/:loan_id/default", loanH.MarkDefaulted, idemp)

	e.POST("/payments", paymentH.Record, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
