package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/Marceldinga/theyoungshallgrow--sub000/internal/adapter/http"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/adapter/middleware"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/adapter/repository/mysql"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/config"
	auditDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/audit"
	interestDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/interest"
	loanDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/loan"
	memberDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/member"
	rotationDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/rotation"
	signatureDomain "github.com/Marceldinga/theyoungshallgrow--sub000/internal/domain/signature"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/infrastructure/cache"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/infrastructure/db"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/infrastructure/lock"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/accrual"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/loanreq"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/payment"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/payout"
	"github.com/Marceldinga/theyoungshallgrow--sub000/internal/usecase/signing"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&memberDomain.Member{},
		&rotationDomain.State{},
		&rotationDomain.Contribution{},
		&rotationDomain.Payout{},
		&loanDomain.Request{},
		&loanDomain.Loan{},
		&loanDomain.Payment{},
		&signatureDomain.Signature{},
		&interestDomain.Snapshot{},
		&auditDomain.Event{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	locker := lock.NewMutex(rdb, 30*time.Second)

	members := mysql.NewMemberRepository(gdb)
	requests := mysql.NewRequestRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	rotation := mysql.NewRotationRepository(gdb)
	sigs := mysql.NewSignatureRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	auditLog := mysql.NewAuditRepository(gdb)

	requiredRoles := signing.RequiredRoles{
		signatureDomain.EntityLoan:   config.LoanRoles,
		signatureDomain.EntityPayout: config.PayoutRoles,
	}

	loanUC := loanreq.NewUsecase(members, requests, loans, payments, tx, auditLog, loanreq.Rules{
		LoanTermDays:    cfg.LoanTermDays,
		LimitMultiplier: cfg.LoanLimitMultiplier,
		RequiredRoles:   config.LoanRoles,
	})
	paymentUC := payment.NewUsecase(loans, payments, tx, auditLog)
	payoutUC := payout.NewUsecase(members, rotation, sigs, tx, auditLog, locker, payout.Rules{
		MemberCount:      cfg.MemberCount,
		BaseContribution: cfg.BaseContribution,
		ContributionStep: cfg.ContributionStep,
		RequiredRoles:    config.PayoutRoles,
		CycleDays:        cfg.CycleDays,
	})
	signingUC := signing.NewUsecase(sigs, auditLog, requiredRoles)
	accrualUC := accrual.NewUsecase(tx, auditLog, locker, cfg.MonthlyInterestRate)

	h := httpadp.NewHandler(loanUC, paymentUC, payoutUC, signingUC, accrualUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	h.Register(e)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
