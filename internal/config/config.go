package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

// Signature role sets per entity type. The order here is the order missing
// roles are reported in.
var (
	LoanRoles   = []string{"borrower", "surety", "treasury"}
	PayoutRoles = []string{"president", "beneficiary", "treasury", "surety"}
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Engine rules.
	MemberCount         int     // Gate 1: active members must equal this exactly
	BaseContribution    float64 // Gate 2: minimum per-member contribution
	ContributionStep    float64 // Gate 2: contributions must be a multiple of this
	MonthlyInterestRate float64
	CycleDays           int // next_payout_date advances by this much per payout
	LoanTermDays        int
	LoanLimitMultiplier float64 // limit = multiplier x foundation contribution total
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getfloat(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "njangi"),
		MySQLUser: getenv("MYSQL_USER", "njangi"),
		MySQLPass: getenv("MYSQL_PASS", "njangi"),

		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:      getint("REDIS_DB", 0),
		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		MemberCount:         getint("ORG_MEMBER_COUNT", 17),
		BaseContribution:    getfloat("BASE_CONTRIBUTION", 500),
		ContributionStep:    getfloat("CONTRIBUTION_STEP", 500),
		MonthlyInterestRate: getfloat("MONTHLY_INTEREST_RATE", 0.05),
		CycleDays:           getint("CYCLE_DAYS", 14),
		LoanTermDays:        getint("LOAN_TERM_DAYS", 30),
		LoanLimitMultiplier: getfloat("LOAN_LIMIT_MULTIPLIER", 2),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.MemberCount <= 0 {
		return errors.New("ORG_MEMBER_COUNT must be positive")
	}
	if c.BaseContribution <= 0 || c.ContributionStep <= 0 {
		return errors.New("BASE_CONTRIBUTION and CONTRIBUTION_STEP must be positive")
	}
	if c.MonthlyInterestRate < 0 || c.MonthlyInterestRate >= 1 {
		return fmt.Errorf("MONTHLY_INTEREST_RATE %v out of range [0,1)", c.MonthlyInterestRate)
	}
	if c.CycleDays <= 0 || c.LoanTermDays <= 0 {
		return errors.New("CYCLE_DAYS and LOAN_TERM_DAYS must be positive")
	}
	if c.LoanLimitMultiplier <= 0 {
		return errors.New("LOAN_LIMIT_MULTIPLIER must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
