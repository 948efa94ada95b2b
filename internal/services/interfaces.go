package services

import (
	"context"
	"time"

	"bank-account-cli/internal/models"

	"github.com/shopspring/decimal"
)

// AccountServiceInterface defines the operations the console performs on its single account
type AccountServiceInterface interface {
	// OpenAccount creates the session's account with a generated number
	OpenAccount(ctx context.Context, initialBalance decimal.Decimal) (*models.Account, error)

	// Deposit credits the account and returns the new balance
	Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw debits the account and returns the new balance
	Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)

	GetBalance(ctx context.Context) (decimal.Decimal, error)
	CloseAccount(ctx context.Context) error

	// Account returns a snapshot of the account, nil before OpenAccount
	Account() *models.Account
}

type AuditLoggerInterface interface {
	LogAccountOpened(ctx context.Context, accountNumber, initialBalance string)
	LogDeposit(ctx context.Context, accountNumber, amount, oldBalance, newBalance string)
	LogWithdrawal(ctx context.Context, accountNumber, amount, oldBalance, newBalance string)
	LogBalanceInquiry(ctx context.Context, accountNumber, balance string, active bool)
	LogAccountClosed(ctx context.Context, accountNumber, finalBalance string)
	LogOperationRejected(ctx context.Context, accountNumber, operation, amount, errorMsg string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
