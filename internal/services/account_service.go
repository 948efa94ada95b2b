package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-account-cli/internal/models"
	"bank-account-cli/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	OperationOpen     = "open"
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
	OperationBalance  = "balance"
	OperationClose    = "close"
)

type accountService struct {
	account   *models.Account
	generator *models.AccountNumberGenerator
	validator *validation.Validator
	audit     AuditLoggerInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewAccountService creates the service owning the session's single account
func NewAccountService(
	generator *models.AccountNumberGenerator,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		generator: generator,
		validator: validation.GetValidator(),
		audit:     audit,
		metrics:   metrics,
		logger:    logger,
	}
}

// OpenAccount creates the account. The initial balance is not range checked.
func (s *accountService) OpenAccount(ctx context.Context, initialBalance decimal.Decimal) (*models.Account, error) {
	defer s.observe(OperationOpen, time.Now())

	if s.account != nil {
		return nil, models.ErrAccountAlreadyOpen
	}

	account := models.NewAccount(s.generator.Generate(), initialBalance)
	if err := s.validator.ValidateStruct(account); err != nil {
		s.logger.ErrorContext(ctx, "generated account failed validation",
			slog.String("account_number", account.Number),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidAccountNumber, err)
	}

	if initialBalance.IsNegative() {
		s.logger.WarnContext(ctx, "account opened with negative balance",
			slog.String("account_number", account.Number),
			slog.String("initial_balance", initialBalance.String()),
		)
	}

	s.account = account
	s.audit.LogAccountOpened(ctx, account.Number, initialBalance.String())
	s.metrics.IncrementCounter("account.opened", nil)
	s.metrics.IncrementCounter("operation.success", map[string]string{"operation": OperationOpen})
	s.recordState()

	return account.Snapshot(), nil
}

func (s *accountService) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	defer s.observe(OperationDeposit, time.Now())

	if s.account == nil {
		return decimal.Zero, models.ErrNoAccount
	}

	oldBalance := s.account.GetBalance()
	if err := s.applyDeposit(amount); err != nil {
		s.reject(ctx, OperationDeposit, amount.String(), err)
		return oldBalance, fmt.Errorf("deposit failed: %w", err)
	}

	newBalance := s.account.GetBalance()
	s.audit.LogDeposit(ctx, s.account.Number, amount.String(), oldBalance.String(), newBalance.String())
	s.metrics.IncrementCounter("operation.success", map[string]string{"operation": OperationDeposit})
	s.recordState()

	return newBalance, nil
}

func (s *accountService) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	defer s.observe(OperationWithdraw, time.Now())

	if s.account == nil {
		return decimal.Zero, models.ErrNoAccount
	}

	oldBalance := s.account.GetBalance()
	if err := s.account.Withdraw(amount); err != nil {
		s.reject(ctx, OperationWithdraw, amount.String(), err)
		return oldBalance, fmt.Errorf("withdrawal failed: %w", err)
	}

	if amount.IsNegative() {
		s.logger.WarnContext(ctx, "negative withdrawal credited the account",
			slog.String("account_number", s.account.Number),
			slog.String("amount", amount.String()),
		)
	}

	newBalance := s.account.GetBalance()
	s.audit.LogWithdrawal(ctx, s.account.Number, amount.String(), oldBalance.String(), newBalance.String())
	s.metrics.IncrementCounter("operation.success", map[string]string{"operation": OperationWithdraw})
	s.recordState()

	return newBalance, nil
}

// GetBalance succeeds for open and closed accounts alike
func (s *accountService) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	defer s.observe(OperationBalance, time.Now())

	if s.account == nil {
		return decimal.Zero, models.ErrNoAccount
	}

	balance := s.account.GetBalance()
	s.audit.LogBalanceInquiry(ctx, s.account.Number, balance.String(), s.account.IsActive())
	s.metrics.IncrementCounter("operation.success", map[string]string{"operation": OperationBalance})

	return balance, nil
}

func (s *accountService) CloseAccount(ctx context.Context) error {
	defer s.observe(OperationClose, time.Now())

	if s.account == nil {
		return models.ErrNoAccount
	}

	if err := s.account.Close(); err != nil {
		s.reject(ctx, OperationClose, "", err)
		return fmt.Errorf("close failed: %w", err)
	}

	s.audit.LogAccountClosed(ctx, s.account.Number, s.account.GetBalance().String())
	s.metrics.IncrementCounter("operation.success", map[string]string{"operation": OperationClose})
	s.recordState()

	return nil
}

// applyDeposit validates the request, then applies it. A closed account
// reports ErrAccountClosed whatever the amount.
func (s *accountService) applyDeposit(amount decimal.Decimal) error {
	if s.account.IsActive() {
		if err := s.validator.ValidateStruct(models.DepositRequest{Amount: amount}); err != nil {
			return fmt.Errorf("%w: %v", models.ErrNegativeAmount, err)
		}
	}
	return s.account.Deposit(amount)
}

func (s *accountService) Account() *models.Account {
	if s.account == nil {
		return nil
	}
	return s.account.Snapshot()
}

func (s *accountService) reject(ctx context.Context, operation, amount string, err error) {
	s.audit.LogOperationRejected(ctx, s.account.Number, operation, amount, err.Error())
	s.metrics.IncrementCounter("operation.rejected", map[string]string{
		"operation": operation,
		"reason":    rejectionReason(err),
	})
}

func (s *accountService) recordState() {
	s.metrics.RecordGauge("account.balance", s.account.GetBalance().InexactFloat64(), nil)

	active := 0.0
	if s.account.IsActive() {
		active = 1
	}
	s.metrics.RecordGauge("account.active", active, nil)
}

func (s *accountService) observe(operation string, start time.Time) {
	s.metrics.RecordProcessingTime(operation, time.Since(start))
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, models.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, models.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, models.ErrAccountClosed):
		return "account_closed"
	default:
		return "other"
	}
}
