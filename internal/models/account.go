package models

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountStatusActive = "active"
	AccountStatusClosed = "closed"

	// Account numbers are six digits, 100000-999999
	AccountNumberLength = 6
	accountNumberMin    = 100000
	accountNumberSpan   = 900000
)

var (
	ErrNegativeAmount    = errors.New("cannot deposit a negative amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountClosed     = errors.New("account is closed for transactions")

	ErrNoAccount            = errors.New("no account has been opened")
	ErrAccountAlreadyOpen   = errors.New("an account is already open")
	ErrInvalidAccountNumber = errors.New("generated account number is invalid")
)

// Account represents the single bank account driven by the console session
type Account struct {
	Number    string          `json:"account_number" validate:"required,account_number"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status" validate:"required,oneof=active closed"`
	CreatedAt time.Time       `json:"created_at"`
	ClosedAt  *time.Time      `json:"closed_at,omitempty"`
}

// DepositRequest is the validated input of a deposit
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"non_negative_amount"`
}

// NewAccount opens an active account. The initial balance is taken as given,
// including negative values.
func NewAccount(number string, initialBalance decimal.Decimal) *Account {
	return &Account{
		Number:    number,
		Balance:   initialBalance,
		Status:    AccountStatusActive,
		CreatedAt: time.Now(),
	}
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// GetBalance returns the current balance. Available after close.
func (a *Account) GetBalance() decimal.Decimal {
	return a.Balance
}

// Deposit credits the account. Zero is accepted.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountClosed
	}

	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw debits the account.
// Only overdraft is rejected: a negative amount raises the balance.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountClosed
	}

	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Close closes the account. Closed is terminal; the balance stays queryable.
func (a *Account) Close() error {
	if !a.IsActive() {
		return ErrAccountClosed
	}

	a.Status = AccountStatusClosed
	now := time.Now()
	a.ClosedAt = &now
	return nil
}

// Snapshot returns a copy that does not share ClosedAt with the receiver
func (a *Account) Snapshot() *Account {
	c := *a
	if a.ClosedAt != nil {
		closedAt := *a.ClosedAt
		c.ClosedAt = &closedAt
	}
	return &c
}

// AccountNumberGenerator produces account numbers from an explicit random source.
// It holds no global state, so a fixed seed gives a repeatable sequence.
type AccountNumberGenerator struct {
	rng *rand.Rand
}

// NewAccountNumberGenerator seeds a generator. A zero seed uses the current time.
func NewAccountNumberGenerator(seed int64) *AccountNumberGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AccountNumberGenerator{rng: rand.New(rand.NewSource(seed))}
}

// NewAccountNumberGeneratorFromRand wraps an existing source
func NewAccountNumberGeneratorFromRand(rng *rand.Rand) *AccountNumberGenerator {
	return &AccountNumberGenerator{rng: rng}
}

// Generate returns a six digit account number.
// No uniqueness check: only one account exists per session.
func (g *AccountNumberGenerator) Generate() string {
	return fmt.Sprintf("%d", accountNumberMin+g.rng.Intn(accountNumberSpan))
}

// ValidateAccountNumber validates an account number format
func ValidateAccountNumber(accountNumber string) bool {
	if len(accountNumber) != AccountNumberLength {
		return false
	}

	for _, char := range accountNumber {
		if char < '0' || char > '9' {
			return false
		}
	}

	return accountNumber[0] != '0'
}
