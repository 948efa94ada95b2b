package models

import (
	"math/rand"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestNewAccount(t *testing.T) {
	account := NewAccount("123456", dec("100"))

	assert.Equal(t, "123456", account.Number)
	assert.True(t, account.Balance.Equal(dec("100")))
	assert.Equal(t, AccountStatusActive, account.Status)
	assert.True(t, account.IsActive())
	assert.False(t, account.CreatedAt.IsZero())
	assert.Nil(t, account.ClosedAt)
}

func TestNewAccount_NegativeInitialBalanceAccepted(t *testing.T) {
	account := NewAccount("123456", dec("-20"))

	assert.True(t, account.GetBalance().Equal(dec("-20")))
	assert.True(t, account.IsActive())
}

func TestAccount_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		amount      string
		closed      bool
		wantErr     error
		wantBalance string
	}{
		{
			name:        "deposit increases balance",
			initial:     "100",
			amount:      "50",
			wantBalance: "150",
		},
		{
			name:        "zero deposit accepted",
			initial:     "100",
			amount:      "0",
			wantBalance: "100",
		},
		{
			name:        "fractional deposit",
			initial:     "10.25",
			amount:      "0.75",
			wantBalance: "11",
		},
		{
			name:        "negative deposit rejected",
			initial:     "0",
			amount:      "-5",
			wantErr:     ErrNegativeAmount,
			wantBalance: "0",
		},
		{
			name:        "closed account rejected",
			initial:     "100",
			amount:      "10",
			closed:      true,
			wantErr:     ErrAccountClosed,
			wantBalance: "100",
		},
		{
			name:        "closed check precedes amount check",
			initial:     "100",
			amount:      "-10",
			closed:      true,
			wantErr:     ErrAccountClosed,
			wantBalance: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := NewAccount("123456", dec(tt.initial))
			if tt.closed {
				require.NoError(t, account.Close())
			}

			err := account.Deposit(dec(tt.amount))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, account.Balance.Equal(dec(tt.wantBalance)), "balance %s", account.Balance)
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		amount      string
		closed      bool
		wantErr     error
		wantBalance string
	}{
		{
			name:        "withdraw decreases balance",
			initial:     "100",
			amount:      "40",
			wantBalance: "60",
		},
		{
			name:        "withdraw entire balance",
			initial:     "100",
			amount:      "100",
			wantBalance: "0",
		},
		{
			name:        "overdraft rejected",
			initial:     "100",
			amount:      "150",
			wantErr:     ErrInsufficientFunds,
			wantBalance: "100",
		},
		{
			name:        "overdraft by one cent rejected",
			initial:     "100",
			amount:      "100.01",
			wantErr:     ErrInsufficientFunds,
			wantBalance: "100",
		},
		{
			name:        "negative withdrawal raises balance",
			initial:     "100",
			amount:      "-25",
			wantBalance: "125",
		},
		{
			name:        "closed account rejected",
			initial:     "100",
			amount:      "10",
			closed:      true,
			wantErr:     ErrAccountClosed,
			wantBalance: "100",
		},
		{
			name:        "closed check precedes overdraft check",
			initial:     "100",
			amount:      "500",
			closed:      true,
			wantErr:     ErrAccountClosed,
			wantBalance: "100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := NewAccount("123456", dec(tt.initial))
			if tt.closed {
				require.NoError(t, account.Close())
			}

			err := account.Withdraw(dec(tt.amount))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, account.Balance.Equal(dec(tt.wantBalance)), "balance %s", account.Balance)
		})
	}
}

func TestAccount_Close(t *testing.T) {
	account := NewAccount("123456", dec("50"))

	require.NoError(t, account.Close())
	assert.False(t, account.IsActive())
	assert.Equal(t, AccountStatusClosed, account.Status)
	require.NotNil(t, account.ClosedAt)
	closedAt := *account.ClosedAt

	// second close fails and does not touch the first close
	err := account.Close()
	assert.ErrorIs(t, err, ErrAccountClosed)
	assert.False(t, account.IsActive())
	assert.Equal(t, closedAt, *account.ClosedAt)

	// balance survives close
	assert.True(t, account.GetBalance().Equal(dec("50")))
}

func TestAccount_ClosedRejectsEveryMutation(t *testing.T) {
	account := NewAccount("123456", dec("100"))
	require.NoError(t, account.Close())

	assert.ErrorIs(t, account.Deposit(dec("10")), ErrAccountClosed)
	assert.ErrorIs(t, account.Withdraw(dec("10")), ErrAccountClosed)
	assert.ErrorIs(t, account.Close(), ErrAccountClosed)
	assert.True(t, account.GetBalance().Equal(dec("100")))
	assert.False(t, account.IsActive())
}

func TestAccount_BalanceNeverNegative(t *testing.T) {
	for run := 0; run < 50; run++ {
		account := NewAccount("123456", decimal.NewFromFloat(gofakeit.Float64Range(0, 1000)).Round(2))

		for op := 0; op < 200; op++ {
			amount := decimal.NewFromFloat(gofakeit.Float64Range(-100, 600)).Round(2)
			before := account.GetBalance()

			switch gofakeit.IntRange(0, 9) {
			case 0:
				_ = account.Close()
			case 1, 2, 3, 4:
				if err := account.Deposit(amount); err != nil {
					assert.True(t, account.GetBalance().Equal(before))
				}
			default:
				// negative withdrawals credit the account, skip them here
				if err := account.Withdraw(amount.Abs()); err != nil {
					assert.True(t, account.GetBalance().Equal(before))
				}
			}

			require.False(t, account.GetBalance().IsNegative(), "balance went negative: %s", account.GetBalance())
		}
	}
}

func TestAccount_Snapshot(t *testing.T) {
	account := NewAccount("123456", dec("10"))
	require.NoError(t, account.Close())

	snap := account.Snapshot()
	require.NotNil(t, snap.ClosedAt)
	assert.NotSame(t, account.ClosedAt, snap.ClosedAt)
	assert.Equal(t, account.Number, snap.Number)
	assert.True(t, snap.Balance.Equal(account.Balance))

	snap.Balance = dec("999")
	assert.True(t, account.Balance.Equal(dec("10")))
}

func TestAccountNumberGenerator_Generate(t *testing.T) {
	gen := NewAccountNumberGenerator(42)

	for i := 0; i < 1000; i++ {
		number := gen.Generate()
		require.Len(t, number, AccountNumberLength)
		require.True(t, ValidateAccountNumber(number), "invalid number %q", number)
	}
}

func TestAccountNumberGenerator_DeterministicForSeed(t *testing.T) {
	a := NewAccountNumberGenerator(7)
	b := NewAccountNumberGeneratorFromRand(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestValidateAccountNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{"lowest", "100000", true},
		{"highest", "999999", true},
		{"leading zero", "012345", false},
		{"too short", "12345", false},
		{"too long", "1234567", false},
		{"letters", "12a456", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAccountNumber(tt.number))
		})
	}
}
