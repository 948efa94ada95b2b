package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	apperrors "bank-account-cli/internal/errors"
	"bank-account-cli/internal/services"

	"github.com/shopspring/decimal"
)

// Menu choices
const (
	DepositChoice      = 1
	WithdrawChoice     = 2
	CheckBalanceChoice = 3
	CloseAccountChoice = 4
	QuitChoice         = 5
)

// Amounts are limited to the decimal exponent range of a float64
const maxAmountExponent = 308

const menu = `
Welcome to the Bank Account Management System
===============================================
1. Deposit Funds
2. Withdraw Funds
3. Check Balance
4. Close Account
5. Exit
Enter your choice: `

// Session is the interactive menu loop. It owns one account for its lifetime.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	service services.AccountServiceInterface
	logger  *slog.Logger
}

// NewSession reads whitespace separated tokens from in. Results go to out,
// error messages to errOut.
func NewSession(in io.Reader, out, errOut io.Writer, service services.AccountServiceInterface, logger *slog.Logger) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Session{
		scanner: scanner,
		out:     out,
		errOut:  errOut,
		service: service,
		logger:  logger,
	}
}

// Run opens the account and drives the menu until the user quits or input ends.
// A failure while opening the account is printed and returned; the menu is
// never shown in that case. Rejected operations inside the loop never end it.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprint(s.out, "Enter initial balance: ")
	initialBalance, err := s.readAmount()
	if err != nil {
		s.printError(ctx, err)
		return err
	}

	account, err := s.service.OpenAccount(ctx, initialBalance)
	if err != nil {
		s.printError(ctx, err)
		return err
	}
	fmt.Fprintf(s.out, "Bank Account Created: #%s\n", account.Number)

	for {
		fmt.Fprint(s.out, menu)

		token, err := s.next()
		if err != nil {
			s.logger.InfoContext(ctx, "input closed, ending session")
			s.farewell()
			return nil
		}

		switch parseChoice(token) {
		case DepositChoice:
			s.deposit(ctx)
		case WithdrawChoice:
			s.withdraw(ctx)
		case CheckBalanceChoice:
			s.checkBalance(ctx)
		case CloseAccountChoice:
			s.closeAccount(ctx)
		case QuitChoice:
			s.farewell()
			return nil
		default:
			s.logger.DebugContext(ctx, "invalid menu choice", slog.String("input", token))
			fmt.Fprintln(s.out, apperrors.GetErrorMessage(apperrors.InputInvalidChoice))
		}
	}
}

func (s *Session) deposit(ctx context.Context) {
	fmt.Fprint(s.out, "Enter deposit amount: ")
	amount, err := s.readAmount()
	if err != nil {
		s.printError(ctx, err)
		return
	}

	if _, err := s.service.Deposit(ctx, amount); err != nil {
		s.printError(ctx, err)
		return
	}
	fmt.Fprintf(s.out, "Deposited $%s successfully.\n", amount.String())
}

func (s *Session) withdraw(ctx context.Context) {
	fmt.Fprint(s.out, "Enter withdrawal amount: ")
	amount, err := s.readAmount()
	if err != nil {
		s.printError(ctx, err)
		return
	}

	if _, err := s.service.Withdraw(ctx, amount); err != nil {
		s.printError(ctx, err)
		return
	}
	fmt.Fprintf(s.out, "Withdrew $%s successfully.\n", amount.String())
}

func (s *Session) checkBalance(ctx context.Context) {
	balance, err := s.service.GetBalance(ctx)
	if err != nil {
		s.printError(ctx, err)
		return
	}
	fmt.Fprintf(s.out, "Current Balance: $%s\n", balance.String())
}

func (s *Session) closeAccount(ctx context.Context) {
	if err := s.service.CloseAccount(ctx); err != nil {
		s.printError(ctx, err)
		return
	}
	fmt.Fprintln(s.out, "Account closed successfully.")
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, "Thank you for using the Bank Account Management System!")
}

func (s *Session) printError(ctx context.Context, err error) {
	appErr := apperrors.FromError(err)

	level := slog.LevelDebug
	if appErr.Code == apperrors.SystemUnexpectedError || strings.HasPrefix(string(appErr.Code), "INPUT_") {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "operation failed",
		slog.String("code", string(appErr.Code)),
		slog.String("error", err.Error()),
	)

	fmt.Fprintf(s.errOut, "\nError: %s\n", appErr.Message)
}

// next returns the next whitespace separated token
func (s *Session) next() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}

	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInputUnavailable, err)
	}
	return "", fmt.Errorf("%w: %v", apperrors.ErrInputUnavailable, io.EOF)
}

func (s *Session) readAmount() (decimal.Decimal, error) {
	token, err := s.next()
	if err != nil {
		return decimal.Zero, err
	}

	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q: %v", apperrors.ErrInvalidAmount, token, err)
	}
	if exp := amount.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w %q: exponent %d out of range", apperrors.ErrInvalidAmount, token, exp)
	}

	return amount, nil
}

// parseChoice returns 0 for anything that is not an integer
func parseChoice(token string) int {
	choice, err := strconv.Atoi(token)
	if err != nil {
		return 0
	}
	return choice
}

// IsInputError reports whether err came from reading input rather than from the account
func IsInputError(err error) bool {
	return errors.Is(err, apperrors.ErrInputUnavailable) || errors.Is(err, apperrors.ErrInvalidAmount)
}
