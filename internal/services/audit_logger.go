package services

import (
	"context"
	"log/slog"
	"time"
)

type correlationIDKey struct{}

// WithCorrelationID attaches the session correlation id to ctx
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAccountOpened(ctx context.Context, accountNumber, initialBalance string) {
	al.logger.InfoContext(ctx, "account opened",
		slog.String("event_type", "account_opened"),
		slog.String("account_number", accountNumber),
		slog.String("initial_balance", initialBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDeposit(ctx context.Context, accountNumber, amount, oldBalance, newBalance string) {
	al.logger.InfoContext(ctx, "deposit",
		slog.String("event_type", "deposit"),
		slog.String("account_number", accountNumber),
		slog.String("amount", amount),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogWithdrawal(ctx context.Context, accountNumber, amount, oldBalance, newBalance string) {
	al.logger.InfoContext(ctx, "withdrawal",
		slog.String("event_type", "withdrawal"),
		slog.String("account_number", accountNumber),
		slog.String("amount", amount),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceInquiry(ctx context.Context, accountNumber, balance string, active bool) {
	al.logger.DebugContext(ctx, "balance inquiry",
		slog.String("event_type", "balance_inquiry"),
		slog.String("account_number", accountNumber),
		slog.String("balance", balance),
		slog.Bool("active", active),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountClosed(ctx context.Context, accountNumber, finalBalance string) {
	al.logger.InfoContext(ctx, "account closed",
		slog.String("event_type", "account_closed"),
		slog.String("account_number", accountNumber),
		slog.String("final_balance", finalBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOperationRejected(ctx context.Context, accountNumber, operation, amount, errorMsg string) {
	attrs := []slog.Attr{
		slog.String("event_type", "operation_rejected"),
		slog.String("account_number", accountNumber),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}

	if amount != "" {
		attrs = append(attrs, slog.String("amount", amount))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "operation rejected", attrs...)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
