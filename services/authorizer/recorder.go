package authorizer

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "tx-authorizer/models"
	utils "tx-authorizer/utils"

	// External Packages
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AuditLog is the append-only store of transaction records.
type AuditLog interface {
	Append(ctx context.Context, record models.TransactionRecord) error
}

// AuditStream receives a copy of every record for downstream consumers.
type AuditStream interface {
	Publish(ctx context.Context, record models.TransactionRecord)
}

// AuditFallback parks records whose primary write failed.
type AuditFallback interface {
	Send(ctx context.Context, record models.TransactionRecord)
}

// Recorder turns a terminal decision into a normalized audit row and writes
// it. Writing is best-effort: the authorization decision is already made and
// is never reversed by an audit failure.
type Recorder struct {
	Logger *zap.Logger
	Audit  AuditLog
	Stream AuditStream
	DLQ    AuditFallback
}

func NewRecorder(logger *zap.Logger, audit AuditLog, stream AuditStream, dlq AuditFallback) *Recorder {
	return &Recorder{Logger: logger, Audit: audit, Stream: stream, DLQ: dlq}
}

// Record writes exactly one audit row for one inbound request. The account
// number is truncated to its last four characters and the amount fixed to
// two decimals. A nil Stream or DLQ disables that leg.
func (r *Recorder) Record(ctx context.Context, merchantName, merchantID, account, cardType string,
	amount decimal.Decimal, timestamp string, status models.Outcome) models.TransactionRecord {

	record := models.TransactionRecord{
		ID:           uuid.NewString(),
		Account:      utils.TruncateAccount(account),
		MerchantName: merchantName,
		MerchantID:   merchantID,
		CardType:     cardType,
		Amount:       amount.StringFixed(2),
		Timestamp:    timestamp,
		Status:       status,
	}
	r.Logger.Debug("recording transaction", zap.Any("record", record))

	if err := r.Audit.Append(ctx, record); err != nil {
		r.Logger.Error("failed to record transaction",
			zap.String("id", record.ID), zap.Error(err))
		if r.DLQ != nil {
			r.DLQ.Send(ctx, record)
		}
	}

	if r.Stream != nil {
		r.Stream.Publish(ctx, record)
	}
	return record
}
