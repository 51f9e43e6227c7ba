package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "tx-authorizer/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DeadLetterQueue parks audit records whose primary write failed so they
// can be replayed later. Parking is itself best-effort: a failure here is
// logged and dropped, it never reaches the request path.
type DeadLetterQueue struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
}

func NewDeadLetterQueue(client *redis.Client, logger *zap.Logger) *DeadLetterQueue {
	return &DeadLetterQueue{client: client, logger: logger, keyPrefix: "failed-audit"}
}

// Send stores a failed audit record under "failed-audit:{record_id}".
func (r *DeadLetterQueue) Send(ctx context.Context, record models.TransactionRecord) {
	jsonData, err := json.Marshal(record)
	if err != nil {
		r.logger.Error("failed to marshal audit record", zap.Error(err))
		return
	}

	key := fmt.Sprintf("%s:%s", r.keyPrefix, record.ID)
	if err = r.client.Set(ctx, key, jsonData, 0).Err(); err != nil {
		r.logger.Error("failed to park audit record", zap.String("key", key), zap.Error(err))
		return
	}
	r.logger.Info("parked failed audit record", zap.String("key", key))
}
