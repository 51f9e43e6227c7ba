package kafka

import (
	// Go Internal Packages
	"context"
	"encoding/json"

	// Local Packages
	models "tx-authorizer/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type ProducerConfig struct {
	Brokers []string
	Name    string
	Topic   string
}

// Producer streams every recorded transaction onto the audit topic for
// downstream consumers. Publishing is best-effort: a produce failure is
// logged and never surfaces to the request path.
type Producer struct {
	Client *kgo.Client
	Config *ProducerConfig
	Logger *zap.Logger
}

// NewAuditProducer creates a producer for the configured audit topic with
// monitoring hooks attached.
func NewAuditProducer(conf *ProducerConfig, metrics *kprom.Metrics, logger *zap.Logger) (*Producer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...),    // Connects to Kafka brokers
		kgo.ClientID(conf.Name),             // Identifies this producer
		kgo.DefaultProduceTopic(conf.Topic), // Topic for all produced records
		kgo.WithHooks(metrics),              // Attaches monitoring hooks
	}

	client, err := kgo.NewClient(opts...)
	if err != nil || client == nil {
		return nil, err
	}

	return &Producer{Client: client, Config: conf, Logger: logger}, nil
}

// Publish asynchronously produces one transaction record keyed by its id.
func (p *Producer) Publish(ctx context.Context, record models.TransactionRecord) {
	value, err := json.Marshal(record)
	if err != nil {
		p.Logger.Error("failed to marshal transaction record", zap.Error(err))
		return
	}

	kafkaRecord := &kgo.Record{Key: []byte(record.ID), Value: value}
	p.Client.Produce(ctx, kafkaRecord, func(r *kgo.Record, err error) {
		if err != nil {
			p.Logger.Error("failed to publish transaction record",
				zap.String("id", record.ID), zap.Error(err))
		}
	})
}

// Close flushes buffered records and releases the client.
func (p *Producer) Close(ctx context.Context) {
	if err := p.Client.Flush(ctx); err != nil {
		p.Logger.Warn("failed to flush audit producer", zap.Error(err))
	}
	p.Client.Close()
}
