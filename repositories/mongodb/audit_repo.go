package mongodb

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "tx-authorizer/models"

	// External Packages
	"go.mongodb.org/mongo-driver/mongo"
)

// AuditRepository appends transaction records to the transactions
// collection. Records are immutable once written; nothing in this service
// updates or deletes them.
type AuditRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewAuditRepository(client *mongo.Client, database string) *AuditRepository {
	return &AuditRepository{client: client, database: database, collection: "transactions"}
}

// Append inserts a single transaction record.
func (r *AuditRepository) Append(ctx context.Context, record models.TransactionRecord) error {
	collection := r.client.Database(r.database).Collection(r.collection)
	_, err := collection.InsertOne(ctx, record)
	return err
}
