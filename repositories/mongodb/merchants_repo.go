package mongodb

import (
	// Go Internal Packages
	"context"
	"errors"

	// Local Packages
	models "tx-authorizer/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MerchantsRepository reads the merchants directory, keyed by merchant name.
// The engine only ever reads from it.
type MerchantsRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewMerchantsRepository(client *mongo.Client, database string) *MerchantsRepository {
	return &MerchantsRepository{client: client, database: database, collection: "merchants"}
}

// Get looks up a merchant by name. A missing merchant is (nil, nil).
func (r *MerchantsRepository) Get(ctx context.Context, merchantName string) (*models.MerchantRecord, error) {
	collection := r.client.Database(r.database).Collection(r.collection)
	filter := bson.M{"merchant_name": merchantName}

	var record models.MerchantRecord
	err := collection.FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
