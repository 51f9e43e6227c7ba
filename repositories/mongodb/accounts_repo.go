package mongodb

import (
	// Go Internal Packages
	"context"
	"errors"

	// Local Packages
	models "tx-authorizer/models"

	// External Packages
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountsRepository reads and mutates bank account rows in the banks
// collection, keyed by (bankName, accountID).
type AccountsRepository struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewAccountsRepository(client *mongo.Client, database string) *AccountsRepository {
	return &AccountsRepository{client: client, database: database, collection: "banks"}
}

func (r *AccountsRepository) coll() *mongo.Collection {
	return r.client.Database(r.database).Collection(r.collection)
}

// Get does a point lookup of a single account row. A missing row is
// reported as (nil, nil), not an error.
func (r *AccountsRepository) Get(ctx context.Context, bank string, accountID int64) (*models.AccountRecord, error) {
	filter := bson.M{"bankName": bank, "accountID": accountID}

	var record models.AccountRecord
	err := r.coll().FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Query runs a composite-key query over (bankName, accountID) and returns
// every matching row. The authorization pipeline uses the first row, same
// as the key-condition query it replaces.
func (r *AccountsRepository) Query(ctx context.Context, bank string, accountID int64) ([]models.AccountRecord, error) {
	filter := bson.M{"bankName": bank, "accountID": accountID}

	cursor, err := r.coll().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []models.AccountRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateField unconditionally sets one money field on an account row.
// There is no compare-and-swap here: concurrent writers against the same
// account can lose updates (see DESIGN.md).
func (r *AccountsRepository) UpdateField(ctx context.Context, bank string, accountID int64, field string, value decimal.Decimal) error {
	filter := bson.M{"bankName": bank, "accountID": accountID}
	update := bson.M{"$set": bson.M{field: value.InexactFloat64()}}

	_, err := r.coll().UpdateOne(ctx, filter, update)
	return err
}
