package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
// Creating an index that already exists is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		departmentsCollection: {
			{Keys: bson.D{{Key: "nom", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_departement_nom")},
		},
		rolesCollection: {
			{Keys: bson.D{{Key: "nom", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_role_nom")},
		},
		accountsCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_account_username")},
		},
		employeesCollection: {
			{Keys: bson.D{{Key: "departement", Value: 1}}, Options: options.Index().SetName("idx_employe_departement")},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", collection, err)
		}
	}
	return nil
}
