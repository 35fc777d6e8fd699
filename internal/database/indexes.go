package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"multivendor/internal/logger"
)

const indexTimeout = 5 * time.Second

// EnsureProductIndexes backs the category filter on the product listing.
func EnsureProductIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	return ensureIndex(ctx, db, collection, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("category_index"),
	})
}

// EnsureNewsletterIndexes is non-unique: repeated sign-ups are accepted.
func EnsureNewsletterIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	return ensureIndex(ctx, db, collection, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_index"),
	})
}

func EnsureVendorApplicationIndexes(ctx context.Context, db *mongo.Database, collection string) error {
	return ensureIndex(ctx, db, collection, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_index"),
	})
}

func ensureIndex(ctx context.Context, db *mongo.Database, collection string, model mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	name := ""
	if model.Options != nil && model.Options.Name != nil {
		name = *model.Options.Name
	}
	fields := []logger.Field{logger.String("collection", collection), logger.String("index", name)}

	logger.Debug(ctx, "creating index", fields...)
	if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
		logger.Warn(ctx, "index creation failed", append(fields, logger.ErrorF(err))...)
		return err
	}
	logger.Info(ctx, "index ready", fields...)
	return nil
}
