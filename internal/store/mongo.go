package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"multivendor/internal/logger"
	"multivendor/internal/models"
)

type Mongo struct {
	db          *mongo.Database
	collections Collections
}

func NewMongo(db *mongo.Database, collections Collections) *Mongo {
	return &Mongo{db: db, collections: collections}
}

func (m *Mongo) collection(kind models.Kind) (*mongo.Collection, error) {
	name, err := m.collections.Name(kind)
	if err != nil {
		return nil, err
	}
	return m.db.Collection(name), nil
}

func (m *Mongo) Insert(ctx context.Context, kind models.Kind, doc any) (string, error) {
	const op = "store.Mongo.Insert"

	coll, err := m.collection(kind)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (m *Mongo) Find(ctx context.Context, kind models.Kind, filter bson.M, limit int64) ([]bson.M, error) {
	const op = "store.Mongo.Find"

	coll, err := m.collection(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cursor.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s decode: %w", op, err)
	}

	return docs, nil
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	const op = "store.Mongo.CollectionNames"

	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return names, nil
}
