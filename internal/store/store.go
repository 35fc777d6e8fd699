package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"multivendor/internal/models"
)

var ErrUnknownKind = errors.New("no collection mapped for kind")

// Store is the document store as seen by the handlers.
type Store interface {
	// Insert stores doc in the collection mapped to kind and returns its id.
	Insert(ctx context.Context, kind models.Kind, doc any) (string, error)
	// Find returns at most limit documents matching filter; limit <= 0 means no limit.
	Find(ctx context.Context, kind models.Kind, filter bson.M, limit int64) ([]bson.M, error)
	CollectionNames(ctx context.Context) ([]string, error)
}

// Collections maps each record kind to its collection.
type Collections map[models.Kind]string

func DefaultCollections() Collections {
	return Collections{
		models.KindProduct:           "product",
		models.KindVendor:            "vendor",
		models.KindNewsletter:        "newsletter",
		models.KindVendorApplication: "vendorapplication",
	}
}

func (c Collections) Name(kind models.Kind) (string, error) {
	name, ok := c[kind]
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return name, nil
}
