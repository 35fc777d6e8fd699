package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect builds a client for uri. The driver dials lazily and keeps
// reconnecting in the background, so an unreachable server is not an error
// here; only a malformed uri is. opTimeout becomes the client-wide
// per-operation timeout.
func Connect(ctx context.Context, uri string, connectTimeout, opTimeout time.Duration) (*mongo.Client, error) {
	const op = "database.Connect"

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri)
	if opTimeout > 0 {
		clientOpts.SetTimeout(opTimeout)
	}

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w", op, err)
	}

	return client, nil
}

// Ping checks the primary is reachable within timeout.
func Ping(ctx context.Context, client *mongo.Client, timeout time.Duration) error {
	const op = "database.Ping"

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
