//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"

	"multivendor/internal/database"
	"multivendor/internal/models"
)

const (
	mongoImage          = "mongo:8.0"
	mongoPort           = "27017"
	mongoStartupTimeout = time.Minute
)

func startMongo(t *testing.T) *Mongo {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mongoImage,
			ExposedPorts: []string{mongoPort + "/tcp"},
			WaitingFor:   wait.ForListeningPort(mongoPort + "/tcp").WithStartupTimeout(mongoStartupTimeout),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start mongo container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate mongo container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, mongoPort+"/tcp")
	require.NoError(t, err)

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	client, err := database.Connect(ctx, uri, 30*time.Second, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	require.NoError(t, database.Ping(ctx, client, 30*time.Second))

	db := client.Database("marketplace_" + gofakeit.LetterN(8))
	require.NoError(t, database.EnsureProductIndexes(ctx, db, "product"))

	return NewMongo(db, DefaultCollections())
}

func TestMongoProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := startMongo(t)

	want := models.Product{
		Title:       gofakeit.ProductName(),
		Description: lo.ToPtr(gofakeit.ProductDescription()),
		Price:       gofakeit.Price(1, 500),
		ImageURL:    lo.ToPtr(gofakeit.URL()),
		Category:    "Audio",
		VendorID:    lo.ToPtr(gofakeit.UUID()),
		InStock:     true,
		Rating:      4.1,
	}

	id, err := m.Insert(ctx, models.KindProduct, want)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = m.Insert(ctx, models.KindProduct, models.Product{Title: "Lamp", Price: 20, Category: "Home", InStock: true, Rating: 4})
	require.NoError(t, err)

	docs, err := m.Find(ctx, models.KindProduct, bson.M{"category": "Audio"}, 8)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	got, err := models.DecodeProduct(docs[0])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMongoFindRespectsLimit(t *testing.T) {
	ctx := context.Background()
	m := startMongo(t)

	for i := 0; i < 4; i++ {
		_, err := m.Insert(ctx, models.KindVendor, bson.M{"name": gofakeit.Company()})
		require.NoError(t, err)
	}

	docs, err := m.Find(ctx, models.KindVendor, nil, 3)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	names, err := m.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "vendor")
	assert.Contains(t, names, "product")
}
