package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"multivendor/internal/models"
)

// Memory is an in-process Store. Documents go through a bson round trip on
// insert so reads see the same shapes the Mongo adapter would return.
// Filters support top-level equality only.
type Memory struct {
	mu          sync.RWMutex
	collections Collections
	docs        map[string][]bson.M
}

func NewMemory(collections Collections) *Memory {
	return &Memory{
		collections: collections,
		docs:        make(map[string][]bson.M),
	}
}

func (m *Memory) Insert(_ context.Context, kind models.Kind, doc any) (string, error) {
	const op = "store.Memory.Insert"

	name, err := m.collections.Name(kind)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var stored bson.M
	if err := bson.Unmarshal(data, &stored); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	id, ok := stored[models.InternalIDKey]
	if !ok {
		oid := primitive.NewObjectID()
		stored[models.InternalIDKey] = oid
		id = oid
	}

	m.mu.Lock()
	m.docs[name] = append(m.docs[name], stored)
	m.mu.Unlock()

	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(id), nil
}

func (m *Memory) Find(_ context.Context, kind models.Kind, filter bson.M, limit int64) ([]bson.M, error) {
	const op = "store.Memory.Find"

	name, err := m.collections.Name(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]bson.M, 0)
	for _, doc := range m.docs[name] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if !matches(doc, filter) {
			continue
		}
		out = append(out, cloneDoc(doc))
	}
	return out, nil
}

func (m *Memory) CollectionNames(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.docs))
	for name, docs := range m.docs {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
