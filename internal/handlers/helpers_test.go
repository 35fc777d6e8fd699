package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"multivendor/internal/config"
	"multivendor/internal/models"
	"multivendor/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubStore wraps the in-memory store to record filters and inject failures.
type stubStore struct {
	*store.Memory

	findErr   error
	insertErr error
	namesErr  error
	names     []string

	filters []bson.M
}

func newStubStore() *stubStore {
	return &stubStore{Memory: store.NewMemory(store.DefaultCollections())}
}

func (s *stubStore) Insert(ctx context.Context, kind models.Kind, doc any) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	return s.Memory.Insert(ctx, kind, doc)
}

func (s *stubStore) Find(ctx context.Context, kind models.Kind, filter bson.M, limit int64) ([]bson.M, error) {
	s.filters = append(s.filters, filter)
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.Memory.Find(ctx, kind, filter, limit)
}

func (s *stubStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.namesErr != nil {
		return nil, s.namesErr
	}
	if s.names != nil {
		return s.names, nil
	}
	return s.Memory.CollectionNames(ctx)
}

func (s *stubStore) all(t *testing.T, kind models.Kind) []bson.M {
	t.Helper()
	docs, err := s.Memory.Find(context.Background(), kind, nil, 0)
	require.NoError(t, err)
	return docs
}

func testConfig() config.Config {
	return config.Config{MaxListLimit: 100}
}

func newTestRouter(h store.Handle, cfg config.Config) *gin.Engine {
	return NewRouter(Deps{Store: h, Config: cfg})
}

func doRequest(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}
