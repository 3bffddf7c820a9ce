package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo_backend/internal/platform/config"
)

// unreachable points at a port nothing listens on.
var unreachable = config.MongoConfig{
	URL:              "mongodb://127.0.0.1:1/",
	Database:         config.DatabaseName,
	SelectionTimeout: 200 * time.Millisecond,
}

func connect(t *testing.T, cfg config.MongoConfig) *Store {
	t.Helper()

	store, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Disconnect(context.Background())
	})
	return store
}

func TestConnect_UnreachableServerDoesNotFail(t *testing.T) {
	store := connect(t, unreachable)

	assert.Equal(t, config.DatabaseName, store.DatabaseName())
	assert.Equal(t, UsersCollection, store.Users().Name())
	assert.Equal(t, TasksCollection, store.Tasks().Name())
}

func TestConnect_InvalidURL(t *testing.T) {
	cfg := unreachable
	cfg.URL = "not-a-mongo-url"

	store, err := Connect(cfg)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestStore_PingUnreachable(t *testing.T) {
	store := connect(t, unreachable)

	start := time.Now()
	err := store.Ping(context.Background())

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second, "ping should give up after the selection timeout")
}

func TestStore_PingLive(t *testing.T) {
	url := os.Getenv("MONGO_TEST_URL")
	if url == "" {
		t.Skip("MONGO_TEST_URL not set")
	}

	store := connect(t, config.MongoConfig{URL: url, Database: "todo_db_test", SelectionTimeout: 5 * time.Second})

	assert.NoError(t, store.Ping(context.Background()))
}
