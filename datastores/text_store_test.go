package datastores

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/VictoriaMetrics/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTextStore(t *testing.T, store TextStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		assert.False(t, store.Exists(ctx, "absent.json"))
		_, err := store.ReadAllText(ctx, "absent.json")
		require.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("write then read", func(t *testing.T) {
		require.NoError(t, store.WriteAllText(ctx, "blob.json", `[{"id":1}]`))
		assert.True(t, store.Exists(ctx, "blob.json"))
		text, err := store.ReadAllText(ctx, "blob.json")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":1}]`, text)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.WriteAllText(ctx, "blob.json", "first, and longer"))
		require.NoError(t, store.WriteAllText(ctx, "blob.json", "second"))
		text, err := store.ReadAllText(ctx, "blob.json")
		require.NoError(t, err)
		assert.Equal(t, "second", text)
	})

	t.Run("empty text", func(t *testing.T) {
		require.NoError(t, store.WriteAllText(ctx, "empty.json", ""))
		assert.True(t, store.Exists(ctx, "empty.json"))
		text, err := store.ReadAllText(ctx, "empty.json")
		require.NoError(t, err)
		assert.Empty(t, text)
	})
}

func TestTextInmem(t *testing.T) {
	testTextStore(t, NewTextInmem())

	store := NewTextInmem("seed.json", "[]")
	text, err := store.ReadAllText(context.Background(), "seed.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", text)

	var zero TextInmem
	require.NoError(t, zero.WriteAllText(context.Background(), "x", "y"))
}

func TestTextFiles(t *testing.T) {
	root := t.TempDir()
	testTextStore(t, &TextFiles{Root: root})

	b, err := os.ReadFile(filepath.Join(root, "blob.json"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}

func TestTextFilesStaysInRoot(t *testing.T) {
	root := t.TempDir()
	store := &TextFiles{Root: filepath.Join(root, "inner")}
	require.NoError(t, os.Mkdir(store.Root, 0o700))

	require.NoError(t, store.WriteAllText(context.Background(), "../escape.json", "x"))
	assert.NoFileExists(t, filepath.Join(root, "escape.json"))
	assert.FileExists(t, filepath.Join(store.Root, "escape.json"))
}

func TestTextFilesWriteFailure(t *testing.T) {
	store := &TextFiles{Root: filepath.Join(t.TempDir(), "missing")}
	err := store.WriteAllText(context.Background(), "blob.json", "x")
	require.ErrorIs(t, err, ErrIO)
}

func TestTextFilesDirectoryIsNotABlob(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir.json"), 0o700))
	assert.False(t, (&TextFiles{Root: root}).Exists(context.Background(), "dir.json"))
}

func TestTextSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contacts.db")

	store, err := OpenTextSQLite(ctx, path)
	require.NoError(t, err)
	testTextStore(t, store)
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Close())

	reopened, err := OpenTextSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })
	text, err := reopened.ReadAllText(ctx, "blob.json")
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestOpenTextSQLiteRequiresPath(t *testing.T) {
	_, err := OpenTextSQLite(context.Background(), "  ")
	require.Error(t, err)
}

func TestTextRedis(t *testing.T) {
	addr := os.Getenv("SERVICE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("SERVICE_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	prefix := "contacts-test:" + strings.ReplaceAll(t.Name(), "/", "-") + ":"
	store := &TextRedis{Client: client, Prefix: prefix}
	require.NoError(t, store.Ping(context.Background()))
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})
	testTextStore(t, store)
}

func TestTextMetered(t *testing.T) {
	set := metrics.NewSet()
	testTextStore(t, NewTextMetered(NewTextInmem(), set))

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	out := buf.String()
	assert.Contains(t, out, `datastore_operations_total{op="write",result="ok"}`)
	assert.Contains(t, out, `datastore_operations_total{op="read",result="error"}`)
	assert.Contains(t, out, `datastore_operation_duration_seconds_bucket{op="exists"`)
}
