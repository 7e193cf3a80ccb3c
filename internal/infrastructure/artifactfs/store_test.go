package artifactfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/artifact"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func testKey() artifact.Key {
	return artifact.Key{
		DocumentType:  artifact.TypeInvoice,
		Year:          2026,
		Month:         3,
		InvoiceNumber: "INV-2026-00001",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	content := []byte("<html><body>Invoice INV-2026-00001</body></html>")
	path, err := store.Save(ctx, testKey(), content)
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	loaded, err := store.Load(ctx, testKey())
	require.NoError(t, err)
	assert.Equal(t, content, loaded)
}

func TestSaveLastWriteWins(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, testKey(), []byte("first"))
	require.NoError(t, err)
	_, err = store.Save(ctx, testKey(), []byte("second"))
	require.NoError(t, err)

	loaded, err := store.Load(ctx, testKey())
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), loaded)
}

func TestLoadMissingIsNotFound(t *testing.T) {
	store := newStore(t)

	_, err := store.Load(context.Background(), testKey())
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, testKey(), []byte("content"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, testKey()))

	_, err = store.Load(ctx, testKey())
	assert.True(t, apperror.IsNotFound(err))

	// deleting again reports the absence
	err = store.Delete(ctx, testKey())
	assert.True(t, apperror.IsNotFound(err))
}

func TestPartitionLayout(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), testKey(), []byte("x"))
	require.NoError(t, err)

	want := filepath.Join(dir, "invoice", "2026", "03", "INV-2026-00001.html.gz")
	assert.Equal(t, want, path)

	_, err = os.Stat(want)
	assert.NoError(t, err)
}

func TestNumberSanitization(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	key := testKey()
	key.InvoiceNumber = `FA/2026\01`

	path, err := store.Save(ctx, key, []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "invoice", "2026", "03", "FA-2026-01.html.gz"), path)

	// the sanitized path still loads through the original key
	loaded, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), loaded)
}

func TestKeyValidation(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	bad := testKey()
	bad.Month = 13
	_, err := store.Save(ctx, bad, []byte("x"))
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))

	bad = testKey()
	bad.InvoiceNumber = "  "
	_, err = store.Load(ctx, bad)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestStoredFileIsCompressed(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	content := []byte("<html>payload</html>")
	path, err := store.Save(context.Background(), testKey(), content)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	// gzip magic bytes, not the raw payload
	require.GreaterOrEqual(t, len(raw), 2)
	assert.Equal(t, byte(0x1f), raw[0])
	assert.Equal(t, byte(0x8b), raw[1])
	assert.NotEqual(t, content, raw)
}
