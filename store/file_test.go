package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brokerdesk/carrier-sales-api/models"
	"github.com/stretchr/testify/require"
)

func tempCollection(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "records.json")
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	fs := NewFileStore()

	records, err := fs.Load(tempCollection(t))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestLoadMalformedFileReturnsEmpty(t *testing.T) {
	fs := NewFileStore()
	name := tempCollection(t)
	require.NoError(t, os.WriteFile(name, []byte(`{"not": "an array"`), 0o644))

	records, err := fs.Load(name)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFileStore()
	name := tempCollection(t)

	saved := []models.Record{
		{"load_id": "L001", "origin": "Dallas, TX", "miles": float64(780)},
		{"load_id": "L002", "origin": "Austin, TX"},
	}
	require.NoError(t, fs.Save(name, saved))

	loaded, err := fs.Load(name)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "L001", loaded[0].String("load_id"))
	require.Equal(t, float64(780), loaded[0].Float("miles"))
	require.Equal(t, "Austin, TX", loaded[1].String("origin"))
}

func TestSaveTruncatesPriorContents(t *testing.T) {
	fs := NewFileStore()
	name := tempCollection(t)

	require.NoError(t, fs.Save(name, []models.Record{{"id": "a"}, {"id": "b"}, {"id": "c"}}))
	require.NoError(t, fs.Save(name, []models.Record{{"id": "only"}}))

	loaded, err := fs.Load(name)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "only", loaded[0].String("id"))
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	fs := NewFileStore()
	name := tempCollection(t)

	require.NoError(t, fs.Save(name, nil))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))
}

func TestAppend(t *testing.T) {
	fs := NewFileStore()
	name := tempCollection(t)

	require.NoError(t, fs.Append(name, models.Record{"id": "first"}))
	require.NoError(t, fs.Append(name, models.Record{"id": "second"}))

	loaded, err := fs.Load(name)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	require.Equal(t, "first", loaded[0].String("id"))
	require.Equal(t, "second", loaded[1].String("id"))
}

func TestEnsureFile(t *testing.T) {
	fs := NewFileStore()
	name := tempCollection(t)

	require.NoError(t, fs.EnsureFile(name))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	// Existing contents survive a second EnsureFile.
	require.NoError(t, fs.Save(name, []models.Record{{"id": "kept"}}))
	require.NoError(t, fs.EnsureFile(name))

	loaded, err := fs.Load(name)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
}

func TestMemoryStoreMatchesFileStoreContract(t *testing.T) {
	ms := NewMemoryStore()

	records, err := ms.Load("unknown")
	require.NoError(t, err)
	require.Empty(t, records)

	require.NoError(t, ms.Append("calls", models.Record{"id": "a"}))
	require.NoError(t, ms.Append("calls", models.Record{"id": "b"}))

	loaded, err := ms.Load("calls")
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Mutating a loaded record must not leak back into the store.
	loaded[0]["id"] = "mutated"
	again, err := ms.Load("calls")
	require.NoError(t, err)
	require.Equal(t, "a", again[0].String("id"))
}
