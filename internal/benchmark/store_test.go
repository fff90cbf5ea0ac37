package benchmark

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "history", "reports.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	// Test LoadAll on empty
	reports, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, reports)

	_, err = store.LoadLatest("")
	assert.ErrorIs(t, err, ErrReportNotFound)

	// Test Save
	r1 := Report{
		ID:         "abc",
		Dataset:    "random",
		CreatedAt:  time.Now().Add(-1 * time.Hour),
		Algorithms: []string{"str_quick"},
		Rows:       []Row{{N: 100, Cells: []Measurement{{Elapsed: time.Millisecond, Comparisons: 42}}}},
	}
	require.NoError(t, store.Save(r1))

	latest, err := store.LoadLatest("")
	require.NoError(t, err)
	assert.Equal(t, "abc", latest.ID)
	assert.Equal(t, uint64(42), latest.Rows[0].Cells[0].Comparisons)
	assert.Equal(t, time.Millisecond, latest.Rows[0].Cells[0].Elapsed)

	// Test Save second run
	r2 := Report{
		ID:        "def",
		Dataset:   "reversed",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(r2))

	// Verify persistence and order
	reports, err = store.LoadAll()
	require.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, "abc", reports[0].ID)
	assert.Equal(t, "def", reports[1].ID)

	latest, err = store.LoadLatest("random")
	require.NoError(t, err)
	assert.Equal(t, "abc", latest.ID)

	got, err := store.Load("def")
	require.NoError(t, err)
	assert.Equal(t, "reversed", got.Dataset)

	_, err = store.Load("missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
}
