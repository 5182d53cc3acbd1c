package jsonfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Values []int `json:"values"`
}

func TestOpen_CreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.json")

	col, err := Open[testDoc](path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"values": null}`, string(raw))

	err = col.View(func(doc *testDoc) error {
		assert.Empty(t, doc.Values)
		return nil
	})
	assert.NoError(t, err)
}

func TestOpen_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Open[testDoc](path)
	assert.Error(t, err)
}

func TestUpdate_PersistsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	col, err := Open[testDoc](path)
	require.NoError(t, err)

	err = col.Update(func(doc *testDoc) error {
		doc.Values = append(doc.Values, 1, 2, 3)
		return nil
	})
	require.NoError(t, err)

	// A second collection on the same path sees the write: every read
	// goes back to disk.
	col2, err := Open[testDoc](path)
	require.NoError(t, err)
	err = col2.View(func(doc *testDoc) error {
		assert.Equal(t, []int{1, 2, 3}, doc.Values)
		return nil
	})
	assert.NoError(t, err)
}

func TestUpdate_ErrorLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	col, err := Open[testDoc](path)
	require.NoError(t, err)
	require.NoError(t, col.Update(func(doc *testDoc) error {
		doc.Values = []int{42}
		return nil
	}))

	wantErr := assert.AnError
	err = col.Update(func(doc *testDoc) error {
		doc.Values = nil
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	err = col.View(func(doc *testDoc) error {
		assert.Equal(t, []int{42}, doc.Values)
		return nil
	})
	assert.NoError(t, err)
}

func TestUpdate_ConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")

	col, err := Open[testDoc](path)
	require.NoError(t, err)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = col.Update(func(doc *testDoc) error {
				doc.Values = append(doc.Values, n)
				return nil
			})
		}(i)
	}
	wg.Wait()

	err = col.View(func(doc *testDoc) error {
		assert.Len(t, doc.Values, writers)
		return nil
	})
	assert.NoError(t, err)
}
