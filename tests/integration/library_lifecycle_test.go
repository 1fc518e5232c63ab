// Integration tests for the full catalog lifecycle against a real library
// file: add, list, search, status updates, removal, and the canonical
// rewrite, including recovery from missing and corrupt files.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booklane/shelf/internal/jsonfile"
	"github.com/booklane/shelf/pkg/types"
)

// newLibrary returns a store backed by a library file in a fresh temp dir.
func newLibrary(t *testing.T) *jsonfile.Store {
	t.Helper()
	return jsonfile.New(filepath.Join(t.TempDir(), "library.json"))
}

func TestLibraryLifecycle_AddListRemove(t *testing.T) {
	store := newLibrary(t)

	war, err := store.Add("War and Peace", "Leo Tolstoy", 1869)
	require.NoError(t, err)
	assert.Equal(t, 1, war.ID)
	assert.Equal(t, types.StatusAvailable, war.Status)

	anna, err := store.Add("Anna Karenina", "Leo Tolstoy", 1878)
	require.NoError(t, err)
	assert.Equal(t, 2, anna.ID)

	books, err := store.List()
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, []types.Book{war, anna}, books)

	ok, err := store.Remove(war.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	books, err = store.List()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, anna, books[0])
}

func TestLibraryLifecycle_IDsContinueAfterRemoval(t *testing.T) {
	store := newLibrary(t)

	for _, title := range []string{"A", "B", "C"} {
		_, err := store.Add(title, "Author", 2000)
		require.NoError(t, err)
	}

	// Removing the middle book leaves ids {1, 3}; the next id continues
	// from the maximum.
	ok, err := store.Remove(2)
	require.NoError(t, err)
	require.True(t, ok)

	d, err := store.Add("D", "Author", 2003)
	require.NoError(t, err)
	assert.Equal(t, 4, d.ID)
}

func TestLibraryLifecycle_CheckoutAndReturn(t *testing.T) {
	store := newLibrary(t)

	b, err := store.Add("Solaris", "Stanislaw Lem", 1961)
	require.NoError(t, err)

	ok, err := store.UpdateStatus(b.ID, "checked_out")
	require.NoError(t, err)
	require.True(t, ok)

	// The change is persisted, not just in memory: a fresh store sees it.
	reopened := jsonfile.New(store.Path())
	books, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, types.StatusCheckedOut, books[0].Status)

	ok, err = reopened.UpdateStatus(b.ID, "available")
	require.NoError(t, err)
	require.True(t, ok)

	books, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, types.StatusAvailable, books[0].Status)
}

func TestLibraryLifecycle_SearchAcrossPersistedCatalog(t *testing.T) {
	store := newLibrary(t)

	_, err := store.Add("War and Peace", "Leo Tolstoy", 1869)
	require.NoError(t, err)
	_, err = store.Add("The War of the Worlds", "H. G. Wells", 1898)
	require.NoError(t, err)
	_, err = store.Add("Anna Karenina", "Leo Tolstoy", 1878)
	require.NoError(t, err)

	results, err := store.Search(jsonfile.Query{Title: "war", Author: "tol"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "War and Peace", results[0].Title)

	results, err = store.Search(jsonfile.Query{Year: 1898})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The War of the Worlds", results[0].Title)
}

func TestLibraryLifecycle_CorruptFileRecoversAsEmpty(t *testing.T) {
	store := newLibrary(t)

	_, err := store.Add("Dune", "Frank Herbert", 1965)
	require.NoError(t, err)

	// Clobber the file with garbage; the store recovers as an empty library.
	require.NoError(t, os.WriteFile(store.Path(), []byte("###"), 0o644))

	books, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, books)

	// The next add starts the catalog over from id 1.
	b, err := store.Add("Dune Messiah", "Frank Herbert", 1969)
	require.NoError(t, err)
	assert.Equal(t, 1, b.ID)
}

func TestLibraryLifecycle_CanonicalRewrite(t *testing.T) {
	store := newLibrary(t)

	_, err := store.Add("Dune", "Frank Herbert", 1965)
	require.NoError(t, err)

	// A load+save round-trip leaves the file byte-identical: the encoding
	// is canonical.
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	books, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(books))

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
