package ratetable

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	tbl := Load("")
	assert.False(t, tbl.Failed())
	assert.Equal(t, Default().Len(), tbl.Len())
}

func TestLoadMissingFile(t *testing.T) {
	tbl := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, tbl.Failed())
	assert.Contains(t, tbl.Problem(), "does not exist")
}

func TestLoadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "# shared table")
		fmt.Fprintln(w, "512:560")
	}))
	defer srv.Close()

	tbl := Load(srv.URL)
	require.False(t, tbl.Failed())
	bw, ok := tbl.Lookup(512)
	assert.True(t, ok)
	assert.Equal(t, 560, bw)
}

func TestLoadURLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	tbl := Load(srv.URL)
	assert.True(t, tbl.Failed())
	assert.Contains(t, tbl.Problem(), "cannot fetch")
}

func TestStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.txt")
	require.NoError(t, os.WriteFile(path, []byte("1024:895\n"), 0o644))

	s := NewStore(path)
	assert.Equal(t, path, s.Source())
	bw, ok := s.Current().Lookup(1024)
	require.True(t, ok)
	assert.Equal(t, 895, bw)

	require.NoError(t, os.WriteFile(path, []byte("1024:900\n2048:1790\n"), 0o644))
	reloaded := s.Reload()
	assert.Same(t, reloaded, s.Current())
	bw, _ = s.Current().Lookup(1024)
	assert.Equal(t, 900, bw)
	assert.Equal(t, 2, s.Current().Len())

	require.NoError(t, os.Remove(path))
	assert.True(t, s.Reload().Failed())
}

func TestFixedStore(t *testing.T) {
	tbl := New(map[int]int{16: 24})
	s := Fixed(tbl)
	assert.Same(t, tbl, s.Reload())
	assert.Equal(t, "", s.Source())
}
