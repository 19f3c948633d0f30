package ratetable

import (
	"bytes"
	"net/http"
	"os"
	"strings"
	"sync/atomic"

	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-grade/internal/util"
	"github.com/pkg/errors"
)

//
// Load reads the table from source: an http(s) url, a local file path,
// or the compiled-in table when source is empty. Load never returns
// nil; a source that cannot be read gives a failed table.
//
func Load(source string) *Table {
	if source == "" {
		return Default()
	}

	data, err := read(source)
	if err != nil {
		log.Warnf("rate table: %s", err)
		return Failed(err.Error())
	}

	t := Parse(bytes.NewReader(data))
	for _, w := range t.Warnings() {
		log.Warnf("rate table %s: %s", source, w)
	}
	if t.Failed() {
		log.Warnf("rate table %s: %s", source, t.failure)
	}
	return t
}

func read(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err := util.Fetch(http.MethodGet, source, map[string]string{"Accept": "text/plain"}, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot fetch rate/bandwidth table from %s", source)
		}
		return data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("rate/bandwidth table %s does not exist", source)
		}
		return nil, errors.Wrapf(err, "cannot read rate/bandwidth table %s", source)
	}
	return data, nil
}

//
// Store holds the current table. Reload replaces the table wholesale so
// readers only ever see a complete table; the last reload wins.
//
type Store struct {
	source  string
	current atomic.Value
}

// NewStore creates a store for source and loads it once.
func NewStore(source string) *Store {
	s := &Store{source: source}
	s.current.Store(Load(source))
	return s
}

// Fixed creates a store that always serves t, Reload is a no-op.
func Fixed(t *Table) *Store {
	s := &Store{}
	s.current.Store(t)
	return s
}

// Reload re-reads the source and swaps it in. Stores without a
// source keep their table.
func (s *Store) Reload() *Table {
	if s.source == "" {
		return s.Current()
	}
	t := Load(s.source)
	s.current.Store(t)
	return t
}

// Current returns the table in use.
func (s *Store) Current() *Table {
	t, _ := s.current.Load().(*Table)
	return t
}

// Source is where the table is loaded from, empty for compiled-in tables.
func (s *Store) Source() string {
	return s.source
}
