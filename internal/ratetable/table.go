//
// Package ratetable maps a transmission rate (kbps) to the minimum
// bandwidth (kHz) a channel carrying it must be given.
//
package ratetable

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//
// Table is an immutable rate -> minimum bandwidth mapping together with
// the outcome of loading it. A failed table has no usable entries and
// every rate/bandwidth check depending on it is reported as a missing
// configuration instead.
//
type Table struct {
	entries  map[int]int
	warnings []string
	failure  string
}

// compiled-in mapping used when no resource is configured
var defaultEntries = map[int]int{
	16:   24,
	32:   42,
	64:   80,
	128:  150,
	256:  300,
	512:  560,
	1024: 895,
	2048: 1790,
}

// Default returns the compiled-in table.
func Default() *Table {
	return New(defaultEntries)
}

// New builds a table from a fixed mapping.
func New(entries map[int]int) *Table {
	t := &Table{entries: make(map[int]int, len(entries))}
	for rate, bw := range entries {
		t.entries[rate] = bw
	}
	if len(t.entries) == 0 {
		t.failure = "rate/bandwidth table is empty"
	}
	return t
}

// Failed returns a table that could not be loaded at all.
func Failed(reason string) *Table {
	return &Table{failure: reason}
}

//
// Parse reads `rate:bandwidth` lines. Blank lines and lines starting with
// '#' are skipped, malformed lines are recorded as warnings and skipped.
// A resource yielding no entries produces a failed table.
//
func Parse(r io.Reader) *Table {
	t := &Table{entries: map[int]int{}}

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rate, bw, err := parseLine(line)
		if err != nil {
			t.warnings = append(t.warnings, fmt.Sprintf("line %d %q skipped: %s, expected rate:bandwidth (e.g. 32:42)", n, line, err))
			continue
		}
		t.entries[rate] = bw
	}
	if err := scanner.Err(); err != nil {
		return Failed(fmt.Sprintf("cannot read rate/bandwidth table: %s", err))
	}

	if len(t.entries) == 0 {
		t.failure = "rate/bandwidth table is empty or holds no valid entries"
	}
	return t
}

func parseLine(line string) (int, int, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return 0, 0, errors.New("wrong number of fields")
	}
	rate, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.New("rate is not an integer")
	}
	bw, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.New("bandwidth is not an integer")
	}
	if rate <= 0 || bw <= 0 {
		return 0, 0, errors.New("values must be positive")
	}
	return rate, bw, nil
}

// Lookup returns the minimum bandwidth for rate.
func (t *Table) Lookup(rate int) (int, bool) {
	if t == nil || t.failure != "" {
		return 0, false
	}
	bw, ok := t.entries[rate]
	return bw, ok
}

// Failed reports whether the table is unusable.
func (t *Table) Failed() bool {
	return t == nil || t.failure != ""
}

// Warned reports whether a usable table was loaded with skipped lines.
func (t *Table) Warned() bool {
	return !t.Failed() && len(t.warnings) > 0
}

// Warnings lists the lines skipped while parsing.
func (t *Table) Warnings() []string {
	if t == nil {
		return nil
	}
	return t.warnings
}

//
// Problem is the load message surfaced to users: the failure reason
// followed by any parse warnings.
//
func (t *Table) Problem() string {
	if t == nil {
		return "rate/bandwidth table is not loaded"
	}
	msgs := []string{}
	if t.failure != "" {
		msgs = append(msgs, t.failure)
	}
	msgs = append(msgs, t.warnings...)
	return strings.Join(msgs, "; ")
}

// Rates lists the known rates in ascending order.
func (t *Table) Rates() []int {
	if t.Failed() {
		return nil
	}
	rates := make([]int, 0, len(t.entries))
	for r := range t.entries {
		rates = append(rates, r)
	}
	sort.Ints(rates)
	return rates
}

// Len is the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
