//
// Package advice maps error records to study recommendations.
//
package advice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nsip/otf-grade/internal/scoring"
	"github.com/nsip/otf-grade/internal/worksheet"
)

// HintBandwidthRate marks bandwidth records whose message reports a
// bandwidth below the rate's requirement.
const HintBandwidthRate = "bandwidth-rate"

// Key identifies a recommendation. Empty Section or Hint match any.
type Key struct {
	Section string
	Kind    worksheet.Kind
	Hint    string
}

// Engine resolves recommendations from a lookup table.
type Engine struct {
	table map[Key]string
}

// New creates an engine over table, the built-in table when nil.
func New(table map[Key]string) *Engine {
	if table == nil {
		table = recommendations
	}
	return &Engine{table: table}
}

//
// Recommend returns the most specific recommendation for rec:
// (section, kind, hint), then (section, kind), then (kind), then a
// generic text built from the record itself.
//
func (e *Engine) Recommend(rec worksheet.ErrorRecord) string {
	hint := Hint(rec)
	for _, k := range []Key{
		{Section: rec.Section, Kind: rec.Kind, Hint: hint},
		{Section: rec.Section, Kind: rec.Kind},
		{Kind: rec.Kind},
	} {
		if msg, ok := e.table[k]; ok {
			return msg
		}
	}
	return fmt.Sprintf("Review the topics behind the %q error in %s: %s", rec.Kind, rec.Section, rec.Message)
}

// keywords found in record messages, checked before the record's field
var keywords = []struct {
	substr string
	hint   string
}{
	{"below required", HintBandwidthRate},
	{"小于速率", HintBandwidthRate},
}

//
// Hint derives the detail hint of a record: a message keyword, else the
// record's field, else its column header.
//
func Hint(rec worksheet.ErrorRecord) string {
	for _, kw := range keywords {
		if strings.Contains(rec.Message, kw.substr) {
			return kw.hint
		}
	}
	if rec.Field != "" {
		return rec.Field
	}
	return rec.ColHeader
}

// Topic is one capability with the recommendations for its errors.
type Topic struct {
	Capability      string   `json:"capability"`
	Recommendations []string `json:"recommendations"`
}

//
// Route groups the unique recommendations of records by capability,
// giving a study route ordered by capability name.
//
func (e *Engine) Route(records []worksheet.ErrorRecord) []Topic {
	capability := map[string]string{}
	for _, d := range scoring.Dimensions {
		capability[d.Section] = d.Name
	}

	grouped := map[string]map[string]bool{}
	for _, rec := range records {
		name, ok := capability[rec.Section]
		if !ok {
			name = rec.Section
		}
		if grouped[name] == nil {
			grouped[name] = map[string]bool{}
		}
		grouped[name][e.Recommend(rec)] = true
	}

	topics := make([]Topic, 0, len(grouped))
	for name, recs := range grouped {
		t := Topic{Capability: name}
		for r := range recs {
			t.Recommendations = append(t.Recommendations, r)
		}
		sort.Strings(t.Recommendations)
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Capability < topics[j].Capability })
	return topics
}
