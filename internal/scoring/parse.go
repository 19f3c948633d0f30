package scoring

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// ParseTallies reads section counts sent by a client, either as
// [[title, count], ...] pairs or as [{"title", "count", "items"}, ...].
// A count that is not a whole number (e.g. a "parse failed" marker)
// gives a failed tally.
//
func ParseTallies(v gjson.Result) ([]Tally, error) {
	if !v.IsArray() {
		return nil, errors.New("counts must be a list")
	}
	tallies := []Tally{}
	for i, entry := range v.Array() {
		var title, count, items gjson.Result
		switch {
		case entry.IsArray():
			pair := entry.Array()
			if len(pair) < 2 {
				return nil, errors.Errorf("count %d must be a [title, count] pair", i+1)
			}
			title, count = pair[0], pair[1]
		case entry.IsObject():
			title, count, items = entry.Get("title"), entry.Get("count"), entry.Get("items")
		default:
			return nil, errors.Errorf("count %d must be a pair or an object", i+1)
		}
		if title.Type != gjson.String || title.Str == "" {
			return nil, errors.Errorf("count %d has no section title", i+1)
		}

		t := Tally{Title: title.Str}
		if count.Type == gjson.Number && count.Num >= 0 && count.Num == math.Trunc(count.Num) {
			t.Errors = int(count.Num)
		} else {
			t.Failed = true
		}
		if items.Type == gjson.Number && items.Num > 0 {
			t.Items = int(items.Num)
		}
		tallies = append(tallies, t)
	}
	return tallies, nil
}
