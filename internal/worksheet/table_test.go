package worksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseTable(t *testing.T) {
	tests := []struct {
		name string
		json string
		want [][]string
	}{
		{
			name: "list of lists",
			json: `[["a", 12.25, null, true], ["b"]]`,
			want: [][]string{{"a", "12.25", "", "true"}, {"b"}},
		},
		{
			name: "tabular object",
			json: `{"headers": ["x", "y"], "data": [["1", "2"]]}`,
			want: [][]string{{"1", "2"}},
		},
		{
			name: "empty",
			json: `[]`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := ParseTable(gjson.Parse(tt.json))
			require.False(t, tbl.Malformed(), tbl.Reason())
			assert.Equal(t, tt.want, tbl.Rows())
			assert.Equal(t, len(tt.want), tbl.Len())
		})
	}
}

func TestParseTableMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"scalar", `"12.25"`},
		{"object without data", `{"headers": ["x"]}`},
		{"row not a list", `[1, 2]`},
		{"nested cell", `[[{"a": 1}]]`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := ParseTable(gjson.Parse(tt.json))
			assert.True(t, tbl.Malformed())
			assert.NotEmpty(t, tbl.Reason())
			assert.Equal(t, 0, tbl.Len())
		})
	}

	missing := ParseTable(gjson.Parse(`{}`).Get("channelSegment"))
	assert.True(t, missing.Malformed())
	assert.Equal(t, "table is missing", missing.Reason())
}

func TestRowAndCell(t *testing.T) {
	tbl := NewTable([][]string{{" 12.25 ", "x"}})
	assert.Nil(t, tbl.Row(-1))
	assert.Nil(t, tbl.Row(1))
	assert.Equal(t, "12.25", Cell(tbl.Row(0), 0))
	assert.Equal(t, "", Cell(tbl.Row(0), 5))
	assert.Equal(t, "", Cell(nil, 0))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "Downlink start", Header(ChannelSegmentHeaders, 1))
	assert.Equal(t, "column 9", Header(ChannelSegmentHeaders, 8))
}

func TestSectionResultCount(t *testing.T) {
	res := SectionResult{Records: []ErrorRecord{{Kind: KindDuplicateValue}, {Kind: KindRangeViolation}}}
	assert.Equal(t, 2, res.Count())
	assert.Equal(t, 0, SectionResult{}.Count())
}
