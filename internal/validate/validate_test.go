package validate

import (
	"testing"

	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(rows ...[]string) worksheet.Table {
	return worksheet.NewTable(rows)
}

// kinds counts the records of each kind.
func kinds(res worksheet.SectionResult) map[worksheet.Kind]int {
	n := map[worksheet.Kind]int{}
	for _, r := range res.Records {
		n[r.Kind]++
	}
	return n
}

func TestNetworkAnalysisDuplicates(t *testing.T) {
	tbl := table(
		[]string{"unit-1", "fixed", "10.0.0.1", "A"},
		[]string{"unit-2", "fixed", "10.0.0.2", "B"},
		[]string{"unit-3", "fixed", "10.0.0.3", " A "},
		[]string{"unit-4", "fixed", "10.0.0.4", ""},
		[]string{"unit-5", "fixed", "10.0.0.5", ""},
		[]string{"unit-6", "fixed", "10.0.0.6", "A"},
	)

	res := NetworkAnalysis(tbl)
	require.Equal(t, 2, res.Count())
	assert.Equal(t, 6, res.Items)
	for i, row := range []int{3, 6} {
		rec := res.Records[i]
		assert.Equal(t, worksheet.KindDuplicateValue, rec.Kind)
		assert.Equal(t, row, rec.Row)
		assert.Equal(t, 4, rec.Col)
		assert.Equal(t, "CC address", rec.ColHeader)
		assert.Equal(t, worksheet.FieldCCAddress, rec.Field)
		assert.Equal(t, worksheet.TitleNetworkAnalysis, rec.Section)
		assert.Equal(t, "A", rec.UserValue)
	}
}

func TestNetworkAnalysisShape(t *testing.T) {
	res := NetworkAnalysis(table([]string{"unit-1", "fixed"}, []string{"u", "f", "a", "X"}))
	require.Equal(t, 1, res.Count())
	assert.Equal(t, worksheet.KindColumnCountMismatch, res.Records[0].Kind)
	assert.Equal(t, 1, res.Records[0].Row)

	res = NetworkAnalysis(worksheet.MalformedTable("table is missing"))
	require.Equal(t, 1, res.Count())
	assert.Equal(t, worksheet.KindMalformedTable, res.Records[0].Kind)

	assert.Equal(t, 0, NetworkAnalysis(table()).Count())
}

func TestAddressingNeverGraded(t *testing.T) {
	res := Addressing("", "anything")
	assert.Equal(t, 0, res.Count())
	assert.Equal(t, worksheet.TitleAddressing, res.Title)
}

func TestValidatorsNeverPanic(t *testing.T) {
	tables := []worksheet.Table{
		worksheet.MalformedTable("bad"),
		table(),
		table([]string{}),
		table(nil, nil, nil),
		table([]string{"x"}),
		table([]string{"a", "b", "c", "d", "e", "f", "g", "h"}),
		table([]string{"", "", "", "", "", "", ""}, []string{"1"}, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}),
		table([]string{"n", "NaN", "Inf", "-1", "1e400", "0x10", "99"}),
	}
	rates := []*ratetable.Table{ratetable.Default(), ratetable.Failed("gone"), nil}

	for _, tbl := range tables {
		for _, rt := range rates {
			assert.NotPanics(t, func() {
				for _, mode := range []string{"uu", "aa", "", "zz"} {
					res, seg := Segment(tbl, mode)
					assert.GreaterOrEqual(t, res.Count(), 0)
					Suite(tbl, seg)
				}
				NetworkAnalysis(tbl)
				PointToPoint(tbl, rt)
				VirtualSubnet(tbl, "1024", rt)
				VirtualSubnet(tbl, "", rt)
				VirtualSubnet(tbl, "fast", rt)
			})
		}
	}
}
