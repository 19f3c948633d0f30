package validate

import (
	"strings"
	"testing"

	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subnetRow(bw, dlStart, dlEnd, ulStart, ulEnd string) worksheet.Table {
	return table([]string{"vsn-1", bw, dlStart, dlEnd, ulStart, ulEnd})
}

func TestVirtualSubnetCorrect(t *testing.T) {
	res := VirtualSubnet(subnetRow("895", "10", "20", "30", "40"), "1024", rates1024)
	assert.Equal(t, 0, res.Count())
	assert.Equal(t, VirtualSubnetItems, res.Items)
}

func TestVirtualSubnetChecks(t *testing.T) {
	tests := []struct {
		name  string
		tbl   worksheet.Table
		rate  string
		rates *ratetable.Table
		want  map[worksheet.Kind]int
	}{
		{
			name:  "overlap",
			tbl:   subnetRow("895", "10", "30", "20", "40"),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindIntervalOverlap: 1},
		},
		{
			name:  "inverted downlink",
			tbl:   subnetRow("895", "20", "10", "30", "40"),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindOrderingViolation: 1},
		},
		{
			name:  "both bands inverted",
			tbl:   subnetRow("895", "20", "10", "40", "30"),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindOrderingViolation: 2},
		},
		{
			name:  "bandwidth too low",
			tbl:   subnetRow("894", "10", "20", "30", "40"),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindBandwidthTooLow: 1},
		},
		{
			name:  "no rate selected",
			tbl:   subnetRow("1", "10", "30", "20", "40"),
			rate:  " ",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindLogicCheckFailed: 1, worksheet.KindIntervalOverlap: 1},
		},
		{
			name:  "rate not a number",
			tbl:   subnetRow("895", "10", "20", "30", "40"),
			rate:  "fast",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindNonNumericValue: 1},
		},
		{
			name:  "rate table failed",
			tbl:   subnetRow("1", "10", "20", "30", "40"),
			rate:  "1024",
			rates: ratetable.Failed("gone"),
			want:  map[worksheet.Kind]int{worksheet.KindConfigMissing: 1},
		},
		{
			name:  "extra row",
			tbl:   table([]string{"vsn-1", "895", "10", "20", "30", "40"}, []string{"vsn-2"}),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindRowCountMismatch: 1},
		},
		{
			name:  "short row",
			tbl:   table([]string{"vsn-1", "895"}),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindColumnCountMismatch: 1},
		},
		{
			name:  "no rows",
			tbl:   table(),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindRowCountMismatch: 1},
		},
		{
			name:  "malformed",
			tbl:   worksheet.MalformedTable("bad"),
			rate:  "1024",
			rates: rates1024,
			want:  map[worksheet.Kind]int{worksheet.KindMalformedTable: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := VirtualSubnet(tt.tbl, tt.rate, tt.rates)
			assert.Equal(t, tt.want, kinds(res))
			for _, rec := range res.Records {
				assert.Equal(t, worksheet.TitleVirtualSubnet, rec.Section)
			}
		})
	}
}

func TestVirtualSubnetBandwidthRecord(t *testing.T) {
	res := VirtualSubnet(subnetRow("894", "10", "20", "30", "40"), "1024", rates1024)
	require.Equal(t, 1, res.Count())
	rec := res.Records[0]
	assert.Equal(t, "895", rec.Expected)
	assert.Equal(t, worksheet.FieldBandwidth, rec.Field)
	assert.Equal(t, 2, rec.Col)
}

func TestVirtualSubnetRateTableWarnings(t *testing.T) {
	rates := ratetable.Parse(strings.NewReader("1024:895\nbad\n"))

	res := VirtualSubnet(subnetRow("895", "10", "20", "30", "40"), "1024", rates)
	assert.Equal(t, map[worksheet.Kind]int{worksheet.KindConfigMissing: 1}, kinds(res))

	res = VirtualSubnet(subnetRow("894", "10", "20", "30", "40"), "1024", rates)
	assert.Equal(t, map[worksheet.Kind]int{worksheet.KindConfigMissing: 1, worksheet.KindBandwidthTooLow: 1}, kinds(res))

	res = VirtualSubnet(subnetRow("895", "10", "20", "30", "40"), "", rates)
	assert.Equal(t, map[worksheet.Kind]int{worksheet.KindConfigMissing: 1, worksheet.KindLogicCheckFailed: 1}, kinds(res))
}
