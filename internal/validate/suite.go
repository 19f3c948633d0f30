package validate

import (
	"fmt"

	"github.com/nsip/otf-grade/internal/freq"
	"github.com/nsip/otf-grade/internal/worksheet"
)

// Fixed channel suite values.
const (
	SuiteRate      = 9.6
	SuiteBandwidth = 100.0
	SuiteItems     = 8
)

// channel suite columns
const (
	suiteRate           = 1
	suiteBandwidth      = 2
	suiteUplinkCenter   = 3
	suiteDownlinkCenter = 4
	suiteColumns        = 5
)

// suiteRow is the fixed identity of one channel suite row.
type suiteRow struct {
	name      string
	increment float64
}

// TDM first, then ALOHA.
var suiteRows = []suiteRow{
	{name: "TDM", increment: 50},
	{name: "ALOHA", increment: 150},
}

//
// Suite checks the 2x5 channel suite table. Each row must carry the fixed
// rate and bandwidth, and center frequencies derived from the channel
// segment start frequencies plus the row's increment. When the segment
// frequencies are unavailable the center frequencies cannot be checked
// and are reported as such; rate and bandwidth are still checked.
//
func Suite(t worksheet.Table, seg SegmentFrequencies) worksheet.SectionResult {
	rec := newRecorder(worksheet.TitleChannelSuite, worksheet.ChannelSuiteHeaders)

	if t.Malformed() {
		rec.malformed(t)
		return rec.result(SuiteItems)
	}

	if t.Len() != len(suiteRows) {
		for r := t.Len(); r < len(suiteRows); r++ {
			rec.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindRowCountMismatch,
				Row:       r + 1,
				UserValue: fmt.Sprint(t.Len()),
				Expected:  fmt.Sprint(len(suiteRows)),
				Message:   fmt.Sprintf("row %d (%s) is missing, the table must have %d rows", r+1, suiteRows[r].name, len(suiteRows)),
			})
		}
		for r := len(suiteRows); r < t.Len(); r++ {
			rec.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindRowCountMismatch,
				Row:       r + 1,
				UserValue: fmt.Sprint(t.Len()),
				Expected:  fmt.Sprint(len(suiteRows)),
				Message:   fmt.Sprintf("row %d is extra, the table must have %d rows", r+1, len(suiteRows)),
			})
		}
	}

	for r, want := range suiteRows {
		if r >= t.Len() {
			break
		}
		row := t.Row(r)
		if len(row) < suiteColumns {
			rec.shortRow(r, len(row), suiteColumns)
			continue
		}

		rec.fixed(row, r, suiteRate, worksheet.FieldRate, want.name, SuiteRate)
		rec.fixed(row, r, suiteBandwidth, worksheet.FieldBandwidth, want.name, SuiteBandwidth)

		centers := []struct {
			col   int
			field string
			base  float64
			from  string
		}{
			{suiteUplinkCenter, worksheet.FieldUplinkCenter, seg.UplinkStart, "channel segment uplink start"},
			{suiteDownlinkCenter, worksheet.FieldDownlinkCenter, seg.DownlinkStart, "channel segment downlink start"},
		}
		for _, c := range centers {
			if !seg.OK {
				rec.add(worksheet.ErrorRecord{
					Kind:      worksheet.KindLogicCheckFailed,
					Row:       r + 1,
					Col:       c.col + 1,
					ColHeader: rec.header(c.col),
					Field:     c.field,
					UserValue: worksheet.Cell(row, c.col),
					Message: fmt.Sprintf("cannot verify %s %s: the channel segment frequencies are missing or invalid",
						want.name, rec.header(c.col)),
				})
				continue
			}
			expected := c.base + want.increment
			rec.fixed(row, r, c.col, c.field, want.name, expected,
				fmt.Sprintf("%s + %s", c.from, freq.Format(want.increment)))
		}
	}

	return rec.result(SuiteItems)
}

//
// fixed records an exact-mismatch when the numeric cell differs from
// expected. An optional derivation explains where expected comes from.
//
func (r *recorder) fixed(row []string, ri, col int, field, rowName string, expected float64, derivation ...string) {
	v, ok := r.number(row, ri, col, field)
	if !ok || freq.Equal(v, expected) {
		return
	}
	msg := fmt.Sprintf("%s %s should be %s", rowName, r.header(col), freq.Format(expected))
	if len(derivation) > 0 {
		msg = fmt.Sprintf("%s %s should be %s (%s)", rowName, r.header(col), freq.Format(expected), derivation[0])
	}
	r.add(worksheet.ErrorRecord{
		Kind:      worksheet.KindExactMismatch,
		Row:       ri + 1,
		Col:       col + 1,
		ColHeader: r.header(col),
		Field:     field,
		UserValue: freq.Format(v),
		Expected:  freq.Format(expected),
		Message:   msg,
	})
}
