package validate

import (
	"fmt"

	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/worksheet"
)

// PointToPointItems is two checks (ordering, bandwidth) on each of the two rows.
const PointToPointItems = 4

// point-to-point columns
const (
	p2pRate          = 1
	p2pBandwidth     = 2
	p2pDownlinkStart = 3
	p2pUplinkEnd     = 6
	p2pColumns       = 7
)

var p2pRows = []string{"send", "receive"}

//
// PointToPoint checks the send and receive rows: the uplink end must not
// exceed the downlink start and the bandwidth must cover the rate.
// Every missing or extra row costs both of its checks.
//
func PointToPoint(t worksheet.Table, rates *ratetable.Table) worksheet.SectionResult {
	rec := newRecorder(worksheet.TitlePointToPoint, worksheet.PointToPointHeaders)
	checkBandwidth := !rates.Failed()

	if t.Malformed() {
		rec.malformed(t)
	} else {
		rec.rowCount(t.Len(), p2pRows, []string{"frequency ordering", "bandwidth"})

		for r := 0; r < t.Len() && r < len(p2pRows); r++ {
			row := t.Row(r)
			if len(row) < p2pColumns {
				rec.shortRow(r, len(row), p2pColumns)
				continue
			}

			dlStart, dlOK := rec.number(row, r, p2pDownlinkStart, worksheet.FieldDownlinkStart)
			ulEnd, ulOK := rec.number(row, r, p2pUplinkEnd, worksheet.FieldUplinkEnd)
			if dlOK && ulOK {
				rec.ordering(r, p2pDownlinkStart, p2pUplinkEnd, dlStart, ulEnd)
			}

			if checkBandwidth {
				rec.bandwidth(rates, bandwidthCell{
					row:          r,
					rate:         worksheet.Cell(row, p2pRate),
					rateCol:      p2pRate,
					rateLabel:    rec.header(p2pRate),
					bandwidth:    worksheet.Cell(row, p2pBandwidth),
					bandwidthCol: p2pBandwidth,
				})
			}
		}
	}

	if !checkBandwidth || rates.Warned() {
		rec.configMissing(rates)
	}

	return rec.result(PointToPointItems)
}

//
// rowCount records one row-count-mismatch per check of every missing
// or extra row. names labels the expected rows.
//
func (r *recorder) rowCount(have int, names []string, checks []string) {
	want := len(names)
	for i := have; i < want; i++ {
		for _, check := range checks {
			r.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindRowCountMismatch,
				Row:       i + 1,
				UserValue: fmt.Sprint(have),
				Expected:  fmt.Sprint(want),
				Message:   fmt.Sprintf("row %d (%s) is missing, its %s was not checked", i+1, names[i], check),
			})
		}
	}
	for i := want; i < have; i++ {
		for range checks {
			r.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindRowCountMismatch,
				Row:       i + 1,
				UserValue: fmt.Sprint(have),
				Expected:  fmt.Sprint(want),
				Message:   fmt.Sprintf("row %d is extra, the table must have %d rows", i+1, want),
			})
		}
	}
}
