package validate

import (
	"fmt"
	"strings"

	"github.com/nsip/otf-grade/internal/freq"
	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/worksheet"
)

// VirtualSubnetItems is the bandwidth check and the band overlap check.
const VirtualSubnetItems = 2

// virtual subnet columns
const (
	vsBandwidth     = 1
	vsDownlinkStart = 2
	vsDownlinkEnd   = 3
	vsUplinkStart   = 4
	vsUplinkEnd     = 5
	vsColumns       = 6
)

//
// VirtualSubnet checks the single virtual subnet row. The rate is chosen
// outside the table; its bandwidth requirement is looked up in rates.
// Both bands must run upwards and must not overlap each other.
//
func VirtualSubnet(t worksheet.Table, rate string, rates *ratetable.Table) worksheet.SectionResult {
	rec := newRecorder(worksheet.TitleVirtualSubnet, worksheet.VirtualSubnetHeaders)
	rate = strings.TrimSpace(rate)

	checkBandwidth := true
	if rate == "" {
		checkBandwidth = false
		rec.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindLogicCheckFailed,
			Field:     worksheet.FieldSubnetRate,
			ColHeader: worksheet.LabelVirtualSubnetRate,
			Message:   "select a virtual subnet rate so the bandwidth can be checked",
		})
	} else if rates.Failed() {
		checkBandwidth = false
		rec.configMissing(rates)
	}
	if rates.Warned() {
		rec.configMissing(rates)
	}

	if t.Malformed() {
		rec.malformed(t)
		return rec.result(VirtualSubnetItems)
	}

	if t.Len() == 0 {
		rec.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindRowCountMismatch,
			Row:       1,
			UserValue: "0",
			Expected:  "1",
			Message:   "the virtual subnet row is missing",
		})
		return rec.result(VirtualSubnetItems)
	}
	for r := 1; r < t.Len(); r++ {
		rec.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindRowCountMismatch,
			Row:       r + 1,
			UserValue: fmt.Sprint(t.Len()),
			Expected:  "1",
			Message:   fmt.Sprintf("row %d is extra, the table must have a single row", r+1),
		})
	}

	row := t.Row(0)
	if len(row) < vsColumns {
		rec.shortRow(0, len(row), vsColumns)
		return rec.result(VirtualSubnetItems)
	}

	if checkBandwidth {
		rec.bandwidth(rates, bandwidthCell{
			row:          0,
			rate:         rate,
			rateCol:      -1,
			rateLabel:    worksheet.LabelVirtualSubnetRate,
			bandwidth:    worksheet.Cell(row, vsBandwidth),
			bandwidthCol: vsBandwidth,
		})
	}

	dlStart, dlStartOK := rec.number(row, 0, vsDownlinkStart, worksheet.FieldDownlinkStart)
	dlEnd, dlEndOK := rec.number(row, 0, vsDownlinkEnd, worksheet.FieldDownlinkEnd)
	ulStart, ulStartOK := rec.number(row, 0, vsUplinkStart, worksheet.FieldUplinkStart)
	ulEnd, ulEndOK := rec.number(row, 0, vsUplinkEnd, worksheet.FieldUplinkEnd)

	if dlStartOK && dlEndOK {
		rec.inverted("downlink", vsDownlinkStart, vsDownlinkEnd, worksheet.FieldDownlinkStart, dlStart, dlEnd)
	}
	if ulStartOK && ulEndOK {
		rec.inverted("uplink", vsUplinkStart, vsUplinkEnd, worksheet.FieldUplinkStart, ulStart, ulEnd)
	}
	if dlStartOK && dlEndOK && ulStartOK && ulEndOK && freq.Overlap(dlStart, dlEnd, ulStart, ulEnd) {
		rec.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindIntervalOverlap,
			Row:       1,
			UserValue: fmt.Sprintf("downlink %s-%s, uplink %s-%s", freq.Format(dlStart), freq.Format(dlEnd), freq.Format(ulStart), freq.Format(ulEnd)),
			Expected:  "disjoint downlink and uplink ranges",
			Message:   "frequency ranges overlap: the downlink and uplink ranges must not share any frequency",
		})
	}

	return rec.result(VirtualSubnetItems)
}

func (r *recorder) inverted(band string, startCol, endCol int, field string, start, end float64) {
	if !freq.Inverted(start, end) {
		return
	}
	r.add(worksheet.ErrorRecord{
		Kind:      worksheet.KindOrderingViolation,
		Row:       1,
		Col:       startCol + 1,
		ColHeader: r.header(startCol),
		Field:     field,
		UserValue: freq.Format(start),
		Expected:  fmt.Sprintf("<= %s", freq.Format(end)),
		Message:   fmt.Sprintf("%s start frequency cannot be greater than %s end frequency (%s > %s)", band, band, freq.Format(start), freq.Format(end)),
	})
}
