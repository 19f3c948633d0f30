//
// Package validate holds one validator per graded worksheet section.
// Validators never fail: every problem with the submitted values,
// including tables that are not tables at all, becomes an ErrorRecord
// so that a bad section never stops the others from being graded.
//
package validate

import (
	"fmt"
	"strconv"

	"github.com/nsip/otf-grade/internal/freq"
	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/worksheet"
)

// recorder collects the records of one section.
type recorder struct {
	title   string
	headers []string
	records []worksheet.ErrorRecord
}

func newRecorder(title string, headers []string) *recorder {
	return &recorder{title: title, headers: headers}
}

func (r *recorder) add(rec worksheet.ErrorRecord) {
	rec.Section = r.title
	r.records = append(r.records, rec)
}

func (r *recorder) result(items int) worksheet.SectionResult {
	return worksheet.SectionResult{Title: r.title, Records: r.records, Items: items}
}

// header is the display label of column c (0-based).
func (r *recorder) header(c int) string {
	return worksheet.Header(r.headers, c)
}

func (r *recorder) malformed(t worksheet.Table) {
	r.add(worksheet.ErrorRecord{
		Kind:    worksheet.KindMalformedTable,
		Message: fmt.Sprintf("table cannot be read (%s), make sure every row is filled in as a list of values", t.Reason()),
	})
}

func (r *recorder) shortRow(row, have, want int) {
	r.add(worksheet.ErrorRecord{
		Kind:      worksheet.KindColumnCountMismatch,
		Row:       row + 1,
		UserValue: strconv.Itoa(have),
		Expected:  fmt.Sprintf("at least %d columns", want),
		Message:   fmt.Sprintf("row %d has %d columns, at least %d are needed to check it", row+1, have, want),
	})
}

//
// number parses the cell at row/col, recording a non-numeric-value
// record when it is not a number.
//
func (r *recorder) number(cells []string, row, col int, field string) (float64, bool) {
	s := worksheet.Cell(cells, col)
	v, err := freq.ParseNumber(s)
	if err != nil {
		r.notNumber(row, col, field, s)
		return 0, false
	}
	return v, true
}

func (r *recorder) notNumber(row, col int, field, value string) {
	r.add(worksheet.ErrorRecord{
		Kind:      worksheet.KindNonNumericValue,
		Row:       row + 1,
		Col:       col + 1,
		ColHeader: r.header(col),
		Field:     field,
		UserValue: value,
		Message:   fmt.Sprintf("%s must be a number, got %q", r.header(col), value),
	})
}

//
// configMissing reports a rate table that failed to load, or one that
// loaded with skipped lines. Either way it is reported once per section.
//
func (r *recorder) configMissing(rates *ratetable.Table) {
	msg := fmt.Sprintf("rate/bandwidth table is unavailable, bandwidth checks were skipped: %s", rates.Problem())
	if rates.Warned() {
		msg = fmt.Sprintf("rate/bandwidth table has invalid lines, bandwidth checks used the remaining entries: %s", rates.Problem())
	}
	r.add(worksheet.ErrorRecord{
		Kind:    worksheet.KindConfigMissing,
		Message: msg,
	})
}

//
// ordering records an ordering violation when the uplink end of a row
// sits above its downlink start.
//
func (r *recorder) ordering(row, dlCol, ulCol int, dlStart, ulEnd float64) {
	if freq.Ordered(dlStart, ulEnd) {
		return
	}
	r.add(worksheet.ErrorRecord{
		Kind:      worksheet.KindOrderingViolation,
		Row:       row + 1,
		Col:       ulCol + 1,
		ColHeader: r.header(ulCol),
		Field:     worksheet.FieldUplinkEnd,
		UserValue: freq.Format(ulEnd),
		Expected:  fmt.Sprintf("<= %s", freq.Format(dlStart)),
		Message: fmt.Sprintf("%s (%s) must not be greater than %s (%s)",
			r.header(ulCol), freq.Format(ulEnd), r.header(dlCol), freq.Format(dlStart)),
	})
}

// bandwidthCell locates the rate and bandwidth values of a row.
type bandwidthCell struct {
	row          int
	rate         string
	rateCol      int // -1 when the rate is not part of the table
	rateLabel    string
	bandwidth    string
	bandwidthCol int
}

//
// bandwidth checks that a row's bandwidth is at least the minimum the
// rate table requires for its rate. The caller handles failed tables.
//
func (r *recorder) bandwidth(rates *ratetable.Table, c bandwidthCell) {
	rate, err := freq.ParseInt(c.rate)
	rateOK := err == nil
	if !rateOK {
		if c.rateCol >= 0 {
			r.notNumber(c.row, c.rateCol, worksheet.FieldRate, c.rate)
		} else {
			r.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindNonNumericValue,
				Field:     worksheet.FieldSubnetRate,
				ColHeader: c.rateLabel,
				UserValue: c.rate,
				Message:   fmt.Sprintf("%s must be a whole number, got %q", c.rateLabel, c.rate),
			})
		}
	}
	bw, err := freq.ParseInt(c.bandwidth)
	if err != nil {
		r.notNumber(c.row, c.bandwidthCol, worksheet.FieldBandwidth, c.bandwidth)
		return
	}
	if !rateOK {
		return
	}

	required, ok := rates.Lookup(rate)
	if !ok {
		rec := worksheet.ErrorRecord{
			Kind:      worksheet.KindRateNotFound,
			Row:       c.row + 1,
			Field:     worksheet.FieldRate,
			ColHeader: c.rateLabel,
			UserValue: strconv.Itoa(rate),
			Message:   fmt.Sprintf("rate %d kbps has no entry in the rate/bandwidth table, check the rate value", rate),
		}
		if c.rateCol >= 0 {
			rec.Col = c.rateCol + 1
			rec.ColHeader = r.header(c.rateCol)
		}
		r.add(rec)
		return
	}
	if bw < required {
		r.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindBandwidthTooLow,
			Row:       c.row + 1,
			Col:       c.bandwidthCol + 1,
			ColHeader: r.header(c.bandwidthCol),
			Field:     worksheet.FieldBandwidth,
			UserValue: strconv.Itoa(bw),
			Expected:  strconv.Itoa(required),
			Message:   fmt.Sprintf("bandwidth %d kHz is below required %d kHz for rate %d kbps", bw, required, rate),
		})
	}
}

//
// Addressing covers the free-text address fields. They are captured for
// the export only and are never graded.
//
func Addressing(local, remote string) worksheet.SectionResult {
	return worksheet.SectionResult{Title: worksheet.TitleAddressing}
}
