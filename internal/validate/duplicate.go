package validate

import (
	"fmt"

	"github.com/nsip/otf-grade/internal/worksheet"
)

// CCAddressColumn is the 0-based column of the CC address in the network analysis table.
const CCAddressColumn = 3

// NetworkAnalysis checks that no CC address is used twice.
func NetworkAnalysis(t worksheet.Table) worksheet.SectionResult {
	return DuplicateColumn(worksheet.TitleNetworkAnalysis, worksheet.NetworkAnalysisHeaders, t, CCAddressColumn, worksheet.FieldCCAddress)
}

//
// DuplicateColumn flags every repeat of a non-empty value in column col.
// The first occurrence of a value is never flagged, so a value found on
// three rows gives two records. Rows too short to hold the column are
// reported instead of skipped. The section has one checkable item per row.
//
func DuplicateColumn(title string, headers []string, t worksheet.Table, col int, field string) worksheet.SectionResult {
	rec := newRecorder(title, headers)

	if t.Malformed() {
		rec.malformed(t)
		return rec.result(0)
	}

	first := map[string]int{}
	for r, row := range t.Rows() {
		if col >= len(row) {
			rec.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindColumnCountMismatch,
				Row:       r + 1,
				Col:       col + 1,
				ColHeader: rec.header(col),
				Field:     field,
				UserValue: fmt.Sprint(len(row)),
				Expected:  fmt.Sprintf("at least %d columns", col+1),
				Message:   fmt.Sprintf("row %d has no %s column, it cannot be checked for duplicates", r+1, rec.header(col)),
			})
			continue
		}
		v := worksheet.Cell(row, col)
		if v == "" {
			continue
		}
		seen, dup := first[v]
		if !dup {
			first[v] = r
			continue
		}
		rec.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindDuplicateValue,
			Row:       r + 1,
			Col:       col + 1,
			ColHeader: rec.header(col),
			Field:     field,
			UserValue: v,
			Expected:  "a unique value",
			Message:   fmt.Sprintf("value %q repeats row %d, %s values must be unique", v, seen+1, rec.header(col)),
		})
	}

	return rec.result(t.Len())
}
