package validate

import (
	"fmt"
	"strings"

	"github.com/nsip/otf-grade/internal/freq"
	"github.com/nsip/otf-grade/internal/worksheet"
)

// Band is an inclusive frequency range.
type Band struct {
	Min, Max float64
}

func (b Band) String() string {
	return fmt.Sprintf("%s-%s", freq.Format(b.Min), freq.Format(b.Max))
}

//
// Mode is a band plan preset selected by the channel type: the legal
// downlink and uplink ranges and the fixed uplink-from-downlink offset.
//
type Mode struct {
	Name     string
	Downlink Band
	Uplink   Band
	Offset   float64
}

// Modes are the band plans of the two channel types.
var Modes = map[string]Mode{
	"uu": {Name: "uu", Downlink: Band{12.25, 12.75}, Uplink: Band{14.0, 14.5}, Offset: 1.75},
	"aa": {Name: "aa", Downlink: Band{19.6, 21.2}, Uplink: Band{29.4, 31.0}, Offset: 9.8},
}

// SegmentItems is the number of checks made on the channel segment.
const SegmentItems = 7

// channel segment columns
const (
	segDownlinkStart = 1
	segDownlinkEnd   = 2
	segUplinkStart   = 3
	segUplinkEnd     = 4
	segColumns       = 5
)

var segmentFields = map[int]string{
	segDownlinkStart: worksheet.FieldDownlinkStart,
	segDownlinkEnd:   worksheet.FieldDownlinkEnd,
	segUplinkStart:   worksheet.FieldUplinkStart,
	segUplinkEnd:     worksheet.FieldUplinkEnd,
}

//
// SegmentFrequencies carries the parsed channel segment start
// frequencies to the channel suite check. OK is false when either
// could not be read.
//
type SegmentFrequencies struct {
	DownlinkStart float64
	UplinkStart   float64
	OK            bool
}

//
// Segment checks the single-row channel segment table against the band
// plan of the selected channel type: four range checks, the uplink
// start/end offsets from the downlink start/end, and that the uplink
// end does not exceed the downlink start.
//
func Segment(t worksheet.Table, channelType string) (worksheet.SectionResult, SegmentFrequencies) {
	rec := newRecorder(worksheet.TitleChannelSegment, worksheet.ChannelSegmentHeaders)
	var seg SegmentFrequencies

	if t.Malformed() || t.Len() == 0 {
		reason := t.Reason()
		if reason == "" {
			reason = "table has no rows"
		}
		for c := segDownlinkStart; c <= segUplinkEnd; c++ {
			rec.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindMalformedTable,
				Row:       1,
				Col:       c + 1,
				ColHeader: rec.header(c),
				Field:     segmentFields[c],
				Message:   fmt.Sprintf("channel segment table cannot be read (%s), %s was not checked", reason, rec.header(c)),
			})
		}
		return rec.result(SegmentItems), seg
	}

	row := t.Row(0)
	if len(row) < segColumns {
		for c := segDownlinkStart; c <= segUplinkEnd; c++ {
			rec.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindColumnCountMismatch,
				Row:       1,
				Col:       c + 1,
				ColHeader: rec.header(c),
				Field:     segmentFields[c],
				UserValue: fmt.Sprint(len(row)),
				Expected:  fmt.Sprintf("at least %d columns", segColumns),
				Message:   fmt.Sprintf("channel segment row has %d columns, %d are needed, %s was not checked", len(row), segColumns, rec.header(c)),
			})
		}
		return rec.result(SegmentItems), seg
	}

	values := map[int]float64{}
	for c := segDownlinkStart; c <= segUplinkEnd; c++ {
		if v, ok := rec.number(row, 0, c, segmentFields[c]); ok {
			values[c] = v
		}
	}
	dlStart, dlStartOK := values[segDownlinkStart]
	ulStart, ulStartOK := values[segUplinkStart]
	seg = SegmentFrequencies{DownlinkStart: dlStart, UplinkStart: ulStart, OK: dlStartOK && ulStartOK}

	mode, known := Modes[strings.TrimSpace(channelType)]
	if !known {
		rec.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindLogicCheckFailed,
			Field:     worksheet.FieldChannelType,
			ColHeader: worksheet.LabelChannelType,
			UserValue: channelType,
			Message:   fmt.Sprintf("cannot check frequencies for channel type %q, choose 'uu' or 'aa'", channelType),
		})
		return rec.result(SegmentItems), seg
	}

	for c := segDownlinkStart; c <= segUplinkEnd; c++ {
		v, ok := values[c]
		if !ok {
			continue
		}
		band := mode.Downlink
		if c == segUplinkStart || c == segUplinkEnd {
			band = mode.Uplink
		}
		if !freq.InRange(v, band.Min, band.Max) {
			rec.add(worksheet.ErrorRecord{
				Kind:      worksheet.KindRangeViolation,
				Row:       1,
				Col:       c + 1,
				ColHeader: rec.header(c),
				Field:     segmentFields[c],
				UserValue: freq.Format(v),
				Expected:  band.String(),
				Message:   fmt.Sprintf("in %s mode %s must be within %s", mode.Name, rec.header(c), band),
			})
		}
	}

	offsets := []struct{ up, down int }{
		{segUplinkStart, segDownlinkStart},
		{segUplinkEnd, segDownlinkEnd},
	}
	for _, o := range offsets {
		up, upOK := values[o.up]
		down, downOK := values[o.down]
		if !upOK || !downOK || freq.Offset(up, down, mode.Offset) {
			continue
		}
		rec.add(worksheet.ErrorRecord{
			Kind:      worksheet.KindOffsetViolation,
			Row:       1,
			Col:       o.up + 1,
			ColHeader: rec.header(o.up),
			Field:     segmentFields[o.up],
			UserValue: freq.Format(up),
			Expected:  freq.Format(down + mode.Offset),
			Message: fmt.Sprintf("in %s mode %s must equal %s + %s",
				mode.Name, rec.header(o.up), rec.header(o.down), freq.Format(mode.Offset)),
		})
	}

	if ulEnd, ok := values[segUplinkEnd]; ok && dlStartOK {
		rec.ordering(0, segDownlinkStart, segUplinkEnd, dlStart, ulEnd)
	}

	return rec.result(SegmentItems), seg
}
