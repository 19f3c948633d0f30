//
// Package capture renders a submission as plain text so a student can
// keep a copy of everything entered, graded or not.
//
package capture

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nsip/otf-grade/internal/worksheet"
	"github.com/pkg/errors"
)

//
// Render writes every section of sub to w in worksheet order: scalars
// as "label value" lines, tables as tab-aligned header and rows.
// Tables that could not be read are printed as their reason.
//
func Render(w io.Writer, sub *worksheet.Submission) error {
	if sub == nil {
		sub = &worksheet.Submission{}
	}
	p := &printer{w: w}

	if sub.Student != "" {
		p.line("Student: %s", sub.Student)
		p.line("")
	}

	p.section(worksheet.TitleNetworkParams)
	p.scalar(worksheet.LabelSubnetID, sub.SubnetID)
	p.scalar(worksheet.LabelNetworkName, sub.NetworkName)

	p.section(worksheet.TitleStationConfig)
	p.table(worksheet.StationConfigHeaders, sub.StationConfig)

	p.section(worksheet.TitleChannelSegment)
	p.scalar(worksheet.LabelChannelType, sub.ChannelType)
	p.table(worksheet.ChannelSegmentHeaders, sub.ChannelSegment)

	p.section(worksheet.TitleChannelSuite)
	p.table(worksheet.ChannelSuiteHeaders, sub.ChannelSuite)

	p.section(worksheet.TitleNetworkAnalysis)
	p.table(worksheet.NetworkAnalysisHeaders, sub.NetworkAnalysis)

	p.section(worksheet.TitleAddressing)
	p.scalar(worksheet.LabelLocalCCAddress, sub.LocalCCAddress)
	p.scalar(worksheet.LabelRemoteXXAddress, sub.RemoteXXAddress)

	p.section(worksheet.TitlePointToPoint)
	p.table(worksheet.PointToPointHeaders, sub.PointToPoint)

	p.section(worksheet.TitleVirtualSubnet)
	p.scalar(worksheet.LabelVirtualSubnetRate, sub.VirtualSubnetRate)
	p.table(worksheet.VirtualSubnetHeaders, sub.VirtualSubnet)

	return errors.Wrap(p.err, "cannot write capture")
}

// printer remembers the first write error and skips writes after it.
type printer struct {
	w   io.Writer
	err error
	n   int
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) section(title string) {
	if p.n > 0 {
		p.line("")
	}
	p.n++
	p.line("=== %s ===", title)
}

func (p *printer) scalar(label, value string) {
	if value == "" {
		value = "(empty)"
	}
	p.line("%s %s", label, value)
}

func (p *printer) table(headers []string, t worksheet.Table) {
	if t.Malformed() {
		p.line("(table not readable: %s)", t.Reason())
		return
	}
	if t.Len() == 0 {
		p.line("(no rows)")
		return
	}
	if p.err != nil {
		return
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range t.Rows() {
		cells := make([]string, len(row))
		for i := range row {
			cells[i] = worksheet.Cell(row, i)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	p.err = tw.Flush()
}
