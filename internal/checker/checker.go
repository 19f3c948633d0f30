//
// Package checker runs the section validators over a submission in a
// fixed order and gathers their findings into a single report.
//
package checker

import (
	"fmt"
	"strings"

	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/validate"
	"github.com/nsip/otf-grade/internal/worksheet"
)

// SectionKind selects the validator for a configured section.
type SectionKind int

const (
	ChannelSegment SectionKind = iota + 1
	ChannelSuite
	NetworkAnalysis
	PointToPoint
	VirtualSubnet
	Addressing
)

func (k SectionKind) String() string {
	switch k {
	case ChannelSegment:
		return "channel-segment"
	case ChannelSuite:
		return "channel-suite"
	case NetworkAnalysis:
		return "network-analysis"
	case PointToPoint:
		return "point-to-point"
	case VirtualSubnet:
		return "virtual-subnet"
	case Addressing:
		return "addressing"
	default:
		return fmt.Sprintf("section-kind(%d)", int(k))
	}
}

// Section is one configured worksheet section.
type Section struct {
	Kind  SectionKind
	Title string
}

// DefaultSections are the graded sections in evaluation order.
var DefaultSections = []Section{
	{Kind: ChannelSegment, Title: worksheet.TitleChannelSegment},
	{Kind: ChannelSuite, Title: worksheet.TitleChannelSuite},
	{Kind: NetworkAnalysis, Title: worksheet.TitleNetworkAnalysis},
	{Kind: PointToPoint, Title: worksheet.TitlePointToPoint},
	{Kind: VirtualSubnet, Title: worksheet.TitleVirtualSubnet},
	{Kind: Addressing, Title: worksheet.TitleAddressing},
}

// AllCorrect is the summary when no section has any record.
const AllCorrect = "Congratulations, every answer is correct!"

// SectionCount pairs a section title with its error count.
type SectionCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

//
// Report is the outcome of one grading call. Counts and Titles only
// list sections that have records; Results has every section.
//
type Report struct {
	Summary string                    `json:"summary"`
	Counts  []SectionCount            `json:"counts"`
	Titles  []string                  `json:"titles"`
	Records []worksheet.ErrorRecord   `json:"records"`
	Results []worksheet.SectionResult `json:"results"`
}

// Checker grades submissions.
type Checker struct {
	rates    *ratetable.Store
	sections []Section
}

// New creates a checker over sections, DefaultSections when none are given.
func New(rates *ratetable.Store, sections ...Section) *Checker {
	if len(sections) == 0 {
		sections = DefaultSections
	}
	if rates == nil {
		rates = ratetable.Fixed(ratetable.Default())
	}
	return &Checker{rates: rates, sections: sections}
}

//
// Check grades a submission. The rate table is reloaded once per call
// and shared by every section that needs it.
//
func (c *Checker) Check(sub *worksheet.Submission) Report {
	if sub == nil {
		sub = &worksheet.Submission{}
	}
	rates := c.rates.Reload()

	report := Report{Counts: []SectionCount{}, Titles: []string{}, Records: []worksheet.ErrorRecord{}}
	var seg validate.SegmentFrequencies
	for _, s := range c.sections {
		var res worksheet.SectionResult
		switch s.Kind {
		case ChannelSegment:
			res, seg = validate.Segment(sub.ChannelSegment, sub.ChannelType)
		case ChannelSuite:
			res = validate.Suite(sub.ChannelSuite, seg)
		case NetworkAnalysis:
			res = validate.NetworkAnalysis(sub.NetworkAnalysis)
		case PointToPoint:
			res = validate.PointToPoint(sub.PointToPoint, rates)
		case VirtualSubnet:
			res = validate.VirtualSubnet(sub.VirtualSubnet, sub.VirtualSubnetRate, rates)
		case Addressing:
			res = validate.Addressing(sub.LocalCCAddress, sub.RemoteXXAddress)
		default:
			res = worksheet.SectionResult{Records: []worksheet.ErrorRecord{{
				Kind:    worksheet.KindUnsupportedSection,
				Message: fmt.Sprintf("section %q has unsupported kind %s and was not graded", s.Title, s.Kind),
			}}}
		}
		res = retitle(res, s.Title)

		report.Results = append(report.Results, res)
		if res.Count() == 0 {
			continue
		}
		report.Counts = append(report.Counts, SectionCount{Title: s.Title, Count: res.Count()})
		report.Titles = append(report.Titles, s.Title)
		report.Records = append(report.Records, res.Records...)
	}

	report.Summary = Summarize(report.Counts)
	return report
}

// retitle applies the configured title to a result and its records.
func retitle(res worksheet.SectionResult, title string) worksheet.SectionResult {
	res.Title = title
	for i := range res.Records {
		res.Records[i].Section = title
	}
	return res
}

// Summarize renders the summary line for the failing sections.
func Summarize(counts []SectionCount) string {
	if len(counts) == 0 {
		return AllCorrect
	}
	var b strings.Builder
	b.WriteString("The following sections have errors:\n\n")
	for _, c := range counts {
		noun := "errors"
		if c.Count == 1 {
			noun = "error"
		}
		fmt.Fprintf(&b, "- %s: %d %s\n", c.Title, c.Count, noun)
	}
	b.WriteString("\nSee the detailed error list for each difference.")
	return b.String()
}
