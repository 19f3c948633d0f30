package checker

import (
	"strings"
	"testing"

	"github.com/nsip/otf-grade/internal/ratetable"
	"github.com/nsip/otf-grade/internal/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goodSubmission() *worksheet.Submission {
	return &worksheet.Submission{
		Student:     "alice",
		ChannelType: "uu",
		ChannelSegment: worksheet.NewTable([][]string{
			{"sat-1", "12.25", "12.75", "14.0", "14.5"},
		}),
		ChannelSuite: worksheet.NewTable([][]string{
			{"TDM", "9.6", "100", "64", "62.25"},
			{"ALOHA", "9.6", "100", "164", "162.25"},
		}),
		NetworkAnalysis: worksheet.NewTable([][]string{
			{"unit-1", "fixed", "10.0.0.1", "CC-1"},
			{"unit-2", "fixed", "10.0.0.2", "CC-2"},
		}),
		PointToPoint: worksheet.NewTable([][]string{
			{"send", "1024", "895", "100", "120", "40", "50"},
			{"receive", "1024", "895", "100", "120", "40", "50"},
		}),
		VirtualSubnet: worksheet.NewTable([][]string{
			{"vsn-1", "895", "10", "20", "30", "40"},
		}),
		VirtualSubnetRate: "1024",
	}
}

func TestCheckOrder(t *testing.T) {
	report := New(nil).Check(goodSubmission())

	// the segment ordering rule is the only finding
	require.Len(t, report.Counts, 1)
	assert.Equal(t, SectionCount{Title: worksheet.TitleChannelSegment, Count: 1}, report.Counts[0])
	assert.Equal(t, []string{worksheet.TitleChannelSegment}, report.Titles)
	require.Len(t, report.Records, 1)
	assert.Equal(t, worksheet.KindOrderingViolation, report.Records[0].Kind)

	require.Len(t, report.Results, len(DefaultSections))
	for i, s := range DefaultSections {
		assert.Equal(t, s.Title, report.Results[i].Title)
	}
	assert.Contains(t, report.Summary, "- (3) Channel segment parameters: 1 error\n")
}

func TestCheckAllCorrect(t *testing.T) {
	c := New(nil,
		Section{Kind: NetworkAnalysis, Title: worksheet.TitleNetworkAnalysis},
		Section{Kind: PointToPoint, Title: worksheet.TitlePointToPoint},
		Section{Kind: VirtualSubnet, Title: worksheet.TitleVirtualSubnet},
		Section{Kind: Addressing, Title: worksheet.TitleAddressing},
	)
	report := c.Check(goodSubmission())

	assert.Equal(t, AllCorrect, report.Summary)
	assert.Empty(t, report.Counts)
	assert.Empty(t, report.Titles)
	assert.Empty(t, report.Records)
	assert.Len(t, report.Results, 4)
}

func TestCheckEmptySubmission(t *testing.T) {
	sub, err := worksheet.ParseSubmission([]byte(`{}`))
	require.NoError(t, err)
	report := New(nil).Check(sub)

	want := []SectionCount{
		{Title: worksheet.TitleChannelSegment, Count: 4},
		{Title: worksheet.TitleChannelSuite, Count: 1},
		{Title: worksheet.TitleNetworkAnalysis, Count: 1},
		{Title: worksheet.TitlePointToPoint, Count: 1},
		{Title: worksheet.TitleVirtualSubnet, Count: 2},
	}
	assert.Equal(t, want, report.Counts)
	assert.Len(t, report.Records, 9)
	assert.NotEqual(t, AllCorrect, report.Summary)

	assert.NotPanics(t, func() { New(nil).Check(nil) })
}

func TestCheckUnsupportedSection(t *testing.T) {
	c := New(nil, Section{Kind: SectionKind(99), Title: "(9) Extra"})
	report := c.Check(goodSubmission())

	require.Len(t, report.Records, 1)
	rec := report.Records[0]
	assert.Equal(t, worksheet.KindUnsupportedSection, rec.Kind)
	assert.Equal(t, "(9) Extra", rec.Section)
	assert.Contains(t, rec.Message, "section-kind(99)")
}

func TestCheckConfigMissing(t *testing.T) {
	c := New(ratetable.Fixed(ratetable.Failed("no table")),
		Section{Kind: PointToPoint, Title: worksheet.TitlePointToPoint},
		Section{Kind: VirtualSubnet, Title: worksheet.TitleVirtualSubnet},
	)
	report := c.Check(goodSubmission())

	require.Len(t, report.Records, 2)
	for _, rec := range report.Records {
		assert.Equal(t, worksheet.KindConfigMissing, rec.Kind)
	}
	assert.Equal(t, worksheet.TitlePointToPoint, report.Records[0].Section)
	assert.Equal(t, worksheet.TitleVirtualSubnet, report.Records[1].Section)
}

func TestCheckRetitles(t *testing.T) {
	c := New(nil, Section{Kind: ChannelSegment, Title: "Segment"})
	report := c.Check(&worksheet.Submission{})

	require.Len(t, report.Records, 4)
	for _, rec := range report.Records {
		assert.Equal(t, "Segment", rec.Section)
	}
	assert.Equal(t, []string{"Segment"}, report.Titles)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, AllCorrect, Summarize(nil))

	s := Summarize([]SectionCount{{Title: "A", Count: 1}, {Title: "B", Count: 3}})
	lines := strings.Split(s, "\n")
	assert.Equal(t, "The following sections have errors:", lines[0])
	assert.Contains(t, lines, "- A: 1 error")
	assert.Contains(t, lines, "- B: 3 errors")
}

func TestSectionKindString(t *testing.T) {
	assert.Equal(t, "channel-segment", ChannelSegment.String())
	assert.Equal(t, "addressing", Addressing.String())
	assert.Equal(t, "section-kind(0)", SectionKind(0).String())
}
