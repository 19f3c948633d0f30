//
// Package scoring turns section error counts into 0-100 capability scores,
// one per capability dimension plus a final peer review dimension.
//
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/nsip/otf-grade/internal/checker"
	"github.com/nsip/otf-grade/internal/freq"
	"github.com/nsip/otf-grade/internal/validate"
	"github.com/nsip/otf-grade/internal/worksheet"
	"github.com/pkg/errors"
)

// MinDimensions is the fewest axes a radar can be drawn with.
const MinDimensions = 3

// PeerReview is the name of the last dimension.
const PeerReview = "Peer review"

// ErrInsufficientDimensions is returned when no usable radar can be built.
var ErrInsufficientDimensions = errors.New("radar needs at least 3 dimensions with one score each")

//
// Dimension maps a worksheet section to a capability. Items is the
// section's maximum error count when the grading result does not
// report its own.
//
type Dimension struct {
	Name    string
	Section string
	Items   int
}

// DefaultNetworkRows is the row count of the blank network analysis table.
const DefaultNetworkRows = 7

// Dimensions are the capability dimensions in radar order.
var Dimensions = []Dimension{
	{Name: "Channel frequency planning", Section: worksheet.TitleChannelSegment, Items: validate.SegmentItems},
	{Name: "Channel service parameters", Section: worksheet.TitleChannelSuite, Items: validate.SuiteItems},
	{Name: "Network analysis", Section: worksheet.TitleNetworkAnalysis, Items: DefaultNetworkRows},
	{Name: "Point-to-point service", Section: worksheet.TitlePointToPoint, Items: validate.PointToPointItems},
	{Name: "Virtual subnet", Section: worksheet.TitleVirtualSubnet, Items: validate.VirtualSubnetItems},
}

//
// Tally is a section's error count as seen by the scorer. Failed marks
// a count that could not be determined; it scores as if every item
// were wrong.
//
type Tally struct {
	Title  string
	Errors int
	Failed bool
	Items  int
}

// Radar holds one score per attribute, peer review last.
type Radar struct {
	Attributes []string  `json:"attributes"`
	Scores     []float64 `json:"scores"`
}

// Scorer computes capability radars.
type Scorer struct {
	dims []Dimension
}

// New creates a scorer over dims, Dimensions when none are given.
func New(dims ...Dimension) *Scorer {
	if len(dims) == 0 {
		dims = Dimensions
	}
	return &Scorer{dims: dims}
}

//
// Score builds the radar. Each dimension scores
// 100 * max(0, items - errors) / items; peer review is appended last,
// clamped to [0,100] and 0 when absent.
//
func (s *Scorer) Score(tallies []Tally, peer *float64) (Radar, error) {
	byTitle := map[string]Tally{}
	for _, t := range tallies {
		byTitle[t.Title] = t
	}

	radar := Radar{}
	for _, d := range s.dims {
		items := d.Items
		t, ok := byTitle[d.Section]
		if ok && t.Items > 0 {
			items = t.Items
		}
		errs := 0
		if ok {
			errs = t.Errors
			if t.Failed {
				errs = items
			}
		}
		radar.Attributes = append(radar.Attributes, d.Name)
		radar.Scores = append(radar.Scores, Capability(items, errs))
	}

	radar.Attributes = append(radar.Attributes, PeerReview)
	peerScore := 0.0
	if peer != nil {
		peerScore = clamp(*peer)
	}
	radar.Scores = append(radar.Scores, peerScore)

	if len(radar.Attributes) < MinDimensions || len(radar.Attributes) != len(radar.Scores) {
		return Radar{}, ErrInsufficientDimensions
	}
	return radar, nil
}

// Capability is the 0-100 score of a section with items checks and errs errors.
func Capability(items, errs int) float64 {
	if items <= 0 {
		return 0
	}
	if errs < 0 {
		errs = 0
	}
	correct := math.Max(0, float64(items-errs))
	return clamp(100 * correct / float64(items))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

//
// Tallies converts a grading report into scorer input, keeping each
// section's own item count. A section whose table could not be read
// at all is a failed tally.
//
func Tallies(r checker.Report) []Tally {
	tallies := make([]Tally, 0, len(r.Results))
	for _, res := range r.Results {
		tallies = append(tallies, Tally{Title: res.Title, Errors: res.Count(), Items: res.Items, Failed: unreadable(res)})
	}
	return tallies
}

// unreadable reports whether every record of res is a malformed table.
func unreadable(res worksheet.SectionResult) bool {
	if res.Count() == 0 {
		return false
	}
	for _, rec := range res.Records {
		if rec.Kind != worksheet.KindMalformedTable {
			return false
		}
	}
	return true
}

// Unreadable lists the titles of failed tallies.
func Unreadable(tallies []Tally) []string {
	titles := []string{}
	for _, t := range tallies {
		if t.Failed {
			titles = append(titles, t.Title)
		}
	}
	return titles
}

//
// PeerAverage averages the peer review scores that are numbers within
// [0,100]; anything else is ignored. ok is false when none are usable.
//
func PeerAverage(scores []string) (avg float64, ok bool) {
	sum, n := 0.0, 0
	for _, s := range scores {
		v, err := freq.ParseNumber(s)
		if err != nil || v < 0 || v > 100 {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

//
// Analysis is the plain-text capability analysis shown next to the radar.
// unread names sections whose error count could not be determined.
//
func Analysis(counts []checker.SectionCount, unread []string, peer *float64) string {
	parts := []string{"Capability analysis:"}
	if len(counts) == 0 && len(unread) == 0 {
		parts = append(parts, "Every answer is correct, all assessed capabilities are strong!")
	} else {
		parts = append(parts, "Based on the sections with errors, these capabilities need work:")
		for _, c := range counts {
			parts = append(parts, fmt.Sprintf("- %s (errors: %d)", c.Title, c.Count))
		}
	}
	if len(unread) > 0 {
		parts = append(parts, "\nThese sections could not be read and were scored 0:")
		for _, title := range unread {
			parts = append(parts, "- "+title)
		}
	}
	if peer != nil {
		parts = append(parts, fmt.Sprintf("\nPeer review average: %.2f", *peer))
	} else {
		parts = append(parts, "\nNo valid peer review score was given.")
	}
	return strings.Join(parts, "\n")
}
