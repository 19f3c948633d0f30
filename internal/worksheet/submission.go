package worksheet

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//
// Submission holds every named value of one completed worksheet.
// Scalars not graded (subnet id, network name, addresses) are kept
// for the capture export.
//
type Submission struct {
	Student string

	SubnetID      string
	NetworkName   string
	StationConfig Table

	ChannelType    string
	ChannelSegment Table
	ChannelSuite   Table

	NetworkAnalysis Table

	LocalCCAddress  string
	RemoteXXAddress string
	PointToPoint    Table

	VirtualSubnet     Table
	VirtualSubnetRate string
}

//
// ParseSubmission reads a submission from a json request body.
// Only a body that is not a json object is an error; missing or
// badly shaped tables become malformed tables for the validators.
//
func ParseSubmission(body []byte) (*Submission, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("submission is not valid json")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, errors.New("submission must be a json object")
	}
	return SubmissionFrom(doc), nil
}

// SubmissionFrom builds a submission from an already parsed json object.
func SubmissionFrom(doc gjson.Result) *Submission {
	return &Submission{
		Student:           scalar(doc.Get("student")),
		SubnetID:          scalar(doc.Get("subnetID")),
		NetworkName:       scalar(doc.Get("networkName")),
		StationConfig:     ParseTable(doc.Get("stationConfig")),
		ChannelType:       scalar(doc.Get("channelType")),
		ChannelSegment:    ParseTable(doc.Get("channelSegment")),
		ChannelSuite:      ParseTable(doc.Get("channelSuite")),
		NetworkAnalysis:   ParseTable(doc.Get("networkAnalysis")),
		LocalCCAddress:    scalar(doc.Get("localCCAddress")),
		RemoteXXAddress:   scalar(doc.Get("remoteXXAddress")),
		PointToPoint:      ParseTable(doc.Get("pointToPoint")),
		VirtualSubnet:     ParseTable(doc.Get("virtualSubnet")),
		VirtualSubnetRate: scalar(doc.Get("virtualSubnetRate")),
	}
}

func scalar(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return strings.TrimSpace(v.Str)
	default:
		return strings.TrimSpace(v.Raw)
	}
}
