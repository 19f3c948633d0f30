package advice

import (
	w "github.com/nsip/otf-grade/internal/worksheet"
)

const (
	seg    = w.TitleChannelSegment
	suite  = w.TitleChannelSuite
	net    = w.TitleNetworkAnalysis
	p2p    = w.TitlePointToPoint
	subnet = w.TitleVirtualSubnet
)

// built-in recommendations
var recommendations = map[Key]string{
	// channel segment: channel frequency planning
	{seg, w.KindRangeViolation, w.FieldDownlinkStart}: "Check the downlink start frequency lies within the band of the channel type ('uu' 12.25-12.75, 'aa' 19.6-21.2).",
	{seg, w.KindRangeViolation, w.FieldDownlinkEnd}:   "Check the downlink end frequency lies within the band of the channel type ('uu' 12.25-12.75, 'aa' 19.6-21.2).",
	{seg, w.KindRangeViolation, w.FieldUplinkStart}:   "Check the uplink start frequency lies within the band of the channel type ('uu' 14.0-14.5, 'aa' 29.4-31.0).",
	{seg, w.KindRangeViolation, w.FieldUplinkEnd}:     "Check the uplink end frequency lies within the band of the channel type ('uu' 14.0-14.5, 'aa' 29.4-31.0).",
	{seg, w.KindOffsetViolation, ""}:                  "Keep the uplink start/end frequencies at the downlink start/end plus the channel type offset ('uu' +1.75, 'aa' +9.8).",
	{seg, w.KindOrderingViolation, ""}:                "The channel segment uplink end frequency must not be greater than the downlink start frequency, review the frequency allocation.",
	{seg, w.KindMalformedTable, ""}:                   "Make sure the channel segment table is complete, with every frequency filled in as a number.",
	{seg, w.KindNonNumericValue, ""}:                  "Channel segment frequencies must be numbers, check the input format.",
	{seg, w.KindColumnCountMismatch, ""}:              "The channel segment table is missing columns, check its structure.",
	{seg, w.KindLogicCheckFailed, w.FieldChannelType}: "Frequency checks depend on the channel type, select 'uu' or 'aa'.",

	// channel suite: channel service parameters
	{suite, w.KindMalformedTable, ""}:                      "The channel suite table must have 2 rows (TDM, ALOHA) and 5 columns, check its structure and content.",
	{suite, w.KindRowCountMismatch, ""}:                    "The channel suite table must have exactly 2 rows: TDM then ALOHA.",
	{suite, w.KindColumnCountMismatch, ""}:                 "Each channel suite row needs name, rate, bandwidth, uplink center and downlink center.",
	{suite, w.KindLogicCheckFailed, w.FieldUplinkCenter}:   "Uplink center frequencies are derived from the channel segment, correct the channel segment table first.",
	{suite, w.KindLogicCheckFailed, w.FieldDownlinkCenter}: "Downlink center frequencies are derived from the channel segment, correct the channel segment table first.",
	{suite, w.KindExactMismatch, w.FieldRate}:              "The channel suite rate is fixed at 9.6 kbps.",
	{suite, w.KindExactMismatch, w.FieldBandwidth}:         "The channel suite bandwidth is fixed at 100 kHz.",
	{suite, w.KindExactMismatch, w.FieldUplinkCenter}:      "Uplink center = channel segment uplink start + 50 for TDM, + 150 for ALOHA.",
	{suite, w.KindExactMismatch, w.FieldDownlinkCenter}:    "Downlink center = channel segment downlink start + 50 for TDM, + 150 for ALOHA.",
	{suite, w.KindNonNumericValue, w.FieldRate}:            "The channel suite rate must be a number.",
	{suite, w.KindNonNumericValue, w.FieldBandwidth}:       "The channel suite bandwidth must be a number.",
	{suite, w.KindNonNumericValue, ""}:                     "Channel suite center frequencies must be numbers.",

	// network analysis
	{net, w.KindDuplicateValue, w.FieldCCAddress}:      "Study CC address planning: every communication controller (CC) must have a unique address.",
	{net, w.KindMalformedTable, ""}:                    "Check the overall format of the network analysis table so it can be read.",
	{net, w.KindColumnCountMismatch, w.FieldCCAddress}: "The network analysis table is missing the CC address column, it cannot be checked for duplicates.",

	// point-to-point service
	{p2p, w.KindOrderingViolation, ""}:              "Point-to-point uplink end frequency must not be greater than the downlink start frequency, check the frequency plan.",
	{p2p, w.KindBandwidthTooLow, HintBandwidthRate}: "Check the bandwidth (kHz) is at least the minimum the rate/bandwidth table gives for the rate (kbps).",
	{p2p, w.KindRateNotFound, ""}:                   "Use one of the standard rates listed in the rate/bandwidth table.",
	{p2p, w.KindConfigMissing, ""}:                  "The rate/bandwidth table failed to load, is empty or has invalid lines, ask the instructor to check it.",
	{p2p, w.KindRowCountMismatch, ""}:               "The point-to-point table needs exactly two rows: send and receive.",
	{p2p, w.KindColumnCountMismatch, ""}:            "Check the point-to-point table has every rate, bandwidth and frequency column.",
	{p2p, w.KindMalformedTable, ""}:                 "Make sure the point-to-point table is filled in correctly.",
	{p2p, w.KindNonNumericValue, ""}:                "Point-to-point rates, bandwidths and frequencies must be numbers.",

	// virtual subnet
	{subnet, w.KindMalformedTable, ""}:                      "The virtual subnet table must have 1 row and 6 columns, check its structure and content.",
	{subnet, w.KindLogicCheckFailed, w.FieldSubnetRate}:     "Select a virtual subnet rate from the list so the bandwidth can be checked.",
	{subnet, w.KindBandwidthTooLow, HintBandwidthRate}:      "The virtual subnet bandwidth must be at least the minimum bandwidth of the selected rate.",
	{subnet, w.KindNonNumericValue, w.FieldSubnetRate}:      "The virtual subnet rate and bandwidth must be numbers.",
	{subnet, w.KindNonNumericValue, w.FieldBandwidth}:       "The virtual subnet rate and bandwidth must be numbers.",
	{subnet, w.KindNonNumericValue, ""}:                     "Virtual subnet frequencies must be numbers.",
	{subnet, w.KindOrderingViolation, w.FieldDownlinkStart}: "The virtual subnet downlink range cannot start above its end.",
	{subnet, w.KindOrderingViolation, w.FieldUplinkStart}:   "The virtual subnet uplink range cannot start above its end.",
	{subnet, w.KindIntervalOverlap, ""}:                     "The virtual subnet downlink and uplink ranges must not overlap, adjust them.",
	{subnet, w.KindConfigMissing, ""}:                       "The rate/bandwidth table failed to load, is empty or has invalid lines, ask the instructor to check it.",

	// any section
	{"", w.KindMalformedTable, ""}:     "Check the section is filled in the required format so it can be read.",
	{"", w.KindNonNumericValue, ""}:    "Enter numbers in numeric fields.",
	{"", w.KindLogicCheckFailed, ""}:   "A logic check could not run, review how the parameters of this section depend on each other.",
	{"", w.KindConfigMissing, ""}:      "The grader configuration is incomplete, ask the instructor to check it.",
	{"", w.KindUnsupportedSection, ""}: "This section could not be graded, ask the instructor to check the grader configuration.",
}
