package worksheet

import "fmt"

// Section titles, in worksheet order.
const (
	TitleNetworkParams   = "(1) Network parameters"
	TitleStationConfig   = "(2) Station configuration"
	TitleChannelSegment  = "(3) Channel segment parameters"
	TitleChannelSuite    = "(4) Channel suite parameters"
	TitleNetworkAnalysis = "1. Network parameter analysis"
	TitlePointToPoint    = "2. Point-to-point parameters"
	TitleAddressing      = "2. Point-to-point addressing"
	TitleVirtualSubnet   = "3. Virtual subnet parameters"
)

// Scalar field labels as shown on the worksheet.
const (
	LabelSubnetID          = "Subnet ID:"
	LabelNetworkName       = "Network name:"
	LabelChannelType       = "Channel type:"
	LabelLocalCCAddress    = "Local CC address:"
	LabelRemoteXXAddress   = "Remote XX address:"
	LabelVirtualSubnetRate = "Virtual subnet rate:"
)

var (
	StationConfigHeaders   = []string{"Unit", "Station name", "Station type", "Station address", "Station location", "Serial number"}
	ChannelSegmentHeaders  = []string{"Satellite", "Downlink start", "Downlink end", "Uplink start", "Uplink end"}
	ChannelSuiteHeaders    = []string{"Name", "Rate", "Bandwidth", "Uplink center", "Downlink center"}
	NetworkAnalysisHeaders = []string{"Unit", "Station type", "Station address", "CC address", "Phone", "Serial number"}
	PointToPointHeaders    = []string{"Name", "Rate (kbps)", "Bandwidth (kHz)", "Downlink start (kHz)", "Downlink end (kHz)", "Uplink start (kHz)", "Uplink end (kHz)"}
	VirtualSubnetHeaders   = []string{"Name", "Bandwidth (kHz)", "Downlink start (kHz)", "Downlink end (kHz)", "Uplink start (kHz)", "Uplink end (kHz)"}
)

// Header returns the display label for column c (0-based).
func Header(headers []string, c int) string {
	if c >= 0 && c < len(headers) {
		return headers[c]
	}
	return fmt.Sprintf("column %d", c+1)
}
