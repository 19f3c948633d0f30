//
// web service that grades satellite network channel-planning
// worksheets - channel segment frequencies, channel suite, network
// analysis, point-to-point and virtual subnet parameters.
// package returns per-section error reports with study
// recommendations, and capability scores for a radar chart
// so students can track progress between attempts.
//
package otfgrade
