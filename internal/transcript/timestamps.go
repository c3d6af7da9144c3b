package transcript

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/subpoint/internal/transcriber"
)

// formatSegments renders timed segments one per line:
//
//	[01:23 --> 01:27] spoken text
func formatSegments(segments []transcriber.Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("[%s --> %s] %s",
			formatTimestamp(seg.Start), formatTimestamp(seg.End), strings.TrimSpace(seg.Text)))
	}
	return strings.Join(lines, "\n")
}

// formatTimestamp renders seconds as MM:SS, adding the hour field only for
// content longer than an hour.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
