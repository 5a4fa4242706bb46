package game

import (
	"fmt"
	"time"
)

// formatFrameTime formats a frame duration as milliseconds with one decimal.
func formatFrameTime(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}
