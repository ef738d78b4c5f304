package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	bytesPerMiB = 1 << 20
	bytesPerGiB = 1 << 30
)

// Meter draws a bar of width cells followed by the percentage.
func Meter(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("%s%s %5.1f%%", strings.Repeat("█", filled), strings.Repeat("░", width-filled), percent)
}

// Truncate pads s to exactly width display cells, or cuts it and appends
// an ellipsis when it is wider.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return runewidth.FillRight(s, width)
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// FormatTemp renders a temperature or N/A.
func FormatTemp(t *float64) string {
	if t == nil {
		return "  N/A"
	}
	return fmt.Sprintf("%5.1f°", *t)
}

// TempStatus classifies a temperature: OK below 60°C, WARM below 80°C,
// HOT otherwise.
func TempStatus(t *float64) string {
	switch {
	case t == nil:
		return "N/A"
	case *t < 60:
		return "OK"
	case *t < 80:
		return "WARM"
	default:
		return "HOT"
	}
}

func gib(b uint64) float64 {
	return float64(b) / bytesPerGiB
}
