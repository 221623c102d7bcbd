// Package format renders cookie amounts and payback durations the way
// the game presents them, for any front end.
package format

import (
	"fmt"
	"math"
	"strconv"
)

type scaleStep struct {
	threshold float64
	suffix    string
}

// Largest first; matches the game's display scale names.
var scales = []scaleStep{
	{1e21, "sextillion"},
	{1e18, "quintillion"},
	{1e15, "quadrillion"},
	{1e12, "trillion"},
	{1e9, "billion"},
	{1e6, "million"},
}

// Cookies renders a cookie amount with the game's scale suffixes:
// 1234 -> "1,234", 1500000 -> "1.500 million"
func Cookies(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	if math.IsInf(v, 0) {
		return "infinity"
	}
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}
	for _, s := range scales {
		if v >= s.threshold {
			return fmt.Sprintf("%s%.3f %s", neg, v/s.threshold, s.suffix)
		}
	}
	if v >= 1000 {
		return neg + groupThousands(math.Floor(v))
	}
	if v == math.Trunc(v) {
		return neg + strconv.FormatFloat(v, 'f', 0, 64)
	}
	return neg + strconv.FormatFloat(v, 'f', 1, 64)
}

// Duration renders a payback time in seconds as a compact clock-style
// string; the non-finite sentinel renders as "never"
func Duration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return "never"
	}
	if seconds < 0 {
		return "never"
	}
	if seconds < 1 {
		return "<1s"
	}
	total := int64(math.Round(seconds))
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	n := len(s)
	if n <= 3 {
		return s
	}
	out := make([]byte, 0, n+n/3)
	lead := n % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
