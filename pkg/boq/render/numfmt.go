package render

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxExactInt bounds the integers formatted through int64.
const maxExactInt = 1 << 53

var printer = message.NewPrinter(language.English)

// FormatNumber formats v for preview with comma thousands separators.
// Integral values have no decimals, others exactly two. Zero is "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		if math.Abs(v) < maxExactInt {
			return printer.Sprintf("%d", int64(v))
		}
		return printer.Sprintf("%.0f", v)
	}
	return printer.Sprintf("%.2f", v)
}
