package pricing

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usEnglish = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount as a whole-dollar, thousands-separated US
// currency string, e.g. 12345 -> "$12,345".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return usEnglish.Sprintf("-$%d", -n)
	}
	return usEnglish.Sprintf("$%d", n)
}
