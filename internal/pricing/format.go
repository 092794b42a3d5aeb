package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var krPrinter = message.NewPrinter(language.Swedish)

// nbsp replaces the no-break grouping spaces CLDR prescribes for sv with
// plain spaces, matching the storefront's "1 234 kr" convention.
var nbsp = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// FormatKr renders an amount for display, e.g. "1 234 kr". List and total
// displays use zero decimal places; the underlying values stay unrounded
// until this point.
func FormatKr(amount decimal.Decimal) string {
	s := krPrinter.Sprintf("%v", number.Decimal(amount.Round(0).IntPart()))
	return nbsp.Replace(s) + " kr"
}
