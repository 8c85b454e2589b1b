// Package format renders monetary amounts for display.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var locale = language.MustParse(constants.DefaultLocale)

// Currency returns amount as a Canadian-English currency string with the
// currency's symbol and thousands separators, e.g. "$1,234.56" for CAD or
// "-US$1,234.56" for USD. An empty code means CAD; an unrecognized code is
// printed ahead of the number instead of a symbol.
func Currency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = constants.DefaultCurrency
	}

	p := message.NewPrinter(locale)

	symbol := code + " "
	if unit, err := currency.ParseISO(code); err == nil {
		symbol = p.Sprint(currency.Symbol(unit))
	}

	rounded := mathutil.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	return sign + symbol + p.Sprintf("%.2f", math.Abs(rounded))
}
