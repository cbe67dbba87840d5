package util

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders amount with a currency symbol, thousands separators
// and two decimals, e.g. "$1,234.50". Negative amounts render as "$-12.00".
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return symbol + moneyPrinter.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
