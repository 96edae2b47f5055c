package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frenchPrinter = message.NewPrinter(language.French)

// FormatCurrency renders a non-negative, finite amount as a French euro
// string, e.g. 1234.5 -> "1 234,50 €".
func FormatCurrency(amount float64) string {
	return frenchPrinter.Sprintf("%.2f €", amount)
}
