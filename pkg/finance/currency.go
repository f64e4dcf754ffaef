package finance

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const zeroSEK = "0 kr"

var printer = message.NewPrinter(language.Swedish)

// FormatSEK formata um valor em coroas suecas com 0 ou 2 casas decimais.
// NaN e infinitos viram "0 kr".
func FormatSEK(amount float64, decimals int) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return zeroSEK
	}

	if decimals != 2 {
		decimals = 0
	}

	return printer.Sprint(number.Decimal(amount, number.Scale(decimals))) + " kr"
}

// FormatSEKPtr trata valores ausentes como "0 kr"
func FormatSEKPtr(amount *float64, decimals int) string {
	if amount == nil {
		return zeroSEK
	}
	return FormatSEK(*amount, decimals)
}
