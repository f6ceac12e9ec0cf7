// Package format produce las etiquetas localizadas (pt-BR) de las tarjetas de métricas.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL formatea un valor monetario: "R$ 1.234,56".
func BRL(v decimal.Decimal) string {
	f := v.Round(2).InexactFloat64()
	if f < 0 {
		return printer.Sprintf("-R$ %.2f", -f)
	}
	return printer.Sprintf("R$ %.2f", f)
}

// Int formatea un entero con separador de miles: "1.234".
func Int(n int64) string {
	return printer.Sprintf("%d", n)
}

// Percent formatea un porcentaje con un decimal: "12,5%".
func Percent(v decimal.Decimal) string {
	return printer.Sprintf("%.1f%%", v.Round(1).InexactFloat64())
}

// Score formatea una nota sobre 5: "4,2/5".
func Score(v decimal.Decimal) string {
	return printer.Sprintf("%.1f/5", v.Round(1).InexactFloat64())
}
