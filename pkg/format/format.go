// Package format presenta números, montos y fechas con las convenciones pt-BR que
// usan las pantallas y el PDF de relatórios.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Máximo de decimales mostrados para cantidades.
const maxQuantityPlaces = 3

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Money "R$ 1.234,50".
func Money(d decimal.Decimal) string {
	return "R$ " + printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Number cantidad con separador de miles y solo los decimales que tenga (máx. 3).
func Number(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("%d", d.IntPart())
	}
	r := d.Round(maxQuantityPlaces)
	places := 0
	if s := r.String(); strings.Contains(s, ".") {
		places = len(s) - strings.Index(s, ".") - 1
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", places), r.InexactFloat64())
}

// Int entero con separador de miles.
func Int(n int) string {
	return printer.Sprintf("%d", n)
}

// Date "02/01/2006"; vacío para la fecha cero.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("02/01/2006")
}

// DateTime "02/01/2006 15:04"; vacío para la fecha cero.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("02/01/2006 15:04")
}
