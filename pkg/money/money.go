// Package money formatea importes decimales en la moneda configurada.
// El núcleo trabaja con una sola moneda implícita; el código ISO solo decide el formato.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter formatea importes en una moneda fija.
type Formatter struct {
	code string
}

// NewFormatter crea un formateador para el código ISO 4217 indicado (ej. "EUR", "COP").
// Un código desconocido usa el propio código como sufijo con dos decimales (ej. "5.25XYZ").
func NewFormatter(code string) Formatter {
	return Formatter{code: code}
}

// Code código de la moneda.
func (f Formatter) Code() string { return f.code }

func (f Formatter) currency() *gomoney.Currency {
	// money.New nunca devuelve una moneda nil, aunque el código no exista
	return gomoney.New(0, f.code).Currency()
}

// Format redondea v a las cifras de la moneda y lo formatea con la plantilla de go-money
// (ej. EUR 5.25 -> "€5.25").
func (f Formatter) Format(v decimal.Decimal) string {
	cur := f.currency()
	minor := v.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// FormatPtr formatea v o devuelve fallback si es nil.
func (f Formatter) FormatPtr(v *decimal.Decimal, fallback string) string {
	if v == nil {
		return fallback
	}
	return f.Format(*v)
}
