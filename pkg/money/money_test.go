package money_test

import (
	"testing"

	"github.com/jhoicas/recetario/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat_USD(t *testing.T) {
	f := money.NewFormatter("USD")
	assert.Equal(t, "$5.00", f.Format(decimal.RequireFromString("5")))
	assert.Equal(t, "$1,234.57", f.Format(decimal.RequireFromString("1234.567")))
}

func TestFormat_SinDecimales(t *testing.T) {
	f := money.NewFormatter("JPY")
	assert.Equal(t, "¥13", f.Format(decimal.RequireFromString("12.6")))
}

func TestFormat_EURYCodigoDesconocido(t *testing.T) {
	v := decimal.RequireFromString("5.25")
	assert.Equal(t, "€5.25", money.NewFormatter("EUR").Format(v))
	assert.Equal(t, "5.25XYZ", money.NewFormatter("XYZ").Format(v))
}

func TestFormatPtr(t *testing.T) {
	f := money.NewFormatter("USD")
	assert.Equal(t, "—", f.FormatPtr(nil, "—"))
	v := decimal.NewFromInt(2)
	assert.Equal(t, "$2.00", f.FormatPtr(&v, "—"))
	assert.Equal(t, "USD", f.Code())
}
