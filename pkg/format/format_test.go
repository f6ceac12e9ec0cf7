package format_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/aircatering-bi/pkg/format"
)

func TestBRL(t *testing.T) {
	assert.Equal(t, "R$ 450,00", format.BRL(decimal.RequireFromString("450")))
	assert.Equal(t, "R$ 1.234,50", format.BRL(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-R$ 10,00", format.BRL(decimal.RequireFromString("-10")))
}

func TestInt(t *testing.T) {
	assert.Equal(t, "1.234", format.Int(1234))
	assert.Equal(t, "12", format.Int(12))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12,5%", format.Percent(decimal.RequireFromString("12.5")))
}
