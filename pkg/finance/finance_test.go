package finance

import (
	"math"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func TestFormatSEK(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		decimals int
		expected string
	}{
		{name: "valor inteiro com agrupamento", amount: 1234567, decimals: 0, expected: "1234567kr"},
		{name: "duas casas decimais", amount: 1234.5, decimals: 2, expected: "1234,50kr"},
		{name: "zero", amount: 0, decimals: 0, expected: "0kr"},
		{name: "casas decimais inválidas viram zero", amount: 99.4, decimals: 5, expected: "99kr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripSpaces(FormatSEK(tt.amount, tt.decimals)))
		})
	}
}

func TestFormatSEK_ExactSwedishFormat(t *testing.T) {
	assert.Equal(t, "1\u00a0234,50 kr", FormatSEK(1234.5, 2))
	assert.Equal(t, "1\u00a0234\u00a0567 kr", FormatSEK(1234567, 0))
}

func TestFormatSEK_Grouping(t *testing.T) {
	out := FormatSEK(1234567, 0)
	assert.True(t, strings.HasSuffix(out, " kr"))
	assert.NotEqual(t, "1234567 kr", out, "deveria agrupar milhares")
}

func TestFormatSEK_InvalidValues(t *testing.T) {
	assert.Equal(t, "0 kr", FormatSEK(math.NaN(), 2))
	assert.Equal(t, "0 kr", FormatSEK(math.Inf(1), 0))
	assert.Equal(t, "0 kr", FormatSEKPtr(nil, 2))

	v := 10.0
	assert.Equal(t, "10kr", stripSpaces(FormatSEKPtr(&v, 0)))
}

func TestPaymentDate(t *testing.T) {
	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), PaymentDate(from, 30))
	assert.Equal(t, from, PaymentDate(from, 0))
}

func TestBurnAndRunway(t *testing.T) {
	assert.Equal(t, 0.0, BurnRate(nil))
	assert.Equal(t, 200.0, BurnRate([]float64{100, 200, 300}))
	assert.Equal(t, 50.0, NetBurn([]float64{100, 150}, []float64{150, 200}))

	months, finite := RunwayMonths(1000, 250)
	assert.True(t, finite)
	assert.Equal(t, 4.0, months)

	_, finite = RunwayMonths(1000, 0)
	assert.False(t, finite)

	months, finite = RunwayMonths(-50, 100)
	assert.True(t, finite)
	assert.Equal(t, 0.0, months)
}

func TestProjectBalance(t *testing.T) {
	assert.Equal(t, []float64{1100, 1200, 1300}, ProjectBalance(1000, 500, 400, 3))
	assert.Empty(t, ProjectBalance(1000, 500, 400, 0))
}

func TestGrowthRateFromHistory(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "histórico vazio", values: nil, expected: 0},
		{name: "um único valor", values: []float64{100}, expected: 0},
		{name: "média inicial zero", values: []float64{0, 0, 0, 100}, expected: 0},
		{name: "crescimento de 100%", values: []float64{100, 100, 100, 200, 200, 200}, expected: 100},
		{name: "dois valores usam a mesma janela", values: []float64{200, 100}, expected: 0},
		{name: "quatro valores com janelas sobrepostas", values: []float64{100, 100, 100, 200}, expected: 100.0 / 3},
		{name: "cinco valores com janelas sobrepostas", values: []float64{100, 100, 100, 200, 200}, expected: 200.0 / 3},
		{name: "queda em três valores", values: []float64{300, 200, 100}, expected: 0},
		{name: "queda em seis valores", values: []float64{200, 200, 200, 100, 100, 100}, expected: -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GrowthRateFromHistory(tt.values), 0.0001)
		})
	}
}
