package exporting

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
)

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func sampleDocument() TextInvoiceDocument {
	return TextInvoiceDocument{
		Number:       "12345678",
		SellerName:   "Konsult AB",
		CustomerName: "Acme AB",
		VATPercent:   25,
		Invoice: fortnoxdomain.Invoice{
			InvoiceDate: "2024-01-15",
			DueDate:     "2024-02-14",
			InvoiceRows: []fortnoxdomain.InvoiceRow{
				{Description: "Utveckling", DeliveredQuantity: 10, Price: 950, VAT: 25},
				{Description: "Licens", DeliveredQuantity: 1, Price: 1200, VAT: 25},
			},
		},
	}
}

func TestFormatTextInvoice_Layout(t *testing.T) {
	out := FormatTextInvoice(sampleDocument())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, strings.Repeat("=", 60), lines[0])
	assert.Equal(t, "FAKTURA", strings.TrimSpace(lines[1]))
	assert.Equal(t, strings.Repeat("=", 60), lines[2])
	assert.Equal(t, strings.Repeat("=", 60), lines[len(lines)-1])

	for _, line := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 60, "linha maior que 60 colunas: %q", line)
	}

	for _, label := range []string{
		"Konsult AB",
		"Fakturanummer:  12345678",
		"Fakturadatum:   2024-01-15",
		"Förfallodatum:  2024-02-14",
		"Kund:           Acme AB",
		"Beskrivning",
		"Antal",
		"À-pris",
		"Belopp",
		"Summa exkl. moms:",
		"Moms (25%):",
		"Att betala:",
	} {
		assert.Contains(t, out, label)
	}
}

func TestFormatTextInvoice_Totals(t *testing.T) {
	out := stripSpaces(FormatTextInvoice(sampleDocument()))

	assert.Contains(t, out, "Utveckling10,00950,00kr9500,00kr")
	assert.Contains(t, out, "Licens1,001200,00kr1200,00kr")
	assert.Contains(t, out, "Summaexkl.moms:10700,00kr")
	assert.Contains(t, out, "Moms(25%):2675,00kr")
	assert.Contains(t, out, "Attbetala:13375,00kr")
}

func TestFormatTextInvoice_TruncatesLongDescriptions(t *testing.T) {
	doc := sampleDocument()
	doc.Invoice.InvoiceRows = []fortnoxdomain.InvoiceRow{
		{Description: strings.Repeat("Arkitektur", 6), DeliveredQuantity: 1, Price: 100, VAT: 25},
	}

	out := FormatTextInvoice(doc)

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("Arkitektur", 3))
}

func TestFormatTextInvoice_LargeAmountsKeepWidth(t *testing.T) {
	tests := []struct {
		name     string
		row      fortnoxdomain.InvoiceRow
		ownLine  bool
		expected []string
	}{
		{
			name:     "milhões encolhem a descrição",
			row:      fortnoxdomain.InvoiceRow{Description: "Konsult", DeliveredQuantity: 1000, Price: 12345.5, VAT: 25},
			expected: []string{"12\u00a0345,50 kr", "12\u00a0345\u00a0500,00 kr"},
		},
		{
			name:     "valores enormes levam a descrição para a linha de cima",
			row:      fortnoxdomain.InvoiceRow{Description: "Konsult", DeliveredQuantity: 1000, Price: 1e12, VAT: 25},
			ownLine:  true,
			expected: []string{"1\u00a0000\u00a0000\u00a0000\u00a0000,00 kr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDocument()
			doc.Invoice.InvoiceRows = []fortnoxdomain.InvoiceRow{tt.row}

			out := FormatTextInvoice(doc)
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

			for _, line := range lines {
				assert.LessOrEqual(t, utf8.RuneCountInString(line), 60, "linha maior que 60 colunas: %q", line)
			}

			var rowLine string
			for i, line := range lines {
				if strings.HasPrefix(line, "Konsult") && !strings.HasPrefix(line, "Konsult AB") {
					rowLine = line
					if tt.ownLine {
						require.Less(t, i+1, len(lines))
						assert.Equal(t, "Konsult", line)
						rowLine = lines[i+1]
					}
					break
				}
			}
			require.NotEmpty(t, rowLine)

			for _, value := range tt.expected {
				assert.Contains(t, rowLine, " "+value)
			}
			assert.NotRegexp(t, `kr\S`, rowLine)
		})
	}
}

func TestComputeTotals_RoundsVAT(t *testing.T) {
	totals := computeTotals([]fortnoxdomain.InvoiceRow{
		{DeliveredQuantity: 1.5, Price: 333.34},
	}, 25)

	assert.Equal(t, "500.01", totals.subtotal.StringFixed(2))
	assert.Equal(t, "125.00", totals.vat.StringFixed(2))
	assert.Equal(t, "625.01", totals.total.StringFixed(2))
}
