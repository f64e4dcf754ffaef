package exporting

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	fortnoxdomain "github.com/vfg2006/consultant-dashboard-api/infrastructure/integrator/fortnox/domain"
	"github.com/vfg2006/consultant-dashboard-api/pkg/finance"
)

const (
	lineWidth        = 60
	descriptionWidth = 24
	quantityWidth    = 8
	amountWidth      = 14
)

// TextInvoiceDocument reúne os dados impressos na fatura em texto
type TextInvoiceDocument struct {
	Number       string
	SellerName   string
	CustomerName string
	VATPercent   int
	Invoice      fortnoxdomain.Invoice
}

type invoiceTotals struct {
	subtotal decimal.Decimal
	vat      decimal.Decimal
	total    decimal.Decimal
}

func computeTotals(rows []fortnoxdomain.InvoiceRow, vatPercent int) invoiceTotals {
	subtotal := decimal.Zero
	for _, row := range rows {
		subtotal = subtotal.Add(rowAmount(row))
	}

	vat := subtotal.Mul(decimal.NewFromInt(int64(vatPercent))).Div(decimal.NewFromInt(100)).Round(2)

	return invoiceTotals{
		subtotal: subtotal,
		vat:      vat,
		total:    subtotal.Add(vat),
	}
}

func rowAmount(row fortnoxdomain.InvoiceRow) decimal.Decimal {
	return decimal.NewFromFloat(row.DeliveredQuantity).Mul(decimal.NewFromFloat(row.Price)).Round(2)
}

// FormatTextInvoice gera o documento em largura fixa de 60 colunas, com rótulos em sueco
func FormatTextInvoice(doc TextInvoiceDocument) string {
	var b strings.Builder
	divider := strings.Repeat("=", lineWidth)

	b.WriteString(divider + "\n")
	b.WriteString(center("FAKTURA", lineWidth) + "\n")
	b.WriteString(divider + "\n")

	if doc.SellerName != "" {
		b.WriteString(truncate(doc.SellerName, lineWidth) + "\n\n")
	}

	writeField(&b, "Fakturanummer:", doc.Number)
	writeField(&b, "Fakturadatum:", doc.Invoice.InvoiceDate)
	writeField(&b, "Förfallodatum:", doc.Invoice.DueDate)
	writeField(&b, "Kund:", doc.CustomerName)

	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "%-*s%*s%*s%*s\n",
		descriptionWidth, "Beskrivning",
		quantityWidth, "Antal",
		amountWidth, "À-pris",
		amountWidth, "Belopp",
	)
	b.WriteString(divider + "\n")

	for _, row := range doc.Invoice.InvoiceRows {
		writeRow(&b, row)
	}

	totals := computeTotals(doc.Invoice.InvoiceRows, doc.VATPercent)

	b.WriteString(divider + "\n")
	writeTotal(&b, "Summa exkl. moms:", totals.subtotal)
	writeTotal(&b, fmt.Sprintf("Moms (%d%%):", doc.VATPercent), totals.vat)
	writeTotal(&b, "Att betala:", totals.total)
	b.WriteString(divider + "\n")

	return b.String()
}

const (
	labelWidth          = 16
	minDescriptionWidth = 8
)

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s%s\n", labelWidth, label, truncate(value, lineWidth-labelWidth))
}

// writeRow alarga as colunas numéricas quando o valor não cabe, sempre com ao menos um espaço
// entre elas, e encolhe a descrição para manter a linha em 60 colunas. Se a descrição ficar
// estreita demais ela vai sozinha para a linha de cima.
func writeRow(b *strings.Builder, row fortnoxdomain.InvoiceRow) {
	quantity := formatQuantity(row.DeliveredQuantity)
	price := finance.FormatSEK(row.Price, 2)
	amount := finance.FormatSEK(rowAmount(row).InexactFloat64(), 2)

	qW := max(quantityWidth, utf8.RuneCountInString(quantity)+1)
	pW := max(amountWidth, utf8.RuneCountInString(price)+1)
	aW := max(amountWidth, utf8.RuneCountInString(amount)+1)

	descW := lineWidth - qW - pW - aW
	if descW < minDescriptionWidth {
		b.WriteString(truncate(row.Description, lineWidth) + "\n")
		fmt.Fprintf(b, "%*s%*s%*s\n", max(qW, lineWidth-pW-aW), quantity, pW, price, aW, amount)
		return
	}

	fmt.Fprintf(b, "%-*s%*s%*s%*s\n",
		descW, truncate(row.Description, descW-1),
		qW, quantity,
		pW, price,
		aW, amount,
	)
}

func writeTotal(b *strings.Builder, label string, amount decimal.Decimal) {
	value := finance.FormatSEK(amount.InexactFloat64(), 2)
	valueW := max(lineWidth/2, utf8.RuneCountInString(value)+1)
	fmt.Fprintf(b, "%-*s%*s\n", lineWidth-valueW, truncate(label, lineWidth-valueW-1), valueW, value)
}

func formatQuantity(q float64) string {
	return strings.Replace(decimal.NewFromFloat(q).StringFixed(2), ".", ",", 1)
}

func center(s string, width int) string {
	pad := (width - utf8.RuneCountInString(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
