package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 7.0
	pdfLabelWidth = 120.0
	pdfValueWidth = 60.0
)

var groupLabels = map[string]string{
	GroupPersonnel:      "Pessoal",
	GroupOccupancy:      "Ocupação",
	GroupUtilities:      "Utilidades",
	GroupMarketing:      "Marketing",
	GroupAdministrative: "Administrativo",
}

type dreLine struct {
	label  string
	value  float64
	bold   bool
	indent bool
}

// RenderDREPDF escreve o DRE em PDF. A quebra de página é controlada
// manualmente para que o cabeçalho se repita em todas as páginas.
func RenderDREPDF(restaurant *domain.Restaurant, dre *domain.DRE, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	printer := message.NewPrinter(language.BrazilianPortuguese)

	_, pageHeight := pdf.GetPageSize()
	header := func() {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, tr("DRE - "+restaurant.Name), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Período: %s a %s",
			dre.Period.Start.Format("02/01/2006"), dre.Period.End.Format("02/01/2006"))), "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}
	ensureSpace := func(height float64) {
		if pdf.GetY()+height > pageHeight-pdfMargin {
			header()
		}
	}

	header()
	for _, line := range dreLines(dre) {
		ensureSpace(pdfLineHeight)

		style := ""
		if line.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)

		label := line.label
		if line.indent {
			label = "    " + label
		}
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(label), "B", 0, "L", false, 0, "")
		pdf.CellFormat(pdfValueWidth, pdfLineHeight, formatMoney(printer, line.value), "B", 1, "R", false, 0, "")
	}

	ensureSpace(3 * pdfLineHeight)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, pdfLineHeight, tr("Indicadores"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, margin := range []struct {
		label string
		value float64
	}{
		{"Margem bruta", dre.Margins.GrossMargin},
		{"Margem operacional", dre.Margins.OperatingMargin},
		{"Margem líquida", dre.Margins.NetMargin},
		{"CMV sobre receita líquida", dre.Margins.CMVPercentage},
	} {
		ensureSpace(pdfLineHeight)
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, tr(margin.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(pdfValueWidth, pdfLineHeight, printer.Sprintf("%.2f%%", margin.value), "", 1, "R", false, 0, "")
	}

	ensureSpace(pdfLineHeight)
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, tr("Gerado em "+dre.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("erro ao montar PDF: %w", err)
	}
	return pdf.Output(w)
}

func dreLines(dre *domain.DRE) []dreLine {
	lines := []dreLine{
		{label: "Receita bruta", value: dre.GrossRevenue, bold: true},
		{label: "Vendas de alimentos", value: dre.FoodSales, indent: true},
		{label: "Vendas de bebidas", value: dre.BeverageSales, indent: true},
		{label: "(-) Impostos", value: -dre.Taxes, indent: true},
		{label: "(-) Taxas de cartão", value: -dre.CardFees, indent: true},
		{label: "Receita líquida", value: dre.NetRevenue, bold: true},
		{label: "(-) CMV", value: -dre.CMV, indent: true},
		{label: "Lucro bruto", value: dre.GrossProfit, bold: true},
	}

	for _, group := range dre.OperatingExpenses {
		lines = append(lines, dreLine{label: "(-) " + groupLabels[group.Group], value: -group.Total, indent: true})
	}

	return append(lines,
		dreLine{label: "Despesas operacionais", value: -dre.TotalOperating, bold: true},
		dreLine{label: "Resultado operacional", value: dre.OperatingResult, bold: true},
		dreLine{label: "Resultado líquido", value: dre.NetResult, bold: true},
	)
}

func formatMoney(printer *message.Printer, value float64) string {
	if value < 0 {
		return printer.Sprintf("-R$ %.2f", -value)
	}
	return printer.Sprintf("R$ %.2f", value)
}

// PDFFileName sugere o nome do arquivo para download
func PDFFileName(period domain.Period) string {
	return fmt.Sprintf("dre_%s_%s.pdf", period.Start.Format(time.DateOnly), period.End.Format(time.DateOnly))
}
