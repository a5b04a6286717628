package export

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"rxconsole/internal/domain/service"
)

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 7.0
	pdfMargin     = 10.0
	pdfEllipsis   = "..."
)

// pdfExporter lays rows out as a landscape table: title, header row, body rows.
type pdfExporter struct {
	author   string
	compress bool
}

// NewPDFExporter creates the PDF writer. author is stamped into the document metadata.
func NewPDFExporter(author string) service.Exporter {
	return &pdfExporter{author: author, compress: true}
}

func (e *pdfExporter) Format() service.ExportFormat {
	return service.FormatPDF
}

func (e *pdfExporter) Write(w io.Writer, title string, rows service.ExportRows) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(e.compress)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(e.author, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	colWidth := pageWidth - 2*pdfMargin
	if n := len(rows.Columns); n > 0 {
		colWidth /= float64(n)
	}

	header := func() {
		pdf.SetFont(pdfFont, "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range rows.Columns {
			pdf.CellFormat(colWidth, pdfLineHeight, fit(pdf, tr, col, colWidth), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(pdfFont, "", 8)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for _, row := range rows.Values {
		for i := range rows.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(colWidth, pdfLineHeight, fit(pdf, tr, value, colWidth), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "render pdf")
	}

	return nil
}

// fit translates text for the core font and shortens it with an ellipsis until it fits the cell.
func fit(pdf *fpdf.Fpdf, tr func(string) string, text string, width float64) string {
	limit := width - 2*pdf.GetCellMargin()
	if out := tr(text); pdf.GetStringWidth(out) <= limit {
		return out
	}

	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(tr(string(runes)+pdfEllipsis)) > limit {
		runes = runes[:len(runes)-1]
	}

	return tr(string(runes) + pdfEllipsis)
}
