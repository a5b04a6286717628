package export

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"rxconsole/internal/domain/service"
)

const (
	sheetName     = "Export"
	maxSheetWidth = 60.0
)

// xlsxExporter writes a single sheet whose first row holds the column names.
type xlsxExporter struct{}

// NewXLSXExporter creates the XLSX writer.
func NewXLSXExporter() service.Exporter {
	return xlsxExporter{}
}

func (xlsxExporter) Format() service.ExportFormat {
	return service.FormatXLSX
}

func (xlsxExporter) Write(w io.Writer, title string, rows service.ExportRows) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: title}); err != nil {
		return errors.Wrap(err, "set workbook title")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}

	widths := make([]int, len(rows.Columns))
	header := make([]any, len(rows.Columns))
	for i, col := range rows.Columns {
		header[i] = col
		widths[i] = utf8.RuneCountInString(col)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "write header row")
	}

	for r, row := range rows.Values {
		values := make([]any, len(rows.Columns))
		for i := range rows.Columns {
			if i < len(row) {
				values[i] = row[i]
				widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return errors.Wrapf(err, "write row %d", r+1)
		}
	}

	if len(rows.Columns) > 0 {
		last, err := excelize.ColumnNumberToName(len(rows.Columns))
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetCellStyle(sheetName, "A1", last+"1", bold); err != nil {
			return errors.Wrap(err, "style header row")
		}
		for i, width := range widths {
			col, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(sheetName, col, col, min(float64(width)+2, maxSheetWidth)); err != nil {
				return errors.Wrap(err, "size column")
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}

	return nil
}
