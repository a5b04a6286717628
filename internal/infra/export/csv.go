// Package export renders table rows into downloadable files and archives them.
package export

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"rxconsole/internal/domain/service"
)

// csvExporter writes one header row followed by the body rows. The title is not part of a CSV file.
type csvExporter struct{}

// NewCSVExporter creates the CSV writer.
func NewCSVExporter() service.Exporter {
	return csvExporter{}
}

func (csvExporter) Format() service.ExportFormat {
	return service.FormatCSV
}

func (csvExporter) Write(w io.Writer, _ string, rows service.ExportRows) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(rows.Columns); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for i, row := range rows.Values {
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row %d", i+1)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "flush csv")
}
