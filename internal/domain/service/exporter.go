package service

import (
	"context"
	"io"
	"strings"
)

// ExportFormat is one of the supported file outputs.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatPDF  ExportFormat = "pdf"
	FormatXLSX ExportFormat = "xlsx"
)

// ParseExportFormat accepts csv, pdf or xlsx in any case.
func ParseExportFormat(raw string) (ExportFormat, bool) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatCSV, FormatPDF, FormatXLSX:
		return f, true
	default:
		return "", false
	}
}

// ContentType returns the MIME type of the format.
func (f ExportFormat) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ExportRows is the flattened, field-renamed table every writer consumes.
type ExportRows struct {
	Columns []string
	Values  [][]string
}

// Len returns the number of body rows.
func (r ExportRows) Len() int {
	return len(r.Values)
}

// Exporter renders rows into one file format.
type Exporter interface {
	Format() ExportFormat
	Write(w io.Writer, title string, rows ExportRows) error
}

// ExportArchive keeps a copy of generated exports.
type ExportArchive interface {
	Save(ctx context.Context, key string, contentType string, data []byte) error
}
