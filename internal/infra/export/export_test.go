package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gocloud.dev/blob"

	"rxconsole/internal/domain/service"
)

func sampleRows() service.ExportRows {
	return service.ExportRows{
		Columns: []string{"Name", "Email", "Phone", "Status"},
		Values: [][]string{
			{"Ada Lovelace", "ada@example.com", "5550001", "active"},
			{"Grace Hopper", "grace@example.com", "5550002", "pending"},
			{"Quote \"Driver\", Jr", "quote@example.com", "5550003", "blocked"},
		},
	}
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	return records
}

func readXLSX(t *testing.T, data []byte) [][]string {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())
	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	return rows
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	exporter := NewCSVExporter()

	require.NoError(t, exporter.Write(&buf, "Drivers", sampleRows()))

	assert.Equal(t, service.FormatCSV, exporter.Format())
	assert.True(t, strings.HasPrefix(buf.String(), "Name,Email,Phone,Status\n"))
	assert.Contains(t, buf.String(), `"Quote ""Driver"", Jr"`)
	assert.Len(t, readCSV(t, buf.Bytes()), 4)
}

func TestXLSXExporter(t *testing.T) {
	var buf bytes.Buffer
	exporter := NewXLSXExporter()

	require.NoError(t, exporter.Write(&buf, "Drivers (2024-05-15)", sampleRows()))

	rows := readXLSX(t, buf.Bytes())
	assert.Equal(t, service.FormatXLSX, exporter.Format())
	assert.Equal(t, []string{"Name", "Email", "Phone", "Status"}, rows[0])
	assert.Equal(t, []string{"Grace Hopper", "grace@example.com", "5550002", "pending"}, rows[2])
}

func TestPDFExporter(t *testing.T) {
	var buf bytes.Buffer
	exporter := &pdfExporter{author: "Pharmacy Delivery Admin"}

	require.NoError(t, exporter.Write(&buf, "Drivers (2024-05-15)", sampleRows()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
	assert.Equal(t, service.FormatPDF, exporter.Format())
	assert.Contains(t, out, "Drivers \\(2024-05-15\\)")
	for _, col := range sampleRows().Columns {
		assert.Contains(t, out, "("+col+")")
	}
}

func TestPDFExporter_ManyRowsPaginate(t *testing.T) {
	rows := service.ExportRows{Columns: []string{"ID"}}
	for range 80 {
		rows.Values = append(rows.Values, []string{"row"})
	}
	var buf bytes.Buffer

	require.NoError(t, (&pdfExporter{}).Write(&buf, "Long", rows))

	// The header row is repeated on every page.
	assert.GreaterOrEqual(t, strings.Count(buf.String(), "(ID)"), 2)
	assert.Equal(t, 80, strings.Count(buf.String(), "(row)"))
}

// Every format carries the same rows for the same input.
func TestExportersAgree(t *testing.T) {
	input := sampleRows()
	want := append([][]string{input.Columns}, input.Values...)

	var csvBuf, xlsxBuf, pdfBuf bytes.Buffer
	require.NoError(t, NewCSVExporter().Write(&csvBuf, "Drivers", input))
	require.NoError(t, NewXLSXExporter().Write(&xlsxBuf, "Drivers", input))
	require.NoError(t, (&pdfExporter{}).Write(&pdfBuf, "Drivers", input))

	assert.Equal(t, want, readCSV(t, csvBuf.Bytes()))
	assert.Equal(t, want, readXLSX(t, xlsxBuf.Bytes()))

	pdfText := pdfBuf.String()
	for _, row := range input.Values[:2] {
		for _, value := range row {
			assert.Equal(t, 1, strings.Count(pdfText, "("+value+")"), value)
		}
	}
}

func TestExportersEmptyRows(t *testing.T) {
	input := service.ExportRows{Columns: []string{"Name"}}

	for _, exporter := range []service.Exporter{NewCSVExporter(), NewXLSXExporter(), &pdfExporter{}} {
		var buf bytes.Buffer
		assert.NoError(t, exporter.Write(&buf, "Empty", input), exporter.Format())
		assert.NotZero(t, buf.Len())
	}
}

func TestBucketArchive(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	defer bucket.Close()

	archive := NewBucketArchive(bucket)

	require.NoError(t, archive.Save(ctx, "drivers/drivers-20240515-100000.csv", "text/csv; charset=utf-8", []byte("Name\n")))

	data, err := bucket.ReadAll(ctx, "drivers/drivers-20240515-100000.csv")
	require.NoError(t, err)
	assert.Equal(t, "Name\n", string(data))

	attrs, err := bucket.Attributes(ctx, "drivers/drivers-20240515-100000.csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", attrs.ContentType)
}
