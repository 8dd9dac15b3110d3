package local

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/w-h-a/procurement/reader"
)

func TestReadPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.txt")
	require.NoError(t, os.WriteFile(path, []byte("QUOTATION #1123 from Acme Steel"), 0o644))

	text, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, "QUOTATION #1123 from Acme Steel", text)
}

func TestReadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.csv")
	require.NoError(t, os.WriteFile(path, []byte("material,qty\nsteel,500\n"), 0o644))

	text, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Contains(t, text, "steel,500")
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestReadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

	text, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, reader.Unsupported, text)
}

func TestReadSpreadsheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "vendor"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "total"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "Acme Steel"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 12500))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	text, err := NewReader().Read(path)
	require.NoError(t, err)

	assert.Contains(t, text, "## Sheet1")
	assert.Contains(t, text, "vendor | total")
	assert.Contains(t, text, "Acme Steel | 12500")
}

func TestReadDocx(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quote.docx")

	const documentXML = `<?xml version="1.0"?>
<document>
  <body>
    <p><r><t>QUOTATION #1123</t></r></p>
    <p><r><t>Vendor: </t></r><r><t>Acme Steel</t></r></p>
  </body>
</document>`

	out, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(out)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	text, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, "QUOTATION #1123\nVendor: Acme Steel", text)
}

func TestReadDocxWithoutDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")

	out, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	_, err = NewReader().Read(path)
	require.Error(t, err)
}
