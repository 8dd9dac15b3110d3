package local

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/w-h-a/procurement/reader"
	"github.com/xuri/excelize/v2"
)

type localReader struct{}

func (r *localReader) Read(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".csv", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	case ".xlsx", ".xlsm":
		return readSpreadsheet(path)
	case ".docx":
		return readDocx(path)
	default:
		return reader.Unsupported, nil
	}
}

// readSpreadsheet renders every sheet as a pipe-delimited table so the
// model can see row/column structure.
func readSpreadsheet(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %s: %w", sheet, err)
		}

		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("## %s\n", sheet))

		for _, row := range rows {
			b.WriteString(strings.Join(row, " | "))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"body>p"`
}

type docxParagraph struct {
	Runs []string `xml:"r>t"`
}

// readDocx pulls paragraph text out of word/document.xml and joins
// paragraphs with newlines.
func readDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx %s: %w", path, err)
	}
	defer zr.Close()

	for _, file := range zr.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}

		var body docxBody
		if err := xml.Unmarshal(data, &body); err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		paragraphs := make([]string, 0, len(body.Paragraphs))
		for _, p := range body.Paragraphs {
			paragraphs = append(paragraphs, strings.Join(p.Runs, ""))
		}

		return strings.Join(paragraphs, "\n"), nil
	}

	return "", fmt.Errorf("docx %s has no document.xml", path)
}

func NewReader() reader.Reader {
	return &localReader{}
}
