// Package output renders extraction results as JSON, YAML or plain text.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukaji3/docreader-go/pkg/docreader/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes v to JSON. HTML characters are not escaped.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ToYAML serializes v to YAML with two-space indentation.
func ToYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PagesToText lists pages with a header line each:
//
//	=== Page 1 (42 chars) ===
func PagesToText(pages []models.Page) string {
	var sb strings.Builder
	for _, p := range pages {
		fmt.Fprintf(&sb, "=== Page %d (%d chars) ===\n", p.Page, p.CharCount)
		sb.WriteString(p.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// SheetsToText lists sheets with their metadata and one line per row.
func SheetsToText(sheets []models.Sheet) string {
	var sb strings.Builder
	for _, s := range sheets {
		fmt.Fprintf(&sb, "=== %s (%d rows, %d cols) ===\n", s.Name, s.Rows, s.Columns)
		writeRows(&sb, s.Data)
	}
	return sb.String()
}

// SheetMapToText lists each sheet by name followed by its rows.
func SheetMapToText(m *models.SheetMap) string {
	var sb strings.Builder
	for _, name := range m.Names() {
		rows, _ := m.Get(name)
		fmt.Fprintf(&sb, "=== Sheet: %s ===\n", name)
		writeRows(&sb, rows)
	}
	return sb.String()
}

func writeRows(sb *strings.Builder, rows []models.Row) {
	for _, row := range rows {
		sb.WriteString(RowString(row))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
}

// RowString formats a row as a bracketed, comma separated list,
// e.g. [1, "Alice", None].
func RowString(row models.Row) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
