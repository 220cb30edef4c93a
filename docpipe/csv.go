package docpipe

import (
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"strings"
)

// extractCSV renders a CSV file as a table: one table row per record,
// the first record as a styled header row. The raw rendition keeps one
// line per record with tab-separated fields.
func extractCSV(path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return "", "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", "", nil
	}

	var rawLines []string
	var sb strings.Builder
	sb.WriteString(`<table class="csv-table" style="border-collapse: collapse; width: 100%;">`)

	for i, record := range records {
		rawLines = append(rawLines, strings.Join(record, "\t"))

		sb.WriteString("<tr>")
		for _, field := range record {
			escaped := html.EscapeString(field)
			if i == 0 {
				sb.WriteString(`<th style="background: #667eea; color: white; padding: 8px; border: 1px solid #ddd;">` + escaped + "</th>")
			} else {
				sb.WriteString(`<td style="padding: 8px; border: 1px solid #ddd;">` + escaped + "</td>")
			}
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")

	return strings.Join(rawLines, "\n"), sb.String(), nil
}
