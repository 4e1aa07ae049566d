package services

import "strings"

// Row maps a header name to the raw cell value of one CSV line.
type Row map[string]string

// ParseCSV splits raw CSV text into header-indexed rows. The dashboard's
// upload format is plain comma-separated text with a header line: no
// quoting, no escaping, no embedded commas. Rows shorter than the header
// yield empty strings for the missing trailing columns; longer rows have
// their extra cells dropped.
func ParseCSV(text string) []Row {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(values) {
				row[h] = strings.TrimSpace(values[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
