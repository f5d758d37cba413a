// Package csvcodec decodes the CSV dialect used by exported transaction
// files: comma-separated, double-quoted fields, "" as an escaped quote.
//
// Row-level failures are handled by an explicit Policy instead of differing
// silently by target type.
package csvcodec

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"
)

// Policy decides what happens when a single row cannot be decoded.
type Policy int

const (
	// SkipRow drops the offending row, counts it, and keeps going.
	SkipRow Policy = iota
	// FailFast aborts the whole decode on the first bad row.
	FailFast
)

// Row maps header column names to the row's field values.
type Row map[string]string

// Table is the structural decode result: header-zipped rows plus the number
// of rows dropped for a column-count mismatch.
type Table struct {
	Header  []string
	Rows    []Row
	Skipped int
}

// Decode splits data into header-zipped rows. Rows whose column count does
// not match the header are skipped and counted, never fatal.
func Decode(data []byte) (Table, error) {
	if !utf8.Valid(data) {
		return Table{}, &FormatError{Reason: "input is not valid UTF-8"}
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 2 {
		return Table{}, &MissingDataError{What: "header row"}
	}

	header := ParseRow(strings.TrimSuffix(lines[0], "\r"))

	table := Table{Header: header}
	for i, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		columns := ParseRow(line)
		if len(columns) != len(header) {
			table.Skipped++
			log.Printf("Skipping row %d with incorrect column count: %d vs %d", i+1, len(columns), len(header))
			continue
		}

		row := make(Row, len(header))
		for j, name := range header {
			row[name] = columns[j]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ParseRow splits one CSV line into trimmed fields with a single-pass scan.
// A comma inside quotes is literal and "" inside quotes is one quote.
func ParseRow(row string) []string {
	var columns []string
	var current strings.Builder
	insideQuotes := false

	runes := []rune(row)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if insideQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				insideQuotes = !insideQuotes
			}
		case ch == ',' && !insideQuotes:
			columns = append(columns, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}

	columns = append(columns, strings.TrimSpace(current.String()))
	return columns
}

// DecodeSingle decodes data into exactly one T via the generic path: each
// row becomes a JSON object decoded by T's own contract. The policy decides
// whether a row that fails to decode is skipped or aborts. Exactly one valid
// row must remain.
func DecodeSingle[T any](data []byte, policy Policy) (T, error) {
	var zero T

	table, err := Decode(data)
	if err != nil {
		return zero, err
	}

	var decoded []T
	for i, row := range table.Rows {
		jsonData, err := json.Marshal(row)
		if err != nil {
			return zero, &FormatError{Reason: fmt.Sprintf("row %d: %v", i+1, err)}
		}

		var item T
		if err := json.Unmarshal(jsonData, &item); err != nil {
			if policy == FailFast {
				return zero, fmt.Errorf("decoding error: %w", &ValidationError{Row: i + 1, Field: "record", Reason: err.Error()})
			}
			log.Printf("Skipping row %d: %v", i+1, err)
			continue
		}
		decoded = append(decoded, item)
	}

	switch len(decoded) {
	case 0:
		return zero, &MissingDataError{What: "no valid rows found in CSV"}
	case 1:
		return decoded[0], nil
	default:
		return zero, &FormatError{Reason: fmt.Sprintf("expected a single object but found %d rows", len(decoded))}
	}
}

// Encode renders a header and rows back into the dialect, quoting fields
// that contain commas or quotes.
func Encode(header []string, rows [][]string) []byte {
	var sb strings.Builder
	writeLine := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(escapeField(f))
		}
		sb.WriteByte('\n')
	}

	writeLine(header)
	for _, row := range rows {
		writeLine(row)
	}
	return []byte(sb.String())
}

func escapeField(f string) string {
	if !strings.ContainsAny(f, `",`) {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}
