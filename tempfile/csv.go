package tempfile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// WriteCSV formats rows as CSV and writes them to a temporary file with the
// .csv extension. Rows must be a slice (ErrInvalidArgument otherwise); each
// element is either a slice of scalar cells or a keyed record
// (ErrInvalidFormat otherwise). When records are used, the first record's
// keys, sorted, become the header row and every record must carry exactly the
// same keys. Every cell is quoted with internal quotes doubled, rows are
// joined by newlines with no trailing newline, and an empty input yields an
// empty file.
func (m *Manager) WriteCSV(ctx context.Context, rows interface{}, opt *Options) (string, error) {
	data, err := marshalCSV(rows, opt.delimiter())
	if err != nil {
		return "", err
	}

	return m.Write(ctx, data, ".csv", opt)
}

func marshalCSV(rows interface{}, delimiter rune) ([]byte, error) {
	switch v := rows.(type) {
	case nil:
		return nil, errors.Wrap(ErrInvalidArgument, "rows are required")

	case [][]string:
		lines := make([]string, 0, len(v))
		for _, row := range v {
			cells := make([]interface{}, len(row))
			for i, c := range row {
				cells[i] = c
			}

			lines = append(lines, formatRow(cells, delimiter))
		}

		return joinRows(lines), nil

	case [][]interface{}:
		lines := make([]string, 0, len(v))
		for _, row := range v {
			lines = append(lines, formatRow(row, delimiter))
		}

		return joinRows(lines), nil

	case []map[string]interface{}:
		return marshalRecords(v, delimiter)

	case []interface{}:
		return marshalMixed(v, delimiter)

	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "rows must be a slice, got %T", rows)
	}
}

// marshalMixed handles a generic slice, e.g. the result of decoding JSON.
// All elements must be of the same shape: either cell slices or keyed records.
func marshalMixed(rows []interface{}, delimiter rune) ([]byte, error) {
	if len(rows) == 0 {
		return []byte{}, nil
	}

	switch rows[0].(type) {
	case []interface{}:
		lines := make([]string, 0, len(rows))

		for i, r := range rows {
			row, ok := r.([]interface{})
			if !ok {
				return nil, errors.Wrapf(ErrInvalidFormat, "row %v is not a sequence of cells", i)
			}

			lines = append(lines, formatRow(row, delimiter))
		}

		return joinRows(lines), nil

	case map[string]interface{}:
		records := make([]map[string]interface{}, 0, len(rows))

		for i, r := range rows {
			rec, ok := r.(map[string]interface{})
			if !ok {
				return nil, errors.Wrapf(ErrInvalidFormat, "row %v is not a keyed record", i)
			}

			records = append(records, rec)
		}

		return marshalRecords(records, delimiter)

	default:
		return nil, errors.Wrapf(ErrInvalidFormat, "row 0 has unsupported type %T", rows[0])
	}
}

func marshalRecords(records []map[string]interface{}, delimiter rune) ([]byte, error) {
	if len(records) == 0 {
		return []byte{}, nil
	}

	// map iteration order is random, sort the first record's keys for a
	// deterministic header.
	header := make([]string, 0, len(records[0]))
	for k := range records[0] {
		header = append(header, k)
	}

	sort.Strings(header)

	lines := make([]string, 0, len(records)+1)

	headerCells := make([]interface{}, len(header))
	for i, k := range header {
		headerCells[i] = k
	}

	lines = append(lines, formatRow(headerCells, delimiter))

	for i, rec := range records {
		if len(rec) != len(header) {
			return nil, errors.Wrapf(ErrInvalidFormat, "record %v has mismatched keys", i)
		}

		cells := make([]interface{}, len(header))

		for j, k := range header {
			v, ok := rec[k]
			if !ok {
				return nil, errors.Wrapf(ErrInvalidFormat, "record %v is missing key %q", i, k)
			}

			cells[j] = v
		}

		lines = append(lines, formatRow(cells, delimiter))
	}

	return joinRows(lines), nil
}

func formatRow(cells []interface{}, delimiter rune) string {
	quoted := make([]string, len(cells))

	for i, c := range cells {
		quoted[i] = quoteCell(formatCell(c))
	}

	return strings.Join(quoted, string(delimiter))
}

func formatCell(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprintf("%v", c)
	}
}

// quoteCell quotes unconditionally and doubles internal quote characters.
func quoteCell(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func joinRows(lines []string) []byte {
	return []byte(strings.Join(lines, "\n"))
}
