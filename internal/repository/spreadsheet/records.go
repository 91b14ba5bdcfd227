package spreadsheet

import (
	"fmt"
	"strings"

	"slidearchive/internal/domain"
)

// columns holds the 0-based positions of the Date, Title and Embed URL columns.
type columns [3]int

var canonicalColumns = columns{0, 1, 2}

// parseHeader locates the required columns in a header row by name.
func parseHeader(row []any) (columns, error) {
	pos := make(map[string]int, len(row))
	for i, h := range row {
		name := strings.TrimSpace(cellString(h))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	var c columns
	for i, h := range header {
		p, ok := pos[h.(string)]
		if !ok {
			return columns{}, fmt.Errorf("worksheet header is missing column %q", h)
		}
		c[i] = p
	}
	return c, nil
}

func (c columns) width() int {
	return max(c[0], c[1], c[2]) + 1
}

// row lays e out under the header; cells between the required columns are left empty.
func (c columns) row(e *domain.SlideEntry) []any {
	out := make([]any, c.width())
	for i := range out {
		out[i] = ""
	}
	out[c[0]] = e.DateString()
	out[c[1]] = e.Title
	out[c[2]] = e.EmbedURL
	return out
}

// span is the A1 column span the header occupies, e.g. "A:C".
func (c columns) span() string {
	return "A:" + columnName(c.width())
}

// columnName converts a 1-based column number to its letters: 1 is A, 27 is AA.
func columnName(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// invalidRow is a data row whose date cell does not parse.
type invalidRow struct {
	Row  int // 1-based sheet row
	Date string
}

// records is the parsed content of the worksheet.
type records struct {
	cols    columns
	entries []*domain.SlideEntry
	invalid []invalidRow
}

// parseRecords maps worksheet rows to entries by header name. The first row is
// the header; blank rows are skipped and missing trailing cells read as "".
// Rows with an unparsable date are left out and reported in invalid.
func parseRecords(rows [][]any) (records, error) {
	if len(rows) == 0 {
		return records{cols: canonicalColumns}, nil
	}
	cols, err := parseHeader(rows[0])
	if err != nil {
		return records{}, err
	}

	out := records{cols: cols}
	for n, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rawDate := cell(row, cols[0])
		date, err := domain.ParseDate(rawDate)
		if err != nil {
			// n+2: rows are 1-based and the header is row 1.
			out.invalid = append(out.invalid, invalidRow{Row: n + 2, Date: rawDate})
			continue
		}
		out.entries = append(out.entries, &domain.SlideEntry{
			Date:     date,
			Title:    cell(row, cols[1]),
			EmbedURL: cell(row, cols[2]),
		})
	}
	return out, nil
}

func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	return cellString(row[i])
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func blank(row []any) bool {
	for _, v := range row {
		if strings.TrimSpace(cellString(v)) != "" {
			return false
		}
	}
	return true
}
