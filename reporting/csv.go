package reporting

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Export scopes.
const (
	ScopeFull     = "full"
	ScopeFiltered = "filtered"
	ScopeSystem   = "system"
)

// ExportFilename derives the download name of an export. Any scope other
// than full or filtered is taken as a system identifier.
func ExportFilename(scope string) string {
	switch scope {
	case ScopeFull, ScopeFiltered:
		return scope + "_license_report.csv"
	}
	return strings.ToLower(strings.TrimSpace(scope)) + "_license_report.csv"
}

// WriteCSV writes a header of column labels and one row per record. Every
// field is quoted, embedded quotes are doubled and every line ends in '\n'.
func WriteCSV[R Fielder](w io.Writer, records []R, cols Columns, f Formatter) error {
	bw := bufio.NewWriter(w)
	if err := writeLine(bw, cols.Labels()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writeLine(bw, ProjectRow(rec, cols, f)); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ToCSV renders records as CSV text.
func ToCSV[R Fielder](records []R, cols Columns, f Formatter) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = WriteCSV(&sb, records, cols, f)
	return sb.String()
}

func writeLine(w *bufio.Writer, fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
		if _, err := w.WriteString(quote(field)); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
