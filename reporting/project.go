package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

// Fielder exposes a record's attributes by wire name. Nested objects return
// another Fielder so dotted keys can be walked.
type Fielder interface {
	Field(name string) (any, bool)
}

// Formatter carries the display settings applied to date and timestamp columns.
type Formatter struct {
	Location       *time.Location
	DateTimeLayout string
}

// NewFormatter builds a formatter for the named zone and layout; blanks fall back to defaults.
func NewFormatter(timezone, layout string) Formatter {
	if layout == "" {
		layout = utils.DefaultDateTimeLayout
	}
	return Formatter{
		Location:       utils.LoadLocation(timezone),
		DateTimeLayout: layout,
	}
}

// DefaultFormatter renders in Asia/Kolkata with the en-IN datetime layout.
func DefaultFormatter() Formatter {
	return NewFormatter(utils.DefaultTimezone, utils.DefaultDateTimeLayout)
}

// Resolve walks key through rec. A missing segment or a non-container
// intermediate value yields (nil, false).
func Resolve(rec Fielder, key string) (any, bool) {
	if rec == nil || key == "" {
		return nil, false
	}
	var current any = rec
	for _, segment := range strings.Split(key, ".") {
		container, ok := current.(Fielder)
		if !ok || container == nil {
			return nil, false
		}
		next, ok := container.Field(segment)
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Project resolves col on rec and renders it for display. Absent, zero and
// unparseable values render as "".
func Project(rec Fielder, col Column, f Formatter) string {
	raw, ok := Resolve(rec, col.Key)
	if !ok {
		return ""
	}
	text := stringify(raw)
	if text == "" {
		return ""
	}

	switch col.Format {
	case FormatDate:
		return utils.FormatDisplayDate(text, f.Location)
	case FormatDateTime:
		return utils.FormatDisplayDateTime(text, f.Location, f.DateTimeLayout)
	}
	return text
}

// ProjectRow projects every column of cols in order.
func ProjectRow(rec Fielder, cols Columns, f Formatter) []string {
	row := make([]string, len(cols))
	for i, col := range cols {
		row[i] = Project(rec, col, f)
	}
	return row
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool:
		if !v {
			return ""
		}
		return "true"
	case int, int32, int64, uint, uint32, uint64, float32, float64:
		s := fmt.Sprint(v)
		if s == "0" {
			return ""
		}
		return s
	case Fielder:
		// objects have no display form
		return ""
	}
	return fmt.Sprint(raw)
}
