package reporting

import (
	"slices"
	"time"

	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

// CellKind tells the presentation layer how to render a cell.
type CellKind string

const (
	CellText          CellKind = "text"
	CellEmpty         CellKind = "empty"
	CellBadgeActive   CellKind = "badge_active"
	CellBadgeInactive CellKind = "badge_inactive"
	CellAttachment    CellKind = "attachment"
	CellNotApplicable CellKind = "not_applicable"
)

// Placeholder texts shown for cells without a value.
const (
	EmptyDisplay      = "N/A"
	AttachmentDisplay = "View"
)

// Cell one projected value. Text is always exactly what Project returns,
// which keeps tables and CSV exports identical.
type Cell struct {
	Text string   `json:"text"`
	Kind CellKind `json:"kind"`
	Ref  string   `json:"ref,omitempty"`
}

// Display returns the on-screen label of the cell.
func (c Cell) Display() string {
	switch c.Kind {
	case CellEmpty, CellNotApplicable:
		return EmptyDisplay
	case CellAttachment:
		return AttachmentDisplay
	}
	return c.Text
}

// PageState distinguishes a rendered page from an empty or unloaded one.
type PageState string

const (
	PageReady   PageState = "ready"
	PageEmpty   PageState = "empty"
	PageLoading PageState = "loading"
)

// TablePage one page of a table view.
type TablePage struct {
	Columns    Columns    `json:"columns"`
	Rows       [][]Cell   `json:"rows"`
	Pagination Pagination `json:"pagination"`
	State      PageState  `json:"state"`
}

// LoadingPage is the page of a view that has never been loaded.
func LoadingPage(cols Columns, size int) TablePage {
	return TablePage{
		Columns:    cols,
		Rows:       [][]Cell{},
		Pagination: Paginate(0, 1, size),
		State:      PageLoading,
	}
}

type identified interface {
	RecordID() string
}

// activatable records render their status column as a two-state badge.
type activatable interface {
	IsActive() bool
}

// BuildTablePage slices records to the requested page and projects every
// column. Record order is preserved.
func BuildTablePage[R Fielder](records []R, page, size int, cols Columns, f Formatter) TablePage {
	p := Paginate(len(records), page, size)
	start, end := p.Bounds(len(records))

	rows := make([][]Cell, 0, end-start)
	for _, rec := range records[start:end] {
		rows = append(rows, buildRow(rec, cols, f))
	}

	state := PageReady
	if len(rows) == 0 {
		state = PageEmpty
	}
	return TablePage{
		Columns:    cols,
		Rows:       rows,
		Pagination: p,
		State:      state,
	}
}

func buildRow(rec Fielder, cols Columns, f Formatter) []Cell {
	row := make([]Cell, len(cols))
	for i, col := range cols {
		text := Project(rec, col, f)
		cell := Cell{Text: text, Kind: CellText}

		switch {
		case col.Key == "status" && isActivatable(rec):
			cell.Kind = CellBadgeInactive
			if text == models.LicenseStatusActive {
				cell.Kind = CellBadgeActive
			}
		case col.Key == "attachment_data" || col.Key == "attachment":
			cell.Kind = CellNotApplicable
			if text != "" {
				cell.Kind = CellAttachment
				if r, ok := rec.(identified); ok {
					cell.Ref = r.RecordID()
				}
			}
		case text == "":
			cell.Kind = CellEmpty
		}
		row[i] = cell
	}
	return row
}

func isActivatable(rec Fielder) bool {
	_, ok := rec.(activatable)
	return ok
}

// SortRecent returns a copy of licenses ordered by assignment date, newest
// first. Ties keep their fetch order and unreadable dates sort last.
func SortRecent(licenses []models.License, loc *time.Location) []models.License {
	type keyed struct {
		at time.Time
		ok bool
	}
	keys := make(map[int]keyed, len(licenses))
	idx := make([]int, len(licenses))
	for i, l := range licenses {
		idx[i] = i
		ts, err := utils.ParseRecordTime(l.AssignmentDate, loc)
		keys[i] = keyed{at: ts, ok: err == nil}
	}

	slices.SortStableFunc(idx, func(a, b int) int {
		ka, kb := keys[a], keys[b]
		switch {
		case ka.ok && !kb.ok:
			return -1
		case !ka.ok && kb.ok:
			return 1
		case !ka.ok && !kb.ok:
			return 0
		}
		return kb.at.Compare(ka.at)
	})

	out := make([]models.License, len(licenses))
	for i, j := range idx {
		out[i] = licenses[j]
	}
	return out
}
