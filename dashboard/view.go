package dashboard

import (
	"sync"

	"github.com/yuvraj-revolt-motors/license-tracker/reporting"
)

// View is the controller of one table context. Fetches are sequenced: Begin
// issues a token and Commit only accepts the most recently issued one.
type View[R reporting.Fielder] struct {
	name    ViewName
	columns func(ViewState) reporting.Columns

	mu      sync.Mutex
	state   ViewState
	records []R
	loaded  bool
	seq     uint64
	pending func(*ViewState)
}

// NewView creates an unloaded view rendering columns.
func NewView[R reporting.Fielder](name ViewName, columns func(ViewState) reporting.Columns) *View[R] {
	return &View[R]{
		name:    name,
		columns: columns,
		state:   NewViewState(),
	}
}

// StaticColumns adapts a fixed column list for NewView.
func StaticColumns(cols reporting.Columns) func(ViewState) reporting.Columns {
	return func(ViewState) reporting.Columns { return cols }
}

// Name returns the view identifier.
func (v *View[R]) Name() ViewName {
	return v.name
}

// Begin issues a new fetch token and returns the state the fetch is made for.
// update is staged against a copy; the view's state only changes when the
// fetch under this token commits.
func (v *View[R]) Begin(update func(*ViewState)) (uint64, ViewState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.pending = update

	next := v.state
	if update != nil {
		update(&next)
	}
	return v.seq, next
}

// Commit installs records fetched under token together with the staged
// state. A superseded token is rejected with ErrStaleFetch and the current
// snapshot and state are kept.
func (v *View[R]) Commit(token uint64, records []R) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.seq {
		staleFetchesTotal.WithLabelValues(string(v.name)).Inc()
		return ErrStaleFetch
	}
	if v.pending != nil {
		v.pending(&v.state)
		v.pending = nil
	}
	v.records = records
	v.loaded = true
	v.state = v.state.Clamp(len(records))
	return nil
}

// Navigate re-pages the current snapshot.
func (v *View[R]) Navigate(page, size int, f reporting.Formatter) (reporting.TablePage, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	next, err := v.state.Navigate(page, size, len(v.records))
	if err != nil {
		return reporting.TablePage{}, err
	}
	v.state = next
	return v.renderLocked(f), nil
}

// Render builds the current page without changing state.
func (v *View[R]) Render(f reporting.Formatter) reporting.TablePage {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renderLocked(f)
}

func (v *View[R]) renderLocked(f reporting.Formatter) reporting.TablePage {
	cols := v.columns(v.state)
	if !v.loaded {
		return reporting.LoadingPage(cols, v.state.PageSize)
	}
	return reporting.BuildTablePage(v.records, v.state.Page, v.state.PageSize, cols, f)
}

// Snapshot returns a copy of the loaded records and whether the view was ever loaded.
func (v *View[R]) Snapshot() ([]R, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]R, len(v.records))
	copy(out, v.records)
	return out, v.loaded
}

// State returns the current view state.
func (v *View[R]) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Columns returns the columns the view currently renders.
func (v *View[R]) Columns() reporting.Columns {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.columns(v.state)
}
