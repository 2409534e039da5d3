package viewmodels

import (
	"gridfilter/internal/domain"
	"gridfilter/internal/logic"
)

// FilteredView is a predicate-filtered projection over a record store.
// It is not safe for concurrent use; the UI event loop owns it.
type FilteredView struct {
	store   logic.RecordStore
	filter  logic.RowFilter
	query   string
	visible []domain.Record
}

// NewFilteredView creates a view showing every record of store.
// A nil filter selects logic.ColumnFilter.
func NewFilteredView(store logic.RecordStore, filter logic.RowFilter) *FilteredView {
	if filter == nil {
		filter = logic.ColumnFilter{}
	}
	v := &FilteredView{
		store:  store,
		filter: filter,
	}
	v.Refresh()
	return v
}

// SetQuery replaces the current query and refreshes the view.
// It reports whether the query actually changed.
func (v *FilteredView) SetQuery(query string) bool {
	if query == v.query {
		return false
	}
	v.query = query
	v.Refresh()
	return true
}

// Refresh re-evaluates the filter over every record in store order
func (v *FilteredView) Refresh() []domain.Record {
	all := v.store.All()
	visible := make([]domain.Record, 0, len(all))
	for i := range all {
		if v.filter.Matches(v.query, &all[i]) {
			visible = append(visible, all[i])
		}
	}
	v.visible = visible
	return visible
}

// Query returns the query applied by the last SetQuery
func (v *FilteredView) Query() string { return v.query }

// Visible returns the records that passed the last refresh
func (v *FilteredView) Visible() []domain.Record { return v.visible }

// Total returns the number of records regardless of the query
func (v *FilteredView) Total() int { return v.store.Len() }

// IsFiltered reports whether a non-empty query is applied
func (v *FilteredView) IsFiltered() bool { return v.query != "" }
