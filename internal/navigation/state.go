// Package navigation keeps the view's category/tab/page selection in sync
// with its URL query representation, in both directions.
package navigation

import (
	"net/url"

	"github.com/hanintown/townboard/internal/taxonomy"
)

// Mode is the observable view mode
type Mode string

// View modes
const (
	ModeMain     Mode = "main"
	ModeCategory Mode = "category"
)

// Query parameter names
const (
	ParamCategory = "category"
	ParamTab      = "tab"
)

// State is the navigable view state. Page is session-local: it is never
// serialized into the query, so mid-list positions are not deep-linkable.
type State struct {
	Mode Mode   `json:"mode"`
	Main string `json:"main"`
	Sub  string `json:"sub"`
	Page int    `json:"page"`
}

// FromQuery rebuilds the state from an incoming URL query. Replaying the
// same query always yields the same state.
func FromQuery(q url.Values) State {
	if !q.Has(ParamCategory) {
		return State{Mode: ModeMain, Page: 1}
	}
	return State{
		Mode: ModeCategory,
		Main: q.Get(ParamCategory),
		Sub:  q.Get(ParamTab),
		Page: 1,
	}
}

// Query serializes the state back into its URL query form. FromQuery(s.Query())
// is a fixed point.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Mode != ModeCategory {
		return q
	}
	q.Set(ParamCategory, s.Main)
	if s.Sub != "" {
		q.Set(ParamTab, s.Sub)
	}
	return q
}

// SelectMain enters category mode on a main category, clearing any sub tab
// and resetting pagination.
func (s *State) SelectMain(main string) {
	s.Mode = ModeCategory
	s.Main = main
	s.Sub = ""
	s.Page = 1
}

// SelectTab selects a sub tab under the current main category and resets
// pagination.
func (s *State) SelectTab(sub string) {
	s.Mode = ModeCategory
	s.Sub = sub
	s.Page = 1
}

// Reset returns to the main view
func (s *State) Reset() {
	*s = State{Mode: ModeMain, Page: 1}
}

// SetPage moves to a page without touching the query-visible selection
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// Region resolves the current selection to a region value
func (s State) Region(t *taxonomy.Table) taxonomy.Region {
	return t.Region(s.Main, s.Sub)
}

// HasSelection reports whether a main category is selected
func (s State) HasSelection() bool {
	return s.Mode == ModeCategory && s.Main != ""
}
