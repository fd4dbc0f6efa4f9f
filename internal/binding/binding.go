// Reelscope - Streaming Catalog Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelscope

package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelscope/internal/catalog"
	"github.com/tomtom215/reelscope/internal/dashboard"
	"github.com/tomtom215/reelscope/internal/logging"
	"github.com/tomtom215/reelscope/internal/metrics"
)

// Binding update results, used as metric labels.
const (
	resultOK             = "ok"
	resultInvalid        = "invalid"
	resultUnknownControl = "unknown_control"
	resultError          = "error"
)

// Defaults are the initial selections applied when a page is opened.
type Defaults struct {
	GeoStartYear         int
	GeoEndYear           int
	CategoricalStartYear int
	CategoricalEndYear   int
	CategoricalFeature   catalog.Column
	PeopleColumn         catalog.Column
}

// Binder owns the page definitions and creates sessions. It is immutable
// and shared by every session.
type Binder struct {
	svc      *dashboard.Service
	defaults Defaults
	years    []dashboard.Option[int]
	pages    []*page
	byPath   map[string]*page
}

// NewBinder validates defaults against the feature lists and builds the
// page graphs.
func NewBinder(svc *dashboard.Service, defaults Defaults) (*Binder, error) {
	if !dashboard.HasValue(defaults.CategoricalFeature, dashboard.CategoricalFeatures) {
		return nil, fmt.Errorf("%w: default categorical feature %q", dashboard.ErrUnknownColumn, defaults.CategoricalFeature)
	}
	if !dashboard.HasValue(defaults.PeopleColumn, dashboard.PeopleColumns) {
		return nil, fmt.Errorf("%w: default people column %q", dashboard.ErrUnknownColumn, defaults.PeopleColumn)
	}

	b := &Binder{
		svc:      svc,
		defaults: defaults,
		years:    svc.YearOptions(),
		pages:    []*page{geoPage(), categoricalPage(), peoplePage()},
		byPath:   make(map[string]*page),
	}
	for _, p := range b.pages {
		b.byPath[p.path] = p
	}
	return b, nil
}

// Pages lists the navigable pages in menu order.
func (b *Binder) Pages() []PageInfo {
	out := make([]PageInfo, len(b.pages))
	for i, p := range b.pages {
		out[i] = PageInfo{Name: p.name, Path: p.path, Title: p.title}
	}
	return out
}

// NewSession creates a session with no page selected.
func (b *Binder) NewSession() *Session {
	return &Session{b: b}
}

// Render opens path in a throwaway session and returns its initial state.
func (b *Binder) Render(ctx context.Context, path string) (*State, error) {
	return b.NewSession().Navigate(ctx, path)
}

// pageState holds every selection and derived option set of the current
// page. Each page uses a subset of the fields. Slices are replaced, never
// mutated in place, so a shallow copy is a consistent snapshot.
type pageState struct {
	startYear  int
	endYear    int
	endOptions []dashboard.Option[int]

	feature         catalog.Column
	categoryOptions []dashboard.Option[string]
	categories      []string

	column        catalog.Column
	personOptions []dashboard.Option[string]
	person        string

	figure dashboard.Figure
}

// Session is the per-connection binding state. A Session is not safe for
// concurrent use; it belongs to the goroutine reading its connection.
type Session struct {
	b    *Binder
	page *page
	st   pageState
}

// Page returns the current page name, or "" before the first navigation.
func (s *Session) Page() string {
	if s.page == nil {
		return ""
	}
	return s.page.name
}

// Navigate switches to the page at path, applies its defaults and evaluates
// every node of its graph.
func (s *Session) Navigate(ctx context.Context, path string) (*State, error) {
	p, ok := s.b.byPath[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, path)
	}

	var st pageState
	p.init(s.b, &st)
	if _, err := s.evaluate(p, &st, nil); err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("page", p.name).Msg("Page initialization failed")
		return nil, err
	}

	s.page = p
	s.st = st
	return s.State(), nil
}

// State returns a snapshot of the current page, or nil before navigation.
func (s *Session) State() *State {
	if s.page == nil {
		return nil
	}
	widgets := make([]Widget, 0, len(s.page.widgets))
	for _, id := range s.page.widgets {
		widgets = append(widgets, s.page.render[id](s.b, &s.st))
	}
	return &State{
		Page:     s.page.name,
		Path:     s.page.path,
		Title:    s.page.title,
		FigureID: s.page.figureID,
		Widgets:  widgets,
		Figure:   s.st.figure,
	}
}

// Change applies a new value to control and recomputes every output that
// depends on it, in graph order. On error the session state is unchanged.
func (s *Session) Change(ctx context.Context, control string, raw json.RawMessage) (*Update, error) {
	if s.page == nil {
		return nil, ErrNoPage
	}
	p := s.page

	set, ok := p.controls[control]
	if !ok {
		metrics.RecordBindingUpdate(p.name, "unknown", resultUnknownControl)
		return nil, fmt.Errorf("%w: %s on %s", ErrUnknownControl, control, p.path)
	}

	st := s.st
	if err := set(s.b, &st, raw); err != nil {
		metrics.RecordBindingUpdate(p.name, control, resultInvalid)
		return nil, err
	}

	changed, err := s.evaluate(p, &st, map[string]bool{control: true})
	if err != nil {
		metrics.RecordBindingUpdate(p.name, control, resultError)
		if errors.Is(err, dashboard.ErrOptionNotFound) {
			logging.Ctx(ctx).Error().Err(err).Str("page", p.name).Str("control", control).
				Msg("Option lookup failed during recomputation")
		}
		return nil, err
	}
	s.st = st

	metrics.RecordBindingUpdate(p.name, control, resultOK)

	upd := &Update{Page: p.name, Changed: changed, Widgets: []Widget{}}
	for _, id := range changed {
		if id == p.figureID {
			fig := s.st.figure
			upd.Figure = &fig
			continue
		}
		upd.Widgets = append(upd.Widgets, p.render[id](s.b, &s.st))
	}
	return upd, nil
}

// evaluate runs the page's nodes in order. With dirty == nil every node
// runs; otherwise a node runs when any of its inputs is dirty, and then
// becomes dirty itself.
func (s *Session) evaluate(p *page, st *pageState, dirty map[string]bool) ([]string, error) {
	var changed []string
	for _, n := range p.nodes {
		if dirty != nil && !n.triggeredBy(dirty) {
			continue
		}
		if err := n.run(s.b, st); err != nil {
			return nil, fmt.Errorf("recompute %s: %w", n.id, err)
		}
		if dirty != nil {
			dirty[n.id] = true
		}
		changed = append(changed, n.id)
	}
	return changed, nil
}
