// Package records implements the records view engine: it owns the
// transient search and sort state, derives a filtered and sorted view of
// the full record set on every change, and produces the table and card
// projections consumed by the renderers. It never mutates records.
package records

import (
	"strings"

	"github.com/kamaro-labs/centime/internal/model"
	"github.com/kamaro-labs/centime/internal/search"
)

// Markers wrapped around matched description spans in the projections.
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

// EmptyKind says why a snapshot has nothing to show.
type EmptyKind int

const (
	// EmptyNone means there are rows to display.
	EmptyNone EmptyKind = iota
	// EmptyNoRecords means the record list itself is empty.
	EmptyNoRecords
	// EmptyNoMatches means records exist but none match the search.
	EmptyNoMatches
)

// View holds the transient UI state of the records list.
type View struct {
	searchTerm      string
	caseInsensitive bool
	sort            SortState
	pendingDelete   string
}

// NewView returns a view with the default state: case-insensitive search,
// newest records first.
func NewView() *View {
	return &View{
		caseInsensitive: true,
		sort:            SortState{Key: SortByDate, Order: Descending},
	}
}

// SetSearch updates the search term and case flag.
func (v *View) SetSearch(term string, caseInsensitive bool) {
	v.searchTerm = term
	v.caseInsensitive = caseInsensitive
}

// Search returns the current search term and case flag.
func (v *View) Search() (term string, caseInsensitive bool) {
	return v.searchTerm, v.caseInsensitive
}

// Sort returns the current sort state.
func (v *View) Sort() SortState {
	return v.sort
}

// Snapshot is the derived view of one render pass.
type Snapshot struct {
	Rows         []Row
	Cards        []Card
	Columns      []Column
	Sort         SortState
	Empty        EmptyKind
	PatternError string
	TotalCount   int
	MatchedCount int
}

// Row is the table projection of one record.
type Row struct {
	ID          string
	Description string
	Highlighted string
	Spans       [][2]int
	Date        string
	Category    string
	Amount      float64
	Type        model.TransactionType
}

// Card is the card-list projection of one record: description and amount up
// front, date and category folded into one detail line.
type Card struct {
	ID          string
	Description string
	Highlighted string
	Spans       [][2]int
	Details     string
	Amount      float64
	Type        model.TransactionType
}

// Column describes one sortable table header.
type Column struct {
	Key    SortKey
	Title  string
	Active bool
	Order  SortOrder
}

// Render derives the full view from the given record list and the view's
// current state. An invalid search pattern falls back to showing every
// record with PatternError set; an empty (trimmed) pattern means no filter.
func (v *View) Render(all []model.Record) Snapshot {
	snap := Snapshot{Sort: v.sort, TotalCount: len(all)}

	visible := all
	var matcher *search.Matcher
	if term := strings.TrimSpace(v.searchTerm); term != "" {
		m, err := search.Compile(term, v.caseInsensitive)
		if err != nil {
			snap.PatternError = "Invalid regular expression."
		} else {
			matcher = m
			visible = filterRecords(all, matcher)
		}
	}
	snap.MatchedCount = len(visible)

	if len(visible) == 0 {
		if strings.TrimSpace(v.searchTerm) != "" {
			snap.Empty = EmptyNoMatches
		} else {
			snap.Empty = EmptyNoRecords
		}
		return snap
	}

	sorted := sortRecords(visible, v.sort)

	snap.Rows = make([]Row, len(sorted))
	snap.Cards = make([]Card, len(sorted))
	for i, r := range sorted {
		snap.Rows[i] = Row{
			ID:          r.ID,
			Description: r.Description,
			Highlighted: matcher.Highlight(r.Description, MarkOpen, MarkClose),
			Spans:       matcher.Spans(r.Description),
			Date:        r.Date,
			Category:    r.Category,
			Amount:      r.Amount,
			Type:        r.Type,
		}
		snap.Cards[i] = Card{
			ID:          r.ID,
			Description: r.Description,
			Highlighted: matcher.Highlight(r.Description, MarkOpen, MarkClose),
			Spans:       matcher.Spans(r.Description),
			Details:     cardDetails(r),
			Amount:      r.Amount,
			Type:        r.Type,
		}
	}
	snap.Columns = v.columns()
	return snap
}

func filterRecords(all []model.Record, matcher *search.Matcher) []model.Record {
	matched := make([]model.Record, 0, len(all))
	for _, r := range all {
		if matcher.MatchString(r.Description) {
			matched = append(matched, r)
		}
	}
	return matched
}

func cardDetails(r model.Record) string {
	if r.Category != "" {
		return r.Date + " | " + r.Category
	}
	return r.Date
}

func (v *View) columns() []Column {
	cols := []Column{
		{Key: SortByDescription, Title: "Description"},
		{Key: SortByDate, Title: "Date"},
		{Key: SortByAmount, Title: "Amount"},
	}
	for i := range cols {
		cols[i].Order = defaultOrder(cols[i].Key)
		if cols[i].Key == v.sort.Key {
			cols[i].Active = true
			cols[i].Order = v.sort.Order
		}
	}
	return cols
}
