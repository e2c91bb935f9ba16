package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaro-labs/centime/internal/model"
)

func sampleRecords() []model.Record {
	return []model.Record{
		{ID: "a", Description: "Morning coffee", Amount: 2.5, Category: "Food", Date: "2026-08-25", Type: model.Expense},
		{ID: "b", Description: "Bus ticket", Amount: 1.2, Category: "Transport", Date: "2026-08-27", Type: model.Expense},
		{ID: "c", Description: "August salary", Amount: 1200, Date: "2026-08-27", Type: model.Income},
		{ID: "d", Description: "Evening coffee", Amount: 3, Category: "Food", Date: "2026-08-26", Type: model.Expense},
	}
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestRenderDefaultSort(t *testing.T) {
	view := NewView()
	snap := view.Render(sampleRecords())

	require.Len(t, snap.Rows, 4)
	// Newest first; b and c share a date and keep their original order.
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids(snap.Rows))
	assert.Equal(t, EmptyNone, snap.Empty)
	assert.Equal(t, 4, snap.TotalCount)
	assert.Equal(t, 4, snap.MatchedCount)
}

func TestRenderSearchFilters(t *testing.T) {
	view := NewView()
	view.SetSearch("coffee", true)
	snap := view.Render(sampleRecords())

	require.Len(t, snap.Rows, 2)
	assert.Equal(t, []string{"d", "a"}, ids(snap.Rows))
	assert.Empty(t, snap.PatternError)
	assert.Equal(t, 2, snap.MatchedCount)
	assert.Equal(t, 4, snap.TotalCount)
}

func TestRenderCaseSensitivity(t *testing.T) {
	view := NewView()
	view.SetSearch("morning", false)
	snap := view.Render(sampleRecords())
	assert.Equal(t, EmptyNoMatches, snap.Empty)

	view.SetSearch("morning", true)
	snap = view.Render(sampleRecords())
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "a", snap.Rows[0].ID)
}

func TestRenderInvalidPatternShowsAll(t *testing.T) {
	view := NewView()
	view.SetSearch("(", true)
	snap := view.Render(sampleRecords())

	assert.Equal(t, "Invalid regular expression.", snap.PatternError)
	assert.Len(t, snap.Rows, 4)
	// No matcher means no highlight spans.
	for _, row := range snap.Rows {
		assert.Empty(t, row.Spans)
		assert.Equal(t, row.Description, row.Highlighted)
	}
}

func TestRenderEmptyStates(t *testing.T) {
	view := NewView()

	snap := view.Render(nil)
	assert.Equal(t, EmptyNoRecords, snap.Empty)

	view.SetSearch("nothing matches this", true)
	snap = view.Render(sampleRecords())
	assert.Equal(t, EmptyNoMatches, snap.Empty)

	// Whitespace-only terms don't filter, so an empty list is still
	// "no records", not "no matches".
	view.SetSearch("   ", true)
	snap = view.Render(nil)
	assert.Equal(t, EmptyNoRecords, snap.Empty)
}

func TestRenderHighlightsBothProjections(t *testing.T) {
	view := NewView()
	view.SetSearch("coffee", true)
	snap := view.Render(sampleRecords())

	require.Len(t, snap.Rows, 2)
	require.Len(t, snap.Cards, 2)
	for i := range snap.Rows {
		assert.Contains(t, snap.Rows[i].Highlighted, MarkOpen+"coffee"+MarkClose)
		assert.Equal(t, snap.Rows[i].Highlighted, snap.Cards[i].Highlighted)
		assert.Equal(t, snap.Rows[i].ID, snap.Cards[i].ID)
	}
}

func TestCardDetailsLine(t *testing.T) {
	view := NewView()
	snap := view.Render(sampleRecords())

	for _, card := range snap.Cards {
		if card.ID == "c" {
			assert.Equal(t, "2026-08-27", card.Details)
		}
		if card.ID == "a" {
			assert.Equal(t, "2026-08-25 | Food", card.Details)
		}
	}
}

func TestSortByAmount(t *testing.T) {
	view := NewView()
	view.ToggleSort(SortByAmount)
	snap := view.Render(sampleRecords())
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids(snap.Rows))
}

func TestSortByDescription(t *testing.T) {
	view := NewView()
	view.ToggleSort(SortByDescription)
	snap := view.Render(sampleRecords())
	// Case-insensitive, A first.
	assert.Equal(t, []string{"c", "b", "d", "a"}, ids(snap.Rows))
}

func TestToggleSortPolicy(t *testing.T) {
	view := NewView()
	assert.Equal(t, SortState{Key: SortByDate, Order: Descending}, view.Sort())

	// Same key flips the order.
	view.ToggleSort(SortByDate)
	assert.Equal(t, SortState{Key: SortByDate, Order: Ascending}, view.Sort())
	view.ToggleSort(SortByDate)
	assert.Equal(t, SortState{Key: SortByDate, Order: Descending}, view.Sort())

	// New keys activate with their default direction.
	view.ToggleSort(SortByDescription)
	assert.Equal(t, SortState{Key: SortByDescription, Order: Ascending}, view.Sort())
	view.ToggleSort(SortByAmount)
	assert.Equal(t, SortState{Key: SortByAmount, Order: Descending}, view.Sort())
}

func TestSortIsIdempotent(t *testing.T) {
	view := NewView()
	first := view.Render(sampleRecords())
	second := view.Render(sampleRecords())
	assert.Equal(t, ids(first.Rows), ids(second.Rows))
}

func TestToggleTwiceRoundTrips(t *testing.T) {
	view := NewView()
	original := ids(view.Render(sampleRecords()).Rows)

	view.ToggleSort(SortByDate)
	view.ToggleSort(SortByDate)
	after := ids(view.Render(sampleRecords()).Rows)

	assert.Equal(t, original, after)
}

func TestStableTiesKeepOrderInBothDirections(t *testing.T) {
	tied := []model.Record{
		{ID: "x", Description: "one", Amount: 5, Date: "2026-08-20", Type: model.Income},
		{ID: "y", Description: "two", Amount: 5, Date: "2026-08-21", Type: model.Income},
		{ID: "z", Description: "three", Amount: 5, Date: "2026-08-22", Type: model.Income},
	}

	view := NewView()
	view.ToggleSort(SortByAmount) // amount desc
	assert.Equal(t, []string{"x", "y", "z"}, ids(view.Render(tied).Rows))

	view.ToggleSort(SortByAmount) // amount asc
	// Descending flips the comparator, not the sequence, so ties keep
	// their original relative order either way.
	assert.Equal(t, []string{"x", "y", "z"}, ids(view.Render(tied).Rows))
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	input := sampleRecords()
	view := NewView()
	view.ToggleSort(SortByAmount)
	view.Render(input)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{input[0].ID, input[1].ID, input[2].ID, input[3].ID})
}

func TestColumnsReflectSortState(t *testing.T) {
	view := NewView()
	snap := view.Render(sampleRecords())

	require.Len(t, snap.Columns, 3)
	for _, col := range snap.Columns {
		switch col.Key {
		case SortByDate:
			assert.True(t, col.Active)
			assert.Equal(t, Descending, col.Order)
		case SortByDescription:
			assert.False(t, col.Active)
			assert.Equal(t, Ascending, col.Order)
		case SortByAmount:
			assert.False(t, col.Active)
			assert.Equal(t, Descending, col.Order)
		}
	}
}

func TestTwoPhaseDelete(t *testing.T) {
	view := NewView()

	_, pending := view.PendingDelete()
	assert.False(t, pending)

	view.RequestDelete("a")
	id, pending := view.PendingDelete()
	assert.True(t, pending)
	assert.Equal(t, "a", id)

	// Cancel clears without acting.
	view.CancelDelete()
	_, pending = view.PendingDelete()
	assert.False(t, pending)
	_, ok := view.ConfirmDelete()
	assert.False(t, ok)

	// Confirm hands the id back and clears.
	view.RequestDelete("b")
	id, ok = view.ConfirmDelete()
	assert.True(t, ok)
	assert.Equal(t, "b", id)
	_, pending = view.PendingDelete()
	assert.False(t, pending)
}
