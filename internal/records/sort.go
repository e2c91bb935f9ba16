package records

import (
	"sort"
	"strings"

	"github.com/kamaro-labs/centime/internal/model"
)

// SortKey is the record field a view can sort by.
type SortKey string

const (
	// SortByDate orders records chronologically.
	SortByDate SortKey = "date"
	// SortByAmount orders records numerically by amount.
	SortByAmount SortKey = "amount"
	// SortByDescription orders records alphabetically, case-insensitive.
	SortByDescription SortKey = "description"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	// Ascending sorts smallest first.
	Ascending SortOrder = "asc"
	// Descending sorts largest first.
	Descending SortOrder = "desc"
)

// SortState pairs the active key with its direction.
type SortState struct {
	Key   SortKey
	Order SortOrder
}

// ToggleSort applies the column-click policy: clicking the active key flips
// its direction; clicking a new key activates it with that key's default
// direction, so dates and amounts start newest/largest first and
// descriptions start at A.
func (v *View) ToggleSort(key SortKey) {
	if v.sort.Key == key {
		if v.sort.Order == Ascending {
			v.sort.Order = Descending
		} else {
			v.sort.Order = Ascending
		}
		return
	}
	v.sort = SortState{Key: key, Order: defaultOrder(key)}
}

func defaultOrder(key SortKey) SortOrder {
	if key == SortByDescription {
		return Ascending
	}
	return Descending
}

// sortRecords returns a sorted copy. The sort is stable and descending
// order flips the comparator's sign rather than reversing the result, so
// ties keep their original relative order in either direction.
func sortRecords(records []model.Record, state SortState) []model.Record {
	sorted := model.CloneRecords(records)
	cmp := comparatorFor(state.Key)
	sign := 1
	if state.Order == Descending {
		sign = -1
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sign*cmp(sorted[i], sorted[j]) < 0
	})
	return sorted
}

func comparatorFor(key SortKey) func(a, b model.Record) int {
	switch key {
	case SortByAmount:
		return func(a, b model.Record) int {
			switch {
			case a.Amount < b.Amount:
				return -1
			case a.Amount > b.Amount:
				return 1
			}
			return 0
		}
	case SortByDescription:
		return func(a, b model.Record) int {
			return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
		}
	default:
		// ISO dates compare correctly as strings.
		return func(a, b model.Record) int {
			return strings.Compare(a.Date, b.Date)
		}
	}
}
