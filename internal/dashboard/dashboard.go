// Package dashboard recomputes the aggregate statistics shown on the
// dashboard. Every records, budget, or currency notification triggers a
// full recompute from scratch; nothing is diffed incrementally.
package dashboard

import (
	"time"

	"github.com/kamaro-labs/centime/internal/bus"
	"github.com/kamaro-labs/centime/internal/model"
)

// TrendWindow is the number of calendar days in the spending trend,
// ending today inclusive.
const TrendWindow = 7

// BudgetStatus classifies how the month is going against the budget.
type BudgetStatus int

const (
	// BudgetHidden means no budget is set, so nothing is shown.
	BudgetHidden BudgetStatus = iota
	// BudgetOK means spending is comfortably under budget.
	BudgetOK
	// BudgetNear means less than 10% of the budget remains.
	BudgetNear
	// BudgetOver means spending has exceeded the budget.
	BudgetOver
)

// TrendDay is one bar of the spending trend.
type TrendDay struct {
	Date  string
	Total float64
	// Scale is Total relative to the window's busiest day, in [0, 1].
	// Zero when the whole window is empty.
	Scale float64
}

// Summary is the full set of dashboard figures, in the reference currency.
type Summary struct {
	TotalIncome     float64
	TotalExpenses   float64
	NetBalance      float64
	TopCategory     string
	Budget          float64
	BudgetRemaining float64
	BudgetStatus    BudgetStatus
	Trend           []TrendDay
	MaxDaily        float64
	RecordCount     int
}

// Compute derives a Summary from the record list, budget, and the day the
// trend window ends on.
func Compute(records []model.Record, budget float64, today time.Time) Summary {
	s := Summary{Budget: budget, RecordCount: len(records)}

	for _, r := range records {
		if r.IsExpense() {
			s.TotalExpenses += r.Amount
		} else {
			s.TotalIncome += r.Amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpenses
	s.TopCategory = topCategory(records)
	s.BudgetRemaining = budget - s.TotalExpenses
	s.BudgetStatus = budgetStatus(budget, s.BudgetRemaining)
	s.Trend, s.MaxDaily = trend(records, today)
	return s
}

// topCategory returns the expense category with the highest summed amount,
// or "N/A" when there are no categorized expenses. Ties go to whichever
// category the map yields first; that order is implementation-defined and
// not something to rely on.
func topCategory(records []model.Record) string {
	sums := make(map[string]float64)
	for _, r := range records {
		if r.IsExpense() && r.Category != "" {
			sums[r.Category] += r.Amount
		}
	}
	top := "N/A"
	var max float64
	for category, total := range sums {
		if total > max {
			max = total
			top = category
		}
	}
	return top
}

func budgetStatus(budget, remaining float64) BudgetStatus {
	switch {
	case budget <= 0:
		return BudgetHidden
	case remaining < 0:
		return BudgetOver
	case remaining < budget*0.1:
		return BudgetNear
	default:
		return BudgetOK
	}
}

// trend sums expense amounts per calendar day over the window ending today
// inclusive, oldest day first.
func trend(records []model.Record, today time.Time) ([]TrendDay, float64) {
	byDay := make(map[string]float64)
	for _, r := range records {
		if r.IsExpense() {
			byDay[r.Date] += r.Amount
		}
	}

	days := make([]TrendDay, TrendWindow)
	var max float64
	for i := 0; i < TrendWindow; i++ {
		date := today.AddDate(0, 0, i-(TrendWindow-1)).Format(model.DateFormat)
		days[i] = TrendDay{Date: date, Total: byDay[date]}
		if days[i].Total > max {
			max = days[i].Total
		}
	}
	if max > 0 {
		for i := range days {
			days[i].Scale = days[i].Total / max
		}
	}
	return days, max
}

// Note returns the budget status wording for display. The over-budget
// message is deliberately assertive; the near-budget one cautionary.
func (s Summary) Note() string {
	switch s.BudgetStatus {
	case BudgetOver:
		return "Over budget!"
	case BudgetNear:
		return "Close to budget limit"
	case BudgetOK:
		return "Within budget"
	default:
		return ""
	}
}

// Dashboard caches the latest inputs from the bus and keeps a recomputed
// Summary available. It only ever reads the payloads it receives.
type Dashboard struct {
	records  []model.Record
	budget   float64
	settings model.CurrencySettings
	now      func() time.Time
}

// Attach subscribes a dashboard to all three notification kinds and seeds
// it with the current state.
func Attach(b *bus.Bus, records []model.Record, budget float64, settings model.CurrencySettings) *Dashboard {
	d := &Dashboard{
		records:  records,
		budget:   budget,
		settings: settings,
		now:      time.Now,
	}
	b.SubscribeRecords(func(updated []model.Record) { d.records = updated })
	b.SubscribeBudget(func(updated float64) { d.budget = updated })
	b.SubscribeCurrency(func(updated model.CurrencySettings) { d.settings = updated })
	return d
}

// Summary recomputes and returns the current figures.
func (d *Dashboard) Summary() Summary {
	return Compute(d.records, d.budget, d.now())
}

// Settings returns the currency settings the dashboard last saw.
func (d *Dashboard) Settings() model.CurrencySettings {
	return d.settings
}
