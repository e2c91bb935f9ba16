// Package bus provides the application-scoped broadcast channel that fans
// notifications out to subscribers. Delivery is synchronous and in
// subscription order; there is no queue and no goroutine.
package bus

import "github.com/kamaro-labs/centime/internal/model"

// Bus carries the three notification kinds the application knows about.
// The ledger is the only publisher of record updates; the settings paths
// publish budget and currency updates.
type Bus struct {
	recordsSubs  []func([]model.Record)
	budgetSubs   []func(float64)
	currencySubs []func(model.CurrencySettings)
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// SubscribeRecords registers a handler for record-list changes.
func (b *Bus) SubscribeRecords(fn func([]model.Record)) {
	b.recordsSubs = append(b.recordsSubs, fn)
}

// SubscribeBudget registers a handler for budget changes.
func (b *Bus) SubscribeBudget(fn func(float64)) {
	b.budgetSubs = append(b.budgetSubs, fn)
}

// SubscribeCurrency registers a handler for currency settings changes.
func (b *Bus) SubscribeCurrency(fn func(model.CurrencySettings)) {
	b.currencySubs = append(b.currencySubs, fn)
}

// PublishRecords delivers the new full record list to every subscriber.
// Each subscriber receives its own copy and must treat it as read-only for
// that render pass.
func (b *Bus) PublishRecords(records []model.Record) {
	for _, fn := range b.recordsSubs {
		fn(model.CloneRecords(records))
	}
}

// PublishBudget delivers the new budget amount to every subscriber.
func (b *Bus) PublishBudget(budget float64) {
	for _, fn := range b.budgetSubs {
		fn(budget)
	}
}

// PublishCurrency delivers the new currency settings to every subscriber.
func (b *Bus) PublishCurrency(settings model.CurrencySettings) {
	for _, fn := range b.currencySubs {
		fn(settings)
	}
}
