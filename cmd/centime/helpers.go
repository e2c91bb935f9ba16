package main

import (
	"github.com/spf13/viper"

	"github.com/kamaro-labs/centime/internal/bus"
	"github.com/kamaro-labs/centime/internal/config"
	"github.com/kamaro-labs/centime/internal/dashboard"
	"github.com/kamaro-labs/centime/internal/ledger"
	"github.com/kamaro-labs/centime/internal/storage"
)

// app wires the document store, the broadcast bus, the ledger, and the
// dashboard together for one command invocation.
type app struct {
	store  *storage.Store
	bus    *bus.Bus
	ledger *ledger.Ledger
	dash   *dashboard.Dashboard
}

// openApp opens the store at the configured path and builds the component
// graph on top of it.
func openApp() (*app, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/centime/centime.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}

	b := bus.New()
	led := ledger.New(store, b)
	dash := dashboard.Attach(b, led.Records(), store.LoadBudget(), store.LoadCurrency())

	return &app{store: store, bus: b, ledger: led, dash: dash}, nil
}

func (a *app) close() {
	_ = a.store.Close()
}
