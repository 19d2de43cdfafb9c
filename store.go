package lansky

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/etnz/lansky/date"
	"github.com/etnz/lansky/kv"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Keys of the ledger documents in the key-value store.
const (
	KeySales     = "sales"
	KeyExpenses  = "expenses"
	KeyInventory = "inventory"
	KeySettings  = "settings"
)

// Store holds the current State and persists it after every command.
//
// Commands are applied atomically: the new state is written to the backend
// first, and becomes the current state only if the write succeeded.
type Store struct {
	mu    sync.Mutex
	kv    kv.Store
	state State
	newID func() string
}

// Open loads the ledger from the backend.
//
// Each document is read independently: an absent key keeps its default
// value, and a malformed one is logged and keeps its default value too.
func Open(ctx context.Context, backend kv.Store) (*Store, error) {
	st := NewState()
	var err error
	if st.Inventory, err = load(ctx, backend, KeyInventory, func() []InventoryItem { return []InventoryItem{} }); err != nil {
		return nil, err
	}
	if st.Sales, err = load(ctx, backend, KeySales, func() []Sale { return []Sale{} }); err != nil {
		return nil, err
	}
	if st.Expenses, err = load(ctx, backend, KeyExpenses, func() []Expense { return []Expense{} }); err != nil {
		return nil, err
	}
	// settings are decoded over the defaults so missing fields keep their default.
	if st.Settings, err = load(ctx, backend, KeySettings, DefaultSettings); err != nil {
		return nil, err
	}
	st.Inventory, st.Sales, st.Expenses = nonNil(st.Inventory), nonNil(st.Sales), nonNil(st.Expenses)
	return &Store{kv: backend, state: st, newID: uuid.NewString}, nil
}

// load decodes the document 'key' over a fresh default value.
// Only backend failures are returned.
func load[T any](ctx context.Context, backend kv.Store, key string, defaults func() T) (T, error) {
	data, err := backend.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		log.Debugf("key %q is absent, using defaults", key)
		return defaults(), nil
	}
	if err != nil {
		return defaults(), fmt.Errorf("cannot load %q: %w", key, err)
	}
	v := defaults()
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warnf("ignoring malformed %q document: %v", key, err)
		return defaults(), nil
	}
	log.Debugf("loaded %q (%d bytes)", key, len(data))
	return v, nil
}

// State returns the current state. It is a snapshot: later commands do not change it.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close releases the backend.
func (s *Store) Close() error { return s.kv.Close() }

// apply runs a transition on the current state and persists the result.
func (s *Store) apply(ctx context.Context, transition func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := transition(s.state)
	if err != nil {
		return s.state, err
	}
	if err := s.persist(ctx, next); err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}

// persist writes a full snapshot of the four documents.
func (s *Store) persist(ctx context.Context, st State) error {
	entries := make(map[string][]byte, 4)
	docs := []struct {
		key string
		v   any
	}{
		{KeySales, nonNil(st.Sales)},
		{KeyExpenses, nonNil(st.Expenses)},
		{KeyInventory, nonNil(st.Inventory)},
		{KeySettings, st.Settings},
	}
	for _, d := range docs {
		data, err := json.Marshal(d.v)
		if err != nil {
			return fmt.Errorf("cannot encode %q: %w", d.key, err)
		}
		entries[d.key] = data
	}
	if err := s.kv.Put(ctx, entries); err != nil {
		return fmt.Errorf("cannot save ledger: %w", err)
	}
	log.Infof("saved ledger: %d items, %d sales, %d expenses", len(st.Inventory), len(st.Sales), len(st.Expenses))
	return nil
}

// nonNil makes empty collections encode as [] rather than null.
func nonNil[T any](xs []T) []T {
	if xs == nil {
		return []T{}
	}
	return xs
}

// AddInventoryItem records a new available item and returns it.
func (s *Store) AddInventoryItem(ctx context.Context, name, description string, purchasePrice Money, purchased date.Date) (InventoryItem, error) {
	id := s.newID()
	st, err := s.apply(ctx, func(st State) (State, error) {
		return st.AddInventoryItem(id, name, description, purchasePrice, purchased)
	})
	if err != nil {
		return InventoryItem{}, err
	}
	return st.Inventory[0], nil
}

// SellInventoryItem records the sale of an available item and returns the sale.
func (s *Store) SellInventoryItem(ctx context.Context, itemID string, order SaleOrder) (Sale, error) {
	id := s.newID()
	st, err := s.apply(ctx, func(st State) (State, error) {
		return st.SellInventoryItem(id, itemID, order)
	})
	if err != nil {
		return Sale{}, err
	}
	return st.Sales[0], nil
}

// DeleteInventoryItem removes an item and its sales.
func (s *Store) DeleteInventoryItem(ctx context.Context, id string) error {
	_, err := s.apply(ctx, func(st State) (State, error) { return st.DeleteInventoryItem(id) })
	return err
}

// DeleteSale removes a sale and makes its item available again.
func (s *Store) DeleteSale(ctx context.Context, id string) error {
	_, err := s.apply(ctx, func(st State) (State, error) { return st.DeleteSale(id) })
	return err
}

// AddExpense records a new expense and returns it.
func (s *Store) AddExpense(ctx context.Context, on date.Date, category string, amount Money, description string) (Expense, error) {
	id := s.newID()
	st, err := s.apply(ctx, func(st State) (State, error) {
		return st.AddExpense(id, on, category, amount, description)
	})
	if err != nil {
		return Expense{}, err
	}
	return st.Expenses[0], nil
}

// DeleteExpense removes an expense.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.apply(ctx, func(st State) (State, error) { return st.DeleteExpense(id) })
	return err
}

// UpdateSettings merges the patch into the settings and returns them.
func (s *Store) UpdateSettings(ctx context.Context, p SettingsPatch) (Settings, error) {
	st, err := s.apply(ctx, func(st State) (State, error) { return st.UpdateSettings(p) })
	return st.Settings, err
}

// SeedDemoData replaces the collections with the demo dataset.
func (s *Store) SeedDemoData(ctx context.Context) error {
	_, err := s.apply(ctx, func(st State) (State, error) { return st.Seed(), nil })
	return err
}

// ClearAllData empties the collections, only if confirm returns true.
// Otherwise it returns ErrNotConfirmed and nothing changes.
func (s *Store) ClearAllData(ctx context.Context, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}
	_, err := s.apply(ctx, func(st State) (State, error) { return st.Clear(), nil })
	return err
}

// ImportRawState replaces the collections present in the raw JSON document.
// See [ImportRawState] for the accepted format.
func (s *Store) ImportRawState(ctx context.Context, data []byte) error {
	_, err := s.apply(ctx, func(st State) (State, error) { return ImportRawState(st, data) })
	return err
}
