package lansky

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/lansky/date"
)

var (
	// ErrNotFound is returned when a command names an unknown id. The state is left unchanged.
	ErrNotFound = errors.New("not found")
	// ErrAlreadySold is returned when selling an item that is not available anymore.
	ErrAlreadySold = errors.New("item already sold")
	// ErrInvalidAmount is returned for negative prices, fees or amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNotConfirmed is returned when a destructive command was not confirmed.
	ErrNotConfirmed = errors.New("not confirmed")
	// ErrInvalidImport is returned when a raw state payload is rejected.
	ErrInvalidImport = errors.New("invalid import")
)

// State is the whole ledger: the three collections and the settings.
//
// State is a value: every command returns a new State and never modifies the
// slices of the receiver, so a State can be kept as a snapshot.
// Collections are ordered most recent first.
type State struct {
	Inventory []InventoryItem
	Sales     []Sale
	Expenses  []Expense
	Settings  Settings
}

// NewState returns an empty ledger with default settings.
func NewState() State {
	return State{
		Inventory: []InventoryItem{},
		Sales:     []Sale{},
		Expenses:  []Expense{},
		Settings:  DefaultSettings(),
	}
}

// prepend returns a new slice with x in front of xs.
func prepend[T any](x T, xs []T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	return append(out, xs...)
}

// without returns a new slice without the elements matching drop.
func without[T any](xs []T, drop func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if !drop(x) {
			out = append(out, x)
		}
	}
	return out
}

// withStatus returns a copy of inventory where the item id has the given status.
func withStatus(inventory []InventoryItem, id string, status Status) []InventoryItem {
	out := slices.Clone(inventory)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}

func checkAmount(name string, m Money) error {
	if m.IsNegative() {
		return fmt.Errorf("%s %s must not be negative: %w", name, m.Number(), ErrInvalidAmount)
	}
	return nil
}

// AddInventoryItem returns a state where a new available item is first in the inventory.
func (s State) AddInventoryItem(id, name, description string, purchasePrice Money, purchased date.Date) (State, error) {
	if strings.TrimSpace(name) == "" {
		return s, fmt.Errorf("item name is required")
	}
	if purchased.IsZero() {
		return s, fmt.Errorf("purchase date is required")
	}
	if err := checkAmount("purchase price", purchasePrice); err != nil {
		return s, err
	}
	item := InventoryItem{
		ID:            id,
		ItemName:      name,
		Description:   description,
		PurchasePrice: purchasePrice,
		PurchaseDate:  purchased,
		Status:        Available,
	}
	s.Inventory = prepend(item, s.Inventory)
	return s, nil
}

// SellInventoryItem returns a state with a new sale first in the sales, and the item marked as sold.
//
// Both changes belong to the same returned State, there is no state where
// only one of them happened.
func (s State) SellInventoryItem(id, itemID string, order SaleOrder) (State, error) {
	i := FindItem(s.Inventory, itemID)
	if i < 0 {
		return s, fmt.Errorf("inventory item %q: %w", itemID, ErrNotFound)
	}
	item := s.Inventory[i]
	if !item.IsAvailable() {
		return s, fmt.Errorf("inventory item %q: %w", itemID, ErrAlreadySold)
	}
	if order.Date.IsZero() {
		return s, fmt.Errorf("sale date is required")
	}
	for _, a := range []struct {
		name string
		m    Money
	}{{"sale price", order.SalePrice}, {"fees", order.Fees}, {"shipping", order.ShippingPaid}} {
		if err := checkAmount(a.name, a.m); err != nil {
			return s, err
		}
	}

	sale := Sale{
		ID:              id,
		InventoryItemID: itemID,
		Date:            order.Date,
		ItemName:        item.ItemName,
		Description:     item.Description,
		Platform:        order.Platform,
		PurchasePrice:   item.PurchasePrice,
		SalePrice:       order.SalePrice,
		Fees:            order.Fees,
		ShippingPaid:    order.ShippingPaid,
		NetProfit:       NetProfit(order.SalePrice, item.PurchasePrice, order.Fees, order.ShippingPaid),
		Quarter:         QuarterOf(order.Date),
	}
	s.Sales = prepend(sale, s.Sales)
	s.Inventory = withStatus(s.Inventory, itemID, Sold)
	return s, nil
}

// DeleteInventoryItem returns a state without the item and without any sale referencing it.
func (s State) DeleteInventoryItem(id string) (State, error) {
	if FindItem(s.Inventory, id) < 0 {
		return s, fmt.Errorf("inventory item %q: %w", id, ErrNotFound)
	}
	s.Inventory = without(s.Inventory, func(i InventoryItem) bool { return i.ID == id })
	s.Sales = without(s.Sales, func(x Sale) bool { return x.InventoryItemID == id })
	return s, nil
}

// DeleteSale returns a state without the sale. The item it came from, if
// still in the inventory, is available again.
func (s State) DeleteSale(id string) (State, error) {
	i := FindSale(s.Sales, id)
	if i < 0 {
		return s, fmt.Errorf("sale %q: %w", id, ErrNotFound)
	}
	if ref := s.Sales[i].InventoryItemID; ref != "" {
		s.Inventory = withStatus(s.Inventory, ref, Available)
	}
	s.Sales = without(s.Sales, func(x Sale) bool { return x.ID == id })
	return s, nil
}

// AddExpense returns a state where a new expense is first in the expenses.
func (s State) AddExpense(id string, on date.Date, category string, amount Money, description string) (State, error) {
	if on.IsZero() {
		return s, fmt.Errorf("expense date is required")
	}
	if strings.TrimSpace(category) == "" {
		return s, fmt.Errorf("expense category is required")
	}
	if err := checkAmount("amount", amount); err != nil {
		return s, err
	}
	e := Expense{
		ID:          id,
		Date:        on,
		Category:    category,
		Amount:      amount,
		Description: description,
		Quarter:     QuarterOf(on),
	}
	s.Expenses = prepend(e, s.Expenses)
	return s, nil
}

// DeleteExpense returns a state without the expense.
func (s State) DeleteExpense(id string) (State, error) {
	if FindExpense(s.Expenses, id) < 0 {
		return s, fmt.Errorf("expense %q: %w", id, ErrNotFound)
	}
	s.Expenses = without(s.Expenses, func(e Expense) bool { return e.ID == id })
	return s, nil
}

// UpdateSettings returns a state with the patch merged into its settings.
func (s State) UpdateSettings(p SettingsPatch) (State, error) {
	settings, err := s.Settings.Apply(p)
	if err != nil {
		return s, err
	}
	s.Settings = settings
	return s, nil
}

// Seed returns a state whose collections are replaced by the demo dataset.
func (s State) Seed() State {
	s.Inventory, s.Sales, s.Expenses = SeedDemoData()
	return s
}

// Clear returns a state with empty collections. Settings are kept.
func (s State) Clear() State {
	s.Inventory, s.Sales, s.Expenses = []InventoryItem{}, []Sale{}, []Expense{}
	return s
}
