package cmd

import (
	"testing"

	"github.com/etnz/lansky"
	"github.com/google/subcommands"
)

func TestSellScenario(t *testing.T) {
	dir := setupLedger(t)

	mustRun(t, &addItemCmd{}, "-price", "10", "-d", "2024-03-01", "Widget")
	st := ledger(t, dir)
	if len(st.Inventory) != 1 || st.Inventory[0].ItemName != "Widget" || !st.Inventory[0].IsAvailable() {
		t.Fatalf("inventory = %+v, want one available Widget", st.Inventory)
	}
	itemID := st.Inventory[0].ID

	out := mustRun(t, &sellCmd{}, "-d", "2024-03-15", "-platform", "eBay", "-price", "25", "-fees", "2.50", "-shipping", "5", itemID)
	assertContains(t, out, `Sold "Widget" on eBay for $25.00, net profit $7.50 (Q1)`)

	st = ledger(t, dir)
	if len(st.Sales) != 1 || st.Inventory[0].Status != lansky.Sold {
		t.Fatalf("after sell: sales = %+v, inventory = %+v", st.Sales, st.Inventory)
	}
	sale := st.Sales[0]
	if !sale.NetProfit.Equal(lansky.USD(7.5)) || sale.Quarter != lansky.Q1 || sale.InventoryItemID != itemID {
		t.Errorf("sale = %+v", sale)
	}

	// a sold item cannot be sold twice
	if _, status := run(t, &sellCmd{}, "-price", "30", itemID); status != subcommands.ExitFailure {
		t.Errorf("second sell status = %v, want %v", status, subcommands.ExitFailure)
	}

	assertContains(t, mustRun(t, &inventoryCmd{}), "No items in stock")
	assertContains(t, mustRun(t, &inventoryCmd{}, "-all"), "Widget", "sold")
	assertContains(t, mustRun(t, &salesCmd{}), "Widget", "eBay", "$7.50")

	mustRun(t, &deleteSaleCmd{}, sale.ID)
	st = ledger(t, dir)
	if len(st.Sales) != 0 || !st.Inventory[0].IsAvailable() {
		t.Errorf("after delete-sale: sales = %+v, inventory = %+v", st.Sales, st.Inventory)
	}

	mustRun(t, &sellCmd{}, "-price", "25", itemID)
	mustRun(t, &deleteItemCmd{}, itemID)
	st = ledger(t, dir)
	if len(st.Inventory) != 0 || len(st.Sales) != 0 {
		t.Errorf("after delete-item: inventory = %+v, sales = %+v", st.Inventory, st.Sales)
	}
}

func TestSell_DefaultPlatform(t *testing.T) {
	dir := setupLedger(t)
	mustRun(t, &addItemCmd{}, "-price", "5", "Mug")
	mustRun(t, &sellCmd{}, "-price", "8", ledger(t, dir).Inventory[0].ID)
	if got := ledger(t, dir).Sales[0].Platform; got != "eBay" {
		t.Errorf("platform = %q, want the first configured platform", got)
	}
}

func TestUnknownID(t *testing.T) {
	dir := setupLedger(t)
	mustRun(t, &seedCmd{})
	before := ledger(t, dir)

	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
	}{
		{"sell", &sellCmd{}, []string{"-price", "1", "nope"}},
		{"delete-item", &deleteItemCmd{}, []string{"nope"}},
		{"delete-sale", &deleteSaleCmd{}, []string{"nope"}},
		{"delete-expense", &deleteExpenseCmd{}, []string{"nope"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := mustRun(t, tc.cmd, tc.args...)
			assertContains(t, out, `no record with id "nope"`)
		})
	}
	after := ledger(t, dir)
	if len(after.Inventory) != len(before.Inventory) || len(after.Sales) != len(before.Sales) || len(after.Expenses) != len(before.Expenses) {
		t.Errorf("ledger changed: %+v", after)
	}
}

func TestUsageErrors(t *testing.T) {
	setupLedger(t)
	testCases := []struct {
		name string
		cmd  subcommands.Command
		args []string
	}{
		{"add-item without name", &addItemCmd{}, []string{"-price", "3"}},
		{"add-item bad date", &addItemCmd{}, []string{"-price", "3", "-d", "yesterday", "Hat"}},
		{"sell without id", &sellCmd{}, []string{"-price", "3"}},
		{"delete without id", &deleteItemCmd{}, nil},
		{"unknown category", &addExpenseCmd{}, []string{"-category", "Lunch", "-amount", "3"}},
		{"add-item without price", &addItemCmd{}, []string{"Hat"}},
		{"sell without price", &sellCmd{}, []string{"-platform", "eBay", "1"}},
		{"add-expense without amount", &addExpenseCmd{}, []string{"Tape"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, status := run(t, tc.cmd, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("status = %v, want %v", status, subcommands.ExitUsageError)
			}
		})
	}
}

func TestAddItem_NegativePrice(t *testing.T) {
	dir := setupLedger(t)
	if _, status := run(t, &addItemCmd{}, "-price", "-3", "Hat"); status != subcommands.ExitFailure {
		t.Errorf("status = %v, want %v", status, subcommands.ExitFailure)
	}
	if n := len(ledger(t, dir).Inventory); n != 0 {
		t.Errorf("%d items recorded, want none", n)
	}
}

func TestExpenses(t *testing.T) {
	dir := setupLedger(t)

	mustRun(t, &addExpenseCmd{}, "-d", "2024-05-02", "-amount", "12.30", "Printer", "paper")
	mustRun(t, &addExpenseCmd{}, "-d", "2024-11-20", "-category", "Advertising", "-amount", "40", "Promoted listings")

	st := ledger(t, dir)
	if len(st.Expenses) != 2 {
		t.Fatalf("expenses = %+v, want 2", st.Expenses)
	}
	last, first := st.Expenses[0], st.Expenses[1]
	if first.Category != "Office Supplies" || first.Description != "Printer paper" || first.Quarter != lansky.Q2 {
		t.Errorf("first expense = %+v", first)
	}
	if last.Category != "Advertising" || last.Quarter != lansky.Q4 {
		t.Errorf("last expense = %+v", last)
	}
	assertContains(t, mustRun(t, &expensesCmd{}), "Printer paper", "$12.30", "Promoted listings")

	mustRun(t, &deleteExpenseCmd{}, first.ID, last.ID)
	if n := len(ledger(t, dir).Expenses); n != 0 {
		t.Errorf("%d expenses left, want none", n)
	}
}
