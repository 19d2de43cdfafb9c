package lansky

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/etnz/lansky/date"
)

// this file contains the import/export formats: the CSV ledger exports and
// the raw state document used by the console.

// ExportFilename is the default name of the ledger CSV export.
const ExportFilename = "lansky_ledger_export.csv"

// SalesExportFilename returns the default name of the sales CSV export for a year.
func SalesExportFilename(year int) string {
	return fmt.Sprintf("lansky_ledger_full_export_%d.csv", year)
}

// ExportCSV writes the whole ledger to 'w', one row per sale, then per item, then per expense.
//
// The header is TYPE,DATE,ITEM,PLATFORM/CATEGORY,IN,OUT,FEES,NET. Inventory
// rows carry the item status in the PLATFORM/CATEGORY column, and expense
// rows carry their description in the ITEM column. Amounts are written in
// their shortest decimal form ("15", "5.85"). Fields are quoted only when
// they contain a comma, a quote, a line break or a carriage return, or start
// with a space.
func ExportCSV(w io.Writer, sales []Sale, inventory []InventoryItem, expenses []Expense) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"TYPE", "DATE", "ITEM", "PLATFORM/CATEGORY", "IN", "OUT", "FEES", "NET"}}
	for _, s := range sales {
		rows = append(rows, []string{"SALE", s.Date.String(), s.ItemName, s.Platform, s.PurchasePrice.Number(), s.SalePrice.Number(), s.Fees.Number(), s.NetProfit.Number()})
	}
	for _, i := range inventory {
		rows = append(rows, []string{"INVENTORY", i.PurchaseDate.String(), i.ItemName, string(i.Status), i.PurchasePrice.Number(), "0", "0", i.PurchasePrice.Neg().Number()})
	}
	for _, e := range expenses {
		rows = append(rows, []string{"EXPENSE", e.Date.String(), e.Description, e.Category, e.Amount.Number(), "0", "0", e.Amount.Neg().Number()})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("cannot write ledger CSV: %w", err)
	}
	return nil
}

// ExportSalesCSV writes the sales to 'w' with the columns used by the tax report.
func ExportSalesCSV(w io.Writer, sales []Sale) error {
	cw := csv.NewWriter(w)
	rows := [][]string{{"Date", "Item Name", "Platform", "Sale Price", "Buy Price", "Fees", "Shipping", "Net Profit"}}
	for _, s := range sales {
		rows = append(rows, []string{s.Date.String(), s.ItemName, s.Platform, s.SalePrice.Number(), s.PurchasePrice.Number(), s.Fees.Number(), s.ShippingPaid.Number(), s.NetProfit.Number()})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("cannot write sales CSV: %w", err)
	}
	return nil
}

// rawState is the console document. Fields are listed in display order.
type rawState struct {
	Sales     []Sale          `json:"sales"`
	Expenses  []Expense       `json:"expenses"`
	Inventory []InventoryItem `json:"inventory"`
}

// ExportRawState writes the three collections as an indented JSON object
// with the keys "sales", "expenses" and "inventory".
func ExportRawState(w io.Writer, s State) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	raw := rawState{Sales: s.Sales, Expenses: s.Expenses, Inventory: s.Inventory}
	if raw.Sales == nil {
		raw.Sales = []Sale{}
	}
	if raw.Expenses == nil {
		raw.Expenses = []Expense{}
	}
	if raw.Inventory == nil {
		raw.Inventory = []InventoryItem{}
	}
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("cannot write raw state: %w", err)
	}
	return nil
}

// ImportRawState returns 's' with the collections found in 'data' replacing its own.
//
// 'data' must be a JSON object. Its keys "sales", "expenses" and "inventory"
// are each optional; other keys are ignored. A missing quarter is derived
// from the record date. The resulting state must pass [State.Validate].
// On any error 's' is returned unchanged and the error wraps [ErrInvalidImport].
func ImportRawState(s State, data []byte) (State, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &doc); err != nil {
		return s, fmt.Errorf("%w: not a JSON object: %w", ErrInvalidImport, err)
	}
	if doc == nil {
		return s, fmt.Errorf("%w: not a JSON object", ErrInvalidImport)
	}

	next := s
	if err := decodeKey(doc, "inventory", &next.Inventory); err != nil {
		return s, err
	}
	if err := decodeKey(doc, "sales", &next.Sales); err != nil {
		return s, err
	}
	if err := decodeKey(doc, "expenses", &next.Expenses); err != nil {
		return s, err
	}
	next.Sales = fillSaleQuarters(slices.Clone(next.Sales))
	next.Expenses = fillExpenseQuarters(slices.Clone(next.Expenses))

	if err := next.Validate(); err != nil {
		return s, fmt.Errorf("%w:\n%w", ErrInvalidImport, err)
	}
	return next, nil
}

// decodeKey decodes doc[key] into 'v' when the key is present and not null.
func decodeKey[T any](doc map[string]json.RawMessage, key string, v *[]T) error {
	data, ok := doc[key]
	if !ok || string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrInvalidImport, key, err)
	}
	if out == nil {
		out = []T{}
	}
	*v = out
	return nil
}

func fillSaleQuarters(sales []Sale) []Sale {
	for i := range sales {
		sales[i].Quarter = orQuarter(sales[i].Quarter, sales[i].Date)
	}
	return sales
}

func fillExpenseQuarters(expenses []Expense) []Expense {
	for i := range expenses {
		expenses[i].Quarter = orQuarter(expenses[i].Quarter, expenses[i].Date)
	}
	return expenses
}

func orQuarter(q Quarter, on date.Date) Quarter {
	if q == 0 && !on.IsZero() {
		return QuarterOf(on)
	}
	return q
}
