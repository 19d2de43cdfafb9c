package lansky

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/etnz/lansky/date"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator returns a validator that sees Money as a number and date.Date as a string.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if m, ok := field.Interface().(Money); ok {
			return m.Decimal().InexactFloat64()
		}
		return nil
	}, Money{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(date.Date); ok && !d.IsZero() {
			return d.String()
		}
		return ""
	}, date.Date{})
	return v
}

// fieldErrors turns validator errors into readable messages prefixed by the record name.
func fieldErrors(record string, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%s: %w", record, err)
	}
	var errs []error
	for _, fe := range ve {
		errs = append(errs, fmt.Errorf("%s: field %s fails %q", record, fe.Field(), fe.ActualTag()))
	}
	return errors.Join(errs...)
}

// Validate checks every record of the state and the links between them.
//
// It returns all the failures joined, or nil. A sale must reference an
// existing sold item (or none), and its net profit must match its inputs to
// the cent. An item is sold exactly when one sale references it. Quarters
// must match their dates.
func (s State) Validate() error {
	var errs []error

	ids := make(map[string]bool)
	unique := func(kind, id string) {
		key := kind + "/" + id
		if ids[key] {
			errs = append(errs, fmt.Errorf("duplicate %s id %q", kind, id))
		}
		ids[key] = true
	}

	for i, item := range s.Inventory {
		if err := validate.Struct(item); err != nil {
			errs = append(errs, fieldErrors(fmt.Sprintf("inventory[%d]", i), err))
		}
		unique("inventory", item.ID)
	}

	// sales per inventory item: a sold item has exactly one.
	sold := make(map[string]int)
	for i, sale := range s.Sales {
		name := fmt.Sprintf("sales[%d]", i)
		if err := validate.Struct(sale); err != nil {
			errs = append(errs, fieldErrors(name, err))
		}
		unique("sale", sale.ID)
		if sale.Quarter != QuarterOf(sale.Date) {
			errs = append(errs, fmt.Errorf("%s: quarter %q does not match date %s", name, sale.Quarter, sale.Date))
		}
		want := NetProfit(sale.SalePrice, sale.PurchasePrice, sale.Fees, sale.ShippingPaid)
		if sale.NetProfit.Cents() != want.Cents() {
			errs = append(errs, fmt.Errorf("%s: net profit %s, want %s", name, sale.NetProfit.Number(), want.Number()))
		}
		if sale.InventoryItemID == "" {
			continue
		}
		sold[sale.InventoryItemID]++
		switch j := FindItem(s.Inventory, sale.InventoryItemID); {
		case sold[sale.InventoryItemID] > 1:
			errs = append(errs, fmt.Errorf("%s: inventory item %q is already sold by another sale", name, sale.InventoryItemID))
		case j < 0:
			errs = append(errs, fmt.Errorf("%s: inventory item %q: %w", name, sale.InventoryItemID, ErrNotFound))
		case s.Inventory[j].Status != Sold:
			errs = append(errs, fmt.Errorf("%s: inventory item %q is %s, want %s", name, sale.InventoryItemID, s.Inventory[j].Status, Sold))
		}
	}

	for i, item := range s.Inventory {
		if item.Status == Sold && sold[item.ID] == 0 {
			errs = append(errs, fmt.Errorf("inventory[%d]: item %q is %s but no sale references it", i, item.ID, Sold))
		}
	}

	for i, e := range s.Expenses {
		name := fmt.Sprintf("expenses[%d]", i)
		if err := validate.Struct(e); err != nil {
			errs = append(errs, fieldErrors(name, err))
		}
		unique("expense", e.ID)
		if e.Quarter != QuarterOf(e.Date) {
			errs = append(errs, fmt.Errorf("%s: quarter %q does not match date %s", name, e.Quarter, e.Date))
		}
	}
	return errors.Join(errs...)
}
