package lansky

import "github.com/etnz/lansky/date"

// Expense is a business cost not tied to a specific item.
type Expense struct {
	ID          string    `json:"id" validate:"required"`
	Date        date.Date `json:"date" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Amount      Money     `json:"amount" validate:"gte=0"`
	Description string    `json:"description"`
	Quarter     Quarter   `json:"quarter" validate:"min=1,max=4"`
}

// FindExpense returns the index of the expense with this id, or -1.
func FindExpense(expenses []Expense, id string) int {
	for i, e := range expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}
