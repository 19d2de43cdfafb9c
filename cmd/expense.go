package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/config"
	"github.com/etnz/lansky/renderer"
	"github.com/google/subcommands"
)

type addExpenseCmd struct {
	date     string
	category string
	amount   lansky.Money
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a business expense" }
func (*addExpenseCmd) Usage() string {
	return `lansky add-expense -amount <amount> [-category <category>] [-d <date>] <description>

  Records an expense. The category must be listed in the settings, it
  defaults to the first one.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Expense date (defaults to today)")
	f.StringVar(&c.category, "category", "", "Expense category")
	f.Var(&c.amount, "amount", "Amount paid")
}

func (c *addExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !requireFlag(f, "amount") {
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	description := strings.TrimSpace(strings.Join(f.Args(), " "))
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		categories := store.State().Settings.ExpenseCategories
		category := c.category
		if category == "" && len(categories) > 0 {
			category = categories[0]
		}
		if !slices.Contains(categories, category) {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q, use one of: %s\n", category, strings.Join(categories, ", "))
			return subcommands.ExitUsageError
		}
		e, err := store.AddExpense(ctx, on, category, c.amount, description)
		if err != nil {
			return commandError("add expense", "", err)
		}
		fmt.Fprintf(stdout, "Added %s expense of %s (%s), id %s\n", e.Category, e.Amount, e.Quarter, e.ID)
		return subcommands.ExitSuccess
	})
}

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list the expenses" }
func (*expensesCmd) Usage() string {
	return `lansky expenses

  Lists the expenses, newest first.
`
}

func (*expensesCmd) SetFlags(*flag.FlagSet) {}

func (*expensesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		printMarkdown(renderer.ExpensesMarkdown(store.State().Expenses))
		return subcommands.ExitSuccess
	})
}

type deleteExpenseCmd struct{}

func (*deleteExpenseCmd) Name() string     { return "delete-expense" }
func (*deleteExpenseCmd) Synopsis() string { return "delete an expense" }
func (*deleteExpenseCmd) Usage() string {
	return `lansky delete-expense <id>...
`
}

func (*deleteExpenseCmd) SetFlags(*flag.FlagSet) {}

func (*deleteExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return deleteIDs(ctx, f, "delete expense", (*lansky.Store).DeleteExpense)
}
