package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/config"
	"github.com/etnz/lansky/renderer"
	"github.com/google/subcommands"
)

type addItemCmd struct {
	date        string
	description string
	price       lansky.Money
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "add an item to the inventory" }
func (*addItemCmd) Usage() string {
	return `lansky add-item -price <amount> [-d <date>] [-desc <description>] <name>

  Records an item bought for resale. It is available until it is sold.
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Purchase date (defaults to today)")
	f.StringVar(&c.description, "desc", "", "Optional description")
	f.Var(&c.price, "price", "Purchase price")
}

func (c *addItemCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: the item name is required.")
		return subcommands.ExitUsageError
	}
	if !requireFlag(f, "price") {
		return subcommands.ExitUsageError
	}
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		item, err := store.AddInventoryItem(ctx, name, c.description, c.price, on)
		if err != nil {
			return commandError("add item", "", err)
		}
		fmt.Fprintf(stdout, "Added %q for %s, id %s\n", item.ItemName, item.PurchasePrice, item.ID)
		return subcommands.ExitSuccess
	})
}

type inventoryCmd struct {
	all bool
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list the items in stock" }
func (*inventoryCmd) Usage() string {
	return `lansky inventory [-all]

  Lists the available items, newest first.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List the sold items too")
}

func (c *inventoryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		printMarkdown(renderer.InventoryMarkdown(store.State().Inventory, c.all))
		return subcommands.ExitSuccess
	})
}

type deleteItemCmd struct{}

func (*deleteItemCmd) Name() string     { return "delete-item" }
func (*deleteItemCmd) Synopsis() string { return "delete an inventory item and its sales" }
func (*deleteItemCmd) Usage() string {
	return `lansky delete-item <id>...

  Deletes the items, and every sale of these items.
`
}

func (*deleteItemCmd) SetFlags(*flag.FlagSet) {}

func (*deleteItemCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return deleteIDs(ctx, f, "delete item", (*lansky.Store).DeleteInventoryItem)
}

// deleteIDs runs a delete command for each id argument.
func deleteIDs(ctx context.Context, f *flag.FlagSet, action string, del func(*lansky.Store, context.Context, string) error) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one id is required.")
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		for _, id := range f.Args() {
			if err := del(store, ctx, id); err != nil {
				if status := commandError(action, id, err); status != subcommands.ExitSuccess {
					return status
				}
				continue
			}
			fmt.Fprintf(stdout, "Deleted %s\n", id)
		}
		return subcommands.ExitSuccess
	})
}
