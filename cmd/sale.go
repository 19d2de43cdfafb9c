package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/config"
	"github.com/etnz/lansky/renderer"
	"github.com/google/subcommands"
)

type sellCmd struct {
	date     string
	platform string
	price    lansky.Money
	fees     lansky.Money
	shipping lansky.Money
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an inventory item" }
func (*sellCmd) Usage() string {
	return `lansky sell -price <amount> [-platform <name>] [-fees <amount>] [-shipping <amount>] [-d <date>] <item-id>

  Records a sale and marks the item sold. The net profit is
  price - purchase price - fees - shipping.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Sale date (defaults to today)")
	f.StringVar(&c.platform, "platform", "", "Sales platform (defaults to the first configured platform)")
	f.Var(&c.price, "price", "Sale price")
	f.Var(&c.fees, "fees", "Platform fees")
	f.Var(&c.shipping, "shipping", "Shipping paid by the seller")
}

func (c *sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one item id is required.")
		return subcommands.ExitUsageError
	}
	if !requireFlag(f, "price") {
		return subcommands.ExitUsageError
	}
	itemID := f.Arg(0)
	on, err := parseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		platform := c.platform
		if platform == "" {
			if platforms := store.State().Settings.Platforms; len(platforms) > 0 {
				platform = platforms[0]
			}
		}
		sale, err := store.SellInventoryItem(ctx, itemID, lansky.SaleOrder{
			Date:         on,
			Platform:     platform,
			SalePrice:    c.price,
			Fees:         c.fees,
			ShippingPaid: c.shipping,
		})
		if err != nil {
			return commandError("sell", itemID, err)
		}
		fmt.Fprintf(stdout, "Sold %q on %s for %s, net profit %s (%s), sale id %s\n",
			sale.ItemName, sale.Platform, sale.SalePrice, sale.NetProfit, sale.Quarter, sale.ID)
		return subcommands.ExitSuccess
	})
}

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list the sales" }
func (*salesCmd) Usage() string {
	return `lansky sales

  Lists the sales, newest first, with the net profit by platform and by month.
`
}

func (*salesCmd) SetFlags(*flag.FlagSet) {}

func (*salesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		printMarkdown(renderer.SalesMarkdown(store.State().Sales))
		return subcommands.ExitSuccess
	})
}

type deleteSaleCmd struct{}

func (*deleteSaleCmd) Name() string     { return "delete-sale" }
func (*deleteSaleCmd) Synopsis() string { return "delete a sale and make its item available again" }
func (*deleteSaleCmd) Usage() string {
	return `lansky delete-sale <id>...
`
}

func (*deleteSaleCmd) SetFlags(*flag.FlagSet) {}

func (*deleteSaleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return deleteIDs(ctx, f, "delete sale", (*lansky.Store).DeleteSale)
}
