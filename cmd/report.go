package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/config"
	"github.com/etnz/lansky/date"
	"github.com/etnz/lansky/renderer"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the business overview" }
func (*dashboardCmd) Usage() string {
	return `lansky dashboard

  Displays the net profit, revenue, active stock, margin, the newest items
  and the net profit by quarter.
`
}

func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		printMarkdown(renderer.DashboardMarkdown(store.State()))
		return subcommands.ExitSuccess
	})
}

type taxesCmd struct {
	year   int
	on     string
	period string
	csv    bool
	out    string
}

func (*taxesCmd) Name() string     { return "taxes" }
func (*taxesCmd) Synopsis() string { return "display the tax summary" }
func (*taxesCmd) Usage() string {
	return `lansky taxes [-year <year> | -d <date> [-period <period>]] [-csv] [-o <file>]

  Displays a Schedule C style summary of every sale and expense. -year
  restricts it to a calendar year, -d to the month, quarter or year (-period)
  containing a date. With -csv, also writes the summarized sales to a CSV file.
`
}

func (c *taxesCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Tax year (0 for all records)")
	f.StringVar(&c.on, "d", "", "Restrict to the period containing this date (YYYY-MM-DD)")
	f.StringVar(&c.period, "period", "yearly", "Period around -d: monthly, quarterly or yearly")
	f.BoolVar(&c.csv, "csv", false, "Export the summarized sales to CSV")
	f.StringVar(&c.out, "o", "", "CSV file (defaults to lansky_ledger_full_export_<year>.csv, - for stdout)")
}

// selection returns the period to report on, or nil for all records.
func (c *taxesCmd) selection() (*date.Range, error) {
	switch {
	case c.year != 0 && c.on != "":
		return nil, fmt.Errorf("-year and -d cannot be combined")
	case c.year != 0:
		r := date.NewRange(date.New(c.year, time.January, 1), date.Yearly)
		return &r, nil
	case c.on != "":
		on, err := date.Parse(c.on)
		if err != nil {
			return nil, err
		}
		p, err := date.ParsePeriod(c.period)
		if err != nil {
			return nil, err
		}
		r := date.NewRange(on, p)
		return &r, nil
	}
	return nil, nil
}

func (c *taxesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := c.selection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		st := store.State()
		sales, expenses := st.Sales, st.Expenses
		year := date.Today().Year()
		if period != nil {
			sales, expenses = lansky.FilterSales(sales, *period), lansky.FilterExpenses(expenses, *period)
			year = period.From.Year()
		}
		printMarkdown(renderer.TaxMarkdown(lansky.NewTaxReport(sales, expenses), period))

		if !c.csv {
			return subcommands.ExitSuccess
		}
		out := c.out
		if out == "" {
			out = lansky.SalesExportFilename(year)
		}
		if err := writeCSV(out, func(w io.Writer) error { return lansky.ExportSalesCSV(w, sales) }); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting sales: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole ledger to CSV" }
func (*exportCmd) Usage() string {
	return `lansky export [-o <file>]

  Writes every sale, inventory item and expense to a CSV file with the columns
  TYPE,DATE,ITEM,PLATFORM/CATEGORY,IN,OUT,FEES,NET.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", lansky.ExportFilename, "CSV file, - for stdout")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		st := store.State()
		err := writeCSV(c.out, func(w io.Writer) error {
			return lansky.ExportCSV(w, st.Sales, st.Inventory, st.Expenses)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	})
}

// writeCSV writes a CSV document to the file 'name', or to stdout for "-".
// The file is only created when the document is complete.
func writeCSV(name string, write func(io.Writer) error) error {
	if name == "-" {
		return write(stdout)
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return err
	}
	log.Infof("wrote %d bytes to %s", buf.Len(), name)
	fmt.Fprintf(stdout, "Exported to %s\n", name)
	return nil
}
