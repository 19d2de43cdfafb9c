package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/lansky"
	"github.com/etnz/lansky/config"
	"github.com/google/subcommands"
)

type consoleCmd struct{}

func (*consoleCmd) Name() string     { return "console" }
func (*consoleCmd) Synopsis() string { return "dump or import the raw ledger (must be enabled)" }
func (*consoleCmd) Usage() string {
	return `lansky console <dump|import|identity> [flags]

  Recovery and debugging commands. They are disabled unless 'console: true'
  is set in the configuration, or LANSKY_CONSOLE=1.

  dump [-q <jsonpath>]          print the raw ledger as JSON
  import <file>                 replace the collections present in the file
  identity [-name] [-logo]      change the app name and logo
`
}

func (*consoleCmd) SetFlags(*flag.FlagSet) {}

// consoleCommands returns the console subcommands.
func consoleCommands() []subcommands.Command {
	return []subcommands.Command{&dumpCmd{}, &importCmd{}, &identityCmd{}}
}

func (*consoleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if !cfg.Console {
		fmt.Fprintln(os.Stderr, "Error: the console is disabled. Set 'console: true' in the configuration or LANSKY_CONSOLE=1.")
		return subcommands.ExitFailure
	}
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, (&consoleCmd{}).Usage())
		return subcommands.ExitUsageError
	}
	c := subcommands.NewCommander(f, "lansky console")
	for _, sub := range consoleCommands() {
		c.Register(sub, "")
	}
	return c.Execute(ctx)
}

type dumpCmd struct {
	query string
}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "print the raw ledger as JSON" }
func (*dumpCmd) Usage() string {
	return `lansky console dump [-q <jsonpath>]

  Prints {"sales": [...], "expenses": [...], "inventory": [...]}.
  -q applies a JSONPath query, like '$.sales[*].netProfit'.
`
}

func (c *dumpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query")
}

func (c *dumpCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		var buf bytes.Buffer
		if err := lansky.ExportRawState(&buf, store.State()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		if c.query == "" {
			io.Copy(stdout, &buf)
			return subcommands.ExitSuccess
		}
		result, err := queryJSON(buf.Bytes(), c.query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(result))
		return subcommands.ExitSuccess
	})
}

// queryJSON evaluates a JSONPath query on a JSON document and returns the result as indented JSON.
func queryJSON(data []byte, query string) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(query, v)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", query, err)
	}
	return json.MarshalIndent(result, "", "  ")
}

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger collections from a raw JSON file" }
func (*importCmd) Usage() string {
	return `lansky console import <file>

  Replaces the sales, expenses and inventory present in the file ('-' reads
  stdin). The file is validated first: nothing changes if it is invalid.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file is required.")
		return subcommands.ExitUsageError
	}
	var data []byte
	var err error
	if f.Arg(0) == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(f.Arg(0))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading import: %v\n", err)
		return subcommands.ExitFailure
	}
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		if err := store.ImportRawState(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: nothing imported: %v\n", err)
			return subcommands.ExitFailure
		}
		st := store.State()
		fmt.Fprintf(stdout, "Imported: %d items, %d sales, %d expenses.\n", len(st.Inventory), len(st.Sales), len(st.Expenses))
		return subcommands.ExitSuccess
	})
}

type identityCmd struct {
	patchFlags
}

func (*identityCmd) Name() string     { return "identity" }
func (*identityCmd) Synopsis() string { return "change the app name and logo" }
func (*identityCmd) Usage() string {
	return `lansky console identity [-name <name>] [-logo <file.svg>]
`
}

func (c *identityCmd) SetFlags(f *flag.FlagSet) { c.setIdentity(f) }

func (c *identityCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return updateSettings(ctx, c.Patch())
}
