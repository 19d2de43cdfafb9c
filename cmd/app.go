// Package cmd implements the lansky command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/lansky"
	"github.com/etnz/lansky/config"
	"github.com/etnz/lansky/date"
	"github.com/etnz/lansky/kv"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addItemCmd{}, "ledger")
	c.Register(&inventoryCmd{}, "ledger")
	c.Register(&deleteItemCmd{}, "ledger")
	c.Register(&sellCmd{}, "ledger")
	c.Register(&salesCmd{}, "ledger")
	c.Register(&deleteSaleCmd{}, "ledger")
	c.Register(&addExpenseCmd{}, "ledger")
	c.Register(&expensesCmd{}, "ledger")
	c.Register(&deleteExpenseCmd{}, "ledger")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&taxesCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&adviseCmd{}, "assistant")
	c.Register(&editImageCmd{}, "assistant")

	c.Register(&settingsCmd{}, "settings")
	c.Register(&seedCmd{}, "settings")
	c.Register(&clearCmd{}, "settings")
	c.Register(&consoleCmd{}, "settings")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to the YAML configuration file (defaults to <store>/config.yaml)")
	storeDir   = flag.String("store", "", "Directory of the ledger documents (overrides LANSKY_STORE)")
	redisURL   = flag.String("redis", "", "Redis URL of the ledger (overrides LANSKY_REDIS_URL)")
	verbose    = flag.Bool("v", false, "Log debug information")
	raw        = flag.Bool("raw", false, "Print markdown without terminal formatting")
)

// stdout and stdin are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// theme is the glamour style used by printMarkdown, from the ledger settings.
var theme = lansky.Light

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFile, *storeDir)
	if err != nil {
		return nil, err
	}
	if *redisURL != "" {
		cfg.RedisURL = *redisURL
	}
	if *verbose {
		cfg.Verbose = true
	}
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	return cfg, nil
}

// openBackend opens the key-value store selected by the configuration.
func openBackend(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	if cfg.RedisURL != "" {
		log.Debugf("using redis ledger %s", cfg.RedisURL)
		return kv.NewRedis(ctx, cfg.RedisURL, cfg.RedisPrefix)
	}
	log.Debugf("using ledger directory %s", cfg.Store)
	return kv.NewDir(cfg.Store)
}

// OpenStore is the central function to open the ledger.
// The caller must Close the store.
func OpenStore(ctx context.Context) (*lansky.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := lansky.Open(ctx, backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	theme = store.State().Settings.Theme
	return store, cfg, nil
}

// withStore opens the ledger, runs fn and closes the ledger.
func withStore(ctx context.Context, fn func(*lansky.Store, *config.Config) subcommands.ExitStatus) subcommands.ExitStatus {
	store, cfg, err := OpenStore(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()
	return fn(store, cfg)
}

// commandError reports a command failure. Unknown ids are only a notice, since nothing changed.
func commandError(action string, id string, err error) subcommands.ExitStatus {
	if errors.Is(err, lansky.ErrNotFound) {
		fmt.Fprintf(stdout, "Nothing to %s: no record with id %q.\n", action, id)
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: cannot %s: %v\n", action, err)
	return subcommands.ExitFailure
}

// parseDate parses a date flag, an empty value is today.
func parseDate(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// requireFlag reports whether the flag was given on the command line, and
// prints an error when it was not.
func requireFlag(f *flag.FlagSet, name string) bool {
	given := false
	f.Visit(func(fl *flag.Flag) { given = given || fl.Name == name })
	if !given {
		fmt.Fprintf(os.Stderr, "Error: -%s is required.\n", name)
	}
	return given
}

// listFlag is a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string     { return fmt.Sprint(*l) }
func (l *listFlag) Set(s string) error { *l = append(*l, s); return nil }

// printMarkdown renders markdown on the terminal.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(string(theme)), glamour.WithWordWrap(100))
	if err != nil {
		log.Warnf("cannot create markdown renderer: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Warnf("cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
