package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/config"
	"github.com/etnz/lansky/renderer"
	"github.com/google/subcommands"
)

// patchFlags binds the settings patch to flags.
type patchFlags struct {
	patch                           lansky.SettingsPatch
	addPlatforms, removePlatforms   listFlag
	addCategories, removeCategories listFlag
}

// setIdentity declares the app name and logo flags.
func (p *patchFlags) setIdentity(f *flag.FlagSet) {
	f.Func("name", "App name", func(s string) error {
		p.patch.AppName = &s
		return nil
	})
	f.Func("logo", "SVG file replacing the logo, empty to restore the default", func(s string) error {
		logo := ""
		if s != "" {
			data, err := os.ReadFile(s)
			if err != nil {
				return err
			}
			logo = string(data)
		}
		p.patch.LogoSVGOverride = &logo
		return nil
	})
}

func (p *patchFlags) SetFlags(f *flag.FlagSet) {
	p.setIdentity(f)
	f.Func("color", "Accent color: a preset name (Power Blue, Deep Indigo, ...) or #rrggbb", func(s string) error {
		p.patch.PrimaryColor = &s
		return nil
	})
	f.Func("theme", "Theme (light, dark)", func(s string) error {
		t, err := lansky.ParseTheme(s)
		if err != nil {
			return err
		}
		p.patch.Theme = &t
		return nil
	})
	f.BoolFunc("hints", "Explain the dashboard figures (-hints=false to disable)", func(s string) error {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		p.patch.InspectionMode = &b
		return nil
	})
	f.Var(&p.addPlatforms, "add-platform", "Add a sales platform (repeatable)")
	f.Var(&p.removePlatforms, "remove-platform", "Remove a sales platform (repeatable)")
	f.Var(&p.addCategories, "add-category", "Add an expense category (repeatable)")
	f.Var(&p.removeCategories, "remove-category", "Remove an expense category (repeatable)")
}

// Patch returns the patch collected from the flags.
func (p *patchFlags) Patch() lansky.SettingsPatch {
	patch := p.patch
	patch.AddPlatforms = p.addPlatforms
	patch.RemovePlatforms = p.removePlatforms
	patch.AddCategories = p.addCategories
	patch.RemoveCategories = p.removeCategories
	return patch
}

// updateSettings applies the patch, if any, and prints the settings.
func updateSettings(ctx context.Context, patch lansky.SettingsPatch) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		settings := store.State().Settings
		if !patch.IsEmpty() {
			var err error
			if settings, err = store.UpdateSettings(ctx, patch); err != nil {
				return commandError("update settings", "", err)
			}
			theme = settings.Theme
		}
		printMarkdown(renderer.SettingsMarkdown(settings))
		return subcommands.ExitSuccess
	})
}

type settingsCmd struct {
	patchFlags
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "display or change the ledger settings" }
func (*settingsCmd) Usage() string {
	return `lansky settings [-add-platform <p>] [-remove-platform <p>] [-add-category <c>] [-remove-category <c>]
                [-theme light|dark] [-color <color>] [-hints] [-name <name>] [-logo <file.svg>]

  Without flags, displays the settings. Adding a platform or category that
  already exists does nothing.
`
}

func (c *settingsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return updateSettings(ctx, c.Patch())
}

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "replace the ledger with demo data" }
func (*seedCmd) Usage() string {
	return `lansky seed

  Replaces the inventory, sales and expenses with a small demo dataset.
  Settings are kept.
`
}

func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (*seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		if err := store.SeedDemoData(ctx); err != nil {
			return commandError("seed demo data", "", err)
		}
		st := store.State()
		fmt.Fprintf(stdout, "Seeded %d items, %d sales and %d expenses.\n", len(st.Inventory), len(st.Sales), len(st.Expenses))
		return subcommands.ExitSuccess
	})
}

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every item, sale and expense" }
func (*clearCmd) Usage() string {
	return `lansky clear [-y]

  Deletes the whole ledger after confirmation. Settings are kept. Run
  'lansky export' first.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, _ *config.Config) subcommands.ExitStatus {
		err := store.ClearAllData(ctx, func() bool {
			return c.yes || confirm("Delete ALL inventory, sales and expenses? This cannot be undone.")
		})
		if errors.Is(err, lansky.ErrNotConfirmed) {
			fmt.Fprintln(stdout, "Nothing deleted.")
			return subcommands.ExitSuccess
		}
		if err != nil {
			return commandError("clear ledger", "", err)
		}
		fmt.Fprintln(stdout, "Ledger cleared.")
		return subcommands.ExitSuccess
	})
}

// confirm asks a yes/no question on stdin, no is the default.
func confirm(question string) bool {
	fmt.Fprintf(stdout, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
