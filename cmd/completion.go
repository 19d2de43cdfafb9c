package cmd

import (
	"context"
	"flag"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/date"
	"github.com/etnz/lansky/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	log "github.com/sirupsen/logrus"
)

// argsPredictor is implemented by commands whose arguments can be completed.
type argsPredictor interface {
	predictArgs() complete.Predictor
}

// flagPredictors completes flag values by flag name; other flags take anything.
var flagPredictors = map[string]complete.Predictor{
	"platform":        predictLedger(func(s lansky.State) []string { return s.Settings.Platforms }),
	"remove-platform": predictLedger(func(s lansky.State) []string { return s.Settings.Platforms }),
	"category":        predictLedger(func(s lansky.State) []string { return s.Settings.ExpenseCategories }),
	"remove-category": predictLedger(func(s lansky.State) []string { return s.Settings.ExpenseCategories }),
	"theme":           predict.Set{string(lansky.Light), string(lansky.Dark)},
	"color":           complete.PredictFunc(func(string) []string { return colorNames() }),
	"logo":            predict.Files("*.svg"),
	"config":          predict.Files("*.yaml"),
	"store":           predict.Dirs("*"),
	"o":               predict.Files("*"),
	"period":          predict.Set{date.Monthly.String(), date.Quarterly.String(), date.Yearly.String()},
}

// Completion returns the shell completion of the commander's commands.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{Sub: map[string]*complete.Command{}, Flags: flagCompletion(top)}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		root.Sub[cmd.Name()] = commandCompletion(cmd)
	})
	return root
}

func commandCompletion(cmd subcommands.Command) *complete.Command {
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	cc := &complete.Command{Flags: flagCompletion(f)}
	if p, ok := cmd.(argsPredictor); ok {
		cc.Args = p.predictArgs()
	}
	if _, ok := cmd.(*consoleCmd); ok {
		cc.Sub = map[string]*complete.Command{}
		for _, sub := range consoleCommands() {
			cc.Sub[sub.Name()] = commandCompletion(sub)
		}
	}
	return cc
}

func flagCompletion(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

// predictLedger completes with values read from the ledger.
func predictLedger(values func(lansky.State) []string) complete.PredictFunc {
	return func(string) []string {
		store, _, err := OpenStore(context.Background())
		if err != nil {
			log.Debugf("no completion: %v", err)
			return nil
		}
		defer store.Close()
		return values(store.State())
	}
}

func colorNames() []string {
	names := make([]string, len(lansky.Colors))
	for i, c := range lansky.Colors {
		names[i] = c.Name
	}
	return names
}

func itemIDs(available bool) func(lansky.State) []string {
	return func(s lansky.State) []string {
		var ids []string
		for _, item := range s.Inventory {
			if !available || item.IsAvailable() {
				ids = append(ids, item.ID)
			}
		}
		return ids
	}
}

func (*deleteItemCmd) predictArgs() complete.Predictor { return predictLedger(itemIDs(false)) }
func (*sellCmd) predictArgs() complete.Predictor       { return predictLedger(itemIDs(true)) }
func (*editImageCmd) predictArgs() complete.Predictor  { return predict.Files("*") }
func (*importCmd) predictArgs() complete.Predictor     { return predict.Files("*.json") }

func (*deleteSaleCmd) predictArgs() complete.Predictor {
	return predictLedger(func(s lansky.State) []string {
		ids := make([]string, len(s.Sales))
		for i, sale := range s.Sales {
			ids[i] = sale.ID
		}
		return ids
	})
}

func (*deleteExpenseCmd) predictArgs() complete.Predictor {
	return predictLedger(func(s lansky.State) []string {
		ids := make([]string, len(s.Expenses))
		for i, e := range s.Expenses {
			ids[i] = e.ID
		}
		return ids
	})
}

func (*topicCmd) predictArgs() complete.Predictor {
	return complete.PredictFunc(func(string) []string {
		topics, _ := docs.GetAllTopics()
		return append(topics, docs.Index, "*")
	})
}
