package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/advisor"
	"github.com/etnz/lansky/config"
	"github.com/etnz/lansky/renderer"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// newGenerator connects to the model API. Tests replace it.
var newGenerator = func(ctx context.Context, cfg *config.Config) (advisor.Generator, error) {
	client, err := advisor.NewClient(ctx, cfg.APIKey)
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

// newAdvisor returns an advisor using the configured models.
func newAdvisor(ctx context.Context, cfg *config.Config) (*advisor.Advisor, error) {
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := advisor.New(gen)
	a.AdviceModel = cfg.AdviceModel
	a.ImageModel = cfg.ImageModel
	return a, nil
}

type adviseCmd struct {
	html bool
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI advisor for business insights" }
func (*adviseCmd) Usage() string {
	return `lansky advise [-html]

  Sends a summary of the ledger (totals only) to the advice model and prints
  its insights.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "Print the advice as an HTML document")
}

func (c *adviseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withStore(ctx, func(store *lansky.Store, cfg *config.Config) subcommands.ExitStatus {
		a, err := newAdvisor(ctx, cfg)
		if err != nil {
			log.Errorf("cannot connect to the advisor: %v", err)
			fmt.Fprintln(stdout, advisor.AdviceFailed)
			return subcommands.ExitFailure
		}
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		advice, err := a.Advice(ctx, lansky.AdvisorSummary(store.State()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		md := renderer.AdviceMarkdown(advice)
		if !c.html {
			printMarkdown(md)
			return subcommands.ExitSuccess
		}
		var buf bytes.Buffer
		if err := goldmark.New(goldmark.WithExtensions(extension.GFM)).Convert([]byte(md), &buf); err != nil {
			fmt.Fprintf(os.Stderr, "Error converting advice to HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprint(stdout, buf.String())
		return subcommands.ExitSuccess
	})
}

type editImageCmd struct {
	prompt string
	out    string
}

func (*editImageCmd) Name() string     { return "edit-image" }
func (*editImageCmd) Synopsis() string { return "edit a product photo with the AI image model" }
func (*editImageCmd) Usage() string {
	return `lansky edit-image -prompt <instruction> [-o <file>] <image>

  Sends the image and the instruction to the image model and saves the
  result, by default next to the image with an "-edited" suffix.
`
}

func (c *editImageCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prompt, "prompt", "", "Editing instruction, like \"Remove the background\"")
	f.StringVar(&c.out, "o", "", "Output file")
}

func (c *editImageCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || strings.TrimSpace(c.prompt) == "" {
		fmt.Fprintln(os.Stderr, "Error: an image file and a -prompt are required.")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := newAdvisor(ctx, cfg)
	if err != nil {
		log.Errorf("cannot connect to the image model: %v", err)
		fmt.Fprintln(os.Stderr, advisor.ImageEditFailed)
		return subcommands.ExitFailure
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	edited, err := a.EditImage(ctx, advisor.NewImage(data), c.prompt)
	if err != nil {
		fmt.Fprintln(os.Stderr, advisor.ImageEditFailed)
		return subcommands.ExitFailure
	}
	if edited == nil {
		fmt.Fprintln(stdout, advisor.NoImage)
		return subcommands.ExitSuccess
	}
	out := c.out
	if out == "" {
		out = editedName(f.Arg(0), edited.Extension())
	}
	if err := os.WriteFile(out, edited.Data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Saved %s (%s)\n", out, edited.MIMEType)
	return subcommands.ExitSuccess
}

// editedName returns "photo-edited.png" for "photo.jpg" and ".png".
func editedName(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + "-edited" + ext
}
