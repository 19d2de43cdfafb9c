package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/lansky"
	md "github.com/nao1215/markdown"
)

// SettingsMarkdown renders the workspace settings.
func SettingsMarkdown(s lansky.Settings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Settings")
	doc.PlainText("Configure your workspace.")

	color := s.PrimaryColor
	for _, c := range lansky.Colors {
		if c.Value == s.PrimaryColor {
			color = fmt.Sprintf("%s (%s)", c.Name, c.Value)
		}
	}
	logo := "default"
	if s.LogoSVGOverride != "" {
		logo = fmt.Sprintf("custom SVG, %d bytes", len(s.LogoSVGOverride))
	}
	hints := "off"
	if s.InspectionMode {
		hints = "on"
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Setting", "Value"},
		Rows: [][]string{
			{"App Name", s.AppName},
			{"Logo", logo},
			{"Theme", string(s.Theme)},
			{"Accent Color", color},
			{"Hint Mode", hints},
		},
	})

	doc.H2("Sales Platforms")
	doc.PlainText(strings.Join(s.Platforms, ", "))
	doc.H2("Expense Categories")
	doc.PlainText(strings.Join(s.ExpenseCategories, ", "))
	return doc.String()
}

// AdviceMarkdown wraps the advisor answer, which is already markdown.
func AdviceMarkdown(advice string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("AI Business Advisor")
	doc.PlainText("Actionable insights from your ledger data.")
	doc.H2("Business Intelligence Report")
	doc.PlainText(advice)
	return doc.String()
}
