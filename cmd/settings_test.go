package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/lansky"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func TestSettings(t *testing.T) {
	dir := setupLedger(t)

	out := mustRun(t, &settingsCmd{}, "-add-platform", "Depop", "-add-platform", "eBay", "-remove-category", "Advertising",
		"-theme", "dark", "-color", "forest emerald", "-hints")
	assertContains(t, out, "Forest Emerald (#064e3b)", "Depop")

	s := ledger(t, dir).Settings
	wantPlatforms := []string{"eBay", "Poshmark", "Mercari", "Facebook", "Whatnot", "Other", "Depop"}
	if diff := cmp.Diff(wantPlatforms, s.Platforms); diff != "" {
		t.Errorf("Platforms mismatch (-want +got):\n%s", diff)
	}
	if s.Theme != lansky.Dark || s.PrimaryColor != "#064e3b" || !s.InspectionMode || len(s.ExpenseCategories) != 6 {
		t.Errorf("Settings = %+v", s)
	}

	mustRun(t, &settingsCmd{}, "-hints=false")
	if ledger(t, dir).Settings.InspectionMode {
		t.Errorf("-hints=false did not disable hint mode")
	}
}

func TestSettings_Invalid(t *testing.T) {
	dir := setupLedger(t)
	if _, status := run(t, &settingsCmd{}, "-color", "#12"); status != subcommands.ExitFailure {
		t.Errorf("status = %v, want %v", status, subcommands.ExitFailure)
	}
	if diff := cmp.Diff(lansky.DefaultSettings(), ledger(t, dir).Settings); diff != "" {
		t.Errorf("settings changed (-want +got):\n%s", diff)
	}
}

func TestSeedAndClear(t *testing.T) {
	dir := setupLedger(t)
	assertContains(t, mustRun(t, &seedCmd{}), "Seeded 5 items, 2 sales and 2 expenses.")

	testCases := []struct {
		name    string
		args    []string
		answer  string
		cleared bool
	}{
		{name: "refused", answer: "n\n"},
		{name: "no answer", answer: ""},
		{name: "confirmed", answer: "yes\n", cleared: true},
		{name: "flag", args: []string{"-y"}, cleared: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mustRun(t, &seedCmd{})
			stdin = strings.NewReader(tc.answer)
			t.Cleanup(func() { stdin = os.Stdin })

			mustRun(t, &clearCmd{}, tc.args...)
			st := ledger(t, dir)
			if got := len(st.Inventory)+len(st.Sales)+len(st.Expenses) == 0; got != tc.cleared {
				t.Errorf("cleared = %v, want %v", got, tc.cleared)
			}
			if len(st.Settings.Platforms) == 0 {
				t.Errorf("clear removed the settings")
			}
		})
	}
}

func TestConsole(t *testing.T) {
	dir := setupLedger(t)
	mustRun(t, &seedCmd{})

	if _, status := run(t, &consoleCmd{}, "dump"); status != subcommands.ExitFailure {
		t.Fatalf("disabled console status = %v, want %v", status, subcommands.ExitFailure)
	}

	t.Setenv("LANSKY_CONSOLE", "1")
	out := mustRun(t, &consoleCmd{}, "dump")
	assertContains(t, out, `"sales": [`, `"expenses": [`, `"inventory": [`, `"netProfit": 14.15`)

	out = mustRun(t, &consoleCmd{}, "dump", "-q", "$.sales[*].netProfit")
	var compact = strings.Join(strings.Fields(out), "")
	if compact != "[14.15,36]" {
		t.Errorf("dump -q = %s, want [14.15,36]", out)
	}

	backup := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(backup, []byte(mustRun(t, &consoleCmd{}, "dump")), 0644); err != nil {
		t.Fatal(err)
	}
	mustRun(t, &clearCmd{}, "-y")
	assertContains(t, mustRun(t, &consoleCmd{}, "import", backup), "Imported: 5 items, 2 sales, 2 expenses.")

	bad := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(bad, []byte(`{"sales": [{"id": "s9", "inventoryItemId": "404"}]}`), 0644)
	if _, status := run(t, &consoleCmd{}, "import", bad); status != subcommands.ExitFailure {
		t.Errorf("invalid import status = %v, want %v", status, subcommands.ExitFailure)
	}
	if n := len(ledger(t, dir).Sales); n != 2 {
		t.Errorf("invalid import changed the sales: %d, want 2", n)
	}

	logo := filepath.Join(t.TempDir(), "logo.svg")
	os.WriteFile(logo, []byte(`<svg/>`), 0644)
	mustRun(t, &consoleCmd{}, "identity", "-name", "Thrift Co", "-logo", logo)
	s := ledger(t, dir).Settings
	if s.AppName != "Thrift Co" || s.LogoSVGOverride != "<svg/>" {
		t.Errorf("identity = %q %q", s.AppName, s.LogoSVGOverride)
	}
}

func TestQueryJSON(t *testing.T) {
	if _, err := queryJSON([]byte(`{"a": 1}`), "$.["); err == nil {
		t.Errorf("queryJSON() with an invalid query: error = nil")
	}
	got, err := queryJSON([]byte(`{"a": {"b": "c"}}`), "$.a.b")
	if err != nil || string(got) != `"c"` {
		t.Errorf("queryJSON() = %s, %v, want \"c\"", got, err)
	}
}
