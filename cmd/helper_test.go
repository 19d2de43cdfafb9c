package cmd

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/etnz/lansky"
	"github.com/etnz/lansky/kv"
	"github.com/google/subcommands"
)

// setupLedger points the commands at an empty ledger directory and returns it.
func setupLedger(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LANSKY_STORE", dir)
	t.Setenv("LANSKY_REDIS_URL", "")
	t.Setenv("LANSKY_CONSOLE", "")
	*raw = true
	t.Cleanup(func() { *raw = false })
	return dir
}

// capture redirects the command output to the returned buffer.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

// run parses the args with the command flags and executes it.
func run(t *testing.T, cmd subcommands.Command, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %q: %v", cmd.Name(), args, err)
	}
	out := capture(t)
	status := cmd.Execute(context.Background(), f)
	return out.String(), status
}

// mustRun runs the command and fails the test if it does not succeed.
func mustRun(t *testing.T, cmd subcommands.Command, args ...string) string {
	t.Helper()
	out, status := run(t, cmd, args...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("%s %s: status = %v, output:\n%s", cmd.Name(), strings.Join(args, " "), status, out)
	}
	return out
}

// ledger reads the ledger stored in dir.
func ledger(t *testing.T, dir string) lansky.State {
	t.Helper()
	backend, err := kv.NewDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	store, err := lansky.Open(context.Background(), backend)
	if err != nil {
		t.Fatal(err)
	}
	return store.State()
}

func assertContains(t *testing.T, got string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output does not contain %q:\n%s", w, got)
		}
	}
}
