package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/lansky/advisor"
	"github.com/etnz/lansky/config"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// fakeModel answers every request with the same parts, or fails.
type fakeModel struct {
	parts  []*genai.Part
	err    error
	models []string
	prompt string
}

func (f *fakeModel) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.models = append(f.models, model)
	for _, p := range contents[0].Parts {
		f.prompt += p.Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: f.parts}}}}, nil
}

// useModel makes the commands talk to the fake model.
func useModel(t *testing.T, m *fakeModel) {
	t.Helper()
	prev := newGenerator
	newGenerator = func(context.Context, *config.Config) (advisor.Generator, error) { return m, nil }
	t.Cleanup(func() { newGenerator = prev })
}

func TestAdvise(t *testing.T) {
	setupLedger(t)
	t.Setenv("LANSKY_ADVICE_MODEL", "test-advice")
	mustRun(t, &seedCmd{})
	m := &fakeModel{parts: []*genai.Part{{Text: "**Raise prices** on sneakers."}}}
	useModel(t, m)

	out := mustRun(t, &adviseCmd{})
	assertContains(t, out, "AI Business Advisor", "**Raise prices** on sneakers.")
	assertContains(t, m.prompt, "Total Sales: 2", "Total Revenue: $140.00")
	if len(m.models) != 1 || m.models[0] != "test-advice" {
		t.Errorf("models = %v, want [test-advice]", m.models)
	}

	out = mustRun(t, &adviseCmd{}, "-html")
	assertContains(t, out, "<h1>AI Business Advisor</h1>", "<strong>Raise prices</strong>")
}

func TestAdvise_Failure(t *testing.T) {
	setupLedger(t)
	useModel(t, &fakeModel{err: errors.New("quota exceeded")})

	out := mustRun(t, &adviseCmd{})
	assertContains(t, out, advisor.AdviceFailed)
}

func TestEditImage(t *testing.T) {
	setupLedger(t)
	dir := t.TempDir()
	photo := filepath.Join(dir, "jacket.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if err := os.WriteFile(photo, png, 0644); err != nil {
		t.Fatal(err)
	}
	jpeg := []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	m := &fakeModel{parts: []*genai.Part{{Text: "done"}, {InlineData: &genai.Blob{Data: jpeg, MIMEType: "image/jpeg"}}}}
	useModel(t, m)

	out := mustRun(t, &editImageCmd{}, "-prompt", "Remove the background", photo)
	edited := filepath.Join(dir, "jacket-edited.jpg")
	assertContains(t, out, "Saved "+edited)
	data, err := os.ReadFile(edited)
	if err != nil || string(data) != string(jpeg) {
		t.Errorf("edited image = %q, %v", data, err)
	}
	if !strings.Contains(m.prompt, "Remove the background") {
		t.Errorf("prompt = %q, want the instruction", m.prompt)
	}
}

func TestEditImage_NoImage(t *testing.T) {
	setupLedger(t)
	photo := filepath.Join(t.TempDir(), "jacket.png")
	os.WriteFile(photo, []byte("not an image"), 0644)
	useModel(t, &fakeModel{parts: []*genai.Part{{Text: "I cannot do that."}}})

	assertContains(t, mustRun(t, &editImageCmd{}, "-prompt", "make it pop", photo), advisor.NoImage)

	useModel(t, &fakeModel{err: errors.New("unauthorized")})
	if _, status := run(t, &editImageCmd{}, "-prompt", "make it pop", photo); status != subcommands.ExitFailure {
		t.Errorf("status = %v, want %v", status, subcommands.ExitFailure)
	}
	if _, status := run(t, &editImageCmd{}, photo); status != subcommands.ExitUsageError {
		t.Errorf("status without prompt = %v, want %v", status, subcommands.ExitUsageError)
	}
}

func TestEditedName(t *testing.T) {
	testCases := []struct{ name, ext, want string }{
		{"jacket.jpg", ".png", "jacket-edited.png"},
		{"dir/photo", ".jpg", "dir/photo-edited.jpg"},
		{"a.b.webp", ".webp", "a.b-edited.webp"},
	}
	for _, tc := range testCases {
		if got := editedName(tc.name, tc.ext); got != tc.want {
			t.Errorf("editedName(%q, %q) = %q, want %q", tc.name, tc.ext, got, tc.want)
		}
	}
}
