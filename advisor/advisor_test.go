package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

// fakeGenerator records the request and returns a canned response.
type fakeGenerator struct {
	model    string
	contents []*genai.Content
	resp     *genai.GenerateContentResponse
	err      error
	// block, if set, is waited on before answering.
	block chan struct{}
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents = model, contents
	if f.block != nil {
		<-f.block
	}
	return f.resp, f.err
}

func response(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}}}
}

func TestAdvisor_Advice(t *testing.T) {
	testCases := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{name: "answer", gen: &fakeGenerator{resp: response(&genai.Part{Text: "**Raise** "}, &genai.Part{Text: "prices"})}, want: "**Raise** prices"},
		{name: "thoughts are dropped", gen: &fakeGenerator{resp: response(&genai.Part{Text: "Let me think.", Thought: true}, &genai.Part{Text: "Bundle slow sellers."})}, want: "Bundle slow sellers."},
		{name: "only thoughts", gen: &fakeGenerator{resp: response(&genai.Part{Text: "Hmm.", Thought: true})}, want: NoAdvice},
		{name: "empty answer", gen: &fakeGenerator{resp: response()}, want: NoAdvice},
		{name: "no candidate", gen: &fakeGenerator{resp: &genai.GenerateContentResponse{}}, want: NoAdvice},
		{name: "failure", gen: &fakeGenerator{err: errors.New("quota exceeded")}, want: AdviceFailed},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := New(tc.gen)
			got, err := a.Advice(context.Background(), "Total Sales: 2\n")
			if err != nil {
				t.Fatalf("Advice() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Advice() = %q, want %q", got, tc.want)
			}
			if tc.gen.model != DefaultAdviceModel {
				t.Errorf("model = %q, want %q", tc.gen.model, DefaultAdviceModel)
			}
			prompt := tc.gen.contents[0].Parts[0].Text
			if !strings.Contains(prompt, "Business Data Summary:\nTotal Sales: 2\n") {
				t.Errorf("prompt does not hold the summary:\n%s", prompt)
			}
		})
	}
}

func TestAdvisor_EditImage(t *testing.T) {
	img := NewImage([]byte("\x89PNG\r\n\x1a\n0000"))
	edited := &genai.Part{InlineData: &genai.Blob{Data: []byte("jpeg"), MIMEType: "image/jpeg"}}

	testCases := []struct {
		name    string
		gen     *fakeGenerator
		want    *Image
		wantErr bool
	}{
		{name: "edited", gen: &fakeGenerator{resp: response(&genai.Part{Text: "here you go"}, edited)}, want: &Image{Data: []byte("jpeg"), MIMEType: "image/jpeg"}},
		{name: "text only", gen: &fakeGenerator{resp: response(&genai.Part{Text: "sorry"})}, want: nil},
		{name: "transport failure", gen: &fakeGenerator{err: errors.New("unauthenticated")}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.gen).EditImage(context.Background(), img, "remove the background")
			if (err != nil) != tc.wantErr {
				t.Fatalf("EditImage() error = %v, wantErr %v", err, tc.wantErr)
			}
			switch {
			case tc.want == nil && got != nil:
				t.Errorf("EditImage() = %+v, want nil", got)
			case tc.want != nil && (got == nil || got.MIMEType != tc.want.MIMEType || string(got.Data) != string(tc.want.Data)):
				t.Errorf("EditImage() = %+v, want %+v", got, tc.want)
			}
			parts := tc.gen.contents[0].Parts
			if parts[0].InlineData.MIMEType != "image/png" || parts[1].Text != "remove the background" {
				t.Errorf("request parts = %+v", parts)
			}
		})
	}
}

func TestAdvisor_Busy(t *testing.T) {
	gen := &fakeGenerator{resp: response(&genai.Part{Text: "ok"}), block: make(chan struct{})}
	a := New(gen)

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Advice(context.Background(), "first")
	}()
	// wait for the first request to hold the advisor
	for !a.busy.Load() {
	}
	if _, err := a.Advice(context.Background(), "second"); !errors.Is(err, ErrBusy) {
		t.Errorf("Advice() error = %v, want %v", err, ErrBusy)
	}
	if _, err := a.EditImage(context.Background(), Image{}, "x"); !errors.Is(err, ErrBusy) {
		t.Errorf("EditImage() error = %v, want %v", err, ErrBusy)
	}
	close(gen.block)
	<-done
	if _, err := a.Advice(context.Background(), "third"); err != nil {
		t.Errorf("Advice() after release error = %v", err)
	}
}

func TestNewImage(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want string
		ext  string
	}{
		{name: "png", data: []byte("\x89PNG\r\n\x1a\n0000"), want: "image/png", ext: ".png"},
		{name: "jpeg", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), want: "image/jpeg", ext: ".jpg"},
		{name: "not an image", data: []byte("hello"), want: DefaultMIMEType, ext: ".png"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			img := NewImage(tc.data)
			if img.MIMEType != tc.want {
				t.Errorf("MIMEType = %q, want %q", img.MIMEType, tc.want)
			}
			if got := img.Extension(); got != tc.ext {
				t.Errorf("Extension() = %q, want %q", got, tc.ext)
			}
		})
	}
}
