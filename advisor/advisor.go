// Package advisor asks a Gemini model for business advice and product photo edits.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// ErrBusy is returned when a request is made while another one is pending on the same Advisor.
var ErrBusy = errors.New("a request is already in progress")

// Messages shown to the user instead of an answer.
const (
	NoAdvice        = "I couldn't generate advice at this moment. Please try again with more data."
	AdviceFailed    = "An error occurred while contacting the AI Advisor. Ensure your data is populated and try again."
	NoImage         = "AI returned an empty response. Try a different prompt."
	ImageEditFailed = "Failed to process image. Please check your API key and connection."
)

const (
	DefaultAdviceModel = "gemini-3-pro-preview"
	DefaultImageModel  = "gemini-2.5-flash-image"
)

// Generator generates content from a model. [genai.Models] implements it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Advisor sends requests to the models. One request at a time.
type Advisor struct {
	gen         Generator
	AdviceModel string
	ImageModel  string
	busy        atomic.Bool
}

// New returns an Advisor using the default models.
func New(gen Generator) *Advisor {
	return &Advisor{gen: gen, AdviceModel: DefaultAdviceModel, ImageModel: DefaultImageModel}
}

// NewClient creates a Gemini client. An empty apiKey lets the SDK read
// GEMINI_API_KEY or GOOGLE_API_KEY from the environment.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	return client, nil
}

// acquire marks the advisor busy, or returns ErrBusy.
func (a *Advisor) acquire() error {
	if !a.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (a *Advisor) release() { a.busy.Store(false) }

// userContent returns a single user turn made of parts.
func userContent(parts ...*genai.Part) []*genai.Content {
	return []*genai.Content{{Role: "user", Parts: parts}}
}

// candidateParts returns the parts of the first candidate, if any.
func candidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}

func advicePrompt(summary string) string {
	return fmt.Sprintf(`You are a world-class e-commerce and reselling business advisor.
Analyze the following business financial summary and provide 3-5 high-impact, actionable insights
to increase profit margins and efficiency. Use a professional yet encouraging tone.

Business Data Summary:
%s

Format the response in clear Markdown with bold headers.`, summary)
}

// Advice returns markdown advice for the financial summary.
//
// Model failures are not errors: the returned text is then one of the
// NoAdvice or AdviceFailed messages. The only error is ErrBusy.
func (a *Advisor) Advice(ctx context.Context, summary string) (string, error) {
	if err := a.acquire(); err != nil {
		return "", err
	}
	defer a.release()

	log.Infof("asking %s for advice", a.AdviceModel)
	resp, err := a.gen.GenerateContent(ctx, a.AdviceModel, userContent(&genai.Part{Text: advicePrompt(summary)}), nil)
	if err != nil {
		log.Errorf("Error getting business advice: %v", err)
		return AdviceFailed, nil
	}

	if resp == nil {
		return NoAdvice, nil
	}
	// Text skips the model's thought parts.
	advice := resp.Text()
	if strings.TrimSpace(advice) == "" {
		return NoAdvice, nil
	}
	return advice, nil
}

// EditImage asks the image model to apply the instruction to img.
//
// It returns nil, without error, when the model produced no image.
func (a *Advisor) EditImage(ctx context.Context, img Image, instruction string) (*Image, error) {
	if err := a.acquire(); err != nil {
		return nil, err
	}
	defer a.release()

	log.Infof("asking %s to edit a %s image (%d bytes)", a.ImageModel, img.MIMEType, len(img.Data))
	contents := userContent(
		&genai.Part{InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType}},
		&genai.Part{Text: instruction},
	)
	resp, err := a.gen.GenerateContent(ctx, a.ImageModel, contents, nil)
	if err != nil {
		log.Errorf("Error editing image with Gemini: %v", err)
		return nil, fmt.Errorf("image edit failed: %w", err)
	}
	for _, p := range candidateParts(resp) {
		if p.InlineData != nil {
			return &Image{Data: p.InlineData.Data, MIMEType: p.InlineData.MIMEType}, nil
		}
	}
	return nil, nil
}
