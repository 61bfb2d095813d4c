package imagegen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"roomviz/internal/domain"
	"roomviz/internal/infra"
)

const (
	DefaultModel          = "gemini-2.5-flash-image"
	responseModalityImage = "IMAGE"
)

// contentGenerator is the slice of *genai.Models the editor depends on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiOptions controls how the Gemini editor is configured.
type GeminiOptions struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// GeminiEditor sends edit instructions to a Gemini image model. One instance
// is built at startup and shared by every request.
type GeminiEditor struct {
	models contentGenerator
	model  string
	logger *infra.Logger
}

// NewGeminiEditor builds the long-lived genai client from credentials.
func NewGeminiEditor(ctx context.Context, opts GeminiOptions) (*GeminiEditor, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini: API key is missing")
	}
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"); base != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: base + "/"}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newGeminiEditor(client.Models, opts.Model, opts.Logger), nil
}

func newGeminiEditor(models contentGenerator, model string, logger *infra.Logger) *GeminiEditor {
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if model == "" {
		model = DefaultModel
	}
	if logger == nil {
		l := infra.Logger(zerolog.New(io.Discard))
		logger = &l
	}
	return &GeminiEditor{models: models, model: model, logger: logger}
}

// Model returns the configured Gemini model identifier.
func (e *GeminiEditor) Model() string {
	return e.model
}

// Edit performs exactly one model call. There are no retries and no fallback
// image: a response without inline image data is ErrNoImageReturned.
func (e *GeminiEditor) Edit(ctx context.Context, spec EditSpec) (*domain.GeneratedImage, error) {
	refs := spec.References()
	parts := make([]*genai.Part, 0, len(refs)+1)
	parts = append(parts, genai.NewPartFromText(BuildInstruction(spec)))
	for _, ref := range refs {
		parts = append(parts, genai.NewPartFromBytes(ref.Data, ref.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{responseModalityImage},
	}

	e.logger.Debug().
		Str("model", e.model).
		Int("references", len(refs)).
		Bool("tile", spec.Tile != nil).
		Bool("wall", spec.WallColor != "").
		Bool("sofa", spec.Sofa != nil).
		Msg("gemini: requesting room edit")

	resp, err := e.models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrModelInvocation, err)
	}
	return extractImage(resp)
}

// extractImage returns the first inline image of the first candidate.
func extractImage(resp *genai.GenerateContentResponse) (*domain.GeneratedImage, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return nil, fmt.Errorf("%w: no candidates", domain.ErrNoImageReturned)
	}
	candidate := resp.Candidates[0]
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := strings.TrimSpace(part.InlineData.MIMEType)
			if mime == "" {
				mime = domain.DefaultImageMIME
			}
			return &domain.GeneratedImage{Data: part.InlineData.Data, MIMEType: mime}, nil
		}
	}
	if reason := candidate.FinishReason; reason != "" && reason != genai.FinishReasonUnspecified && reason != genai.FinishReasonStop {
		return nil, fmt.Errorf("%w (finish reason %s)", domain.ErrNoImageReturned, reason)
	}
	return nil, domain.ErrNoImageReturned
}

var _ Editor = (*GeminiEditor)(nil)
