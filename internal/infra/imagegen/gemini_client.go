// Package imagegen talks to the Gemini image generation REST API.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/service"
	"forthecos/internal/errors"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	DefaultEndpoint    = "https://generativelanguage.googleapis.com"
	DefaultModel       = "gemini-2.5-flash-image"
	DefaultAspectRatio = "3:4"

	defaultMIMEType = "image/png"
)

// Credentials identify one backend account. Clients are memoized per pair.
type Credentials struct {
	Endpoint string
	APIKey   string
}

// Options tune requests independently of the credentials.
type Options struct {
	Model       string
	AspectRatio string
	// RatePerSec caps outbound calls per client; zero disables the limiter.
	RatePerSec float64
	Burst      int
}

type geminiClient struct {
	creds      Credentials
	opts       Options
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewGeminiClient builds a generator for one credential pair. The HTTP client
// has no timeout; the request context bounds each call.
func NewGeminiClient(creds Credentials, opts Options, logger *slog.Logger) service.ImageGenerator {
	if creds.Endpoint == "" {
		creds.Endpoint = DefaultEndpoint
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.AspectRatio == "" {
		opts.AspectRatio = DefaultAspectRatio
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSec), max(opts.Burst, 1))
	}

	return &geminiClient{
		creds:      creds,
		opts:       opts,
		httpClient: &http.Client{},
		limiter:    limiter,
		logger:     logger,
	}
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type part struct {
	InlineData *inlineData `json:"inlineData,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
}

type generationConfig struct {
	ResponseModalities []string    `json:"responseModalities"`
	ImageConfig        imageConfig `json:"imageConfig"`
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

func (c *geminiClient) Generate(ctx context.Context, req service.GenerateRequest) (*service.GeneratedImage, error) {
	if len(req.Source) == 0 {
		return nil, domainerrors.ErrSourceImageRequired
	}
	mimeType := req.MIMEType
	if mimeType == "" {
		mimeType = http.DetectContentType(req.Source)
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(req.Source)}},
				{Text: BuildPrompt(req)},
			},
		}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        imageConfig{AspectRatio: c.opts.AspectRatio},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode generation request")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "generation rate limit wait")
	}

	url := strings.TrimSuffix(c.creds.Endpoint, "/") + "/v1beta/models/" + c.opts.Model + ":generateContent"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build generation request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.creds.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "generation request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read generation response")
	}

	c.logger.DebugContext(ctx, "Generation backend responded",
		slog.String("model", c.opts.Model),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	return c.parseResponse(resp.StatusCode, raw)
}

// parseResponse extracts the first inline image and maps safety outcomes.
func (c *geminiClient) parseResponse(status int, raw []byte) (*service.GeneratedImage, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.Errorf("generation backend returned %d with a non-JSON body", status)
	}
	result := gjson.ParseBytes(raw)

	if status != http.StatusOK {
		msg := result.Get("error.message").String()
		if msg == "" {
			msg = http.StatusText(status)
		}

		return nil, errors.Errorf("generation backend returned %d: %s", status, msg)
	}

	if result.Get("promptFeedback.blockReason").Exists() {
		return nil, domainerrors.ErrSafetyBlocked
	}

	candidate := result.Get("candidates.0")
	switch candidate.Get("finishReason").String() {
	case "SAFETY", "IMAGE_SAFETY", "PROHIBITED_CONTENT":
		return nil, domainerrors.ErrSafetyBlocked
	}

	for _, p := range candidate.Get("content.parts").Array() {
		inline := p.Get("inlineData")
		if !inline.Exists() {
			inline = p.Get("inline_data")
		}
		encoded := inline.Get("data").String()
		if encoded == "" {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode generated image")
		}

		mimeType := inline.Get("mimeType").String()
		if mimeType == "" {
			mimeType = inline.Get("mime_type").String()
		}
		if mimeType == "" {
			mimeType = defaultMIMEType
		}

		return &service.GeneratedImage{Data: data, MIMEType: mimeType, Model: c.opts.Model}, nil
	}

	return nil, service.ErrNoImage
}
