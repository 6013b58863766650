package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/service"
	"forthecos/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) service.ImageGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGeminiClient(Credentials{Endpoint: srv.URL, APIKey: "test-key"}, Options{}, newDiscardLogger())
}

var testRequest = service.GenerateRequest{
	Source:         []byte("\x89PNG\r\n\x1a\nfake"),
	MIMEType:       "image/png",
	Category:       "Fantasy",
	Subcategory:    "Waterfalls",
	StyleIntensity: 80,
}

func TestGenerate_ReturnsInlineImage(t *testing.T) {
	want := []byte("generated-bytes")

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		require.Len(t, body.Contents[0].Parts, 2)
		assert.Equal(t, "image/png", body.Contents[0].Parts[0].InlineData.MIMEType)
		assert.Contains(t, body.Contents[0].Parts[1].Text, "Waterfalls")
		assert.Equal(t, DefaultAspectRatio, body.GenerationConfig.ImageConfig.AspectRatio)

		_, _ = w.Write([]byte(`{"candidates":[{"finishReason":"STOP","content":{"parts":[
			{"text":"here you go"},
			{"inlineData":{"mimeType":"image/jpeg","data":"` + base64.StdEncoding.EncodeToString(want) + `"}}
		]}}]}`))
	})

	img, err := client.Generate(context.Background(), testRequest)
	require.NoError(t, err)
	assert.Equal(t, want, img.Data)
	assert.Equal(t, "image/jpeg", img.MIMEType)
	assert.Equal(t, DefaultModel, img.Model)
}

func TestGenerate_SafetyFinishReason(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"finishReason":"SAFETY"}]}`))
	})

	_, err := client.Generate(context.Background(), testRequest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSafetyBlocked))
	assert.Equal(t, "The image was blocked by safety filters. Try a different scene or photo.", err.Error())
}

func TestGenerate_PromptBlocked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"OTHER"}}`))
	})

	_, err := client.Generate(context.Background(), testRequest)
	assert.True(t, errors.Is(err, domainerrors.ErrSafetyBlocked))
}

func TestGenerate_NoImage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"finishReason":"STOP","content":{"parts":[{"text":"sorry"}]}}]}`))
	})

	_, err := client.Generate(context.Background(), testRequest)
	assert.True(t, errors.Is(err, service.ErrNoImage))
}

func TestGenerate_SurfacesBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	})

	_, err := client.Generate(context.Background(), testRequest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
	assert.False(t, errors.Is(err, domainerrors.ErrSafetyBlocked))
}

func TestGenerate_RequiresSource(t *testing.T) {
	client := NewGeminiClient(Credentials{APIKey: "k"}, Options{}, newDiscardLogger())

	_, err := client.Generate(context.Background(), service.GenerateRequest{Category: "Anime"})
	assert.True(t, errors.Is(err, domainerrors.ErrSourceImageRequired))
}
