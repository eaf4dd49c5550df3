package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demoforge/cache"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *AIService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := New("test-key", "gemini-2.5-flash", cache.New())
	require.NoError(t, err)
	svc.apiURL = srv.URL
	svc.retrier = Retrier{Attempts: 3, BaseDelay: time.Millisecond}
	return svc
}

func writeTextResponse(w http.ResponseWriter, text string) {
	fmt.Fprintf(w, `{"candidates": [{"content": {"parts": [{"text": %q}]}}]}`, text)
}

func TestGenerateTextSendsPlanConfig(t *testing.T) {
	var got GeminiRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeTextResponse(w, "{}")
	})

	out, err := svc.GenerateText(context.Background(), "make a dataset")
	require.NoError(t, err)
	assert.Equal(t, "{}", out)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "make a dataset", got.Contents[0].Parts[0].Text)
	assert.Equal(t, 0.4, got.GenerationConfig.Temperature)
	assert.Equal(t, 65535, got.GenerationConfig.MaxOutputTokens)
}

func TestGenerateTextRetriesTransientFailures(t *testing.T) {
	calls := 0
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeTextResponse(w, "recovered")
	})

	out, err := svc.GenerateText(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "recovered", out)
	assert.Equal(t, 3, calls)
}

func TestGenerateTextSurfacesAPIErrorPayload(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
	})

	_, err := svc.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "RESOURCE_EXHAUSTED")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateTextCachesByPrompt(t *testing.T) {
	calls := 0
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeTextResponse(w, "cached answer")
	})

	for i := 0; i < 3; i++ {
		out, err := svc.GenerateText(context.Background(), "same prompt")
		require.NoError(t, err)
		assert.Equal(t, "cached answer", out)
	}
	assert.Equal(t, 1, calls, "identical prompts must be served from cache")
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	_, err := svc.GenerateText(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no response from AI model")
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("", "gemini-2.5-flash", cache.New())
	assert.Error(t, err)
}
