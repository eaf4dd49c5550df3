package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"demoforge/cache"
)

const (
	planTemperature = 0.4
	maxOutputTokens = 65535
)

type AIService struct {
	apiKey     string
	modelName  string
	cache      *cache.Cache
	httpClient *http.Client
	apiURL     string
	retrier    Retrier
}

type GeminiRequest struct {
	Contents         []GeminiContent  `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []GeminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason,omitempty"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func New(apiKey string, modelName string, cache *cache.Cache) (*AIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}

	return &AIService{
		apiKey:    apiKey,
		modelName: modelName,
		cache:     cache,
		httpClient: &http.Client{
			Timeout: 300 * time.Second, // dataset fabrication can run long
		},
		apiURL:  "https://generativelanguage.googleapis.com/v1beta/models",
		retrier: Retrier{},
	}, nil
}

func (a *AIService) Close() error {
	// HTTP client doesn't require explicit closing
	return nil
}

// GenerateText sends a single text prompt and returns the model's raw text
// reply. The call is retried per Retrier policy; identical prompts are served
// from cache.
func (a *AIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	cacheKey := fmt.Sprintf("plan_prompt:%s", prompt)
	if cached, found := a.cache.Get(cacheKey); found {
		return cached.(string), nil
	}

	response, err := a.retrier.Do(func() (string, error) {
		return a.callGeminiAPI(ctx, prompt)
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	a.cache.SetDefault(cacheKey, response)
	return response, nil
}

func (a *AIService) callGeminiAPI(ctx context.Context, prompt string) (string, error) {
	reqBody := GeminiRequest{
		Contents: []GeminiContent{
			{Role: "user", Parts: []GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: GenerationConfig{
			Temperature:     planTemperature,
			MaxOutputTokens: maxOutputTokens,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", a.apiURL, a.modelName, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp GeminiResponse
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error != nil {
			return "", fmt.Errorf("API error (status %d): %s - %s",
				resp.StatusCode, errorResp.Error.Status, errorResp.Error.Message)
		}
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("API error: %s - %s", geminiResp.Error.Status, geminiResp.Error.Message)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from AI model")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
