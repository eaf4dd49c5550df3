package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demoforge/models"
	"demoforge/service"
	"demoforge/storage"
)

type memKV struct{ data map[string]string }

func (m *memKV) Get(key string) (string, bool, error) { v, ok := m.data[key]; return v, ok, nil }
func (m *memKV) Set(key, value string) error          { m.data[key] = value; return nil }
func (m *memKV) Delete(key string) error              { delete(m.data, key); return nil }

type cannedModel struct{ response string }

func (c *cannedModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.response, nil
}

const cannedPlan = `{
  "tables": [{"name": "stations", "schema": [{"name": "id", "type": "INTEGER", "description": "id"}], "csvData": "id\n1\n"}],
  "systemInstruction": "You are helpful.",
  "demoGuide": ["a", "b", "c", "d", "e"]
}`

func newTestRouter(model service.TextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	kv := &memKV{data: map[string]string{}}
	chunks := storage.NewChunkedStore(kv, 8000)
	history := storage.NewHistoryStore(kv, chunks, 10)
	generator := service.NewGenerator(service.NewPlanner(model), history, "https://example.com/agent.git", "main")
	h := New(generator, history)

	r := gin.New()
	r.POST("/api/generate", h.GenerateHandler)
	r.GET("/api/history", h.ListHistoryHandler)
	return r
}

func TestGenerateHandlerSuccess(t *testing.T) {
	r := newTestRouter(&cannedModel{response: cannedPlan})

	body := `{"goal": "Bicycle rental demand forecasting", "row_count": 50, "table_count": 1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result models.GenerationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.SetupScript)
	assert.NotEmpty(t, result.DatasetID)

	// the run landed in history
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var index []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &index))
	assert.Len(t, index, 1)
}

func TestGenerateHandlerRejectsMissingGoal(t *testing.T) {
	r := newTestRouter(&cannedModel{response: cannedPlan})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateHandlerRejectsGibberishGoal(t *testing.T) {
	r := newTestRouter(&cannedModel{response: cannedPlan})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"goal": "!!!???...###%%%"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateHandlerStructuredFailure(t *testing.T) {
	r := newTestRouter(&cannedModel{response: "I refuse to answer with JSON."})

	body := `{"goal": "Bicycle rental demand forecasting"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// failures are a structured 200 payload, never a half-filled success
	require.Equal(t, http.StatusOK, w.Code)
	var result models.GenerationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, result.SetupScript)
	assert.Equal(t, models.StepError, result.Steps[len(result.Steps)-1].Status)
}
