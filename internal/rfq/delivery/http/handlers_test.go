package http

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

	"rfq-agent/config"
	"rfq-agent/internal/analyzer"
	"rfq-agent/internal/catalog"
	"rfq-agent/internal/generator"
	"rfq-agent/internal/middleware"
	"rfq-agent/internal/model"
	"rfq-agent/internal/rfq"
	"rfq-agent/internal/rfq/usecase"
	"rfq-agent/pkg/log"
)

type envelope[T any] struct {
	ErrorCode int      `json:"error_code"`
	Message   string   `json:"message"`
	Data      T        `json:"data"`
	Errors    []string `json:"errors"`
}

type failingUseCase struct{ rfq.UseCase }

func (failingUseCase) Submit(context.Context, rfq.SubmitInput) (rfq.SubmitOutput, error) {
	return rfq.SubmitOutput{}, rfq.ErrInternal
}

func newTestRouter(uc rfq.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{})
	RegisterRoutes(r.Group("/api/v1/rfq"), New(log.NewNop(), uc), mw)
	return r
}

func newTestUseCase() rfq.UseCase {
	c := catalog.Default()
	return usecase.New(log.NewNop(), analyzer.New(c), generator.New(c), c.Examples, nil)
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit(t *testing.T) {
	r := newTestRouter(newTestUseCase())

	w := do(r, http.MethodPost, "/api/v1/rfq", `{"query":"I want to open a coffee shop in Mumbai"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope[model.RfqResult]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, model.IntentBusinessIdea, resp.Data.IntentType)
	assert.Equal(t, "Coffee Shop Setup", resp.Data.Title)
	assert.Equal(t, "Mumbai", resp.Data.Context.Location)
	assert.Len(t, resp.Data.Items, 6)
	assert.NotNil(t, resp.Data.Context.Constraints)
}

func TestSubmitBadRequests(t *testing.T) {
	r := newTestRouter(newTestUseCase())

	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantDetails bool
	}{
		{"blank query", `{"query":"   "}`, "query is required", false},
		{"empty query", `{"query":""}`, "query is required", false},
		{"missing query", `{}`, msgValidationError, true},
		{"query not a string", `{"query":42}`, msgValidationError, true},
		{"not json", `query=gym`, "invalid request body", false},
		{"empty body", ``, "invalid request body", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/rfq", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp envelope[any]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantDetails, len(resp.Errors) > 0)
		})
	}
}

func TestSubmitInternalError(t *testing.T) {
	r := newTestRouter(failingUseCase{})

	w := do(r, http.MethodPost, "/api/v1/rfq", `{"query":"set up a gym"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp envelope[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed to process request", resp.Message)
}

func TestAnalyze(t *testing.T) {
	r := newTestRouter(newTestUseCase())

	w := do(r, http.MethodPost, "/api/v1/rfq/analyze", `{"query":"How to package fragile items safely"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope[analyzeResp]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.IntentProblemGoal, resp.Data.IntentType)
	assert.Equal(t, "Problem / Goal", resp.Data.IntentLabel)
	assert.False(t, resp.Data.QuantityMatch)
	assert.Equal(t, model.DefaultIndustry, resp.Data.Context.Industry)
}

func TestExamples(t *testing.T) {
	r := newTestRouter(newTestUseCase())

	w := do(r, http.MethodGet, "/api/v1/rfq/examples", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp envelope[examplesResp]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Categories, 4)
	assert.Len(t, resp.Data.Queries, 3)
}
