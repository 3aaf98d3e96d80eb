package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/services"
)

func TestGrokStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockGrokInfo(ctrl)
	mockClient.EXPECT().Available().Return(true)
	mockClient.EXPECT().Model().Return("grok-beta")
	mockClient.EXPECT().MaxTokens().Return(1000)
	mockClient.EXPECT().Temperature().Return(0.7)

	handler := NewGrokStatusHandler(mockClient)

	req := httptest.NewRequest(http.MethodGet, "/api/grok/status", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    GrokStatusData `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.Available)
	assert.Equal(t, "grok-beta", resp.Data.Model)
	assert.Equal(t, 1000, resp.Data.MaxTokens)
}

func TestGrokTestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockConnectionTester(ctrl)
	handler := NewGrokTestHandler(mockClient)

	t.Run("reachable upstream", func(t *testing.T) {
		mockClient.EXPECT().TestConnection(gomock.Any()).Return(&grok.ConnectionStatus{
			Success:   true,
			Message:   "Grok API connection successful",
			Model:     "grok-beta",
			Timestamp: time.Now().UTC(),
		})

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/test", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("probe failure answers 503", func(t *testing.T) {
		mockClient.EXPECT().TestConnection(gomock.Any()).Return(&grok.ConnectionStatus{
			Success:   false,
			Error:     "connection refused",
			Timestamp: time.Now().UTC(),
		})

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/test", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

		var resp struct {
			Success bool                  `json:"success"`
			Data    grok.ConnectionStatus `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.Success)
		assert.False(t, resp.Data.Success)
		assert.Equal(t, "connection refused", resp.Data.Error)
	})
}

func TestGrokChatHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockChatter(ctrl)
	handler := NewGrokChatHandler(mockClient)

	t.Run("returns the assistant reply", func(t *testing.T) {
		mockClient.EXPECT().
			Chat(gomock.Any(), "How do I write a cliffhanger?", "en", "").
			Return("End mid-scene.", nil)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/chat",
			bytes.NewBufferString(`{"message":"How do I write a cliffhanger?","language":"en"}`)))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data map[string]string `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "End mid-scene.", resp.Data["reply"])
	})

	t.Run("empty message", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/chat",
			bytes.NewBufferString(`{"message":""}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("AI service not configured", func(t *testing.T) {
		mockClient.EXPECT().
			Chat(gomock.Any(), "hello", "", "").
			Return("", grok.ErrUnavailable)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/chat",
			bytes.NewBufferString(`{"message":"hello"}`)))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestGenerateContentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockContentGenerator(ctrl)
	handler := NewGenerateContentHandler(mockClient)

	post := func(body string) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/generate", bytes.NewBufferString(body)))
		return rr
	}

	t.Run("chapter type with outline", func(t *testing.T) {
		mockClient.EXPECT().
			GenerateChapter(gomock.Any(), "The Storm", "ship sinks", grok.GenerateContext{
				BookTitle: "Saga",
				Genre:     "fantasy",
				Language:  "en",
				Style:     "dramatic",
			}).
			Return(&grok.GenerateResult{Content: "text", WordCount: 1, EstimatedReadingTime: 1}, nil)

		rr := post(`{"prompt":"write it","type":"chapter","title":"The Storm","outline":"ship sinks","bookTitle":"Saga","genre":"fantasy","style":"dramatic"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("chapter type falls back to the prompt as outline", func(t *testing.T) {
		mockClient.EXPECT().
			GenerateChapter(gomock.Any(), "The Storm", "a storm at sea", gomock.Any()).
			Return(&grok.GenerateResult{Content: "text"}, nil)

		rr := post(`{"prompt":"a storm at sea","type":"chapter","title":"The Storm"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("chapter type requires a title", func(t *testing.T) {
		rr := post(`{"prompt":"a storm at sea","type":"chapter"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Chapter title is required")
	})

	t.Run("summary type", func(t *testing.T) {
		mockClient.EXPECT().
			SummarizeContent(gomock.Any(), "long text", grok.SummaryContext{Language: "de", Length: "short"}).
			Return(&grok.SummaryResult{Summary: "kurz"}, nil)

		rr := post(`{"prompt":"long text","type":"summary","language":"de","length":"short"}`)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Message string              `json:"message"`
			Data    GenerateContentData `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "summary content generated successfully", resp.Message)
		assert.Equal(t, "summary", resp.Data.Metadata.Type)
		assert.Equal(t, "de", resp.Data.Metadata.Language)
		assert.Equal(t, len("long text"), resp.Data.Metadata.PromptLength)
	})

	t.Run("enhancement type defaults the title", func(t *testing.T) {
		mockClient.EXPECT().
			EnhanceContent(gomock.Any(), "Content Enhancement", "draft", grok.EnhanceContext{Language: "en"}).
			Return(&grok.EnhanceResult{EnhancedContent: "better"}, nil)

		rr := post(`{"prompt":"draft","type":"enhancement"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("integration type requires both texts", func(t *testing.T) {
		rr := post(`{"prompt":"irrelevant","type":"integration","currentContent":"scene"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Current content and new thought are required")
	})

	t.Run("integration type", func(t *testing.T) {
		mockClient.EXPECT().
			IntegrateThought(gomock.Any(), "scene", "a twist", grok.IntegrateContext{Language: "en", Tone: "dark"}).
			Return(&grok.IntegrateResult{IntegratedContent: "merged"}, nil)

		rr := post(`{"prompt":"irrelevant","type":"integration","currentContent":"scene","newThought":"a twist","tone":"dark"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("analysis type", func(t *testing.T) {
		mockClient.EXPECT().
			AnalyzeWriting(gomock.Any(), "my prose", grok.AnalyzeContext{Language: "en", Focus: "pacing"}).
			Return(&grok.AnalyzeResult{Analysis: "solid"}, nil)

		rr := post(`{"prompt":"my prose","type":"analysis","focus":"pacing"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown type generates general content", func(t *testing.T) {
		mockClient.EXPECT().
			GenerateChapter(gomock.Any(), "Generated Content", "anything", grok.GenerateContext{Language: "en"}).
			Return(&grok.GenerateResult{Content: "text"}, nil)

		rr := post(`{"prompt":"anything"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("empty prompt", func(t *testing.T) {
		rr := post(`{"prompt":"","type":"summary"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("upstream failure answers 503", func(t *testing.T) {
		mockClient.EXPECT().
			SummarizeContent(gomock.Any(), "text", gomock.Any()).
			Return(nil, grok.ErrUpstream)

		rr := post(`{"prompt":"text","type":"summary"}`)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestGrokBatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBatchRunner(ctrl)
	handler := NewGrokBatchHandler(mockSvc)

	t.Run("reports per-item results", func(t *testing.T) {
		mockSvc.EXPECT().
			Run(gomock.Any(), []services.BatchItem{
				{Operation: "summarize", Content: "long text", Length: "short"},
				{Operation: "enhance", Title: "One", Content: "draft"},
			}).
			Return(&services.BatchResult{
				Total:     2,
				Succeeded: 1,
				Failed:    1,
				Results: []services.BatchItemResult{
					{Index: 0, Operation: "summarize", Success: true},
					{Index: 1, Operation: "enhance", Success: false, Error: "upstream timeout"},
				},
			}, nil)

		body := `{"operations":[{"operation":"summarize","content":"long text","length":"short"},{"operation":"enhance","title":"One","content":"draft"}]}`
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/batch", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data services.BatchResult `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Data.Total)
		assert.Equal(t, 1, resp.Data.Failed)
	})

	t.Run("empty batch", func(t *testing.T) {
		mockSvc.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			Return(nil, services.ErrBatchEmpty)

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/batch",
			bytes.NewBufferString(`{"operations":[]}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		mockSvc.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom"))

		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/api/grok/batch",
			bytes.NewBufferString(`{"operations":[{"operation":"summarize","content":"x"}]}`)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
