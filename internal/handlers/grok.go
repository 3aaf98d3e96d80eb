package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/services"
	"github.com/fabula-app/fabula/internal/validation"
)

// GrokInfo exposes the AI client's configuration for the status endpoint.
type GrokInfo interface {
	Available() bool
	Model() string
	MaxTokens() int
	Temperature() float64
}

// ConnectionTester defines the interface for the AI connectivity probe.
type ConnectionTester interface {
	TestConnection(ctx context.Context) *grok.ConnectionStatus
}

// Chatter defines the interface for free-form AI chat.
type Chatter interface {
	Chat(ctx context.Context, userMessage, language, contextText string) (string, error)
}

// ContentGenerator defines the interface for the generic generation endpoint,
// which dispatches across the per-operation AI calls.
type ContentGenerator interface {
	GenerateChapter(ctx context.Context, title, outline string, gctx grok.GenerateContext) (*grok.GenerateResult, error)
	SummarizeContent(ctx context.Context, content string, sctx grok.SummaryContext) (*grok.SummaryResult, error)
	EnhanceContent(ctx context.Context, title, currentContent string, ectx grok.EnhanceContext) (*grok.EnhanceResult, error)
	IntegrateThought(ctx context.Context, currentContent, newThought string, ictx grok.IntegrateContext) (*grok.IntegrateResult, error)
	AnalyzeWriting(ctx context.Context, content string, actx grok.AnalyzeContext) (*grok.AnalyzeResult, error)
}

// WritingAnalyzer defines the interface for writing analysis.
type WritingAnalyzer interface {
	AnalyzeWriting(ctx context.Context, content string, actx grok.AnalyzeContext) (*grok.AnalyzeResult, error)
}

// BatchRunner defines the interface for batch AI operations.
type BatchRunner interface {
	Run(ctx context.Context, items []services.BatchItem) (*services.BatchResult, error)
}

// GrokStatusData is the payload for the AI status endpoint.
// swagger:model GrokStatusData
type GrokStatusData struct {
	Available   bool      `json:"available"`
	Model       string    `json:"model"`
	MaxTokens   int       `json:"maxTokens"`
	Temperature float64   `json:"temperature"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewGrokStatusHandler returns an HTTP handler reporting the AI client
// configuration. It never calls the upstream API.
// @Summary AI service status
// @Tags grok
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Status"
// @Router /grok/status [get]
func NewGrokStatusHandler(client GrokInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondData(w, http.StatusOK, "", GrokStatusData{
			Available:   client.Available(),
			Model:       client.Model(),
			MaxTokens:   client.MaxTokens(),
			Temperature: client.Temperature(),
			Timestamp:   time.Now().UTC(),
		})
	}
}

// NewGrokTestHandler returns an HTTP handler probing upstream connectivity.
// A failed probe answers 503 with the outcome in the payload.
// @Summary Test AI connectivity
// @Tags grok
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.Response "Upstream reachable"
// @Failure 503 {object} handlers.Response "Upstream unreachable"
// @Router /grok/test [post]
func NewGrokTestHandler(client ConnectionTester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := client.TestConnection(r.Context())
		if !status.Success {
			respond(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Message: "Grok API connection failed",
				Error:   status.Error,
				Data:    status,
			})
			return
		}
		respondData(w, http.StatusOK, "Grok API connection successful", status)
	}
}

// ChatRequest represents the JSON body for AI chat
// swagger:model ChatRequest
type ChatRequest struct {
	// Message
	// required: true
	Message string `json:"message"`

	// Content language (default "en")
	Language string `json:"language"`

	// Optional prior context carried into the conversation
	Context string `json:"context"`
}

// NewGrokChatHandler returns an HTTP handler for free-form AI chat.
// @Summary Chat with the AI assistant
// @Tags grok
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatRequest body handlers.ChatRequest true "Chat request"
// @Success 200 {object} handlers.Response "Assistant reply"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 503 {object} handlers.Response "AI service not configured"
// @Router /grok/chat [post]
func NewGrokChatHandler(client Chatter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if res := validation.Content(req.Message, validation.ContentOptions{MaxLength: 5000}); !res.IsValid {
			respondValidation(w, res.Errors)
			return
		}

		reply, err := client.Chat(r.Context(), req.Message, req.Language, req.Context)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "", map[string]string{"reply": reply})
	}
}

// GenerateContentRequest represents the JSON body for generic content
// generation
// swagger:model GenerateContentRequest
type GenerateContentRequest struct {
	// Prompt
	// required: true
	Prompt string `json:"prompt"`

	// Operation type: chapter, summary, enhancement, integration, analysis
	// or general (default)
	Type string `json:"type"`

	// Content language (default "en")
	Language string `json:"language"`

	// Chapter title; required for chapter, optional for enhancement
	Title string `json:"title"`

	// Outline to write from; chapter type falls back to the prompt
	Outline string `json:"outline"`

	// Book title for context
	BookTitle string `json:"bookTitle"`

	// Genre for context
	Genre string `json:"genre"`

	// Writing style (default "narrative")
	Style string `json:"style"`

	// Summary length: short, medium or long
	Length string `json:"length"`

	// Existing text, integration type only
	CurrentContent string `json:"currentContent"`

	// Idea to blend in, integration type only
	NewThought string `json:"newThought"`

	// Integration tone
	Tone string `json:"tone"`

	// Analysis focus
	Focus string `json:"focus"`
}

// GenerateMetadata describes a generation outcome.
// swagger:model GenerateMetadata
type GenerateMetadata struct {
	Type         string    `json:"type"`
	Language     string    `json:"language"`
	PromptLength int       `json:"promptLength"`
	Timestamp    time.Time `json:"timestamp"`
}

// GenerateContentData is the payload for the generation endpoint. Content
// holds the per-operation result shape.
// swagger:model GenerateContentData
type GenerateContentData struct {
	Content  any              `json:"content"`
	Metadata GenerateMetadata `json:"metadata"`
}

// NewGenerateContentHandler returns an HTTP handler for one-off content
// generation from a prompt, dispatched on the requested type. Results are
// returned to the caller and never stored.
// @Summary Generate content
// @Description Generates chapter text, a summary, an enhancement, an integration, or writing analysis from a prompt, depending on the type field.
// @Tags grok
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param generateContentRequest body handlers.GenerateContentRequest true "Generation request"
// @Success 200 {object} handlers.Response "Generated content"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 503 {object} handlers.Response "AI service not configured"
// @Router /grok/generate [post]
func NewGenerateContentHandler(client ContentGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if res := validation.Content(req.Prompt, validation.ContentOptions{MaxLength: 10000}); !res.IsValid {
			respondValidation(w, res.Errors)
			return
		}
		if req.Type == "" {
			req.Type = "general"
		}
		if req.Language == "" {
			req.Language = "en"
		}

		var (
			content any
			err     error
		)
		switch req.Type {
		case "chapter":
			if req.Title == "" {
				respondError(w, http.StatusBadRequest, "Chapter title is required for chapter generation")
				return
			}
			outline := req.Outline
			if outline == "" {
				outline = req.Prompt
			}
			content, err = client.GenerateChapter(r.Context(), req.Title, outline, grok.GenerateContext{
				BookTitle: req.BookTitle,
				Genre:     req.Genre,
				Language:  req.Language,
				Style:     req.Style,
			})
		case "summary":
			content, err = client.SummarizeContent(r.Context(), req.Prompt, grok.SummaryContext{
				Language: req.Language,
				Length:   req.Length,
			})
		case "enhancement":
			title := req.Title
			if title == "" {
				title = "Content Enhancement"
			}
			content, err = client.EnhanceContent(r.Context(), title, req.Prompt, grok.EnhanceContext{
				BookTitle: req.BookTitle,
				Genre:     req.Genre,
				Language:  req.Language,
			})
		case "integration":
			if req.CurrentContent == "" || req.NewThought == "" {
				respondError(w, http.StatusBadRequest, "Current content and new thought are required for integration")
				return
			}
			content, err = client.IntegrateThought(r.Context(), req.CurrentContent, req.NewThought, grok.IntegrateContext{
				Language: req.Language,
				Tone:     req.Tone,
			})
		case "analysis":
			content, err = client.AnalyzeWriting(r.Context(), req.Prompt, grok.AnalyzeContext{
				Language: req.Language,
				Focus:    req.Focus,
			})
		default:
			content, err = client.GenerateChapter(r.Context(), "Generated Content", req.Prompt, grok.GenerateContext{
				Language: req.Language,
				Style:    req.Style,
			})
		}
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, req.Type+" content generated successfully", GenerateContentData{
			Content: content,
			Metadata: GenerateMetadata{
				Type:         req.Type,
				Language:     req.Language,
				PromptLength: len(req.Prompt),
				Timestamp:    time.Now().UTC(),
			},
		})
	}
}

// AnalyzeWritingRequest represents the JSON body for writing analysis
// swagger:model AnalyzeWritingRequest
type AnalyzeWritingRequest struct {
	// Text to analyze
	// required: true
	Content string `json:"content"`

	// Content language (default "en")
	Language string `json:"language"`

	// Analysis focus (default "general")
	Focus string `json:"focus"`
}

// NewAnalyzeWritingHandler returns an HTTP handler for AI writing feedback
// plus a readability heuristic.
// @Summary Analyze writing
// @Tags grok
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param analyzeWritingRequest body handlers.AnalyzeWritingRequest true "Analysis request"
// @Success 200 {object} handlers.Response "Analysis"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 503 {object} handlers.Response "AI service not configured"
// @Router /grok/analyze [post]
func NewAnalyzeWritingHandler(client WritingAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnalyzeWritingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if res := validation.Content(req.Content, validation.ContentOptions{}); !res.IsValid {
			respondValidation(w, res.Errors)
			return
		}

		result, err := client.AnalyzeWriting(r.Context(), req.Content, grok.AnalyzeContext{
			Language: req.Language,
			Focus:    req.Focus,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "", result)
	}
}

// BatchRequest represents the JSON body for batch AI operations
// swagger:model BatchRequest
type BatchRequest struct {
	// Up to 10 operations, run sequentially
	// required: true
	Operations []services.BatchItem `json:"operations"`
}

// NewGrokBatchHandler returns an HTTP handler running several AI operations
// in one request.
// @Summary Run batch AI operations
// @Description Runs up to 10 enhance/summarize/integrate operations sequentially and reports per-item results.
// @Tags grok
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batchRequest body handlers.BatchRequest true "Batch request"
// @Success 200 {object} handlers.Response "Per-item results"
// @Failure 400 {object} handlers.Response "Empty or oversized batch"
// @Router /grok/batch [post]
func NewGrokBatchHandler(svc BatchRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := svc.Run(r.Context(), req.Operations)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Batch completed", result)
	}
}
