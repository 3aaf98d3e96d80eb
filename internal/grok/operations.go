package grok

import (
	"context"
	"time"

	"github.com/fabula-app/fabula/internal/textstat"
)

// EnhanceContext carries book-level context for content enhancement.
type EnhanceContext struct {
	BookTitle       string
	Genre           string
	Language        string
	PreviousChapter string
}

// EnhanceResult is the outcome of EnhanceContent.
type EnhanceResult struct {
	EnhancedContent string   `json:"enhancedContent"`
	Suggestions     []string `json:"suggestions"`
	WordCount       int      `json:"wordCount"`
}

// EnhanceContent rewrites chapter content to be more engaging while keeping
// the story intact.
func (c *Client) EnhanceContent(ctx context.Context, title, currentContent string, ectx EnhanceContext) (*EnhanceResult, error) {
	response, err := c.call(ctx, []message{
		{Role: "system", Content: systemPrompt("enhance", ectx.Language)},
		{Role: "user", Content: enhancementPrompt(title, currentContent, ectx)},
	})
	if err != nil {
		return nil, err
	}
	return &EnhanceResult{
		EnhancedContent: response,
		Suggestions:     extractSuggestions(response),
		WordCount:       textstat.CountWords(response),
	}, nil
}

// IntegrateContext carries tuning for thought integration.
type IntegrateContext struct {
	Language string
	Tone     string
}

// IntegrateResult is the outcome of IntegrateThought.
type IntegrateResult struct {
	IntegratedContent string `json:"integratedContent"`
	OriginalLength    int    `json:"originalLength"`
	NewLength         int    `json:"newLength"`
}

// IntegrateThought blends a new idea into existing content.
func (c *Client) IntegrateThought(ctx context.Context, currentContent, newThought string, ictx IntegrateContext) (*IntegrateResult, error) {
	tone := ictx.Tone
	if tone == "" {
		tone = "narrative"
	}

	response, err := c.call(ctx, []message{
		{Role: "system", Content: systemPrompt("integrate", ictx.Language)},
		{Role: "user", Content: integrationPrompt(currentContent, newThought, tone)},
	})
	if err != nil {
		return nil, err
	}
	return &IntegrateResult{
		IntegratedContent: response,
		OriginalLength:    textstat.CountWords(currentContent),
		NewLength:         textstat.CountWords(response),
	}, nil
}

// SummaryContext carries tuning for summarization. Length is one of
// short|medium|long; unknown values fall back to medium.
type SummaryContext struct {
	Language string
	Length   string
}

// SummaryResult is the outcome of SummarizeContent.
type SummaryResult struct {
	Summary           string `json:"summary"`
	OriginalWordCount int    `json:"originalWordCount"`
	SummaryWordCount  int    `json:"summaryWordCount"`
}

// SummarizeContent produces a summary of the given content.
func (c *Client) SummarizeContent(ctx context.Context, content string, sctx SummaryContext) (*SummaryResult, error) {
	length := sctx.Length
	if length == "" {
		length = "medium"
	}

	response, err := c.call(ctx, []message{
		{Role: "system", Content: systemPrompt("summarize", sctx.Language)},
		{Role: "user", Content: summaryPrompt(content, length)},
	})
	if err != nil {
		return nil, err
	}
	return &SummaryResult{
		Summary:           response,
		OriginalWordCount: textstat.CountWords(content),
		SummaryWordCount:  textstat.CountWords(response),
	}, nil
}

// GenerateContext carries book-level context for chapter generation.
type GenerateContext struct {
	BookTitle string
	Genre     string
	Language  string
	Style     string
}

// GenerateResult is the outcome of GenerateChapter.
type GenerateResult struct {
	Content              string `json:"content"`
	WordCount            int    `json:"wordCount"`
	EstimatedReadingTime int    `json:"estimatedReadingTime"`
}

// GenerateChapter writes a full chapter from a title and outline.
func (c *Client) GenerateChapter(ctx context.Context, title, outline string, gctx GenerateContext) (*GenerateResult, error) {
	if gctx.Style == "" {
		gctx.Style = "narrative"
	}

	response, err := c.call(ctx, []message{
		{Role: "system", Content: systemPrompt("generate", gctx.Language)},
		{Role: "user", Content: generationPrompt(title, outline, gctx)},
	})
	if err != nil {
		return nil, err
	}

	words := textstat.CountWords(response)
	return &GenerateResult{
		Content:              response,
		WordCount:            words,
		EstimatedReadingTime: textstat.ReadingTime(words),
	}, nil
}

// ChapterInput is one chapter fed into GenerateBookSummary.
type ChapterInput struct {
	Number    int
	Title     string
	Content   string
	WordCount int
}

// BookInfo describes the book for GenerateBookSummary.
type BookInfo struct {
	Title    string
	Genre    string
	Language string
}

// BookSummaryResult is the outcome of GenerateBookSummary.
type BookSummaryResult struct {
	Summary      string `json:"summary"`
	BookTitle    string `json:"bookTitle"`
	ChapterCount int    `json:"chapterCount"`
	TotalWords   int    `json:"totalWords"`
}

// GenerateBookSummary concatenates all chapters with numbering and asks for
// a narrative summary of the whole book.
func (c *Client) GenerateBookSummary(ctx context.Context, chapters []ChapterInput, info BookInfo) (*BookSummaryResult, error) {
	response, err := c.call(ctx, []message{
		{Role: "system", Content: systemPrompt("book_summary", info.Language)},
		{Role: "user", Content: bookSummaryPrompt(chapters, info)},
	})
	if err != nil {
		return nil, err
	}

	totalWords := 0
	for _, ch := range chapters {
		totalWords += ch.WordCount
	}
	return &BookSummaryResult{
		Summary:      response,
		BookTitle:    info.Title,
		ChapterCount: len(chapters),
		TotalWords:   totalWords,
	}, nil
}

// AnalyzeContext carries tuning for writing analysis.
type AnalyzeContext struct {
	Language string
	Focus    string
}

// AnalyzeResult is the outcome of AnalyzeWriting.
type AnalyzeResult struct {
	Analysis         string `json:"analysis"`
	WordCount        int    `json:"wordCount"`
	ReadabilityScore int    `json:"readabilityScore"`
}

// AnalyzeWriting returns structured feedback plus a readability heuristic.
func (c *Client) AnalyzeWriting(ctx context.Context, content string, actx AnalyzeContext) (*AnalyzeResult, error) {
	focus := actx.Focus
	if focus == "" {
		focus = "general"
	}

	response, err := c.call(ctx, []message{
		{Role: "system", Content: systemPrompt("analyze", actx.Language)},
		{Role: "user", Content: analysisPrompt(content, focus)},
	})
	if err != nil {
		return nil, err
	}
	return &AnalyzeResult{
		Analysis:         response,
		WordCount:        textstat.CountWords(content),
		ReadabilityScore: textstat.ReadabilityScore(content),
	}, nil
}

// Chat sends a free-form message with a language-specific system prompt and
// optional prior context.
func (c *Client) Chat(ctx context.Context, userMessage, language, contextText string) (string, error) {
	messages := []message{
		{Role: "system", Content: chatSystemPrompt(language)},
	}
	if contextText != "" {
		messages = append(messages, message{Role: "assistant", Content: "Context: " + contextText})
	}
	messages = append(messages, message{Role: "user", Content: userMessage})

	return c.call(ctx, messages)
}

// ConnectionStatus reports the outcome of TestConnection.
type ConnectionStatus struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Error     string    `json:"error,omitempty"`
	Model     string    `json:"model,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TestConnection sends a trivial prompt and reports reachability. It never
// mutates any entity and never returns a Go error; failures are carried in
// the status.
func (c *Client) TestConnection(ctx context.Context) *ConnectionStatus {
	now := time.Now().UTC()
	if !c.Available() {
		return &ConnectionStatus{Success: false, Error: "API key not configured", Timestamp: now}
	}

	response, err := c.call(ctx, []message{
		{Role: "system", Content: "You are a helpful assistant."},
		{Role: "user", Content: `Hello, please respond with "Grok API is working!" to test the connection.`},
	})
	if err != nil {
		return &ConnectionStatus{Success: false, Error: err.Error(), Timestamp: now}
	}
	return &ConnectionStatus{Success: true, Message: response, Model: c.model, Timestamp: now}
}
