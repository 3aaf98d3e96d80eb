package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/logger"
)

// Error variables
var (
	ErrBatchEmpty    = errors.New("batch contains no operations")
	ErrBatchTooLarge = errors.New("batch exceeds the maximum of 10 operations")
)

// maxBatchSize bounds a single batch request.
const maxBatchSize = 10

// Batch operation types
const (
	BatchOpEnhance   = "enhance"
	BatchOpSummarize = "summarize"
	BatchOpIntegrate = "integrate"
)

// BatchItem is one operation in a batch request.
type BatchItem struct {
	Operation string `json:"operation"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	Thought   string `json:"thought,omitempty"`
	Tone      string `json:"tone,omitempty"`
	Length    string `json:"length,omitempty"`
	Language  string `json:"language,omitempty"`
}

// BatchItemResult is the per-item outcome; exactly one of Data or Error is
// set depending on Success.
type BatchItemResult struct {
	Index     int    `json:"index"`
	Operation string `json:"operation"`
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResult is the outcome of a whole batch.
type BatchResult struct {
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []BatchItemResult `json:"results"`
}

// BatchService runs several AI operations in one request. Items run
// sequentially so a single batch cannot burst the upstream rate limit, and
// one failing item never aborts the rest.
type BatchService struct {
	ai ChapterAI
}

// NewBatchService creates a new BatchService instance.
func NewBatchService(ai ChapterAI) *BatchService {
	return &BatchService{ai: ai}
}

// Run executes the batch and reports per-item results.
func (svc *BatchService) Run(ctx context.Context, items []BatchItem) (*BatchResult, error) {
	if len(items) == 0 {
		return nil, ErrBatchEmpty
	}
	if len(items) > maxBatchSize {
		return nil, ErrBatchTooLarge
	}

	result := &BatchResult{
		Total:   len(items),
		Results: make([]BatchItemResult, 0, len(items)),
	}

	for i, item := range items {
		data, err := svc.runItem(ctx, item)

		itemResult := BatchItemResult{
			Index:     i,
			Operation: item.Operation,
			Success:   err == nil,
		}
		if err != nil {
			logger.Log.Errorw("batch item failed", "index", i, "operation", item.Operation, "err", err)
			itemResult.Error = err.Error()
			result.Failed++
		} else {
			itemResult.Data = data
			result.Succeeded++
		}
		result.Results = append(result.Results, itemResult)
	}

	return result, nil
}

func (svc *BatchService) runItem(ctx context.Context, item BatchItem) (any, error) {
	switch item.Operation {
	case BatchOpEnhance:
		return svc.ai.EnhanceContent(ctx, item.Title, item.Content, grok.EnhanceContext{
			Language: item.Language,
		})
	case BatchOpSummarize:
		return svc.ai.SummarizeContent(ctx, item.Content, grok.SummaryContext{
			Language: item.Language,
			Length:   item.Length,
		})
	case BatchOpIntegrate:
		return svc.ai.IntegrateThought(ctx, item.Content, item.Thought, grok.IntegrateContext{
			Language: item.Language,
			Tone:     item.Tone,
		})
	default:
		return nil, fmt.Errorf("unknown batch operation %q", item.Operation)
	}
}
