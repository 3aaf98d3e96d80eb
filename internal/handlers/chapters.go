package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/models"
	"github.com/fabula-app/fabula/internal/services"
	"github.com/fabula-app/fabula/internal/validation"
)

// ChapterLister defines the interface for listing a book's chapters.
type ChapterLister interface {
	List(ctx context.Context, userID, bookID uuid.UUID, limit, offset int) ([]models.ChapterDB, *models.BookDB, error)
}

// ChapterGetter defines the interface for reading a single chapter.
type ChapterGetter interface {
	Get(ctx context.Context, userID, bookID, chapterID uuid.UUID) (*models.ChapterDB, error)
}

// ChapterCreator defines the interface for creating a chapter.
type ChapterCreator interface {
	Create(ctx context.Context, userID, bookID uuid.UUID, params services.ChapterCreate) (*models.ChapterDB, error)
}

// ChapterUpdater defines the interface for updating a chapter.
type ChapterUpdater interface {
	Update(ctx context.Context, userID, bookID, chapterID uuid.UUID, upd services.ChapterUpdate) (*models.ChapterDB, error)
}

// ChapterDeleter defines the interface for deleting a chapter.
type ChapterDeleter interface {
	Delete(ctx context.Context, userID, bookID, chapterID uuid.UUID) error
}

// ChapterEnhancer defines the interface for AI chapter enhancement.
type ChapterEnhancer interface {
	Enhance(ctx context.Context, userID, bookID, chapterID uuid.UUID) (*models.ChapterDB, *grok.EnhanceResult, error)
}

// ThoughtIntegrator defines the interface for AI thought integration.
type ThoughtIntegrator interface {
	IntegrateThought(ctx context.Context, userID, bookID, chapterID uuid.UUID, thought, tone string) (*models.ChapterDB, *grok.IntegrateResult, error)
}

// ChapterSummarizer defines the interface for AI chapter summaries.
type ChapterSummarizer interface {
	Summarize(ctx context.Context, userID, bookID, chapterID uuid.UUID, length string) (*grok.SummaryResult, error)
}

// SuggestionApplier defines the interface for applying stored suggestions.
type SuggestionApplier interface {
	ApplySuggestion(ctx context.Context, userID, bookID, chapterID uuid.UUID, suggestionID int64) (*models.ChapterDB, error)
}

// ChapterListData is the payload for the chapter list endpoint.
// swagger:model ChapterListData
type ChapterListData struct {
	Chapters []models.ChapterDB `json:"chapters"`
	Book     *models.BookDB     `json:"book"`
}

// NewListChaptersHandler returns an HTTP handler listing a book's chapters.
// @Summary List chapters
// @Description Returns the book's chapters in reading order.
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.Response "Chapter list"
// @Failure 404 {object} handlers.Response "Book not found"
// @Router /books/{bookId}/chapters [get]
func NewListChaptersHandler(svc ChapterLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if offset < 0 {
			offset = 0
		}

		chapters, book, err := svc.List(r.Context(), userID, bookID, limit, offset)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "", ChapterListData{Chapters: chapters, Book: book})
	}
}

// NewGetChapterHandler returns an HTTP handler for reading a single chapter.
// @Summary Get a chapter
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} handlers.Response "Chapter"
// @Failure 404 {object} handlers.Response "Book or chapter not found"
// @Router /books/{bookId}/chapters/{chapterId} [get]
func NewGetChapterHandler(svc ChapterGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}
		chapterID, ok := pathUUID(w, r, "chapterId", "Chapter")
		if !ok {
			return
		}

		chapter, err := svc.Get(r.Context(), userID, bookID, chapterID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "", chapter)
	}
}

// CreateChapterRequest represents the JSON body for chapter creation.
// A missing or zero chapterNumber assigns the next free number.
// swagger:model CreateChapterRequest
type CreateChapterRequest struct {
	// Title
	// required: true
	Title         string `json:"title"`
	Content       string `json:"content"`
	ChapterNumber int    `json:"chapterNumber"`
	Status        string `json:"status"`
}

// NewCreateChapterHandler returns an HTTP handler for creating a chapter.
// @Summary Create a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param createChapterRequest body handlers.CreateChapterRequest true "Chapter creation request"
// @Success 201 {object} handlers.Response "Created chapter"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 404 {object} handlers.Response "Book not found"
// @Failure 409 {object} handlers.Response "Chapter number already taken"
// @Router /books/{bookId}/chapters [post]
func NewCreateChapterHandler(svc ChapterCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}

		var req CreateChapterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var errs []string
		if res := validation.ChapterTitle(req.Title); !res.IsValid {
			errs = append(errs, res.Errors...)
		}
		if res := validation.Content(req.Content, validation.ContentOptions{AllowEmpty: true}); !res.IsValid {
			errs = append(errs, res.Errors...)
		}
		if req.ChapterNumber != 0 {
			if res := validation.ChapterNumber(req.ChapterNumber); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.Status != "" {
			if res := validation.ChapterStatus(req.Status); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if len(errs) > 0 {
			respondValidation(w, errs)
			return
		}

		chapter, err := svc.Create(r.Context(), userID, bookID, services.ChapterCreate{
			Title:   req.Title,
			Content: req.Content,
			Number:  req.ChapterNumber,
			Status:  req.Status,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusCreated, "Chapter created successfully", chapter)
	}
}

// UpdateChapterRequest represents the JSON body for a chapter update;
// absent fields are left unchanged.
// swagger:model UpdateChapterRequest
type UpdateChapterRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Status        *string `json:"status"`
	ChapterNumber *int    `json:"chapterNumber"`
}

// NewUpdateChapterHandler returns an HTTP handler for updating a chapter.
// @Summary Update a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param chapterId path string true "Chapter ID"
// @Param updateChapterRequest body handlers.UpdateChapterRequest true "Chapter update request"
// @Success 200 {object} handlers.Response "Updated chapter"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 404 {object} handlers.Response "Book or chapter not found"
// @Failure 409 {object} handlers.Response "Chapter number already taken"
// @Router /books/{bookId}/chapters/{chapterId} [put]
func NewUpdateChapterHandler(svc ChapterUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}
		chapterID, ok := pathUUID(w, r, "chapterId", "Chapter")
		if !ok {
			return
		}

		var req UpdateChapterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var errs []string
		if req.Title != nil {
			if res := validation.ChapterTitle(*req.Title); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.Content != nil {
			if res := validation.Content(*req.Content, validation.ContentOptions{AllowEmpty: true}); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.Status != nil {
			if res := validation.ChapterStatus(*req.Status); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.ChapterNumber != nil {
			if res := validation.ChapterNumber(*req.ChapterNumber); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if len(errs) > 0 {
			respondValidation(w, errs)
			return
		}

		chapter, err := svc.Update(r.Context(), userID, bookID, chapterID, services.ChapterUpdate{
			Title:         req.Title,
			Content:       req.Content,
			Status:        req.Status,
			ChapterNumber: req.ChapterNumber,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Chapter updated successfully", chapter)
	}
}

// NewDeleteChapterHandler returns an HTTP handler for deleting a chapter.
// @Summary Delete a chapter
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} handlers.Response "Chapter deleted"
// @Failure 404 {object} handlers.Response "Book or chapter not found"
// @Router /books/{bookId}/chapters/{chapterId} [delete]
func NewDeleteChapterHandler(svc ChapterDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}
		chapterID, ok := pathUUID(w, r, "chapterId", "Chapter")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, bookID, chapterID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Chapter deleted successfully", nil)
	}
}

// EnhanceData is the payload returned after AI enhancement.
// swagger:model EnhanceData
type EnhanceData struct {
	Chapter     *models.ChapterDB `json:"chapter"`
	Suggestions []string          `json:"suggestions"`
	WordCount   int               `json:"wordCount"`
}

// NewEnhanceChapterHandler returns an HTTP handler that rewrites a chapter
// with the AI service.
// @Summary Enhance a chapter with AI
// @Description Rewrites the chapter content to be more engaging and stores extracted suggestions.
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} handlers.Response "Enhanced chapter"
// @Failure 400 {object} handlers.Response "Chapter has no content"
// @Failure 404 {object} handlers.Response "Book or chapter not found"
// @Failure 503 {object} handlers.Response "AI service not configured"
// @Router /books/{bookId}/chapters/{chapterId}/enhance [post]
func NewEnhanceChapterHandler(svc ChapterEnhancer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}
		chapterID, ok := pathUUID(w, r, "chapterId", "Chapter")
		if !ok {
			return
		}

		chapter, result, err := svc.Enhance(r.Context(), userID, bookID, chapterID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Chapter enhanced successfully", EnhanceData{
			Chapter:     chapter,
			Suggestions: result.Suggestions,
			WordCount:   result.WordCount,
		})
	}
}

// IntegrateThoughtRequest represents the JSON body for thought integration
// swagger:model IntegrateThoughtRequest
type IntegrateThoughtRequest struct {
	// New idea to weave into the chapter
	// required: true
	Thought string `json:"thought"`

	// Desired tone (default "narrative")
	Tone string `json:"tone"`
}

// NewIntegrateThoughtHandler returns an HTTP handler that weaves a new idea
// into the chapter via the AI service.
// @Summary Integrate a thought into a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param chapterId path string true "Chapter ID"
// @Param integrateThoughtRequest body handlers.IntegrateThoughtRequest true "Thought integration request"
// @Success 200 {object} handlers.Response "Updated chapter"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 404 {object} handlers.Response "Book or chapter not found"
// @Failure 503 {object} handlers.Response "AI service not configured"
// @Router /books/{bookId}/chapters/{chapterId}/integrate [post]
func NewIntegrateThoughtHandler(svc ThoughtIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}
		chapterID, ok := pathUUID(w, r, "chapterId", "Chapter")
		if !ok {
			return
		}

		var req IntegrateThoughtRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if res := validation.Content(req.Thought, validation.ContentOptions{MaxLength: 5000}); !res.IsValid {
			respondValidation(w, res.Errors)
			return
		}

		chapter, result, err := svc.IntegrateThought(r.Context(), userID, bookID, chapterID, req.Thought, req.Tone)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Thought integrated successfully", map[string]any{
			"chapter":        chapter,
			"originalLength": result.OriginalLength,
			"newLength":      result.NewLength,
		})
	}
}

// SummarizeChapterRequest represents the JSON body for chapter summarization
// swagger:model SummarizeChapterRequest
type SummarizeChapterRequest struct {
	// Summary length: short, medium, or long (default "medium")
	Length string `json:"length"`
}

// NewSummarizeChapterHandler returns an HTTP handler producing an AI summary
// of a chapter without mutating it.
// @Summary Summarize a chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param chapterId path string true "Chapter ID"
// @Param summarizeChapterRequest body handlers.SummarizeChapterRequest false "Summary options"
// @Success 200 {object} handlers.Response "Summary"
// @Failure 400 {object} handlers.Response "Chapter has no content"
// @Failure 404 {object} handlers.Response "Book or chapter not found"
// @Failure 503 {object} handlers.Response "AI service not configured"
// @Router /books/{bookId}/chapters/{chapterId}/summarize [post]
func NewSummarizeChapterHandler(svc ChapterSummarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}
		chapterID, ok := pathUUID(w, r, "chapterId", "Chapter")
		if !ok {
			return
		}

		var req SummarizeChapterRequest
		if r.Body != nil {
			// Body is optional; a decode failure just means defaults.
			json.NewDecoder(r.Body).Decode(&req)
		}

		summary, err := svc.Summarize(r.Context(), userID, bookID, chapterID, req.Length)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Chapter summarized successfully", summary)
	}
}

// ApplySuggestionRequest represents the JSON body for applying a suggestion
// swagger:model ApplySuggestionRequest
type ApplySuggestionRequest struct {
	// Suggestion ID
	// required: true
	SuggestionID int64 `json:"suggestionId"`
}

// NewApplySuggestionHandler returns an HTTP handler marking a stored AI
// suggestion as applied.
// @Summary Apply an AI suggestion
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param chapterId path string true "Chapter ID"
// @Param applySuggestionRequest body handlers.ApplySuggestionRequest true "Suggestion to apply"
// @Success 200 {object} handlers.Response "Updated chapter"
// @Failure 404 {object} handlers.Response "Book, chapter, or suggestion not found"
// @Router /books/{bookId}/chapters/{chapterId}/suggestions/apply [post]
func NewApplySuggestionHandler(svc SuggestionApplier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}
		chapterID, ok := pathUUID(w, r, "chapterId", "Chapter")
		if !ok {
			return
		}

		var req ApplySuggestionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		chapter, err := svc.ApplySuggestion(r.Context(), userID, bookID, chapterID, req.SuggestionID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Suggestion applied successfully", chapter)
	}
}
