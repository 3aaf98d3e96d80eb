package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/models"
	"github.com/fabula-app/fabula/internal/repositories"
	"github.com/fabula-app/fabula/internal/services"
	"github.com/fabula-app/fabula/internal/validation"
)

// BookLister defines the interface for listing the caller's books.
type BookLister interface {
	List(ctx context.Context, userID uuid.UUID, filter repositories.BookFilter) ([]models.BookDB, int, error)
}

// BookGetter defines the interface for reading a single book.
type BookGetter interface {
	Get(ctx context.Context, userID, bookID uuid.UUID, includeChapters bool) (*models.BookDB, []models.ChapterDB, error)
}

// BookCreator defines the interface for creating a book.
type BookCreator interface {
	Create(ctx context.Context, userID uuid.UUID, params services.BookCreate) (*models.BookDB, error)
}

// BookUpdater defines the interface for updating a book.
type BookUpdater interface {
	Update(ctx context.Context, userID, bookID uuid.UUID, upd services.BookUpdate) (*models.BookDB, error)
}

// BookDeleter defines the interface for deleting a book.
type BookDeleter interface {
	Delete(ctx context.Context, userID, bookID uuid.UUID) error
}

// BookStatsProvider defines the interface for derived book statistics.
type BookStatsProvider interface {
	Stats(ctx context.Context, userID, bookID uuid.UUID) (*models.BookStats, error)
}

// BookSummaryGenerator defines the interface for AI whole-book summaries.
type BookSummaryGenerator interface {
	GenerateSummary(ctx context.Context, userID, bookID uuid.UUID) (*grok.BookSummaryResult, error)
}

// BookListData is the payload for the book list endpoint.
// swagger:model BookListData
type BookListData struct {
	Books  []models.BookDB `json:"books"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// NewListBooksHandler returns an HTTP handler listing the caller's books.
// @Summary List own books
// @Description Returns the caller's books ordered by last update. Supports status filtering, substring search, and pagination.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param search query string false "Substring search over title/description/genre"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.Response "Book list"
// @Router /books [get]
func NewListBooksHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()
		filter := repositories.BookFilter{
			Status: q.Get("status"),
			Search: q.Get("search"),
		}
		filter.Limit, _ = strconv.Atoi(q.Get("limit"))
		filter.Offset, _ = strconv.Atoi(q.Get("offset"))
		if filter.Offset < 0 {
			filter.Offset = 0
		}

		if filter.Status != "" {
			if res := validation.BookStatus(filter.Status); !res.IsValid {
				respondValidation(w, res.Errors)
				return
			}
		}

		books, total, err := svc.List(r.Context(), userID, filter)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		limit := filter.Limit
		if limit <= 0 {
			limit = 50
		}
		respondData(w, http.StatusOK, "", BookListData{
			Books:  books,
			Total:  total,
			Limit:  limit,
			Offset: filter.Offset,
		})
	}
}

// BookData is the payload for a single-book endpoint; Chapters is present
// only when requested.
// swagger:model BookData
type BookData struct {
	Book     *models.BookDB     `json:"book"`
	Chapters []models.ChapterDB `json:"chapters,omitempty"`
}

// NewGetBookHandler returns an HTTP handler for reading a single book.
// @Summary Get a book
// @Description Returns one of the caller's books; set includeChapters=true to embed its chapters.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param includeChapters query bool false "Embed chapters"
// @Success 200 {object} handlers.Response "Book"
// @Failure 404 {object} handlers.Response "Book not found"
// @Router /books/{bookId} [get]
func NewGetBookHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}

		includeChapters := r.URL.Query().Get("includeChapters") == "true"

		book, chapters, err := svc.Get(r.Context(), userID, bookID, includeChapters)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "", BookData{Book: book, Chapters: chapters})
	}
}

// CreateBookRequest represents the JSON body for book creation
// swagger:model CreateBookRequest
type CreateBookRequest struct {
	// Title
	// required: true
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Genre       *string `json:"genre"`
	Language    string  `json:"language"`
	IsPublic    bool    `json:"isPublic"`
}

// NewCreateBookHandler returns an HTTP handler for creating a book.
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBookRequest body handlers.CreateBookRequest true "Book creation request"
// @Success 201 {object} handlers.Response "Created book"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Router /books [post]
func NewCreateBookHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}

		var req CreateBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var errs []string
		if res := validation.BookTitle(req.Title); !res.IsValid {
			errs = append(errs, res.Errors...)
		}
		if req.Genre != nil {
			if res := validation.Genre(*req.Genre); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if res := validation.Language(req.Language); !res.IsValid {
			errs = append(errs, res.Errors...)
		}
		if len(errs) > 0 {
			respondValidation(w, errs)
			return
		}

		book, err := svc.Create(r.Context(), userID, services.BookCreate{
			Title:       req.Title,
			Description: req.Description,
			Genre:       req.Genre,
			Language:    req.Language,
			IsPublic:    req.IsPublic,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusCreated, "Book created successfully", book)
	}
}

// UpdateBookRequest represents the JSON body for a book update; absent
// fields are left unchanged.
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Genre         *string `json:"genre"`
	Language      *string `json:"language"`
	Status        *string `json:"status"`
	CoverImageURL *string `json:"coverImageUrl"`
	IsPublic      *bool   `json:"isPublic"`
}

// NewUpdateBookHandler returns an HTTP handler for updating a book.
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Param updateBookRequest body handlers.UpdateBookRequest true "Book update request"
// @Success 200 {object} handlers.Response "Updated book"
// @Failure 400 {object} handlers.Response "Validation failed"
// @Failure 404 {object} handlers.Response "Book not found"
// @Router /books/{bookId} [put]
func NewUpdateBookHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}

		var req UpdateBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var errs []string
		if req.Title != nil {
			if res := validation.BookTitle(*req.Title); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.Genre != nil {
			if res := validation.Genre(*req.Genre); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.Language != nil {
			if res := validation.Language(*req.Language); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if req.Status != nil {
			if res := validation.BookStatus(*req.Status); !res.IsValid {
				errs = append(errs, res.Errors...)
			}
		}
		if len(errs) > 0 {
			respondValidation(w, errs)
			return
		}

		book, err := svc.Update(r.Context(), userID, bookID, services.BookUpdate{
			Title:         req.Title,
			Description:   req.Description,
			Genre:         req.Genre,
			Language:      req.Language,
			Status:        req.Status,
			CoverImageURL: req.CoverImageURL,
			IsPublic:      req.IsPublic,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Book updated successfully", book)
	}
}

// NewDeleteBookHandler returns an HTTP handler for deleting a book.
// @Summary Delete a book
// @Description Deletes a book and all of its chapters.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Success 200 {object} handlers.Response "Book deleted"
// @Failure 404 {object} handlers.Response "Book not found"
// @Router /books/{bookId} [delete]
func NewDeleteBookHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, bookID); err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Book deleted successfully", nil)
	}
}

// NewBookStatsHandler returns an HTTP handler for derived book statistics.
// @Summary Get book statistics
// @Description Returns derived statistics (word totals, reading time, per-chapter breakdown) for a book.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Success 200 {object} handlers.Response "Statistics"
// @Failure 404 {object} handlers.Response "Book not found"
// @Router /books/{bookId}/stats [get]
func NewBookStatsHandler(svc BookStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), userID, bookID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "", stats)
	}
}

// NewBookSummaryHandler returns an HTTP handler generating an AI summary of
// a whole book.
// @Summary Generate a book summary
// @Description Asks the AI service for a narrative summary over every chapter of the book.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param bookId path string true "Book ID"
// @Success 200 {object} handlers.Response "Summary"
// @Failure 400 {object} handlers.Response "Book has no chapters"
// @Failure 404 {object} handlers.Response "Book not found"
// @Failure 503 {object} handlers.Response "AI service not configured"
// @Router /books/{bookId}/summary [post]
func NewBookSummaryHandler(svc BookSummaryGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUserID(w, r)
		if !ok {
			return
		}
		bookID, ok := pathUUID(w, r, "bookId", "Book")
		if !ok {
			return
		}

		summary, err := svc.GenerateSummary(r.Context(), userID, bookID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondData(w, http.StatusOK, "Book summary generated", summary)
	}
}
