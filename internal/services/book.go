package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/logger"
	"github.com/fabula-app/fabula/internal/models"
	"github.com/fabula-app/fabula/internal/repositories"
	"github.com/fabula-app/fabula/internal/textstat"
)

// Error variables
var (
	ErrBookNotFound = errors.New("book not found")
	ErrNoChapters   = errors.New("book has no chapters to summarize")
)

// statsChapterLimit bounds the chapter scan for derived statistics.
const statsChapterLimit = 10000

// BookReader defines read-only operations for books.
type BookReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, filter repositories.BookFilter) ([]models.BookDB, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	GetByUserAndID(ctx context.Context, userID, bookID uuid.UUID) (*models.BookDB, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Save(ctx context.Context, book *models.BookDB) error
	Update(ctx context.Context, book *models.BookDB) error
	Delete(ctx context.Context, bookID uuid.UUID) error
}

// StatsCache caches derived book statistics.
type StatsCache interface {
	Get(ctx context.Context, bookID uuid.UUID) (*models.BookStats, error)
	Set(ctx context.Context, bookID uuid.UUID, stats *models.BookStats) error
	Invalidate(ctx context.Context, bookID uuid.UUID) error
}

// BookSummarizer generates a whole-book summary via the AI client.
type BookSummarizer interface {
	GenerateBookSummary(ctx context.Context, chapters []grok.ChapterInput, info grok.BookInfo) (*grok.BookSummaryResult, error)
}

// BookService handles book CRUD, derived statistics, and book-level AI.
type BookService struct {
	reader   BookReader
	writer   BookWriter
	chapters ChapterReader
	ai       BookSummarizer
	cache    StatsCache
	kafka    KafkaWriter
}

// NewBookService creates a new BookService instance.
func NewBookService(reader BookReader, writer BookWriter, chapters ChapterReader, ai BookSummarizer, cache StatsCache, kafka KafkaWriter) *BookService {
	return &BookService{
		reader:   reader,
		writer:   writer,
		chapters: chapters,
		ai:       ai,
		cache:    cache,
		kafka:    kafka,
	}
}

// BookCreate carries the fields accepted on book creation.
type BookCreate struct {
	Title       string
	Description *string
	Genre       *string
	Language    string
	IsPublic    bool
}

// BookUpdate carries the optional fields of a book update; nil means "leave as is".
type BookUpdate struct {
	Title         *string
	Description   *string
	Genre         *string
	Language      *string
	Status        *string
	CoverImageURL *string
	IsPublic      *bool
}

// List returns the user's books plus the total owned count for pagination.
func (svc *BookService) List(ctx context.Context, userID uuid.UUID, filter repositories.BookFilter) ([]models.BookDB, int, error) {
	books, err := svc.reader.ListByUser(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list books", "userID", userID, "err", err)
		return nil, 0, err
	}

	total, err := svc.reader.CountByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count books", "userID", userID, "err", err)
		return nil, 0, err
	}

	return books, total, nil
}

// Get returns a single book owned by the user, optionally with its chapters.
// Books owned by other users are indistinguishable from missing ones.
func (svc *BookService) Get(ctx context.Context, userID, bookID uuid.UUID, includeChapters bool) (*models.BookDB, []models.ChapterDB, error) {
	book, err := svc.reader.GetByUserAndID(ctx, userID, bookID)
	if err != nil {
		return nil, nil, err
	}
	if book == nil {
		return nil, nil, ErrBookNotFound
	}

	if !includeChapters {
		return book, nil, nil
	}

	chapters, err := svc.chapters.ListByBook(ctx, bookID, statsChapterLimit, 0)
	if err != nil {
		logger.Log.Errorw("failed to list chapters for book", "bookID", bookID, "err", err)
		return nil, nil, err
	}
	return book, chapters, nil
}

// Create inserts a new book for the user.
func (svc *BookService) Create(ctx context.Context, userID uuid.UUID, params BookCreate) (*models.BookDB, error) {
	language := params.Language
	if language == "" {
		language = "en"
	}

	now := time.Now().UTC()
	book := &models.BookDB{
		BookID:      uuid.New(),
		UserID:      userID,
		Title:       params.Title,
		Description: params.Description,
		Genre:       params.Genre,
		Language:    language,
		Status:      models.BookStatusDraft,
		IsPublic:    params.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := svc.writer.Save(ctx, book); err != nil {
		logger.Log.Errorw("failed to save book", "userID", userID, "err", err)
		return nil, err
	}

	publishContentEvent(ctx, svc.kafka, models.ContentEvent{
		EventID:   uuid.New().String(),
		Timestamp: now.UnixMilli(),
		UserID:    userID.String(),
		BookID:    book.BookID.String(),
		Operation: "book.created",
	})

	return book, nil
}

// Update applies the non-nil fields of upd to the user's book.
func (svc *BookService) Update(ctx context.Context, userID, bookID uuid.UUID, upd BookUpdate) (*models.BookDB, error) {
	book, err := svc.reader.GetByUserAndID(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Description != nil {
		book.Description = upd.Description
	}
	if upd.Genre != nil {
		book.Genre = upd.Genre
	}
	if upd.Language != nil {
		book.Language = *upd.Language
	}
	if upd.Status != nil {
		book.Status = *upd.Status
	}
	if upd.CoverImageURL != nil {
		book.CoverImageURL = upd.CoverImageURL
	}
	if upd.IsPublic != nil {
		book.IsPublic = *upd.IsPublic
	}

	if err := svc.writer.Update(ctx, book); err != nil {
		logger.Log.Errorw("failed to update book", "bookID", bookID, "err", err)
		return nil, err
	}

	// Status drives Progress, which is part of cached stats.
	if upd.Status != nil {
		if err := svc.cache.Invalidate(ctx, bookID); err != nil {
			logger.Log.Warnw("failed to invalidate stats cache", "bookID", bookID, "err", err)
		}
	}

	publishContentEvent(ctx, svc.kafka, models.ContentEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID.String(),
		BookID:    bookID.String(),
		Operation: "book.updated",
	})

	return book, nil
}

// Delete removes the user's book together with all of its chapters.
func (svc *BookService) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	book, err := svc.reader.GetByUserAndID(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	if err := svc.writer.Delete(ctx, bookID); err != nil {
		logger.Log.Errorw("failed to delete book", "bookID", bookID, "err", err)
		return err
	}

	if err := svc.cache.Invalidate(ctx, bookID); err != nil {
		logger.Log.Warnw("failed to invalidate stats cache", "bookID", bookID, "err", err)
	}

	publishContentEvent(ctx, svc.kafka, models.ContentEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID.String(),
		BookID:    bookID.String(),
		Operation: "book.deleted",
	})

	return nil
}

// Stats returns derived statistics for the user's book. Results come from
// the Redis cache when fresh; cache failures fall back to the database.
func (svc *BookService) Stats(ctx context.Context, userID, bookID uuid.UUID) (*models.BookStats, error) {
	book, err := svc.reader.GetByUserAndID(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	cached, err := svc.cache.Get(ctx, bookID)
	if err != nil {
		logger.Log.Warnw("stats cache unavailable, recomputing", "bookID", bookID, "err", err)
	}
	if cached != nil {
		return cached, nil
	}

	chapters, err := svc.chapters.ListByBook(ctx, bookID, statsChapterLimit, 0)
	if err != nil {
		logger.Log.Errorw("failed to list chapters for stats", "bookID", bookID, "err", err)
		return nil, err
	}

	stats := computeBookStats(book, chapters)

	if err := svc.cache.Set(ctx, bookID, stats); err != nil {
		logger.Log.Warnw("failed to cache stats", "bookID", bookID, "err", err)
	}

	return stats, nil
}

func computeBookStats(book *models.BookDB, chapters []models.ChapterDB) *models.BookStats {
	totalWords := 0
	breakdown := make([]models.ChapterStat, 0, len(chapters))
	for _, ch := range chapters {
		totalWords += ch.WordCount
		breakdown = append(breakdown, models.ChapterStat{
			ChapterNumber: ch.ChapterNumber,
			Title:         ch.Title,
			WordCount:     ch.WordCount,
			Status:        ch.Status,
			ReadingTime:   textstat.ReadingTime(ch.WordCount),
		})
	}

	average := 0
	if len(chapters) > 0 {
		average = int(math.Round(float64(totalWords) / float64(len(chapters))))
	}

	return &models.BookStats{
		TotalChapters:          len(chapters),
		TotalWords:             totalWords,
		AverageWordsPerChapter: average,
		EstimatedReadingTime:   textstat.ReadingTime(totalWords),
		Progress:               book.Progress(),
		Status:                 book.Status,
		LastUpdated:            book.UpdatedAt,
		ChapterBreakdown:       breakdown,
	}
}

// GenerateSummary asks the AI client for a narrative summary over every
// chapter of the book. A book with no chapters fails with ErrNoChapters.
func (svc *BookService) GenerateSummary(ctx context.Context, userID, bookID uuid.UUID) (*grok.BookSummaryResult, error) {
	book, err := svc.reader.GetByUserAndID(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	chapters, err := svc.chapters.ListByBook(ctx, bookID, statsChapterLimit, 0)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, ErrNoChapters
	}

	inputs := make([]grok.ChapterInput, 0, len(chapters))
	for _, ch := range chapters {
		inputs = append(inputs, grok.ChapterInput{
			Number:    ch.ChapterNumber,
			Title:     ch.Title,
			Content:   ch.Content,
			WordCount: ch.WordCount,
		})
	}

	genre := ""
	if book.Genre != nil {
		genre = *book.Genre
	}

	result, err := svc.ai.GenerateBookSummary(ctx, inputs, grok.BookInfo{
		Title:    book.Title,
		Genre:    genre,
		Language: book.Language,
	})
	if err != nil {
		logger.Log.Errorw("failed to generate book summary", "bookID", bookID, "err", err)
		return nil, err
	}

	if !book.GrokEnhanced {
		book.GrokEnhanced = true
		if err := svc.writer.Update(ctx, book); err != nil {
			logger.Log.Warnw("failed to flag book as AI-enhanced", "bookID", bookID, "err", err)
		}
	}

	publishContentEvent(ctx, svc.kafka, models.ContentEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID.String(),
		BookID:    bookID.String(),
		Operation: "book.summary_generated",
	})

	return result, nil
}
