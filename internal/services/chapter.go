package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/logger"
	"github.com/fabula-app/fabula/internal/models"
	"github.com/fabula-app/fabula/internal/textstat"
)

// Error variables
var (
	ErrChapterNotFound    = errors.New("chapter not found")
	ErrChapterNumberTaken = errors.New("chapter number already exists in this book")
	ErrEmptyContent       = errors.New("chapter has no content")
	ErrSuggestionNotFound = errors.New("suggestion not found")
)

// ChapterReader defines read-only operations for chapters.
type ChapterReader interface {
	ListByBook(ctx context.Context, bookID uuid.UUID, limit, offset int) ([]models.ChapterDB, error)
	GetByID(ctx context.Context, bookID, chapterID uuid.UUID) (*models.ChapterDB, error)
	GetByNumber(ctx context.Context, bookID uuid.UUID, number int) (*models.ChapterDB, error)
	NextNumber(ctx context.Context, bookID uuid.UUID) (int, error)
}

// ChapterWriter defines write operations for chapters, including the parent
// book's aggregate refresh that accompanies every mutation.
type ChapterWriter interface {
	Save(ctx context.Context, chapter *models.ChapterDB) error
	Update(ctx context.Context, chapter *models.ChapterDB) error
	Delete(ctx context.Context, chapterID uuid.UUID) error
	RefreshBookStats(ctx context.Context, bookID uuid.UUID) error
}

// ChapterAI is the slice of the AI client used by chapter operations.
type ChapterAI interface {
	EnhanceContent(ctx context.Context, title, currentContent string, ectx grok.EnhanceContext) (*grok.EnhanceResult, error)
	IntegrateThought(ctx context.Context, currentContent, newThought string, ictx grok.IntegrateContext) (*grok.IntegrateResult, error)
	SummarizeContent(ctx context.Context, content string, sctx grok.SummaryContext) (*grok.SummaryResult, error)
}

// ChapterService handles chapter CRUD and chapter-level AI operations.
// Every mutation recomputes the parent book's aggregates and drops the
// cached statistics.
type ChapterService struct {
	books    BookReader
	chapters ChapterReader
	writer   ChapterWriter
	ai       ChapterAI
	cache    StatsCache
	kafka    KafkaWriter
}

// NewChapterService creates a new ChapterService instance.
func NewChapterService(books BookReader, chapters ChapterReader, writer ChapterWriter, ai ChapterAI, cache StatsCache, kafka KafkaWriter) *ChapterService {
	return &ChapterService{
		books:    books,
		chapters: chapters,
		writer:   writer,
		ai:       ai,
		cache:    cache,
		kafka:    kafka,
	}
}

// ChapterCreate carries the fields accepted on chapter creation.
// A Number of 0 assigns the next free number in the book.
type ChapterCreate struct {
	Title   string
	Content string
	Number  int
	Status  string
}

// ChapterUpdate carries the optional fields of a chapter update; nil means
// "leave as is".
type ChapterUpdate struct {
	Title         *string
	Content       *string
	Status        *string
	ChapterNumber *int
}

func (svc *ChapterService) ownedBook(ctx context.Context, userID, bookID uuid.UUID) (*models.BookDB, error) {
	book, err := svc.books.GetByUserAndID(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (svc *ChapterService) afterMutation(ctx context.Context, userID, bookID uuid.UUID, chapterID string, operation string, wordCount int) error {
	if err := svc.writer.RefreshBookStats(ctx, bookID); err != nil {
		logger.Log.Errorw("failed to refresh book stats", "bookID", bookID, "err", err)
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
		ChapterID: chapterID,
		Operation: operation,
		WordCount: wordCount,
	})

	return nil
}

// List returns the book's chapters in reading order plus the book itself.
func (svc *ChapterService) List(ctx context.Context, userID, bookID uuid.UUID, limit, offset int) ([]models.ChapterDB, *models.BookDB, error) {
	book, err := svc.ownedBook(ctx, userID, bookID)
	if err != nil {
		return nil, nil, err
	}

	chapters, err := svc.chapters.ListByBook(ctx, bookID, limit, offset)
	if err != nil {
		logger.Log.Errorw("failed to list chapters", "bookID", bookID, "err", err)
		return nil, nil, err
	}
	return chapters, book, nil
}

// Get returns a single chapter scoped to the user's book.
func (svc *ChapterService) Get(ctx context.Context, userID, bookID, chapterID uuid.UUID) (*models.ChapterDB, error) {
	if _, err := svc.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}

	chapter, err := svc.chapters.GetByID(ctx, bookID, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	return chapter, nil
}

// Create inserts a new chapter. The word count is always derived from the
// content; a client-supplied count is never trusted.
func (svc *ChapterService) Create(ctx context.Context, userID, bookID uuid.UUID, params ChapterCreate) (*models.ChapterDB, error) {
	if _, err := svc.ownedBook(ctx, userID, bookID); err != nil {
		return nil, err
	}

	number := params.Number
	if number <= 0 {
		next, err := svc.chapters.NextNumber(ctx, bookID)
		if err != nil {
			return nil, err
		}
		number = next
	} else {
		existing, err := svc.chapters.GetByNumber(ctx, bookID, number)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrChapterNumberTaken
		}
	}

	status := params.Status
	if status == "" {
		status = models.ChapterStatusDraft
	}

	now := time.Now().UTC()
	chapter := &models.ChapterDB{
		ChapterID:       uuid.New(),
		BookID:          bookID,
		ChapterNumber:   number,
		Title:           params.Title,
		Content:         params.Content,
		WordCount:       textstat.CountWords(params.Content),
		Status:          status,
		GrokSuggestions: models.SuggestionList{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := svc.writer.Save(ctx, chapter); err != nil {
		logger.Log.Errorw("failed to save chapter", "bookID", bookID, "err", err)
		return nil, err
	}

	if err := svc.afterMutation(ctx, userID, bookID, chapter.ChapterID.String(), "chapter.created", chapter.WordCount); err != nil {
		return nil, err
	}
	return chapter, nil
}

// Update applies the non-nil fields of upd to the chapter. Changing the
// chapter number to one already used in the book fails with
// ErrChapterNumberTaken.
func (svc *ChapterService) Update(ctx context.Context, userID, bookID, chapterID uuid.UUID, upd ChapterUpdate) (*models.ChapterDB, error) {
	chapter, err := svc.Get(ctx, userID, bookID, chapterID)
	if err != nil {
		return nil, err
	}

	if upd.ChapterNumber != nil && *upd.ChapterNumber != chapter.ChapterNumber {
		existing, err := svc.chapters.GetByNumber(ctx, bookID, *upd.ChapterNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ChapterID != chapterID {
			return nil, ErrChapterNumberTaken
		}
		chapter.ChapterNumber = *upd.ChapterNumber
	}
	if upd.Title != nil {
		chapter.Title = *upd.Title
	}
	if upd.Content != nil {
		chapter.Content = *upd.Content
		chapter.WordCount = textstat.CountWords(*upd.Content)
	}
	if upd.Status != nil {
		chapter.Status = *upd.Status
	}

	if err := svc.writer.Update(ctx, chapter); err != nil {
		logger.Log.Errorw("failed to update chapter", "chapterID", chapterID, "err", err)
		return nil, err
	}

	if err := svc.afterMutation(ctx, userID, bookID, chapterID.String(), "chapter.updated", chapter.WordCount); err != nil {
		return nil, err
	}
	return chapter, nil
}

// Delete removes the chapter and refreshes the book's aggregates.
func (svc *ChapterService) Delete(ctx context.Context, userID, bookID, chapterID uuid.UUID) error {
	chapter, err := svc.Get(ctx, userID, bookID, chapterID)
	if err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, chapterID); err != nil {
		logger.Log.Errorw("failed to delete chapter", "chapterID", chapterID, "err", err)
		return err
	}

	return svc.afterMutation(ctx, userID, bookID, chapterID.String(), "chapter.deleted", chapter.WordCount)
}

// Enhance rewrites the chapter content with the AI client. The enhanced
// text replaces the content, suggestions extracted from the response are
// appended, and the chapter is flagged as AI-enhanced.
func (svc *ChapterService) Enhance(ctx context.Context, userID, bookID, chapterID uuid.UUID) (*models.ChapterDB, *grok.EnhanceResult, error) {
	book, err := svc.ownedBook(ctx, userID, bookID)
	if err != nil {
		return nil, nil, err
	}

	chapter, err := svc.chapters.GetByID(ctx, bookID, chapterID)
	if err != nil {
		return nil, nil, err
	}
	if chapter == nil {
		return nil, nil, ErrChapterNotFound
	}
	if chapter.Content == "" {
		return nil, nil, ErrEmptyContent
	}

	previous := ""
	if chapter.ChapterNumber > 1 {
		prev, err := svc.chapters.GetByNumber(ctx, bookID, chapter.ChapterNumber-1)
		if err != nil {
			logger.Log.Warnw("failed to load previous chapter for context", "bookID", bookID, "err", err)
		} else if prev != nil {
			previous = prev.Content
		}
	}

	genre := ""
	if book.Genre != nil {
		genre = *book.Genre
	}

	result, err := svc.ai.EnhanceContent(ctx, chapter.Title, chapter.Content, grok.EnhanceContext{
		BookTitle:       book.Title,
		Genre:           genre,
		Language:        book.Language,
		PreviousChapter: previous,
	})
	if err != nil {
		logger.Log.Errorw("failed to enhance chapter", "chapterID", chapterID, "err", err)
		return nil, nil, err
	}

	chapter.Content = result.EnhancedContent
	chapter.WordCount = result.WordCount
	chapter.GrokEnhanced = true
	for _, s := range result.Suggestions {
		chapter.AddSuggestion(s)
	}

	if err := svc.writer.Update(ctx, chapter); err != nil {
		logger.Log.Errorw("failed to store enhanced chapter", "chapterID", chapterID, "err", err)
		return nil, nil, err
	}

	if err := svc.afterMutation(ctx, userID, bookID, chapterID.String(), "chapter.enhanced", chapter.WordCount); err != nil {
		return nil, nil, err
	}
	return chapter, result, nil
}

// IntegrateThought weaves a new idea into the chapter content via the AI
// client and stores the result.
func (svc *ChapterService) IntegrateThought(ctx context.Context, userID, bookID, chapterID uuid.UUID, thought, tone string) (*models.ChapterDB, *grok.IntegrateResult, error) {
	book, err := svc.ownedBook(ctx, userID, bookID)
	if err != nil {
		return nil, nil, err
	}

	chapter, err := svc.chapters.GetByID(ctx, bookID, chapterID)
	if err != nil {
		return nil, nil, err
	}
	if chapter == nil {
		return nil, nil, ErrChapterNotFound
	}

	result, err := svc.ai.IntegrateThought(ctx, chapter.Content, thought, grok.IntegrateContext{
		Language: book.Language,
		Tone:     tone,
	})
	if err != nil {
		logger.Log.Errorw("failed to integrate thought", "chapterID", chapterID, "err", err)
		return nil, nil, err
	}

	chapter.Content = result.IntegratedContent
	chapter.WordCount = textstat.CountWords(result.IntegratedContent)
	chapter.GrokEnhanced = true

	if err := svc.writer.Update(ctx, chapter); err != nil {
		logger.Log.Errorw("failed to store integrated chapter", "chapterID", chapterID, "err", err)
		return nil, nil, err
	}

	if err := svc.afterMutation(ctx, userID, bookID, chapterID.String(), "chapter.thought_integrated", chapter.WordCount); err != nil {
		return nil, nil, err
	}
	return chapter, result, nil
}

// Summarize returns an AI summary of the chapter without mutating it.
func (svc *ChapterService) Summarize(ctx context.Context, userID, bookID, chapterID uuid.UUID, length string) (*grok.SummaryResult, error) {
	book, err := svc.ownedBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	chapter, err := svc.chapters.GetByID(ctx, bookID, chapterID)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	if chapter.Content == "" {
		return nil, ErrEmptyContent
	}

	return svc.ai.SummarizeContent(ctx, chapter.Content, grok.SummaryContext{
		Language: book.Language,
		Length:   length,
	})
}

// ApplySuggestion marks a stored AI suggestion as applied.
func (svc *ChapterService) ApplySuggestion(ctx context.Context, userID, bookID, chapterID uuid.UUID, suggestionID int64) (*models.ChapterDB, error) {
	chapter, err := svc.Get(ctx, userID, bookID, chapterID)
	if err != nil {
		return nil, err
	}

	if !chapter.ApplySuggestion(suggestionID) {
		return nil, ErrSuggestionNotFound
	}

	if err := svc.writer.Update(ctx, chapter); err != nil {
		logger.Log.Errorw("failed to store applied suggestion", "chapterID", chapterID, "err", err)
		return nil, err
	}
	return chapter, nil
}
