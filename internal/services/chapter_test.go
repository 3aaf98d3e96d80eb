package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/fabula-app/fabula/internal/grok"
	"github.com/fabula-app/fabula/internal/models"
	"github.com/fabula-app/fabula/internal/services"
)

func newChapterService(ctrl *gomock.Controller) (*services.ChapterService, *services.MockBookReader, *services.MockChapterReader, *services.MockChapterWriter, *services.MockChapterAI, *services.MockStatsCache) {
	books := services.NewMockBookReader(ctrl)
	chapters := services.NewMockChapterReader(ctrl)
	writer := services.NewMockChapterWriter(ctrl)
	ai := services.NewMockChapterAI(ctrl)
	cache := services.NewMockStatsCache(ctrl)

	svc := services.NewChapterService(books, chapters, writer, ai, cache, nil)
	return svc, books, chapters, writer, ai, cache
}

func expectOwnedBook(books *services.MockBookReader, userID, bookID uuid.UUID, book *models.BookDB) {
	books.EXPECT().GetByUserAndID(gomock.Any(), userID, bookID).Return(book, nil)
}

func TestChapterService_Create_AutoNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, writer, _, cache := newChapterService(ctrl)
	userID, bookID := uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
	chapters.EXPECT().NextNumber(gomock.Any(), bookID).Return(3, nil)
	writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ch *models.ChapterDB) error {
			assert.Equal(t, 3, ch.ChapterNumber)
			assert.Equal(t, models.ChapterStatusDraft, ch.Status)
			assert.Equal(t, 7, ch.WordCount)
			return nil
		})
	writer.EXPECT().RefreshBookStats(gomock.Any(), bookID).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), bookID).Return(nil)

	chapter, err := svc.Create(context.Background(), userID, bookID, services.ChapterCreate{
		Title:   "Opening",
		Content: "It was a dark and stormy night",
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, chapter.ChapterNumber)
	assert.Equal(t, 7, chapter.WordCount)
}

func TestChapterService_Create_PublishesContentEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	books := services.NewMockBookReader(ctrl)
	chapters := services.NewMockChapterReader(ctrl)
	writer := services.NewMockChapterWriter(ctrl)
	cache := services.NewMockStatsCache(ctrl)
	kafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewChapterService(books, chapters, writer, services.NewMockChapterAI(ctrl), cache, kafka)
	userID, bookID := uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
	chapters.EXPECT().NextNumber(gomock.Any(), bookID).Return(1, nil)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().RefreshBookStats(gomock.Any(), bookID).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), bookID).Return(nil)
	kafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafkago.Message) error {
			assert.Len(t, msgs, 1)
			assert.Equal(t, bookID.String(), string(msgs[0].Key))

			var event models.ContentEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, "chapter.created", event.Operation)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 2, event.WordCount)
			return nil
		})

	_, err := svc.Create(context.Background(), userID, bookID, services.ChapterCreate{
		Title:   "Opening",
		Content: "It begins",
	})
	assert.NoError(t, err)
}

func TestChapterService_Create_NumberTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, _, _, _ := newChapterService(ctrl)
	userID, bookID := uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
	chapters.EXPECT().GetByNumber(gomock.Any(), bookID, 2).
		Return(&models.ChapterDB{ChapterID: uuid.New(), ChapterNumber: 2}, nil)

	_, err := svc.Create(context.Background(), userID, bookID, services.ChapterCreate{
		Title:  "Duplicate",
		Number: 2,
	})
	assert.ErrorIs(t, err, services.ErrChapterNumberTaken)
}

func TestChapterService_Create_BookNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, _, _, _, _ := newChapterService(ctrl)
	userID, bookID := uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, nil)

	_, err := svc.Create(context.Background(), userID, bookID, services.ChapterCreate{Title: "X"})
	assert.ErrorIs(t, err, services.ErrBookNotFound)
}

func TestChapterService_Update_ContentRecountsWords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, writer, _, cache := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
	chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
		Return(&models.ChapterDB{ChapterID: chapterID, BookID: bookID, ChapterNumber: 1, WordCount: 100}, nil)
	writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().RefreshBookStats(gomock.Any(), bookID).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), bookID).Return(nil)

	content := "one two three"
	chapter, err := svc.Update(context.Background(), userID, bookID, chapterID, services.ChapterUpdate{
		Content: &content,
	})
	assert.NoError(t, err)
	assert.Equal(t, content, chapter.Content)
	assert.Equal(t, 3, chapter.WordCount)
}

func TestChapterService_Update_NumberCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, _, _, _ := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
	chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
		Return(&models.ChapterDB{ChapterID: chapterID, ChapterNumber: 1}, nil)
	chapters.EXPECT().GetByNumber(gomock.Any(), bookID, 5).
		Return(&models.ChapterDB{ChapterID: uuid.New(), ChapterNumber: 5}, nil)

	number := 5
	_, err := svc.Update(context.Background(), userID, bookID, chapterID, services.ChapterUpdate{
		ChapterNumber: &number,
	})
	assert.ErrorIs(t, err, services.ErrChapterNumberTaken)
}

func TestChapterService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, writer, _, cache := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
	chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
		Return(&models.ChapterDB{ChapterID: chapterID, WordCount: 42}, nil)
	writer.EXPECT().Delete(gomock.Any(), chapterID).Return(nil)
	writer.EXPECT().RefreshBookStats(gomock.Any(), bookID).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), bookID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), userID, bookID, chapterID))
}

func TestChapterService_Enhance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, writer, ai, cache := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()
	genre := "mystery"
	book := &models.BookDB{BookID: bookID, Title: "Whodunit", Genre: &genre, Language: "en"}

	expectOwnedBook(books, userID, bookID, book)
	chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
		Return(&models.ChapterDB{ChapterID: chapterID, ChapterNumber: 1, Title: "One", Content: "plain text", WordCount: 2}, nil)
	ai.EXPECT().
		EnhanceContent(gomock.Any(), "One", "plain text", grok.EnhanceContext{
			BookTitle: "Whodunit",
			Genre:     "mystery",
			Language:  "en",
		}).
		Return(&grok.EnhanceResult{
			EnhancedContent: "vivid prose of much greater depth",
			Suggestions:     []string{"add foreshadowing"},
			WordCount:       6,
		}, nil)
	writer.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ch *models.ChapterDB) error {
			assert.Equal(t, "vivid prose of much greater depth", ch.Content)
			assert.Equal(t, 6, ch.WordCount)
			assert.True(t, ch.GrokEnhanced)
			assert.Len(t, ch.GrokSuggestions, 1)
			assert.Equal(t, "add foreshadowing", ch.GrokSuggestions[0].Text)
			return nil
		})
	writer.EXPECT().RefreshBookStats(gomock.Any(), bookID).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), bookID).Return(nil)

	chapter, result, err := svc.Enhance(context.Background(), userID, bookID, chapterID)
	assert.NoError(t, err)
	assert.True(t, chapter.GrokEnhanced)
	assert.Len(t, result.Suggestions, 1)
}

func TestChapterService_Enhance_UsesPreviousChapterContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, writer, ai, cache := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID, Title: "T", Language: "en"})
	chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
		Return(&models.ChapterDB{ChapterID: chapterID, ChapterNumber: 2, Title: "Two", Content: "more text"}, nil)
	chapters.EXPECT().GetByNumber(gomock.Any(), bookID, 1).
		Return(&models.ChapterDB{ChapterNumber: 1, Content: "earlier events"}, nil)
	ai.EXPECT().
		EnhanceContent(gomock.Any(), "Two", "more text", grok.EnhanceContext{
			BookTitle:       "T",
			Language:        "en",
			PreviousChapter: "earlier events",
		}).
		Return(&grok.EnhanceResult{EnhancedContent: "better text", WordCount: 2}, nil)
	writer.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().RefreshBookStats(gomock.Any(), bookID).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any(), bookID).Return(nil)

	_, _, err := svc.Enhance(context.Background(), userID, bookID, chapterID)
	assert.NoError(t, err)
}

func TestChapterService_Enhance_EmptyContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, _, _, _ := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()

	expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
	chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
		Return(&models.ChapterDB{ChapterID: chapterID, Content: ""}, nil)

	_, _, err := svc.Enhance(context.Background(), userID, bookID, chapterID)
	assert.ErrorIs(t, err, services.ErrEmptyContent)
}

func TestChapterService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, _, ai, _ := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()

	t.Run("empty content", func(t *testing.T) {
		expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
		chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
			Return(&models.ChapterDB{ChapterID: chapterID}, nil)

		_, err := svc.Summarize(context.Background(), userID, bookID, chapterID, "short")
		assert.ErrorIs(t, err, services.ErrEmptyContent)
	})

	t.Run("does not mutate the chapter", func(t *testing.T) {
		expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID, Language: "fr"})
		chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
			Return(&models.ChapterDB{ChapterID: chapterID, Content: "long story"}, nil)
		ai.EXPECT().
			SummarizeContent(gomock.Any(), "long story", grok.SummaryContext{Language: "fr", Length: "short"}).
			Return(&grok.SummaryResult{Summary: "short story", OriginalWordCount: 2, SummaryWordCount: 2}, nil)

		result, err := svc.Summarize(context.Background(), userID, bookID, chapterID, "short")
		assert.NoError(t, err)
		assert.Equal(t, "short story", result.Summary)
	})
}

func TestChapterService_ApplySuggestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, books, chapters, writer, _, _ := newChapterService(ctrl)
	userID, bookID, chapterID := uuid.New(), uuid.New(), uuid.New()

	t.Run("unknown suggestion", func(t *testing.T) {
		expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
		chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).
			Return(&models.ChapterDB{ChapterID: chapterID, GrokSuggestions: models.SuggestionList{}}, nil)

		_, err := svc.ApplySuggestion(context.Background(), userID, bookID, chapterID, 99)
		assert.ErrorIs(t, err, services.ErrSuggestionNotFound)
	})

	t.Run("marks the suggestion applied", func(t *testing.T) {
		chapter := &models.ChapterDB{ChapterID: chapterID}
		chapter.AddSuggestion("tighten the pacing")
		suggestionID := chapter.GrokSuggestions[0].ID

		expectOwnedBook(books, userID, bookID, &models.BookDB{BookID: bookID})
		chapters.EXPECT().GetByID(gomock.Any(), bookID, chapterID).Return(chapter, nil)
		writer.EXPECT().Update(gomock.Any(), chapter).Return(nil)

		got, err := svc.ApplySuggestion(context.Background(), userID, bookID, chapterID, suggestionID)
		assert.NoError(t, err)
		assert.True(t, got.GrokSuggestions[0].Applied)
	})
}
