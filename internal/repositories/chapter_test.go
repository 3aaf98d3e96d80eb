package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/fabula-app/fabula/internal/models"
)

var chapterRowColumns = []string{
	"chapter_id", "book_id", "chapter_number", "title", "content", "word_count", "status",
	"audio_url", "audio_duration", "grok_enhanced", "grok_suggestions", "created_at", "updated_at",
}

func addChapterRow(rows *sqlmock.Rows, chapterID, bookID uuid.UUID, number int, title string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(chapterID, bookID, number, title, "content", 1, models.ChapterStatusDraft,
		nil, nil, false, []byte("[]"), now, now)
}

func TestChapterReadRepository_ListByBook(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChapterReadRepository(db)
	ctx := context.Background()

	bookID := uuid.New()

	rows := sqlmock.NewRows(chapterRowColumns)
	addChapterRow(rows, uuid.New(), bookID, 1, "One")
	addChapterRow(rows, uuid.New(), bookID, 2, "Two")

	mock.ExpectQuery("SELECT (.+) FROM chapters").
		WithArgs(bookID, 50, 0).
		WillReturnRows(rows)

	chapters, err := repo.ListByBook(ctx, bookID, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, chapters, 2)
	assert.Equal(t, 1, chapters[0].ChapterNumber)
	assert.Equal(t, 2, chapters[1].ChapterNumber)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChapterReadRepository(db)
	ctx := context.Background()

	bookID, chapterID := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(chapterRowColumns)
		addChapterRow(rows, chapterID, bookID, 1, "One")

		mock.ExpectQuery("SELECT (.+) FROM chapters").
			WithArgs(chapterID, bookID).
			WillReturnRows(rows)

		chapter, err := repo.GetByID(ctx, bookID, chapterID)
		assert.NoError(t, err)
		assert.NotNil(t, chapter)
		assert.Equal(t, "One", chapter.Title)
		assert.Empty(t, chapter.GrokSuggestions)
	})

	t.Run("missing chapter returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM chapters").
			WithArgs(chapterID, bookID).
			WillReturnRows(sqlmock.NewRows(chapterRowColumns))

		chapter, err := repo.GetByID(ctx, bookID, chapterID)
		assert.NoError(t, err)
		assert.Nil(t, chapter)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterReadRepository_NextNumber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChapterReadRepository(db)
	ctx := context.Background()

	bookID := uuid.New()

	t.Run("empty book starts at 1", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(chapter_number), 0) + 1")).
			WithArgs(bookID).
			WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(1))

		next, err := repo.NextNumber(ctx, bookID)
		assert.NoError(t, err)
		assert.Equal(t, 1, next)
	})

	t.Run("continues after the highest number", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(chapter_number), 0) + 1")).
			WithArgs(bookID).
			WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(8))

		next, err := repo.NextNumber(ctx, bookID)
		assert.NoError(t, err)
		assert.Equal(t, 8, next)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChapterWriteRepository(db, nil)
	ctx := context.Background()

	chapter := &models.ChapterDB{
		ChapterID:       uuid.New(),
		BookID:          uuid.New(),
		ChapterNumber:   1,
		Title:           "Opening",
		Content:         "It begins",
		WordCount:       2,
		Status:          models.ChapterStatusDraft,
		GrokSuggestions: models.SuggestionList{},
	}

	mock.ExpectExec("INSERT INTO chapters").
		WithArgs(chapter.ChapterID, chapter.BookID, 1, "Opening", "It begins", 2,
			models.ChapterStatusDraft, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(ctx, chapter))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterWriteRepository_UsesContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)

	repo := NewChapterWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })
	chapterID := uuid.New()

	mock.ExpectExec("DELETE FROM chapters").
		WithArgs(chapterID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(ctx, chapterID))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChapterWriteRepository_RefreshBookStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChapterWriteRepository(db, nil)
	ctx := context.Background()

	bookID := uuid.New()

	mock.ExpectExec("UPDATE books").
		WithArgs(bookID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.RefreshBookStats(ctx, bookID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
