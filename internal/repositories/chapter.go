package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fabula-app/fabula/internal/logger"
	"github.com/fabula-app/fabula/internal/models"
)

const chapterColumns = `chapter_id, book_id, chapter_number, title, content, word_count, status,
	audio_url, audio_duration, grok_enhanced, grok_suggestions, created_at, updated_at`

// ChapterReadRepository handles chapter read operations.
type ChapterReadRepository struct {
	db *sqlx.DB
}

func NewChapterReadRepository(db *sqlx.DB) *ChapterReadRepository {
	return &ChapterReadRepository{db: db}
}

// ListByBook returns the book's chapters ordered by chapter number.
func (r *ChapterReadRepository) ListByBook(ctx context.Context, bookID uuid.UUID, limit, offset int) ([]models.ChapterDB, error) {
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM chapters
		WHERE book_id = $1
		ORDER BY chapter_number ASC
		LIMIT $2 OFFSET $3
	`, chapterColumns)

	chapters := []models.ChapterDB{}
	err := r.db.SelectContext(ctx, &chapters, query, bookID, limit, offset)

	logger.Log.Infow("chapter list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID, limit, offset},
		"result", len(chapters),
		"error", err,
	)

	return chapters, err
}

// GetByID returns the chapter scoped to its book, or nil when missing.
func (r *ChapterReadRepository) GetByID(ctx context.Context, bookID, chapterID uuid.UUID) (*models.ChapterDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM chapters
		WHERE chapter_id = $1 AND book_id = $2
		LIMIT 1
	`, chapterColumns)

	var chapter models.ChapterDB
	err := r.db.GetContext(ctx, &chapter, query, chapterID, bookID)

	logger.Log.Infow("chapter query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{chapterID, bookID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// GetByNumber returns the chapter with the given number, or nil when missing.
func (r *ChapterReadRepository) GetByNumber(ctx context.Context, bookID uuid.UUID, number int) (*models.ChapterDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM chapters
		WHERE book_id = $1 AND chapter_number = $2
		LIMIT 1
	`, chapterColumns)

	var chapter models.ChapterDB
	err := r.db.GetContext(ctx, &chapter, query, bookID, number)

	logger.Log.Infow("chapter by number query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID, number},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

// NextNumber returns max(existing numbers) + 1, or 1 for an empty book.
func (r *ChapterReadRepository) NextNumber(ctx context.Context, bookID uuid.UUID) (int, error) {
	const query = `SELECT COALESCE(MAX(chapter_number), 0) + 1 FROM chapters WHERE book_id = $1`

	var next int
	err := r.db.GetContext(ctx, &next, query, bookID)

	logger.Log.Infow("next chapter number query",
		"query", query,
		"args", []any{bookID},
		"result", next,
		"error", err,
	)

	return next, err
}

// ChapterWriteRepository handles chapter write operations. Writes go through
// the transaction carried in the request context when one is present, so a
// chapter mutation and the book aggregate refresh commit together.
type ChapterWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewChapterWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ChapterWriteRepository {
	return &ChapterWriteRepository{db: db, txGetter: txGetter}
}

func (r *ChapterWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new chapter row.
func (r *ChapterWriteRepository) Save(ctx context.Context, chapter *models.ChapterDB) error {
	query := `
		INSERT INTO chapters (chapter_id, book_id, chapter_number, title, content, word_count,
			status, grok_enhanced, grok_suggestions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, NOW(), NOW())
	`
	args := []any{chapter.ChapterID, chapter.BookID, chapter.ChapterNumber,
		chapter.Title, chapter.Content, chapter.WordCount, chapter.Status, chapter.GrokSuggestions}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("chapter insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{chapter.ChapterID, chapter.BookID, chapter.ChapterNumber},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update writes the mutable columns of a chapter row.
func (r *ChapterWriteRepository) Update(ctx context.Context, chapter *models.ChapterDB) error {
	query := `
		UPDATE chapters
		SET chapter_number = $2, title = $3, content = $4, word_count = $5, status = $6,
		    audio_url = $7, audio_duration = $8, grok_enhanced = $9, grok_suggestions = $10,
		    updated_at = NOW()
		WHERE chapter_id = $1
	`
	args := []any{chapter.ChapterID, chapter.ChapterNumber, chapter.Title, chapter.Content,
		chapter.WordCount, chapter.Status, chapter.AudioURL, chapter.AudioDuration,
		chapter.GrokEnhanced, chapter.GrokSuggestions}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("chapter update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{chapter.ChapterID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a chapter row.
func (r *ChapterWriteRepository) Delete(ctx context.Context, chapterID uuid.UUID) error {
	query := `DELETE FROM chapters WHERE chapter_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, chapterID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("chapter delete",
		"query", query,
		"args", []any{chapterID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// RefreshBookStats recomputes the parent book's aggregate statistics from
// its chapter set in a single statement. Called after every chapter
// create/update/delete; last write wins under concurrent editors.
func (r *ChapterWriteRepository) RefreshBookStats(ctx context.Context, bookID uuid.UUID) error {
	query := `
		UPDATE books
		SET total_chapters = sub.chapter_count,
		    total_words = sub.word_total,
		    updated_at = NOW()
		FROM (
			SELECT COUNT(*) AS chapter_count, COALESCE(SUM(word_count), 0) AS word_total
			FROM chapters
			WHERE book_id = $1
		) AS sub
		WHERE books.book_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("book stats refresh",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
