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

// BookFilter narrows ListByUser results.
type BookFilter struct {
	Status string // exact status match when non-empty
	Search string // case-insensitive substring over title/description/genre
	Limit  int    // 0 means the default of 50
	Offset int
}

// BookReadRepository handles book read operations.
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

const bookColumns = `book_id, user_id, title, description, genre, language, status,
	total_chapters, total_words, cover_image_url, is_public, grok_enhanced, created_at, updated_at`

// ListByUser returns the user's books ordered by last update, newest first.
func (r *BookReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter BookFilter) ([]models.BookDB, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE user_id = $1
		  AND ($2::VARCHAR IS NULL OR status = $2)
		  AND ($3::VARCHAR IS NULL OR title ILIKE $3 OR description ILIKE $3 OR genre ILIKE $3)
		ORDER BY updated_at DESC
		LIMIT $4 OFFSET $5
	`, bookColumns)

	var status, search *string
	if filter.Status != "" {
		status = &filter.Status
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		search = &pattern
	}

	books := []models.BookDB{}
	err := r.db.SelectContext(ctx, &books, query, userID, status, search, limit, filter.Offset)

	logger.Log.Infow("book list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, filter.Status, filter.Search, limit, filter.Offset},
		"result", len(books),
		"error", err,
	)

	return books, err
}

// CountByUser returns the total number of books owned by the user.
func (r *BookReadRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM books WHERE user_id = $1`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("book count query",
		"query", query,
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

// GetByUserAndID returns the book only when it is owned by the given user;
// nil otherwise. Handlers translate the nil into a 404 so non-owners cannot
// probe for existence.
func (r *BookReadRepository) GetByUserAndID(ctx context.Context, userID, bookID uuid.UUID) (*models.BookDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE book_id = $1 AND user_id = $2
		LIMIT 1
	`, bookColumns)

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, bookID, userID)

	logger.Log.Infow("book query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// BookWriteRepository handles book write operations.
type BookWriteRepository struct {
	db *sqlx.DB
}

func NewBookWriteRepository(db *sqlx.DB) *BookWriteRepository {
	return &BookWriteRepository{db: db}
}

// Save inserts a new book row.
func (r *BookWriteRepository) Save(ctx context.Context, book *models.BookDB) error {
	query := `
		INSERT INTO books (book_id, user_id, title, description, genre, language, status,
			total_chapters, total_words, cover_image_url, is_public, grok_enhanced, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, $8, $9, FALSE, NOW(), NOW())
	`
	args := []any{book.BookID, book.UserID, book.Title, book.Description,
		book.Genre, book.Language, book.Status, book.CoverImageURL, book.IsPublic}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("book insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{book.BookID, book.UserID, book.Title},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Update writes the mutable columns of a book row.
func (r *BookWriteRepository) Update(ctx context.Context, book *models.BookDB) error {
	query := `
		UPDATE books
		SET title = $2, description = $3, genre = $4, language = $5, status = $6,
		    cover_image_url = $7, is_public = $8, grok_enhanced = $9, updated_at = NOW()
		WHERE book_id = $1
	`
	args := []any{book.BookID, book.Title, book.Description, book.Genre,
		book.Language, book.Status, book.CoverImageURL, book.IsPublic, book.GrokEnhanced}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("book update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{book.BookID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a book; the chapters foreign key cascades.
func (r *BookWriteRepository) Delete(ctx context.Context, bookID uuid.UUID) error {
	query := `DELETE FROM books WHERE book_id = $1`

	res, err := r.db.ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("book delete",
		"query", query,
		"args", []any{bookID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
