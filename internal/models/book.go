package models

import (
	"time"

	"github.com/google/uuid"
)

// Book status values
const (
	BookStatusDraft      = "draft"
	BookStatusInProgress = "in_progress"
	BookStatusCompleted  = "completed"
	BookStatusPublished  = "published"
)

// BookStatuses is the closed set of valid book statuses.
var BookStatuses = []string{BookStatusDraft, BookStatusInProgress, BookStatusCompleted, BookStatusPublished}

// Languages is the closed set of supported content languages.
var Languages = []string{"en", "de", "es", "fr", "it"}

// Genres is the closed set of valid book genres.
var Genres = []string{
	"fiction", "non-fiction", "mystery", "romance", "science-fiction",
	"fantasy", "thriller", "horror", "biography", "autobiography",
	"history", "travel", "self-help", "business", "poetry",
	"drama", "comedy", "adventure", "children", "young-adult", "other",
}

// BookDB represents a book row in the database
type BookDB struct {
	BookID        uuid.UUID `json:"id" db:"book_id"`                     // Primary key
	UserID        uuid.UUID `json:"userId" db:"user_id"`                 // Owning user
	Title         string    `json:"title" db:"title"`                    // 1-500 chars, required
	Description   *string   `json:"description" db:"description"`        // Optional description
	Genre         *string   `json:"genre" db:"genre"`                    // Optional, closed set
	Language      string    `json:"language" db:"language"`              // Closed set, default "en"
	Status        string    `json:"status" db:"status"`                  // Closed set, default "draft"
	TotalChapters int       `json:"totalChapters" db:"total_chapters"`   // Derived: count of chapters
	TotalWords    int       `json:"totalWords" db:"total_words"`         // Derived: sum of chapter word counts
	CoverImageURL *string   `json:"coverImageUrl" db:"cover_image_url"`  // Optional cover URL
	IsPublic      bool      `json:"isPublic" db:"is_public"`             // Public/private flag
	GrokEnhanced  bool      `json:"grokEnhanced" db:"grok_enhanced"`     // Set when AI touched the book
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// Progress maps the book status to a rough completion percentage.
func (b *BookDB) Progress() int {
	switch b.Status {
	case BookStatusDraft:
		return 10
	case BookStatusInProgress:
		return 50
	case BookStatusCompleted, BookStatusPublished:
		return 100
	default:
		return 0
	}
}
