package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Chapter status values
const (
	ChapterStatusDraft     = "draft"
	ChapterStatusWritten   = "written"
	ChapterStatusReviewed  = "reviewed"
	ChapterStatusFinalized = "finalized"
)

// ChapterStatuses is the closed set of valid chapter statuses.
var ChapterStatuses = []string{ChapterStatusDraft, ChapterStatusWritten, ChapterStatusReviewed, ChapterStatusFinalized}

// Suggestion is a single AI suggestion attached to a chapter.
// The list is append-only; Applied flips when the author accepts one.
type Suggestion struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Applied   bool      `json:"applied"`
}

// SuggestionList stores suggestions as a JSONB column on the chapter row.
type SuggestionList []Suggestion

// Value implements driver.Valuer for JSONB storage.
func (s SuggestionList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB storage.
func (s *SuggestionList) Scan(src any) error {
	if src == nil {
		*s = SuggestionList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for SuggestionList", src)
	}
	if len(data) == 0 {
		*s = SuggestionList{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// ChapterDB represents a chapter row in the database
type ChapterDB struct {
	ChapterID       uuid.UUID      `json:"id" db:"chapter_id"`                   // Primary key
	BookID          uuid.UUID      `json:"bookId" db:"book_id"`                  // Owning book
	ChapterNumber   int            `json:"chapterNumber" db:"chapter_number"`    // Unique per book
	Title           string         `json:"title" db:"title"`                     // 1-500 chars, required
	Content         string         `json:"content" db:"content"`                 // Free text, may be empty
	WordCount       int            `json:"wordCount" db:"word_count"`            // Derived from content on every save
	Status          string         `json:"status" db:"status"`                   // Closed set, default "draft"
	AudioURL        *string        `json:"audioUrl" db:"audio_url"`              // Placeholder, unused
	AudioDuration   *int           `json:"audioDuration" db:"audio_duration"`    // Placeholder, seconds
	GrokEnhanced    bool           `json:"grokEnhanced" db:"grok_enhanced"`      // Set when AI touched the chapter
	GrokSuggestions SuggestionList `json:"grokSuggestions" db:"grok_suggestions"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
}

// AddSuggestion appends an AI suggestion record to the chapter.
func (c *ChapterDB) AddSuggestion(text string) {
	c.GrokSuggestions = append(c.GrokSuggestions, Suggestion{
		ID:        time.Now().UnixMilli(),
		Text:      text,
		Timestamp: time.Now().UTC(),
		Applied:   false,
	})
}

// ApplySuggestion marks the suggestion with the given id as applied.
// Returns false if no such suggestion exists.
func (c *ChapterDB) ApplySuggestion(id int64) bool {
	for i := range c.GrokSuggestions {
		if c.GrokSuggestions[i].ID == id {
			c.GrokSuggestions[i].Applied = true
			c.GrokEnhanced = true
			return true
		}
	}
	return false
}
