package models

// ContentEvent is published to Kafka after book/chapter mutations.
type ContentEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id"`
	BookID    string `json:"book_id"`
	ChapterID string `json:"chapter_id,omitempty"`
	Operation string `json:"operation"` // e.g. chapter.created, book.deleted, chapter.enhanced
	WordCount int    `json:"word_count,omitempty"`
}
