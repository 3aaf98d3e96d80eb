package models

import "time"

// ChapterStat is one row of the per-chapter breakdown in book statistics.
type ChapterStat struct {
	ChapterNumber int    `json:"chapterNumber"`
	Title         string `json:"title"`
	WordCount     int    `json:"wordCount"`
	Status        string `json:"status"`
	ReadingTime   int    `json:"readingTime"`
}

// BookStats is the derived statistics payload for a book.
type BookStats struct {
	TotalChapters          int           `json:"totalChapters"`
	TotalWords             int           `json:"totalWords"`
	AverageWordsPerChapter int           `json:"averageWordsPerChapter"`
	EstimatedReadingTime   int           `json:"estimatedReadingTime"`
	Progress               int           `json:"progress"`
	Status                 string        `json:"status"`
	LastUpdated            time.Time     `json:"lastUpdated"`
	ChapterBreakdown       []ChapterStat `json:"chapterBreakdown"`
}
