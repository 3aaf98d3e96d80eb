package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fabula-app/fabula/internal/models"
)

// Result reports the outcome of a single field validation.
// All failure modes are carried in Errors; validators never panic or
// return Go errors.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func ok() Result {
	return Result{IsValid: true, Errors: []string{}}
}

func fail(errs ...string) Result {
	return Result{IsValid: false, Errors: errs}
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks the basic shape of an email address.
func Email(email string) Result {
	if !emailRegexp.MatchString(email) {
		return fail("Please provide a valid email address")
	}
	return ok()
}

// Password enforces the password policy: 8-128 characters with at least
// one lowercase letter, one uppercase letter, and one digit.
func Password(password string) Result {
	if password == "" {
		return fail("Password is required")
	}

	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if len(password) > 128 {
		errs = append(errs, "Password must be less than 128 characters")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		errs = append(errs, "Password must contain at least one number")
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok()
}

func title(value, kind string) Result {
	if strings.TrimSpace(value) == "" {
		return fail(kind + " title is required")
	}

	var errs []string
	if len(value) > 500 {
		errs = append(errs, kind+" title must be less than 500 characters")
	}
	if len(strings.TrimSpace(value)) < 2 {
		errs = append(errs, kind+" title must be at least 2 characters long")
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok()
}

// BookTitle validates a book title (trimmed length 2-500).
func BookTitle(value string) Result {
	return title(value, "Book")
}

// ChapterTitle validates a chapter title (trimmed length 2-500).
func ChapterTitle(value string) Result {
	return title(value, "Chapter")
}

// ContentOptions tunes Content validation.
type ContentOptions struct {
	MaxLength  int  // 0 means the default of 100000
	AllowEmpty bool
}

// Content validates free-text chapter content.
func Content(content string, opts ContentOptions) Result {
	maxLength := opts.MaxLength
	if maxLength == 0 {
		maxLength = 100000
	}

	if !opts.AllowEmpty && strings.TrimSpace(content) == "" {
		return fail("Content cannot be empty")
	}
	if len(content) > maxLength {
		return fail(fmt.Sprintf("Content must be less than %d characters", maxLength))
	}
	return ok()
}

func inSet(value string, set []string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// Genre validates an optional genre against the closed set.
func Genre(genre string) Result {
	if genre != "" && !inSet(strings.ToLower(genre), models.Genres) {
		return fail("Genre must be one of: " + strings.Join(models.Genres, ", "))
	}
	return ok()
}

// Language validates an optional language code against the closed set.
func Language(language string) Result {
	if language != "" && !inSet(strings.ToLower(language), models.Languages) {
		return fail("Language must be one of: " + strings.Join(models.Languages, ", "))
	}
	return ok()
}

// BookStatus validates an optional book status against the closed set.
func BookStatus(status string) Result {
	if status != "" && !inSet(strings.ToLower(status), models.BookStatuses) {
		return fail("Status must be one of: " + strings.Join(models.BookStatuses, ", "))
	}
	return ok()
}

// ChapterStatus validates an optional chapter status against the closed set.
func ChapterStatus(status string) Result {
	if status != "" && !inSet(strings.ToLower(status), models.ChapterStatuses) {
		return fail("Status must be one of: " + strings.Join(models.ChapterStatuses, ", "))
	}
	return ok()
}

// ChapterNumber validates a chapter number in [1, 9999].
func ChapterNumber(number int) Result {
	if number < 1 {
		return fail("Chapter number must be greater than 0")
	}
	if number > 9999 {
		return fail("Chapter number must be less than 10000")
	}
	return ok()
}

var nameRegexp = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s'-]*$`)

// Name validates an optional person name field.
func Name(name, fieldName string) Result {
	var errs []string
	if len(name) > 100 {
		errs = append(errs, fieldName+" must be less than 100 characters")
	}
	if name != "" && !nameRegexp.MatchString(name) {
		errs = append(errs, fieldName+" contains invalid characters")
	}

	if len(errs) > 0 {
		return fail(errs...)
	}
	return ok()
}
