package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used in the store and on the wire.
const DateLayout = "2006-01-02"

// Sentinel errors for slide archive operations.
var (
	ErrInvalidEmbedURL = errors.New("invalid embed URL")
	ErrInvalidDate     = errors.New("invalid date")
)

// SlideEntry is one archived presentation deck.
type SlideEntry struct {
	Date     time.Time
	Title    string
	EmbedURL string
}

// NewSlideEntry returns a SlideEntry with the date truncated to its calendar day.
func NewSlideEntry(date time.Time, title, embedURL string) *SlideEntry {
	return &SlideEntry{
		Date:     CalendarDate(date),
		Title:    title,
		EmbedURL: embedURL,
	}
}

// DateString returns the entry date in DateLayout.
func (e *SlideEntry) DateString() string {
	return e.Date.Format(DateLayout)
}

// Label is the "<date>: <title>" string the archive viewer selects decks by.
func (e *SlideEntry) Label() string {
	return e.DateString() + ": " + e.Title
}

// CalendarDate drops the clock part of t, keeping its year, month and day in UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a DateLayout string. Surrounding whitespace is ignored.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// SlideRepository is the archive store: an append-only table of (date, title, url) rows.
type SlideRepository interface {
	// Append adds one row. Duplicates are allowed.
	Append(ctx context.Context, entry *SlideEntry) error
	// FetchAll returns every row in append order, oldest first.
	FetchAll(ctx context.Context) ([]*SlideEntry, error)
}

// SubmitSlideInput is the raw user input of the upload form.
type SubmitSlideInput struct {
	Date       time.Time // zero means today
	Title      string
	EmbedInput string // a URL or an HTML snippet carrying src="..."
}

// SlideService archives and lists slide decks.
type SlideService interface {
	Submit(ctx context.Context, in SubmitSlideInput) (*SlideEntry, error)
	List(ctx context.Context) ([]*SlideEntry, error)
}

// SlideNotifier announces newly archived decks.
type SlideNotifier interface {
	NotifySlideAdded(ctx context.Context, entry *SlideEntry) error
}
