package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"slidearchive/internal/domain"
	"slidearchive/internal/linknorm"
)

// fakeSlideService implements domain.SlideService for handler tests. Submit
// applies the real link normalisation so handlers see realistic outcomes.
type fakeSlideService struct {
	entries   []*domain.SlideEntry
	listErr   error
	submitErr error
	lastInput *domain.SubmitSlideInput
}

func (f *fakeSlideService) Submit(ctx context.Context, in domain.SubmitSlideInput) (*domain.SlideEntry, error) {
	f.lastInput = &in
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	url := linknorm.Normalize(in.EmbedInput)
	if !linknorm.IsValidEmbedURL(url) {
		return nil, domain.ErrInvalidEmbedURL
	}
	date := in.Date
	if date.IsZero() {
		date = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	}
	e := domain.NewSlideEntry(date, in.Title, url)
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeSlideService) List(ctx context.Context) ([]*domain.SlideEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
