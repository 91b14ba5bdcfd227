package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"slidearchive/internal/domain"
	"slidearchive/internal/linknorm"
)

type slideService struct {
	repo     domain.SlideRepository
	notifier domain.SlideNotifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewSlideService creates a SlideService backed by repo. notifier may be nil.
func NewSlideService(repo domain.SlideRepository, notifier domain.SlideNotifier, logger *slog.Logger) domain.SlideService {
	return &slideService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Submit normalises the embed input and appends the entry when the URL is valid.
// Invalid URLs return domain.ErrInvalidEmbedURL and nothing is stored.
func (s *slideService) Submit(ctx context.Context, in domain.SubmitSlideInput) (*domain.SlideEntry, error) {
	url := linknorm.Normalize(in.EmbedInput)
	if !linknorm.IsValidEmbedURL(url) {
		return nil, domain.ErrInvalidEmbedURL
	}
	date := in.Date
	if date.IsZero() {
		date = s.now()
	}
	entry := domain.NewSlideEntry(date, strings.TrimSpace(in.Title), strings.TrimSpace(url))
	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append slide entry: %w", err)
	}
	if s.notifier != nil {
		if err := s.notifier.NotifySlideAdded(ctx, entry); err != nil {
			s.logger.WarnContext(ctx, "slide added notification failed", "title", entry.Title, "err", err)
		}
	}
	return entry, nil
}

func (s *slideService) List(ctx context.Context) ([]*domain.SlideEntry, error) {
	entries, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slide entries: %w", err)
	}
	return entries, nil
}
