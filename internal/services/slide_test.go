package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"slidearchive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlideRepo implements domain.SlideRepository in memory.
type fakeSlideRepo struct {
	entries   []*domain.SlideEntry
	appendErr error
	fetchErr  error
}

func (f *fakeSlideRepo) Append(ctx context.Context, e *domain.SlideEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	cp := *e
	f.entries = append(f.entries, &cp)
	return nil
}

func (f *fakeSlideRepo) FetchAll(ctx context.Context) ([]*domain.SlideEntry, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]*domain.SlideEntry, len(f.entries))
	for i, e := range f.entries {
		cp := *e
		out[i] = &cp
	}
	return out, nil
}

// fakeNotifier implements domain.SlideNotifier for tests.
type fakeNotifier struct {
	notified []*domain.SlideEntry
	err      error
}

func (f *fakeNotifier) NotifySlideAdded(ctx context.Context, e *domain.SlideEntry) error {
	f.notified = append(f.notified, e)
	return f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSlideService_Submit(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 2, 3, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		in          domain.SubmitSlideInput
		repo        *fakeSlideRepo
		notifierErr error
		wantErr     error
		wantAnyErr  bool
		want        *domain.SlideEntry
	}{
		{
			name: "iframe embed code is extracted and stored",
			in: domain.SubmitSlideInput{
				Date:       day,
				Title:      "Kickoff",
				EmbedInput: `<iframe src="https://docs.google.com/presentation/d/e/ABC/pubembed"></iframe>`,
			},
			repo: &fakeSlideRepo{},
			want: &domain.SlideEntry{Date: day, Title: "Kickoff", EmbedURL: "https://docs.google.com/presentation/d/e/ABC/pubembed"},
		},
		{
			name:    "unrelated domain is rejected",
			in:      domain.SubmitSlideInput{Date: day, Title: "X", EmbedInput: "https://example.com/slides"},
			repo:    &fakeSlideRepo{},
			wantErr: domain.ErrInvalidEmbedURL,
		},
		{
			name:    "empty input is rejected",
			in:      domain.SubmitSlideInput{Date: day, Title: "X"},
			repo:    &fakeSlideRepo{},
			wantErr: domain.ErrInvalidEmbedURL,
		},
		{
			name: "empty title is accepted and title is trimmed",
			in:   domain.SubmitSlideInput{Date: day, Title: "   ", EmbedInput: " https://docs.google.com/presentation/d/x "},
			repo: &fakeSlideRepo{},
			want: &domain.SlideEntry{Date: day, Title: "", EmbedURL: "https://docs.google.com/presentation/d/x"},
		},
		{
			name: "zero date defaults to today",
			in:   domain.SubmitSlideInput{Title: "Today", EmbedInput: "https://docs.google.com/presentation/d/y"},
			repo: &fakeSlideRepo{},
			want: &domain.SlideEntry{Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Title: "Today", EmbedURL: "https://docs.google.com/presentation/d/y"},
		},
		{
			name:        "notification failure does not fail submission",
			in:          domain.SubmitSlideInput{Date: day, Title: "N", EmbedInput: "https://docs.google.com/presentation/d/z"},
			repo:        &fakeSlideRepo{},
			notifierErr: errors.New("smtp down"),
			want:        &domain.SlideEntry{Date: day, Title: "N", EmbedURL: "https://docs.google.com/presentation/d/z"},
		},
		{
			name:       "store error propagates",
			in:         domain.SubmitSlideInput{Date: day, Title: "E", EmbedInput: "https://docs.google.com/presentation/d/z"},
			repo:       &fakeSlideRepo{appendErr: errors.New("network")},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{err: tt.notifierErr}
			svc := NewSlideService(tt.repo, notifier, discardLogger()).(*slideService)
			svc.now = func() time.Time { return today }

			got, err := svc.Submit(ctx, tt.in)
			if tt.wantErr != nil || tt.wantAnyErr {
				require.Error(t, err)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}
				assert.Empty(t, tt.repo.entries)
				assert.Empty(t, notifier.notified)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, tt.repo.entries, 1)
			assert.Equal(t, tt.want, tt.repo.entries[0])
			require.Len(t, notifier.notified, 1)
		})
	}
}

func TestSlideService_Submit_NilNotifier(t *testing.T) {
	repo := &fakeSlideRepo{}
	svc := NewSlideService(repo, nil, discardLogger())

	_, err := svc.Submit(context.Background(), domain.SubmitSlideInput{
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EmbedInput: "https://docs.google.com/presentation/d/a",
	})
	require.NoError(t, err)
	assert.Len(t, repo.entries, 1)
}

func TestSlideService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip in append order with duplicates", func(t *testing.T) {
		repo := &fakeSlideRepo{}
		svc := NewSlideService(repo, nil, discardLogger())
		inputs := []domain.SubmitSlideInput{
			{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Title: "B", EmbedInput: "https://docs.google.com/presentation/d/b"},
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Title: "A", EmbedInput: "https://docs.google.com/presentation/d/a"},
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Title: "A", EmbedInput: "https://docs.google.com/presentation/d/a"},
		}
		for _, in := range inputs {
			_, err := svc.Submit(ctx, in)
			require.NoError(t, err)
		}

		got, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "2024-03-01: B", got[0].Label())
		assert.Equal(t, "2024-01-01: A", got[1].Label())
		assert.Equal(t, got[1], got[2])
	})

	t.Run("empty archive", func(t *testing.T) {
		svc := NewSlideService(&fakeSlideRepo{}, nil, discardLogger())
		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		svc := NewSlideService(&fakeSlideRepo{fetchErr: errors.New("auth")}, nil, discardLogger())
		_, err := svc.List(ctx)
		require.Error(t, err)
	})
}
