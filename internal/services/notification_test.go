package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"slidearchive/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, html, text string
}

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	sent   []sentMail
	failTo map[string]bool
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.failTo[to] {
		return errors.New("rejected")
	}
	f.sent = append(f.sent, sentMail{to, subject, html, text})
	return nil
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	lastName string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	f.lastName, f.lastData = name, data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestSlideNotifier_NotifySlideAdded(t *testing.T) {
	ctx := context.Background()
	entry := domain.NewSlideEntry(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "Kickoff", "https://docs.google.com/presentation/d/x")

	t.Run("sends to every recipient", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		n := NewSlideNotifier(mailer, renderer, []string{"a@example.com", "b@example.com"}, discardLogger())

		require.NoError(t, n.NotifySlideAdded(ctx, entry))
		assert.Equal(t, "slide_added", renderer.lastName)
		assert.Equal(t, &domain.SlideAddedEmailData{Date: "2024-05-01", Title: "Kickoff", EmbedURL: entry.EmbedURL}, renderer.lastData)
		require.Len(t, mailer.sent, 2)
		assert.Equal(t, sentMail{"a@example.com", "subject", "<p>html</p>", "text"}, mailer.sent[0])
		assert.Equal(t, "b@example.com", mailer.sent[1].to)
	})

	t.Run("no recipients sends nothing", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		n := NewSlideNotifier(mailer, renderer, nil, discardLogger())

		require.NoError(t, n.NotifySlideAdded(ctx, entry))
		assert.Empty(t, mailer.sent)
		assert.Empty(t, renderer.lastName)
	})

	t.Run("one failing recipient does not stop the others", func(t *testing.T) {
		mailer := &fakeMailer{failTo: map[string]bool{"a@example.com": true}}
		n := NewSlideNotifier(mailer, &fakeRenderer{}, []string{"a@example.com", "b@example.com"}, discardLogger())

		err := n.NotifySlideAdded(ctx, entry)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a@example.com")
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "b@example.com", mailer.sent[0].to)
	})

	t.Run("render error", func(t *testing.T) {
		mailer := &fakeMailer{}
		n := NewSlideNotifier(mailer, &fakeRenderer{err: errors.New("bad template")}, []string{"a@example.com"}, discardLogger())

		require.Error(t, n.NotifySlideAdded(ctx, entry))
		assert.Empty(t, mailer.sent)
	})

	t.Run("nil entry", func(t *testing.T) {
		n := NewSlideNotifier(&fakeMailer{}, &fakeRenderer{}, []string{"a@example.com"}, discardLogger())
		require.Error(t, n.NotifySlideAdded(ctx, nil))
	})
}
