package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"slidearchive/internal/domain"
)

type slideNotifier struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	recipients []string
	logger     *slog.Logger
}

// NewSlideNotifier returns a SlideNotifier that e-mails every recipient using the
// "slide_added" template. With no recipients it sends nothing.
func NewSlideNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipients []string, logger *slog.Logger) domain.SlideNotifier {
	return &slideNotifier{
		mailer:     mailer,
		renderer:   renderer,
		recipients: recipients,
		logger:     logger,
	}
}

func (n *slideNotifier) NotifySlideAdded(ctx context.Context, entry *domain.SlideEntry) error {
	if entry == nil {
		return fmt.Errorf("slide entry is nil")
	}
	if len(n.recipients) == 0 {
		return nil
	}
	data := &domain.SlideAddedEmailData{
		Date:     entry.DateString(),
		Title:    entry.Title,
		EmbedURL: entry.EmbedURL,
	}
	subject, htmlBody, textBody, err := n.renderer.Render("slide_added", data)
	if err != nil {
		return fmt.Errorf("failed to render slide_added template: %w", err)
	}
	var errs []error
	for _, to := range n.recipients {
		if err := n.mailer.Send(to, subject, htmlBody, textBody); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", to, err))
			continue
		}
		n.logger.InfoContext(ctx, "slide added notification sent", "to", to, "title", entry.Title)
	}
	return errors.Join(errs...)
}
