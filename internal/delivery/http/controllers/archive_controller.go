package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"slidearchive/internal/delivery/http/web"
	"slidearchive/internal/domain"
)

// User-visible messages of the archive page.
const (
	MsgAdded       = "Slide deck added to archive!"
	MsgInvalidURL  = "Invalid embed URL. Please use a valid Google Slides link."
	MsgInvalidDate = "Invalid date. Please use the YYYY-MM-DD format."
)

const maxFormBytes = 64 << 10

// ArchiveController serves the upload/browse page and the instructions page.
type ArchiveController struct {
	Logger  *slog.Logger
	Service domain.SlideService
	Pages   *web.Renderer
	now     func() time.Time
}

// NewArchiveController creates an ArchiveController with the given logger, service and renderer.
func NewArchiveController(logger *slog.Logger, svc domain.SlideService, pages *web.Renderer) *ArchiveController {
	return &ArchiveController{
		Logger:  logger,
		Service: svc,
		Pages:   pages,
		now:     time.Now,
	}
}

type uploadForm struct {
	Date  string
	Title string
	Embed string
}

type deckOption struct {
	Index    int
	Label    string
	EmbedURL string
	Selected bool
}

type homePage struct {
	Form     uploadForm
	Flash    string
	Warning  string
	Entries  []deckOption
	Selected *deckOption
}

type instructionsPage struct {
	Body any
}

// Home renders the upload form and the archive viewer. ?deck=N selects the
// N-th entry (0-based) for preview; ?added=1 shows the confirmation.
func (c *ArchiveController) Home(w http.ResponseWriter, r *http.Request) {
	page := homePage{Form: uploadForm{Date: c.now().Format(domain.DateLayout)}}
	if r.URL.Query().Get("added") == "1" {
		page.Flash = MsgAdded
	}
	c.renderHome(w, r, http.StatusOK, page)
}

// Submit handles the upload form. A valid entry is stored and the browser is
// redirected to the confirmation; an invalid one re-renders the page with a warning.
func (c *ArchiveController) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := uploadForm{
		Date:  strings.TrimSpace(r.PostFormValue("date")),
		Title: r.PostFormValue("title"),
		Embed: r.PostFormValue("embed"),
	}

	var date time.Time
	if form.Date != "" {
		d, err := domain.ParseDate(form.Date)
		if err != nil {
			c.renderHome(w, r, http.StatusBadRequest, homePage{Form: form, Warning: MsgInvalidDate})
			return
		}
		date = d
	}

	_, err := c.Service.Submit(r.Context(), domain.SubmitSlideInput{
		Date:       date,
		Title:      form.Title,
		EmbedInput: form.Embed,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmbedURL) {
			form.Embed = ""
			c.renderHome(w, r, http.StatusUnprocessableEntity, homePage{Form: form, Warning: MsgInvalidURL})
			return
		}
		c.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/?added=1", http.StatusSeeOther)
}

// Instructions renders the static how-to page.
func (c *ArchiveController) Instructions(w http.ResponseWriter, r *http.Request) {
	if err := c.Pages.Render(w, http.StatusOK, web.PageInstructions, instructionsPage{Body: c.Pages.Instructions()}); err != nil {
		c.serverError(w, r, err)
	}
}

func (c *ArchiveController) renderHome(w http.ResponseWriter, r *http.Request, status int, page homePage) {
	entries, err := c.Service.List(r.Context())
	if err != nil {
		c.serverError(w, r, err)
		return
	}
	page.Entries, page.Selected = deckOptions(entries, r.URL.Query().Get("deck"))
	if err := c.Pages.Render(w, status, web.PageHome, page); err != nil {
		c.serverError(w, r, err)
	}
}

// deckOptions builds the selector entries. An absent or out-of-range selection
// falls back to the first deck.
func deckOptions(entries []*domain.SlideEntry, selected string) ([]deckOption, *deckOption) {
	if len(entries) == 0 {
		return nil, nil
	}
	sel, err := strconv.Atoi(selected)
	if err != nil || sel < 0 || sel >= len(entries) {
		sel = 0
	}
	opts := make([]deckOption, len(entries))
	for i, e := range entries {
		opts[i] = deckOption{Index: i, Label: e.Label(), EmbedURL: e.EmbedURL, Selected: i == sel}
	}
	return opts, &opts[sel]
}

func (c *ArchiveController) serverError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
