package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"slidearchive/internal/delivery/http/helpers"
	"slidearchive/internal/domain"
	"slidearchive/internal/linknorm"
)

// CreateSlideRequest is the request body for POST /api/slides
type CreateSlideRequest struct {
	Date  string `json:"date" example:"2024-05-01"`                                                            // optional, defaults to today
	Title string `json:"title" example:"Q2 kickoff"`                                                           // may be empty
	Embed string `json:"embed" example:"<iframe src=\"https://docs.google.com/presentation/d/e/ABC/pubembed\">"` // embed code or URL
}

// Validate implements Validator.
func (c CreateSlideRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Date) != "" {
		if _, err := domain.ParseDate(c.Date); err != nil {
			errs = append(errs, "date must be formatted as YYYY-MM-DD")
		}
	}
	if strings.TrimSpace(c.Embed) == "" {
		errs = append(errs, "embed is required")
	}
	return errs
}

// SlideResponse is one archived deck.
// swagger:model SlideResponse
type SlideResponse struct {
	Date     string `json:"date" example:"2024-05-01"`
	Title    string `json:"title" example:"Q2 kickoff"`
	EmbedURL string `json:"embed_url" example:"https://docs.google.com/presentation/d/e/ABC/pubembed"`
	Label    string `json:"label" example:"2024-05-01: Q2 kickoff"`
}

func newSlideResponse(e *domain.SlideEntry) SlideResponse {
	return SlideResponse{Date: e.DateString(), Title: e.Title, EmbedURL: e.EmbedURL, Label: e.Label()}
}

// ListSlidesSuccessResponse is the success response envelope for GET /api/slides (200).
type ListSlidesSuccessResponse struct {
	Data  []SlideResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateSlideSuccessResponse is the success response envelope for POST /api/slides (201).
type CreateSlideSuccessResponse struct {
	Data  SlideResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// HealthResponse is the payload of GET /healthz.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// APIController serves the JSON API.
type APIController struct {
	Logger  *slog.Logger
	Service domain.SlideService
}

// NewAPIController creates an APIController with the given logger and service.
func NewAPIController(logger *slog.Logger, svc domain.SlideService) *APIController {
	return &APIController{Logger: logger, Service: svc}
}

// ListSlides godoc
// @Summary List archived slide decks
// @Description Returns every archived deck in append order, oldest first.
// @Tags slides
// @Produce json
// @Success 200 {object} controllers.ListSlidesSuccessResponse "data contains the decks"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/slides [get]
func (c *APIController) ListSlides(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Service.List(r.Context())
	if err != nil {
		c.internalError(w, r, err)
		return
	}
	out := make([]SlideResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newSlideResponse(e))
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// CreateSlide godoc
// @Summary Archive a slide deck
// @Description Extracts the embed URL from an iframe snippet or takes the raw URL, checks it is a Google Slides link and appends the deck to the archive.
// @Tags slides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateSlideRequest true "Deck to archive"
// @Success 201 {object} controllers.CreateSlideSuccessResponse "data contains the stored deck"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/slides [post]
func (c *APIController) CreateSlide(w http.ResponseWriter, r *http.Request) {
	var req CreateSlideRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := domain.SubmitSlideInput{Title: req.Title, EmbedInput: req.Embed}
	if strings.TrimSpace(req.Date) != "" {
		in.Date, _ = domain.ParseDate(req.Date)
	}
	entry, err := c.Service.Submit(r.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmbedURL) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest,
				"invalid embed URL: must start with "+linknorm.EmbedURLPrefix)
			return
		}
		c.internalError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, newSlideResponse(entry))
}

// Health godoc
// @Summary Liveness probe
// @Tags ops
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status: ok"
// @Router /healthz [get]
func (c *APIController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (c *APIController) internalError(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
}
