package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidearchive/internal/adapters/auth"
	"slidearchive/internal/delivery/http/controllers"
	"slidearchive/internal/delivery/http/web"
	"slidearchive/internal/domain"
	"slidearchive/internal/repository/sqlite"
	"slidearchive/internal/services"
)

func newTestRouter(t *testing.T, verifier domain.TokenVerifier) (http.Handler, domain.SlideRepository) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	repo := sqlite.NewSlideRepository(db)

	svc := services.NewSlideService(repo, nil, logger)
	pages, err := web.NewRenderer(web.Site{})
	require.NoError(t, err)

	return NewRouter(RouterDeps{
		Logger:             logger,
		Archive:            controllers.NewArchiveController(logger, svc, pages),
		API:                controllers.NewAPIController(logger, svc),
		Verifier:           verifier,
		CORSAllowedOrigins: []string{"https://intranet.example.com"},
	}), repo
}

func TestRouter_FormSubmissionIsListedByAPI(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	form := url.Values{
		"date":  {"2024-05-01"},
		"title": {"Kickoff"},
		"embed": {`<iframe src="https://docs.google.com/presentation/d/e/ABC/pubembed" width="960"></iframe>`},
	}
	req := httptest.NewRequest(http.MethodPost, "/slides", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/slides", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var envelope controllers.ListSlidesSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "https://docs.google.com/presentation/d/e/ABC/pubembed", envelope.Data[0].EmbedURL)
	assert.Equal(t, "2024-05-01: Kickoff", envelope.Data[0].Label)
}

func TestRouter_InvalidLinkIsNotStored(t *testing.T) {
	router, repo := newTestRouter(t, nil)

	form := url.Values{"title": {"Elsewhere"}, "embed": {"https://example.com/slides"}}
	req := httptest.NewRequest(http.MethodPost, "/slides", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), controllers.MsgInvalidURL)
	entries, err := repo.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRouter_Routes(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	tests := []struct {
		name         string
		method       string
		target       string
		wantStatus   int
		wantLocation string
	}{
		{name: "home", method: http.MethodGet, target: "/", wantStatus: http.StatusOK},
		{name: "instructions", method: http.MethodGet, target: "/instructions", wantStatus: http.StatusOK},
		{name: "legacy instructions path", method: http.MethodGet, target: "/Instructions", wantStatus: http.StatusMovedPermanently, wantLocation: "/instructions"},
		{name: "health", method: http.MethodGet, target: "/healthz", wantStatus: http.StatusOK},
		{name: "unknown", method: http.MethodGet, target: "/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, target: "/slides", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
		})
	}
}

func TestRouter_APICORS(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/slides", nil)
	req.Header.Set("Origin", "https://intranet.example.com")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://intranet.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_APIWriteRequiresToken(t *testing.T) {
	jwt := auth.NewJWT("router-test-secret")
	router, _ := newTestRouter(t, jwt)
	body := `{"title":"Kickoff","embed":"https://docs.google.com/presentation/d/e/ABC/pubembed"}`

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/slides", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	token, err := jwt.Issue("ci", time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/slides", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	// Reads stay open.
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/slides", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
