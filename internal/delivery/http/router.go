package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "slidearchive/docs"
	"slidearchive/internal/delivery/http/controllers"
	"slidearchive/internal/delivery/http/middleware"
	"slidearchive/internal/domain"
)

// RouterDeps holds everything NewRouter wires into routes.
type RouterDeps struct {
	Logger  *slog.Logger
	Archive *controllers.ArchiveController
	API     *controllers.APIController
	// Verifier guards POST /api/slides. Nil leaves the route open.
	Verifier           domain.TokenVerifier
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer)

	// Pages
	r.Get("/", d.Archive.Home)
	r.Post("/slides", d.Archive.Submit)
	r.Get("/instructions", d.Archive.Instructions)
	r.Get("/Instructions", http.RedirectHandler("/instructions", http.StatusMovedPermanently).ServeHTTP)

	r.Get("/healthz", d.API.Health)

	// API Routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(d.CORSAllowedOrigins))
		r.Get("/slides", d.API.ListSlides)
		r.Group(func(r chi.Router) {
			if d.Verifier != nil {
				r.Use(middleware.RequireAuth(d.Verifier, d.Logger))
			}
			r.Post("/slides", d.API.CreateSlide)
		})
	})

	// Swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
