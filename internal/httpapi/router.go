package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"glassquiz/internal/quiz"
)

// RouterOptions configures cross-cutting behavior of the router.
type RouterOptions struct {
	// CORSOrigins lists the browser origins allowed to call the API.
	// CORS handling is skipped when it is empty.
	CORSOrigins []string
}

func NewRouter(service *quiz.Service, opts RouterOptions) http.Handler {
	api := NewAPI(service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	r.Get("/healthz", api.HandleHealth)
	r.Get("/categories", api.HandleCategories)
	r.Get("/categories/{category}/questions", api.HandleCategoryQuestions)
	r.Post("/mock", api.HandleGenerateMock)
	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", api.HandleFavorites)
		r.Put("/{questionID}", api.HandleAddFavorite)
		r.Delete("/{questionID}", api.HandleRemoveFavorite)
		r.Post("/{questionID}/toggle", api.HandleToggleFavorite)
	})
	r.Post("/explanations", api.HandleExplain)
	r.Get("/results", api.HandleResults)
	r.Post("/results", api.HandleRecordResult)

	return r
}
