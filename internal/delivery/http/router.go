package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"jugsite/internal/delivery/http/controllers"
	"jugsite/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(content *controllers.ContentController) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /events/{id}", content.GetEvent)
	mux.HandleFunc("GET /events/{id}/talks", content.GetEventTalks)
	mux.HandleFunc("GET /speakers/{id}", content.GetSpeaker)
	mux.HandleFunc("GET /speakers/{id}/talks", content.GetSpeakerTalks)
	mux.HandleFunc("GET /talks/{id}", content.GetTalk)
	mux.HandleFunc("GET /sponsors/{id}", content.GetSponsor)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(logger *slog.Logger, allowedOrigins []string, content *controllers.ContentController) http.Handler {
	return middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, NewRouter(content)))
}
