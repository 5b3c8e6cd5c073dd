package httpx

import (
	"log/slog"
	"net/http"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Login  LoginServiceInterface
	Tweaks TweakServiceInterface
	Specs  SpecsServiceInterface
	Logger *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Login, Logger: services.Logger}
	tweakHandlers := &TweakHandlers{Svc: services.Tweaks, Logger: services.Logger}
	specsHandlers := &SpecsHandlers{Svc: services.Specs}

	mux.Handle("POST /api/auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("POST /api/auth/cancel", http.HandlerFunc(authHandlers.Cancel))
	mux.Handle("POST /api/tweaks", http.HandlerFunc(tweakHandlers.Apply))
	mux.Handle("GET /api/tweaks", http.HandlerFunc(tweakHandlers.List))
	mux.Handle("GET /api/specs", http.HandlerFunc(specsHandlers.Get))
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
