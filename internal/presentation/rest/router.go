package rest

import (
	"log/slog"
	"net/http"

	"github.com/senior-copycoders/Backend/pkg/auth"
)

// NewRouter assembles the HTTP surface: public auth and probe routes, the
// JWT-protected credit API, and the metrics endpoint.
func NewRouter(
	authHandler *AuthHandler,
	creditHandler *CreditHandler,
	healthHandler *HealthHandler,
	jwtService *auth.JWTService,
	metricsHandler http.Handler,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	authHandler.RegisterRoutes(mux)
	creditHandler.RegisterRoutes(mux)
	healthHandler.RegisterRoutes(mux)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	skipPaths := []string{
		"/api/v1/auth/register",
		"/api/v1/auth/login",
		"/healthz",
		"/readyz",
		"/metrics",
	}

	var handler http.Handler = mux
	handler = auth.Middleware(jwtService, skipPaths)(handler)
	handler = MetricsMiddleware()(handler)
	handler = LoggingMiddleware(logger)(handler)
	return handler
}
