package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"groupsignup/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	registration *controllers.RegistrationController,
	status *controllers.StatusController,
	export *controllers.ExportController,
	webDir string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// API routes
	mux.HandleFunc("POST /register", registration.Register)
	mux.HandleFunc("GET /data", status.GetData)
	mux.HandleFunc("GET /health", status.Health)
	mux.HandleFunc("POST /admin/export", export.Export)

	// Observability
	mux.Handle("GET /metrics", promhttp.Handler())

	// Static dashboard assets
	mux.Handle("/", http.FileServer(http.Dir(webDir)))

	return mux
}
