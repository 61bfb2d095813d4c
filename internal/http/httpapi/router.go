package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"roomviz/internal/http/handlers"
	"roomviz/internal/infra"
	"roomviz/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/stats", app.StatsSummary)
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	editLimit := middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)
	for _, prefix := range []string{"", "/api"} {
		r.With(editLimit).Post(prefix+"/edit-room", app.EditRoom)
		r.Get(prefix+"/current-model", app.CurrentModel)
		r.Get(prefix+"/catalog", app.Catalog)
		r.Get(prefix+"/catalog/tiles/{id}.png", app.TileTexture)
	}

	if dir := strings.TrimSpace(cfg.StaticDir); dir != "" {
		r.Get("/*", spaHandler(dir))
	}

	return r
}

// spaHandler serves the built frontend and falls back to index.html for
// unknown paths.
func spaHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	return func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err != nil || (info.IsDir() && r.URL.Path != "/") {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	}
}
