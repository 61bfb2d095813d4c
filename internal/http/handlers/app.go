package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"roomviz/internal/catalog"
	"roomviz/internal/domain"
	"roomviz/internal/imagegen"
	"roomviz/internal/infra"
)

// App carries the dependencies shared by every handler. Editor is built once
// at startup and reused for all requests.
type App struct {
	Editor       imagegen.Editor
	Logger       infra.Logger
	Timeout      time.Duration
	MaxBodyBytes int64

	stats   editStats
	started time.Time

	catalogOnce sync.Once
	listing     catalog.Listing
	listingErr  error
}

func NewApp(editor imagegen.Editor, cfg *infra.Config, logger infra.Logger) *App {
	return &App{
		Editor:       editor,
		Logger:       logger,
		Timeout:      cfg.RequestTimeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
		started:      time.Now(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, domain.ErrorResponse{Error: msg})
}
