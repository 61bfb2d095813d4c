package handlers

import (
	"net/http"
	"sync/atomic"
	"time"
)

type editStats struct {
	requested atomic.Int64
	succeeded atomic.Int64
	rejected  atomic.Int64
	failed    atomic.Int64
}

// StatsSummary reports edit counters since process start.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"model":           a.Editor.Model(),
		"uptime_seconds":  int64(time.Since(a.started).Seconds()),
		"edit_requested":  a.stats.requested.Load(),
		"request_success": a.stats.succeeded.Load(),
		"request_rejects": a.stats.rejected.Load(),
		"request_fail":    a.stats.failed.Load(),
	})
}
