package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"roomviz/internal/catalog"
)

// Catalog lists tiles with inlined textures and the wall palette. The listing
// is rendered once.
func (a *App) Catalog(w http.ResponseWriter, r *http.Request) {
	a.catalogOnce.Do(func() {
		a.listing, a.listingErr = catalog.Build()
	})
	if a.listingErr != nil {
		a.Logger.Error().Err(a.listingErr).Msg("catalog: render failed")
		a.error(w, http.StatusInternalServerError, "failed to render catalog")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")
	a.json(w, http.StatusOK, a.listing)
}

func (a *App) TileTexture(w http.ResponseWriter, r *http.Request) {
	tile, ok := catalog.Lookup(chi.URLParam(r, "id"))
	if !ok {
		a.error(w, http.StatusNotFound, "unknown tile")
		return
	}
	png, err := tile.Texture()
	if err != nil {
		a.Logger.Error().Err(err).Str("tile", tile.ID).Msg("catalog: texture render failed")
		a.error(w, http.StatusInternalServerError, "failed to render texture")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
