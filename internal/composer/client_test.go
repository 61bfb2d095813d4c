package composer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomviz/internal/catalog"
	"roomviz/internal/domain"
)

func TestClientEdit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/edit-room", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "edit-42", r.Header.Get("X-Request-ID"))

		var req domain.EditRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "data:image/jpeg;base64,AAAA", req.BasePhoto)
		assert.Equal(t, "#3B82F6", req.WallColor)

		_ = json.NewEncoder(w).Encode(domain.EditResponse{Success: true, Image: "QUJD", MIMEType: "image/png"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())
	ctx := WithRequestID(context.Background(), "edit-42")
	resp, err := c.Edit(ctx, domain.EditRequest{BasePhoto: "data:image/jpeg;base64,AAAA", WallColor: "#3B82F6"})
	require.NoError(t, err)
	assert.Equal(t, "QUJD", resp.Image)
	assert.Equal(t, "image/png", resp.MIMEType)
}

func TestClientEditServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"model returned no image"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Edit(context.Background(), domain.EditRequest{BasePhoto: "x"})
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "model returned no image")
}

func TestClientEditPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Edit(context.Background(), domain.EditRequest{BasePhoto: "x"})
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "bad gateway")
}

func TestClientEditUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, nil).Edit(context.Background(), domain.EditRequest{BasePhoto: "x"})
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestClientCurrentModelAndCatalog(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/current-model", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.ModelResponse{Success: true, CurrentModel: "gemini-2.5-flash-image"})
	})
	mux.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(catalog.Listing{
			Tiles:      []catalog.TileEntry{{ID: "classic-oak", Name: "Classic Oak"}},
			WallColors: []catalog.WallColor{{Name: "Red", Hex: "#EF4444"}},
		})
	})
	mux.HandleFunc("/catalog/tiles/classic-oak.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	model, err := c.CurrentModel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash-image", model)

	listing, err := c.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, listing.Tiles, 1)
	assert.Equal(t, "Classic Oak", listing.Tiles[0].Name)
	assert.Equal(t, "#EF4444", listing.WallColors[0].Hex)

	tile, err := c.Tile(context.Background(), "classic-oak")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), tile)

	_, err = c.Tile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrTransport)
}
