package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"roomviz/internal/domain"
	"roomviz/internal/imagegen"
	"roomviz/internal/middleware"
)

const defaultEditTimeout = 4 * time.Minute

// EditRoom validates the payload, runs exactly one model call and returns the
// generated image. Validation failures never reach the model.
func (a *App) EditRoom(w http.ResponseWriter, r *http.Request) {
	a.stats.requested.Add(1)
	logger := a.Logger.With().Str("request_id", middleware.RequestIDFromContext(r.Context())).Logger()

	if a.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.MaxBodyBytes)
	}
	var req domain.EditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.stats.rejected.Add(1)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	spec, err := imagegen.ParseEditRequest(req)
	// A base photo with no tile, wall color or sofa is rejected on purpose:
	// the model would be asked to return the photo unchanged.
	if err == nil && !spec.HasEdits() {
		err = domain.ErrNothingToEdit
	}
	if err != nil {
		a.stats.rejected.Add(1)
		logger.Debug().Err(err).Msg("edit-room: rejected request")
		a.error(w, http.StatusBadRequest, err.Error())
		return
	}

	// The model call is not cancelled when the client goes away.
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultEditTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), timeout)
	defer cancel()

	start := time.Now()
	img, err := a.Editor.Edit(ctx, spec)
	if err != nil {
		a.stats.failed.Add(1)
		logger.Error().Err(err).Str("model", a.Editor.Model()).Dur("duration", time.Since(start)).Msg("edit-room: model call failed")
		a.error(w, http.StatusInternalServerError, err.Error())
		return
	}

	a.stats.succeeded.Add(1)
	logger.Info().
		Str("model", a.Editor.Model()).
		Str("mime_type", img.MIMEType).
		Int("bytes", len(img.Data)).
		Dur("duration", time.Since(start)).
		Msg("edit-room: image generated")
	a.json(w, http.StatusOK, domain.EditResponse{
		Success:  true,
		Image:    base64.StdEncoding.EncodeToString(img.Data),
		MIMEType: img.MIMEType,
	})
}

func (a *App) CurrentModel(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, domain.ModelResponse{Success: true, CurrentModel: a.Editor.Model()})
}
