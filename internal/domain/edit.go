package domain

// EditRequest is the wire payload accepted by POST /edit-room. BasePhoto is
// required; every other field is optional and an empty value means "not
// selected". Images are base64 strings, optionally carrying a data URL prefix.
type EditRequest struct {
	BasePhoto          string `json:"basePhoto"`
	TileReference      string `json:"tileReference,omitempty"`
	SofaReference      string `json:"sofaReference,omitempty"`
	SecondaryReference string `json:"secondaryReference,omitempty"`
	WallColor          string `json:"wallColor,omitempty"`
	PlacementClause    string `json:"placementClause,omitempty"`
}

// EditResponse is returned on a successful edit. Image holds raw base64 with
// no data URL prefix.
type EditResponse struct {
	Success  bool   `json:"success"`
	Image    string `json:"image"`
	MIMEType string `json:"mimeType,omitempty"`
}

// ModelResponse answers GET /current-model.
type ModelResponse struct {
	Success      bool   `json:"success"`
	CurrentModel string `json:"currentModel"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DefaultImageMIME is assumed for a generated image whose type was not
// reported.
const DefaultImageMIME = "image/png"

// GeneratedImage is the single image produced by the model for one request.
type GeneratedImage struct {
	Data     []byte
	MIMEType string
}
