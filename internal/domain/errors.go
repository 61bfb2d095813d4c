package domain

import "errors"

var (
	ErrMissingBasePhoto = errors.New("missing base photo")
	ErrNothingToEdit    = errors.New("no tile, wall color or sofa selected")
	ErrInvalidImage     = errors.New("invalid image")
	ErrInvalidWallColor = errors.New("invalid wall color")
	ErrModelInvocation  = errors.New("model invocation failed")
	ErrNoImageReturned  = errors.New("no image returned by model")
	ErrTransport        = errors.New("transport failure")
)
