package renderer

import "errors"

var (
	ErrInvalidCamera = errors.New("renderer: invalid camera configuration")
	ErrNilWorld      = errors.New("renderer: world must not be nil")
	ErrNilSink       = errors.New("renderer: pixel sink must not be nil")
	ErrUnknownFormat = errors.New("renderer: unsupported output format")
)
