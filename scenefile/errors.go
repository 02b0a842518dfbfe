package scenefile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for a file extension or format name
	// that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("scenefile: unknown format")

	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("scenefile: empty document")

	// ErrInvalidSize is returned for a non-positive root width or height.
	ErrInvalidSize = errors.New("scenefile: width and height must be positive")

	// ErrUnknownKind is returned for a layer kind that has no constructor.
	ErrUnknownKind = errors.New("scenefile: unknown layer kind")

	// ErrNoDuration is returned when neither the layer nor its composition
	// gives a positive duration.
	ErrNoDuration = errors.New("scenefile: no duration")

	// ErrInvalidColor is returned for a color that is not three components.
	ErrInvalidColor = errors.New("scenefile: color must have three components")

	// ErrUnknownInterpolation is returned for an unknown keyframe
	// interpolation name.
	ErrUnknownInterpolation = errors.New("scenefile: unknown interpolation")

	// ErrUnknownLayouter is returned for a layouter name other than
	// cluster or shaped.
	ErrUnknownLayouter = errors.New("scenefile: unknown layouter")

	// ErrInvalidMotion is returned for a motion block with an unknown
	// option name.
	ErrInvalidMotion = errors.New("scenefile: invalid motion options")

	// ErrMatteNotFound is returned when a track matte names no sibling.
	ErrMatteNotFound = errors.New("scenefile: track matte layer not found")

	// ErrMatteInUse is returned when two layers name the same matte.
	ErrMatteInUse = errors.New("scenefile: track matte already in use")

	// ErrMatteRejected is returned when the tree refuses a track matte.
	ErrMatteRejected = errors.New("scenefile: track matte rejected")
)

// LayerError reports a problem with one layer of a document. Path names
// the layer by its ancestors' names joined with "/"; unnamed layers appear
// by index.
type LayerError struct {
	Path string
	Err  error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("scenefile: layer %s: %v", e.Path, e.Err)
}

func (e *LayerError) Unwrap() error {
	return e.Err
}
