package text

import "errors"

var (
	// ErrEmptyFontData is returned when a layouter is given no font bytes.
	ErrEmptyFontData = errors.New("text: empty font data")
)
