package recording

import (
	"github.com/gogpu/motion"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave     CommandType = iota // Save current state
	CmdRestore                     // Restore previous state
	CmdConcat                      // Concatenate a matrix
	CmdSetAlpha                    // Multiply the current alpha

	// Matte commands
	CmdBeginMatte // Start drawing a track matte source
	CmdEndMatte   // Finish the matte and start the masked content

	// Drawing commands
	CmdFillRect    // Fill a rectangle with a solid color
	CmdDrawContent // Draw opaque layer content
	CmdDrawGlyphs  // Draw positioned glyphs
)

var commandTypeNames = [...]string{
	CmdSave:        "Save",
	CmdRestore:     "Restore",
	CmdConcat:      "Concat",
	CmdSetAlpha:    "SetAlpha",
	CmdBeginMatte:  "BeginMatte",
	CmdEndMatte:    "EndMatte",
	CmdFillRect:    "FillRect",
	CmdDrawContent: "DrawContent",
	CmdDrawGlyphs:  "DrawGlyphs",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDraw reports whether the command paints content.
func (c CommandType) IsDraw() bool {
	return c >= CmdFillRect && c <= CmdDrawGlyphs
}

// MatteMode selects how a track matte masks the layer that owns it.
type MatteMode uint8

const (
	MatteNone MatteMode = iota
	MatteAlpha
	MatteAlphaInverted
	MatteLuma
	MatteLumaInverted
)

var matteModeNames = [...]string{
	MatteNone:          "none",
	MatteAlpha:         "alpha",
	MatteAlphaInverted: "alpha-inverted",
	MatteLuma:          "luma",
	MatteLumaInverted:  "luma-inverted",
}

func (m MatteMode) String() string {
	if int(m) < len(matteModeNames) {
		return matteModeNames[m]
	}
	return "unknown"
}

// ParseMatteMode returns the mode with the given name.
func ParseMatteMode(s string) (MatteMode, bool) {
	for i, name := range matteModeNames {
		if name == s {
			return MatteMode(i), true
		}
	}
	return MatteNone, false
}

// Glyph is one glyph instance ready to draw. Position is the glyph origin
// in the layer's space after animator and provider offsets.
type Glyph struct {
	Name     string
	ID       uint16
	Position motion.Point
	Scale    motion.Point
	Rotation float64 // degrees
	Alpha    float64
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
}

// SaveCommand pushes the current matrix and alpha.
type SaveCommand struct{}

func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the state pushed by the matching SaveCommand.
type RestoreCommand struct{}

func (RestoreCommand) Type() CommandType { return CmdRestore }

// ConcatCommand pre-multiplies Matrix onto the current matrix. Total is the
// resulting matrix.
type ConcatCommand struct {
	Matrix motion.Matrix
	Total  motion.Matrix
}

func (ConcatCommand) Type() CommandType { return CmdConcat }

// SetAlphaCommand multiplies the current alpha by Alpha. Total is the
// resulting alpha.
type SetAlphaCommand struct {
	Alpha float64
	Total float64
}

func (SetAlphaCommand) Type() CommandType { return CmdSetAlpha }

// BeginMatteCommand starts the matte source of a masked layer.
type BeginMatteCommand struct {
	Mode MatteMode
}

func (BeginMatteCommand) Type() CommandType { return CmdBeginMatte }

// EndMatteCommand ends the matte source; the masked content follows.
type EndMatteCommand struct {
	Mode MatteMode
}

func (EndMatteCommand) Type() CommandType { return CmdEndMatte }

// FillRectCommand fills Rect with Color at the current state.
type FillRectCommand struct {
	Rect   motion.Rect
	Color  motion.Color
	Matrix motion.Matrix
	Alpha  float64
}

func (FillRectCommand) Type() CommandType { return CmdFillRect }

// DrawContentCommand draws opaque content identified by Label.
type DrawContentCommand struct {
	Label  string
	Bounds motion.Rect
	Matrix motion.Matrix
	Alpha  float64
}

func (DrawContentCommand) Type() CommandType { return CmdDrawContent }

// DrawGlyphsCommand draws a glyph run.
type DrawGlyphsCommand struct {
	Glyphs   []Glyph
	FontSize float64
	Fill     motion.Color
	Matrix   motion.Matrix
	Alpha    float64
}

func (DrawGlyphsCommand) Type() CommandType { return CmdDrawGlyphs }
