package recording

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/motion"
)

// Recorder is the drawing sink of a render pass. Matrix and alpha calls
// accumulate until the matching Restore.
type Recorder interface {
	Save()
	Restore()
	// Concat pre-multiplies m onto the current matrix, so m applies to
	// subsequent drawing before the existing matrix.
	Concat(m motion.Matrix)
	// SetAlpha multiplies the current alpha by a.
	SetAlpha(a float64)
	// BeginMatte starts drawing the matte source; EndMatte switches to the
	// content masked by it.
	BeginMatte(mode MatteMode)
	EndMatte(mode MatteMode)

	FillRect(r motion.Rect, c motion.Color)
	DrawContent(label string, bounds motion.Rect)
	DrawGlyphs(glyphs []Glyph, fontSize float64, fill motion.Color)
}

type recorderState struct {
	matrix motion.Matrix
	alpha  float64
}

// CommandRecorder records calls as commands.
//
// The CommandRecorder is not safe for concurrent use.
type CommandRecorder struct {
	commands   []Command
	matrix     motion.Matrix
	alpha      float64
	stateStack []recorderState
	matteDepth int
}

// NewCommandRecorder creates an empty recorder with identity matrix and
// alpha 1.
func NewCommandRecorder() *CommandRecorder {
	return &CommandRecorder{
		commands:   make([]Command, 0, 64),
		matrix:     motion.Identity(),
		alpha:      1,
		stateStack: make([]recorderState, 0, 8),
	}
}

// Save pushes the current state.
func (r *CommandRecorder) Save() {
	r.stateStack = append(r.stateStack, recorderState{matrix: r.matrix, alpha: r.alpha})
	r.commands = append(r.commands, SaveCommand{})
}

// Restore pops the previously saved state.
// If the state stack is empty, this is a no-op.
func (r *CommandRecorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	state := r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.matrix = state.matrix
	r.alpha = state.alpha
	r.commands = append(r.commands, RestoreCommand{})
}

// Concat multiplies the current matrix by m.
func (r *CommandRecorder) Concat(m motion.Matrix) {
	r.matrix = r.matrix.Multiply(m)
	r.commands = append(r.commands, ConcatCommand{Matrix: m, Total: r.matrix})
}

// SetAlpha multiplies the current alpha by a.
func (r *CommandRecorder) SetAlpha(a float64) {
	r.alpha *= a
	r.commands = append(r.commands, SetAlphaCommand{Alpha: a, Total: r.alpha})
}

// BeginMatte opens a matte group; EndMatte closes it.
func (r *CommandRecorder) BeginMatte(mode MatteMode) {
	r.matteDepth++
	r.commands = append(r.commands, BeginMatteCommand{Mode: mode})
}

// EndMatte is ignored without a matching BeginMatte.
func (r *CommandRecorder) EndMatte(mode MatteMode) {
	if r.matteDepth == 0 {
		return
	}
	r.matteDepth--
	r.commands = append(r.commands, EndMatteCommand{Mode: mode})
}

// FillRect records a filled rectangle under the current matrix and alpha.
func (r *CommandRecorder) FillRect(rect motion.Rect, c motion.Color) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c, Matrix: r.matrix, Alpha: r.alpha})
}

// DrawContent records a placeholder for opaque layer content.
func (r *CommandRecorder) DrawContent(label string, bounds motion.Rect) {
	r.commands = append(r.commands, DrawContentCommand{Label: label, Bounds: bounds, Matrix: r.matrix, Alpha: r.alpha})
}

// DrawGlyphs records a copy of glyphs.
func (r *CommandRecorder) DrawGlyphs(glyphs []Glyph, fontSize float64, fill motion.Color) {
	r.commands = append(r.commands, DrawGlyphsCommand{
		Glyphs:   slices.Clone(glyphs),
		FontSize: fontSize,
		Fill:     fill,
		Matrix:   r.matrix,
		Alpha:    r.alpha,
	})
}

// Matrix returns the current matrix.
func (r *CommandRecorder) Matrix() motion.Matrix { return r.matrix }

// Alpha returns the current alpha.
func (r *CommandRecorder) Alpha() float64 { return r.alpha }

// Depth returns the number of unrestored saves.
func (r *CommandRecorder) Depth() int { return len(r.stateStack) }

// Commands returns the commands recorded so far.
func (r *CommandRecorder) Commands() []Command { return r.commands }

// Reset discards all commands and state so the recorder can be reused.
func (r *CommandRecorder) Reset() {
	r.commands = r.commands[:0]
	r.stateStack = r.stateStack[:0]
	r.matrix = motion.Identity()
	r.alpha = 1
	r.matteDepth = 0
}

// Finish returns an immutable Recording of the commands. The recorder
// starts over afterwards.
func (r *CommandRecorder) Finish() *Recording {
	rec := &Recording{commands: slices.Clone(r.commands)}
	r.Reset()
	return rec
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	commands []Command
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Draws returns the drawing commands in paint order.
func (r *Recording) Draws() []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Type().IsDraw() {
			out = append(out, c)
		}
	}
	return out
}

// Summary returns a one-line description: total commands followed by the
// non-zero per-type counts in CommandType order.
func (r *Recording) Summary() string {
	var counts [len(commandTypeNames)]int
	for _, c := range r.commands {
		if t := c.Type(); int(t) < len(counts) {
			counts[t]++
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "commands=%d", len(r.commands))
	for t, n := range counts {
		if n > 0 {
			fmt.Fprintf(&b, " %s=%d", CommandType(t), n)
		}
	}
	return b.String()
}

// Playback replays the recording into dst.
func (r *Recording) Playback(dst Recorder) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			dst.Save()
		case RestoreCommand:
			dst.Restore()
		case ConcatCommand:
			dst.Concat(c.Matrix)
		case SetAlphaCommand:
			dst.SetAlpha(c.Alpha)
		case BeginMatteCommand:
			dst.BeginMatte(c.Mode)
		case EndMatteCommand:
			dst.EndMatte(c.Mode)
		case FillRectCommand:
			dst.FillRect(c.Rect, c.Color)
		case DrawContentCommand:
			dst.DrawContent(c.Label, c.Bounds)
		case DrawGlyphsCommand:
			dst.DrawGlyphs(c.Glyphs, c.FontSize, c.Fill)
		}
	}
}

// Discard is a Recorder that ignores every call.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Save()                                     {}
func (discard) Restore()                                  {}
func (discard) Concat(motion.Matrix)                      {}
func (discard) SetAlpha(float64)                          {}
func (discard) BeginMatte(MatteMode)                      {}
func (discard) EndMatte(MatteMode)                        {}
func (discard) FillRect(motion.Rect, motion.Color)        {}
func (discard) DrawContent(string, motion.Rect)           {}
func (discard) DrawGlyphs([]Glyph, float64, motion.Color) {}
