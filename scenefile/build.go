package scenefile

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/layer"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/text"
	"github.com/gogpu/motion/textmotion"
	"github.com/gogpu/motion/timeline"
	"github.com/gogpu/motion/transform"
)

// node is the method set shared by every layer kind.
type node interface {
	layer.Node
	SetName(name string)
	SetStartTime(timeUS int64)
	SetVisible(v bool)
	Transform2D() *transform.Transform2D
	SetTransform2D(t *transform.Transform2D) bool
	SetTrackMatte(matte layer.Node, mode layer.TrackMatteType) bool
}

// scope carries the defaults a composition hands to its layers.
type scope struct {
	width, height float64
	durationUS    int64
}

// builder carries the state of one Build call.
type builder struct {
	cfg buildConfig
	// shaper is the layouter name used by text layers that name none.
	shaper  string
	shapers map[string]text.Layouter
}

// Build creates the layer tree described by doc and returns its root.
// Track mattes are resolved by name among siblings; a layer used as a
// matte leaves the paint list.
func Build(doc *Document, opts ...BuildOption) (*layer.Composition, error) {
	if doc == nil {
		return nil, ErrEmptyDocument
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, ErrInvalidSize
	}
	b := &builder{shapers: make(map[string]text.Layouter)}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	b.shaper = cmp.Or(doc.Layouter, b.cfg.shaper, LayouterCluster)
	if !validLayouter(b.shaper) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayouter, b.shaper)
	}
	rate := doc.FrameRate
	if rate <= 0 {
		rate = timeline.DefaultFrameRate
	}
	var root *layer.Composition
	if doc.Duration > 0 {
		root = layer.NewComposition(doc.Width, doc.Height, doc.Duration, rate)
	} else {
		root = layer.NewEmptyComposition(doc.Width, doc.Height)
	}
	root.SetName(doc.Name)

	s := scope{width: doc.Width, height: doc.Height, durationUS: doc.Duration}
	if err := b.addLayers(root, doc.Layers, s, doc.Name); err != nil {
		root.Release()
		return nil, err
	}
	motion.Logger().Debug("scene built", "name", doc.Name, "layers", root.NumChildren(),
		"duration", root.Duration(), "frameRate", root.FrameRate())
	return root, nil
}

func layerPath(parent string, index int, name string) string {
	if name == "" {
		name = "#" + strconv.Itoa(index)
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func (b *builder) addLayers(comp *layer.Composition, defs []Layer, s scope, path string) error {
	nodes := make([]node, len(defs))
	byName := make(map[string]int, len(defs))
	for i := range defs {
		def := &defs[i]
		p := layerPath(path, i, def.Name)
		n, err := b.buildLayer(def, s, p)
		if err != nil {
			return err
		}
		comp.AddLayer(n)
		nodes[i] = n
		if _, dup := byName[def.Name]; def.Name != "" && !dup {
			byName[def.Name] = i
		}
	}

	used := make(map[int]bool)
	for i := range defs {
		tm := defs[i].TrackMatte
		if tm == nil {
			continue
		}
		p := layerPath(path, i, defs[i].Name)
		j, ok := byName[tm.Layer]
		if !ok {
			return &LayerError{Path: p, Err: fmt.Errorf("%w: %q", ErrMatteNotFound, tm.Layer)}
		}
		if used[j] {
			return &LayerError{Path: p, Err: fmt.Errorf("%w: %q", ErrMatteInUse, tm.Layer)}
		}
		mode := recording.MatteAlpha
		if tm.Mode != "" {
			if mode, ok = recording.ParseMatteMode(tm.Mode); !ok {
				return &LayerError{Path: p, Err: fmt.Errorf("%w: unknown mode %q", ErrMatteRejected, tm.Mode)}
			}
		}
		if !nodes[i].SetTrackMatte(nodes[j], mode) {
			return &LayerError{Path: p, Err: fmt.Errorf("%w: %q", ErrMatteRejected, tm.Layer)}
		}
		used[j] = true
	}
	return nil
}

func (b *builder) buildLayer(def *Layer, s scope, path string) (node, error) {
	kind, ok := layer.ParseKind(def.Kind)
	if !ok {
		return nil, &LayerError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnknownKind, def.Kind)}
	}
	width, height := def.Width, def.Height
	if width <= 0 {
		width = s.width
	}
	if height <= 0 {
		height = s.height
	}
	duration := def.Duration
	if duration <= 0 {
		duration = s.durationUS
	}
	if kind != layer.KindComposition {
		if duration <= 0 {
			return nil, &LayerError{Path: path, Err: ErrNoDuration}
		}
		if def.FrameRate != 0 {
			motion.Logger().Warn("frame rate ignored on non-composition layer", "layer", path, "frameRate", def.FrameRate)
		}
	}

	var (
		n   node
		err error
	)
	switch kind {
	case layer.KindComposition:
		n, err = b.buildComposition(def, width, height, duration, path)
	case layer.KindSolid:
		n, err = buildSolid(def, width, height, duration)
	case layer.KindText:
		n, err = b.buildText(def, duration)
	default:
		n = layer.NewLayer(kind, duration)
	}
	if err != nil {
		var le *LayerError
		if errors.As(err, &le) {
			return nil, err
		}
		return nil, &LayerError{Path: path, Err: err}
	}

	n.SetName(def.Name)
	n.SetStartTime(def.StartTime)
	n.SetVisible(!def.Hidden)
	if def.Transform != nil {
		t, err := buildTransform(n.Transform2D(), def.Transform)
		if err != nil {
			return nil, &LayerError{Path: path, Err: err}
		}
		n.SetTransform2D(t)
	}
	if def.Motion != nil {
		tl, ok := n.(*layer.TextLayer)
		if !ok {
			return nil, &LayerError{Path: path, Err: fmt.Errorf("%w: %s layer has no text", ErrInvalidMotion, kind)}
		}
		opts, err := motionOptions(def.Motion)
		if err != nil {
			return nil, &LayerError{Path: path, Err: err}
		}
		if !textmotion.SetOptions(tl, &opts) {
			motion.Logger().Debug("text motion created no animators", "layer", path)
		}
	}
	return n, nil
}

func (b *builder) buildComposition(def *Layer, width, height float64, inherited int64, path string) (node, error) {
	var c *layer.Composition
	if def.Duration > 0 {
		rate := def.FrameRate
		if rate <= 0 {
			rate = timeline.DefaultFrameRate
		}
		c = layer.NewComposition(width, height, def.Duration, rate)
	} else {
		if def.FrameRate != 0 {
			motion.Logger().Warn("frame rate ignored on composition without duration", "layer", path, "frameRate", def.FrameRate)
		}
		c = layer.NewEmptyComposition(width, height)
	}
	s := scope{width: width, height: height, durationUS: inherited}
	if err := b.addLayers(c, def.Layers, s, path); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

func buildSolid(def *Layer, width, height float64, duration int64) (node, error) {
	c, err := parseColor(def.Color, motion.White)
	if err != nil {
		return nil, err
	}
	return layer.NewSolidLayer(duration, width, height, c, motion.Opaque), nil
}

func (b *builder) buildText(def *Layer, duration int64) (node, error) {
	doc := layer.DefaultTextDocument()
	if def.FontSize > 0 {
		doc.FontSize = def.FontSize
	}
	t := layer.NewTextLayer(duration, def.Text, doc.FontSize, def.FontFamily, def.FontStyle)

	doc = t.TextDocument()
	fill, err := parseColor(def.Color, doc.FillColor)
	if err != nil {
		return nil, err
	}
	doc.FillColor = fill
	l, err := b.layouter(def)
	if err != nil {
		return nil, err
	}
	if l != nil {
		t.SetLayouter(l)
	}
	doc.Tracking = def.Tracking
	if def.Justification != "" {
		j, ok := layer.ParseJustification(def.Justification)
		if !ok {
			return nil, fmt.Errorf("scenefile: unknown justification %q", def.Justification)
		}
		doc.Justification = j
	}
	t.SetTextDocument(&doc)
	return t, nil
}

func parseColor(c []uint8, def motion.Color) (motion.Color, error) {
	switch len(c) {
	case 0:
		return def, nil
	case 3:
		return motion.RGB(c[0], c[1], c[2]), nil
	}
	return def, fmt.Errorf("%w: got %d", ErrInvalidColor, len(c))
}

func motionOptions(m *Motion) (textmotion.Options, error) {
	opts := textmotion.DefaultOptions()
	var ok bool
	if m.Type != "" {
		if opts.Type, ok = textmotion.ParseType(m.Type); !ok {
			return opts, fmt.Errorf("%w: type %q", ErrInvalidMotion, m.Type)
		}
	}
	if m.Direction != "" {
		if opts.Direction, ok = textmotion.ParseDirection(m.Direction); !ok {
			return opts, fmt.Errorf("%w: direction %q", ErrInvalidMotion, m.Direction)
		}
	}
	if m.Easing != "" {
		if opts.Easing, ok = textmotion.ParseEasing(m.Easing); !ok {
			return opts, fmt.Errorf("%w: easing %q", ErrInvalidMotion, m.Easing)
		}
	}
	if m.Effect != "" {
		if opts.Effect, ok = textmotion.ParseEffect(m.Effect); !ok {
			return opts, fmt.Errorf("%w: effect %q", ErrInvalidMotion, m.Effect)
		}
	}
	if m.EffectSmooth != "" {
		if opts.EffectSmooth, ok = textmotion.ParseEffectSmooth(m.EffectSmooth); !ok {
			return opts, fmt.Errorf("%w: effectSmooth %q", ErrInvalidMotion, m.EffectSmooth)
		}
	}
	if m.Duration > 0 {
		opts.Duration = m.Duration
	}
	if m.Distance != 0 {
		opts.Distance = m.Distance
	}
	opts.EffectDelay = m.EffectDelay
	return opts, nil
}
