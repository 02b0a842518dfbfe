package scenefile

// Document is a scene description. The document itself is the root
// composition.
type Document struct {
	Name      string  `yaml:"name,omitempty" toml:"name,omitempty"`
	Width     float64 `yaml:"width" toml:"width"`
	Height    float64 `yaml:"height" toml:"height"`
	FrameRate float64 `yaml:"frameRate,omitempty" toml:"frameRate,omitempty"`
	// Duration in microseconds. Zero lets the root follow its layers.
	Duration int64 `yaml:"duration,omitempty" toml:"duration,omitempty"`
	// Layouter is the default text layouter: cluster or shaped.
	Layouter string  `yaml:"layouter,omitempty" toml:"layouter,omitempty"`
	Layers   []Layer `yaml:"layers,omitempty" toml:"layers,omitempty"`
}

// Layer describes one layer. Kind selects which of the content fields
// apply.
type Layer struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	Kind string `yaml:"kind" toml:"kind"`

	// Color is the solid color, or the fill color of a text layer.
	Color []uint8 `yaml:"color,omitempty,flow" toml:"color,omitempty"`
	// Width and Height size solids and nested compositions. Zero takes the
	// enclosing composition's size.
	Width  float64 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty" toml:"height,omitempty"`

	Text          string  `yaml:"text,omitempty" toml:"text,omitempty"`
	FontSize      float64 `yaml:"fontSize,omitempty" toml:"fontSize,omitempty"`
	FontFamily    string  `yaml:"fontFamily,omitempty" toml:"fontFamily,omitempty"`
	FontStyle     string  `yaml:"fontStyle,omitempty" toml:"fontStyle,omitempty"`
	Justification string  `yaml:"justification,omitempty" toml:"justification,omitempty"`
	Tracking      float64 `yaml:"tracking,omitempty" toml:"tracking,omitempty"`
	// Layouter overrides the document layouter for this layer.
	Layouter string `yaml:"layouter,omitempty" toml:"layouter,omitempty"`
	// Font is a TrueType or OpenType file to shape with. It implies the
	// shaped layouter.
	Font string `yaml:"font,omitempty" toml:"font,omitempty"`

	StartTime int64 `yaml:"startTime,omitempty" toml:"startTime,omitempty"`
	// Duration in microseconds. Zero takes the enclosing composition's
	// duration; a nested composition with no duration follows its layers.
	Duration int64 `yaml:"duration,omitempty" toml:"duration,omitempty"`
	// FrameRate applies to compositions only.
	FrameRate float64 `yaml:"frameRate,omitempty" toml:"frameRate,omitempty"`
	Hidden    bool    `yaml:"hidden,omitempty" toml:"hidden,omitempty"`

	Transform  *Transform  `yaml:"transform,omitempty" toml:"transform,omitempty"`
	Motion     *Motion     `yaml:"motion,omitempty" toml:"motion,omitempty"`
	TrackMatte *TrackMatte `yaml:"trackMatte,omitempty" toml:"trackMatte,omitempty"`

	Layers []Layer `yaml:"layers,omitempty" toml:"layers,omitempty"`
}

// Transform holds the animatable transform properties of a layer. Nil
// properties keep the layer's defaults.
type Transform struct {
	AnchorPoint *PointProperty  `yaml:"anchorPoint,omitempty" toml:"anchorPoint,omitempty"`
	Position    *PointProperty  `yaml:"position,omitempty" toml:"position,omitempty"`
	Scale       *PointProperty  `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Rotation    *ScalarProperty `yaml:"rotation,omitempty" toml:"rotation,omitempty"`
	// Opacity values are 0..255.
	Opacity *ScalarProperty `yaml:"opacity,omitempty" toml:"opacity,omitempty"`
}

// Point is a 2D point.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// PointProperty is a static point, or keyframes when Keyframes is not
// empty.
type PointProperty struct {
	X         float64           `yaml:"x,omitempty" toml:"x,omitempty"`
	Y         float64           `yaml:"y,omitempty" toml:"y,omitempty"`
	Keyframes []Keyframe[Point] `yaml:"keyframes,omitempty" toml:"keyframes,omitempty"`
}

// ScalarProperty is a static value, or keyframes when Keyframes is not
// empty.
type ScalarProperty struct {
	Value     float64             `yaml:"value,omitempty" toml:"value,omitempty"`
	Keyframes []Keyframe[float64] `yaml:"keyframes,omitempty" toml:"keyframes,omitempty"`
}

// Keyframe is one interpolation segment. Frames are layer frames.
type Keyframe[T any] struct {
	StartFrame int64 `yaml:"startFrame" toml:"startFrame"`
	EndFrame   int64 `yaml:"endFrame" toml:"endFrame"`
	Start      T     `yaml:"start" toml:"start"`
	End        T     `yaml:"end" toml:"end"`
	// Interpolation is hold, linear or bezier. Empty means linear.
	Interpolation string  `yaml:"interpolation,omitempty" toml:"interpolation,omitempty"`
	BezierOut     []Point `yaml:"bezierOut,omitempty,flow" toml:"bezierOut,omitempty"`
	BezierIn      []Point `yaml:"bezierIn,omitempty,flow" toml:"bezierIn,omitempty"`
	// SpatialOut and SpatialIn are motion path tangents for point
	// keyframes.
	SpatialOut *Point `yaml:"spatialOut,omitempty,flow" toml:"spatialOut,omitempty"`
	SpatialIn  *Point `yaml:"spatialIn,omitempty,flow" toml:"spatialIn,omitempty"`
}

// Motion selects a text motion preset by option names. Empty names keep
// the preset defaults.
type Motion struct {
	Type         string  `yaml:"type,omitempty" toml:"type,omitempty"`
	Direction    string  `yaml:"direction,omitempty" toml:"direction,omitempty"`
	Duration     float64 `yaml:"duration,omitempty" toml:"duration,omitempty"`
	Distance     float64 `yaml:"distance,omitempty" toml:"distance,omitempty"`
	Easing       string  `yaml:"easing,omitempty" toml:"easing,omitempty"`
	Effect       string  `yaml:"effect,omitempty" toml:"effect,omitempty"`
	EffectDelay  float64 `yaml:"effectDelay,omitempty" toml:"effectDelay,omitempty"`
	EffectSmooth string  `yaml:"effectSmooth,omitempty" toml:"effectSmooth,omitempty"`
}

// TrackMatte names a sibling layer used as this layer's matte. The named
// layer is taken out of the paint list.
type TrackMatte struct {
	Layer string `yaml:"layer" toml:"layer"`
	// Mode is alpha, alpha-inverted, luma or luma-inverted. Empty means
	// alpha.
	Mode string `yaml:"mode,omitempty" toml:"mode,omitempty"`
}
