package zlayer

import (
	"fmt"
	"image/color"

	"github.com/gogpu/zlayer/surface"
)

// SubOrder ranks the sub-layers sharing one z-level. Incremental elements
// get a dedicated sub-layer above the base layer so their partially drawn
// state never mixes with ordinary elements; non-incremental elements that
// follow an incremental run within the same frame get a trailing sub-layer
// above that.
type SubOrder uint8

// Sub-layer ranks, in ascending paint order within a z-level.
const (
	SubBase SubOrder = iota
	SubIncremental
	SubTrail
)

// String returns a human-readable name for the sub-order.
func (s SubOrder) String() string {
	switch s {
	case SubBase:
		return "base"
	case SubIncremental:
		return "incremental"
	case SubTrail:
		return "trail"
	default:
		return "unknown"
	}
}

// LayerKey is the composite ordering key identifying a layer. Keys order
// by Level first, then Sub, so the incremental and trailing sub-layers of a
// z-level always paint directly above its base layer and below the next
// z-level.
//
// Using an explicit (Level, Sub) pair instead of fractionally offset float
// keys avoids precision collisions at fine z-level granularities.
type LayerKey struct {
	Level int
	Sub   SubOrder
}

// Key returns the base layer key for a z-level.
func Key(level int) LayerKey {
	return LayerKey{Level: level}
}

// Less reports whether k orders before other.
func (k LayerKey) Less(other LayerKey) bool {
	if k.Level != other.Level {
		return k.Level < other.Level
	}
	return k.Sub < other.Sub
}

// String formats the key for logs.
func (k LayerKey) String() string {
	if k.Sub == SubBase {
		return fmt.Sprintf("z%d", k.Level)
	}
	return fmt.Sprintf("z%d/%s", k.Level, k.Sub)
}

// BlendMode selects how a layer composites onto the output during manual
// compositing. Modes other than BlendOver require an image-backed output.
type BlendMode uint8

// Blend modes supported by the compositor.
const (
	BlendOver BlendMode = iota
	BlendAdd
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
)

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendOver:
		return "over"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	case BlendLighten:
		return "lighten"
	default:
		return "unknown"
	}
}

// LayerConfig carries per-layer render hints. Zero-value fields mean "keep
// the current setting"; ConfigureLayer merges configs shallowly.
type LayerConfig struct {
	// ClearColor fills the layer when it is cleared. Nil clears to
	// transparent (the lowest layer uses the painter background instead).
	ClearColor color.Color

	// Opacity scales the layer during compositing; 0 means opaque.
	Opacity float64

	// Blend selects the compositing mode for this layer.
	Blend BlendMode
}

// merge returns cfg with the non-zero fields of other applied on top.
func (cfg LayerConfig) merge(other LayerConfig) LayerConfig {
	if other.ClearColor != nil {
		cfg.ClearColor = other.ClearColor
	}
	if other.Opacity != 0 {
		cfg.Opacity = other.Opacity
	}
	if other.Blend != BlendOver {
		cfg.Blend = other.Blend
	}
	return cfg
}

// ExternalLayer is the capability an externally supplied layer must provide.
// External layers are tracked for ordering and propagated resize/refresh
// calls, but the engine never paints onto them.
type ExternalLayer interface {
	// Resize propagates new view dimensions to the layer.
	Resize(width, height int)

	// Refresh asks the layer to repaint itself.
	Refresh()
}

// drawIndexUnknown marks an incremental layer whose resume point has not
// been located yet; classification replaces it with the first dirty element
// index, or the range start.
const drawIndexUnknown = -1

// layerState is the per-layer classification and paint bookkeeping.
// Invariant after classification: start <= draw <= end, and [start, end)
// is the contiguous element sub-range this layer is responsible for.
type layerState struct {
	start int
	end   int
	draw  int // first index not yet painted; drawIndexUnknown is a sentinel
	dirty bool
	used  bool
}

// Layer is one addressable drawing surface plus its bookkeeping state.
type Layer struct {
	key   LayerKey
	state layerState

	// surf is the drawing surface for engine-built layers. Nil for
	// virtual layers and external layers.
	surf surface.Surface

	// ext is non-nil for externally supplied layers.
	ext ExternalLayer

	incremental bool
	builtin     bool
	virtual     bool

	cfg LayerConfig
}

// Key returns the layer's composite ordering key.
func (l *Layer) Key() LayerKey { return l.key }

// Surface returns the layer's drawing surface, or nil for virtual and
// external layers.
func (l *Layer) Surface() surface.Surface { return l.surf }

// Builtin reports whether the layer is managed by the engine.
func (l *Layer) Builtin() bool { return l.builtin }

// Virtual reports whether the layer is tracked for ordering only, with no
// physically visible surface.
func (l *Layer) Virtual() bool { return l.virtual }

// Incremental reports whether the layer's paints are time-sliced.
func (l *Layer) Incremental() bool { return l.incremental }

// Dirty reports whether the layer needs repainting.
func (l *Layer) Dirty() bool { return l.state.dirty }

// MarkDirty forces the layer to repaint on the next pass.
func (l *Layer) MarkDirty() { l.state.dirty = true }

// Range returns the half-open element index range assigned to the layer by
// the last classification pass.
func (l *Layer) Range() (start, end int) {
	return l.state.start, l.state.end
}

// Config returns the layer's current render hints.
func (l *Layer) Config() LayerConfig { return l.cfg }

// elementCount is the number of elements the layer held after its last
// classification.
func (l *Layer) elementCount() int {
	return l.state.end - l.state.start
}
