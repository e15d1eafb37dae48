package zlayer

import (
	"image/color"
	"time"

	"github.com/gogpu/zlayer/surface"
)

// Reserved z-levels, well above the application range.
const (
	// primaryZLevel keys the shared layer used when the host shows a
	// single surface and no manual compositing is needed.
	primaryZLevel = 1 << 24

	// hoverZLevel keys the hover overlay layer; it stays on top of every
	// application z-level.
	hoverZLevel = 1 << 25
)

// DefaultFrameBudget bounds how long one incremental paint pass may run
// before the remainder is rescheduled onto the next frame.
const DefaultFrameBudget = 15 * time.Millisecond

// SurfaceProvider creates drawing surfaces for engine-built layers and
// reports the host's layering capability.
type SurfaceProvider interface {
	// NewSurface creates a surface with the given dimensions.
	NewSurface(width, height int) (surface.Surface, error)

	// Layered reports whether the host can display multiple surfaces as
	// stacked native elements. When false, the engine composites every
	// layer onto one physical output surface itself.
	Layered() bool
}

// BackendProvider sources surfaces from the surface backend registry.
type BackendProvider struct {
	// Backend names a registered surface backend; empty selects the best
	// available one.
	Backend string
}

// NewSurface creates a surface through the backend registry.
func (p BackendProvider) NewSurface(width, height int) (surface.Surface, error) {
	if p.Backend == "" {
		return surface.NewSurface(width, height)
	}
	return surface.NewSurfaceByName(p.Backend, width, height)
}

// Layered reports the registered backend's layering capability.
func (p BackendProvider) Layered() bool {
	if p.Backend == "" {
		return false
	}
	entry, ok := surface.Get(p.Backend)
	return ok && entry.Layered
}

// Painter renders a depth-ordered element list onto z-leveled layers,
// repainting only what changed frame over frame and time-slicing large
// incremental repaints so no single frame exceeds the frame budget.
//
// A Painter is single-threaded: all methods, and all FrameScheduler
// callbacks, must run on one goroutine. Concurrent refreshes are serialized
// by a generation token rather than locks — a refresh issued while a
// time-sliced pass is still pending silently cancels the pending pass.
//
// Example:
//
//	painter := zlayer.New(800, 600, store,
//	    zlayer.WithBrush(myBrush),
//	    zlayer.WithBackground(color.White),
//	)
//	painter.Refresh(false)
type Painter struct {
	width  int
	height int

	provider ElementProvider
	surfaces SurfaceProvider
	brush    Brush
	frames   FrameScheduler

	// output is the physical output surface used for manual compositing.
	// Nil when the host stacks layer surfaces natively.
	output     surface.Surface
	background color.Color

	registry *layerRegistry
	pending  map[int]LayerConfig // configs for z-levels with no layer yet

	hover hoverOverlay

	// singleSurface is true when the host can display one surface only.
	// compositeManually trips once that host needs more than one virtual
	// layer; it never reverts for the life of the painter.
	singleSurface     bool
	compositeManually bool

	generation uint64
	budget     time.Duration
	now        func() time.Time
}

// Option configures a Painter during creation.
type Option func(*Painter)

// WithBrush sets the rasterization primitive used to paint elements.
// The default FillBrush only fills element bounds; real applications
// supply their own.
func WithBrush(b Brush) Option {
	return func(p *Painter) {
		if b != nil {
			p.brush = b
		}
	}
}

// WithFrameScheduler sets the host frame-callback mechanism used to requeue
// unfinished incremental passes. The default ImmediateScheduler drains
// passes synchronously.
func WithFrameScheduler(s FrameScheduler) Option {
	return func(p *Painter) {
		if s != nil {
			p.frames = s
		}
	}
}

// WithSurfaceProvider sets where layer surfaces come from.
func WithSurfaceProvider(sp SurfaceProvider) Option {
	return func(p *Painter) {
		if sp != nil {
			p.surfaces = sp
		}
	}
}

// WithOutput supplies the physical output surface used when compositing
// manually. Without it, one is created from the surface provider for
// single-surface hosts.
func WithOutput(s surface.Surface) Option {
	return func(p *Painter) { p.output = s }
}

// WithBackground sets the background fill applied when clearing the lowest
// layer and the composite output.
func WithBackground(c color.Color) Option {
	return func(p *Painter) { p.background = c }
}

// WithFrameBudget overrides the per-frame time budget for incremental
// layers.
func WithFrameBudget(d time.Duration) Option {
	return func(p *Painter) {
		if d > 0 {
			p.budget = d
		}
	}
}

// New creates a Painter with the given view dimensions and element list
// provider.
func New(width, height int, elements ElementProvider, opts ...Option) *Painter {
	p := &Painter{
		width:    width,
		height:   height,
		provider: elements,
		surfaces: BackendProvider{},
		brush:    &FillBrush{},
		frames:   ImmediateScheduler{},
		registry: newLayerRegistry(),
		pending:  make(map[int]LayerConfig),
		budget:   DefaultFrameBudget,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.singleSurface = !p.surfaces.Layered()
	if p.singleSurface && p.output == nil {
		out, err := p.surfaces.NewSurface(width, height)
		if err != nil {
			Logger().Warn("output surface creation failed; compositing disabled", "err", err)
		} else {
			p.output = out
		}
	}
	return p
}

// Size returns the current view dimensions.
func (p *Painter) Size() (width, height int) {
	return p.width, p.height
}

// Output returns the physical output surface used for manual compositing,
// or nil when the host stacks layers natively.
func (p *Painter) Output() surface.Surface {
	return p.output
}

// GetLayer returns the engine-built layer for a z-level, creating it lazily
// on first reference. The layer remains until DeleteLayer.
func (p *Painter) GetLayer(zlevel int) *Layer {
	return p.getLayer(Key(zlevel), false)
}

// GetVirtualLayer returns the layer for a z-level, creating it as virtual:
// tracked for ordering but not attached to any visible surface.
func (p *Painter) GetVirtualLayer(zlevel int) *Layer {
	return p.getLayer(Key(zlevel), true)
}

// getLayer fetches or creates the layer for key.
func (p *Painter) getLayer(key LayerKey, virtual bool) *Layer {
	if l := p.registry.get(key); l != nil {
		return l
	}
	l := &Layer{
		key:         key,
		builtin:     true,
		virtual:     virtual,
		incremental: key.Sub == SubIncremental,
	}
	if cfg, ok := p.pending[key.Level]; ok {
		l.cfg = l.cfg.merge(cfg)
	}
	if !virtual {
		if key.Level == primaryZLevel && p.output != nil {
			// The shared single-surface layer paints straight onto
			// the physical output.
			l.surf = p.output
		} else {
			s, err := p.surfaces.NewSurface(p.width, p.height)
			if err != nil {
				Logger().Warn("surface creation failed, layer degraded to virtual",
					"layer", key.String(), "err", err)
				l.virtual = true
			} else {
				l.surf = s
			}
		}
	}
	p.registry.insert(l)
	return l
}

// InsertLayer registers an externally supplied layer at a z-level. The
// engine keeps it in paint order and propagates resize and refresh calls,
// but never paints onto it.
//
// Inserting at an already-used key, or inserting a nil layer, is logged and
// skipped; it is never fatal.
func (p *Painter) InsertLayer(zlevel int, l ExternalLayer) {
	if l == nil {
		Logger().Warn("external layer missing resize/refresh capability, skipping insert",
			"zlevel", zlevel)
		return
	}
	layer := &Layer{key: Key(zlevel), ext: l}
	if cfg, ok := p.pending[zlevel]; ok {
		layer.cfg = layer.cfg.merge(cfg)
	}
	if !p.registry.insert(layer) {
		Logger().Warn("layer already exists, skipping insert", "zlevel", zlevel)
	}
}

// DeleteLayer detaches and removes the layers at a z-level (the base layer
// and any incremental sub-layers). No-op if absent.
func (p *Painter) DeleteLayer(zlevel int) {
	for _, sub := range []SubOrder{SubBase, SubIncremental, SubTrail} {
		key := LayerKey{Level: zlevel, Sub: sub}
		l := p.registry.get(key)
		if l == nil {
			continue
		}
		if l.builtin && l.surf != nil && l.surf != p.output {
			if err := l.surf.Close(); err != nil {
				Logger().Warn("closing layer surface failed", "layer", key.String(), "err", err)
			}
		}
		p.registry.delete(key)
	}
}

// ConfigureLayer merges render hints into the layers at a z-level. Hints
// for a z-level with no layer yet are held and applied at creation.
func (p *Painter) ConfigureLayer(zlevel int, cfg LayerConfig) {
	p.pending[zlevel] = p.pending[zlevel].merge(cfg)
	for _, sub := range []SubOrder{SubBase, SubIncremental, SubTrail} {
		if l := p.registry.get(LayerKey{Level: zlevel, Sub: sub}); l != nil {
			l.cfg = l.cfg.merge(cfg)
			l.MarkDirty()
		}
	}
}

// Resize propagates new view dimensions to every managed layer and forces a
// full repaint. No-op when the dimensions are unchanged.
func (p *Painter) Resize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width, p.height = width, height
	if p.output != nil {
		p.output.Resize(width, height)
	}
	p.registry.each(func(l *Layer) {
		switch {
		case l.ext != nil:
			l.ext.Resize(width, height)
		case l.surf != nil && l.surf != p.output:
			l.surf.Resize(width, height)
		}
	})
	p.Refresh(true)
}
