package zlayer

import "image"

// Element is a single drawable managed by the engine.
//
// Elements are owned by an external store; the engine reads their ordering
// keys and flags, clears dirty state after painting them, and copies render
// state onto hover mirrors. It never mutates element geometry.
//
// The priority pair (ZLevel, Z2) orders elements: ZLevel selects the physical
// surface the element paints onto, Z2 orders elements within that surface.
// The element list provider is expected to return elements already sorted by
// (ZLevel, Z2, insertion order); the engine relies on that ordering to assign
// contiguous index ranges to layers.
type Element interface {
	// ZLevel is the coarse ordering key selecting the element's layer.
	ZLevel() int

	// Z2 is the fine ordering key within a layer.
	Z2() int

	// Dirty reports whether the element needs repainting.
	Dirty() bool

	// MarkClean clears the dirty flag. The engine calls this after the
	// element has been painted.
	MarkClean()

	// Incremental reports whether the element's paint work may be
	// time-sliced across frames without clearing between them.
	Incremental() bool

	// Visible reports whether the element should be painted at all.
	Visible() bool

	// Transform returns the element's current affine transform.
	Transform() Matrix

	// ClipPaths returns the element's active clip chain, outermost first.
	// May be nil. The engine threads this through the paint scope so
	// brushes can reuse clip state across consecutive elements.
	ClipPaths() []ClipPath

	// Snapshot returns a shallow mirror copy of the element carrying its
	// style, shape, ordering, and visibility. Mirrors are used by the
	// hover overlay; their render state is re-synced from the original
	// before every overlay repaint via SetRenderState.
	Snapshot() Element

	// SetRenderState copies a live transform and clip chain onto the
	// element. Only hover mirrors are mutated through this method.
	SetRenderState(t Matrix, clips []ClipPath)
}

// ElementProvider supplies the depth-ordered element list for a refresh.
type ElementProvider interface {
	// Elements returns the current element list sorted ascending by
	// (ZLevel, Z2, insertion order). The returned slice must stay valid
	// until the next call; the engine does not copy it.
	Elements() []Element
}

// ProviderFunc adapts a plain function to an ElementProvider.
type ProviderFunc func() []Element

// Elements returns f().
func (f ProviderFunc) Elements() []Element { return f() }

// Accumulative is an optional capability of incremental elements whose
// output accumulates across passes. When the first element of a layer's
// range reports Accumulate() == true, the scheduler resumes painting
// without clearing the surface first.
type Accumulative interface {
	Accumulate() bool
}

// Detachable is an optional capability reporting that an element has been
// removed from its store. The hover overlay prunes mirrors whose original
// is detached.
type Detachable interface {
	Detached() bool
}

// Bounded is an optional capability exposing an element's pixel bounds.
// The default FillBrush requires it; custom brushes may ignore it.
type Bounded interface {
	Bounds() image.Rectangle
}

// CompareZ orders two elements by the (ZLevel, Z2) priority pair.
// It returns a negative value when a sorts before b, zero when the pair is
// equal, and a positive value otherwise. Callers needing the full ordering
// must use a stable sort so equal pairs keep their insertion order.
func CompareZ(a, b Element) int {
	if d := a.ZLevel() - b.ZLevel(); d != 0 {
		return d
	}
	return a.Z2() - b.Z2()
}

// detached reports whether el implements Detachable and is detached.
func detached(el Element) bool {
	d, ok := el.(Detachable)
	return ok && d.Detached()
}

// accumulates reports whether el is an incremental element that keeps its
// layer contents between passes.
func accumulates(el Element) bool {
	a, ok := el.(Accumulative)
	return ok && a.Accumulate()
}
