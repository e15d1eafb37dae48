package zlayer

import (
	"image/color"

	"github.com/gogpu/zlayer/surface"
)

// Brush rasterizes a single element onto a surface.
//
// The engine owns which elements get painted, in what order, and onto which
// surface; the brush owns how an element's pixels are produced. Brushes are
// called once per element per pass, in ascending (ZLevel, Z2) order.
//
// isLast is true for the final element of the current batch so the brush can
// tear down any clip state it left applied on the surface.
type Brush interface {
	Paint(dst surface.Surface, el Element, scope *PaintScope, isLast bool)
}

// BrushFunc adapts a plain function to a Brush.
type BrushFunc func(dst surface.Surface, el Element, scope *PaintScope, isLast bool)

// Paint calls f.
func (f BrushFunc) Paint(dst surface.Surface, el Element, scope *PaintScope, isLast bool) {
	f(dst, el, scope, isLast)
}

// PaintScope carries per-batch state threaded through consecutive brush
// calls within one layer paint.
type PaintScope struct {
	// ViewWidth and ViewHeight are the logical view dimensions.
	ViewWidth  int
	ViewHeight int

	// PrevClips is the clip chain of the previously painted element.
	// A brush that finds the current element's chain equal (see
	// SameClips) can keep the applied clip instead of rebuilding it.
	PrevClips []ClipPath

	// Style is a hover style override. It is nil outside hover overlay
	// passes; brushes honoring it should prefer its colors over the
	// element's own.
	Style *HoverStyle
}

// HoverStyle carries optional paint overrides applied to hover mirrors.
// Zero-value fields mean "keep the element's own setting".
type HoverStyle struct {
	Fill   color.Color
	Stroke color.Color

	// Alpha scales the mirror's opacity; 0 means unchanged.
	Alpha float32
}

// FillBrush is a minimal built-in brush that fills a Bounded element's
// rectangle with a solid color. It exists so the engine is exercisable
// end-to-end without an external rasterizer; real applications supply their
// own Brush.
type FillBrush struct {
	// Color is the fill color for elements that do not carry one.
	Color color.Color
}

// Paint fills the element's bounds. Elements that do not implement Bounded
// are skipped.
func (b *FillBrush) Paint(dst surface.Surface, el Element, scope *PaintScope, _ bool) {
	bounded, ok := el.(Bounded)
	if !ok {
		return
	}
	c := b.Color
	if c == nil {
		c = color.Black
	}
	if scope != nil && scope.Style != nil && scope.Style.Fill != nil {
		c = scope.Style.Fill
	}
	dst.FillRect(bounded.Bounds(), c)
}
