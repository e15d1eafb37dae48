package zlayer

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/zlayer/surface"
)

var (
	redColor   = color.RGBA{R: 0xff, A: 0xff}
	blueColor  = color.RGBA{B: 0xff, A: 0xff}
	whiteColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// testEl is a minimal element for engine tests.
type testEl struct {
	zlevel      int
	z2          int
	dirty       bool
	incremental bool
	visible     bool
	keep        bool // accumulates across incremental passes
	gone        bool // detached from its store
	bounds      image.Rectangle
	fill        color.Color
	transform   Matrix
	clips       []ClipPath
	mirrorOf    *testEl
}

func el(zlevel, z2 int) *testEl {
	return &testEl{
		zlevel:    zlevel,
		z2:        z2,
		dirty:     true,
		visible:   true,
		bounds:    image.Rect(0, 0, 10, 10),
		transform: Identity(),
	}
}

func (e *testEl) ZLevel() int           { return e.zlevel }
func (e *testEl) Z2() int               { return e.z2 }
func (e *testEl) Dirty() bool           { return e.dirty }
func (e *testEl) MarkClean()            { e.dirty = false }
func (e *testEl) Incremental() bool     { return e.incremental }
func (e *testEl) Visible() bool         { return e.visible }
func (e *testEl) Transform() Matrix     { return e.transform }
func (e *testEl) ClipPaths() []ClipPath { return e.clips }
func (e *testEl) Accumulate() bool      { return e.keep }
func (e *testEl) Detached() bool        { return e.gone }
func (e *testEl) Bounds() image.Rectangle {
	return e.bounds
}

func (e *testEl) Snapshot() Element {
	mirror := *e
	mirror.mirrorOf = e
	return &mirror
}

func (e *testEl) SetRenderState(t Matrix, clips []ClipPath) {
	e.transform = t
	e.clips = clips
}

// paintRecord captures one brush invocation.
type paintRecord struct {
	el    Element
	dst   surface.Surface
	last  bool
	style *HoverStyle
}

// recordBrush records every paint. With a clock and cost set it advances
// the fake clock per element, and with fill set it actually fills testEl
// bounds so compositor tests can check pixels.
type recordBrush struct {
	painted []paintRecord
	clock   *fakeClock
	cost    time.Duration
	fill    bool
}

func (b *recordBrush) Paint(dst surface.Surface, e Element, scope *PaintScope, last bool) {
	var style *HoverStyle
	if scope != nil {
		style = scope.Style
	}
	b.painted = append(b.painted, paintRecord{el: e, dst: dst, last: last, style: style})
	if b.fill {
		if te, ok := e.(*testEl); ok && te.fill != nil {
			c := te.fill
			if style != nil && style.Fill != nil {
				c = style.Fill
			}
			dst.FillRect(te.bounds, c)
		}
	}
	if b.clock != nil && b.cost > 0 {
		b.clock.advance(b.cost)
	}
}

func (b *recordBrush) count() int { return len(b.painted) }

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time            { return c.t }
func (c *fakeClock) advance(d time.Duration)   { c.t = c.t.Add(d) }

// testPainter builds a painter over a mutable element list with a recording
// brush and a manual frame scheduler.
func testPainter(els *[]Element, opts ...Option) (*Painter, *recordBrush, *ManualScheduler) {
	brush := &recordBrush{}
	frames := &ManualScheduler{}
	base := []Option{WithBrush(brush), WithFrameScheduler(frames)}
	p := New(100, 80, ProviderFunc(func() []Element { return *els }), append(base, opts...)...)
	return p, brush, frames
}

// elements converts testEls to the Element slice the provider returns.
func elements(els ...*testEl) []Element {
	out := make([]Element, len(els))
	for i, e := range els {
		out[i] = e
	}
	return out
}

// fakeExternalLayer records orchestration calls.
type fakeExternalLayer struct {
	resizes   []image.Point
	refreshes int
}

func (f *fakeExternalLayer) Resize(w, h int) {
	f.resizes = append(f.resizes, image.Pt(w, h))
}

func (f *fakeExternalLayer) Refresh() {
	f.refreshes++
}
