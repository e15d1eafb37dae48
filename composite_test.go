package zlayer

import (
	"image"
	"testing"

	"github.com/gogpu/zlayer/surface"
)

func TestCompositeStacksLayersInZOrder(t *testing.T) {
	lower := el(0, 0)
	lower.fill = redColor
	lower.bounds = image.Rect(0, 0, 10, 10)
	upper := el(5, 0)
	upper.fill = blueColor
	upper.bounds = image.Rect(5, 5, 15, 15)
	list := elements(lower, upper)
	p, brush, _ := testPainter(&list, WithBackground(whiteColor))
	brush.fill = true

	p.Refresh(false)

	if !p.compositeManually {
		t.Fatal("two z-levels on a single-surface host must composite manually")
	}
	out := p.Output().Snapshot()
	if px := out.RGBAAt(1, 1); px != redColor {
		t.Errorf("pixel (1,1) = %v, want %v (lower layer only)", px, redColor)
	}
	if px := out.RGBAAt(6, 6); px != blueColor {
		t.Errorf("pixel (6,6) = %v, want %v (upper layer wins overlap)", px, blueColor)
	}
	if px := out.RGBAAt(50, 50); px != whiteColor {
		t.Errorf("pixel (50,50) = %v, want background %v", px, whiteColor)
	}
}

func TestCompositeRepairsOutputAfterPartialUpdate(t *testing.T) {
	lower := el(0, 0)
	lower.fill = redColor
	upper := el(5, 0)
	upper.fill = blueColor
	upper.bounds = image.Rect(20, 20, 30, 30)
	list := elements(lower, upper)
	p, brush, _ := testPainter(&list, WithBackground(whiteColor))
	brush.fill = true
	p.Refresh(false)

	// Only the upper layer changes; the lower layer's pixels must still
	// reach the output because compositing redraws the full stack.
	upper.dirty = true
	p.Refresh(false)

	out := p.Output().Snapshot()
	if px := out.RGBAAt(1, 1); px != redColor {
		t.Errorf("pixel (1,1) = %v, want %v (clean lower layer lost)", px, redColor)
	}
	if px := out.RGBAAt(21, 21); px != blueColor {
		t.Errorf("pixel (21,21) = %v, want %v", px, blueColor)
	}
}

func TestCompositeBlendMultiply(t *testing.T) {
	base := el(0, 0)
	base.fill = blueColor
	top := el(5, 0)
	top.fill = redColor
	list := elements(base, top)
	p, brush, _ := testPainter(&list, WithBackground(whiteColor))
	brush.fill = true
	p.ConfigureLayer(5, LayerConfig{Blend: BlendMultiply})

	p.Refresh(false)

	out := p.Output().Snapshot()
	// Blue multiplied by red is black; the backdrop outside the element
	// passes through untouched.
	if px := out.RGBAAt(1, 1); px.R != 0 || px.G != 0 || px.B != 0 || px.A != 0xff {
		t.Errorf("pixel (1,1) = %v, want opaque black", px)
	}
	if px := out.RGBAAt(50, 50); px != whiteColor {
		t.Errorf("pixel (50,50) = %v, want background %v", px, whiteColor)
	}
}

func TestCompositeLayerOpacity(t *testing.T) {
	a := el(0, 0)
	a.fill = redColor
	list := elements(a)
	p, brush, _ := testPainter(&list, WithBackground(whiteColor))
	brush.fill = true
	p.ConfigureLayer(0, LayerConfig{Opacity: 0.5})
	// Force manual compositing so the opacity hint takes effect.
	b := el(5, 0)
	list = append(list, b)

	p.Refresh(false)

	out := p.Output().Snapshot()
	px := out.RGBAAt(1, 1)
	// Half red over white: full red channel, green and blue attenuated
	// to roughly half. Integer alpha math makes the exact value fuzzy.
	if px.R != 0xff {
		t.Errorf("pixel (1,1).R = %d, want 255", px.R)
	}
	if px.G < 0x70 || px.G > 0x90 {
		t.Errorf("pixel (1,1).G = %d, want about 128", px.G)
	}
}

func TestBlitScalesStaleLayerToOutput(t *testing.T) {
	list := elements(el(0, 0))
	p, _, _ := testPainter(&list)

	stale := surface.NewImageSurface(50, 40)
	stale.FillRect(image.Rect(0, 0, 50, 40), redColor)
	l := &Layer{key: Key(0), builtin: true, surf: stale}

	p.Output().Clear(whiteColor)
	p.blitLayer(l)

	out := p.Output().Snapshot()
	if px := out.RGBAAt(50, 40); px != redColor {
		t.Errorf("pixel (50,40) = %v, want %v (layer scaled up to output)", px, redColor)
	}
}

func TestCompositeSkipsVirtualLayers(t *testing.T) {
	a := el(0, 0)
	a.fill = redColor
	list := elements(a, el(5, 0))
	p, brush, _ := testPainter(&list, WithBackground(whiteColor))
	brush.fill = true
	p.GetVirtualLayer(3)

	p.Refresh(false)

	out := p.Output().Snapshot()
	if px := out.RGBAAt(1, 1); px != redColor {
		t.Errorf("pixel (1,1) = %v, want %v", px, redColor)
	}
}
