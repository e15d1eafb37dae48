package zlayer

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/zlayer/surface"
)

// compositeAll clears the physical output surface and draws every
// engine-built layer onto it in ascending key order. Used only when the
// host cannot stack independent surfaces natively. Idempotent; the
// scheduler calls it after every partial or full pass so visible output
// stays consistent mid time-slice.
func (p *Painter) compositeAll() {
	if p.output == nil {
		return
	}
	p.output.Clear(p.background)
	p.registry.eachBuiltin(func(l *Layer) {
		if l.virtual || l.surf == nil || l.surf == p.output {
			return
		}
		p.blitLayer(l)
	})
}

// blitLayer draws one layer's surface onto the output, applying the layer's
// opacity and blend-mode hints.
func (p *Painter) blitLayer(l *Layer) {
	src := layerImage(l.surf)
	if src == nil {
		return
	}

	// Surface-to-output scaling, for layers whose backing store has not
	// caught up with a resize yet.
	ow, oh := p.output.Width(), p.output.Height()
	if src.Bounds().Dx() != ow || src.Bounds().Dy() != oh {
		scaled := image.NewRGBA(image.Rect(0, 0, ow, oh))
		xdraw.BiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)
		src = scaled
	}

	opacity := l.cfg.Opacity
	if l.cfg.Blend == BlendOver {
		p.output.DrawImage(src, image.Point{}, &surface.DrawImageOptions{Over: true, Alpha: opacity})
		return
	}
	if opacity > 0 && opacity < 1 {
		// Pre-scale the layer against a transparent backdrop so the
		// blend below sees the attenuated pixels.
		src = blend.Opacity(image.NewRGBA(src.Bounds()), src, opacity)
	}

	// Non-trivial blend modes need the current output pixels as the
	// backdrop; degrade to source-over when they are not reachable.
	backed, ok := p.output.(surface.ImageBacked)
	if !ok {
		Logger().Debug("output surface has no image access, blend hint degraded to over",
			"layer", l.key.String(), "blend", l.cfg.Blend.String())
		p.output.DrawImage(src, image.Point{}, &surface.DrawImageOptions{Over: true})
		return
	}
	base := backed.Image()
	var blended *image.RGBA
	switch l.cfg.Blend {
	case BlendAdd:
		blended = blend.Add(base, src)
	case BlendMultiply:
		blended = blend.Multiply(base, src)
	case BlendScreen:
		blended = blend.Screen(base, src)
	case BlendOverlay:
		blended = blend.Overlay(base, src)
	case BlendDarken:
		blended = blend.Darken(base, src)
	case BlendLighten:
		blended = blend.Lighten(base, src)
	default:
		blended = blend.Normal(base, src)
	}
	p.output.DrawImage(blended, image.Point{}, &surface.DrawImageOptions{Over: false})
}

// layerImage returns a layer surface's pixels, avoiding a copy for
// image-backed surfaces.
func layerImage(s surface.Surface) *image.RGBA {
	if backed, ok := s.(surface.ImageBacked); ok {
		return backed.Image()
	}
	return s.Snapshot()
}
