package zlayer

import (
	"image"
	"testing"
)

func TestNewDefaultsToSingleSurface(t *testing.T) {
	list := elements(el(0, 0))
	p := New(100, 80, ProviderFunc(func() []Element { return list }))

	if w, h := p.Size(); w != 100 || h != 80 {
		t.Errorf("Size() = %dx%d, want 100x80", w, h)
	}
	if p.Output() == nil {
		t.Fatal("single-surface painter has no output surface")
	}
	if got := p.Output().Width(); got != 100 {
		t.Errorf("output width = %d, want 100", got)
	}
	if !p.singleSurface {
		t.Error("default backend provider should report a single-surface host")
	}
}

func TestGetLayerCreatesLazily(t *testing.T) {
	list := elements(el(0, 0))
	p, _, _ := testPainter(&list)

	if p.registry.count() != 0 {
		t.Fatalf("registry starts with %d layers, want 0", p.registry.count())
	}
	l := p.GetLayer(3)
	if l == nil || l.Surface() == nil {
		t.Fatal("GetLayer returned no usable layer")
	}
	if !l.Builtin() {
		t.Error("engine-built layer not marked builtin")
	}
	if got := p.GetLayer(3); got != l {
		t.Error("second GetLayer created a new layer instead of returning the first")
	}
}

func TestGetVirtualLayerHasNoSurface(t *testing.T) {
	list := elements(el(0, 0))
	p, _, _ := testPainter(&list)

	l := p.GetVirtualLayer(7)
	if !l.Virtual() {
		t.Error("layer not marked virtual")
	}
	if l.Surface() != nil {
		t.Error("virtual layer was given a surface")
	}
}

func TestInsertLayerOrchestratesExternalLayer(t *testing.T) {
	list := elements(el(0, 0))
	p, brush, _ := testPainter(&list)

	ext := &fakeExternalLayer{}
	p.InsertLayer(2, ext)

	p.Refresh(false)
	if ext.refreshes != 1 {
		t.Errorf("external refreshes = %d, want 1", ext.refreshes)
	}

	p.Resize(200, 160)
	if len(ext.resizes) != 1 || ext.resizes[0] != image.Pt(200, 160) {
		t.Errorf("external resizes = %v, want [(200,160)]", ext.resizes)
	}
	// Resize itself forces a refresh.
	if ext.refreshes != 2 {
		t.Errorf("external refreshes after resize = %d, want 2", ext.refreshes)
	}
	// The engine never paints onto an external layer.
	for _, rec := range brush.painted {
		if rec.dst == nil {
			t.Error("paint targeted a nil surface")
		}
	}
}

func TestInsertLayerRejectsNilAndDuplicates(t *testing.T) {
	list := elements(el(0, 0))
	p, _, _ := testPainter(&list)

	p.InsertLayer(2, nil)
	if p.registry.count() != 0 {
		t.Fatal("nil external layer was inserted")
	}

	first := &fakeExternalLayer{}
	p.InsertLayer(2, first)
	p.InsertLayer(2, &fakeExternalLayer{})
	if p.registry.count() != 1 {
		t.Fatalf("registry has %d layers, want 1", p.registry.count())
	}
	if got := p.registry.get(Key(2)); got.ext != ExternalLayer(first) {
		t.Error("duplicate insert replaced the original external layer")
	}
}

func TestDeleteLayerRemovesAllSubLayers(t *testing.T) {
	inc := el(4, 0)
	inc.incremental = true
	list := elements(el(4, 1), inc, el(4, 2))
	p, _, _ := testPainter(&list)
	p.Refresh(false)

	// The incremental run split z-level 4 into base, incremental and
	// trail sub-layers.
	if p.registry.count() != 3 {
		t.Fatalf("registry has %d layers, want 3", p.registry.count())
	}
	p.DeleteLayer(4)
	if p.registry.count() != 0 {
		t.Errorf("registry has %d layers after delete, want 0", p.registry.count())
	}
	// Absent level: no-op.
	p.DeleteLayer(4)
}

func TestConfigureLayerAppliesToLiveAndFutureLayers(t *testing.T) {
	list := elements(el(0, 0), el(5, 0))
	p, _, _ := testPainter(&list)
	p.Refresh(false)

	p.ConfigureLayer(0, LayerConfig{ClearColor: redColor})
	z0 := p.registry.get(Key(0))
	if z0.Config().ClearColor != redColor {
		t.Error("live layer did not pick up the clear color")
	}
	if !z0.Dirty() {
		t.Error("reconfigured layer not marked dirty")
	}

	// Hints for a level with no layer yet are held until creation.
	p.ConfigureLayer(9, LayerConfig{Opacity: 0.5, Blend: BlendMultiply})
	l9 := p.GetLayer(9)
	if l9.Config().Opacity != 0.5 || l9.Config().Blend != BlendMultiply {
		t.Errorf("pending config not applied at creation: %+v", l9.Config())
	}
}

func TestConfigureLayerMergesPartialHints(t *testing.T) {
	list := elements(el(0, 0))
	p, _, _ := testPainter(&list)

	p.ConfigureLayer(6, LayerConfig{Opacity: 0.5})
	p.ConfigureLayer(6, LayerConfig{Blend: BlendScreen})
	l := p.GetLayer(6)
	if l.Config().Opacity != 0.5 {
		t.Errorf("opacity = %v, want 0.5 (overwritten by later partial hint)", l.Config().Opacity)
	}
	if l.Config().Blend != BlendScreen {
		t.Errorf("blend = %v, want %v", l.Config().Blend, BlendScreen)
	}
}

func TestResizePropagatesAndForcesRepaint(t *testing.T) {
	list := elements(el(0, 0), el(5, 0))
	p, brush, _ := testPainter(&list)
	p.Refresh(false)
	painted := brush.count()

	p.Resize(200, 160)

	if w, h := p.Size(); w != 200 || h != 160 {
		t.Errorf("Size() = %dx%d, want 200x160", w, h)
	}
	if got := p.Output().Width(); got != 200 {
		t.Errorf("output width = %d, want 200", got)
	}
	p.registry.eachBuiltin(func(l *Layer) {
		if l.Surface() == nil {
			return
		}
		if got := l.Surface().Width(); got != 200 {
			t.Errorf("layer %v width = %d, want 200", l.Key(), got)
		}
	})
	if got := brush.count() - painted; got != 2 {
		t.Errorf("resize repainted %d elements, want 2", got)
	}
}

func TestResizeSameDimensionsIsNoop(t *testing.T) {
	list := elements(el(0, 0))
	p, brush, _ := testPainter(&list)
	p.Refresh(false)
	painted := brush.count()

	p.Resize(100, 80)
	if brush.count() != painted {
		t.Errorf("no-op resize painted %d elements", brush.count()-painted)
	}
}
