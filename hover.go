package zlayer

import "sort"

// hoverEntry links a hover mirror to the element it shadows.
type hoverEntry struct {
	original Element
	mirror   Element
	style    *HoverStyle
}

// hoverOverlay is the always-on-top pseudo-layer holding transient mirror
// copies of elements. Unlike ordinary layers it has no incremental state:
// any change repaints it in full.
type hoverOverlay struct {
	entries []*hoverEntry
	index   map[Element]*hoverEntry
	pending bool
}

// AddHover mirrors an element onto the hover overlay and returns the
// mirror. The mirror carries the element's style, shape, ordering, and
// visibility; its transform and clip state are re-synced from the original
// on every overlay repaint. An element that already has a mirror is not
// duplicated: AddHover returns nil.
//
// The optional style overrides how brushes paint the mirror.
func (p *Painter) AddHover(el Element, style *HoverStyle) Element {
	if el == nil {
		return nil
	}
	if p.hover.index == nil {
		p.hover.index = make(map[Element]*hoverEntry)
	}
	if _, exists := p.hover.index[el]; exists {
		return nil
	}
	entry := &hoverEntry{
		original: el,
		mirror:   el.Snapshot(),
		style:    style,
	}
	p.hover.entries = append(p.hover.entries, entry)
	p.hover.index[el] = entry
	p.hover.pending = true
	return entry.mirror
}

// RemoveHover detaches an element's mirror from the overlay. No-op when
// the element has no mirror.
func (p *Painter) RemoveHover(el Element) {
	entry, ok := p.hover.index[el]
	if !ok {
		return
	}
	delete(p.hover.index, el)
	for i, e := range p.hover.entries {
		if e == entry {
			p.hover.entries = append(p.hover.entries[:i], p.hover.entries[i+1:]...)
			break
		}
	}
	p.hover.pending = true
}

// ClearHover detaches all mirrors from the overlay.
func (p *Painter) ClearHover() {
	if len(p.hover.entries) == 0 {
		return
	}
	p.hover.entries = nil
	p.hover.index = nil
	p.hover.pending = true
}

// HoverCount returns the number of mirrors currently on the overlay.
func (p *Painter) HoverCount() int {
	return len(p.hover.entries)
}

// RefreshHover repaints the hover overlay from scratch: mirrors are
// stable-sorted by the main list's ordering (ascending ZLevel, then Z2,
// insertion order preserved on ties), pruned when their original was
// detached, skipped while invisible, and painted with the original's
// live transform and clip state.
func (p *Painter) RefreshHover() {
	p.hover.pending = false
	if len(p.hover.entries) == 0 {
		// Wipe stale overlay pixels, but do not create the layer for
		// an empty overlay.
		if l := p.registry.get(Key(hoverZLevel)); l != nil && l.surf != nil {
			l.surf.Clear(nil)
			if p.compositeManually {
				p.compositeAll()
			}
		}
		return
	}

	// The overlay stacks above the shared surface, so a single-surface
	// host switches to manual compositing before the first hover paint;
	// the forced refresh migrates elements off the shared layer.
	if p.singleSurface && !p.compositeManually {
		p.compositeManually = true
		p.Refresh(true)
	}

	// Ties must keep their relative order across frames, so the sort has
	// to be stable; entries are held in insertion order between sorts.
	sort.SliceStable(p.hover.entries, func(i, j int) bool {
		return CompareZ(p.hover.entries[i].mirror, p.hover.entries[j].mirror) < 0
	})

	l := p.getLayer(Key(hoverZLevel), false)
	if l.surf == nil {
		return
	}
	l.surf.Clear(nil)

	// The brush needs isLast on the final paint of the batch to tear down
	// clip state, so locate the last entry that will actually paint.
	var last *hoverEntry
	for _, entry := range p.hover.entries {
		if !detached(entry.original) && entry.original.Visible() {
			last = entry
		}
	}

	kept := p.hover.entries[:0]
	scope := &PaintScope{ViewWidth: p.width, ViewHeight: p.height}
	for _, entry := range p.hover.entries {
		orig := entry.original
		if detached(orig) {
			delete(p.hover.index, orig)
			continue
		}
		kept = append(kept, entry)
		if !orig.Visible() {
			continue
		}
		// Track live position without owning geometry: the mirror
		// borrows the original's render state for this paint only.
		entry.mirror.SetRenderState(orig.Transform(), orig.ClipPaths())
		scope.Style = entry.style
		p.brush.Paint(l.surf, entry.mirror, scope, entry == last)
		scope.PrevClips = entry.mirror.ClipPaths()
	}
	p.hover.entries = kept

	if p.compositeManually {
		p.compositeAll()
	}
}
