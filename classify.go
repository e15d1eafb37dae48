package zlayer

// classify partitions the depth-ordered element list into contiguous runs
// per layer, recomputes every engine-built layer's index range, and marks
// layers dirty when their membership or any of their elements changed since
// the previous frame. It runs once per refresh, before any painting.
//
// After classification, the [start, end) ranges of the used engine-built
// layers exactly tile the element list, in ascending key order, with no
// gaps or overlaps.
func (p *Painter) classify(els []Element) {
	p.registry.eachBuiltin(func(l *Layer) {
		l.state.dirty = false
		l.state.used = false
	})

	// A single-surface host needs manual compositing as soon as the list
	// spans more than one z-level or contains any incremental element.
	// The switch is one-way: once tripped it stays for the life of the
	// painter, so layers never migrate back onto the shared surface.
	if p.singleSurface && !p.compositeManually {
		for i, el := range els {
			if el.Incremental() || (i > 0 && el.ZLevel() != els[i-1].ZLevel()) {
				p.compositeManually = true
				break
			}
		}
	}
	shared := p.singleSurface && !p.compositeManually

	var prev *Layer
	closePrev := func(pos int) {
		if prev == nil {
			return
		}
		// A moved end index means membership churn: the layer gained
		// or lost elements even if none of them is dirty itself.
		if prev.state.end != pos {
			prev.state.dirty = true
		}
		prev.state.end = pos
	}

	inIncrementalRun := false
	for i, el := range els {
		key := Key(el.ZLevel())
		switch {
		case el.Incremental():
			// Incremental elements get a dedicated sub-layer so
			// their partially drawn state never mixes with
			// ordinary elements at the same z-level.
			key.Sub = SubIncremental
			inIncrementalRun = true
		case inIncrementalRun:
			// Non-incremental elements following an incremental
			// run this frame paint above it, on a trailing
			// sub-layer.
			key.Sub = SubTrail
		}
		if shared {
			key = Key(primaryZLevel)
		}

		l := p.getLayer(key, false)

		if l != prev {
			if !l.builtin {
				// Once per run, not per element; a large run on
				// an occupied level would flood the log.
				Logger().Warn("z-level is occupied by an external layer",
					"zlevel", el.ZLevel())
			}
			l.state.used = true
			if l.state.start != i {
				l.state.dirty = true
				l.state.start = i
			}
			if l.incremental {
				// Resume point is located below, at the first
				// dirty element of the run.
				l.state.draw = drawIndexUnknown
			} else {
				l.state.draw = i
			}
			closePrev(i)
			prev = l
		}

		if el.Dirty() {
			l.state.dirty = true
			if l.incremental && l.state.draw == drawIndexUnknown {
				l.state.draw = i
			}
		}
	}
	closePrev(len(els))

	p.registry.eachBuiltin(func(l *Layer) {
		if l.key.Level == hoverZLevel {
			// The hover overlay is repainted in full by its own
			// pass; range bookkeeping does not apply to it.
			return
		}
		// A layer that held elements last frame but claimed none this
		// frame must be cleared: collapse its range so the paint pass
		// wipes the stale pixels.
		if !l.state.used && l.elementCount() > 0 {
			l.state.dirty = true
			l.state.start, l.state.end, l.state.draw = 0, 0, 0
		}
		if l.state.dirty && l.state.draw == drawIndexUnknown {
			l.state.draw = l.state.start
		}
	})
}
