package zlayer

// Refresh classifies the current element list and paints every dirty layer.
// With force set, every layer repaints from the start of its range and the
// incremental time budget is suspended, so the pass completes in one frame.
//
// A refresh issued while a previous time-sliced pass is still pending
// supersedes it: the stamped generation token no longer matches, so the
// pending continuation abandons itself without painting.
func (p *Painter) Refresh(force bool) {
	p.generation++
	els := p.provider.Elements()

	// Externally supplied layers are orchestrated, not painted: tell
	// each one to repaint itself alongside the engine's own pass.
	p.registry.eachExternal(func(l *Layer) {
		l.ext.Refresh()
	})

	p.paintList(els, force, p.generation)
}

// paintList runs one frame's worth of paint work and reschedules itself
// while incremental layers remain unfinished.
func (p *Painter) paintList(els []Element, force bool, gen uint64) {
	if gen != p.generation {
		// A newer refresh superseded this pass.
		return
	}

	p.classify(els)
	finished := p.paintDirty(els, force)

	// Keep visible output consistent even mid time-slice.
	if p.compositeManually {
		p.compositeAll()
	}

	if !finished {
		p.frames.RequestFrame(func() {
			p.paintList(els, force, gen)
		})
		return
	}
	if p.hover.pending {
		p.RefreshHover()
	}
}

// paintDirty paints every dirty engine-built layer (or all of them when
// force is set) and reports whether the pass completed. An unfinished
// incremental layer leaves its draw index at the first unpainted element.
func (p *Painter) paintDirty(els []Element, force bool) bool {
	finished := true
	lowest := true

	p.registry.eachBuiltin(func(l *Layer) {
		if l.key.Level == hoverZLevel {
			return
		}
		// Background fill applies to the lowest z-level only; layers
		// above it clear to their own color (usually transparent).
		clearColor := l.cfg.ClearColor
		if lowest {
			clearColor = p.background
		}
		lowest = false

		if l.virtual || l.surf == nil {
			return
		}
		if !l.state.dirty && !force {
			return
		}

		start := l.state.draw
		if force {
			start = l.state.start
		}
		if start == drawIndexUnknown {
			// Recoverable inconsistency: resume from the range
			// start rather than aborting the pass.
			Logger().Warn("unexpected draw index sentinel at paint time",
				"layer", l.key.String())
			start = l.state.start
		}

		// Clear when the layer lost all its elements, or when the
		// paint starts at the top of the range and the first element
		// is not an accumulating incremental one.
		if l.state.start == l.state.end {
			l.surf.Clear(clearColor)
		} else if start == l.state.start {
			first := els[start]
			if force || !first.Incremental() || !accumulates(first) {
				l.surf.Clear(clearColor)
			}
		}

		// Force paints everything in one frame; the budget applies
		// only to incremental passes resumed via the draw index.
		useTimer := l.incremental && !force
		began := p.now()

		scope := &PaintScope{ViewWidth: p.width, ViewHeight: p.height}
		i := start
		for ; i < l.state.end; i++ {
			el := els[i]
			if el.Visible() {
				p.brush.Paint(l.surf, el, scope, i == l.state.end-1)
			}
			el.MarkClean()
			scope.PrevClips = el.ClipPaths()

			if useTimer && p.now().Sub(began) > p.budget {
				i++
				break
			}
		}
		l.state.draw = i
		if i < l.state.end {
			finished = false
			Logger().Debug("incremental pass paused",
				"layer", l.key.String(),
				"drawn", i-start,
				"remaining", l.state.end-i)
		}
	})

	return finished
}
