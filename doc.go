// Package zlayer is an incremental, layered 2D paint engine.
//
// zlayer renders a large, frequently-mutating collection of drawable
// elements onto one or more drawing surfaces ("layers"), minimizing redraw
// work frame over frame and keeping per-frame cost bounded. It is a
// scheduling engine, not a rasterizer: producing an element's pixels is the
// job of a Brush supplied by the application.
//
// # Model
//
// Elements carry a priority pair (ZLevel, Z2): ZLevel selects the physical
// surface an element paints onto, Z2 orders elements within it. The element
// list provider returns elements sorted by that pair. Each refresh, the
// engine partitions the list into contiguous runs per layer, marks layers
// dirty when their membership or elements changed, repaints only dirty
// layers, and resumes unfinished incremental layers on later frames.
//
// # Quick start
//
//	store := myElementStore()           // implements zlayer.ElementProvider
//	painter := zlayer.New(800, 600, store,
//	    zlayer.WithBrush(myBrush),      // implements zlayer.Brush
//	    zlayer.WithBackground(color.White),
//	)
//
//	painter.Refresh(false)              // paint what changed
//	img := painter.Output().Snapshot()  // composited result
//
// # Incremental layers
//
// Elements flagged incremental paint on a dedicated sub-layer whose work is
// time-sliced: once a pass exceeds the frame budget (15ms by default) the
// remainder is rescheduled via the host's FrameScheduler. A newer Refresh
// cancels any pending continuation through a generation token, so stale
// passes never resume.
//
// # Threading
//
// The engine is single-threaded and lock-free: every Painter method and
// every frame callback must run on the same goroutine.
package zlayer
