package zlayer

import "image"

// ClipPath describes one region in an element's clip chain.
//
// The engine never evaluates clips; it only threads them through the paint
// scope so a brush can tell whether the chain changed between consecutive
// elements and reuse the applied clip state when it did not.
type ClipPath interface {
	// Equal reports whether two clips describe the same region under the
	// same transform.
	Equal(other ClipPath) bool
}

// RectClip clips to an axis-aligned rectangle under a transform.
type RectClip struct {
	Rect      image.Rectangle
	Transform Matrix
}

// Equal reports whether other is a RectClip with the same rectangle and
// transform.
func (c RectClip) Equal(other ClipPath) bool {
	o, ok := other.(RectClip)
	return ok && c.Rect == o.Rect && c.Transform == o.Transform
}

// SameClips reports whether two clip chains are element-wise equal. Brushes
// use it against PaintScope.PrevClips to decide whether the clip state
// already applied on the surface can be kept for the next element.
func SameClips(a, b []ClipPath) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == nil || b[i] == nil {
			if a[i] != b[i] {
				return false
			}
			continue
		}
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
