package zlayer

import "slices"

// layerRegistry owns the mapping from composite layer keys to layers and
// keeps the key list sorted ascending. Paint and composite order depend
// entirely on this list staying sorted.
//
// Insertion locates the predecessor by linear scan: the number of distinct
// layers is small (typically under 20), so an ordered slice beats a
// balanced tree in practice.
type layerRegistry struct {
	keys   []LayerKey
	layers map[LayerKey]*Layer
}

func newLayerRegistry() *layerRegistry {
	return &layerRegistry{layers: make(map[LayerKey]*Layer)}
}

// get returns the layer for key, or nil.
func (r *layerRegistry) get(key LayerKey) *Layer {
	return r.layers[key]
}

// insert adds a layer at its sorted position. It reports false without
// modifying the registry when the key is already in use.
func (r *layerRegistry) insert(l *Layer) bool {
	if _, exists := r.layers[l.key]; exists {
		return false
	}

	// Locate the predecessor: the last key ordering before l.key.
	// No predecessor (new minimum or empty list) inserts at the head.
	at := 0
	for i, k := range r.keys {
		if !k.Less(l.key) {
			break
		}
		at = i + 1
	}
	r.keys = slices.Insert(r.keys, at, l.key)
	r.layers[l.key] = l
	return true
}

// delete removes the layer for key from both the map and the ordered list.
// No-op if absent.
func (r *layerRegistry) delete(key LayerKey) {
	if _, exists := r.layers[key]; !exists {
		return
	}
	delete(r.layers, key)
	if i := slices.Index(r.keys, key); i >= 0 {
		r.keys = slices.Delete(r.keys, i, i+1)
	}
}

// each calls fn for every layer in ascending key order.
func (r *layerRegistry) each(fn func(*Layer)) {
	for _, k := range r.keys {
		fn(r.layers[k])
	}
}

// eachBuiltin calls fn for every engine-built layer in ascending key order.
func (r *layerRegistry) eachBuiltin(fn func(*Layer)) {
	for _, k := range r.keys {
		if l := r.layers[k]; l.builtin {
			fn(l)
		}
	}
}

// eachExternal calls fn for every externally supplied layer in ascending
// key order.
func (r *layerRegistry) eachExternal(fn func(*Layer)) {
	for _, k := range r.keys {
		if l := r.layers[k]; !l.builtin {
			fn(l)
		}
	}
}

// count returns the number of registered layers.
func (r *layerRegistry) count() int {
	return len(r.keys)
}
