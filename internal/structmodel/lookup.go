package structmodel

import "sort"

// IDer is implemented by every authoring record so lookup helpers can find
// a record by its stable ID via binary search on a sorted slice, mirroring
// the C engine's sorted-array-of-records + bisect pattern (never a map —
// maps have no deterministic iteration order).
type IDer interface {
	GetID() ID
}

func (f Footprint) GetID() ID       { return f.ID }
func (v Volume) GetID() ID          { return v.ID }
func (e Enclosure) GetID() ID       { return e.ID }
func (s SurfaceTemplate) GetID() ID { return s.ID }
func (s Socket) GetID() ID          { return s.ID }
func (c CarrierIntent) GetID() ID   { return c.ID }
func (i Instance) GetID() ID        { return i.ID }

// FindByID looks up id in items, which need not be pre-sorted by the caller:
// it tries a binary search first and falls back to a linear scan; nothing is
// sorted or cached. Returns the matching item and true, or the zero value
// and false.
func FindByID[T IDer](items []T, id ID) (T, bool) {
	var zero T
	if id == 0 {
		return zero, false
	}
	idx := sort.Search(len(items), func(i int) bool { return items[i].GetID() >= id })
	if idx < len(items) && items[idx].GetID() == id {
		return items[idx], true
	}
	// Fall back to a linear scan: inputs are not guaranteed sorted by the
	// host (only compiled outputs are), so the binary search above is only
	// a fast path when the host happens to hand them in sorted.
	for _, it := range items {
		if it.GetID() == id {
			return it, true
		}
	}
	return zero, false
}
