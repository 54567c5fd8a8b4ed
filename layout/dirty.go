package layout

// DirtySize is a cached measured size plus a staleness flag. The zero value
// is dirty so a freshly created layout always arranges once.
type DirtySize struct {
	width, height float64
	clean         bool
}

func (d DirtySize) Width() float64  { return d.width }
func (d DirtySize) Height() float64 { return d.height }
func (d DirtySize) Size() Size      { return Size{d.width, d.height} }
func (d DirtySize) Dirty() bool     { return !d.clean }

// SetWidth stores w and marks the cache dirty if it changed.
func (d *DirtySize) SetWidth(w float64) {
	if w != d.width {
		d.width = w
		d.clean = false
	}
}

// SetHeight stores h and marks the cache dirty if it changed.
func (d *DirtySize) SetHeight(h float64) {
	if h != d.height {
		d.height = h
		d.clean = false
	}
}

// SetSize stores both extents, marking the cache dirty if either changed.
func (d *DirtySize) SetSize(w, h float64) {
	d.SetWidth(w)
	d.SetHeight(h)
}

func (d *DirtySize) SetDirty(dirty bool) {
	d.clean = !dirty
}
