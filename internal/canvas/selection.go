package canvas

// Selection is a set of selected voxels.
type Selection struct {
	voxels map[Voxel]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{voxels: make(map[Voxel]struct{})}
}

// Has returns true if v is selected.
func (s *Selection) Has(v Voxel) bool {
	_, ok := s.voxels[v]
	return ok
}

// Set selects or deselects v.
func (s *Selection) Set(v Voxel, on bool) {
	if on {
		s.voxels[v] = struct{}{}
	} else {
		delete(s.voxels, v)
	}
}

// Len returns the number of selected voxels.
func (s *Selection) Len() int {
	return len(s.voxels)
}

// Clear deselects everything.
func (s *Selection) Clear() {
	clear(s.voxels)
}

// Voxels returns the selected voxels in no particular order.
func (s *Selection) Voxels() []Voxel {
	out := make([]Voxel, 0, len(s.voxels))
	for v := range s.voxels {
		out = append(out, v)
	}
	return out
}
