// Package canvas holds the panel state that interaction handlers act on.
//
// The types here stand in for the view panels of the viewer: a Slice is a
// 2D cut through a 3D image (orthographic and lightbox views), a Plot is a
// data plot and a Scene is the 3D view. They carry no rendering; handlers
// mutate them and the terminal session draws them.
package canvas

import (
	"fmt"
	"math"
)

// Voxel is an integer image coordinate.
type Voxel [3]int

// Image is a 3D scalar volume.
type Image struct {
	Dims [3]int
	Data []float32
}

// NewImage creates a zero-filled image.
func NewImage(x, y, z int) *Image {
	return &Image{
		Dims: [3]int{x, y, z},
		Data: make([]float32, x*y*z),
	}
}

// Contains returns true if v lies inside the image.
func (im *Image) Contains(v Voxel) bool {
	for i := range 3 {
		if v[i] < 0 || v[i] >= im.Dims[i] {
			return false
		}
	}
	return true
}

func (im *Image) index(v Voxel) int {
	return v[0] + im.Dims[0]*(v[1]+im.Dims[1]*v[2])
}

// At returns the value at v, or 0 outside the image.
func (im *Image) At(v Voxel) float32 {
	if !im.Contains(v) {
		return 0
	}
	return im.Data[im.index(v)]
}

// Set stores val at v. Writes outside the image are ignored.
func (im *Image) Set(v Voxel, val float32) {
	if im.Contains(v) {
		im.Data[im.index(v)] = val
	}
}

// Range returns the minimum and maximum values.
func (im *Image) Range() (lo, hi float32) {
	if len(im.Data) == 0 {
		return 0, 0
	}
	lo, hi = im.Data[0], im.Data[0]
	for _, v := range im.Data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Sphere returns an image with a bright sphere in the middle, fading
// linearly to zero at the given radius. It is the demo volume of the
// terminal session.
func Sphere(x, y, z int, radius float64) *Image {
	im := NewImage(x, y, z)
	cx, cy, cz := float64(x-1)/2, float64(y-1)/2, float64(z-1)/2
	for k := range z {
		for j := range y {
			for i := range x {
				d := math.Sqrt(sq(float64(i)-cx) + sq(float64(j)-cy) + sq(float64(k)-cz))
				if d < radius {
					im.Set(Voxel{i, j, k}, float32(100*(1-d/radius)))
				}
			}
		}
	}
	return im
}

func sq(f float64) float64 {
	return f * f
}

func (v Voxel) String() string {
	return fmt.Sprintf("[%d %d %d]", v[0], v[1], v[2])
}
