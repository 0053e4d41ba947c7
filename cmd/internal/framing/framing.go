// Package framing computes a closed-form camera placement that fits a
// model's bounding box inside the frame. There is no iteration: one box,
// one distance, one look-at.
package framing

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultFOV is the host camera's default field of view in radians
	// (50mm focal length on a 36mm sensor, about 39.6 degrees).
	DefaultFOV = 0.6911112

	// fitMargin shrinks the angle used for fitting so the subject does
	// not touch the frame edges.
	fitMargin = 0.95

	// minDistance keeps the camera off the subject when the bounding
	// box has no extent.
	minDistance = 1.0
)

// viewOffset is the unit vector from the subject toward the camera: a
// three-quarter view from above.
var viewOffset = mgl64.Vec3{0.15, 0.85, 0.5}.Normalize()

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max mgl64.Vec3
}

// NewBounds returns an empty box that any Extend call will snap to.
func NewBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Extend grows the box to contain v.
func (b *Bounds) Extend(v mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], v[i])
		b.Max[i] = math.Max(b.Max[i], v[i])
	}
}

// Empty reports whether the box has never been extended.
func (b Bounds) Empty() bool {
	return b.Min.X() > b.Max.X()
}

// Center returns the box midpoint, or the origin for an empty box.
func (b Bounds) Center() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the per-axis extent of the box.
func (b Bounds) Size() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// MaxExtent returns the largest axis extent.
func (b Bounds) MaxExtent() float64 {
	s := b.Size()
	return math.Max(s.X(), math.Max(s.Y(), s.Z()))
}

// Placement is a camera transform that frames a subject.
type Placement struct {
	Eye      mgl64.Vec3
	Target   mgl64.Vec3
	Distance float64
	FOV      float64
}

// Frame places the camera so the whole box is visible at the given frame
// aspect ratio (width over height). The camera sits on a fixed viewing
// axis at a distance proportional to the box's largest extent and aims
// at the box center. A degenerate box (a point, or no geometry at all)
// yields the fixed minimum distance.
func Frame(b Bounds, aspect float64) Placement {
	center := b.Center()

	// The FOV applies to the wider frame dimension, so the narrow
	// dimension always governs the fit: a wide frame shrinks the
	// vertical angle, a tall frame the horizontal one.
	half := DefaultFOV / 2
	if aspect > 1 {
		half = math.Atan(math.Tan(half) / aspect)
	} else if aspect > 0 && aspect < 1 {
		half = math.Atan(math.Tan(half) * aspect)
	}

	dist := minDistance
	if extent := b.MaxExtent(); extent > 0 {
		dist = extent / (2 * math.Tan(half*fitMargin))
		if dist < minDistance {
			dist = minDistance
		}
	}

	return Placement{
		Eye:      center.Add(viewOffset.Mul(dist)),
		Target:   center,
		Distance: dist,
		FOV:      DefaultFOV,
	}
}
