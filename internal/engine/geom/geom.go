// Package geom provides small geometry helpers on top of mgl32 that the
// scene object system needs and mathgl does not ship: signed angular
// distance, normalize-to-length, Euler composition in the engine's
// rotation order, and matrix column access.
package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is an axis-aligned bounding box in model space.
type AABB struct {
	Min, Max mgl32.Vec3
}

// Height returns the vertical extent of the box.
func (b AABB) Height() float32 {
	return b.Max.Y() - b.Min.Y()
}

// Union returns the smallest box containing both a and b.
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: mgl32.Vec3{
			math32.Min(b.Min.X(), other.Min.X()),
			math32.Min(b.Min.Y(), other.Min.Y()),
			math32.Min(b.Min.Z(), other.Min.Z()),
		},
		Max: mgl32.Vec3{
			math32.Max(b.Max.X(), other.Max.X()),
			math32.Max(b.Max.Y(), other.Max.Y()),
			math32.Max(b.Max.Z(), other.Max.Z()),
		},
	}
}

// AngleDist returns the shortest signed difference to - from, in
// (-Pi, Pi]. The result is the rotation that moves from onto to.
func AngleDist(from, to float32) float32 {
	d := math32.Mod(to-from, 2*math32.Pi)
	if d > math32.Pi {
		d -= 2 * math32.Pi
	} else if d <= -math32.Pi {
		d += 2 * math32.Pi
	}
	return d
}

// NormalizeTo returns v scaled to length l. A zero vector stays zero.
func NormalizeTo(v mgl32.Vec3, l float32) mgl32.Vec3 {
	cur := v.Len()
	if cur == 0 {
		return v
	}
	return v.Mul(l / cur)
}

// ComposeEuler builds a rotation matrix from yaw-pitch-roll offsets
// stored as {pitch, yaw, roll}, applied in Y, X, Z order. This matches
// how placed models compose their rest rotation.
func ComposeEuler(euler mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.HomogRotate3DY(euler.Y())
	m = m.Mul4(mgl32.HomogRotate3DX(euler.X()))
	return m.Mul4(mgl32.HomogRotate3DZ(euler.Z()))
}

// Translation returns the translation column of m.
func Translation(m mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{m[12], m[13], m[14]}
}

// SetTranslation overwrites the translation column of m in place.
func SetTranslation(m *mgl32.Mat4, p mgl32.Vec3) {
	m[12] = p.X()
	m[13] = p.Y()
	m[14] = p.Z()
}

// Axis returns basis column i (0=X, 1=Y, 2=Z) of m as a direction.
func Axis(m mgl32.Mat4, i int) mgl32.Vec3 {
	return mgl32.Vec3{m[i*4], m[i*4+1], m[i*4+2]}
}
