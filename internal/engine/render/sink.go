// Package render defines the narrow surface the object system uses to
// hand finished model instances to the viewer's draw path. The GPU side
// lives outside this module; anything that can accept an Instance per
// frame can act as a sink.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/relicview/internal/engine/geom"
)

// Instance is one renderable sub-model of a scene object. The rest pose
// is the model's local offset from the object pivot; World is rebuilt or
// shifted by the owning object every frame.
type Instance struct {
	RestPos   mgl32.Vec3
	RestEuler mgl32.Vec3

	// AnimEuler accumulates cosmetic rotation (wheels, blades) applied
	// on top of the rest rotation.
	AnimEuler mgl32.Vec3

	World   mgl32.Mat4
	BBox    geom.AABB
	Visible bool
}

// NewInstance returns an instance at the given rest pose with an
// identity world matrix.
func NewInstance(restPos, restEuler mgl32.Vec3, bbox geom.AABB) *Instance {
	return &Instance{
		RestPos:   restPos,
		RestEuler: restEuler,
		World:     mgl32.Ident4(),
		BBox:      bbox,
	}
}

// RestPose composes the local transform: rest translation with the rest
// rotation plus any accumulated animation rotation.
func (i *Instance) RestPose() mgl32.Mat4 {
	m := mgl32.Translate3D(i.RestPos.X(), i.RestPos.Y(), i.RestPos.Z())
	return m.Mul4(geom.ComposeEuler(i.RestEuler.Add(i.AnimEuler)))
}

// Sink receives finished instances once per frame.
type Sink interface {
	Submit(*Instance)
}

// Recorder is a Sink that remembers what was submitted. The CLI uses it
// for state dumps and tests use it to observe hand-off.
type Recorder struct {
	Submitted []*Instance
}

// Submit appends the instance to the record.
func (r *Recorder) Submit(inst *Instance) {
	r.Submitted = append(r.Submitted, inst)
}

// Reset clears the record between frames.
func (r *Recorder) Reset() {
	r.Submitted = r.Submitted[:0]
}

// Discard is a Sink that drops everything.
type Discard struct{}

// Submit implements Sink.
func (Discard) Submit(*Instance) {}
