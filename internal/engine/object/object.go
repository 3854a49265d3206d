package object

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/relicview/internal/engine/geom"
	"github.com/Faultbox/relicview/internal/engine/render"
)

// Kinematics is the composed kinematic state shared by the motion and
// the transform rebuild. Euler holds {pitch, yaw, roll} offsets
// relative to the base frame; Base is the slowly blended
// ground-following frame; Final is the fully composed transform of the
// current frame.
type Kinematics struct {
	Pos   mgl32.Vec3
	Euler mgl32.Vec3
	Base  mgl32.Mat4
	Final mgl32.Mat4
}

// Object is one scripted scene object: its model instances, bounding
// box, optional motion and optional cosmetic animation.
type Object struct {
	Spawn Spawn
	Def   Definition
	BBox  geom.AABB
	Kin   Kinematics

	Models  []*render.Instance
	Visible bool

	motion Motion
	anim   AnimFunc
}

// New builds an object from its spawn record, optional motion
// parameters and model instances. The bounding box is the union of the
// instance boxes.
func New(spawn Spawn, params *MotionParams, models []*render.Instance) (*Object, error) {
	o := &Object{
		Spawn:   spawn,
		Def:     DefinitionFor(spawn.Type),
		Models:  models,
		Visible: true,
		anim:    AnimFuncFor(spawn.Type),
	}

	for i, inst := range models {
		if i == 0 {
			o.BBox = inst.BBox
		} else {
			o.BBox = o.BBox.Union(inst.BBox)
		}
	}

	o.Kin.Pos = mgl32.Vec3{spawn.Pos[0], spawn.Pos[1], spawn.Pos[2]}
	o.Kin.Euler = mgl32.Vec3{0, spawn.Yaw, 0}
	o.Kin.Base = mgl32.Ident4()

	if params != nil {
		motion, err := MotionFor(*params, spawn, o.Def, o.BBox)
		if err != nil {
			return nil, fmt.Errorf("object type %d: %w", spawn.Type, err)
		}
		o.motion = motion
	}

	o.compose()
	return o, nil
}

// HasMotion reports whether the object carries a motion behavior.
func (o *Object) HasMotion() bool {
	return o.motion != nil
}

// PathIndex returns the current waypoint index for path followers and
// -1 for everything else (or before path initialization).
func (o *Object) PathIndex() int {
	if pm, ok := o.motion.(*pathMotion); ok {
		return pm.PathIndex()
	}
	return -1
}

// UpdateVisibility compares the current area number against the spawn's
// display range. A DispOffArea of -1 never hides the object again.
func (o *Object) UpdateVisibility(area int) {
	o.Visible = area >= o.Spawn.DispOnArea &&
		(o.Spawn.DispOffArea == -1 || area < o.Spawn.DispOffArea)
}

// Update advances the object by dt frames and submits every instance to
// the sink. It runs even while the object is hidden so motion state
// stays warm when its area comes back into view.
func (o *Object) Update(dt float32, rng *rand.Rand, sink render.Sink) {
	if o.motion != nil {
		oldPos := o.Kin.Pos
		switch o.motion.Update(o, dt, rng) {
		case ResultRebuilt:
			o.compose()
		case ResultTranslated:
			// Orientation is unchanged; shift the existing matrices by
			// the position delta.
			delta := o.Kin.Pos.Sub(oldPos)
			geom.SetTranslation(&o.Kin.Final, o.Kin.Pos)
			for _, inst := range o.Models {
				geom.SetTranslation(&inst.World, geom.Translation(inst.World).Add(delta))
			}
		}
	}

	if o.anim != nil {
		o.anim(o, dt)
	}

	if sink != nil {
		for _, inst := range o.Models {
			inst.Visible = o.Visible
			sink.Submit(inst)
		}
	}
}

// compose rebuilds the final transform from euler, base and position,
// and every instance matrix from the final transform and its rest pose.
func (o *Object) compose() {
	local := geom.ComposeEuler(o.Kin.Euler)
	o.Kin.Final = o.Kin.Base.Mul4(local)
	geom.SetTranslation(&o.Kin.Final, o.Kin.Pos)
	for _, inst := range o.Models {
		inst.World = o.Kin.Final.Mul4(inst.RestPose())
	}
}
