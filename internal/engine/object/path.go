package object

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/relicview/internal/engine/geom"
)

const (
	// fallbackYawSpeed stands in for a zero speed when timing the yaw
	// turn, so the frame count never divides by zero.
	fallbackYawSpeed = 30

	// fallbackPitchFrames is the blend length used when a zero speed
	// makes distance/speed meaningless.
	fallbackPitchFrames = 4
)

// pathMotion advances an object along a looping polyline with smoothed
// yaw and, unless the type stays level, smoothed pitch-to-slope.
type pathMotion struct {
	points []mgl32.Vec3
	speed  float32

	// topOffset drops the object below the path reference by the top of
	// its bounding box; path points mark the attachment line, not the
	// object pivot.
	topOffset float32

	pathIndex int // -1 until the first update picks a start point
	target    mgl32.Vec3
	velocity  mgl32.Vec3

	yawStep   float32
	yawTarget float32

	// Pitch blend toward the slope of the current segment.
	adjustPitch bool
	blendAngle  float32
	blendStep   float32
	blendTarget float32
	lastPitch   float32
	reference   mgl32.Mat4
	axis        mgl32.Vec3
}

func newPathMotion(params MotionParams, def Definition, bbox geom.AABB) (*pathMotion, error) {
	if len(params.Path) == 0 {
		return nil, fmt.Errorf("path motion without path points")
	}
	if len(params.Path)%PathStride != 0 {
		return nil, fmt.Errorf("path data length %d is not a multiple of %d", len(params.Path), PathStride)
	}

	points := make([]mgl32.Vec3, 0, len(params.Path)/PathStride)
	for i := 0; i+2 < len(params.Path); i += PathStride {
		points = append(points, mgl32.Vec3{params.Path[i], params.Path[i+1], params.Path[i+2]})
	}

	speed := params.Speed
	if speed == SpeedDefault {
		speed = def.DefaultSpeed()
	}

	return &pathMotion{
		points:      points,
		speed:       speed,
		topOffset:   bbox.Max.Y(),
		pathIndex:   -1,
		adjustPitch: !def.StayLevel,
		reference:   mgl32.Ident4(),
	}, nil
}

func (m *pathMotion) Update(o *Object, dt float32, _ *rand.Rand) UpdateResult {
	if m.pathIndex < 0 {
		m.start(o)
		return ResultRebuilt
	}
	if dt <= 0 {
		return ResultRebuilt
	}

	if m.adjustPitch {
		m.advanceBasePitch(o, dt)
	}

	step := m.speed * dt
	remaining := m.target.Sub(o.Kin.Pos).Len()
	arrived := remaining <= step
	if arrived {
		// Movement is clamped to the segment end; the leftover distance
		// is absorbed rather than carried past the waypoint.
		m.targetNextPoint(o)
	}

	m.advanceYaw(o, dt)

	if !arrived {
		o.Kin.Pos = o.Kin.Pos.Add(m.velocity.Mul(dt))
	}
	return ResultRebuilt
}

// start picks the starting waypoint, snaps the object onto the path and
// aims it at the first target. It consumes the first update.
func (m *pathMotion) start(o *Object) {
	idx := m.startIndex(o.Kin.Pos)
	o.Kin.Pos[1] = m.points[idx].Y() - m.topOffset

	m.pathIndex = (idx + 1) % len(m.points)
	m.target = m.waypoint(m.pathIndex)

	seg := m.target.Sub(o.Kin.Pos)
	o.Kin.Euler[1] = headingTo(seg)
	m.yawTarget = o.Kin.Euler[1]
	m.velocity = geom.NormalizeTo(seg, m.speed)
}

// startIndex finds the nearest and second-nearest path points to pos.
// When the two candidates straddle the loop seam the start is forced to
// index 0; otherwise the later of the two wins.
func (m *pathMotion) startIndex(pos mgl32.Vec3) int {
	nearest, second := 0, 0
	nearestDist := float32(math32.MaxFloat32)
	secondDist := float32(math32.MaxFloat32)
	for i, p := range m.points {
		d := pos.Sub(p).Len()
		switch {
		case d < nearestDist:
			second, secondDist = nearest, nearestDist
			nearest, nearestDist = i, d
		case d < secondDist:
			second, secondDist = i, d
		}
	}

	if (nearest == 0 && second != 1) || (second == 0 && nearest != 1) {
		return 0
	}
	if second > nearest {
		return second
	}
	return nearest
}

// waypoint returns path point i shifted down by the bounding-box top.
func (m *pathMotion) waypoint(i int) mgl32.Vec3 {
	p := m.points[i]
	p[1] -= m.topOffset
	return p
}

// targetNextPoint snaps onto the current target, wraps to the next path
// point and retimes the yaw turn and pitch blend for the new segment.
func (m *pathMotion) targetNextPoint(o *Object) {
	o.Kin.Pos = m.target
	m.pathIndex = (m.pathIndex + 1) % len(m.points)
	m.target = m.waypoint(m.pathIndex)

	seg := m.target.Sub(o.Kin.Pos)
	dist := seg.Len()
	m.velocity = seg

	// Current facing comes from the composed transform, not the euler
	// state, so interrupted turns restart from where the model points.
	zAxis := geom.Axis(o.Kin.Final, 2)
	yaw := math32.Atan2(zAxis.X(), zAxis.Z())
	o.Kin.Euler[1] = yaw
	m.yawTarget = headingTo(seg)

	speed := m.speed
	if speed == 0 {
		speed = fallbackYawSpeed
	}
	frames := dist / speed
	if frames <= 0 {
		frames = 1
	}
	m.yawStep = geom.AngleDist(yaw, m.yawTarget) / frames

	if m.adjustPitch {
		m.retimePitch(o, dist)
	}

	m.velocity = geom.NormalizeTo(m.velocity, m.speed)
}

// headingTo is the yaw pointing a model at dir. The forward axis of the
// archived models is reversed, hence the half-turn offset.
func headingTo(dir mgl32.Vec3) float32 {
	return math32.Atan2(dir.X(), dir.Z()) + math32.Pi
}

// slopePitch is the signed inclination of v against the horizontal
// plane. Climbing tips the reversed-forward model nose down, so the
// sign flips when the vertical component rises above the horizontal
// reference.
func slopePitch(v mgl32.Vec3) float32 {
	horiz := mgl32.Vec3{v.X(), 0, v.Z()}
	hl := horiz.Len()
	vl := v.Len()
	if hl == 0 || vl == 0 {
		return 0
	}
	fwd := horiz.Mul(1 / hl)
	dot := mgl32.Clamp(v.Mul(1/vl).Dot(fwd), -1, 1)
	pitch := math32.Acos(dot)
	if v.Y() > fwd.Y() {
		pitch = -pitch
	}
	return pitch
}

// retimePitch starts a new pitch blend toward the slope of the segment
// just entered. velocity still holds the unnormalized segment here.
func (m *pathMotion) retimePitch(o *Object, dist float32) {
	m.reference = o.Kin.Base

	horiz := mgl32.Vec3{m.velocity.Z(), 0, -m.velocity.X()}
	if l := horiz.Len(); l > 0 {
		m.axis = horiz.Mul(1 / l)
	}

	pitch := slopePitch(m.velocity)
	var frames float32
	if m.speed == 0 {
		frames = fallbackPitchFrames
	} else {
		frames = dist / m.speed
		if frames <= 0 {
			frames = 1
		}
	}

	m.blendTarget = pitch - m.lastPitch
	m.blendStep = m.blendTarget / frames
	m.blendAngle = 0
	m.lastPitch = pitch
}

// advanceBasePitch runs the pitch-blend sub-state machine. A zero step
// means no blend is active.
func (m *pathMotion) advanceBasePitch(o *Object, dt float32) {
	if m.blendStep == 0 {
		return
	}
	m.blendAngle += m.blendStep * dt
	if (m.blendTarget-m.blendAngle)*m.blendStep <= 0 {
		// Blend done (or overshot): snap the base to the exact slope of
		// the current velocity and stop.
		m.blendAngle = m.blendTarget
		m.blendStep = 0
		o.Kin.Base = mgl32.HomogRotate3D(slopePitch(m.velocity), m.axis)
		return
	}
	o.Kin.Base = mgl32.HomogRotate3D(m.blendAngle, m.axis).Mul4(m.reference)
}

// advanceYaw steps the heading toward its target, snapping exactly onto
// it when the step would overshoot so the turn never oscillates.
func (m *pathMotion) advanceYaw(o *Object, dt float32) {
	if m.yawStep == 0 {
		return
	}
	o.Kin.Euler[1] += m.yawStep * dt
	if geom.AngleDist(o.Kin.Euler[1], m.yawTarget)*m.yawStep <= 0 {
		o.Kin.Euler[1] = m.yawTarget
		m.yawStep = 0
	}
}

// PathIndex reports the current waypoint index, -1 before the first
// update.
func (m *pathMotion) PathIndex() int {
	return m.pathIndex
}
