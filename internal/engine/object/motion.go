package object

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/relicview/internal/engine/geom"
)

// MotionKind is the motion-kind code from the spawn's motion parameters.
type MotionKind uint8

const (
	KindNone MotionKind = iota
	KindCollisionPath
	KindSimplePath
	KindMisc
)

// Global motion indices for KindMisc, selecting one of the canned
// behaviors.
const (
	MiscSpin = iota
	MiscBob
	MiscFlip
	MiscSway
	MiscMole
)

// SpeedDefault is the sentinel meaning "use the type's speed-table
// entry" in MotionParams.Speed.
const SpeedDefault = -1

// PathStride is the number of floats per path point in the raw data.
// The fourth slot is present in the archives but unused.
const PathStride = 4

// MotionParams is the per-spawn motion record from the game data.
type MotionParams struct {
	Kind        MotionKind
	GlobalIndex int

	// Speed in world units per frame, or SpeedDefault.
	Speed float32

	// Path is a flat sequence of waypoints with stride PathStride.
	Path []float32
}

// UpdateResult tells the object what the motion changed this frame.
type UpdateResult uint8

const (
	// ResultTranslated means only the position moved; the existing
	// matrices just need their translation shifted.
	ResultTranslated UpdateResult = iota

	// ResultRebuilt means orientation changed and the composed
	// transform must be rebuilt from euler, base and position.
	ResultRebuilt
)

// Motion advances one object's kinematic state by dt frames. Motions
// are owned by exactly one Object and are never shared.
type Motion interface {
	Update(o *Object, dt float32, rng *rand.Rand) UpdateResult
}

// MotionFor builds the motion behavior for a spawn, or nil when the
// kind code carries no motion.
func MotionFor(params MotionParams, spawn Spawn, def Definition, bbox geom.AABB) (Motion, error) {
	switch params.Kind {
	case KindNone:
		return nil, nil
	case KindCollisionPath, KindSimplePath:
		return newPathMotion(params, def, bbox)
	case KindMisc:
		return miscMotionFor(params, spawn, bbox)
	default:
		return nil, fmt.Errorf("unknown motion kind %d", params.Kind)
	}
}

func miscMotionFor(params MotionParams, spawn Spawn, bbox geom.AABB) (Motion, error) {
	spawnPos := mgl32.Vec3{spawn.Pos[0], spawn.Pos[1], spawn.Pos[2]}
	switch params.GlobalIndex {
	case MiscSpin:
		return &spinMotion{rate: spinRadPerFrame}, nil
	case MiscBob:
		return &bobMotion{
			spawnY:    spawnPos.Y(),
			amplitude: bbox.Max.Y() * bobAmplitudeScale,
		}, nil
	case MiscFlip:
		return &flipMotion{rate: flipRadPerFrame}, nil
	case MiscSway:
		return &swayMotion{
			spawnPos: spawnPos,
			// The balance doll carries its own weighted base and tips
			// around its pivot; everything else tips around the bottom
			// of its bounding box.
			pivotBase: spawn.Type != TypeBalanceDoll,
		}, nil
	case MiscMole:
		return &moleMotion{
			spawnY: spawnPos.Y(),
			depth:  bbox.Height(),
			raised: true,
		}, nil
	default:
		return nil, fmt.Errorf("unknown global motion index %d", params.GlobalIndex)
	}
}

// Rates are expressed per nominal 30fps frame and scaled by dt.
const (
	spinRadPerFrame   = math32.Pi / 90 // full turn in 6 seconds
	flipRadPerFrame   = math32.Pi / 15 // full flip in one second
	bobRadPerFrame    = math32.Pi / 30 // two-second bob cycle
	bobDelayFrames    = 60
	bobAmplitudeScale = 0.15
	swayRadPerFrame   = 2 * math32.Pi / 72 // 72-frame sway period
	swayAmplitude     = math32.Pi / 18     // 10 degree lean
	moleRadPerFrame   = math32.Pi / 30     // half-cycle in 15 frames
	moleDelayMin      = 30
	moleDelayRange    = 60
)

// spinMotion turns the object about its yaw axis at a fixed rate.
type spinMotion struct {
	rate float32
}

func (m *spinMotion) Update(o *Object, dt float32, _ *rand.Rand) UpdateResult {
	o.Kin.Euler[1] += m.rate * dt
	return ResultRebuilt
}

// bobMotion oscillates vertical position around the spawn height after
// an initial random delay, so a row of buoys does not bob in lockstep.
type bobMotion struct {
	spawnY    float32
	amplitude float32

	armed bool
	delay float32
	phase float32
}

func (m *bobMotion) Update(o *Object, dt float32, rng *rand.Rand) UpdateResult {
	if !m.armed {
		m.delay = rng.Float32() * bobDelayFrames
		m.armed = true
	}
	if m.delay > 0 {
		m.delay -= dt
		return ResultTranslated
	}
	m.phase += bobRadPerFrame * dt
	o.Kin.Pos[1] = m.spawnY + math32.Sin(m.phase)*m.amplitude
	return ResultTranslated
}

// flipMotion tumbles the object forward continuously.
type flipMotion struct {
	rate float32
}

func (m *flipMotion) Update(o *Object, dt float32, _ *rand.Rand) UpdateResult {
	o.Kin.Euler[0] -= m.rate * dt
	return ResultRebuilt
}

// swayMotion rocks the object's roll sinusoidally. Unless the type is
// excluded, the position is recomputed so the object tips around the
// bottom of its bounding box instead of its pivot.
type swayMotion struct {
	spawnPos  mgl32.Vec3
	pivotBase bool

	phase float32
}

func (m *swayMotion) Update(o *Object, dt float32, _ *rand.Rand) UpdateResult {
	m.phase += swayRadPerFrame * dt
	roll := math32.Sin(m.phase) * swayAmplitude
	o.Kin.Euler[2] = roll

	if m.pivotBase {
		// Rotate the local up vector by the current roll, push it
		// through the current transform, and stand the object on the
		// fixed bottom point of its box.
		up := mgl32.TransformNormal(mgl32.Vec3{0, 1, 0}, mgl32.HomogRotate3DZ(roll))
		dir := mgl32.TransformNormal(up, o.Kin.Base)
		bottom := m.spawnPos.Add(mgl32.Vec3{0, o.BBox.Min.Y(), 0})
		o.Kin.Pos = bottom.Add(dir.Mul(-o.BBox.Min.Y()))
	}
	return ResultRebuilt
}

// moleMotion pops the object out of the ground and pulls it back under
// on a randomized timer, easing each move with a sine half-cycle.
type moleMotion struct {
	spawnY float32
	depth  float32

	raised bool
	moving bool
	timer  float32
	armed  bool
	phase  float32
}

func (m *moleMotion) Update(o *Object, dt float32, rng *rand.Rand) UpdateResult {
	if m.moving {
		m.phase += moleRadPerFrame * dt
		if m.phase >= math32.Pi/2 {
			m.phase = math32.Pi / 2
			m.moving = false
			m.timer = moleDelayMin + rng.Float32()*moleDelayRange
		}
		eased := math32.Sin(m.phase)
		if m.raised {
			o.Kin.Pos[1] = m.spawnY - m.depth*(1-eased)
		} else {
			o.Kin.Pos[1] = m.spawnY - m.depth*eased
		}
		return ResultTranslated
	}

	if !m.armed {
		m.timer = moleDelayMin + rng.Float32()*moleDelayRange
		m.armed = true
	}
	m.timer -= dt
	if m.timer <= 0 {
		m.raised = !m.raised
		m.phase = 0
		m.moving = true
	}
	return ResultTranslated
}
