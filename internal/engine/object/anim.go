package object

import (
	"github.com/go-gl/mathgl/mgl32"
)

// AnimFunc applies a purely cosmetic per-frame rotation to specific
// sub-models. It mutates the instance matrices in place.
type AnimFunc func(o *Object, dt float32)

// Rotation axes for animated sub-parts.
const (
	axisX = iota
	axisY
	axisZ
)

// Spin rates in degrees per second for the animated parts.
const (
	wheelDegPerSec     = 720
	propellerDegPerSec = 1800
	rotorDegPerSec     = 1440
	tailRotorDegPerSec = 1080
	bladeDegPerSec     = 90
	ferrisDegPerSec    = 30
	paddleDegPerSec    = 45
)

// animTable maps object types to their animation. Types without an
// entry have no cosmetic animation.
var animTable = map[TypeID]AnimFunc{
	TypeSedan:        animWheels,
	TypeCoupe:        animWheels,
	TypeWagon:        animWheels,
	TypeTaxi:         animWheels,
	TypeBus:          animWheels,
	TypeMinibus:      animWheels,
	TypeTruck:        animWheels,
	TypeTanker:       animWheels,
	TypeVan:          animWheels,
	TypePickup:       animWheels,
	TypePatrolCar:    animWheels,
	TypeAmbulance:    animWheels,
	TypeFireTruck:    animWheels,
	TypeTram:         animWheels,
	TypeForklift:     animWheels,
	TypeScooter:      animWheels,
	TypeTractor:      animWheels,
	TypeHauler:       animWheels,
	TypeSweeper:      animWheels,
	TypeDeliveryBike: animWheels,

	TypePropPlane:   animPropeller,
	TypeHelicopter:  animRotors,
	TypeWindmill:    animBlades,
	TypeFerrisWheel: animFerrisWheel,
	TypeWaterWheel:  animPaddleWheel,
}

// AnimFuncFor returns the per-frame animation for a type, or nil when
// the type has none.
func AnimFuncFor(t TypeID) AnimFunc {
	return animTable[t]
}

// spinPart rotates sub-model index about one fixed axis, accumulating
// the angle into the instance's animation euler. The rate constant is
// scaled to radians per frame.
func spinPart(o *Object, index, axis int, degPerSec, dt float32) {
	if index >= len(o.Models) {
		return
	}
	inst := o.Models[index]
	step := mgl32.DegToRad(degPerSec/-60) * dt
	inst.AnimEuler[axis] += step

	var rot mgl32.Mat4
	switch axis {
	case axisX:
		rot = mgl32.HomogRotate3DX(step)
	case axisY:
		rot = mgl32.HomogRotate3DY(step)
	default:
		rot = mgl32.HomogRotate3DZ(step)
	}
	inst.World = inst.World.Mul4(rot)
}

// animWheels spins the wheel sub-models of every street vehicle.
// Wheels only turn while the vehicle actually moves.
func animWheels(o *Object, dt float32) {
	if o.motion == nil {
		return
	}
	spinPart(o, 1, axisX, wheelDegPerSec, dt)
	spinPart(o, 2, axisX, wheelDegPerSec, dt)
}

func animPropeller(o *Object, dt float32) {
	spinPart(o, 1, axisZ, propellerDegPerSec, dt)
}

func animRotors(o *Object, dt float32) {
	spinPart(o, 1, axisY, rotorDegPerSec, dt)
	spinPart(o, 2, axisX, tailRotorDegPerSec, dt)
}

func animBlades(o *Object, dt float32) {
	spinPart(o, 1, axisZ, bladeDegPerSec, dt)
}

func animFerrisWheel(o *Object, dt float32) {
	spinPart(o, 1, axisZ, ferrisDegPerSec, dt)
}

func animPaddleWheel(o *Object, dt float32) {
	spinPart(o, 1, axisX, paddleDegPerSec, dt)
}
