// Package scene drives the per-frame update of all scripted objects:
// real time is converted to nominal 30fps frames, visibility is
// resolved from the current area number, and finished instances are
// handed to the render sink.
package scene

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/relicview/internal/engine/object"
	"github.com/Faultbox/relicview/internal/engine/render"
	"github.com/Faultbox/relicview/internal/logger"
)

const (
	// framePeriod is the nominal frame length in seconds. All motion
	// rates are expressed per frame at this cadence.
	framePeriod = 1.0 / 30.0

	// maxFrameStep bounds the simulation step under frame drops.
	maxFrameStep = 2.0
)

// Scene owns the scripted objects of one loaded map.
type Scene struct {
	objects []*object.Object
	area    int
	rng     *rand.Rand
	sink    render.Sink
}

// New creates an empty scene updating into sink. The random source
// feeds the timer-based motions; tests pass a seeded one.
func New(sink render.Sink, rng *rand.Rand) *Scene {
	return &Scene{sink: sink, rng: rng}
}

// Add inserts an object into the scene.
func (s *Scene) Add(o *object.Object) {
	s.objects = append(s.objects, o)
}

// Objects returns the scene's objects in spawn order.
func (s *Scene) Objects() []*object.Object {
	return s.objects
}

// Area returns the current area number.
func (s *Scene) Area() int {
	return s.area
}

// SetArea changes the current area number used for visibility.
func (s *Scene) SetArea(area int) {
	if area == s.area {
		return
	}
	s.area = area
	if logger.Log != nil {
		logger.Debug("scene area changed", zap.Int("area", area))
	}
}

// FrameStep converts elapsed real time to frames at the nominal
// cadence, clamped to bound the worst-case step.
func FrameStep(dtSeconds float64) float32 {
	dt := float32(dtSeconds / framePeriod)
	if dt < 0 {
		return 0
	}
	if dt > maxFrameStep {
		return maxFrameStep
	}
	return dt
}

// Step advances every object by the elapsed real time. Hidden objects
// still update so their motion state stays warm.
func (s *Scene) Step(dtSeconds float64) {
	dt := FrameStep(dtSeconds)
	for _, o := range s.objects {
		o.UpdateVisibility(s.area)
		o.Update(dt, s.rng, s.sink)
	}
}
