package scene

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/relicview/internal/engine/geom"
	"github.com/Faultbox/relicview/internal/engine/object"
	"github.com/Faultbox/relicview/internal/engine/render"
)

func TestFrameStep(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float32
	}{
		{"nominal frame", 1.0 / 30.0, 1},
		{"half frame", 1.0 / 60.0, 0.5},
		{"clamped frame drop", 1.0, 2},
		{"negative", -0.5, 0},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameStep(tt.dt)
			if diff := got - tt.want; diff > 1e-5 || diff < -1e-5 {
				t.Errorf("FrameStep(%v) = %v, want %v", tt.dt, got, tt.want)
			}
		})
	}
}

func spinner(t *testing.T, on, off int) *object.Object {
	t.Helper()
	o, err := object.New(
		object.Spawn{Type: object.TypeSignboard, DispOnArea: on, DispOffArea: off},
		&object.MotionParams{Kind: object.KindMisc, GlobalIndex: object.MiscSpin},
		[]*render.Instance{render.NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, geom.AABB{})},
	)
	if err != nil {
		t.Fatalf("object.New: %v", err)
	}
	return o
}

func TestStepUpdatesAllObjects(t *testing.T) {
	rec := &render.Recorder{}
	s := New(rec, rand.New(rand.NewSource(1)))
	a := spinner(t, 0, -1)
	b := spinner(t, 0, -1)
	s.Add(a)
	s.Add(b)

	s.Step(1.0 / 30.0)

	if a.Kin.Euler.Y() == 0 || b.Kin.Euler.Y() == 0 {
		t.Error("objects did not advance")
	}
	if len(rec.Submitted) != 2 {
		t.Errorf("submitted %d instances, want 2", len(rec.Submitted))
	}
}

func TestAreaControlsVisibilityNotUpdates(t *testing.T) {
	rec := &render.Recorder{}
	s := New(rec, rand.New(rand.NewSource(1)))
	o := spinner(t, 5, 8)
	s.Add(o)

	s.SetArea(2)
	s.Step(1.0 / 30.0)
	if o.Visible {
		t.Error("object visible outside its display range")
	}
	if o.Kin.Euler.Y() == 0 {
		t.Error("hidden object stopped updating")
	}
	if len(rec.Submitted) != 1 {
		t.Fatalf("hidden instances are still submitted, got %d", len(rec.Submitted))
	}
	if rec.Submitted[0].Visible {
		t.Error("submitted instance should carry the hidden flag")
	}

	rec.Reset()
	s.SetArea(6)
	s.Step(1.0 / 30.0)
	if !o.Visible {
		t.Error("object hidden inside its display range")
	}
	if !rec.Submitted[0].Visible {
		t.Error("submitted instance should be visible in area 6")
	}

	s.SetArea(8)
	s.Step(1.0 / 30.0)
	if o.Visible {
		t.Error("object visible at its off boundary")
	}
}

func TestSetAreaIdempotent(t *testing.T) {
	s := New(render.Discard{}, rand.New(rand.NewSource(1)))
	s.SetArea(3)
	s.SetArea(3)
	if s.Area() != 3 {
		t.Errorf("area = %d, want 3", s.Area())
	}
}
