package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/relicview/internal/engine/geom"
)

func TestRestPoseTranslation(t *testing.T) {
	inst := NewInstance(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{}, geom.AABB{})
	pose := inst.RestPose()
	if got := geom.Translation(pose); got != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("rest pose translation = %v, want rest position", got)
	}
}

func TestRestPoseIncludesAnimEuler(t *testing.T) {
	inst := NewInstance(mgl32.Vec3{}, mgl32.Vec3{0, math32.Pi / 4, 0}, geom.AABB{})
	inst.AnimEuler[1] = math32.Pi / 4

	pose := inst.RestPose()
	want := mgl32.HomogRotate3DY(math32.Pi / 2)
	for i := 0; i < 12; i++ { // rotation part only
		if math32.Abs(pose[i]-want[i]) > 1e-5 {
			t.Fatalf("rest pose rotation mismatch at %d: %v vs %v", i, pose[i], want[i])
		}
	}
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	a := NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, geom.AABB{})
	b := NewInstance(mgl32.Vec3{}, mgl32.Vec3{}, geom.AABB{})

	rec.Submit(a)
	rec.Submit(b)
	if len(rec.Submitted) != 2 {
		t.Fatalf("recorded %d instances, want 2", len(rec.Submitted))
	}
	if rec.Submitted[0] != a || rec.Submitted[1] != b {
		t.Error("recorder lost submission order")
	}

	rec.Reset()
	if len(rec.Submitted) != 0 {
		t.Errorf("reset left %d instances", len(rec.Submitted))
	}
}
