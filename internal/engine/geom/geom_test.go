package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestAngleDist(t *testing.T) {
	tests := []struct {
		name     string
		from, to float32
		want     float32
	}{
		{"zero", 1.0, 1.0, 0},
		{"forward", 0, math32.Pi / 2, math32.Pi / 2},
		{"backward", math32.Pi / 2, 0, -math32.Pi / 2},
		{"wrap positive", -3 * math32.Pi / 4, 3 * math32.Pi / 4, -math32.Pi / 2},
		{"wrap negative", 3 * math32.Pi / 4, -3 * math32.Pi / 4, math32.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleDist(tt.from, tt.to)
			if math32.Abs(got-tt.want) > 1e-5 {
				t.Errorf("AngleDist(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestAngleDistShortest(t *testing.T) {
	// Whatever the inputs, the result never exceeds half a turn.
	for from := float32(-7); from < 7; from += 0.37 {
		for to := float32(-7); to < 7; to += 0.41 {
			d := AngleDist(from, to)
			if d > math32.Pi || d <= -math32.Pi {
				t.Fatalf("AngleDist(%v, %v) = %v, outside (-Pi, Pi]", from, to, d)
			}
		}
	}
}

func TestNormalizeTo(t *testing.T) {
	v := NormalizeTo(mgl32.Vec3{3, 0, 4}, 10)
	if math32.Abs(v.Len()-10) > 1e-5 {
		t.Errorf("NormalizeTo length = %v, want 10", v.Len())
	}
	zero := NormalizeTo(mgl32.Vec3{}, 5)
	if zero.Len() != 0 {
		t.Errorf("NormalizeTo of zero vector = %v, want zero", zero)
	}
}

func TestTranslationRoundTrip(t *testing.T) {
	m := mgl32.Ident4()
	p := mgl32.Vec3{1, -2, 3}
	SetTranslation(&m, p)
	if got := Translation(m); got != p {
		t.Errorf("Translation = %v, want %v", got, p)
	}
}

func TestAxisOfYawRotation(t *testing.T) {
	// A pure yaw of 90 degrees maps the Z axis onto +X.
	m := mgl32.HomogRotate3DY(math32.Pi / 2)
	z := Axis(m, 2)
	want := mgl32.Vec3{1, 0, 0}
	if z.Sub(want).Len() > 1e-5 {
		t.Errorf("Axis(m, 2) = %v, want %v", z, want)
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{-1, 0, -1}, Max: mgl32.Vec3{1, 2, 1}}
	b := AABB{Min: mgl32.Vec3{0, -3, 0}, Max: mgl32.Vec3{4, 1, 0}}
	u := a.Union(b)
	if u.Min != (mgl32.Vec3{-1, -3, -1}) || u.Max != (mgl32.Vec3{4, 2, 1}) {
		t.Errorf("Union = %+v", u)
	}
	if u.Height() != 5 {
		t.Errorf("Height = %v, want 5", u.Height())
	}
}

func TestComposeEulerYawOnly(t *testing.T) {
	got := ComposeEuler(mgl32.Vec3{0, math32.Pi / 2, 0})
	want := mgl32.HomogRotate3DY(math32.Pi / 2)
	for i := range got {
		if math32.Abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("ComposeEuler yaw-only mismatch at %d: %v vs %v", i, got[i], want[i])
		}
	}
}
