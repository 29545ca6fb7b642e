package core

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}

func TestVec3_DotCrossSymmetry(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
	}{
		{"axes", NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"arbitrary", NewVec3(1.5, -2, 3), NewVec3(-0.25, 4, 7)},
		{"parallel", NewVec3(2, 2, 2), NewVec3(-1, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.Dot(tt.b) != tt.b.Dot(tt.a) {
				t.Errorf("Expected dot to be symmetric, got %f and %f", tt.a.Dot(tt.b), tt.b.Dot(tt.a))
			}
			if tt.a.Cross(tt.b) != tt.b.Cross(tt.a).Negate() {
				t.Errorf("Expected cross(a,b) == -cross(b,a), got %v and %v", tt.a.Cross(tt.b), tt.b.Cross(tt.a))
			}
			if tt.a.LengthSquared() != tt.a.Dot(tt.a) {
				t.Errorf("Expected LengthSquared == Dot(v,v), got %f and %f", tt.a.LengthSquared(), tt.a.Dot(tt.a))
			}
		})
	}
}

func TestVec3_CrossIsRightHanded(t *testing.T) {
	got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0))
	if got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = z, got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12)
	unit, err := v.Normalize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(unit.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}

	// Normalizing an already-unit vector should be a no-op up to rounding
	again, err := unit.Normalize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !vecNear(unit, again, 1e-12) {
		t.Errorf("Expected idempotent normalize, got %v then %v", unit, again)
	}
}

func TestVec3_NormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"zero", Vec3{}},
		{"infinite", NewVec3(math.Inf(1), 0, 0)},
		{"nan", NewVec3(math.NaN(), 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.v.Normalize()
			if !errors.Is(err, ErrDegenerateVector) {
				t.Errorf("Expected ErrDegenerateVector, got %v", err)
			}

			v := tt.v
			if err := v.NormalizeInPlace(); !errors.Is(err, ErrDegenerateVector) {
				t.Errorf("Expected ErrDegenerateVector from NormalizeInPlace, got %v", err)
			}
		})
	}
}

func TestVec3_NormalizeInPlace(t *testing.T) {
	v := NewVec3(0, 0, -5)
	if err := v.NormalizeInPlace(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != NewVec3(0, 0, -1) {
		t.Errorf("Expected (0,0,-1), got %v", v)
	}
}

func TestVec3_MustNormalizePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrDegenerateVector) {
			t.Errorf("Expected panic with ErrDegenerateVector, got %v", r)
		}
	}()
	Vec3{}.MustNormalize()
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-9, 1e-7, 0).NearZero() {
		t.Error("Expected vector with a 1e-7 component not to be near zero")
	}
}

func TestVec3_At(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for i, want := range []float64{1, 2, 3} {
		got, err := v.At(i)
		if err != nil || got != want {
			t.Errorf("At(%d): expected %f, got %f (err %v)", i, want, got, err)
		}
	}
	for _, i := range []int{-1, 3} {
		if _, err := v.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if _, err := NewVec4(1, 2, 3, 4).At(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Vec4.At(4): expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := NewVec2(1, 2).At(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Vec2.At(2): expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	got := Reflect(v, n)
	if got != NewVec3(1, 1, 0) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}

func TestRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("normal incidence passes straight through", func(t *testing.T) {
		got, ok := Refract(NewVec3(0, -1, 0), n, 1/1.5)
		if !ok {
			t.Fatal("Expected refraction at normal incidence")
		}
		if !vecNear(got, NewVec3(0, -1, 0), tolerance) {
			t.Errorf("Expected (0,-1,0), got %v", got)
		}
	})

	t.Run("obeys snell's law", func(t *testing.T) {
		theta := math.Pi / 6
		uv := NewVec3(math.Sin(theta), -math.Cos(theta), 0)
		eta := 1 / 1.5
		got, ok := Refract(uv, n, eta)
		if !ok {
			t.Fatal("Expected refraction")
		}
		if math.Abs(got.Length()-1) > 1e-9 {
			t.Errorf("Expected unit refracted direction, got length %f", got.Length())
		}
		sinOut := got.X
		if math.Abs(sinOut-eta*math.Sin(theta)) > 1e-9 {
			t.Errorf("Expected sin(theta_t) = %f, got %f", eta*math.Sin(theta), sinOut)
		}
	})

	t.Run("signals total internal reflection", func(t *testing.T) {
		theta := 60 * math.Pi / 180 // past the ~41.8 degree critical angle for glass->air
		uv := NewVec3(math.Sin(theta), -math.Cos(theta), 0)
		if _, ok := Refract(uv, n, 1.5); ok {
			t.Error("Expected total internal reflection to be reported")
		}
	})
}

func TestVec4_Conversions(t *testing.T) {
	v := NewVec3(1, 2, 3).Vec4(1)
	if v != NewVec4(1, 2, 3, 1) {
		t.Errorf("Expected (1,2,3,1), got %v", v)
	}
	if v.Vec3() != NewVec3(1, 2, 3) {
		t.Errorf("Expected (1,2,3), got %v", v.Vec3())
	}
	if NewVec2(4, 5).Vec3(6) != NewVec3(4, 5, 6) {
		t.Errorf("Expected (4,5,6), got %v", NewVec2(4, 5).Vec3(6))
	}
}
