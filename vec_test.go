package sightmesh

import (
	"math"
	"testing"
)

func TestVec2_AddSub(t *testing.T) {
	tests := []struct {
		name string
		v, w Vec2
		sum  Vec2
		diff Vec2
	}{
		{"zero", V2(0, 0), V2(0, 0), V2(0, 0), V2(0, 0)},
		{"positive", V2(1, 2), V2(3, 4), V2(4, 6), V2(-2, -2)},
		{"mixed", V2(1, -2), V2(-3, 4), V2(-2, 2), V2(4, -6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Add(tt.w); !got.Approx(tt.sum, 1e-12) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, got, tt.sum)
			}
			if got := tt.v.Sub(tt.w); !got.Approx(tt.diff, 1e-12) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.v, tt.w, got, tt.diff)
			}
		})
	}
}

func TestVec2_Rotate(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec2
		angle float64
		want  Vec2
	}{
		{"zero angle", V2(1, 0), 0, V2(1, 0)},
		{"quarter turn", V2(1, 0), math.Pi / 2, V2(0, 1)},
		{"half turn", V2(1, 0), math.Pi, V2(-1, 0)},
		{"negative quarter", V2(1, 0), -math.Pi / 2, V2(0, -1)},
		{"45 degrees", V2(1, 0), math.Pi / 4, V2(math.Sqrt2/2, math.Sqrt2/2)},
		{"preserves length", V2(3, 4), 1.234, V2(3, 4).Rotate(1.234)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.angle)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.v, tt.angle, got, tt.want)
			}
			if math.Abs(got.Length()-tt.v.Length()) > 1e-12 {
				t.Errorf("rotation changed length: %v -> %v", tt.v.Length(), got.Length())
			}
		})
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"unit x", V2(1, 0), V2(1, 0)},
		{"scaled", V2(0, 5), V2(0, 1)},
		{"diagonal", V2(3, 4), V2(0.6, 0.8)},
		{"zero stays zero", V2(0, 0), V2(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Normalize(); !got.Approx(tt.want, 1e-12) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec2_Cross(t *testing.T) {
	tests := []struct {
		name string
		v, w Vec2
		want float64
	}{
		{"perpendicular", V2(1, 0), V2(0, 1), 1},
		{"reversed", V2(0, 1), V2(1, 0), -1},
		{"parallel", V2(2, 2), V2(4, 4), 0},
		{"general", V2(2, 3), V2(4, 1), -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Cross(tt.w); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.v, tt.w, got, tt.want)
			}
		})
	}
}

func TestVec2_Distance(t *testing.T) {
	if got := V2(1, 1).Distance(V2(4, 5)); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVec2_Atan2(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"east", V2(1, 0), 0},
		{"north", V2(0, 1), math.Pi / 2},
		{"west", V2(-1, 0), math.Pi},
		{"south", V2(0, -1), -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Atan2(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%v.Atan2() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
