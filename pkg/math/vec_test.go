package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := 5.0
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero Normalize() = %v, want zero", z)
	}
}

func TestVec2Cross(t *testing.T) {
	x := Vec2{1, 0}
	y := Vec2{0, 1}
	if got := x.Cross(y); got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("Vec2.Cross() = %v, want -1", got)
	}
	if got := x.Cross(x.Scale(3)); got != 0 {
		t.Errorf("parallel Vec2.Cross() = %v, want 0", got)
	}
}

func TestVec2PerpAndRotate(t *testing.T) {
	east := Vec2{1, 0}
	if got := east.Perp(); got != (Vec2{0, 1}) {
		t.Errorf("Perp() = %v, want {0 1}", got)
	}

	r := east.Rotate(math.Sin(math.Pi/2), math.Cos(math.Pi/2))
	if !NearlyEqual(r.X, 0, 1e-12) || !NearlyEqual(r.Y, 1, 1e-12) {
		t.Errorf("Rotate(90°) = %v, want ~{0 1}", r)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		angle float64
		want  Vec2
	}{
		{0, Vec2{1, 0}},
		{math.Pi / 2, Vec2{0, 1}},
		{math.Pi, Vec2{-1, 0}},
		{3 * math.Pi / 2, Vec2{0, -1}},
	}
	for _, tt := range tests {
		got := FromAngle(tt.angle)
		if !NearlyEqual(got.X, tt.want.X, 1e-12) || !NearlyEqual(got.Y, tt.want.Y, 1e-12) {
			t.Errorf("FromAngle(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{Tau, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-18, 0},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if !NearlyEqual(got, tt.want, 1e-12) {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= Tau {
			t.Errorf("WrapAngle(%v) = %v, outside [0, 2π)", tt.in, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp low = %v", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp mid = %v", got)
	}
}
