package geo

import (
	"math"
	"testing"
)

func TestIsClose(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		expect bool
	}{
		{"equal", 1, 1, true},
		{"zero", 0, 0, true},
		{"atol boundary", 0, 1e-8, true},
		{"beyond atol", 0, 2e-8, false},
		{"relative", 100, 100.0005, true},
		{"beyond relative", 100, 100.01, false},
		{"nan", math.NaN(), math.NaN(), false},
		{"infinities", math.Inf(1), math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClose(tt.a, tt.b); got != tt.expect {
				t.Errorf("IsClose(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestIsCloseAsymmetric(t *testing.T) {
	a, b := 1e6, 1e6+10.00005
	if !IsClose(a, b) || IsClose(b, a) {
		t.Errorf("IsClose(%v, %v) = %v, IsClose(%v, %v) = %v; want true, false",
			a, b, IsClose(a, b), b, a, IsClose(b, a))
	}
}

func TestTolerance(t *testing.T) {
	if got := DefaultTolerance(); got != (Tolerance{Abs: ATol, Rel: RTol}) {
		t.Errorf("DefaultTolerance() = %+v", got)
	}

	var exact Tolerance
	if !exact.Close(1, 1) || exact.Close(1, 1+1e-12) {
		t.Error("zero Tolerance should compare exactly")
	}

	loose := Tolerance{Abs: 0.1}
	if !loose.PointsClose(Pt(1, 1), Pt(1.05, 0.95)) {
		t.Error("loose.PointsClose = false, want true")
	}
	if loose.PointsClose(Pt(1, 1), Pt(1.05, 0.8)) {
		t.Error("loose.PointsClose = true, want false")
	}

	s := Seg(Pt(0, 0), Pt(1, 1))
	if !loose.SegmentsClose(s, Seg(Pt(0.05, 0), Pt(1, 1.05))) {
		t.Error("loose.SegmentsClose = false, want true")
	}
	if loose.SegmentsClose(s, s.Reverse()) {
		t.Error("loose.SegmentsClose of reversed segment = true, want false")
	}
}

func TestIsCloseIgnoresCustomTolerance(t *testing.T) {
	loose := Tolerance{Abs: 10}
	p, q := Pt(0, 0), Pt(1, 1)

	if !loose.PointsClose(p, q) {
		t.Fatalf("loose.PointsClose(%v, %v) = false, want true", p, q)
	}
	if p.IsClose(q) {
		t.Errorf("%v.IsClose(%v) = true, want false", p, q)
	}
	if Seg(p, p).IsClose(Seg(q, q)) {
		t.Errorf("segment IsClose followed a custom Tolerance")
	}
	if IsClose(0, 1) {
		t.Error("IsClose(0, 1) = true, want false")
	}

	// The defaults are a fresh copy on every call.
	d := DefaultTolerance()
	d.Abs = 10
	if got := DefaultTolerance(); got == d {
		t.Errorf("DefaultTolerance() = %+v after modifying a copy", got)
	}
}
