// github.com/go-raster/region - a scanline region builder for 2D vector fills
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package region

import "math"

// segmentKind tags which analytic arm a Segment uses. Segment is a single
// tagged struct rather than an interface so the hit-enumeration and
// coverage-sampling hot paths never pay for dynamic dispatch.
type segmentKind uint8

const (
	kindLine segmentKind = iota
	kindQuadratic
	kindCubic
)

// Segment is one y-monotone parametric curve, C(t) for t in [0,1]. The
// caller (the monotonizer, out of scope for this package) guarantees C(t).y
// is weakly monotonic in t.
type Segment struct {
	kind           segmentKind
	p0, c0, c1, p1 V2
}

// NewLine returns a monotone line segment from p0 to p1.
func NewLine(p0, p1 V2) Segment {
	return Segment{kind: kindLine, p0: p0, p1: p1}
}

// NewQuadratic returns a monotone quadratic Bézier segment.
func NewQuadratic(p0, ctrl, p1 V2) Segment {
	return Segment{kind: kindQuadratic, p0: p0, c0: ctrl, p1: p1}
}

// NewCubic returns a monotone cubic Bézier segment.
func NewCubic(p0, ctrl0, ctrl1, p1 V2) Segment {
	return Segment{kind: kindCubic, p0: p0, c0: ctrl0, c1: ctrl1, p1: p1}
}

// Bookends returns (C(0), C(1)).
func (s Segment) Bookends() (start, end V2) {
	return s.p0, s.p1
}

// At evaluates C(t).
func (s Segment) At(t float32) V2 {
	switch s.kind {
	case kindLine:
		return s.p0.Lerp(s.p1, t)
	case kindQuadratic:
		omt := 1 - t
		return s.p0.Mul(omt * omt).Add(s.c0.Mul(2 * omt * t)).Add(s.p1.Mul(t * t))
	default: // kindCubic
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		return s.p0.Mul(omt2 * omt).
			Add(s.c0.Mul(3 * omt2 * t)).
			Add(s.c1.Mul(3 * omt * t2)).
			Add(s.p1.Mul(t2 * t))
	}
}

// Bounds returns the tight axis-aligned bounding box over t in [0,1].
func (s Segment) Bounds() Bounds {
	switch s.kind {
	case kindLine:
		return boundsOfPoints(s.p0, s.p1)
	case kindQuadratic:
		pts := []V2{s.p0, s.p1}
		for _, t := range quadraticExtrema(s.p0.X(), s.c0.X(), s.p1.X()) {
			pts = append(pts, s.At(t))
		}
		for _, t := range quadraticExtrema(s.p0.Y(), s.c0.Y(), s.p1.Y()) {
			pts = append(pts, s.At(t))
		}
		return boundsOfPoints(pts...)
	default: // kindCubic
		pts := []V2{s.p0, s.p1}
		for _, t := range cubicExtrema(s.p0.X(), s.c0.X(), s.c1.X(), s.p1.X()) {
			pts = append(pts, s.At(t))
		}
		for _, t := range cubicExtrema(s.p0.Y(), s.c0.Y(), s.c1.Y(), s.p1.Y()) {
			pts = append(pts, s.At(t))
		}
		return boundsOfPoints(pts...)
	}
}

// Crossing is the result of sampling a segment at a grid line: Other is the
// coordinate on the axis that was not queried (x for SampleY, y for
// SampleX), and T is the parametric position.
type Crossing struct {
	Other float32
	T     float32
}

// SampleY returns the unique t with C(t).y == y, if y lies within the
// segment's y-extent.
func (s Segment) SampleY(y float32) (Crossing, bool) {
	b := s.Bounds()
	if !b.ContainsY(y) {
		return Crossing{}, false
	}
	var t float32
	var ok bool
	switch s.kind {
	case kindLine:
		t, ok = solveLinear(s.p0.Y(), s.p1.Y(), y)
	case kindQuadratic:
		t, ok = solveQuadraticAxis(s.p0.Y(), s.c0.Y(), s.p1.Y(), y)
	default:
		t, ok = solveBisection(func(t float32) float32 { return s.At(t).Y() }, y)
	}
	if !ok {
		return Crossing{}, false
	}
	return Crossing{Other: s.At(t).X(), T: t}, true
}

// SampleX returns a t with C(t).x == x, if x lies within the segment's
// x-extent. Only meaningful when the segment is also x-monotone on the
// queried interval: when it is not, at most one crossing is returned and
// any second crossing is silently dropped (documented open question,
// inherited unchanged from the reference implementation).
func (s Segment) SampleX(x float32) (Crossing, bool) {
	b := s.Bounds()
	if !b.ContainsX(x) {
		return Crossing{}, false
	}
	var t float32
	var ok bool
	switch s.kind {
	case kindLine:
		t, ok = solveLinear(s.p0.X(), s.p1.X(), x)
	case kindQuadratic:
		t, ok = solveQuadraticAxis(s.p0.X(), s.c0.X(), s.p1.X(), x)
	default:
		t, ok = solveBisection(func(t float32) float32 { return s.At(t).X() }, x)
	}
	if !ok {
		return Crossing{}, false
	}
	return Crossing{Other: s.At(t).Y(), T: t}, true
}

// snapEndpoint snaps a solved t within 10*epsilon of 0 or 1 to the exact
// endpoint, keeping the samplers numerically stable there.
func snapEndpoint(t float32) float32 {
	if absF32(t) < epsilon {
		return 0
	}
	if absF32(t-1) < epsilon {
		return 1
	}
	return t
}

func absF32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// solveLinear solves (1-t)*a + t*b == target for t, returning ok == false
// when the line is degenerate (a == b) or the root falls outside [0,1]
// after endpoint snapping.
func solveLinear(a, b, target float32) (float32, bool) {
	if a == b {
		return 0, false
	}
	t := (target - a) / (b - a)
	t = snapEndpoint(t)
	if t < 0 || t > 1 {
		return 0, false
	}
	return t, true
}

// solveQuadraticAxis solves the scalar quadratic Bézier a0*(1-t)^2 +
// 2*a1*(1-t)*t + a2*t^2 == target for the root in [0,1]. The segment is
// guaranteed monotone on this axis by construction, so that root is unique.
func solveQuadraticAxis(a0, a1, a2, target float32) (float32, bool) {
	a := a0 - 2*a1 + a2
	b := 2 * (a1 - a0)
	c := a0 - target
	if absF32(a) < f32Epsilon {
		return solveLinear(a0, a2, target)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		if disc > -epsilon {
			disc = 0
		} else {
			return 0, false
		}
	}
	sq := float32(math.Sqrt(float64(disc)))
	for _, t := range [2]float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
		st := snapEndpoint(t)
		if st >= 0 && st <= 1 {
			return st, true
		}
	}
	return 0, false
}

// quadraticExtrema returns the t in (0,1) where the derivative of the
// scalar quadratic Bézier a0,a1,a2 vanishes, if any.
func quadraticExtrema(a0, a1, a2 float32) []float32 {
	denom := a0 - 2*a1 + a2
	if absF32(denom) < f32Epsilon {
		return nil
	}
	t := (a0 - a1) / denom
	if t > 0 && t < 1 {
		return []float32{t}
	}
	return nil
}

// cubicExtrema returns the t in (0,1) where the derivative of the scalar
// cubic Bézier a0,a1,a2,a3 vanishes.
func cubicExtrema(a0, a1, a2, a3 float32) []float32 {
	d0 := a1 - a0
	d1 := a2 - a1
	d2 := a3 - a2
	a := d0 - 2*d1 + d2
	b := 2 * (d1 - d0)
	c := d0
	var roots []float32
	if absF32(a) < f32Epsilon {
		if absF32(b) >= f32Epsilon {
			t := -c / b
			if t > 0 && t < 1 {
				roots = append(roots, t)
			}
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := float32(math.Sqrt(float64(disc)))
	for _, t := range [2]float32{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}
	return roots
}

// solveBisection finds t in [0,1] with f(t) == target to within 10*epsilon,
// assuming f is monotone over [0,1] (the segment's monotonicity guarantee).
// Used for cubic samplers, where no closed-form root exists.
func solveBisection(f func(float32) float32, target float32) (float32, bool) {
	lo, hi := float32(0), float32(1)
	flo, fhi := f(lo), f(hi)
	if flo == fhi {
		return 0, false
	}
	increasing := fhi > flo
	if (increasing && (target < flo || target > fhi)) || (!increasing && (target > flo || target < fhi)) {
		return 0, false
	}
	t := lo
	for range 64 {
		t = (lo + hi) / 2
		ft := f(t)
		if absF32(ft-target) < epsilon {
			break
		}
		if (ft < target) == increasing {
			lo = t
		} else {
			hi = t
		}
	}
	return snapEndpoint(t), true
}
