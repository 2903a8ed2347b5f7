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

import "golang.org/x/image/math/f32"

// epsilon is the tolerance used throughout this package to collapse
// floating-point noise: ten units in the last place of float32, matching the
// reference rasterizer's RawHit ordering and SampleY/SampleX snapping.
const epsilon = 10 * f32Epsilon

// f32Epsilon is the machine epsilon for float32 (2^-23), matching Rust's
// std::f32::EPSILON.
const f32Epsilon = 1.1920929e-7

// V2 is a 2D point or vector with single-precision components.
type V2 struct {
	f32.Vec2
}

// NewV2 builds a V2 from individual components.
func NewV2(x, y float32) V2 {
	return V2{f32.Vec2{x, y}}
}

// X returns the first component.
func (v V2) X() float32 { return v.Vec2[0] }

// Y returns the second component.
func (v V2) Y() float32 { return v.Vec2[1] }

// Add returns v + w.
func (v V2) Add(w V2) V2 {
	return NewV2(v.X()+w.X(), v.Y()+w.Y())
}

// Sub returns v - w.
func (v V2) Sub(w V2) V2 {
	return NewV2(v.X()-w.X(), v.Y()-w.Y())
}

// Mul returns v scaled by s.
func (v V2) Mul(s float32) V2 {
	return NewV2(v.X()*s, v.Y()*s)
}

// Lerp returns the point t of the way from v to w.
func (v V2) Lerp(w V2, t float32) V2 {
	return v.Add(w.Sub(v).Mul(t))
}

// Bounds is a closed axis-aligned rectangle.
type Bounds struct {
	Min, Max V2
}

// ContainsY reports whether y lies within [Min.Y(), Max.Y()].
func (b Bounds) ContainsY(y float32) bool {
	return y >= b.Min.Y() && y <= b.Max.Y()
}

// ContainsX reports whether x lies within [Min.X(), Max.X()].
func (b Bounds) ContainsX(x float32) bool {
	return x >= b.Min.X() && x <= b.Max.X()
}

// Union returns the smallest Bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: NewV2(min(b.Min.X(), o.Min.X()), min(b.Min.Y(), o.Min.Y())),
		Max: NewV2(max(b.Max.X(), o.Max.X()), max(b.Max.Y(), o.Max.Y())),
	}
}

func boundsOfPoints(points ...V2) Bounds {
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = NewV2(min(b.Min.X(), p.X()), min(b.Min.Y(), p.Y()))
		b.Max = NewV2(max(b.Max.X(), p.X()), max(b.Max.Y(), p.Y()))
	}
	return b
}
