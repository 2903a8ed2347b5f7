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

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

const benchKappa = 0.5522847498307936

func circleSegments(cx, cy, r float32) []Segment {
	k := r * benchKappa
	return []Segment{
		NewCubic(NewV2(cx+r, cy), NewV2(cx+r, cy-k), NewV2(cx+k, cy-r), NewV2(cx, cy-r)),
		NewCubic(NewV2(cx, cy-r), NewV2(cx-k, cy-r), NewV2(cx-r, cy-k), NewV2(cx-r, cy)),
		NewCubic(NewV2(cx-r, cy), NewV2(cx-r, cy+k), NewV2(cx-k, cy+r), NewV2(cx, cy+r)),
		NewCubic(NewV2(cx, cy+r), NewV2(cx+k, cy+r), NewV2(cx+r, cy+k), NewV2(cx+r, cy)),
	}
}

func BenchmarkShadeCommandsCircle(b *testing.B) {
	segments := circleSegments(64, 64, 60)

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		rl := NewRegionList(segments)
		for range rl.ShadeCommands(Depth8) {
		}
	}
}

func BenchmarkCoverageSamplingDepths(b *testing.B) {
	segments := circleSegments(64, 64, 60)
	pixel := NewV2(64, 4) // near the top boundary of the circle

	for _, depth := range []SampleDepth{Depth1, Depth4, Depth8, Depth16, Depth32, Depth64} {
		b.Run("", func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()
			for b.Loop() {
				coverage(pixel, depth, segments)
			}
		})
	}
}

// BenchmarkVectorCircle benchmarks golang.org/x/image/vector's signed-area
// accumulation rasterizer on the same circle, as a reference point for how
// the scanline region builder compares against a conventional rasterizer.
func BenchmarkVectorCircle(b *testing.B) {
	const cx, cy, r = 64.0, 64.0, 60.0
	const k = benchKappa
	src := image.NewUniform(color.Alpha{A: 255})

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		rast := vector.NewRasterizer(128, 128)
		rast.MoveTo(cx+r, cy)
		rast.CubeTo(cx+r, cy-r*k, cx+r*k, cy-r, cx, cy-r)
		rast.CubeTo(cx-r*k, cy-r, cx-r, cy-r*k, cx-r, cy)
		rast.CubeTo(cx-r, cy+r*k, cx-r*k, cy+r, cx, cy+r)
		rast.CubeTo(cx+r*k, cy+r, cx+r, cy+r*k, cx+r, cy)
		rast.ClosePath()
		dst := image.NewAlpha(image.Rect(0, 0, 128, 128))
		rast.Draw(dst, dst.Bounds(), src, image.Point{})
	}
}
