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

import "iter"

// regionKind tags whether a region is a single boundary pixel or a run of
// fully-interior pixels.
type regionKind uint8

const (
	regionBoundary regionKind = iota
	regionSpan
)

// region is the internal output of the walk, before coverage sampling turns
// a Boundary into a public ShadeCommand.
type region struct {
	kind         regionKind
	x, y         int32 // valid for regionBoundary
	startX, endX int32 // valid for regionSpan
	spanY        int32
}

// absI32 returns the absolute value of an int32.
func absI32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// walkRegions is the heart of the region builder: it consumes the
// scanline-ordered Hit slice and emits Boundary/Span regions by tracking an
// even-odd winding number per row. See SPEC_FULL.md §4.4 for the full
// derivation of the gap test and new-edge test below.
func walkRegions(hits []Hit) iter.Seq[region] {
	return func(yield func(region) bool) {
		var y int32
		var lastHit *Hit
		var windingNumber int

		for i := range hits {
			hit := hits[i]

			if hit.Y != y {
				lastHit = nil
				windingNumber = 0
				y = hit.Y
			}

			isGap := lastHit != nil && absI32(lastHit.X-hit.X) > 1

			isNewEdge := lastHit == nil
			if lastHit != nil && lastHit.SegmentID != hit.SegmentID {
				isNewEdge = isGap ||
					lastHit.yRangeContains(hit.YRange[0]) ||
					lastHit.yRangeContains(hit.YRange[1]-f32Epsilon) ||
					hit.yRangeContains(lastHit.YRange[0]) ||
					hit.yRangeContains(lastHit.YRange[1]-f32Epsilon)
			}

			if isNewEdge {
				windingNumber++
			}

			var span region
			haveSpan := false
			if lastHit != nil && isNewEdge && isGap && windingNumber%2 == 0 {
				span = region{kind: regionSpan, startX: lastHit.X + 1, endX: hit.X, spanY: hit.Y}
				haveSpan = true
			}

			if !yield(region{kind: regionBoundary, x: hit.X, y: hit.Y}) {
				return
			}
			if haveSpan {
				if !yield(span) {
					return
				}
			}

			lastHit = &hits[i]
		}
	}
}

// ShadeCommand is the public output of the pipeline: either a Boundary
// (partial coverage) or a Span (fully interior run of pixels).
type ShadeCommand interface {
	isShadeCommand()
}

// BoundaryCommand shades a single pixel touched by the path's edge.
// Coverage is the estimated fraction of the pixel covered by the fill, in
// [0,1].
type BoundaryCommand struct {
	X, Y     int32
	Coverage float32
}

func (BoundaryCommand) isShadeCommand() {}

// SpanCommand shades the half-open pixel run [StartX, EndX) on row Y, which
// is entirely interior to the fill.
type SpanCommand struct {
	StartX, EndX int32
	Y            int32
}

func (SpanCommand) isShadeCommand() {}

// RegionList holds the segments and the hit set built from them, ready to
// be turned into a ShadeCommand stream.
type RegionList struct {
	hits     []Hit
	segments []Segment
}

// NewRegionList builds the hit set for segments. segments is retained (not
// copied) for the later coverage pass.
func NewRegionList(segments []Segment) *RegionList {
	return &RegionList{
		hits:     hitsFromSegments(segments),
		segments: segments,
	}
}

// ShadeCommands returns the lazy, single-pass stream of shade commands for
// this region list, sampling boundary coverage at the given depth. Ranging
// over the result more than once re-walks the same (already-built) hit set.
func (r *RegionList) ShadeCommands(depth SampleDepth) iter.Seq[ShadeCommand] {
	hits := r.hits
	segments := r.segments
	return func(yield func(ShadeCommand) bool) {
		for reg := range walkRegions(hits) {
			switch reg.kind {
			case regionBoundary:
				c := coverage(NewV2(float32(reg.x), float32(reg.y)), depth, segments)
				if !yield(BoundaryCommand{X: reg.x, Y: reg.y, Coverage: c}) {
					return
				}
			case regionSpan:
				if !yield(SpanCommand{StartX: reg.startX, EndX: reg.endX, Y: reg.spanY}) {
					return
				}
			}
		}
	}
}
