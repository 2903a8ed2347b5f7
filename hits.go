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

// RawHit is a parametric crossing point on a single segment: either one of
// its two endpoints or a grid-line crossing found by SampleY/SampleX.
// Two RawHits with |t1-t2| <= 10*epsilon are considered equal.
type RawHit struct {
	Position V2
	T        float32
}

// rawHitSet is a sorted slice standing in for the reference implementation's
// BTreeSet<RawHit>: insertion keeps the slice ordered by t (with the epsilon
// tolerance collapsing near-duplicates), and re-inserting an equal t is a
// no-op, matching BTreeSet::insert's "keep the existing element" semantics.
type rawHitSet []RawHit

func (s *rawHitSet) insert(rh RawHit) {
	idx, found := s.search(rh.T)
	if found {
		return
	}
	*s = append(*s, RawHit{})
	copy((*s)[idx+1:], (*s)[idx:len(*s)-1])
	(*s)[idx] = rh
}

func (s rawHitSet) search(t float32) (idx int, found bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		d := t - s[mid].T
		if absF32(d) <= epsilon {
			return mid, true
		}
		if d < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, false
}

// Hit is a pixel-level event: "segment_id passes through pixel (X,Y) over
// y-range YRange." Hit identity is (X,Y) only; YRange and SegmentID are
// carried for the region walk's new-edge test (see regionlist.go).
type Hit struct {
	X, Y      int32
	YRange    [2]float32
	SegmentID int
}

// yRangeContains treats YRange as the half-open interval [lo, hi).
func (h Hit) yRangeContains(y float32) bool {
	return y >= h.YRange[0] && y < h.YRange[1]
}

// hitSet is a sorted slice standing in for the reference's
// BTreeSet<Hit>: ordered lexicographically by (Y, X), deduplicating on that
// key alone (exactly the reference's Hit::eq). Which of two same-pixel hits
// survives is implementation-defined, as documented in SPEC_FULL.md §4.3 and
// §9 — this implementation keeps the first one inserted.
type hitSet []Hit

func (s *hitSet) insert(h Hit) {
	idx, found := s.search(h.Y, h.X)
	if found {
		return
	}
	*s = append(*s, Hit{})
	copy((*s)[idx+1:], (*s)[idx:len(*s)-1])
	(*s)[idx] = h
}

func (s hitSet) search(y, x int32) (idx int, found bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		m := s[mid]
		switch {
		case m.Y == y && m.X == x:
			return mid, true
		case m.Y < y || (m.Y == y && m.X < x):
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// hitsFromSegments builds the global, scanline-ordered Hit set for all
// segments: each segment contributes its two endpoints plus every grid-line
// crossing, and consecutive raw hits on the same segment are merged into one
// Hit at the pixel containing their midpoint. A pair with no vertical extent
// (a horizontal piece) adds no Hit.
func hitsFromSegments(segments []Segment) []Hit {
	var global hitSet

	for id, seg := range segments {
		bounds := seg.Bounds()
		start, end := seg.Bookends()

		var raw rawHitSet
		raw.insert(RawHit{Position: start, T: 0})
		raw.insert(RawHit{Position: end, T: 1})

		lines := NewGridLines(bounds)
		for y := range lines.Horizontal() {
			if c, ok := seg.SampleY(float32(y)); ok {
				raw.insert(RawHit{Position: NewV2(c.Other, float32(y)), T: c.T})
			}
		}
		for x := range lines.Vertical() {
			if c, ok := seg.SampleX(float32(x)); ok {
				raw.insert(RawHit{Position: NewV2(float32(x), c.Other), T: c.T})
			}
		}

		for i := 0; i+1 < len(raw); i++ {
			a, b := raw[i], raw[i+1]
			lo, hi := min(a.Position.Y(), b.Position.Y()), max(a.Position.Y(), b.Position.Y())
			if lo == hi {
				continue
			}
			mid := a.Position.Add(b.Position).Mul(0.5)
			px := int32(math.Floor(float64(mid.X())))
			py := int32(math.Floor(float64(mid.Y())))
			global.insert(Hit{X: px, Y: py, YRange: [2]float32{lo, hi}, SegmentID: id})
		}
	}

	return global
}
