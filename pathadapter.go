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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// SegmentsFromPath flattens the move/line/quad/cube/close commands of p
// into the tagged Segment form this package works on, applying ctm to
// every coordinate. Segments are not split at subpath boundaries: each
// MoveTo simply starts a new Bookends() chain, matching how the region
// walk already treats disjoint contours as independent edge lists.
//
// ctm must be invertible; a singular matrix is reported as an error (see
// SPEC_FULL.md §7), as is a LineTo, QuadTo or CubeTo before the first MoveTo.
func SegmentsFromPath(p *path.Data, ctm matrix.Matrix) ([]Segment, error) {
	det := ctm[0]*ctm[3] - ctm[1]*ctm[2]
	if det > -singularDetEpsilon && det < singularDetEpsilon {
		return nil, fmt.Errorf("region: singular transform")
	}

	apply := func(v vec.Vec2) V2 {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		return NewV2(float32(x), float32(y))
	}

	var segments []Segment
	var start, cur V2
	haveCurrent := false

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = apply(p.Coords[coordIdx])
			start = cur
			haveCurrent = true
			coordIdx++
		case path.CmdLineTo:
			if !haveCurrent {
				return nil, fmt.Errorf("region: LineTo before MoveTo")
			}
			next := apply(p.Coords[coordIdx])
			segments = append(segments, NewLine(cur, next))
			cur = next
			coordIdx++
		case path.CmdQuadTo:
			if !haveCurrent {
				return nil, fmt.Errorf("region: QuadTo before MoveTo")
			}
			ctrl := apply(p.Coords[coordIdx])
			next := apply(p.Coords[coordIdx+1])
			segments = append(segments, NewQuadratic(cur, ctrl, next))
			cur = next
			coordIdx += 2
		case path.CmdCubeTo:
			if !haveCurrent {
				return nil, fmt.Errorf("region: CubeTo before MoveTo")
			}
			c0 := apply(p.Coords[coordIdx])
			c1 := apply(p.Coords[coordIdx+1])
			next := apply(p.Coords[coordIdx+2])
			segments = append(segments, NewCubic(cur, c0, c1, next))
			cur = next
			coordIdx += 3
		case path.CmdClose:
			if haveCurrent && cur != start {
				segments = append(segments, NewLine(cur, start))
			}
			cur = start
		}
	}

	return segments, nil
}

// singularDetEpsilon bounds how close to zero the linear part's determinant
// can get before ctm is treated as singular.
const singularDetEpsilon = 1e-12

// BoundsToRect converts a Bounds to the geom package's rectangle type, for
// handing off to clipping-window code outside this package.
func BoundsToRect(b Bounds) rect.Rect {
	return rect.Rect{
		XMin: float64(b.Min.X()),
		YMin: float64(b.Min.Y()),
		XMax: float64(b.Max.X()),
		YMax: float64(b.Max.Y()),
	}
}

// RectToBounds converts a geom rectangle into the Bounds this package uses
// internally.
func RectToBounds(r rect.Rect) Bounds {
	return Bounds{
		Min: NewV2(float32(r.XMin), float32(r.YMin)),
		Max: NewV2(float32(r.XMax), float32(r.YMax)),
	}
}
