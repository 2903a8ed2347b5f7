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

// Render rasterizes rl's shade command stream into buf, a width*height
// grayscale buffer in row-major order with the given stride. Each byte
// holds coverage from 0 (transparent) to 255 (opaque). buf is not cleared
// first; callers that need a fresh image must zero it themselves.
func Render(rl *RegionList, depth SampleDepth, width, height, stride int, buf []byte) {
	for cmd := range rl.ShadeCommands(depth) {
		switch c := cmd.(type) {
		case BoundaryCommand:
			if c.X < 0 || c.X >= int32(width) || c.Y < 0 || c.Y >= int32(height) {
				continue
			}
			buf[int(c.Y)*stride+int(c.X)] = byte(c.Coverage*255 + 0.5)
		case SpanCommand:
			if c.Y < 0 || c.Y >= int32(height) {
				continue
			}
			start, end := c.StartX, c.EndX
			if start < 0 {
				start = 0
			}
			if end > int32(width) {
				end = int32(width)
			}
			row := int(c.Y) * stride
			for x := start; x < end; x++ {
				buf[row+int(x)] = 255
			}
		}
	}
}
