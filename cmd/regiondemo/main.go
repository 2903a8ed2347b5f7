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

// Command regiondemo rasterizes a handful of built-in paths with the
// region package and writes each result to a PNG, for eyeballing the
// scanline builder's output without a full PDF toolchain.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	geompath "seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/go-raster/region"
)

type demo struct {
	name          string
	width, height int
	path          *geompath.Data
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func triangle() *geompath.Data {
	return (&geompath.Data{}).
		MoveTo(pt(4, 4)).
		LineTo(pt(28, 4)).
		LineTo(pt(16, 28)).
		Close()
}

func circle() *geompath.Data {
	const (
		cx, cy = 16.0, 16.0
		r      = 12.0
		k      = 0.5522847498307936
	)
	o := r * k
	return (&geompath.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-o), pt(cx+o, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-o, cy-r), pt(cx-r, cy-o), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+o), pt(cx-o, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+o, cy+r), pt(cx+r, cy+o), pt(cx+r, cy)).
		Close()
}

var demos = []demo{
	{name: "triangle", width: 32, height: 32, path: triangle()},
	{name: "circle", width: 32, height: 32, path: circle()},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "regiondemo:", err)
		os.Exit(1)
	}
}

func run() error {
	outDir := "out"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, d := range demos {
		segments, err := region.SegmentsFromPath(d.path, matrix.Identity)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}

		rl := region.NewRegionList(segments)

		img := image.NewAlpha(image.Rect(0, 0, d.width, d.height))
		region.Render(rl, region.Depth16, d.width, d.height, img.Stride, img.Pix)

		outPath := filepath.Join(outDir, d.name+".png")
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		err = png.Encode(f, img)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("%s: encoding png: %w", d.name, err)
		}
		if closeErr != nil {
			return fmt.Errorf("%s: %w", d.name, closeErr)
		}

		fmt.Println("wrote", outPath)
	}

	return nil
}
