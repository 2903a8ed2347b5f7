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

// Package region implements the scanline region builder for a CPU
// rasterizer: it turns a slice of already-monotone curve segments into an
// ordered stream of shade commands (per-pixel boundary coverage and
// horizontal span fills).
//
// Path parsing, monotone decomposition, GPU backends and the final pixel
// blit are out of scope; see pathadapter.go for the thin seam that connects
// this package to an upstream path/transform model.
package region
