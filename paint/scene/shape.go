// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/paint/mesh"
	"cogentcore.org/meshbuf/paint/texture"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

// MaxGridCells is the largest number of cells a grid shape may have.
const MaxGridCells = 1 << 22

// Shape is one shape of a [Scene].
type Shape struct {

	// Kind is the kind of shape: "rect", "grid" or "glyph".
	Kind string `toml:"kind" yaml:"kind"`

	// Rect is the rectangle as x0, y0, x1, y1. For a grid,
	// it is the first cell.
	Rect [4]float32 `toml:"rect" yaml:"rect"`

	// UV is the texture rectangle as u0, v0, u1, v1.
	// If unset, it is the whole texture, or the white texel
	// for untextured shapes.
	UV [4]float32 `toml:"uv,omitempty" yaml:"uv,omitempty"`

	// Color is the unpremultiplied color as #rgb, #rrggbb, #rrggbbaa or
	// a CSS color name. It defaults to white.
	Color string `toml:"color,omitempty" yaml:"color,omitempty"`

	// Texture is "none", "managed:N" or "user:N"; see [texture.Parse].
	Texture string `toml:"texture,omitempty" yaml:"texture,omitempty"`

	// Cols and Rows are the number of grid cells.
	Cols int `toml:"cols,omitempty" yaml:"cols,omitempty"`
	Rows int `toml:"rows,omitempty" yaml:"rows,omitempty"`

	// Gap is the space between grid cells.
	Gap [2]float32 `toml:"gap,omitempty" yaml:"gap,omitempty"`

	// Bounds are the glyph bounds relative to the pen position
	// as x0, y0, x1, y1 in 26.6 fixed point units, as reported by a
	// font face. They are only used by glyphs, which ignore Rect.
	Bounds [4]int32 `toml:"bounds,omitempty" yaml:"bounds,omitempty"`

	// Offset translates the whole shape. For a glyph, it is the pen position.
	Offset [2]float32 `toml:"offset,omitempty" yaml:"offset,omitempty"`
}

// Triangles returns the shape tessellated into a new batch.
func (sh *Shape) Triangles(ctx context.Context) (*mesh.Triangles, error) {
	id, err := texture.Parse(sh.Texture)
	if err != nil {
		return nil, err
	}
	clr, err := ParseColor(sh.Color)
	if err != nil {
		return nil, err
	}
	rect := math32.B2(sh.Rect[0], sh.Rect[1], sh.Rect[2], sh.Rect[3])
	uv := math32.B2(sh.UV[0], sh.UV[1], sh.UV[2], sh.UV[3])
	if sh.UV == [4]float32{} {
		uv = math32.Box2{Min: texture.WhiteUV, Max: texture.WhiteUV}
		if !id.IsNone() {
			uv = math32.B2(0, 0, 1, 1)
		}
	}

	t := mesh.WithTexture(id)
	switch strings.ToLower(sh.Kind) {
	case "rect", "":
		t.AddRectWithUV(rect, uv, clr)
	case "grid":
		if sh.Cols <= 0 || sh.Rows <= 0 {
			return nil, fmt.Errorf("grid needs positive cols and rows, not %d x %d", sh.Cols, sh.Rows)
		}
		if sh.Rows > MaxGridCells/sh.Cols {
			return nil, fmt.Errorf("grid of %d x %d cells is over the limit of %d", sh.Cols, sh.Rows, MaxGridCells)
		}
		t.ReserveVertices(4 * sh.Cols * sh.Rows)
		t.ReserveTriangles(2 * sh.Cols * sh.Rows)
		step := rect.Size().Add(math32.Vec2(sh.Gap[0], sh.Gap[1]))
		for r := range sh.Rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for c := range sh.Cols {
				off := math32.Vec2(float32(c)*step.X, float32(r)*step.Y)
				t.AddRectWithUV(rect.Translate(off), uv, clr)
			}
		}
	case "glyph":
		t.AddRectWithUV(math32.B2FromFixed(sh.glyphBounds()), uv, clr)
	default:
		return nil, fmt.Errorf("unknown shape kind %q", sh.Kind)
	}
	t.Translate(math32.Vec2(sh.Offset[0], sh.Offset[1]))
	return t, nil
}

// glyphBounds returns [Shape.Bounds] as a fixed point rectangle.
func (sh *Shape) glyphBounds() fixed.Rectangle26_6 {
	b := sh.Bounds
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fixed.Int26_6(b[0]), Y: fixed.Int26_6(b[1])},
		Max: fixed.Point26_6{X: fixed.Int26_6(b[2]), Y: fixed.Int26_6(b[3])},
	}
}

// ParseColor parses an unpremultiplied color in hex or CSS name form
// and returns it premultiplied. An empty string is white.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return color.RGBA{255, 255, 255, 255}, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
		}
		return c, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	nc := color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
	return color.RGBAModel.Convert(nc).(color.RGBA), nil
}
