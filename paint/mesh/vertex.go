// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides [Triangles], a texture-homogeneous batch of
// textured, colored 2D triangles that every drawn shape is lowered into
// before it is handed to a graphics backend, along with the [DrawList]
// that merges batches into as few draw calls as possible.
package mesh

import (
	"image/color"

	"cogentcore.org/meshbuf/math32"
)

// Vertex is one point sample of a mesh. Its memory layout is sent to
// the GPU as is, so the field order and sizes must not change:
// Pos at byte 0 (2 x float32), UV at byte 8 (2 x float32),
// and Color at byte 16 (4 x uint8), for a total of [VertexSize] bytes.
type Vertex struct {

	// Pos is the position in logical pixels (points),
	// with (0,0) at the top left corner of the surface.
	Pos math32.Vector2

	// UV is the normalized texture coordinate, with (0,0) at the top left
	// corner of the texture and (1,1) at the bottom right corner.
	UV math32.Vector2

	// Color is the sRGBA color with premultiplied alpha,
	// which is the convention of [color.RGBA].
	Color color.RGBA
}

// VertexSize is the size of a [Vertex] in bytes.
const VertexSize = 20

// IndexSize is the size of one index in bytes.
const IndexSize = 4
