// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"image/color"
	"unsafe"

	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/paint/texture"
)

// Triangles is a batch of textured triangles that are all drawn
// with the same texture, in one draw call.
//
// The zero value is an empty, untextured batch ready to use.
// Index bounds are not checked as the batch is built: call
// [Triangles.Validate] before handing it to a backend
// if the producer can not guarantee them.
type Triangles struct {

	// Indices are drawn as triangles, so the length is always
	// a multiple of three. Each index refers to a position in Vertices.
	Indices []uint32

	// Vertices is the vertex data indexed by Indices.
	Vertices []Vertex

	// Texture is the texture to use when drawing these triangles.
	Texture texture.ID
}

// WithTexture returns a new empty [Triangles] that uses the given texture.
func WithTexture(id texture.ID) *Triangles {
	return &Triangles{Texture: id}
}

// IsEmpty returns whether the batch has no indices and no vertices.
func (t *Triangles) IsEmpty() bool {
	return len(t.Indices) == 0 && len(t.Vertices) == 0
}

// VertexCount returns the number of vertices.
func (t *Triangles) VertexCount() int {
	return len(t.Vertices)
}

// TriangleCount returns the number of complete triangles.
func (t *Triangles) TriangleCount() int {
	return len(t.Indices) / 3
}

// IsValid returns whether all indices are within the bounds of the vertices.
func (t *Triangles) IsValid() bool {
	n := uint64(len(t.Vertices))
	for _, i := range t.Indices {
		if uint64(i) >= n {
			return false
		}
	}
	return true
}

// Validate returns an error wrapping [ErrIndexOutOfRange] naming the first
// index that does not refer to an existing vertex, or [ErrIncompleteTriangle]
// if the indices do not form whole triangles.
func (t *Triangles) Validate() error {
	if len(t.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrIncompleteTriangle, len(t.Indices))
	}
	n := uint64(len(t.Vertices))
	for pos, i := range t.Indices {
		if uint64(i) >= n {
			return fmt.Errorf("%w: Indices[%d] = %d with %d vertices", ErrIndexOutOfRange, pos, i, n)
		}
	}
	return nil
}

// BytesUsed returns the approximate memory used by the batch, in bytes.
func (t *Triangles) BytesUsed() int {
	return int(unsafe.Sizeof(*t)) + len(t.Vertices)*VertexSize + len(t.Indices)*IndexSize
}

// ReserveTriangles makes room for this many additional triangles,
// reserving 3x as many indices. See also [Triangles.ReserveVertices].
func (t *Triangles) ReserveTriangles(n int) {
	t.Indices = grow(t.Indices, 3*n)
}

// ReserveVertices makes room for this many additional vertices.
// See also [Triangles.ReserveTriangles].
func (t *Triangles) ReserveVertices(n int) {
	t.Vertices = grow(t.Vertices, n)
}

// grow is slices.Grow that tolerates non-positive n.
func grow[E any](s []E, n int) []E {
	if n <= 0 || cap(s)-len(s) >= n {
		return s
	}
	ns := make([]E, len(s), len(s)+n)
	copy(ns, s)
	return ns
}

// AddTriangle adds a triangle from the given three vertex indices.
// The indices are not checked.
func (t *Triangles) AddTriangle(a, b, c uint32) {
	t.Indices = append(t.Indices, a, b, c)
}

// AddRectWithUV adds a rectangle with the given texture coordinates and color,
// as 4 new vertices in left-top, right-top, left-bottom, right-bottom order,
// and the 2 triangles (0, 1, 2) and (2, 1, 3) relative to the first new vertex.
// This winding is relied upon by the backends and must not change.
func (t *Triangles) AddRectWithUV(pos, uv math32.Box2, clr color.RGBA) {
	idx := uint32(len(t.Vertices))
	t.AddTriangle(idx+0, idx+1, idx+2)
	t.AddTriangle(idx+2, idx+1, idx+3)

	t.Vertices = append(t.Vertices,
		Vertex{Pos: pos.LeftTop(), UV: uv.LeftTop(), Color: clr},
		Vertex{Pos: pos.RightTop(), UV: uv.RightTop(), Color: clr},
		Vertex{Pos: pos.LeftBottom(), UV: uv.LeftBottom(), Color: clr},
		Vertex{Pos: pos.RightBottom(), UV: uv.RightBottom(), Color: clr},
	)
}

// AddColoredRect adds a uniformly colored rectangle. The batch must be
// untextured ([texture.None]); otherwise it returns [ErrTextured]
// and leaves the batch unchanged.
func (t *Triangles) AddColoredRect(rect math32.Box2, clr color.RGBA) error {
	if !t.Texture.IsNone() {
		return fmt.Errorf("%w: AddColoredRect on %v", ErrTextured, t.Texture)
	}
	t.AddRectWithUV(rect, math32.Box2{Min: texture.WhiteUV, Max: texture.WhiteUV}, clr)
	return nil
}

// AddColoredVertex adds a solid fill vertex at the given position,
// without any index. The batch must be untextured ([texture.None]);
// otherwise it returns [ErrTextured] and leaves the batch unchanged.
func (t *Triangles) AddColoredVertex(pos math32.Vector2, clr color.RGBA) error {
	if !t.Texture.IsNone() {
		return fmt.Errorf("%w: AddColoredVertex on %v", ErrTextured, t.Texture)
	}
	t.Vertices = append(t.Vertices, Vertex{Pos: pos, UV: texture.WhiteUV, Color: clr})
	return nil
}

// Append moves all the indices and vertices of other into t,
// rebasing the indices of other to follow the vertices of t.
// If t is empty it takes over the storage of other without copying.
// Either way other is left empty on success, so that no two batches
// share storage. Appending nil or t itself does nothing.
//
// If both are non-empty and use different textures it returns an error
// wrapping [ErrInvalidMerge] and neither batch is modified; the caller
// is then expected to flush t and start a new batch (see [DrawList]).
func (t *Triangles) Append(other *Triangles) error {
	if other == nil || other == t {
		return nil
	}
	if t.IsEmpty() {
		*t = *other
		*other = Triangles{Texture: other.Texture}
		return nil
	}
	if other.IsEmpty() {
		return nil
	}
	if t.Texture != other.Texture {
		return fmt.Errorf("%w: %v and %v", ErrInvalidMerge, t.Texture, other.Texture)
	}

	offset := uint32(len(t.Vertices))
	t.Indices = grow(t.Indices, len(other.Indices))
	for _, i := range other.Indices {
		t.Indices = append(t.Indices, offset+i)
	}
	t.Vertices = append(t.Vertices, other.Vertices...)
	*other = Triangles{Texture: other.Texture}
	return nil
}

// Translate moves the position of every vertex by delta, in place.
func (t *Triangles) Translate(delta math32.Vector2) {
	for i := range t.Vertices {
		t.Vertices[i].Pos.SetAdd(delta)
	}
}

// Bounds returns the bounding box of the vertex positions,
// which is empty if there are no vertices.
func (t *Triangles) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for i := range t.Vertices {
		b.ExpandByPoint(t.Vertices[i].Pos)
	}
	return b
}
