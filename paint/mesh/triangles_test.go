// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"image/color"
	"testing"
	"unsafe"

	"cogentcore.org/meshbuf/base/errors"
	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/paint/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	half = color.RGBA{0, 64, 0, 128} // premultiplied green at 50% alpha
)

// rects returns an untextured batch with n unit rects along the x axis.
func rects(n int) *Triangles {
	t := &Triangles{}
	for i := range n {
		x := float32(i)
		errors.Must(t.AddColoredRect(math32.B2(x, 0, x+1, 1), red))
	}
	return t
}

// clone returns a deep copy of t.
func clone(t *Triangles) *Triangles {
	return &Triangles{
		Indices:  append([]uint32(nil), t.Indices...),
		Vertices: append([]Vertex(nil), t.Vertices...),
		Texture:  t.Texture,
	}
}

func TestVertexLayout(t *testing.T) {
	v := Vertex{}
	assert.Equal(t, uintptr(VertexSize), unsafe.Sizeof(v))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(v.Pos))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(v.UV))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(v.Color))
	assert.Equal(t, uintptr(IndexSize), unsafe.Sizeof(uint32(0)))
}

func TestWithTexture(t *testing.T) {
	tr := WithTexture(texture.User(5))
	assert.Equal(t, texture.User(5), tr.Texture)
	assert.True(t, tr.IsEmpty())
	assert.True(t, tr.IsValid())
	assert.NoError(t, tr.Validate())

	var zero Triangles
	assert.True(t, zero.IsEmpty())
	assert.True(t, zero.Texture.IsNone())
}

func TestAddRectWithUV(t *testing.T) {
	tr := WithTexture(texture.Managed(1))
	pos := math32.B2(10, 20, 30, 50)
	uv := math32.B2(0.25, 0.5, 0.75, 1)
	tr.AddRectWithUV(pos, uv, half)

	require.Len(t, tr.Vertices, 4)
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, tr.Indices)
	assert.Equal(t, 2, tr.TriangleCount())
	assert.Equal(t, 4, tr.VertexCount())

	assert.Equal(t, Vertex{math32.Vec2(10, 20), math32.Vec2(0.25, 0.5), half}, tr.Vertices[0])
	assert.Equal(t, Vertex{math32.Vec2(30, 20), math32.Vec2(0.75, 0.5), half}, tr.Vertices[1])
	assert.Equal(t, Vertex{math32.Vec2(10, 50), math32.Vec2(0.25, 1), half}, tr.Vertices[2])
	assert.Equal(t, Vertex{math32.Vec2(30, 50), math32.Vec2(0.75, 1), half}, tr.Vertices[3])
	assert.Equal(t, uv.LeftTop(), tr.Vertices[0].UV)
	assert.Equal(t, uv.RightBottom(), tr.Vertices[3].UV)

	// second rect is relative to the existing vertices
	tr.AddRectWithUV(pos, uv, half)
	assert.Equal(t, []uint32{4, 5, 6, 6, 5, 7}, tr.Indices[6:])
	assert.True(t, tr.IsValid())
}

func TestAddColoredRect(t *testing.T) {
	tr := &Triangles{}
	require.NoError(t, tr.AddColoredRect(math32.B2(0, 0, 1, 1), red))
	assert.Len(t, tr.Vertices, 4)
	for _, v := range tr.Vertices {
		assert.Equal(t, texture.WhiteUV, v.UV)
		assert.Equal(t, red, v.Color)
	}

	tx := WithTexture(texture.Managed(2))
	err := tx.AddColoredRect(math32.B2(0, 0, 1, 1), red)
	assert.ErrorIs(t, err, ErrTextured)
	assert.True(t, tx.IsEmpty())
}

func TestAddColoredVertex(t *testing.T) {
	tr := &Triangles{}
	require.NoError(t, tr.AddColoredVertex(math32.Vec2(1, 2), red))
	require.NoError(t, tr.AddColoredVertex(math32.Vec2(3, 4), red))
	require.NoError(t, tr.AddColoredVertex(math32.Vec2(5, 6), red))
	assert.Empty(t, tr.Indices)
	assert.Equal(t, Vertex{math32.Vec2(3, 4), texture.WhiteUV, red}, tr.Vertices[1])
	tr.AddTriangle(0, 1, 2)
	assert.True(t, tr.IsValid())

	tx := WithTexture(texture.User(1))
	assert.ErrorIs(t, tx.AddColoredVertex(math32.Vec2(1, 2), red), ErrTextured)
	assert.Empty(t, tx.Vertices)
}

func TestValidate(t *testing.T) {
	tr := rects(2)
	assert.True(t, tr.IsValid())
	assert.NoError(t, tr.Validate())

	tr.AddTriangle(0, 1, 8)
	assert.False(t, tr.IsValid())
	err := tr.Validate()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "Indices[14] = 8")

	tr.Indices = tr.Indices[:13]
	assert.ErrorIs(t, tr.Validate(), ErrIncompleteTriangle)
}

func TestAppend(t *testing.T) {
	a := rects(2)
	b := rects(3)
	b.AddTriangle(0, 5, 11)
	na, nb := clone(a), clone(b)

	require.NoError(t, a.Append(b))
	assert.Len(t, a.Vertices, len(na.Vertices)+len(nb.Vertices))
	assert.Len(t, a.Indices, len(na.Indices)+len(nb.Indices))
	assert.True(t, a.IsValid())
	assert.Equal(t, na.Indices, a.Indices[:len(na.Indices)])
	assert.Equal(t, []uint32{8, 13, 19}, a.Indices[len(a.Indices)-3:])
	assert.Equal(t, nb.Vertices, a.Vertices[len(na.Vertices):])
	assert.True(t, b.IsEmpty())
}

func TestAppendEmpty(t *testing.T) {
	a := WithTexture(texture.Managed(9))
	b := WithTexture(texture.User(3))
	b.AddRectWithUV(math32.B2(0, 0, 2, 2), math32.B2(0, 0, 1, 1), red)
	want := clone(b)
	bv := &b.Vertices[0]

	require.NoError(t, a.Append(b))
	assert.Equal(t, want, a)
	assert.Same(t, bv, &a.Vertices[0], "storage is moved, not copied")
	assert.True(t, b.IsEmpty())

	// appending an empty batch is a no-op, whatever its texture
	require.NoError(t, a.Append(WithTexture(texture.Managed(1))))
	assert.Equal(t, want, a)
	require.NoError(t, a.Append(nil))
	require.NoError(t, a.Append(a))
	assert.Equal(t, want, a)
}

func TestAppendInvalidMerge(t *testing.T) {
	a := WithTexture(texture.Managed(1))
	a.AddRectWithUV(math32.B2(0, 0, 1, 1), math32.B2(0, 0, 1, 1), red)
	b := WithTexture(texture.Managed(2))
	b.AddRectWithUV(math32.B2(0, 0, 1, 1), math32.B2(0, 0, 1, 1), red)
	wa, wb := clone(a), clone(b)

	err := a.Append(b)
	assert.ErrorIs(t, err, ErrInvalidMerge)
	assert.Equal(t, wa, a)
	assert.Equal(t, wb, b)
}

func TestTranslate(t *testing.T) {
	tr := rects(5)
	orig := clone(tr)
	d := math32.Vec2(0.1, -1234.567)
	tr.Translate(d)
	assert.InDelta(t, orig.Vertices[3].Pos.X+0.1, tr.Vertices[3].Pos.X, 1e-4)
	assert.Equal(t, orig.Indices, tr.Indices)
	tr.Translate(math32.Vec2(-d.X, -d.Y))
	for i, v := range tr.Vertices {
		assert.InDelta(t, orig.Vertices[i].Pos.X, v.Pos.X, 1e-3)
		assert.InDelta(t, orig.Vertices[i].Pos.Y, v.Pos.Y, 1e-3)
		assert.Equal(t, orig.Vertices[i].UV, v.UV)
		assert.Equal(t, orig.Vertices[i].Color, v.Color)
	}
}

func TestBytesUsed(t *testing.T) {
	tr := &Triangles{}
	base := tr.BytesUsed()
	assert.Equal(t, int(unsafe.Sizeof(*tr)), base)
	for n := 1; n <= 4; n++ {
		require.NoError(t, tr.AddColoredRect(math32.B2(0, 0, 1, 1), red))
		assert.Equal(t, base+n*(4*VertexSize+6*IndexSize), tr.BytesUsed())
	}
}

func TestReserve(t *testing.T) {
	tr := rects(1)
	tr.ReserveTriangles(10)
	assert.GreaterOrEqual(t, cap(tr.Indices)-len(tr.Indices), 30)
	tr.ReserveVertices(7)
	assert.GreaterOrEqual(t, cap(tr.Vertices)-len(tr.Vertices), 7)
	tr.ReserveVertices(-1)
	assert.Len(t, tr.Indices, 6)
	assert.Len(t, tr.Vertices, 4)
}

func TestBounds(t *testing.T) {
	tr := &Triangles{}
	assert.True(t, tr.Bounds().IsEmpty())
	tr = rects(3)
	tr.Translate(math32.Vec2(1, 2))
	assert.Equal(t, math32.B2(1, 2, 4, 3), tr.Bounds())
}
