// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshgpu

import (
	"encoding/binary"
	"image/color"
	"math"
	"testing"

	"cogentcore.org/meshbuf/math32"
	"cogentcore.org/meshbuf/paint/mesh"
	"cogentcore.org/meshbuf/paint/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	vl := VertexLayout()
	assert.Equal(t, uint64(20), vl.ArrayStride)
	require.Len(t, vl.Attributes, 3)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, vl.Attributes[0].Format)
	assert.Equal(t, uint64(8), vl.Attributes[1].Offset)
	assert.Equal(t, wgpu.VertexFormatUnorm8x4, vl.Attributes[2].Format)
	assert.Equal(t, uint64(16), vl.Attributes[2].Offset)
}

func TestVertexBytes(t *testing.T) {
	assert.Nil(t, VertexBytes(nil))

	vs := []mesh.Vertex{
		{Pos: math32.Vec2(1.5, -2), UV: math32.Vec2(0.25, 1), Color: color.RGBA{1, 2, 3, 4}},
		{Pos: math32.Vec2(7, 8)},
	}
	b := VertexBytes(vs)
	require.Len(t, b, 40)
	f := func(off int) float32 { return math.Float32frombits(binary.NativeEndian.Uint32(b[off:])) }
	assert.Equal(t, float32(1.5), f(0))
	assert.Equal(t, float32(-2), f(4))
	assert.Equal(t, float32(0.25), f(8))
	assert.Equal(t, float32(1), f(12))
	assert.Equal(t, []byte{1, 2, 3, 4}, b[16:20])
	assert.Equal(t, float32(7), f(20))
}

func TestIndexBytes(t *testing.T) {
	tr := &mesh.Triangles{}
	require.NoError(t, tr.AddColoredRect(math32.B2(0, 0, 1, 1), color.RGBA{A: 255}))
	tr.AddTriangle(0, 1, 2)
	assert.Equal(t, wgpu.IndexFormatUint16, IndexFormat(tr))

	b16, err := IndexBytes(tr, wgpu.IndexFormatUint16)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 1, 0, 2, 0, 2, 0, 1, 0, 3, 0, 0, 0, 1, 0, 2, 0, 0, 0}, b16)

	b32, err := IndexBytes(tr, wgpu.IndexFormatUint32)
	require.NoError(t, err)
	require.Len(t, b32, 36)
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(b32[20:]))

	big := mesh.WithTexture(texture.Managed(1))
	big.Vertices = make([]mesh.Vertex, mesh.MaxU16Vertices+1)
	big.AddTriangle(0, 1, mesh.MaxU16Vertices)
	assert.Equal(t, wgpu.IndexFormatUint32, IndexFormat(big))
	_, err = IndexBytes(big, wgpu.IndexFormatUint16)
	assert.ErrorIs(t, err, mesh.ErrIndexOutOfRange)

	_, err = IndexBytes(tr, wgpu.IndexFormatUndefined)
	assert.Error(t, err)
}
