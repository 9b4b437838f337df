// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshgpu uploads [mesh.Triangles] to WebGPU vertex and index
// buffers, and describes the vertex layout that shaders must declare.
package meshgpu

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"cogentcore.org/meshbuf/paint/mesh"
	"github.com/cogentcore/webgpu/wgpu"
)

// Shader locations of the vertex attributes.
const (
	PosLocation   = 0
	UVLocation    = 1
	ColorLocation = 2
)

// VertexLayout returns the WebGPU vertex buffer layout of [mesh.Vertex]:
// pos as Float32x2 at 0, uv as Float32x2 at 8, and the premultiplied
// color as Unorm8x4 at 16, with a stride of [mesh.VertexSize].
func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: mesh.VertexSize,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: PosLocation},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: UVLocation},
			{Format: wgpu.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: ColorLocation},
		},
	}
}

// IndexFormat returns the smallest index format that can address
// all of the vertices of t.
func IndexFormat(t *mesh.Triangles) wgpu.IndexFormat {
	if len(t.Vertices) <= mesh.MaxU16Vertices {
		return wgpu.IndexFormatUint16
	}
	return wgpu.IndexFormatUint32
}

// VertexBytes returns the vertex data as bytes, without copying.
// The result aliases vs and is only valid as long as vs is not modified.
func VertexBytes(vs []mesh.Vertex) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*mesh.VertexSize)
}

// IndexBytes returns the little-endian index data of t in the
// given format, padded to a multiple of 4 bytes as WebGPU requires
// for buffer sizes.
func IndexBytes(t *mesh.Triangles, format wgpu.IndexFormat) ([]byte, error) {
	switch format {
	case wgpu.IndexFormatUint16:
		idx, err := t.Indices16()
		if err != nil {
			return nil, err
		}
		b := make([]byte, 0, (2*len(idx)+3)&^3)
		for _, i := range idx {
			b = binary.LittleEndian.AppendUint16(b, i)
		}
		if len(b)%4 != 0 {
			b = append(b, 0, 0)
		}
		return b, nil
	case wgpu.IndexFormatUint32:
		b := make([]byte, 0, 4*len(t.Indices))
		for _, i := range t.Indices {
			b = binary.LittleEndian.AppendUint32(b, i)
		}
		return b, nil
	}
	return nil, fmt.Errorf("meshgpu.IndexBytes: unsupported index format %v", format)
}

// Buffers are the GPU buffers for one batch, ready to draw.
type Buffers struct {
	Vertex *wgpu.Buffer
	Index  *wgpu.Buffer

	// Format is the index format of Index.
	Format wgpu.IndexFormat

	// Count is the number of indices to draw.
	Count uint32
}

// Upload creates the vertex and index buffers for t on the given device.
// The batch should be valid ([mesh.Triangles.Validate]).
func Upload(dev *wgpu.Device, t *mesh.Triangles, label string) (*Buffers, error) {
	format := IndexFormat(t)
	ib, err := IndexBytes(t, format)
	if err != nil {
		return nil, err
	}
	vbuf, err := dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label + " vertices",
		Contents: VertexBytes(t.Vertices),
		Usage:    wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("meshgpu.Upload: vertex buffer: %w", err)
	}
	ibuf, err := dev.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label + " indices",
		Contents: ib,
		Usage:    wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		vbuf.Release()
		return nil, fmt.Errorf("meshgpu.Upload: index buffer: %w", err)
	}
	return &Buffers{Vertex: vbuf, Index: ibuf, Format: format, Count: uint32(len(t.Indices))}, nil
}

// Draw binds the buffers at vertex slot 0 and issues one indexed draw call.
// The texture bind group must already be set on the render pass.
func (b *Buffers) Draw(rp *wgpu.RenderPassEncoder) {
	rp.SetVertexBuffer(0, b.Vertex, 0, wgpu.WholeSize)
	rp.SetIndexBuffer(b.Index, b.Format, 0, wgpu.WholeSize)
	rp.DrawIndexed(b.Count, 1, 0, 0, 0)
}

// Release releases the GPU buffers.
func (b *Buffers) Release() {
	if b.Vertex != nil {
		b.Vertex.Release()
		b.Vertex = nil
	}
	if b.Index != nil {
		b.Index.Release()
		b.Index = nil
	}
}
