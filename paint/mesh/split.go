// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"math"
)

// MaxU16Vertices is the number of distinct vertices that a
// 16-bit index buffer can address.
const MaxU16Vertices = 1 << 16

// SplitToU16 is for backends that only support 16-bit index buffers.
// It splits t into as many batches as needed so that each one has fewer
// than [MaxU16Vertices] vertices, and so all of its indices fit in a uint16.
//
// Triangles are never reordered: the batches are returned in draw order,
// and each holds a contiguous run of the original triangles, with the
// vertex range they use copied out and the indices rebased to it.
// If t already has fewer than [MaxU16Vertices] vertices, t itself is
// the only batch returned. Otherwise t should not be used afterward.
//
// A triangle whose indices span [MaxU16Vertices] or more can never fit,
// and results in an error wrapping [ErrUnsplittableTriangle].
func (t *Triangles) SplitToU16() ([]*Triangles, error) {
	if len(t.Vertices) < MaxU16Vertices {
		return []*Triangles{t}, nil
	}
	if len(t.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices", ErrIncompleteTriangle, len(t.Indices))
	}

	var out []*Triangles
	n := len(t.Indices)
	cursor := 0
	for cursor < n {
		start := cursor
		minV, maxV := uint32(math.MaxUint32), uint32(0)
		for cursor < n {
			newMin, newMax := minV, maxV
			for _, i := range t.Indices[cursor : cursor+3] {
				newMin = min(newMin, i)
				newMax = max(newMax, i)
			}
			if newMax-newMin >= MaxU16Vertices {
				break
			}
			minV, maxV = newMin, newMax
			cursor += 3
		}
		if cursor == start {
			return nil, fmt.Errorf("%w: triangle %d (%v) spans more than %d vertices",
				ErrUnsplittableTriangle, start/3, t.Indices[start:start+3], MaxU16Vertices)
		}
		if int(maxV) >= len(t.Vertices) {
			return nil, fmt.Errorf("%w: index %d with %d vertices", ErrIndexOutOfRange, maxV, len(t.Vertices))
		}

		span := t.Indices[start:cursor]
		sub := &Triangles{
			Indices:  make([]uint32, len(span)),
			Vertices: make([]Vertex, maxV-minV+1),
			Texture:  t.Texture,
		}
		for k, i := range span {
			sub.Indices[k] = i - minV
		}
		copy(sub.Vertices, t.Vertices[minV:maxV+1])
		out = append(out, sub)
	}
	return out, nil
}

// Indices16 returns the indices narrowed to uint16, for a batch that has
// been made to fit with [Triangles.SplitToU16]. It returns an error wrapping
// [ErrIndexOutOfRange] if any index does not fit.
func (t *Triangles) Indices16() ([]uint16, error) {
	out := make([]uint16, len(t.Indices))
	for k, i := range t.Indices {
		if i > math.MaxUint16 {
			return nil, fmt.Errorf("%w: Indices[%d] = %d does not fit in 16 bits", ErrIndexOutOfRange, k, i)
		}
		out[k] = uint16(i)
	}
	return out, nil
}
