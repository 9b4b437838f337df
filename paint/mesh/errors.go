// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/meshbuf/base/errors"

var (
	// ErrInvalidMerge is returned by [Triangles.Append] when both batches
	// are non-empty and use different textures, so they can not share a draw call.
	ErrInvalidMerge = errors.New("mesh: can not merge triangles using different textures")

	// ErrIndexOutOfRange is returned when an index refers to a vertex that
	// does not exist, or does not fit the requested index width.
	ErrIndexOutOfRange = errors.New("mesh: index out of range")

	// ErrIncompleteTriangle is returned when the number of indices
	// is not a multiple of 3.
	ErrIncompleteTriangle = errors.New("mesh: index count is not a multiple of 3")

	// ErrUnsplittableTriangle is returned by [Triangles.SplitToU16] when a single
	// triangle spans [MaxU16Vertices] or more vertex positions, so that no
	// 16-bit index buffer can hold it.
	ErrUnsplittableTriangle = errors.New("mesh: triangle spans too many vertices to split for 16-bit indices")

	// ErrTextured is returned by the solid fill builders when the batch
	// is tagged with a texture other than texture.None.
	ErrTextured = errors.New("mesh: solid fill requires the untextured texture id")
)
