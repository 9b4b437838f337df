// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"
	"log/slog"

	"cogentcore.org/meshbuf/base/errors"
)

// DrawList collects shapes in draw order and merges consecutive shapes
// that use the same texture into one batch, so that they can be drawn
// with one draw call. A shape with a different texture flushes the
// current batch and starts a new one, which keeps the draw order intact.
//
// The zero value is an empty list ready to use.
type DrawList struct {

	// batches are the flushed batches, in draw order.
	batches []*Triangles

	// current is the batch being merged into, if any.
	current *Triangles
}

// Stats are summary statistics for a list of batches.
type Stats struct {

	// Batches is the number of batches, i.e. draw calls.
	Batches int

	// Vertices is the total number of vertices.
	Vertices int

	// Indices is the total number of indices.
	Indices int

	// Bytes is the total of [Triangles.BytesUsed].
	Bytes int
}

// String returns a one line summary of the stats.
func (s Stats) String() string {
	return fmt.Sprintf("%d batches, %d vertices, %d indices, %d bytes", s.Batches, s.Vertices, s.Indices, s.Bytes)
}

// StatsOf returns the [Stats] for the given batches.
func StatsOf(batches []*Triangles) Stats {
	s := Stats{Batches: len(batches)}
	for _, b := range batches {
		s.Vertices += len(b.Vertices)
		s.Indices += len(b.Indices)
		s.Bytes += b.BytesUsed()
	}
	return s
}

// Add adds the given shape on top of everything added so far.
// It consumes t as [Triangles.Append] does. Empty shapes are ignored.
// A shape with a different texture than the current batch starts a
// new batch. Merging into a new, empty batch always succeeds, so an
// error here means the shape was not added and the list is unchanged.
func (dl *DrawList) Add(t *Triangles) error {
	if t == nil || t.IsEmpty() {
		return nil
	}
	if dl.current == nil {
		dl.current = &Triangles{}
	}
	err := dl.current.Append(t)
	if errors.Is(err, ErrInvalidMerge) {
		dl.Flush()
		dl.current = &Triangles{}
		err = dl.current.Append(t)
	}
	if err != nil {
		return fmt.Errorf("mesh.DrawList.Add: %w", err)
	}
	return nil
}

// Flush ends the current batch, so that the next shape added
// starts a new one even if it uses the same texture.
func (dl *DrawList) Flush() {
	if dl.current == nil || dl.current.IsEmpty() {
		return
	}
	slog.Debug("mesh: flushed batch", "texture", dl.current.Texture, "vertices", len(dl.current.Vertices), "indices", len(dl.current.Indices))
	dl.batches = append(dl.batches, dl.current)
	dl.current = nil
}

// Batches flushes the list and returns the batches in draw order.
// The batches are owned by the list until [DrawList.Reset].
func (dl *DrawList) Batches() []*Triangles {
	dl.Flush()
	return dl.batches
}

// Len returns the number of batches, including the current one.
func (dl *DrawList) Len() int {
	n := len(dl.batches)
	if dl.current != nil && !dl.current.IsEmpty() {
		n++
	}
	return n
}

// Stats returns the [Stats] of all batches, including the current one.
func (dl *DrawList) Stats() Stats {
	s := StatsOf(dl.batches)
	if dl.current != nil && !dl.current.IsEmpty() {
		c := StatsOf([]*Triangles{dl.current})
		s.Batches++
		s.Vertices += c.Vertices
		s.Indices += c.Indices
		s.Bytes += c.Bytes
	}
	return s
}

// Finish flushes the list and returns the batches in draw order,
// handing ownership of them to the caller and leaving the list empty.
// If split is true, every batch is passed through [Triangles.SplitToU16],
// for backends with 16-bit index buffers. On error nothing is returned
// and the list keeps its batches.
func (dl *DrawList) Finish(split bool) ([]*Triangles, error) {
	batches := dl.Batches()
	if !split {
		dl.batches = nil
		return batches, nil
	}
	var out []*Triangles
	for i, b := range batches {
		parts, err := b.SplitToU16()
		if err != nil {
			return nil, fmt.Errorf("mesh.DrawList.Finish: batch %d: %w", i, err)
		}
		if len(parts) > 1 {
			slog.Debug("mesh: split batch for 16-bit indices", "batch", i, "parts", len(parts))
		}
		out = append(out, parts...)
	}
	dl.batches = nil
	return out, nil
}

// Reset empties the list.
func (dl *DrawList) Reset() {
	dl.batches = nil
	dl.current = nil
}
