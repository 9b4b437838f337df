// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ebitenmesh draws [mesh.Triangles] with ebiten, whose
// DrawTriangles takes 16-bit index buffers. Batches must first be made
// to fit with [mesh.Triangles.SplitToU16] or [mesh.DrawList.Finish].
package ebitenmesh

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"cogentcore.org/meshbuf/paint/mesh"
	"cogentcore.org/meshbuf/paint/texture"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteOnce  sync.Once
	whiteImage *ebiten.Image
)

// White returns the image used for [texture.None]: a single white pixel,
// cut from the middle of a larger image so that linear filtering never
// samples past its edge.
func White() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteImage
}

// Convert returns the ebiten vertices and 16-bit indices for t, with the
// texture coordinates mapped into the given source image bounds.
// It returns an error wrapping [mesh.ErrIndexOutOfRange] if t does
// not fit 16-bit indices.
func Convert(t *mesh.Triangles, src image.Rectangle) ([]ebiten.Vertex, []uint16, error) {
	if len(t.Vertices) > mesh.MaxU16Vertices {
		return nil, nil, fmt.Errorf("%w: %d vertices, split the batch first", mesh.ErrIndexOutOfRange, len(t.Vertices))
	}
	is, err := t.Indices16()
	if err != nil {
		return nil, nil, err
	}
	x0, y0 := float32(src.Min.X), float32(src.Min.Y)
	w, h := float32(src.Dx()), float32(src.Dy())
	vs := make([]ebiten.Vertex, len(t.Vertices))
	for i, v := range t.Vertices {
		vs[i] = ebiten.Vertex{
			DstX:   v.Pos.X,
			DstY:   v.Pos.Y,
			SrcX:   x0 + v.UV.X*w,
			SrcY:   y0 + v.UV.Y*h,
			ColorR: float32(v.Color.R) / 255,
			ColorG: float32(v.Color.G) / 255,
			ColorB: float32(v.Color.B) / 255,
			ColorA: float32(v.Color.A) / 255,
		}
	}
	return vs, is, nil
}

// Draw draws the given batches onto dst in order, with one DrawTriangles
// call per batch. Textures other than [texture.None] are resolved with lookup.
func Draw(dst *ebiten.Image, batches []*mesh.Triangles, lookup func(texture.ID) *ebiten.Image) error {
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		Filter:         ebiten.FilterLinear,
	}
	for k, b := range batches {
		if len(b.Indices) == 0 {
			continue
		}
		img := White()
		if !b.Texture.IsNone() {
			if lookup != nil {
				img = lookup(b.Texture)
			} else {
				img = nil
			}
			if img == nil {
				return fmt.Errorf("ebitenmesh.Draw: batch %d: no image for texture %v", k, b.Texture)
			}
		}
		vs, is, err := Convert(b, img.Bounds())
		if err != nil {
			return fmt.Errorf("ebitenmesh.Draw: batch %d: %w", k, err)
		}
		dst.DrawTriangles(vs, is, img, op)
	}
	return nil
}
