// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and bounding box package
// for 2D mesh geometry.
package math32

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// FromFixed converts a [fixed.Int26_6] to a float32.
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
