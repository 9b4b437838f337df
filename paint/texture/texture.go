// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture provides [ID], the opaque identifier of the texture
// that a mesh is drawn with. Resolving an ID to an actual GPU resource
// is the job of the renderer's texture manager.
package texture

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/meshbuf/math32"
)

// Kinds are the kinds of texture an [ID] can refer to.
type Kinds int32

const (
	// KindNone is no texture: solid fill drawn by sampling the
	// reserved white texel at [WhiteUV].
	KindNone Kinds = iota

	// KindManaged is a texture owned by the texture manager,
	// such as the font atlas.
	KindManaged

	// KindUser is an external texture handle supplied by the user.
	KindUser
)

// String returns the lowercase name of the kind.
func (k Kinds) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindManaged:
		return "managed"
	case KindUser:
		return "user"
	}
	return "Kinds(" + strconv.Itoa(int(k)) + ")"
}

// WhiteUV is the texture coordinate of the reserved fully white texel
// used for untextured (solid fill) drawing.
var WhiteUV = math32.Vector2{}

// ID identifies the texture a mesh is drawn with. It is a comparable
// value type: two IDs refer to the same texture iff they are ==.
// The zero value is [None]. IDs are only made by [Managed], [User]
// and [Parse], so the handle of a [KindNone] id is always 0.
type ID struct {
	kind   Kinds
	handle uint64
}

// None is the [ID] for untextured, solid fill drawing.
var None = ID{}

// Managed returns the [ID] of a texture owned by the texture manager.
func Managed(handle uint64) ID {
	return ID{kind: KindManaged, handle: handle}
}

// User returns the [ID] of a user-supplied external texture.
func User(handle uint64) ID {
	return ID{kind: KindUser, handle: handle}
}

// Kind returns the kind of texture.
func (id ID) Kind() Kinds { return id.kind }

// Handle returns the kind-specific handle.
func (id ID) Handle() uint64 { return id.handle }

// IsNone returns whether this is the untextured [None] id.
// It is the same as id == None.
func (id ID) IsNone() bool {
	return id.kind == KindNone
}

// String returns "none", "managed:N" or "user:N".
// It is the inverse of [Parse].
func (id ID) String() string {
	if id.IsNone() {
		return "none"
	}
	return id.kind.String() + ":" + strconv.FormatUint(id.handle, 10)
}

// Parse parses an [ID] from its [ID.String] form. An empty string is [None].
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return None, nil
	}
	kind, handle, ok := strings.Cut(s, ":")
	if !ok {
		return None, fmt.Errorf("texture.Parse: %q is missing a handle (want kind:N)", s)
	}
	h, err := strconv.ParseUint(handle, 10, 64)
	if err != nil {
		return None, fmt.Errorf("texture.Parse: invalid handle in %q: %w", s, err)
	}
	switch kind {
	case "managed":
		return Managed(h), nil
	case "user":
		return User(h), nil
	}
	return None, fmt.Errorf("texture.Parse: unknown texture kind %q", kind)
}
