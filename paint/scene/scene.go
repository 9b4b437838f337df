// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene describes simple scenes of rectangles in TOML or YAML
// files, and lowers them into [mesh.Triangles] batches. It is used to
// exercise batching and 16-bit index splitting on realistic inputs.
package scene

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/meshbuf/paint/mesh"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene is a list of shapes, drawn in order.
type Scene struct {

	// Name is the name of the scene, for logging.
	Name string `toml:"name" yaml:"name"`

	// Shapes are the shapes of the scene, back to front.
	Shapes []Shape `toml:"shapes" yaml:"shapes"`
}

// Formats are the supported scene file formats, by file extension.
var Formats = map[string]string{
	".toml": "toml",
	".yaml": "yaml",
	".yml":  "yaml",
}

// Open reads the scene from the given file, with the format
// determined by its extension (see [Formats]).
func Open(path string) (*Scene, error) {
	format, ok := Formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("scene.Open: unsupported file type %q", filepath.Ext(path))
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Read(bytes.NewReader(b), format)
	if err != nil {
		return nil, fmt.Errorf("scene.Open %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Read decodes a scene in the given format ("toml" or "yaml") from r.
// Unknown fields are an error.
func Read(r io.Reader, format string) (*Scene, error) {
	sc := &Scene{}
	switch format {
	case "toml":
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(sc); err != nil {
			return nil, err
		}
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(sc); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("scene.Read: unknown format %q", format)
	}
	return sc, nil
}

// Write encodes the scene in the given format ("toml" or "yaml") to w.
func (sc *Scene) Write(w io.Writer, format string) error {
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(sc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(sc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("scene.Write: unknown format %q", format)
}

// Build lowers all of the shapes into a [mesh.DrawList], building
// each shape concurrently into its own batch.
func (sc *Scene) Build(ctx context.Context) (*mesh.DrawList, error) {
	ps := make([]mesh.Producer, len(sc.Shapes))
	for i := range sc.Shapes {
		sh := &sc.Shapes[i]
		ps[i] = func(ctx context.Context) (*mesh.Triangles, error) {
			t, err := sh.Triangles(ctx)
			if err != nil {
				return nil, fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
			}
			return t, nil
		}
	}
	return mesh.Collect(ctx, ps...)
}
