// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Producer builds the triangles for one shape. Each producer owns
// the batch it returns; it must not share storage with any other.
type Producer func(ctx context.Context) (*Triangles, error)

// Collect runs the given producers concurrently, each building its own
// private batch, and then adds the results to a new [DrawList] in the order
// the producers were given, which is the draw order. The first error
// cancels the context passed to the other producers and is returned.
// Producers returning a nil batch are skipped.
func Collect(ctx context.Context, producers ...Producer) (*DrawList, error) {
	results := make([]*Triangles, len(producers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range producers {
		g.Go(func() error {
			t, err := p(gctx)
			if err != nil {
				return fmt.Errorf("mesh.Collect: producer %d: %w", i, err)
			}
			results[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	dl := &DrawList{}
	for i, t := range results {
		if err := dl.Add(t); err != nil {
			return nil, fmt.Errorf("mesh.Collect: producer %d: %w", i, err)
		}
	}
	return dl, nil
}
