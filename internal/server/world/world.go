package world

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/OCharnyshevich/diamond-terrain/pkg/world/gen"
)

// World caches generated value chunks and addresses the unbounded plane in
// tile coordinates.
type World struct {
	mu        sync.RWMutex
	generator gen.Generator
	chunks    map[gen.ChunkPos]*gen.ValueChunk
	log       *slog.Logger
}

// NewWorld creates a new World with the given generator.
func NewWorld(generator gen.Generator, log *slog.Logger) *World {
	return &World{
		generator: generator,
		chunks:    make(map[gen.ChunkPos]*gen.ValueChunk),
		log:       log,
	}
}

// ChunkWidth returns the generator's chunk width in tiles.
func (w *World) ChunkWidth() int {
	return w.generator.ChunkWidth()
}

// GetOrGenerateChunk returns the chunk at the given chunk coordinates,
// generating and caching it if needed. Cached chunks are shared and must
// not be modified.
func (w *World) GetOrGenerateChunk(cx, cy int) *gen.ValueChunk {
	pos := gen.ChunkPos{X: cx, Y: cy}

	w.mu.RLock()
	if c, ok := w.chunks[pos]; ok {
		w.mu.RUnlock()
		return c
	}
	w.mu.RUnlock()

	c := w.generator.Generate(cx, cy)
	w.log.Debug("generated chunk", "chunkX", cx, "chunkY", cy)

	w.mu.Lock()
	// Double-check after acquiring write lock.
	if existing, ok := w.chunks[pos]; ok {
		w.mu.Unlock()
		return existing
	}
	w.chunks[pos] = c
	w.mu.Unlock()
	return c
}

// ValueAt returns the value of the tile at (x, y), generating its chunk if
// needed.
func (w *World) ValueAt(x, y int) float64 {
	cw := w.generator.ChunkWidth()
	c := w.GetOrGenerateChunk(gen.FloorDiv(x, cw), gen.FloorDiv(y, cw))
	return c.At(gen.Mod(x, cw), gen.Mod(y, cw))
}

// PreGenerateRadius generates every chunk within radius of (0, 0) and
// returns how many chunks that covers. It stops early if ctx is cancelled.
func (w *World) PreGenerateRadius(ctx context.Context, radius int) (int, error) {
	total := (2*radius + 1) * (2*radius + 1)
	count := 0
	for cy := -radius; cy <= radius; cy++ {
		if err := ctx.Err(); err != nil {
			return count, err
		}
		for cx := -radius; cx <= radius; cx++ {
			w.GetOrGenerateChunk(cx, cy)
			count++
		}
		w.log.Debug("pre-generation progress", "done", count, "total", total)
	}
	w.log.Info("pre-generated chunks", "radius", radius, "count", count)
	return count, nil
}

// ChunkCount returns the number of cached chunks.
func (w *World) ChunkCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.chunks)
}

// ForEachChunk calls fn for every cached chunk, ordered by Y then X.
func (w *World) ForEachChunk(fn func(c *gen.ValueChunk)) {
	w.mu.RLock()
	chunks := make([]*gen.ValueChunk, 0, len(w.chunks))
	for _, c := range w.chunks {
		chunks = append(chunks, c)
	}
	w.mu.RUnlock()

	slices.SortFunc(chunks, func(a, b *gen.ValueChunk) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	for _, c := range chunks {
		fn(c)
	}
}

// Stats summarises every cached chunk.
func (w *World) Stats() Stats {
	var s Stats
	w.ForEachChunk(func(c *gen.ValueChunk) {
		s.AddChunk(c)
	})
	return s
}
