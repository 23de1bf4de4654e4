package gen

// ChunkPos identifies a chunk by its X and Y coordinates.
type ChunkPos struct{ X, Y int }

// ValueChunk holds the generated values for one square chunk.
// Index = y*Width + x.
//
// A chunk is treated as immutable once generated. Callers that cache chunks
// hand the same value to every reader, so Values and the slices returned by
// Row must not be modified.
type ValueChunk struct {
	X, Y   int
	Width  int
	Values []float64
}

// Generator produces value chunks deterministically from a seed.
type Generator interface {
	Generate(chunkX, chunkY int) *ValueChunk
	ChunkWidth() int
}

// Pos returns the chunk coordinates.
func (c *ValueChunk) Pos() ChunkPos {
	return ChunkPos{X: c.X, Y: c.Y}
}

// At returns the value at the given local coordinates within the chunk.
// x, y must be in [0,Width).
func (c *ValueChunk) At(x, y int) float64 {
	return c.Values[y*c.Width+x]
}

// Row returns row y of the chunk. The slice aliases the chunk's values.
func (c *ValueChunk) Row(y int) []float64 {
	return c.Values[y*c.Width : (y+1)*c.Width]
}
