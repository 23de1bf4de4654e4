package gen

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sync"
)

var (
	ErrChunkWidthNotPowerOfTwo       = errors.New("chunk width is not a power of two")
	ErrBaseGridDistanceNotPowerOfTwo = errors.New("base grid distance is not a power of two")
	ErrBaseGridDistanceTooSmall      = errors.New("base grid distance is smaller than chunk width")
)

// Params configures a DiamondSquareGenerator.
type Params struct {
	Seed             int64
	ChunkWidth       int     // tiles per chunk side, power of two
	BaseGridDistance int     // tiles between anchors, power of two >= ChunkWidth
	BaseGridMaxValue float64 // amplitude of anchor values
}

// DefaultParams returns Params with sensible defaults and seed 0.
func DefaultParams() Params {
	return Params{
		ChunkWidth:       16,
		BaseGridDistance: 64,
		BaseGridMaxValue: 100.0,
	}
}

// Validate checks the power-of-two and ordering constraints.
func (p Params) Validate() error {
	if !isPowerOfTwo(p.ChunkWidth) {
		return fmt.Errorf("%w: %d", ErrChunkWidthNotPowerOfTwo, p.ChunkWidth)
	}
	if !isPowerOfTwo(p.BaseGridDistance) {
		return fmt.Errorf("%w: %d", ErrBaseGridDistanceNotPowerOfTwo, p.BaseGridDistance)
	}
	if p.BaseGridDistance < p.ChunkWidth {
		return fmt.Errorf("%w: %d < %d", ErrBaseGridDistanceTooSmall, p.BaseGridDistance, p.ChunkWidth)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// DiamondSquareGenerator produces value chunks with the diamond-square
// algorithm over a sparse grid of seeded anchor values.
//
// A generator is safe for concurrent use. Each call to Generate takes a
// working buffer from a pool and resets it.
type DiamondSquareGenerator struct {
	seed             int64
	chunkWidth       int
	baseGridDistance int
	baseGridMaxValue float64

	baseGridSteps        int
	chunksInBaseGridStep int
	matrixWidthChunks    int
	matrixWidthTiles     int
	radii                []StepRadius

	pool sync.Pool
}

// workspace holds the per-call working buffers, both matrixWidthTiles
// squared, index = y*matrixWidthTiles + x.
type workspace struct {
	values []float64
	random []float64
}

// tileBox is an inclusive rectangle in working buffer coordinates.
type tileBox struct {
	x0, y0, x1, y1 int
}

// NewDiamondSquareGenerator validates p and precomputes the derived sizes.
func NewDiamondSquareGenerator(p Params) (*DiamondSquareGenerator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := &DiamondSquareGenerator{
		seed:             p.Seed,
		chunkWidth:       p.ChunkWidth,
		baseGridDistance: p.BaseGridDistance,
		baseGridMaxValue: p.BaseGridMaxValue,
	}
	g.baseGridSteps = bits.TrailingZeros(uint(p.BaseGridDistance))
	g.chunksInBaseGridStep = p.BaseGridDistance / p.ChunkWidth
	// Four base grid cells per side: one before the target's cell and two after.
	g.matrixWidthChunks = 4 * g.chunksInBaseGridStep
	g.matrixWidthTiles = g.matrixWidthChunks * p.ChunkWidth
	g.radii = ImpactRadii(g.baseGridSteps)

	n := g.matrixWidthTiles * g.matrixWidthTiles
	g.pool.New = func() any {
		return &workspace{
			values: make([]float64, n),
			random: make([]float64, n),
		}
	}
	return g, nil
}

// Seed returns the global seed.
func (g *DiamondSquareGenerator) Seed() int64 {
	return g.seed
}

// ChunkWidth returns the side of a chunk in tiles.
func (g *DiamondSquareGenerator) ChunkWidth() int {
	return g.chunkWidth
}

// BaseGridDistance returns the spacing between anchors in tiles.
func (g *DiamondSquareGenerator) BaseGridDistance() int {
	return g.baseGridDistance
}

// BaseGridMaxValue returns the amplitude of the anchor values.
func (g *DiamondSquareGenerator) BaseGridMaxValue() float64 {
	return g.baseGridMaxValue
}

// BaseGridSteps returns the number of refinement steps, log2 of the base
// grid distance.
func (g *DiamondSquareGenerator) BaseGridSteps() int {
	return g.baseGridSteps
}

// ChunksInBaseGridStep returns how many chunks fit between two anchors.
func (g *DiamondSquareGenerator) ChunksInBaseGridStep() int {
	return g.chunksInBaseGridStep
}

// ValueMatrixWidthChunks returns the side of the working buffer in chunks.
func (g *DiamondSquareGenerator) ValueMatrixWidthChunks() int {
	return g.matrixWidthChunks
}

// ValueMatrixWidthTiles returns the side of the working buffer in tiles.
func (g *DiamondSquareGenerator) ValueMatrixWidthTiles() int {
	return g.matrixWidthTiles
}

// StepsImpactRadii returns a copy of the per-step impact radii.
func (g *DiamondSquareGenerator) StepsImpactRadii() []StepRadius {
	return append([]StepRadius(nil), g.radii...)
}

// Generate returns the chunk at (chunkX, chunkY). Any coordinates are valid.
// The returned chunk is not shared with the generator.
func (g *DiamondSquareGenerator) Generate(chunkX, chunkY int) *ValueChunk {
	ws := g.acquire()
	defer g.pool.Put(ws)

	box := g.generateValueMatrix(ws, chunkX, chunkY)
	return g.extract(ws, box, chunkX, chunkY)
}

func (g *DiamondSquareGenerator) acquire() *workspace {
	ws := g.pool.Get().(*workspace)
	clear(ws.values)
	return ws
}

// generateValueMatrix fills ws with every value needed for the chunk and
// returns the chunk's box in working buffer coordinates.
func (g *DiamondSquareGenerator) generateValueMatrix(ws *workspace, chunkX, chunkY int) tileBox {
	region := ChunkRegion(chunkX, chunkY, g.chunksInBaseGridStep)
	fillRandomTable(ws.random, region, g.chunkWidth, g.seed)
	g.seedBaseGrid(ws)

	x0 := (chunkX - region.Left) * g.chunkWidth
	y0 := (chunkY - region.Bottom) * g.chunkWidth
	box := tileBox{x0: x0, y0: y0, x1: x0 + g.chunkWidth - 1, y1: y0 + g.chunkWidth - 1}

	for step := g.baseGridSteps - 1; step >= 0; step-- {
		g.refine(ws, step, box)
	}
	return box
}

// seedBaseGrid sets every anchor point from the random table.
func (g *DiamondSquareGenerator) seedBaseGrid(ws *workspace) {
	w := g.matrixWidthTiles
	for y := 0; y < w; y += g.baseGridDistance {
		for x := 0; x < w; x += g.baseGridDistance {
			i := y*w + x
			ws.values[i] = ws.random[i] * g.baseGridMaxValue
		}
	}
}

// refine runs one diamond-square step at spacing 2^step over the points
// that can influence box.
func (g *DiamondSquareGenerator) refine(ws *workspace, step int, box tileBox) {
	w := g.matrixWidthTiles
	h := 1 << step
	v, rnd := ws.values, ws.random
	amp := math.Ldexp(g.baseGridMaxValue, -(g.baseGridSteps - step))
	r := g.radii[step]

	// X shape: centers of 2h squares from their diagonal corners.
	xlo, xhi := g.span(box.x0, box.x1, r.XShape, h)
	ylo, yhi := g.span(box.y0, box.y1, r.XShape, h)
	for y := alignOdd(ylo, h); y <= yhi; y += 2 * h {
		up, down := (y+h)*w, (y-h)*w
		for x := alignOdd(xlo, h); x <= xhi; x += 2 * h {
			avg := (v[down+x-h] + v[down+x+h] + v[up+x-h] + v[up+x+h]) * 0.25
			i := y*w + x
			v[i] = avg + amp*(rnd[i]-0.5)
		}
	}

	// Plus shape: the remaining points from their axis neighbors.
	amp /= math.Sqrt2
	xlo, xhi = g.span(box.x0, box.x1, r.PlusShape, h)
	ylo, yhi = g.span(box.y0, box.y1, r.PlusShape, h)
	yEven, yOdd := alignUp(ylo, 2*h), alignOdd(ylo, h)
	for x := alignUp(xlo, h); x <= xhi; x += h {
		y := yOdd
		if (x/h)%2 == 1 {
			y = yEven
		}
		for ; y <= yhi; y += 2 * h {
			i := y*w + x
			avg := (v[i-h] + v[i+h] + v[i-h*w] + v[i+h*w]) * 0.25
			v[i] = avg + amp*(rnd[i]-0.5)
		}
	}
}

// span widens [lo,hi] by radius and clamps it so that every point keeps
// its neighbors at distance h inside the working buffer.
func (g *DiamondSquareGenerator) span(lo, hi, radius, h int) (int, int) {
	return max(lo-radius, h), min(hi+radius, g.matrixWidthTiles-1-h)
}

// alignUp returns the first multiple of m that is >= n. n >= 0.
func alignUp(n, m int) int {
	return (n + m - 1) / m * m
}

// alignOdd returns the first odd multiple of h that is >= n. n >= h.
func alignOdd(n, h int) int {
	return h + alignUp(n-h, 2*h)
}

// extract copies the chunk's window out of the working buffer.
func (g *DiamondSquareGenerator) extract(ws *workspace, box tileBox, chunkX, chunkY int) *ValueChunk {
	cw := g.chunkWidth
	c := &ValueChunk{
		X:      chunkX,
		Y:      chunkY,
		Width:  cw,
		Values: make([]float64, cw*cw),
	}
	for y := 0; y < cw; y++ {
		src := (box.y0+y)*g.matrixWidthTiles + box.x0
		copy(c.Row(y), ws.values[src:src+cw])
	}
	return c
}
