package gen

// Region is an inclusive rectangle of chunk coordinates. Near the ends of
// the int range the bounds wrap around, so Left may exceed Right; Width,
// Height and Contains work on offsets from Left and Bottom and stay correct.
type Region struct {
	Left, Bottom int
	Right, Top   int
}

// Width returns the number of chunk columns in the region.
func (r Region) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of chunk rows in the region.
func (r Region) Height() int { return r.Top - r.Bottom + 1 }

// Contains reports whether the chunk at (cx, cy) lies inside the region.
func (r Region) Contains(cx, cy int) bool {
	return uint(cx-r.Left) < uint(r.Width()) && uint(cy-r.Bottom) < uint(r.Height())
}

// ChunkRegion returns the 4x4 base grid cell region of chunks needed to
// generate chunk (chunkX, chunkY). The chunk's own cell is the second column
// and row of the region.
func ChunkRegion(chunkX, chunkY, chunksInBaseGridStep int) Region {
	k := chunksInBaseGridStep
	ox := chunkX - Mod(chunkX, k)
	oy := chunkY - Mod(chunkY, k)
	return Region{
		Left:   ox - k,
		Bottom: oy - k,
		Right:  ox + 3*k - 1,
		Top:    oy + 3*k - 1,
	}
}

// FloorDiv divides rounding towards negative infinity. b > 0.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// Mod returns a modulo b in [0,b). b > 0.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// RandomTable returns the random block matrix for region r. Each
// chunkWidth x chunkWidth block holds uniform values in [0,1) drawn from a
// stream seeded by DeriveSeed for that chunk. Index = y*stride + x with
// stride = r.Width()*chunkWidth; row 0 is the bottom row of the region.
func RandomTable(r Region, chunkWidth int, seed int64) []float64 {
	dst := make([]float64, r.Width()*chunkWidth*r.Height()*chunkWidth)
	fillRandomTable(dst, r, chunkWidth, seed)
	return dst
}

func fillRandomTable(dst []float64, r Region, chunkWidth int, seed int64) {
	w, h := r.Width(), r.Height()
	stride := w * chunkWidth
	for j := 0; j < h; j++ {
		cy := r.Bottom + j
		y0 := j * chunkWidth
		for i := 0; i < w; i++ {
			cx := r.Left + i
			rng := newBlockRand(DeriveSeed(cx, cy, seed))
			x0 := i * chunkWidth
			for y := 0; y < chunkWidth; y++ {
				row := dst[(y0+y)*stride+x0:]
				for x := 0; x < chunkWidth; x++ {
					row[x] = rng.Float64()
				}
			}
		}
	}
}
