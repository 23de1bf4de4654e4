package gen

import (
	"math"
	"testing"
)

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b    int
		div, md int
	}{
		{0, 4, 0, 0},
		{3, 4, 0, 3},
		{4, 4, 1, 0},
		{-1, 4, -1, 3},
		{-4, 4, -1, 0},
		{-5, 4, -2, 3},
		{-1000, 4, -250, 0},
		{-3, 1, -3, 0},
	}

	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.div {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := Mod(tt.a, tt.b); got != tt.md {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.md)
		}
	}
}

func TestChunkRegion(t *testing.T) {
	tests := []struct {
		cx, cy int
		k      int
		want   Region
	}{
		{0, 0, 4, Region{Left: -4, Bottom: -4, Right: 11, Top: 11}},
		{3, 3, 4, Region{Left: -4, Bottom: -4, Right: 11, Top: 11}},
		{4, 0, 4, Region{Left: 0, Bottom: -4, Right: 15, Top: 11}},
		{-1, -1, 4, Region{Left: -8, Bottom: -8, Right: 7, Top: 7}},
		{-3, -5, 4, Region{Left: -8, Bottom: -12, Right: 7, Top: 3}},
		{-4, 7, 4, Region{Left: -8, Bottom: 0, Right: 7, Top: 15}},
		{5, -2, 1, Region{Left: 4, Bottom: -3, Right: 7, Top: 0}},
	}

	for _, tt := range tests {
		got := ChunkRegion(tt.cx, tt.cy, tt.k)
		if got != tt.want {
			t.Errorf("ChunkRegion(%d, %d, %d) = %+v, want %+v", tt.cx, tt.cy, tt.k, got, tt.want)
		}
		if got.Width() != 4*tt.k || got.Height() != 4*tt.k {
			t.Errorf("ChunkRegion(%d, %d, %d) size = %dx%d, want %dx%d",
				tt.cx, tt.cy, tt.k, got.Width(), got.Height(), 4*tt.k, 4*tt.k)
		}
		if !got.Contains(tt.cx, tt.cy) {
			t.Errorf("ChunkRegion(%d, %d, %d) does not contain its chunk", tt.cx, tt.cy, tt.k)
		}
		// The chunk sits in the second base grid cell of the region.
		if off := tt.cx - got.Left; off < tt.k || off >= 2*tt.k {
			t.Errorf("ChunkRegion(%d, %d, %d) x offset = %d, want in [%d,%d)", tt.cx, tt.cy, tt.k, off, tt.k, 2*tt.k)
		}
	}
}

func TestRandomTableShapeAndRange(t *testing.T) {
	r := Region{Left: -2, Bottom: 1, Right: 0, Top: 4}
	table := RandomTable(r, 8, 5)

	if want := 3 * 8 * 4 * 8; len(table) != want {
		t.Fatalf("len(table) = %d, want %d", len(table), want)
	}
	for i, v := range table {
		if v < 0 || v >= 1 {
			t.Fatalf("table[%d] = %f, out of [0,1)", i, v)
		}
	}
}

func TestRandomTableBlocksIndependentOfRegion(t *testing.T) {
	const cw = 4
	a := Region{Left: -3, Bottom: -3, Right: 0, Top: 0}
	b := Region{Left: -1, Bottom: -2, Right: 5, Top: 2}
	ta := RandomTable(a, cw, 9)
	tb := RandomTable(b, cw, 9)

	// Chunks (-1,-2) .. (0,0) are in both regions.
	for cy := -2; cy <= 0; cy++ {
		for cx := -1; cx <= 0; cx++ {
			for y := 0; y < cw; y++ {
				for x := 0; x < cw; x++ {
					ia := ((cy-a.Bottom)*cw+y)*a.Width()*cw + (cx-a.Left)*cw + x
					ib := ((cy-b.Bottom)*cw+y)*b.Width()*cw + (cx-b.Left)*cw + x
					if ta[ia] != tb[ib] {
						t.Fatalf("chunk (%d,%d) tile (%d,%d): %f != %f", cx, cy, x, y, ta[ia], tb[ib])
					}
				}
			}
		}
	}
}

func TestRandomTableSeedSensitive(t *testing.T) {
	r := Region{Left: 0, Bottom: 0, Right: 0, Top: 0}
	t1 := RandomTable(r, 4, 1)
	t2 := RandomTable(r, 4, 2)
	for i := range t1 {
		if t1[i] != t2[i] {
			return
		}
	}
	t.Error("different seeds should produce different tables")
}

func TestChunkRegionWrapsAtIntRange(t *testing.T) {
	tests := []struct {
		cx, cy int
	}{
		{math.MinInt, math.MaxInt},
		{math.MaxInt - 11, 0},
		{math.MaxInt, math.MinInt + 1},
	}

	for _, tt := range tests {
		r := ChunkRegion(tt.cx, tt.cy, 4)
		if r.Width() != 16 || r.Height() != 16 {
			t.Errorf("ChunkRegion(%d, %d) size = %dx%d, want 16x16", tt.cx, tt.cy, r.Width(), r.Height())
		}
		if !r.Contains(tt.cx, tt.cy) {
			t.Errorf("ChunkRegion(%d, %d) = %+v does not contain the chunk", tt.cx, tt.cy, r)
		}
		if r.Contains(r.Left-1, tt.cy) || r.Contains(tt.cx, r.Top+1) {
			t.Errorf("ChunkRegion(%d, %d) = %+v contains chunks outside its bounds", tt.cx, tt.cy, r)
		}

		a := RandomTable(r, 4, 7)
		b := RandomTable(r, 4, 7)
		if len(a) != 16*4*16*4 {
			t.Fatalf("RandomTable len = %d, want %d", len(a), 16*4*16*4)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("RandomTable(%+v) not reproducible at %d", r, i)
			}
			if a[i] < 0 || a[i] >= 1 {
				t.Fatalf("RandomTable(%+v)[%d] = %f, want [0,1)", r, i, a[i])
			}
		}
	}
}
