package gen

// StepRadius bounds how far outside a target box a refinement step has to
// compute points so that the box's final values are complete.
type StepRadius struct {
	XShape    int
	PlusShape int
}

// ImpactRadii returns one StepRadius per refinement step, indexed by step
// (smallest step first).
//
// After step s every lattice point within 2^(s+1)-2 tiles of the target must
// be known. The plus-shape pass of step s reads neighbors one step size
// further out, so the x-shape pass covers 2^s more.
func ImpactRadii(baseGridSteps int) []StepRadius {
	radii := make([]StepRadius, baseGridSteps)
	for s := range baseGridSteps {
		plus := 1<<(s+1) - 2
		radii[s] = StepRadius{
			XShape:    plus + 1<<s,
			PlusShape: plus,
		}
	}
	return radii
}
