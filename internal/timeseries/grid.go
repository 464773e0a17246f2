// Package timeseries holds the resampling and unit helpers shared by the
// calculation services.
package timeseries

// ToIntegerGrid resamples a series of (index, value) points onto the
// integer grid [0, gridSize). For each integer step it interpolates
// linearly between the two nearest measured points; steps outside the
// measured range take the boundary value. An empty input yields a grid
// of zeros.
func ToIntegerGrid(indices []float64, values []float64, gridSize int) []float64 {
	grid := make([]float64, gridSize)
	if len(indices) == 0 || len(values) == 0 {
		return grid
	}

	for i := 0; i < gridSize; i++ {
		x := float64(i)

		switch {
		case x <= indices[0]:
			grid[i] = values[0]
		case x >= indices[len(indices)-1]:
			grid[i] = values[len(values)-1]
		default:
			// Find the bracketing measured points.
			hi := 1
			for hi < len(indices) && indices[hi] < x {
				hi++
			}
			x0, x1 := indices[hi-1], indices[hi]
			y0, y1 := values[hi-1], values[hi]
			if x0 == x1 {
				grid[i] = y0
				continue
			}
			grid[i] = y0*(x-x1)/(x0-x1) + y1*(x-x0)/(x1-x0)
		}
	}

	return grid
}
