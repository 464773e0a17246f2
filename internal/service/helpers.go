package service

import (
	"errors"
	"fmt"

	api "github.com/terrasense/slope-monitor/api/v1alpha1"
	"github.com/terrasense/slope-monitor/internal/store"
)

func values(points []api.DataPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func indices(points []api.DataPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = float64(p.Index)
	}
	return out
}

func indexed(vals []float64) []api.DataPoint {
	out := make([]api.DataPoint, len(vals))
	for i, v := range vals {
		out[i] = api.DataPoint{Index: i, Value: v}
	}
	return out
}

func timeGrid(n int) []float64 {
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i)
	}
	return grid
}

func minOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// seriesReadError maps a store read failure to the service error space.
// A vanished series between the pre-flight check and the read is still
// reported as missing data.
func seriesReadError(err error, seriesType api.SeriesType) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return NewErrDataNotFound([]api.SeriesType{seriesType})
	}
	return fmt.Errorf("failed to read %s series: %w", seriesType, err)
}
