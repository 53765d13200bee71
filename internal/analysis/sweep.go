package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/twoslit/internal/optics"
)

// SweepPoint is one bandwidth sample of a sweep.
type SweepPoint struct {
	Bandwidth     float64 `json:"bandwidth"`
	Peak          float64 `json:"peak"`
	Visibility    float64 `json:"visibility"`
	FringeSpacing float64 `json:"fringe_spacing"`
}

// SweepBandwidth evaluates base at steps bandwidths evenly spaced over
// [0, maxBandwidth]. Points are returned in bandwidth order.
func SweepBandwidth(ctx context.Context, base optics.Params, maxBandwidth float64, steps int) ([]SweepPoint, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}
	if maxBandwidth < 0 {
		return nil, fmt.Errorf("%w: max bandwidth %g", optics.ErrInvalidParams, maxBandwidth)
	}

	points := make([]SweepPoint, steps)
	stepSize := maxBandwidth / float64(steps-1)

	ParallelFor(steps, 4, func(start, end int) {
		for i := start; i < end; i++ {
			if ctx.Err() != nil {
				return
			}
			p := base
			p.Bandwidth = float64(i) * stepSize
			pattern := p.Calculate()
			points[i] = SweepPoint{
				Bandwidth:     p.Bandwidth,
				Peak:          pattern.Peak(),
				Visibility:    Visibility(pattern),
				FringeSpacing: pattern.FringeSpacing,
			}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("bandwidth sweep: %w", err)
	}
	return points, nil
}
