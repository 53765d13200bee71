// Package analysis derives fringe metrics from sampled interference patterns.
//
//   - [Visibility]: fringe contrast over the sampled screen
//   - [MeasuredSpacing]: fringe period recovered from the samples via [PowerSpectrum]
//   - [SweepBandwidth]: peak and visibility across a range of source bandwidths
//
// # Coherence
//
// Widening the source band washes the outer fringes out first, so visibility
// falls while the central maximum stays close to 4:
//
//	points, err := analysis.SweepBandwidth(ctx, optics.NewParams(), 50e-9, 11)
//	for _, pt := range points {
//	    fmt.Println(pt.Bandwidth, pt.Visibility)
//	}
package analysis
