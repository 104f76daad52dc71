// Package analysis inspects stored run traces.
//
// A bouncing pile of bodies settles into a rhythm: the average speed rises
// and falls once per bounce. [DominantPeriod] finds that rhythm from the
// power spectrum of a trace:
//
//	period, err := analysis.DominantPeriod(trace.Speeds())
//	// period is in ticks
package analysis
