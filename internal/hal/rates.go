// SPDX-License-Identifier: MIT
package hal

import "sort"

// CollapseRanges reduces a driver-reported range list to a deduplicated,
// ascending list of discrete sample rates. A degenerate range [r, r]
// contributes the single rate r; a continuous range [a, b] contributes
// only its two endpoints. This is a documented approximation: devices
// advertising truly continuous ranges lose the interior values.
// Non-positive endpoints are discarded.
func CollapseRanges(ranges []RateRange) []float64 {
	if len(ranges) == 0 {
		return nil
	}

	seen := make(map[float64]struct{}, len(ranges)*2)
	for _, r := range ranges {
		if r.Min > 0 {
			seen[r.Min] = struct{}{}
		}
		if r.Max > 0 && r.Max != r.Min {
			seen[r.Max] = struct{}{}
		}
	}

	rates := make([]float64, 0, len(seen))
	for rate := range seen {
		rates = append(rates, rate)
	}
	sort.Float64s(rates)

	return rates
}
