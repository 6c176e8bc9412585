// SPDX-License-Identifier: MIT
package hal

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseRanges_Degenerate(t *testing.T) {
	rates := CollapseRanges([]RateRange{{Min: 44100, Max: 44100}})
	assert.Equal(t, []float64{44100}, rates, "a [r, r] range contributes exactly one value")
}

func TestCollapseRanges_Continuous(t *testing.T) {
	rates := CollapseRanges([]RateRange{{Min: 8000, Max: 96000}})
	assert.Equal(t, []float64{8000, 96000}, rates, "a [a, b] range contributes exactly its endpoints")
}

func TestCollapseRanges_DeduplicatesAndSorts(t *testing.T) {
	rates := CollapseRanges([]RateRange{
		{Min: 96000, Max: 96000},
		{Min: 44100, Max: 44100},
		{Min: 44100, Max: 48000},
		{Min: 48000, Max: 48000},
	})

	assert.Equal(t, []float64{44100, 48000, 96000}, rates)
	assert.True(t, sort.Float64sAreSorted(rates))
}

func TestCollapseRanges_Empty(t *testing.T) {
	assert.Nil(t, CollapseRanges(nil))
	assert.Nil(t, CollapseRanges([]RateRange{}))
}

func TestCollapseRanges_DiscardsNonPositive(t *testing.T) {
	rates := CollapseRanges([]RateRange{
		{Min: 0, Max: 48000},
		{Min: -1, Max: -1},
	})
	assert.Equal(t, []float64{48000}, rates)
}
