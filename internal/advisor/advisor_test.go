package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvisor_Categorize(t *testing.T) {
	a := New(DefaultThresholds(), DefaultConfidenceCutoff)

	tests := []struct {
		value float64
		want  Category
	}{
		{0.0, CategoryLow},
		{0.049, CategoryLow},
		{0.05, CategoryModerate}, // boundary values land in the higher category
		{0.0999, CategoryModerate},
		{0.10, CategoryHigh},
		{0.249, CategoryHigh},
		{0.25, CategoryCritical},
		{3.7, CategoryCritical},
		{-0.01, CategoryLow}, // implausible negatives still classify as low
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, a.Categorize(tt.value), "value %v", tt.value)
	}
}

func TestAdvisor_Recommend_ConfidenceCutoff(t *testing.T) {
	a := New(DefaultThresholds(), DefaultConfidenceCutoff)

	qualified := a.Recommend(0.07, 0.49)
	assert.True(t, qualified.LowConfidence)
	assert.Equal(t, CategoryModerate, qualified.Category)

	confident := a.Recommend(0.07, 0.5)
	assert.False(t, confident.LowConfidence, "cutoff itself is confident")
	assert.Equal(t, CategoryModerate, confident.Category)

	assert.NotEqual(t, qualified.Advice, confident.Advice,
		"low-confidence advice carries a data-quality caveat")
}

func TestAdvisor_Recommend_Total(t *testing.T) {
	a := New(DefaultThresholds(), DefaultConfidenceCutoff)

	// One representative value per category, crossed with both confidence
	// bands. Every combination must yield defined, non-empty advice.
	values := map[Category]float64{
		CategoryLow:      0.01,
		CategoryModerate: 0.07,
		CategoryHigh:     0.15,
		CategoryCritical: 0.5,
	}

	for category, value := range values {
		for _, score := range []float64{0.3, 0.9} {
			rec := a.Recommend(value, score)

			assert.Equal(t, category, rec.Category)
			assert.NotEmpty(t, rec.Advice, "category %s score %v", category, score)
			assert.NotEmpty(t, rec.Actions, "category %s score %v", category, score)
		}
	}
}

func TestAdvisor_Recommend_DataGapAction(t *testing.T) {
	a := New(DefaultThresholds(), DefaultConfidenceCutoff)

	const gapAction = "Improve data collection methods to raise prediction accuracy"

	weak := a.Recommend(0.01, 0.59)
	assert.Contains(t, weak.Actions, gapAction)

	strong := a.Recommend(0.01, 0.6)
	assert.NotContains(t, strong.Actions, gapAction)
}

func TestAdvisor_Recommend_DoesNotAliasActionTable(t *testing.T) {
	a := New(DefaultThresholds(), DefaultConfidenceCutoff)

	first := a.Recommend(0.01, 0.9)
	first.Actions[0] = "mutated"

	second := a.Recommend(0.01, 0.9)
	assert.NotEqual(t, "mutated", second.Actions[0])
}

func TestThresholds_Validate(t *testing.T) {
	require.NoError(t, DefaultThresholds().Validate())

	tests := []struct {
		name       string
		thresholds Thresholds
	}{
		{"zero moderate", Thresholds{Moderate: 0, High: 0.1, Critical: 0.25}},
		{"negative high", Thresholds{Moderate: 0.05, High: -0.1, Critical: 0.25}},
		{"not ascending", Thresholds{Moderate: 0.1, High: 0.05, Critical: 0.25}},
		{"equal boundaries", Thresholds{Moderate: 0.05, High: 0.05, Critical: 0.25}},
		{"nan", Thresholds{Moderate: nan(), High: 0.1, Critical: 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.thresholds.Validate())
		})
	}
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
