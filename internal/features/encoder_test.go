package features

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Encode_KnownCategories(t *testing.T) {
	e := NewEncoder(DefaultVocabulary())

	vec, err := e.Encode(Observation{
		Gas:           "CH4",
		Unit:          "ton",
		Industry:      "Steel Manufacturing",
		BaseFactor:    0.08,
		MarginFactor:  0.008,
		Reliability:   0.8,
		Temporal:      0.7,
		Geographic:    0.6,
		Technological: 0.5,
		Collection:    0.4,
	})

	require.NoError(t, err)
	require.Len(t, vec, VectorLen)

	// Categorical slots carry the ordinal codes fixed at training time.
	assert.Equal(t, 0.0, vec[slotGas], "CH4 sorts first in the gas vocabulary")
	assert.Equal(t, 3.0, vec[slotUnit], "ton sorts last in the unit vocabulary")
	assert.Equal(t, 16.0, vec[slotIndustry])

	// Numeric fields pass through unchanged into their designated positions.
	assert.Equal(t, 0.08, vec[slotBaseFactor])
	assert.Equal(t, 0.008, vec[slotMargin])
	assert.Equal(t, 0.8, vec[slotReliability])
	assert.Equal(t, 0.7, vec[slotTemporal])
	assert.Equal(t, 0.6, vec[slotGeographic])
	assert.Equal(t, 0.5, vec[slotTechnological])
	assert.Equal(t, 0.4, vec[slotCollection])
}

func TestEncoder_Encode_UnknownCategory(t *testing.T) {
	e := NewEncoder(DefaultVocabulary())

	valid := Observation{Gas: "CO2", Unit: "kg", Industry: "Paper Mills"}

	tests := []struct {
		name      string
		mutate    func(*Observation)
		wantField string
		wantValue string
	}{
		{
			name:      "unknown industry",
			mutate:    func(o *Observation) { o.Industry = "NotARealIndustry" },
			wantField: "industry",
			wantValue: "NotARealIndustry",
		},
		{
			name:      "unknown gas",
			mutate:    func(o *Observation) { o.Gas = "SF6" },
			wantField: "gas",
			wantValue: "SF6",
		},
		{
			name:      "unknown unit",
			mutate:    func(o *Observation) { o.Unit = "lbs" },
			wantField: "unit",
			wantValue: "lbs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := valid
			tt.mutate(&obs)

			vec, err := e.Encode(obs)

			require.Error(t, err)
			assert.Nil(t, vec, "no partial vector on rejection")

			var catErr *UnknownCategoryError
			require.ErrorAs(t, err, &catErr)
			assert.Equal(t, tt.wantField, catErr.Field)
			assert.Equal(t, tt.wantValue, catErr.Value)
		})
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	vocab := DefaultVocabulary()
	e := NewEncoder(vocab)

	// Every category encodes to a unique, stable position and decodes back
	// to the original label.
	seen := make(map[float64]bool)
	for _, industry := range vocab.Industries {
		vec, err := e.Encode(Observation{Gas: "CO2", Unit: "kg", Industry: industry})
		require.NoError(t, err)

		code := vec[slotIndustry]
		assert.False(t, seen[code], "industry code %v reused", code)
		seen[code] = true

		label, ok := e.DecodeIndustry(int(code))
		require.True(t, ok)
		assert.Equal(t, industry, label)
	}

	for i, gas := range vocab.Gases {
		label, ok := e.DecodeGas(i)
		require.True(t, ok)
		assert.Equal(t, gas, label)
	}
	for i, unit := range vocab.Units {
		label, ok := e.DecodeUnit(i)
		require.True(t, ok)
		assert.Equal(t, unit, label)
	}
}

func TestEncoder_Decode_OutOfRange(t *testing.T) {
	e := NewEncoder(DefaultVocabulary())

	_, ok := e.DecodeGas(-1)
	assert.False(t, ok)

	_, ok = e.DecodeIndustry(len(DefaultVocabulary().Industries))
	assert.False(t, ok)
}

func TestDefaultVocabulary_SortedLabelOrder(t *testing.T) {
	vocab := DefaultVocabulary()

	// Ordinal codes follow sorted-label order, matching the trained encoder.
	assert.True(t, sort.StringsAreSorted(vocab.Gases))
	assert.True(t, sort.StringsAreSorted(vocab.Units))
	assert.True(t, sort.StringsAreSorted(vocab.Industries))

	assert.Contains(t, vocab.Industries, "Steel Manufacturing")
	assert.NotEmpty(t, vocab.Version)
}
