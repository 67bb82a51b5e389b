package features

import "github.com/ecopredict/ecopredict/internal/model"

// Observation is the raw input to the encoder: validated categorical labels
// and pass-through numeric fields for one prediction request.
type Observation struct {
	Gas      string
	Unit     string
	Industry string

	BaseFactor   float64
	MarginFactor float64

	Reliability   float64
	Temporal      float64
	Geographic    float64
	Technological float64
	Collection    float64
}

// Encoder translates observations into the fixed feature-vector layout using
// a trained vocabulary. Safe for concurrent use once constructed.
type Encoder struct {
	vocab      Vocabulary
	gases      map[string]int
	units      map[string]int
	industries map[string]int
}

// NewEncoder builds an Encoder over the given vocabulary.
func NewEncoder(vocab Vocabulary) *Encoder {
	return &Encoder{
		vocab:      vocab,
		gases:      indexOf(vocab.Gases),
		units:      indexOf(vocab.Units),
		industries: indexOf(vocab.Industries),
	}
}

func indexOf(labels []string) map[string]int {
	m := make(map[string]int, len(labels))
	for i, label := range labels {
		m[label] = i
	}
	return m
}

// Vocabulary returns the vocabulary the encoder was built with.
func (e *Encoder) Vocabulary() Vocabulary {
	return e.vocab
}

// Encode produces the model-ready feature vector for obs. Categorical slots
// get the ordinal code fixed at training time; numeric fields pass through
// unchanged into their designated positions.
//
// Returns an *UnknownCategoryError naming the offending field and value when
// a categorical label is not in the vocabulary.
func (e *Encoder) Encode(obs Observation) (model.FeatureVector, error) {
	gas, ok := e.gases[obs.Gas]
	if !ok {
		return nil, &UnknownCategoryError{Field: "gas", Value: obs.Gas}
	}
	unit, ok := e.units[obs.Unit]
	if !ok {
		return nil, &UnknownCategoryError{Field: "unit", Value: obs.Unit}
	}
	industry, ok := e.industries[obs.Industry]
	if !ok {
		return nil, &UnknownCategoryError{Field: "industry", Value: obs.Industry}
	}

	vec := make(model.FeatureVector, VectorLen)
	vec[slotGas] = float64(gas)
	vec[slotUnit] = float64(unit)
	vec[slotIndustry] = float64(industry)
	vec[slotBaseFactor] = obs.BaseFactor
	vec[slotMargin] = obs.MarginFactor
	vec[slotReliability] = obs.Reliability
	vec[slotTemporal] = obs.Temporal
	vec[slotGeographic] = obs.Geographic
	vec[slotTechnological] = obs.Technological
	vec[slotCollection] = obs.Collection
	return vec, nil
}

// DecodeGas recovers the gas label for an ordinal code.
// Returns ("", false) when the code is outside the vocabulary.
func (e *Encoder) DecodeGas(code int) (string, bool) {
	return decode(e.vocab.Gases, code)
}

// DecodeUnit recovers the unit label for an ordinal code.
func (e *Encoder) DecodeUnit(code int) (string, bool) {
	return decode(e.vocab.Units, code)
}

// DecodeIndustry recovers the industry label for an ordinal code.
func (e *Encoder) DecodeIndustry(code int) (string, bool) {
	return decode(e.vocab.Industries, code)
}

func decode(labels []string, code int) (string, bool) {
	if code < 0 || code >= len(labels) {
		return "", false
	}
	return labels[code], true
}
