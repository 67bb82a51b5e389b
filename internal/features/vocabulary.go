// Package features maps raw categorical and numeric request inputs to the
// numeric encoding scheme fixed at training time.
package features

// VectorLen is the number of features in the trained schema.
// Slot order: gas, unit, industry, base factor, margin, then the five
// data-quality metrics (reliability, temporal, geographic, technological,
// collection).
const VectorLen = 10

// Feature slot positions within the encoded vector.
const (
	slotGas = iota
	slotUnit
	slotIndustry
	slotBaseFactor
	slotMargin
	slotReliability
	slotTemporal
	slotGeographic
	slotTechnological
	slotCollection
)

// Vocabulary is the fixed category vocabulary established at training time.
// Ordinal codes are list positions; the lists are kept in sorted-label order,
// matching the encoder the model was trained with. The vocabulary is
// versioned configuration: retraining ships a new vocabulary rather than
// touching encoder logic.
type Vocabulary struct {
	Version    string   `json:"version"`
	Gases      []string `json:"gases"`
	Units      []string `json:"units"`
	Industries []string `json:"industries"`
}

// DefaultVocabulary returns the vocabulary the bundled model was trained on:
// US supply chain emissions data, 2010-2016.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Version: "2024.1",
		Gases:   []string{"CH4", "CO2", "N2O", "other"},
		Units:   []string{"CO2e", "kg", "other", "ton"},
		Industries: []string{
			"Aluminum Production",
			"Cement Manufacturing",
			"Chemical Manufacturing",
			"Coal Mining",
			"Crop Production",
			"Dairy Product Manufacturing",
			"Electric Power Generation",
			"Fishing and Aquaculture",
			"Forestry and Logging",
			"Grain Farming",
			"Iron Ore Mining",
			"Natural Gas Distribution",
			"Oil and Gas Extraction",
			"Paper Mills",
			"Petroleum Refineries",
			"Plastics Manufacturing",
			"Steel Manufacturing",
			"Textile Mills",
			"Truck Transportation",
			"Waste Management",
		},
	}
}
