package artifact

import _ "embed"

// Embedded default artifacts, produced by the offline training pipeline.
// Their serialized layout is the training side's concern; this package only
// consumes the (coefficients, intercept) and (mean, scale) contract.

//go:embed data/model.json
var rawModelJSON []byte

//go:embed data/scaler.json
var rawScalerJSON []byte
