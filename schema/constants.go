package schema

// Custom string types for type safety.
type (
	// AxisName is the display name of one metabolic risk axis.
	AxisName string

	// OutputMode represents the format of the output.
	OutputMode string
)

// The eleven built-in axes.
const (
	AxisInflammation   AxisName = "Inflammation and immune activation"
	AxisMitochondria   AxisName = "Mitochondrial health"
	AxisAdaptation     AxisName = "Metabolic adaptation and stress resilience"
	AxisDetox          AxisName = "Metabolic detoxification"
	AxisProliferation  AxisName = "Proliferative process assessment"
	AxisRespiratory    AxisName = "Respiratory system status"
	AxisImmuneBalance  AxisName = "Immune-metabolic balance status"
	AxisCardiovascular AxisName = "Cardiovascular system status"
	AxisLiver          AxisName = "Liver function status"
	AxisMicrobiota     AxisName = "Microbiota status"
	AxisKrebs          AxisName = "Krebs cycle and amino-acid balance"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// Scoring constants.
const (
	DefaultAlpha = 1.7 // exponent applied in the low-value branch
	MinAlpha     = 1.0
	MaxAlpha     = 3.0

	MinWeight = 0.01 // lower bound for adjusted weights
	MaxWeight = 0.50 // upper bound for adjusted weights

	LinearThreshold = 7.0  // raw values at or above this use the linear branch
	RawScale        = 10.0 // raw axis values are on a 0-10 scale
	MaxFinalScore   = 5.0  // final scores are clamped from above at this value
)

// Table column defaults.
const (
	DefaultIDColumn     = "Code"
	DefaultIgnoreColumn = "Patient"
)

// AllAxes lists the built-in axes in display order.
var AllAxes = []AxisName{
	AxisInflammation,
	AxisMitochondria,
	AxisAdaptation,
	AxisDetox,
	AxisProliferation,
	AxisRespiratory,
	AxisImmuneBalance,
	AxisCardiovascular,
	AxisLiver,
	AxisMicrobiota,
	AxisKrebs,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// knownAxes is the lookup form of AllAxes.
var knownAxes = func() map[AxisName]struct{} {
	m := make(map[AxisName]struct{}, len(AllAxes))
	for _, a := range AllAxes {
		m[a] = struct{}{}
	}
	return m
}()

// DefaultWeights returns a fresh copy of the built-in weight map.
// Callers may mutate the result; replacing a config's weights with it is the reset action.
func DefaultWeights() AxisWeights {
	return AxisWeights{
		AxisInflammation:   0.10,
		AxisMitochondria:   0.10,
		AxisAdaptation:     0.10,
		AxisDetox:          0.10,
		AxisProliferation:  0.0,
		AxisRespiratory:    0.10,
		AxisImmuneBalance:  0.10,
		AxisCardiovascular: 0.10,
		AxisLiver:          0.01,
		AxisMicrobiota:     0.01,
		AxisKrebs:          0.01,
	}
}
