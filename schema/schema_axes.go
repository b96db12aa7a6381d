package schema

// AxesRenderModel contains all processed data needed for displaying the axis configuration.
type AxesRenderModel struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Formula     []string     `json:"formula"`
	Alpha       float64      `json:"alpha"`
	Axes        []AxisWeight `json:"axes"`
	WeightSum   float64      `json:"weight_sum"`
}
