package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/metaboscore/metaboscore/internal/contract"
	"github.com/metaboscore/metaboscore/schema"
	"gopkg.in/yaml.v3"
)

// weightsConfigHeader is written above the YAML block.
const weightsConfigHeader = "# Active scoring weights. Paste into .metaboscore.yaml to reuse them."

// WriteWeightsBlock prints the active alpha and weights in the config file format.
// JSON output is also supported; every other format falls back to YAML.
func WriteWeightsBlock(weights schema.AxisWeights, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Alpha   float64             `json:"alpha"`
				Weights []schema.AxisWeight `json:"weights"`
			}{Alpha: cfg.Alpha, Weights: weights.Ordered()})
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeWeightsYAML(w, weights, cfg.Alpha)
	}, "Wrote YAML")
}

// writeWeightsYAML encodes the weights as a mapping in display order.
func writeWeightsYAML(w io.Writer, weights schema.AxisWeights, alpha float64) error {
	weightsNode := &yaml.Node{Kind: yaml.MappingNode}
	for _, aw := range weights.Ordered() {
		weightsNode.Content = append(weightsNode.Content, stringNode(string(aw.Axis)), floatNode(aw.Weight))
	}

	root := &yaml.Node{
		Kind:        yaml.MappingNode,
		HeadComment: weightsConfigHeader,
		Content: []*yaml.Node{
			stringNode("alpha"), floatNode(alpha),
			stringNode("weights"), weightsNode,
		},
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// floatNode keeps a decimal point so whole numbers still resolve as floats.
func floatNode(v float64) *yaml.Node {
	value := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(value, ".") {
		value += ".0"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: value}
}
