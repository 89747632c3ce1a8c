package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smpls/maxplus"
)

// Value is one matrix cell. It decodes numbers and the spellings "-inf",
// "-Inf", "-∞" and "-.inf" of the max-plus zero.
type Value float64

var (
	_ yaml.Unmarshaler = (*Value)(nil)
	_ yaml.Marshaler   = Value(0)
)

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: matrix cell must be a scalar: %w", node.Line, ErrInvalidModel)
	}
	s := strings.TrimSpace(node.Value)
	switch strings.ToLower(s) {
	case "-inf", "-∞", "-.inf", "-infinity":
		*v = Value(maxplus.MinusInfinity)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 1) {
		return fmt.Errorf("line %d: matrix cell %q: %w", node.Line, s, ErrInvalidModel)
	}
	*v = Value(f)

	return nil
}

// MarshalYAML implements yaml.Marshaler; −∞ is written as "-inf".
func (v Value) MarshalYAML() (interface{}, error) {
	if maxplus.IsMinusInfinity(float64(v)) {
		return "-inf", nil
	}

	return float64(v), nil
}
