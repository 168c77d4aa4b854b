package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrList accepts either a single YAML scalar or a sequence of strings.
type StringOrList []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrList.
func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrList{str}
		} else {
			*s = StringOrList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrList.
// A single element is emitted as a scalar, anything else as a sequence.
func (s StringOrList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
