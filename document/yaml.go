package document

import (
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// EncodeYAML writes v to w as a YAML document.
func EncodeYAML(w io.Writer, v *Value) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return errors.Wrap(enc.Close(), "close yaml encoder")
}

// MarshalYAML implements yaml.Marshaler.
func (v *Value) MarshalYAML() (any, error) {
	return yamlNode(v), nil
}

func yamlNode(v *Value) *yaml.Node {
	switch v.kind {
	case String:
		return scalar("!!str", v.str)
	case Bool:
		return scalar("!!bool", strconv.FormatBool(v.num != 0))
	case Int:
		return scalar("!!int", strconv.FormatInt(int64(v.num), 10))
	case Uint:
		return scalar("!!int", strconv.FormatUint(v.num, 10))
	case Float:
		f := math.Float64frombits(v.num)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return scalar("!!null", "null")
		}
		return scalar("!!float", strconv.FormatFloat(f, 'g', -1, 64))
	case Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if len(v.members) == 0 {
			n.Style = yaml.FlowStyle
		}
		for i := range v.members {
			n.Content = append(n.Content, scalar("!!str", v.members[i].Key), yamlNode(&v.members[i].Value))
		}
		return n
	case Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if len(v.items) == 0 {
			n.Style = yaml.FlowStyle
		}
		for i := range v.items {
			n.Content = append(n.Content, yamlNode(&v.items[i]))
		}
		return n
	}
	return scalar("!!null", "null")
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
