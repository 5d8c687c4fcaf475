package catalog

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Record is one catalog entry. Name is the stable identity.
type Record struct {
	Name    string   `yaml:"name"`
	Public  bool     `yaml:"public"`
	Active  bool     `yaml:"active"`
	Regions []string `yaml:"regions,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
}

// Value is a filter option value. It remembers whether the configured
// scalar was a boolean so it can be written back the same way.
type Value struct {
	raw    string
	isBool bool
}

// StringValue returns a string option value.
func StringValue(s string) Value { return Value{raw: s} }

// BoolValue returns a boolean option value.
func BoolValue(b bool) Value { return Value{raw: strconv.FormatBool(b), isBool: true} }

// String returns the value in its string form ("true", "HS", ...).
func (v Value) String() string { return v.raw }

// IsBool reports whether the value was configured as a boolean.
func (v Value) IsBool() bool { return v.isBool }

// UnmarshalYAML accepts any scalar.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("option value must be a scalar (line %d)", n.Line)
	}
	if n.ShortTag() == "!!bool" {
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			// yaml 1.1 spellings like "yes" / "on" are not accepted as booleans here.
			return fmt.Errorf("invalid boolean option value %q (line %d)", n.Value, n.Line)
		}
		*v = BoolValue(b)
		return nil
	}
	*v = StringValue(n.Value)
	return nil
}

// MarshalYAML writes booleans back as booleans.
func (v Value) MarshalYAML() (any, error) {
	if v.isBool {
		return v.raw == "true", nil
	}
	return v.raw, nil
}

// Option is one selectable value of a filter field.
type Option struct {
	Label string `yaml:"label"`
	Value Value  `yaml:"value"`
}

// FieldDescriptor describes one filterable attribute and its options.
type FieldDescriptor struct {
	Key     Field    `yaml:"key"`
	Label   string   `yaml:"label"`
	Options []Option `yaml:"options"`
}

// TagColor holds the colours used to render a tag.
type TagColor struct {
	Badge string `yaml:"badge"`
	Dot   string `yaml:"dot"`
}

// Catalog is the full static configuration: records, filter fields and tag colours.
type Catalog struct {
	Records   []Record            `yaml:"records"`
	Fields    []FieldDescriptor   `yaml:"fields"`
	TagColors map[string]TagColor `yaml:"tag_colors,omitempty"`
}

// Descriptor returns the descriptor for key, if the catalog defines one.
func (c *Catalog) Descriptor(key Field) (FieldDescriptor, bool) {
	for _, d := range c.Fields {
		if d.Key == key {
			return d, true
		}
	}
	return FieldDescriptor{}, false
}

// TagColor returns the badge colour for tag, or "" when none is configured.
func (c *Catalog) TagColor(tag string) string {
	if c.TagColors == nil {
		return ""
	}
	return c.TagColors[tag].Badge
}
