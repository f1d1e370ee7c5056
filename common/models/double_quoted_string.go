package models

import "gopkg.in/yaml.v3"

// DoubleQuotedString is a string that is always rendered as a double-quoted YAML scalar.
// The quoting is a rendering preference only; the value is never altered.
type DoubleQuotedString string

func (s DoubleQuotedString) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Tag:   "!!str",
		Value: string(s),
	}, nil
}

func (s DoubleQuotedString) String() string {
	return string(s)
}
