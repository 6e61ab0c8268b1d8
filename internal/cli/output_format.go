package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputText, OutputJSON, OutputYAML}
)

// Set implements pflag.Value.
func (f *OutputFormat) Set(v string) error {
	for _, format := range allOutputFormats {
		if v == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, valid values are %q, %q or %q", v, OutputText, OutputJSON, OutputYAML)
}

// String implements pflag.Value.
func (f *OutputFormat) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string {
	return "OutputFormat"
}
