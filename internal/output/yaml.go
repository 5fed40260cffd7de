package output

import (
	"io"

	"github.com/aryankumar/oclogin/internal/probe"
	"github.com/aryankumar/oclogin/internal/registry"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats output as YAML
type YAMLFormatter struct {
	options *Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(opts *Options) *YAMLFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &YAMLFormatter{
		options: opts,
	}
}

// Format outputs a single data item as YAML
func (f *YAMLFormatter) Format(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(data)
}

// FormatClusters outputs the registry as a YAML sequence
func (f *YAMLFormatter) FormatClusters(w io.Writer, clusters registry.Registry) error {
	if clusters == nil {
		clusters = registry.Registry{}
	}
	return f.Format(w, clusters)
}

// FormatStatuses outputs the statuses as a YAML sequence
func (f *YAMLFormatter) FormatStatuses(w io.Writer, statuses []probe.Status) error {
	if statuses == nil {
		statuses = []probe.Status{}
	}
	return f.Format(w, statuses)
}
