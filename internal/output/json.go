package output

import (
	"encoding/json"
	"io"

	"github.com/aryankumar/oclogin/internal/probe"
	"github.com/aryankumar/oclogin/internal/registry"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	options *Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts *Options) *JSONFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &JSONFormatter{
		options: opts,
	}
}

// Format outputs a single data item as JSON
func (f *JSONFormatter) Format(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// FormatClusters outputs the registry as a JSON array; an empty registry is []
func (f *JSONFormatter) FormatClusters(w io.Writer, clusters registry.Registry) error {
	if clusters == nil {
		clusters = registry.Registry{}
	}
	return f.Format(w, clusters)
}

// FormatStatuses outputs the statuses as a JSON array
func (f *JSONFormatter) FormatStatuses(w io.Writer, statuses []probe.Status) error {
	if statuses == nil {
		statuses = []probe.Status{}
	}
	return f.Format(w, statuses)
}
