package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/aryankumar/oclogin/internal/probe"
	"github.com/aryankumar/oclogin/internal/registry"
)

// Format represents the output format type
type Format string

const (
	// FormatPlain outputs one line per item
	FormatPlain Format = "plain"
	// FormatTable outputs data in a table format (kubectl-style)
	FormatTable Format = "table"
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in help order
var Formats = []Format{FormatPlain, FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a format name. An empty name yields fallback.
func ParseFormat(name string, fallback Format) (Format, error) {
	if name == "" {
		return fallback, nil
	}

	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}

	names := make([]string, 0, len(Formats))
	for _, f := range Formats {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unsupported output format: %s (supported: %s)", name, strings.Join(names, ", "))
}

// Formatter defines the interface for output formatting
type Formatter interface {
	// Format outputs a single data item to the writer
	Format(w io.Writer, data interface{}) error

	// FormatClusters outputs the cluster registry in registry order
	FormatClusters(w io.Writer, clusters registry.Registry) error

	// FormatStatuses outputs reachability results in registry order
	FormatStatuses(w io.Writer, statuses []probe.Status) error
}

// Option is a functional option for configuring formatters
type Option func(*Options)

// Options holds configuration for formatters
type Options struct {
	// NoColor disables color output
	NoColor bool

	// NoHeaders disables table headers
	NoHeaders bool

	// Wide includes username and url for each cluster, and latency for statuses
	Wide bool
}

// WithNoColor disables color output
func WithNoColor(noColor bool) Option {
	return func(o *Options) {
		o.NoColor = noColor
	}
}

// WithNoHeaders disables table headers
func WithNoHeaders(noHeaders bool) Option {
	return func(o *Options) {
		o.NoHeaders = noHeaders
	}
}

// WithWide enables wide output
func WithWide(wide bool) Option {
	return func(o *Options) {
		o.Wide = wide
	}
}

// NewFormatter creates a new formatter based on the specified format
func NewFormatter(format Format, opts ...Option) Formatter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	switch format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(options)
	}
}
