package output

import (
	"fmt"
	"io"

	"github.com/aryankumar/oclogin/internal/probe"
	"github.com/aryankumar/oclogin/internal/registry"
)

// PlainFormatter writes one line per item with no decoration
type PlainFormatter struct {
	options *Options
}

// NewPlainFormatter creates a new plain formatter
func NewPlainFormatter(opts *Options) *PlainFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &PlainFormatter{
		options: opts,
	}
}

// Format writes the value's string form on its own line
func (f *PlainFormatter) Format(w io.Writer, data interface{}) error {
	_, err := fmt.Fprintln(w, data)
	return err
}

// FormatClusters writes one line per cluster
func (f *PlainFormatter) FormatClusters(w io.Writer, clusters registry.Registry) error {
	for _, line := range clusters.Lines(f.options.Wide) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatStatuses writes "name<TAB>status<TAB>version-or-error" per cluster
func (f *PlainFormatter) FormatStatuses(w io.Writer, statuses []probe.Status) error {
	for _, s := range statuses {
		detail := s.ServerVersion
		state := "reachable"
		if !s.Reachable {
			state = "unreachable"
			detail = s.Error
		}

		line := fmt.Sprintf("%s\t%s\t%s", s.Name, state, detail)
		if f.options.Wide {
			line = fmt.Sprintf("%s\t%s\t%s", line, s.URL, s.Latency)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
