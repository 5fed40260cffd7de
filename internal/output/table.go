package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/aryankumar/oclogin/internal/probe"
	"github.com/aryankumar/oclogin/internal/registry"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter formats output as a table (kubectl-style)
type TableFormatter struct {
	options *Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts *Options) *TableFormatter {
	if opts == nil {
		opts = &Options{}
	}
	return &TableFormatter{
		options: opts,
	}
}

// Format outputs a single data item as a table
func (f *TableFormatter) Format(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case map[string]string:
		return f.formatMap(w, v)
	case string:
		fmt.Fprintln(w, v)
		return nil
	default:
		fmt.Fprintln(w, v)
		return nil
	}
}

// FormatClusters outputs the registry as a table
func (f *TableFormatter) FormatClusters(w io.Writer, clusters registry.Registry) error {
	if len(clusters) == 0 {
		fmt.Fprintln(w, "No clusters saved")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	headers := []string{"NAME"}
	if f.options.Wide {
		headers = append(headers, "USERNAME", "URL")
	}
	f.setHeaders(table, headers, colors)

	for _, c := range clusters {
		name := c.Name
		if !colors.Disabled {
			name = colors.ClusterName("%s", name)
		}

		row := []string{name}
		if f.options.Wide {
			row = append(row, c.Username, c.URL)
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// FormatStatuses outputs reachability results as a table
func (f *TableFormatter) FormatStatuses(w io.Writer, statuses []probe.Status) error {
	if len(statuses) == 0 {
		fmt.Fprintln(w, "No clusters saved")
		return nil
	}

	colors := NewColorScheme(w, f.options.NoColor)
	table := f.createTable(w)

	headers := []string{"NAME", "STATUS", "VERSION"}
	if f.options.Wide {
		headers = append(headers, "URL", "LATENCY", "ERROR")
	}
	f.setHeaders(table, headers, colors)

	for _, s := range statuses {
		name := s.Name
		if !colors.Disabled {
			name = colors.ClusterName("%s", name)
		}

		state := "Reachable"
		if !s.Reachable {
			state = "Unreachable"
		}
		state = colors.StatusColor(!s.Reachable)("%s", state)

		version := s.ServerVersion
		if version == "" {
			version = "<unknown>"
		}

		row := []string{name, state, version}
		if f.options.Wide {
			row = append(row, s.URL, s.Latency, s.Error)
		}
		table.Append(row)
	}

	table.Render()
	return nil
}

// formatMap formats a map as a two-column table sorted by key
func (f *TableFormatter) formatMap(w io.Writer, data map[string]string) error {
	table := f.createTable(w)
	f.setHeaders(table, []string{"KEY", "VALUE"}, NewColorScheme(w, f.options.NoColor))

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		table.Append([]string{k, data[k]})
	}

	table.Render()
	return nil
}

func (f *TableFormatter) setHeaders(table *tablewriter.Table, headers []string, colors *ColorScheme) {
	if f.options.NoHeaders {
		return
	}

	if colors.Disabled {
		table.SetHeader(headers)
		return
	}

	colored := make([]string, len(headers))
	for i, h := range headers {
		colored[i] = colors.Header("%s", h)
	}
	table.SetHeader(colored)
}

// createTable creates a new table with kubectl-style configuration
func (f *TableFormatter) createTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t") // Tab-separated like kubectl
	table.SetNoWhiteSpace(true)

	return table
}
