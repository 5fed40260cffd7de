// Package output renders the cluster registry and other command results.
//
// # Formats
//
//   - plain (default for cluster list): one cluster name per line, or the
//     tab-separated name, username and url in wide mode. Suitable for scripts.
//   - table: kubectl-style borderless table with NAME, USERNAME and URL columns
//   - json: indented JSON array of cluster records
//   - yaml: YAML sequence of cluster records
//
// # Basic Usage
//
//	formatter := output.NewFormatter(output.FormatPlain, output.WithWide(true))
//	formatter.FormatClusters(os.Stdout, clusters)
//
// # Color Support
//
// The table formatter colors headers and cluster names when writing to a TTY.
// Colors are disabled with WithNoColor(true) or when output is redirected.
package output
