package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/aryankumar/oclogin/internal/registry"
)

func testClusters() registry.Registry {
	return registry.Registry{
		{Name: "prod", URL: "https://x", Username: "bob"},
		{Name: "dev", URL: "https://api.dev:6443", Username: "alice"},
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		wantType string
	}{
		{name: "plain", format: FormatPlain, wantType: "*output.PlainFormatter"},
		{name: "table", format: FormatTable, wantType: "*output.TableFormatter"},
		{name: "json", format: FormatJSON, wantType: "*output.JSONFormatter"},
		{name: "yaml", format: FormatYAML, wantType: "*output.YAMLFormatter"},
		{name: "unknown falls back to plain", format: Format("xml"), wantType: "*output.PlainFormatter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := NewFormatter(tt.format)
			if got := fmt.Sprintf("%T", formatter); got != tt.wantType {
				t.Errorf("got %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	opts := &Options{}
	for _, opt := range []Option{WithNoColor(true), WithNoHeaders(true), WithWide(true)} {
		opt(opts)
	}

	if !opts.NoColor || !opts.NoHeaders || !opts.Wide {
		t.Errorf("options not applied: %+v", opts)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatTable},
		{input: "plain", want: FormatPlain},
		{input: "JSON", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "table", want: FormatTable},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input, FormatTable)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatClusters_AllFormatsHandleEmpty(t *testing.T) {
	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewFormatter(format, WithNoColor(true)).FormatClusters(&buf, nil); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
