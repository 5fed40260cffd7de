package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aryankumar/oclogin/internal/registry"
)

func TestNewTableFormatter(t *testing.T) {
	if formatter := NewTableFormatter(nil); formatter.options == nil {
		t.Error("formatter.options is nil")
	}
}

func TestTableFormatter_FormatClusters(t *testing.T) {
	tests := []struct {
		name        string
		clusters    registry.Registry
		opts        *Options
		contains    []string
		notContains []string
	}{
		{
			name:        "narrow",
			clusters:    testClusters(),
			opts:        &Options{NoColor: true},
			contains:    []string{"NAME", "prod", "dev"},
			notContains: []string{"USERNAME", "https://x"},
		},
		{
			name:     "wide",
			clusters: testClusters(),
			opts:     &Options{NoColor: true, Wide: true},
			contains: []string{"NAME", "USERNAME", "URL", "prod", "bob", "https://x", "alice"},
		},
		{
			name:        "no headers",
			clusters:    testClusters(),
			opts:        &Options{NoColor: true, NoHeaders: true},
			contains:    []string{"prod"},
			notContains: []string{"NAME"},
		},
		{
			name:     "empty",
			clusters: registry.Registry{},
			opts:     &Options{NoColor: true},
			contains: []string{"No clusters saved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTableFormatter(tt.opts).FormatClusters(&buf, tt.clusters); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(out, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestTableFormatter_KeepsRegistryOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&Options{NoColor: true}).FormatClusters(&buf, testClusters()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Index(out, "prod") > strings.Index(out, "dev") {
		t.Errorf("expected prod before dev, got:\n%s", out)
	}
}

func TestTableFormatter_FormatMap(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]string{"version": "v1.0.0", "commit": "abc123"}

	if err := NewTableFormatter(&Options{NoColor: true}).Format(&buf, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"KEY", "VALUE", "version", "v1.0.0", "commit", "abc123"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "commit") > strings.Index(out, "version") {
		t.Errorf("expected keys sorted, got:\n%s", out)
	}
}
