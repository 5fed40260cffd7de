package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aryankumar/oclogin/internal/probe"
	"gopkg.in/yaml.v3"
)

func testStatuses() []probe.Status {
	return []probe.Status{
		{Name: "prod", URL: "https://x", Reachable: true, ServerVersion: "v1.29.5", Latency: "42ms"},
		{Name: "dev", URL: "https://api.dev", Reachable: false, Error: "connection refused", Latency: "3ms"},
	}
}

func TestPlainFormatter_FormatStatuses(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
		want string
	}{
		{
			name: "narrow",
			opts: &Options{},
			want: "prod\treachable\tv1.29.5\ndev\tunreachable\tconnection refused\n",
		},
		{
			name: "wide",
			opts: &Options{Wide: true},
			want: "prod\treachable\tv1.29.5\thttps://x\t42ms\ndev\tunreachable\tconnection refused\thttps://api.dev\t3ms\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewPlainFormatter(tt.opts).FormatStatuses(&buf, testStatuses()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTableFormatter_FormatStatuses(t *testing.T) {
	tests := []struct {
		name        string
		statuses    []probe.Status
		opts        *Options
		contains    []string
		notContains []string
	}{
		{
			name:        "narrow",
			statuses:    testStatuses(),
			opts:        &Options{NoColor: true},
			contains:    []string{"NAME", "STATUS", "VERSION", "Reachable", "Unreachable", "v1.29.5", "<unknown>"},
			notContains: []string{"LATENCY", "connection refused"},
		},
		{
			name:     "wide",
			statuses: testStatuses(),
			opts:     &Options{NoColor: true, Wide: true},
			contains: []string{"URL", "LATENCY", "ERROR", "https://api.dev", "42ms", "connection refused"},
		},
		{
			name:     "empty",
			statuses: nil,
			opts:     &Options{NoColor: true},
			contains: []string{"No clusters saved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewTableFormatter(tt.opts).FormatStatuses(&buf, tt.statuses); err != nil {
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

func TestJSONFormatter_FormatStatuses(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(nil).FormatStatuses(&buf, testStatuses()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []probe.Status
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || !got[0].Reachable || got[1].Error != "connection refused" {
		t.Errorf("unexpected statuses %+v", got)
	}
	if strings.Contains(buf.String(), `"serverVersion": ""`) {
		t.Error("empty server version should be omitted")
	}

	buf.Reset()
	if err := NewJSONFormatter(nil).FormatStatuses(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}

func TestYAMLFormatter_FormatStatuses(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLFormatter(nil).FormatStatuses(&buf, testStatuses()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []probe.Status
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if len(got) != 2 || got[0].ServerVersion != "v1.29.5" || got[1].Reachable {
		t.Errorf("unexpected statuses %+v", got)
	}
}
