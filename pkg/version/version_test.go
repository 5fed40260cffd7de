package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" {
		t.Error("Version should not be empty")
	}

	if info.Commit == "" {
		t.Error("Commit should not be empty")
	}

	if info.GoVersion == "" {
		t.Error("GoVersion should not be empty")
	}

	expectedPlatform := runtime.GOOS + "/" + runtime.GOARCH
	if info.Platform != expectedPlatform {
		t.Errorf("Platform = %s, want %s", info.Platform, expectedPlatform)
	}
}

func TestString(t *testing.T) {
	info := Get()
	output := info.String()

	if !strings.Contains(output, "oclogin") {
		t.Error("String output should contain 'oclogin'")
	}

	if !strings.Contains(output, info.Version) {
		t.Errorf("String output should contain version %s", info.Version)
	}

	if !strings.Contains(output, info.Commit) {
		t.Errorf("String output should contain commit %s", info.Commit)
	}
}

func TestMap(t *testing.T) {
	info := Get()
	m := info.Map()

	if len(m) != 5 {
		t.Errorf("expected 5 entries, got %d", len(m))
	}

	if m["Version"] != info.Version {
		t.Errorf("Map version = %s, want %s", m["Version"], info.Version)
	}

	if m["Platform"] != info.Platform {
		t.Errorf("Map platform = %s, want %s", m["Platform"], info.Platform)
	}
}
