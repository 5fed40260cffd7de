package output_test

import (
	"os"

	"github.com/aryankumar/oclogin/internal/output"
	"github.com/aryankumar/oclogin/internal/registry"
)

func ExampleNewFormatter() {
	clusters := registry.Registry{
		{Name: "prod", URL: "https://api.prod:6443", Username: "bob"},
		{Name: "dev", URL: "https://api.dev:6443", Username: "alice"},
	}

	output.NewFormatter(output.FormatPlain).FormatClusters(os.Stdout, clusters)
	// Output:
	// prod
	// dev
}
