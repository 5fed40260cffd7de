package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/aryankumar/oclogin/internal/cli"
	"github.com/aryankumar/oclogin/internal/login"
	"github.com/aryankumar/oclogin/internal/util"
)

func main() {
	// Setup signal handling for graceful shutdown
	ctx, stop := util.SetupSignalHandler()

	err := cli.Execute(ctx)
	stop()

	if err != nil {
		// The login tool already reported its own failure
		var exitErr *login.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		slog.Error("command failed", "error", util.FriendlyError(err))
		os.Exit(1)
	}
}
