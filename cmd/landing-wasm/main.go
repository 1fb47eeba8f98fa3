//go:build js && wasm

// Command landing-wasm is the browser client for the landing page. Build it
// with `make wasm`; the server serves the output under /wasm/.
package main

import (
	"log/slog"
	"os"

	"github.com/comdbstn/fashionking/internal/webclient"
	"github.com/comdbstn/fashionking/pkg/logger"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if _, err := webclient.Mount(log); err != nil {
		log.Error("landing client failed to mount", logger.Error(err))
		return
	}

	// Callbacks run on the Go side for as long as the page is open.
	select {}
}
