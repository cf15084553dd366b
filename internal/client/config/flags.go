package config

import (
	"flag"
	"os"

	"notekeeper/internal/flagx"
)

// parseFlags overlays cfg with values from recognised command-line flags.
// Unknown flags are ignored so that test binaries can pass their own.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)

	addr := fs.String("a", cfg.ServerEndpointAddr, "server endpoint address")

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})
	if err := fs.Parse(args); err != nil {
		return
	}

	cfg.ServerEndpointAddr = *addr
}
