package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophpass/internal/flagx"
)

// parseFlags reads -a (server address) and -t (request timeout, e.g. "2s").
// Unrelated arguments are skipped.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "server gRPC address")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
