package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/spacedata/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   path to the user store CSV file (default from Config)
//	-k string   NASA API key (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path to the user store CSV file")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "NASA API key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
