package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/releasedrop/internal/flagx"
)

// knownFlags lists the value-taking flags of the CLI, config file included.
var knownFlags = []string{"-u", "-m", "-r", "-t", "-d", "-p", "-n", "-l", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   upload endpoint URL
//	-m string   transport: http or s3
//	-r string   default release
//	-t int      upload timeout in seconds (0 disables)
//	-d string   activity database path
//	-p string   YAML policy file
//	-n string   user tag for the activity log
//	-l string   log level
//
// The first positional argument, if any, becomes InitialFile.
func parseFlags(cfg *Config) {
	args := os.Args[1:]
	filtered := flagx.FilterArgs(args, knownFlags[:8])

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UploadEndpoint, "u", cfg.UploadEndpoint, "upload endpoint URL")
	fs.StringVar(&cfg.Transport, "m", cfg.Transport, "transport (http|s3)")
	fs.StringVar(&cfg.DefaultRelease, "r", cfg.DefaultRelease, "default release")
	timeout := fs.Int("t", int(cfg.UploadTimeout.Seconds()), "upload timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "activity database path")
	fs.StringVar(&cfg.PolicyFile, "p", cfg.PolicyFile, "policy tables (YAML)")
	fs.StringVar(&cfg.UserTag, "n", cfg.UserTag, "user tag for the activity log")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	cfg.UploadTimeout = time.Duration(*timeout) * time.Second

	if pos := flagx.Positional(args, knownFlags); len(pos) > 0 {
		cfg.InitialFile = pos[0]
	}
}
