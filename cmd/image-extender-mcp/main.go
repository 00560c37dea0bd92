package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/image-extender/internal/logging"
	"github.com/ironsheep/image-extender/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `MCP server exposing the extend_image tool.

This server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop). Logs are written to stderr.`

var cli struct {
	LogLevel string           `help:"Log level: debug, info, warn or error." default:"info" env:"IMAGE_EXTENDER_LOG_LEVEL"`
	NoColor  bool             `help:"Disable colored log output."`
	Version  kong.VersionFlag `short:"v" help:"Print version information and exit."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name(server.ServerName),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s %s (built %s, commit %s)", server.ServerName, Version, BuildTime, GitCommit),
		},
	)

	// Logs go to stderr; stdout is reserved for the MCP protocol.
	logger, err := logging.New(os.Stderr, cli.LogLevel, cli.NoColor)
	ctx.FatalIfErrorf(err)

	logger.Debug("starting server", "version", Version, "built", BuildTime, "commit", GitCommit)

	srv := server.New(Version, logger)
	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	logger.Debug("input closed, shutting down")
}
