package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/image-extender/internal/batch"
	"github.com/ironsheep/image-extender/internal/imaging"
	"github.com/ironsheep/image-extender/internal/logging"
)

// Version information - set by ldflags during build
var (
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Extend PNG images to a target size by adding transparent margins.

The original pixels are centered and never scaled. When PATH is a directory every
.png file beneath it is processed. Results are written to an ImageExtended folder
next to each input.`

// exitUsage is returned for a rejected target size.
const exitUsage = 2

var cli struct {
	Path   string `arg:"" help:"PNG file or directory."`
	Width  uint32 `arg:"" help:"Target width in pixels."`
	Height uint32 `arg:"" help:"Target height in pixels."`

	LogLevel string           `help:"Log level: debug, info, warn or error." default:"warn" env:"IMAGE_EXTENDER_LOG_LEVEL"`
	NoColor  bool             `help:"Disable colored log output."`
	Version  kong.VersionFlag `short:"v" help:"Print version information and exit."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("image-extender"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("image-extender %s (built %s, commit %s)", Version, BuildTime, GitCommit),
		},
	)

	logger, err := logging.New(os.Stderr, cli.LogLevel, cli.NoColor)
	ctx.FatalIfErrorf(err)

	driver := &batch.Driver{
		Out:    os.Stdout,
		Err:    os.Stderr,
		Logger: logger,
	}

	_, err = driver.Run(cli.Path, int(cli.Width), int(cli.Height))
	if err != nil && !errors.Is(err, batch.ErrInvalidPath) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logger.Debug("run finished", "error", err)
	os.Exit(exitCode(err))
}

// exitCode maps the result of a batch run to the process exit status. Per-item
// failures are not errors here and exit 0.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, imaging.ErrInvalidTarget):
		return exitUsage
	default:
		return 1
	}
}
