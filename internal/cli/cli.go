// Package cli implements the vasroots command-line interface.
//
// vasroots isolates the real roots of polynomials with the continued-fraction method
// from package vas. It is a diagnostic front end: every worklist transition is logged at
// debug level, so --verbose shows how each interval was reached.
//
// # Commands
//
//   - isolate: isolate the roots of one polynomial given on the command line
//   - batch: isolate every polynomial listed in a TOML file
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "vasroots"

// version is injected with -ldflags at build time.
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "vasroots isolates real polynomial roots",
		Long:         `vasroots isolates the real roots of univariate polynomials with the Vincent-Akritas-Strzebonski continued-fraction method and prints one interval per root.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.isolateCommand())
	root.AddCommand(c.batchCommand())

	return root
}
