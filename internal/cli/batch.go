package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// batchFile is the TOML layout read by the batch command:
//
//	backend = "bigfloat"
//	precision = 512
//	workers = 4
//
//	[[polynomial]]
//	name = "cubic"
//	coefficients = ["7", "-7", "0", "1"]
type batchFile struct {
	settings
	Polynomials []request `toml:"polynomial"`
}

var errEmptyBatch = errors.New("batch file lists no polynomials")

func loadBatch(path string) (*batchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	b := batchFile{settings: defaultSettings()}
	if err := toml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(b.Polynomials) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptyBatch)
	}

	if err := b.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &b, nil
}

func (c *CLI) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE.toml",
		Short: "Isolate the real roots of every polynomial in a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			b, err := loadBatch(args[0])
			if err != nil {
				return err
			}

			logger := c.Logger.With("run", uuid.NewString())
			logger.Debug("batch loaded", "file", args[0], "polynomials", len(b.Polynomials), "backend", b.Backend)

			prog := newProgress(logger)

			var failed []error
			for i, req := range b.Polynomials {
				if err := ctx.Err(); err != nil {
					return err
				}

				if req.Name == "" {
					req.Name = fmt.Sprintf("#%d", i+1)
				}

				r, err := isolate(ctx, logger.With("polynomial", req.Name), b.settings, req)
				if err != nil {
					if ctx.Err() != nil {
						return err
					}

					printError(out, "%s: %v", req.Name, err)
					failed = append(failed, fmt.Errorf("%s: %w", req.Name, err))

					continue
				}

				printReport(out, r)
			}

			prog.done("batch complete", "polynomials", len(b.Polynomials), "failed", len(failed))

			if len(failed) > 0 {
				return fmt.Errorf("%d of %d polynomials failed: %w", len(failed), len(b.Polynomials), errors.Join(failed...))
			}

			printSuccess(out, "isolated %d polynomials", len(b.Polynomials))

			return nil
		},
	}
}
