package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
	"github.com/privateer-tools/glycam2pdb/internal/output"
)

func newValidateCmd(a *app) *cobra.Command {
	var input string
	var summary bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report sugars with unexpected conformations or failed diagnostics",
		Long: `Run the validation engine on a PDB file, or every file beneath a directory,
and list the sugars whose ring conformation is not 4C1 or whose engine
diagnostic is not "yes".

With --summary, list the detected glycans instead.`,
		Example: `  glycam2pdb validate -input man5_converted.pdb
  glycam2pdb validate -input pdb_models --engine-url http://localhost:8000
  glycam2pdb validate -input man5_converted.pdb -summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return usagef("--input is required")
			}
			return runValidate(cmd.Context(), a, cmd.OutOrStdout(), input, summary)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "PDB file or directory to validate")
	cmd.Flags().BoolVar(&summary, "summary", false, "List detected glycans instead of problems")

	return cmd
}

// inputFiles returns input itself or the regular files beneath it.
func inputFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, usagef("input %s: %w", input, err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	var files []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

func runValidate(ctx context.Context, a *app, w io.Writer, input string, summary bool) error {
	files, err := inputFiles(input)
	if err != nil {
		return err
	}
	client, err := a.engineClient()
	if err != nil {
		return err
	}

	st, err := a.openStore()
	if err != nil {
		return err
	}
	vw := output.NewValidationWriter(w)
	rep := output.NewReporter(client, vw)
	rep.SetLogger(a.logger)
	if st != nil {
		defer st.Close()
		rep.AddSink(st)
	}

	failed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if summary {
			err = listGlycans(ctx, client, w, path)
		} else {
			err = rep.Validate(ctx, path)
		}
		switch {
		case errors.Is(err, engine.ErrNoGlycans):
			fmt.Fprintf(w, "No glycans detected in: %s\n", path)
		case err != nil:
			a.logger.Warn("validation failed", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(w, "Validation failed for %s: %v\n", path, err)
			failed++
		}
	}

	if !summary {
		vw.WriteSummary(w)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be validated", failed, len(files))
	}
	return nil
}

func listGlycans(ctx context.Context, e engine.Engine, w io.Writer, path string) error {
	glycans, err := e.DetectGlycans(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "File path: %s\n", path)
	return output.WriteGlycanListing(w, glycans)
}
