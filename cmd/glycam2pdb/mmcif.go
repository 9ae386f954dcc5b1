package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/privateer-tools/glycam2pdb/internal/mmcif"
)

func newMMCIFCmd(a *app) *cobra.Command {
	var input, out string

	cmd := &cobra.Command{
		Use:   "mmcif",
		Short: "Export PDB files as mmCIF",
		Long: `Export a PDB file, or every file beneath a directory, as mmCIF. When a
validation engine is configured each document carries the WURCS of its
first glycan in a _wurcs item.`,
		Example: `  glycam2pdb mmcif -input pdb_models -output cif_models`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" || out == "" {
				return usagef("--input and --output are required")
			}
			return runMMCIF(cmd.Context(), a, cmd.OutOrStdout(), input, out)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "PDB file or directory")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file or directory")

	return cmd
}

func runMMCIF(ctx context.Context, a *app, w io.Writer, input, out string) error {
	info, err := os.Stat(input)
	if err != nil {
		return usagef("input %s: %w", input, err)
	}

	x := mmcif.NewExporter(nil)
	if engineConfigured() {
		client, err := a.engineClient()
		if err != nil {
			return err
		}
		x = mmcif.NewExporter(client)
	}
	x.SetLogger(a.logger)

	if !info.IsDir() {
		if fi, err := os.Stat(out); err == nil && fi.IsDir() {
			out = filepath.Join(out, mmcif.OutputName(filepath.Base(input)))
		}
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := x.ExportFile(ctx, input, out); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s\n", out)
		return nil
	}

	written, failures, err := x.ExportTree(ctx, input, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Exported %d files to %s\n", written, out)
	for _, f := range failures {
		fmt.Fprintf(w, "  Error: %v\n", f.Err)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d files could not be exported", len(failures))
	}
	return nil
}
