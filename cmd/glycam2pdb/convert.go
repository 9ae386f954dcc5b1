package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/privateer-tools/glycam2pdb/internal/batch"
	"github.com/privateer-tools/glycam2pdb/internal/output"
)

var convertFlagKeys = map[string]string{
	"cap-marker":   keyCapMarker,
	"model-marker": keyModelMarker,
	"strict":       keyStrict,
	"atom-aliases": keyAtomAliases,
}

func newConvertCmd(a *app) *cobra.Command {
	var input, out string
	var validate, skipUnchanged bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert GLYCAM files into PDB nomenclature",
		Long: `Convert a GLYCAM coordinate file, or every file beneath a directory, into
PDB residue and atom naming.

A directory input is mirrored into the output directory (default
<input>_converted). The output directory is deleted and recreated first,
so anything already in it is lost. With --skip-unchanged the directory is
kept, and files whose input is unchanged since the conversion recorded in
the result store are left alone.`,
		Example: `  glycam2pdb convert -input man5.pdb
  glycam2pdb convert -input glycam_models -output pdb_models
  glycam2pdb convert -input glycam_models -validate --engine-command "privateer-bridge"
  glycam2pdb convert -input glycam_models -store runs.duckdb -skip-unchanged`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(cmd.Flags(), convertFlagKeys); err != nil {
				return err
			}
			if input == "" {
				return usagef("--input is required")
			}
			return runConvert(cmd.Context(), a, cmd.OutOrStdout(), input, out, convertOptions{
				validate:      validate,
				skipUnchanged: skipUnchanged,
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "GLYCAM file or directory to convert")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file or directory (default: <input>_converted)")
	cmd.Flags().BoolVar(&validate, "validate", false, "Validate every converted file with the engine")
	cmd.Flags().BoolVar(&skipUnchanged, "skip-unchanged", false, "Leave files unchanged since their last recorded conversion (requires --store)")
	cmd.Flags().String("cap-marker", "", "Residue name of the reducing-end cap (default ROH)")
	cmd.Flags().String("model-marker", "", "Prefix of model framing lines to drop (default MODEL)")
	cmd.Flags().Bool("strict", true, "Fail on GLYCAM-shaped residue names missing from the code table")
	cmd.Flags().Bool("atom-aliases", true, "Rename GLYCAM acetamido atoms to PDB names")

	return cmd
}

type convertOptions struct {
	validate      bool
	skipUnchanged bool
}

func runConvert(ctx context.Context, a *app, w io.Writer, input, out string, opts convertOptions) error {
	d := batch.NewDriver(a.converter())
	d.SetLogger(a.logger)

	st, err := a.openStore()
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
		d.SetRecorder(st)
	}
	if opts.skipUnchanged {
		if st == nil {
			return usagef("--skip-unchanged needs a result store: set --store or %s", keyStorePath)
		}
		d.SetSkipper(st)
	}

	var vw *output.ValidationWriter
	if opts.validate {
		client, err := a.engineClient()
		if err != nil {
			return err
		}
		vw = output.NewValidationWriter(w)
		rep := output.NewReporter(client, vw)
		rep.SetLogger(a.logger)
		if st != nil {
			rep.AddSink(st)
		}
		d.SetValidator(rep)
	}

	s, err := d.Run(ctx, input, out)
	if s != nil {
		output.WriteBatchSummary(w, s)
	}
	if err != nil {
		return err
	}
	if vw != nil {
		vw.WriteSummary(w)
	}

	if n := len(s.Failures()); n > 0 {
		return fmt.Errorf("%d of %d files failed to convert", n, len(s.Files))
	}
	return nil
}
