package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/privateer-tools/glycam2pdb/internal/store"
)

func newReportCmd(a *app) *cobra.Command {
	var status string
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the conversions recorded in the result store",
		Long: `List every conversion recorded in the result store with its residue and
atom counts, reducing-end cap, unsupported PDB codes and the number of
problematic sugars found by validation, followed by how many files carry
each unsupported code.`,
		Example: `  glycam2pdb report -store runs.duckdb
  glycam2pdb report -store runs.duckdb -status failed
  glycam2pdb report -store runs.duckdb -clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch status {
			case "", store.StatusConverted, store.StatusFailed:
			default:
				return usagef("--status must be %q or %q", store.StatusConverted, store.StatusFailed)
			}
			return runReport(a, cmd.OutOrStdout(), status, clearAll)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only list conversions with this status (converted or failed)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete every stored result")

	return cmd
}

func runReport(a *app, w io.Writer, status string, clearAll bool) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	if st == nil {
		return usagef("no result store configured: set --store or %s", keyStorePath)
	}
	defer st.Close()

	if clearAll {
		if err := st.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared %s\n", st.Path())
		return nil
	}

	rows, err := st.Conversions(status)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No conversions recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Input\tStatus\tResidues\tAtoms\tCap\tUnsupported\tProblems\tRecorded")
	for _, r := range rows {
		subs, err := st.Unsupported(r.Input)
		if err != nil {
			return err
		}
		unsupported := "-"
		if len(subs) > 0 {
			targets := make([]string, len(subs))
			for i, sub := range subs {
				targets[i] = sub.Target
			}
			unsupported = strings.Join(targets, ",")
		}

		problems := 0
		if r.Output != "" {
			p, err := st.Problems(r.Output)
			if err != nil {
				return err
			}
			problems = len(p)
		}

		capSite := "-"
		if r.CapCode != "" {
			capSite = r.CapCode + "/" + r.CapResidue
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\t%d\t%s\n",
			r.Input, r.Status, r.Residues, r.Atoms, capSite, unsupported, problems,
			r.ConvertedAt.Local().Format(time.DateTime))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range rows {
		if r.Error != "" {
			fmt.Fprintf(w, "Error: %s\n", r.Error)
		}
		if r.ValidationError != "" {
			fmt.Fprintf(w, "Validation failed for %s: %s\n", r.Output, r.ValidationError)
		}
	}

	counts, err := st.UnsupportedByTarget()
	if err != nil {
		return err
	}
	if len(counts) > 0 {
		fmt.Fprintln(w, "\nUnsupported PDB codes:")
		for _, c := range counts {
			fmt.Fprintf(w, "  %-4s %d file(s)\n", c.Target, c.Files)
		}
	}
	return nil
}
