package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
	"github.com/privateer-tools/glycam2pdb/internal/output"
	"github.com/privateer-tools/glycam2pdb/internal/sequon"
)

type graftOptions struct {
	receiver, donor, output string
	glycanIndex             int
	trimClashing            bool
	userMessages            bool
}

func newGraftCmd(a *app) *cobra.Command {
	var opts graftOptions

	cmd := &cobra.Command{
		Use:   "graft",
		Short: "Graft a donor glycan onto every N-glycosylation site of a model",
		Long: `Find the N-glycosylation consensus sites (N-X-S/T with X not P, and N-X-C)
in every chain of the receiving model, graft the donor glycan onto each
and export the glycosylated model.`,
		Example: `  glycam2pdb graft -receiver fold.pdb -donor man9.pdb -output fold_glycosylated.pdb`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.receiver == "" || opts.donor == "" || opts.output == "" {
				return usagef("--receiver, --donor and --output are required")
			}
			return runGraft(cmd.Context(), a, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.receiver, "receiver", "", "Receiving protein model")
	cmd.Flags().StringVar(&opts.donor, "donor", "", "Model holding the donor glycan")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Path of the exported glycosylated model")
	cmd.Flags().IntVar(&opts.glycanIndex, "glycan-index", 0, "Index of the donor glycan to graft")
	cmd.Flags().BoolVar(&opts.trimClashing, "trim-clashing", false, "Trim grafted glycans that clash with the receiver")
	cmd.Flags().BoolVar(&opts.userMessages, "user-messages", false, "Ask the engine for progress messages")

	return cmd
}

func runGraft(ctx context.Context, a *app, w io.Writer, opts graftOptions) error {
	client, err := a.engineClient()
	if err != nil {
		return err
	}

	chains, err := client.ReceiverSequences(ctx, opts.receiver)
	if err != nil {
		return err
	}
	sites := sequon.Find(chains)
	for _, s := range sites {
		a.logger.Debug("consensus site",
			zap.String("chain", s.ChainID),
			zap.Int("start", s.Start),
			zap.String("motif", s.Motif))
	}
	if len(sites) == 0 {
		fmt.Fprintln(w, "No N-glycosylation consensus sites found.")
		return nil
	}

	grafted, err := client.Graft(ctx, engine.GraftRequest{
		Receiver:     opts.receiver,
		Donor:        opts.donor,
		Output:       opts.output,
		TrimClashing: opts.trimClashing,
		UserMessages: opts.userMessages,
		Targets:      sequon.Targets(sites, opts.glycanIndex),
	})
	if err != nil {
		return err
	}
	return output.WriteGraftSummary(w, grafted)
}
