package output

import (
	"fmt"
	"io"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
)

// WriteGlycanListing writes one line per detected glycan with its WURCS,
// GlyTouCan accession and where its root sugar is attached.
func WriteGlycanListing(w io.Writer, glycans []engine.Glycan) error {
	for i, g := range glycans {
		id := g.GlyTouCanID
		if id == "" {
			id = "unknown"
		}
		line := fmt.Sprintf("%d - Detected WURCS %s with GlyTouCan ID of %s.", i, g.WURCS, id)
		if root, ok := g.Monosaccharide(0); ok {
			line += fmt.Sprintf(" In protein backbone %s/%s-%s with root sugar %s/%s-%d.",
				g.ProteinChainID, g.ProteinResidueType, g.ProteinResidueID,
				g.RootChainID, root.ShortName, root.PDBID)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteGraftSummary writes one line per grafted glycan.
func WriteGraftSummary(w io.Writer, grafted []engine.GraftedGlycan) error {
	for i, g := range grafted {
		line := fmt.Sprintf("%d/%d: Grafted donor glycan as chain %s to %s/%s-%s.",
			i+1, len(grafted), g.GraftedChainID,
			g.ReceiverChainID, g.ReceiverResidueType, g.ReceiverResidueID)
		if n := len(g.ClashingResidues); n > 0 {
			line += fmt.Sprintf(" The graft has resulted in %d clashes with an average atomic distance of: %.3f.",
				n, g.AvgAtomicDistance)
		} else {
			line += " The graft did not produce any clashes."
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
