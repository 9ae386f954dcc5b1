// Package sequon locates N-glycosylation consensus sites in receiver chains.
package sequon

import (
	"regexp"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
)

// NGlycosylation matches Asn-X-Ser/Thr (X not Pro) and Asn-X-Cys.
var NGlycosylation = regexp.MustCompile(`N[^P][ST]|N[A-Z]C`)

// Site is one consensus match in a chain sequence.
type Site struct {
	ChainIndex int
	ChainID    string
	Start, End int    // offsets into the chain sequence
	Motif      string // matched residues, e.g. "NGT"
}

// Find returns the non-overlapping consensus sites of every chain. A match
// is kept only if the residue record at its start is the asparagine the
// sequence claims, so gapped or misaligned sequences yield no target.
func Find(chains []engine.ChainSequence) []Site {
	var sites []Site
	for _, c := range chains {
		for _, loc := range NGlycosylation.FindAllStringIndex(c.Sequence, -1) {
			start := loc[0]
			if start >= len(c.Residues) || c.Residues[start].Code != c.Sequence[start:start+1] {
				continue
			}
			sites = append(sites, Site{
				ChainIndex: c.Index,
				ChainID:    c.ChainID,
				Start:      start,
				End:        loc[1],
				Motif:      c.Sequence[start:loc[1]],
			})
		}
	}
	return sites
}

// Targets converts sites into graft targets for the donor glycan at
// glycanIndex.
func Targets(sites []Site, glycanIndex int) []engine.GraftTarget {
	out := make([]engine.GraftTarget, len(sites))
	for i, s := range sites {
		out[i] = engine.GraftTarget{
			GlycanIndex:  glycanIndex,
			ChainIndex:   s.ChainIndex,
			ResidueIndex: s.Start,
		}
	}
	return out
}
