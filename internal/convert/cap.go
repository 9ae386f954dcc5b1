package convert

import (
	"strings"

	"github.com/privateer-tools/glycam2pdb/internal/codes"
	"github.com/privateer-tools/glycam2pdb/internal/pdb"
)

// DefaultCapMarker is the GLYCAM residue capping a free reducing end.
const DefaultCapMarker = "ROH"

// CapInstruction says what the cap residue collapses into.
type CapInstruction struct {
	Code      string // GLYCAM residue span of the sugar the cap belongs to, e.g. "0YB"
	ResidueID string // that sugar's residue sequence number
}

// isCapRecord reports whether r carries a residue sequence number that
// follows the cap.
func isCapRecord(r pdb.Record) bool {
	return r.IsStructural() || r.IsTerminal()
}

// capIndex returns the index of the first token holding the marker, or -1.
// The record tag of ATOM, HETATM and TER lines is never matched.
func capIndex(r pdb.Record, marker string) int {
	start := 0
	if isCapRecord(r) {
		start = 1
	}
	for i := start; i < r.Len(); i++ {
		if t, _ := r.Token(i); strings.Contains(t, marker) {
			return i
		}
	}
	return -1
}

// FindCap locates the first cap residue and the sugar it should merge into:
// the first structural record, scanning forward from the cap, whose residue
// name carries a GLYCAM code. It returns nil when the file has no cap.
func FindCap(records []pdb.Record, table *codes.Table, marker string) (*CapInstruction, error) {
	for i, r := range records {
		if capIndex(r, marker) < 0 {
			continue
		}
		for j := i; j < len(records); j++ {
			cand := records[j]
			if !cand.IsStructural() {
				continue
			}
			res, _ := cand.ResidueName()
			if standardResidues[res] {
				continue
			}
			m, ok := table.Find(res)
			if !ok {
				continue
			}
			seq, ok := cand.SeqNumber()
			if !ok {
				continue
			}
			return &CapInstruction{Code: m.Span, ResidueID: seq}, nil
		}
		return nil, &MalformedCapError{Marker: marker, LineNumber: i + 1}
	}
	return nil, nil
}

// ApplyCap rewrites every line containing the marker, replacing the marker
// by instr.Code. On ATOM, HETATM and TER records the sequence number after
// it is also replaced by instr.ResidueID; the whitespace before the number
// absorbs any change in width so the field keeps its right edge. A nil
// instruction is a no-op.
func ApplyCap(records []pdb.Record, instr *CapInstruction, marker string) []pdb.Record {
	out := make([]pdb.Record, len(records))
	for i, r := range records {
		idx := capIndex(r, marker)
		if instr == nil || idx < 0 {
			out[i] = r
			continue
		}

		c := r.Clone()
		if !isCapRecord(r) {
			for j := idx; j < c.Len(); j++ {
				tok, _ := c.Token(j)
				c.SetToken(j, strings.ReplaceAll(tok, marker, instr.Code))
			}
			out[i] = c
			continue
		}

		tok, _ := c.Token(idx)
		c.SetToken(idx, strings.ReplaceAll(tok, marker, instr.Code))

		if s := c.SeqIndexAfter(idx); s >= 0 {
			old, _ := c.Token(s)
			c.SetToken(s, instr.ResidueID)
			c.SetSep(s, resizeSep(c.Sep(s), len(instr.ResidueID)-len(old)))
		}
		out[i] = c
	}
	return out
}

// resizeSep shrinks a whitespace run by delta characters (grows it when
// delta is negative), keeping at least one character.
func resizeSep(sep string, delta int) string {
	switch {
	case delta == 0:
		return sep
	case delta < 0:
		return sep + strings.Repeat(" ", -delta)
	case len(sep)-delta < 1:
		return sep[:1]
	default:
		return sep[:len(sep)-delta]
	}
}
