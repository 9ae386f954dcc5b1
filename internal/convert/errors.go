package convert

import (
	"fmt"

	"github.com/privateer-tools/glycam2pdb/internal/codes"
)

// UnknownCodeError reports a residue that looks like a GLYCAM code but has
// no entry in the code table.
type UnknownCodeError = codes.UnknownCodeError

// MalformedCapError reports a cap residue with no sugar after it to merge into.
type MalformedCapError struct {
	Marker     string
	Path       string
	LineNumber int
}

func (e *MalformedCapError) Error() string {
	msg := fmt.Sprintf("cap residue %s at line %d has no following sugar residue", e.Marker, e.LineNumber)
	if e.Path != "" {
		msg += " in " + e.Path
	}
	return msg
}

// Substitution is a recoded residue whose PDB code the validation engine
// does not support.
type Substitution struct {
	Source string // GLYCAM residue span, e.g. "0AA"
	Target string // PDB code, e.g. "64K"
}

func (s Substitution) String() string {
	return s.Source + "->" + s.Target
}
