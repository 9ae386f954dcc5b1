// Package mmcif exports PDB coordinate files as mmCIF documents.
package mmcif

import (
	"errors"
	"fmt"
	"strings"

	chem "github.com/rmera/gochem"

	"github.com/privateer-tools/glycam2pdb/internal/pdb"
)

// DefaultChain labels atoms of records that carry no chain identifier.
const DefaultChain = "A"

// Fixed PDB columns used when normalizing coordinate records.
const (
	chainColumn     = 21
	coordsEnd       = 54
	occupancyEnd    = 60
	bfactorEnd      = 66
	blankOccupancy  = "  1.00"
	blankTempFactor = "  0.00"
)

// ErrNoAtoms is returned for files without ATOM or HETATM records.
var ErrNoAtoms = errors.New("no coordinate records")

// ParseError reports a coordinate record that cannot be exported.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pdb parse error at line %d: %s", e.Line, e.Message)
}

// ReadMolecule reads the ATOM and HETATM records of a PDB file. Other
// records are ignored, so MODEL framing never yields extra frames.
func ReadMolecule(lines []string) (*chem.Molecule, error) {
	var b strings.Builder
	n := 0
	for i, line := range lines {
		if !pdb.Tokenize(line).IsStructural() {
			continue
		}
		rec, err := normalize(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Message: err.Error()}
		}
		b.WriteString(rec)
		n++
	}
	if n == 0 {
		return nil, ErrNoAtoms
	}

	mol, err := chem.PDBRead(strings.NewReader(b.String()), true)
	if err != nil {
		return nil, fmt.Errorf("read coordinates: %w", err)
	}
	return mol, nil
}

// normalize fills the columns a coordinate record may leave out: a blank
// chain becomes DefaultChain, missing occupancy and temperature factor
// become 1.00 and 0.00.
func normalize(line string) (string, error) {
	s := strings.TrimRight(line, "\r\n")
	if len(s) < coordsEnd {
		return "", fmt.Errorf("record is %d columns wide, coordinates end at column %d", len(s), coordsEnd)
	}
	if len(s) < bfactorEnd {
		s += strings.Repeat(" ", bfactorEnd-len(s))
	}

	if s[chainColumn] == ' ' {
		s = s[:chainColumn] + DefaultChain + s[chainColumn+1:]
	}
	if strings.TrimSpace(s[coordsEnd:occupancyEnd]) == "" {
		s = s[:coordsEnd] + blankOccupancy + s[occupancyEnd:]
	}
	if strings.TrimSpace(s[occupancyEnd:bfactorEnd]) == "" {
		s = s[:occupancyEnd] + blankTempFactor + s[bfactorEnd:]
	}
	return s + "\n", nil
}
