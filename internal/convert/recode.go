package convert

import (
	"errors"
	"regexp"
	"strings"

	"github.com/privateer-tools/glycam2pdb/internal/codes"
	"github.com/privateer-tools/glycam2pdb/internal/pdb"
)

// glycamShaped matches residue names that look like a GLYCAM code: a
// linkage prefix (a position digit, or P-Z for multiply linked residues)
// followed by a sugar letter or two and the ring form letter (A, B for
// pyranoses, D, U for furanoses). Ligands such as 1PE or PEG do not match.
var glycamShaped = regexp.MustCompile(`^[0-9P-Z][A-Za-z]{1,2}[ABDU]$`)

// Recoder rewrites GLYCAM residue names and atom names into the PDB
// vocabulary.
type Recoder struct {
	table       *codes.Table
	strict      bool
	atomAliases bool
}

// NewRecoder creates a recoder over the given table. Strict checking and
// atom alias renaming are enabled.
func NewRecoder(t *codes.Table) *Recoder {
	return &Recoder{
		table:       t,
		strict:      true,
		atomAliases: true,
	}
}

// SetStrict controls whether GLYCAM-shaped residue names missing from the
// table are an error. When off they are passed through.
func (rc *Recoder) SetStrict(strict bool) {
	rc.strict = strict
}

// SetAtomAliases controls renaming of legacy GLYCAM atom names.
func (rc *Recoder) SetAtomAliases(enabled bool) {
	rc.atomAliases = enabled
}

// RecodeResult holds the rewritten lines and what changed.
type RecodeResult struct {
	Lines       []string
	Unsupported []Substitution // one per residue, in file order
	Residues    int            // records whose residue name was recoded
	Atoms       int            // records whose atom name was renamed
}

type residueKey struct {
	span, chain, seq string
}

// Recode rewrites records. lineNumbers maps each record to its line in the
// source file for error reporting; when nil the record index is used.
func (rc *Recoder) Recode(records []pdb.Record, lineNumbers []int) (*RecodeResult, error) {
	res := &RecodeResult{Lines: make([]string, 0, len(records))}
	seen := make(map[residueKey]bool)

	for i, r := range records {
		lineNo := i + 1
		if lineNumbers != nil {
			lineNo = lineNumbers[i]
		}

		switch {
		case r.IsStructural():
			c := r.Clone()
			entry, recoded, err := rc.recodeResidue(&c)
			if err != nil {
				var uce *UnknownCodeError
				if errors.As(err, &uce) {
					uce.LineNumber = lineNo
					uce.Line = strings.TrimRight(r.String(), "\r\n")
				}
				return nil, err
			}
			if recoded != nil {
				res.Residues++
				if !entry.Supported {
					seq, _ := c.SeqNumber()
					k := residueKey{recoded.Span, c.ChainID(), seq}
					if !seen[k] {
						seen[k] = true
						res.Unsupported = append(res.Unsupported, Substitution{Source: recoded.Span, Target: entry.Target})
					}
				}
			}
			if entry != nil && rc.atomAliases && rc.renameAtom(&c, *entry) {
				res.Atoms++
			}
			res.Lines = append(res.Lines, c.String())

		case r.IsTerminal():
			c := r.Clone()
			rc.recodeTerminal(&c)
			res.Lines = append(res.Lines, c.String())

		default:
			res.Lines = append(res.Lines, r.String())
		}
	}

	return res, nil
}

// recodeResidue substitutes the residue name of a structural record. It
// returns the entry describing the residue (also for residues that already
// carry a PDB code) and the match when a substitution happened.
func (rc *Recoder) recodeResidue(r *pdb.Record) (*codes.Entry, *codes.Match, error) {
	name, _ := r.ResidueName()
	if standardResidues[name] {
		return nil, nil, nil
	}

	if m, ok := rc.table.Find(name); ok {
		e, err := rc.table.Lookup(m.Code)
		if err != nil {
			return nil, nil, err
		}
		r.SetToken(pdb.FieldResidueName, name[:m.Start]+e.Target+name[m.End:])
		return &e, &m, nil
	}

	if e, ok := rc.table.ByTarget(name); ok {
		return &e, nil, nil
	}

	if rc.strict && glycamShaped.MatchString(name) && !rc.table.IsTarget(name) {
		return nil, nil, &UnknownCodeError{Code: name[1:]}
	}
	return nil, nil, nil
}

// renameAtom replaces a legacy atom name, padding the new name to the old
// width so the following columns stay aligned.
func (rc *Recoder) renameAtom(r *pdb.Record, e codes.Entry) bool {
	atom, ok := r.AtomName()
	if !ok {
		return false
	}
	name, ok := codes.AtomAlias(e, atom)
	if !ok {
		return false
	}
	if pad := len(atom) - len(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	r.SetToken(pdb.FieldAtomName, name)
	return true
}

// recodeTerminal substitutes the first GLYCAM code found after the tag of
// a TER record. TER records carry no atom fields.
func (rc *Recoder) recodeTerminal(r *pdb.Record) {
	for i := 1; i < r.Len(); i++ {
		tok, _ := r.Token(i)
		if standardResidues[tok] {
			continue
		}
		m, ok := rc.table.Find(tok)
		if !ok {
			continue
		}
		e, err := rc.table.Lookup(m.Code)
		if err != nil {
			continue
		}
		r.SetToken(i, tok[:m.Start]+e.Target+tok[m.End:])
		return
	}
}
