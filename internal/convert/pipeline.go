// Package convert rewrites GLYCAM coordinate files into PDB residue and
// atom naming.
package convert

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/privateer-tools/glycam2pdb/internal/codes"
	"github.com/privateer-tools/glycam2pdb/internal/pdb"
)

// DefaultModelMarker starts the framing lines of multi-model files.
const DefaultModelMarker = "MODEL"

// Result is the outcome of converting one file.
type Result struct {
	Path        string
	Lines       []string
	Unsupported []Substitution
	Cap         *CapInstruction
	Residues    int // records with a recoded residue name
	Atoms       int // records with a renamed atom
	Dropped     int // model framing lines removed
}

// Converter runs the conversion pipeline: strip model framing, merge the
// cap residue, then recode residues and atoms.
type Converter struct {
	table       *codes.Table
	recoder     *Recoder
	capMarker   string
	modelMarker string
	logger      *zap.Logger
}

// NewConverter creates a converter using the given code table.
func NewConverter(t *codes.Table) *Converter {
	return &Converter{
		table:       t,
		recoder:     NewRecoder(t),
		capMarker:   DefaultCapMarker,
		modelMarker: DefaultModelMarker,
		logger:      zap.NewNop(),
	}
}

// SetLogger sets the logger for warnings about unsupported sugars.
func (c *Converter) SetLogger(l *zap.Logger) {
	c.logger = l
}

// SetCapMarker overrides the cap residue name.
func (c *Converter) SetCapMarker(marker string) {
	if marker != "" {
		c.capMarker = marker
	}
}

// SetModelMarker overrides the prefix of model framing lines.
func (c *Converter) SetModelMarker(marker string) {
	if marker != "" {
		c.modelMarker = marker
	}
}

// SetStrict, see Recoder.SetStrict.
func (c *Converter) SetStrict(strict bool) {
	c.recoder.SetStrict(strict)
}

// SetAtomAliases, see Recoder.SetAtomAliases.
func (c *Converter) SetAtomAliases(enabled bool) {
	c.recoder.SetAtomAliases(enabled)
}

// Convert rewrites the lines of one file. Line order is preserved; only
// model framing lines are dropped.
func (c *Converter) Convert(lines []string) (*Result, error) {
	records := make([]pdb.Record, 0, len(lines))
	lineNumbers := make([]int, 0, len(lines))
	dropped := 0
	for i, l := range lines {
		if strings.HasPrefix(l, c.modelMarker) {
			dropped++
			continue
		}
		records = append(records, pdb.Tokenize(l))
		lineNumbers = append(lineNumbers, i+1)
	}

	instr, err := FindCap(records, c.table, c.capMarker)
	if err != nil {
		var mce *MalformedCapError
		if errors.As(err, &mce) {
			mce.LineNumber = lineNumbers[mce.LineNumber-1]
		}
		return nil, err
	}
	records = ApplyCap(records, instr, c.capMarker)

	rec, err := c.recoder.Recode(records, lineNumbers)
	if err != nil {
		return nil, err
	}

	return &Result{
		Lines:       rec.Lines,
		Unsupported: rec.Unsupported,
		Cap:         instr,
		Residues:    rec.Residues,
		Atoms:       rec.Atoms,
		Dropped:     dropped,
	}, nil
}

// ConvertFile reads and converts one file. Errors carry the file path.
func (c *Converter) ConvertFile(path string) (*Result, error) {
	lines, err := pdb.ReadLines(path)
	if err != nil {
		return nil, err
	}

	res, err := c.Convert(lines)
	if err != nil {
		var uce *UnknownCodeError
		var mce *MalformedCapError
		switch {
		case errors.As(err, &uce):
			uce.Path = path
		case errors.As(err, &mce):
			mce.Path = path
		}
		return nil, err
	}
	res.Path = path

	if len(res.Unsupported) > 0 {
		pairs := make([]string, len(res.Unsupported))
		for i, s := range res.Unsupported {
			pairs[i] = s.String()
		}
		c.logger.Warn("structure has sugars unsupported by the validation engine",
			zap.String("path", path),
			zap.Int("count", len(res.Unsupported)),
			zap.Strings("substitutions", pairs))
	}

	return res, nil
}
