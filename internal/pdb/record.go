// Package pdb provides lossless tokenization of PDB coordinate records.
package pdb

import "strings"

// Record type tags.
const (
	TagAtom   = "ATOM"
	TagHetAtm = "HETATM"
	TagTer    = "TER"
)

// Token positions shared by ATOM and HETATM records.
const (
	FieldTag         = 0
	FieldSerial      = 1
	FieldAtomName    = 2
	FieldResidueName = 3
)

// MinStructuralTokens is the smallest token count of a usable ATOM/HETATM
// record; shorter records are passed through untouched.
const MinStructuralTokens = 4

type field struct {
	sep  string // whitespace run preceding the token
	text string
}

// Record is one line split into whitespace-delimited tokens. The whitespace
// runs are kept verbatim so String can rebuild the line exactly.
type Record struct {
	fields []field
	trail  string // whitespace after the last token, line terminator included
}

// Tokenize splits a line on runs of whitespace.
func Tokenize(line string) Record {
	var r Record
	i := 0
	for i < len(line) {
		start := i
		for i < len(line) && isSpace(line[i]) {
			i++
		}
		sep := line[start:i]
		if i == len(line) {
			r.trail = sep
			break
		}
		start = i
		for i < len(line) && !isSpace(line[i]) {
			i++
		}
		r.fields = append(r.fields, field{sep: sep, text: line[start:i]})
	}
	return r
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// String reconstructs the line.
func (r Record) String() string {
	var b strings.Builder
	for _, f := range r.fields {
		b.WriteString(f.sep)
		b.WriteString(f.text)
	}
	b.WriteString(r.trail)
	return b.String()
}

// Len returns the number of tokens.
func (r Record) Len() int {
	return len(r.fields)
}

// Token returns the i-th token.
func (r Record) Token(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i].text, true
}

// Sep returns the whitespace run preceding the i-th token.
func (r Record) Sep(i int) string {
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	return r.fields[i].sep
}

// SetToken replaces the i-th token. Out of range indices are ignored.
// Copies of a Record share tokens; use Clone before editing a copy.
func (r *Record) SetToken(i int, text string) {
	if i < 0 || i >= len(r.fields) {
		return
	}
	r.fields[i].text = text
}

// SetSep replaces the whitespace run preceding the i-th token.
func (r *Record) SetSep(i int, sep string) {
	if i < 0 || i >= len(r.fields) || sep == "" {
		return
	}
	r.fields[i].sep = sep
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	c := Record{trail: r.trail}
	c.fields = make([]field, len(r.fields))
	copy(c.fields, r.fields)
	return c
}

// Tag returns the record type tag, e.g. "ATOM".
func (r Record) Tag() string {
	t, _ := r.Token(FieldTag)
	return t
}

// IsStructural reports whether the record is an ATOM or HETATM line with
// the fields the recoder needs.
func (r Record) IsStructural() bool {
	tag := r.Tag()
	return (tag == TagAtom || tag == TagHetAtm) && r.Len() >= MinStructuralTokens
}

// IsTerminal reports whether the record is a chain terminator.
func (r Record) IsTerminal() bool {
	return r.Tag() == TagTer
}

// AtomName returns the atom name of a structural record.
func (r Record) AtomName() (string, bool) {
	return r.Token(FieldAtomName)
}

// ResidueName returns the residue name of a structural record.
func (r Record) ResidueName() (string, bool) {
	return r.Token(FieldResidueName)
}

// SeqIndex returns the token index of the residue sequence number, or -1.
func (r Record) SeqIndex() int {
	return r.SeqIndexAfter(FieldResidueName)
}

// SeqIndexAfter returns the token index of the sequence number following
// the residue name at index res, or -1. GLYCAM writes no chain identifier,
// so the number usually follows the residue name directly; when a chain
// column is present it comes one later.
func (r Record) SeqIndexAfter(res int) int {
	if t, ok := r.Token(res + 1); ok && isInteger(t) {
		return res + 1
	}
	if t, ok := r.Token(res + 2); ok && isInteger(t) {
		if c, _ := r.Token(res + 1); len(c) == 1 {
			return res + 2
		}
	}
	return -1
}

// ChainID returns the chain identifier, empty when the column is blank.
func (r Record) ChainID() string {
	if r.SeqIndex() == FieldResidueName+2 {
		c, _ := r.Token(FieldResidueName + 1)
		return c
	}
	return ""
}

// SeqNumber returns the residue sequence number token.
func (r Record) SeqNumber() (string, bool) {
	i := r.SeqIndex()
	if i < 0 {
		return "", false
	}
	return r.Token(i)
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
