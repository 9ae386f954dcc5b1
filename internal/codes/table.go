// Package codes provides the GLYCAM to PDB residue code table.
package codes

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Entry describes one GLYCAM code and the PDB chemical component it maps to.
type Entry struct {
	Source       string   // GLYCAM code without the linkage prefix, e.g. "YB"
	Target       string   // PDB three-letter code, "UNK" when none is assigned
	Supported    bool     // known to the validation engine's sugar database
	FullName     string   // IUPAC-style name, e.g. "beta-D-mannopyranose"
	Abbreviation string   // common abbreviation, e.g. "Man"
	Synonyms     []string // alternative abbreviations, e.g. "Neu5Ac"
}

// UnknTarget is the placeholder target for sugars without a PDB component.
const UnknTarget = "UNK"

// entrySpec is the literal form of an entry; several keys may share one entry.
type entrySpec struct {
	Keys         []string
	Target       string
	Supported    bool
	FullName     string
	Abbreviation string
	Synonyms     []string
}

// UnknownCodeError reports a GLYCAM code that has no table entry.
type UnknownCodeError struct {
	Code       string
	Path       string
	LineNumber int
	Line       string
}

func (e *UnknownCodeError) Error() string {
	msg := fmt.Sprintf("unknown glycam code %q", e.Code)
	if e.LineNumber > 0 {
		msg += fmt.Sprintf(" at line %d", e.LineNumber)
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	return msg
}

// Table is an immutable code table with its compiled detection pattern.
// It is safe for concurrent use.
type Table struct {
	bySource map[string]Entry
	byTarget map[string]Entry
	keys     []string
	pattern  *regexp.Regexp
}

var defaultTable = mustBuild(entries)

// Default returns the process-wide GLYCAM code table.
func Default() *Table {
	return defaultTable
}

func mustBuild(specs []entrySpec) *Table {
	t, err := build(specs)
	if err != nil {
		panic(err)
	}
	return t
}

func build(specs []entrySpec) (*Table, error) {
	t := &Table{
		bySource: make(map[string]Entry),
		byTarget: make(map[string]Entry),
	}

	for _, s := range specs {
		for _, k := range s.Keys {
			if _, dup := t.bySource[k]; dup {
				return nil, fmt.Errorf("duplicate glycam code %q", k)
			}
			e := Entry{
				Source:       k,
				Target:       s.Target,
				Supported:    s.Supported,
				FullName:     s.FullName,
				Abbreviation: s.Abbreviation,
				Synonyms:     s.Synonyms,
			}
			t.bySource[k] = e
			t.keys = append(t.keys, k)
			if _, seen := t.byTarget[s.Target]; !seen && s.Target != UnknTarget {
				t.byTarget[s.Target] = e
			}
		}
	}

	// Longest first so that a three character key wins over its two
	// character prefix under leftmost-first alternation.
	sort.Slice(t.keys, func(i, j int) bool {
		if len(t.keys[i]) != len(t.keys[j]) {
			return len(t.keys[i]) > len(t.keys[j])
		}
		return t.keys[i] < t.keys[j]
	})

	quoted := make([]string, len(t.keys))
	for i, k := range t.keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	re, err := regexp.Compile(`\w(?:` + strings.Join(quoted, "|") + `)`)
	if err != nil {
		return nil, fmt.Errorf("compile detection pattern: %w", err)
	}
	t.pattern = re

	return t, nil
}

// Lookup returns the entry for a GLYCAM code. Codes are case-sensitive.
func (t *Table) Lookup(source string) (Entry, error) {
	e, ok := t.bySource[source]
	if !ok {
		return Entry{}, &UnknownCodeError{Code: source}
	}
	return e, nil
}

// ByTarget returns the first entry mapping to the given PDB code.
// UNK is never resolved.
func (t *Table) ByTarget(target string) (Entry, bool) {
	e, ok := t.byTarget[target]
	return e, ok
}

// IsTarget reports whether code is the PDB code of some entry.
func (t *Table) IsTarget(code string) bool {
	_, ok := t.byTarget[code]
	return ok || code == UnknTarget
}

// Keys returns all GLYCAM codes, longest first.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return len(t.keys)
}

// Pattern returns the detection pattern: any word character followed by
// one of the table keys.
func (t *Table) Pattern() *regexp.Regexp {
	return t.pattern
}

// Match is a detected code inside a string.
type Match struct {
	Start, End int    // byte offsets of the whole span, prefix included
	Span       string // prefix + code, e.g. "0MA"
	Code       string // code without prefix, e.g. "MA"
}

// Find returns the leftmost detected code in s.
func (t *Table) Find(s string) (Match, bool) {
	loc := t.pattern.FindStringIndex(s)
	if loc == nil {
		return Match{}, false
	}
	span := s[loc[0]:loc[1]]
	return Match{Start: loc[0], End: loc[1], Span: span, Code: span[1:]}, true
}

// Collisions returns the PDB codes that the detection pattern would match
// again, i.e. the targets for which recoding is not idempotent.
func (t *Table) Collisions() []string {
	var out []string
	for target := range t.byTarget {
		if t.pattern.MatchString(target) {
			out = append(out, target)
		}
	}
	sort.Strings(out)
	return out
}
