// Package engine defines the contract with the external carbohydrate
// validation and grafting engine, and clients that reach it through a
// bridge process or service.
package engine

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoGlycans is returned when the engine finds no glycan in a structure.
var ErrNoGlycans = errors.New("no glycans detected")

// Error is a failure reported by the engine.
type Error struct {
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("engine %s: %v", e.Op, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("engine %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("engine %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Linkage describes a bond between a sugar and a neighbouring residue.
type Linkage struct {
	DonorAtom       string  `json:"donor_atom"`
	AcceptorAtom    string  `json:"acceptor_atom"`
	DonorResidue    string  `json:"donor_residue"`
	AcceptorResidue string  `json:"acceptor_residue"`
	Distance        float64 `json:"distance"`
}

// Sugar is one monosaccharide as reported by the engine.
type Sugar struct {
	ShortName    string    `json:"short_name"`
	ChainID      string    `json:"chain_id"`
	PDBID        int       `json:"pdb_id"`
	Q            float64   `json:"q"`
	Phi          float64   `json:"phi"`
	Theta        float64   `json:"theta"`
	Denomination string    `json:"denomination"`
	Conformation string    `json:"conformation"`
	BFactor      float64   `json:"bfactor"`
	Context      string    `json:"context"`
	Linkages     []Linkage `json:"linkages,omitempty"`
	Diagnostic   string    `json:"diagnostic"`
}

// Glycan is one glycan chain detected in a structure.
type Glycan struct {
	WURCS              string  `json:"wurcs"`
	GlyTouCanID        string  `json:"glytoucan_id"`
	RootChainID        string  `json:"root_chain_id"`
	ProteinChainID     string  `json:"protein_chain_id"`
	ProteinResidueType string  `json:"protein_residue_type"`
	ProteinResidueID   string  `json:"protein_residue_id"`
	Sugars             []Sugar `json:"sugars"`
}

// SugarCount returns the number of monosaccharides in the glycan.
func (g Glycan) SugarCount() int {
	return len(g.Sugars)
}

// Monosaccharide returns the i-th sugar.
func (g Glycan) Monosaccharide(i int) (Sugar, bool) {
	if i < 0 || i >= len(g.Sugars) {
		return Sugar{}, false
	}
	return g.Sugars[i], true
}

// SequenceResidue is one residue of a receiving chain.
type SequenceResidue struct {
	Code  string `json:"residue_code"` // one-letter code
	PDBID string `json:"pdb_id"`
	Type  string `json:"type"` // three-letter code
}

// ChainSequence is the sequence of one chain of a receiving model.
type ChainSequence struct {
	Index    int               `json:"index"`
	ChainID  string            `json:"chain_id"`
	Sequence string            `json:"sequence"`
	Residues []SequenceResidue `json:"residues"`
}

// GraftTarget names where a donor glycan is grafted.
type GraftTarget struct {
	GlycanIndex  int `json:"glycan_index"`
	ChainIndex   int `json:"chain_index"`
	ResidueIndex int `json:"residue_index"`
}

// GraftRequest grafts a donor glycan onto a receiving model at each target
// and exports the result.
type GraftRequest struct {
	Receiver     string        `json:"receiver"`
	Donor        string        `json:"donor"`
	Output       string        `json:"output"`
	TrimClashing bool          `json:"trim_clashing"`
	UserMessages bool          `json:"user_messages"`
	Targets      []GraftTarget `json:"targets"`
}

// GraftedGlycan summarises one graft.
type GraftedGlycan struct {
	Index               int      `json:"index"`
	ReceiverChainID     string   `json:"receiver_chain_id"`
	ReceiverResidueID   string   `json:"receiver_residue_id"`
	ReceiverResidueType string   `json:"receiver_residue_type"`
	GraftedChainID      string   `json:"grafted_chain_id"`
	ClashingResidues    []string `json:"clashing_residues"`
	AvgAtomicDistance   float64  `json:"avg_atomic_distance"`
}

// Engine detects and describes glycans in a structure file.
type Engine interface {
	DetectGlycans(ctx context.Context, path string) ([]Glycan, error)
}

// Grafter builds glycosylated models.
type Grafter interface {
	ReceiverSequences(ctx context.Context, receiver string) ([]ChainSequence, error)
	Graft(ctx context.Context, req GraftRequest) ([]GraftedGlycan, error)
}
