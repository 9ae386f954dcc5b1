package store

import (
	"fmt"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
	"github.com/privateer-tools/glycam2pdb/internal/output"
)

// ProblemRow is one stored problematic sugar.
type ProblemRow struct {
	Path        string
	GlycanIndex int64
	WURCS       string
	Sugar       engine.Sugar
}

// WriteReport replaces the stored problems of the report's file. It
// implements output.ReportSink.
func (s *Store) WriteReport(r *output.FileReport) error {
	if _, err := s.db.Exec("DELETE FROM validation_problems WHERE path=?", r.Path); err != nil {
		return fmt.Errorf("delete problems: %w", err)
	}

	var rows []ProblemRow
	for _, g := range r.Glycans {
		for _, sg := range g.Problems {
			rows = append(rows, ProblemRow{
				Path:        r.Path,
				GlycanIndex: int64(g.Index),
				WURCS:       g.WURCS,
				Sugar:       sg,
			})
		}
	}

	return s.appendRows("validation_problems", len(rows), func(a *goduckdb.Appender, i int) error {
		p := rows[i]
		sg := p.Sugar
		return a.AppendRow(
			p.Path, p.GlycanIndex, p.WURCS,
			sg.ShortName, sg.ChainID, int64(sg.PDBID),
			sg.Q, sg.Phi, sg.Theta,
			sg.Denomination, sg.Conformation, sg.BFactor, sg.Context, sg.Diagnostic,
		)
	})
}

// Problems returns the stored problematic sugars of path, ordered by glycan
// and residue number.
func (s *Store) Problems(path string) ([]ProblemRow, error) {
	rows, err := s.db.Query(`SELECT
		path, glycan_index, wurcs,
		sugar, chain_id, pdb_id, q, phi, theta,
		denomination, conformation, bfactor, context, diagnostic
		FROM validation_problems
		WHERE path=?
		ORDER BY glycan_index, pdb_id`, path)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	defer rows.Close()

	var out []ProblemRow
	for rows.Next() {
		var p ProblemRow
		var pdbID int64
		sg := &p.Sugar
		if err := rows.Scan(
			&p.Path, &p.GlycanIndex, &p.WURCS,
			&sg.ShortName, &sg.ChainID, &pdbID, &sg.Q, &sg.Phi, &sg.Theta,
			&sg.Denomination, &sg.Conformation, &sg.BFactor, &sg.Context, &sg.Diagnostic,
		); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		sg.PDBID = int(pdbID)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems: %w", err)
	}
	return out, nil
}
