package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/privateer-tools/glycam2pdb/internal/batch"
	"github.com/privateer-tools/glycam2pdb/internal/convert"
)

// Conversion statuses.
const (
	StatusConverted = "converted"
	StatusFailed    = "failed"
)

// ConversionRow is the stored outcome of one input file.
type ConversionRow struct {
	Input           string
	Output          string
	Status          string
	Error           string
	Fingerprint     Fingerprint
	Residues        int64
	Atoms           int64
	Dropped         int64
	CapCode         string
	CapResidue      string
	ValidationError string
	ConvertedAt     time.Time
}

// TargetCount is how many files carry an unsupported PDB code.
type TargetCount struct {
	Target string
	Files  int64
}

// Record stores a file outcome, replacing any earlier outcome for the same
// input. It implements batch.Recorder.
func (s *Store) Record(o batch.FileOutcome) error {
	row := ConversionRow{
		Input:       o.Input,
		Output:      o.Output,
		Status:      StatusConverted,
		Fingerprint: statFile(o.Input),
		ConvertedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if o.Err != nil {
		row.Status = StatusFailed
		row.Error = o.Err.Error()
	}
	if o.ValidationErr != nil {
		row.ValidationError = o.ValidationErr.Error()
	}
	var subs []convert.Substitution
	if r := o.Result; r != nil {
		row.Residues = int64(r.Residues)
		row.Atoms = int64(r.Atoms)
		row.Dropped = int64(r.Dropped)
		if r.Cap != nil {
			row.CapCode = r.Cap.Code
			row.CapResidue = r.Cap.ResidueID
		}
		subs = r.Unsupported
	}

	if _, err := s.db.Exec(`INSERT OR REPLACE INTO conversions VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Input, row.Output, row.Status, row.Error,
		row.Fingerprint.Size, row.Fingerprint.ModTime,
		row.Residues, row.Atoms, row.Dropped,
		row.CapCode, row.CapResidue, row.ValidationError, row.ConvertedAt,
	); err != nil {
		return fmt.Errorf("insert conversion: %w", err)
	}

	if _, err := s.db.Exec("DELETE FROM unsupported_substitutions WHERE input=?", o.Input); err != nil {
		return fmt.Errorf("delete substitutions: %w", err)
	}
	return s.appendRows("unsupported_substitutions", len(subs), func(a *goduckdb.Appender, i int) error {
		return a.AppendRow(o.Input, subs[i].Source, subs[i].Target)
	})
}

// appendRows batch-inserts n rows into table using the Appender API.
func (s *Store) appendRows(table string, n int, row func(a *goduckdb.Appender, i int) error) error {
	if n == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", table)
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for i := 0; i < n; i++ {
		if err := row(appender, i); err != nil {
			return fmt.Errorf("append %s row: %w", table, err)
		}
	}

	return appender.Flush()
}

const conversionColumns = `input, output, status, error, input_size, input_mtime,
	residues, atoms, dropped, cap_code, cap_residue, validation_error, converted_at`

// LookupConversion returns the stored outcome for input, or nil when none
// has been recorded.
func (s *Store) LookupConversion(input string) (*ConversionRow, error) {
	rows, err := s.db.Query("SELECT "+conversionColumns+" FROM conversions WHERE input=?", input)
	if err != nil {
		return nil, fmt.Errorf("query conversion: %w", err)
	}
	defer rows.Close()

	out, err := scanConversions(rows)
	if err != nil || len(out) == 0 {
		return nil, err
	}
	return &out[0], nil
}

// Conversions returns all stored outcomes ordered by input path. An empty
// status selects every outcome.
func (s *Store) Conversions(status string) ([]ConversionRow, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = s.db.Query("SELECT " + conversionColumns + " FROM conversions ORDER BY input")
	} else {
		rows, err = s.db.Query("SELECT "+conversionColumns+" FROM conversions WHERE status=? ORDER BY input", status)
	}
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	return scanConversions(rows)
}

// Unchanged reports whether input was converted successfully into output,
// has not changed on disk since, and output still exists. It implements
// batch.Skipper.
func (s *Store) Unchanged(input, output string) (bool, error) {
	row, err := s.LookupConversion(input)
	if err != nil || row == nil {
		return false, err
	}
	if row.Status != StatusConverted || row.Output != output || !row.Fingerprint.Matches(input) {
		return false, nil
	}
	info, err := os.Stat(output)
	return err == nil && info.Mode().IsRegular(), nil
}

func scanConversions(rows *sql.Rows) ([]ConversionRow, error) {
	var out []ConversionRow
	for rows.Next() {
		var r ConversionRow
		if err := rows.Scan(
			&r.Input, &r.Output, &r.Status, &r.Error,
			&r.Fingerprint.Size, &r.Fingerprint.ModTime,
			&r.Residues, &r.Atoms, &r.Dropped,
			&r.CapCode, &r.CapResidue, &r.ValidationError, &r.ConvertedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return out, nil
}

// Unsupported returns the unsupported substitutions recorded for input.
func (s *Store) Unsupported(input string) ([]convert.Substitution, error) {
	rows, err := s.db.Query(`SELECT glycam_code, pdb_code FROM unsupported_substitutions
		WHERE input=? ORDER BY glycam_code`, input)
	if err != nil {
		return nil, fmt.Errorf("query substitutions: %w", err)
	}
	defer rows.Close()

	var out []convert.Substitution
	for rows.Next() {
		var sub convert.Substitution
		if err := rows.Scan(&sub.Source, &sub.Target); err != nil {
			return nil, fmt.Errorf("scan substitution: %w", err)
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// UnsupportedByTarget counts, per unsupported PDB code, the files it occurs
// in, most frequent first.
func (s *Store) UnsupportedByTarget() ([]TargetCount, error) {
	rows, err := s.db.Query(`SELECT pdb_code, COUNT(DISTINCT input) AS files
		FROM unsupported_substitutions
		GROUP BY pdb_code
		ORDER BY files DESC, pdb_code`)
	if err != nil {
		return nil, fmt.Errorf("query unsupported counts: %w", err)
	}
	defer rows.Close()

	var out []TargetCount
	for rows.Next() {
		var tc TargetCount
		if err := rows.Scan(&tc.Target, &tc.Files); err != nil {
			return nil, fmt.Errorf("scan unsupported count: %w", err)
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
