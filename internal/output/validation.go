// Package output provides report formatting for conversion, validation and
// grafting results.
package output

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
)

// ExpectedConformation is the ring conformation pyranoses should adopt.
const ExpectedConformation = "4c1"

// GlycanReport lists the problematic sugars of one glycan.
type GlycanReport struct {
	Index       int
	WURCS       string
	TotalSugars int
	Problems    []engine.Sugar // sorted by PDB residue number
}

// FileReport is the validation outcome of one structure file.
type FileReport struct {
	Path    string
	Glycans []GlycanReport // only glycans with problems
	Sugars  int            // sugars in all detected glycans
}

// IsProblem reports whether a sugar needs attention: an unexpected ring
// conformation or a failed engine diagnostic.
func IsProblem(s engine.Sugar) bool {
	return s.Conformation != ExpectedConformation || s.Diagnostic != "yes"
}

// Assess builds the report for the glycans detected in path.
func Assess(path string, glycans []engine.Glycan) *FileReport {
	r := &FileReport{Path: path}
	for i, g := range glycans {
		r.Sugars += g.SugarCount()

		var problems []engine.Sugar
		for _, s := range g.Sugars {
			if IsProblem(s) {
				problems = append(problems, s)
			}
		}
		if len(problems) == 0 {
			continue
		}
		sort.SliceStable(problems, func(a, b int) bool {
			return problems[a].PDBID < problems[b].PDBID
		})
		r.Glycans = append(r.Glycans, GlycanReport{
			Index:       i,
			WURCS:       g.WURCS,
			TotalSugars: g.SugarCount(),
			Problems:    problems,
		})
	}
	return r
}

// Clean reports whether no sugar has problems.
func (r *FileReport) Clean() bool {
	return len(r.Glycans) == 0
}

// Problems returns the number of problematic sugars.
func (r *FileReport) Problems() int {
	n := 0
	for _, g := range r.Glycans {
		n += len(g.Problems)
	}
	return n
}

// ValidationWriter writes validation reports as aligned tables.
type ValidationWriter struct {
	out      io.Writer
	files    int
	clean    int
	sugars   int
	problems int
	q        []float64 // puckering amplitude of problematic sugars
	bfactor  []float64
}

// NewValidationWriter creates a new validation report writer.
func NewValidationWriter(w io.Writer) *ValidationWriter {
	return &ValidationWriter{out: w}
}

// WriteReport writes the report of one file.
func (v *ValidationWriter) WriteReport(r *FileReport) error {
	v.files++
	v.sugars += r.Sugars
	v.problems += r.Problems()
	for _, g := range r.Glycans {
		for _, s := range g.Problems {
			v.q = append(v.q, s.Q)
			v.bfactor = append(v.bfactor, s.BFactor)
		}
	}

	if r.Clean() {
		v.clean++
		_, err := fmt.Fprintf(v.out, "No issues detected in: %s\n", r.Path)
		return err
	}

	if _, err := fmt.Fprintf(v.out, "File path: %s\n", r.Path); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(v.out, 0, 0, 2, ' ', 0)
	for i, g := range r.Glycans {
		fmt.Fprintf(tw, "Glycans - %d/%d: Conversion WURCS: %s\n", i+1, len(r.Glycans), g.WURCS)
		fmt.Fprintln(tw, "Sugar\tQ\tPhi\tTheta\tDetected type\tCnf\t<Bfac>\tCtx\tOk?")
		for _, s := range g.Problems {
			fmt.Fprintf(tw, "%s-%s-%d\t%.2f\t%.2f\t%.2f\t%s\t%s\t%.2f\t%s\t%s\n",
				s.ShortName, s.ChainID, s.PDBID,
				s.Q, s.Phi, s.Theta,
				s.Denomination, s.Conformation, s.BFactor, s.Context, s.Diagnostic)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := color.New(color.FgYellow).Fprintf(v.out,
		"%d/%d sugars in the input file have been detected as having problems.\n\n", r.Problems(), r.Sugars)
	return err
}

// Summary returns totals over all written reports.
func (v *ValidationWriter) Summary() (files, clean, sugars, problems int) {
	return v.files, v.clean, v.sugars, v.problems
}

// WriteSummary writes totals over all written reports.
func (v *ValidationWriter) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "\nValidation Summary:\n")
	fmt.Fprintf(w, "  Files validated:     %d\n", v.files)
	fmt.Fprintf(w, "  Files without issues: %d\n", v.clean)
	fmt.Fprintf(w, "  Problematic sugars:  %d/%d\n", v.problems, v.sugars)
	if v.problems > 0 {
		fmt.Fprintf(w, "  Mean Q:              %.3f\n", stat.Mean(v.q, nil))
		fmt.Fprintf(w, "  Mean <Bfac>:         %.2f\n", stat.Mean(v.bfactor, nil))
	}
}

// ReportSink receives validation reports, e.g. for persistence.
type ReportSink interface {
	WriteReport(r *FileReport) error
}

// Reporter validates converted files through the engine and writes a
// report for each.
type Reporter struct {
	engine engine.Engine
	writer *ValidationWriter
	sinks  []ReportSink
	logger *zap.Logger
}

// NewReporter creates a reporter writing through w.
func NewReporter(e engine.Engine, w *ValidationWriter) *Reporter {
	return &Reporter{
		engine: e,
		writer: w,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger.
func (r *Reporter) SetLogger(l *zap.Logger) {
	r.logger = l
}

// AddSink registers an additional receiver of reports.
func (r *Reporter) AddSink(s ReportSink) {
	r.sinks = append(r.sinks, s)
}

// Validate runs the engine on path and writes the report.
func (r *Reporter) Validate(ctx context.Context, path string) error {
	glycans, err := r.engine.DetectGlycans(ctx, path)
	if err != nil {
		return err
	}

	report := Assess(path, glycans)
	r.logger.Debug("validated structure",
		zap.String("path", path),
		zap.Int("glycans", len(glycans)),
		zap.Int("problems", report.Problems()))

	if err := r.writer.WriteReport(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for _, s := range r.sinks {
		if err := s.WriteReport(report); err != nil {
			return fmt.Errorf("record report: %w", err)
		}
	}
	return nil
}
