// Package batch converts a single file or a whole directory tree.
//
// Directory conversion destructively recreates the output root: anything
// already there is removed before the input tree is mirrored beneath it.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/privateer-tools/glycam2pdb/internal/convert"
	"github.com/privateer-tools/glycam2pdb/internal/pdb"
)

// ErrNotFileOrDir is returned when the input path is neither a regular file
// nor a directory.
var ErrNotFileOrDir = errors.New("input is neither file nor directory")

// ErrOverlap is returned when a directory input and its output root contain
// one another.
var ErrOverlap = errors.New("input and output directories overlap")

// FileOutcome is the result of processing one input file.
type FileOutcome struct {
	Input         string
	Output        string          // empty when conversion failed
	Result        *convert.Result // nil when conversion failed
	Err           error           // conversion failure
	ValidationErr error           // engine failure on the written output
	Skipped       bool            // unchanged since its last conversion
}

// Failed reports whether the file could not be converted.
func (o FileOutcome) Failed() bool {
	return o.Err != nil
}

// Summary collects the outcomes of one run.
type Summary struct {
	Input  string
	Output string
	Files  []FileOutcome
}

// Converted returns the number of files written.
func (s *Summary) Converted() int {
	n := 0
	for _, f := range s.Files {
		if !f.Failed() && !f.Skipped {
			n++
		}
	}
	return n
}

// Skipped returns the number of files left as they were.
func (s *Summary) Skipped() int {
	n := 0
	for _, f := range s.Files {
		if f.Skipped {
			n++
		}
	}
	return n
}

// Failures returns the outcomes of files that could not be converted.
func (s *Summary) Failures() []FileOutcome {
	var out []FileOutcome
	for _, f := range s.Files {
		if f.Failed() {
			out = append(out, f)
		}
	}
	return out
}

// Recorder receives every file outcome.
type Recorder interface {
	Record(o FileOutcome) error
}

// Validator checks a written output file.
type Validator interface {
	Validate(ctx context.Context, path string) error
}

// Skipper decides whether an input still matches the output written for it
// by an earlier run.
type Skipper interface {
	Unchanged(input, output string) (bool, error)
}

// Driver runs conversions over files and directory trees.
type Driver struct {
	conv      *convert.Converter
	recorder  Recorder
	validator Validator
	skipper   Skipper
	logger    *zap.Logger
}

// NewDriver creates a driver converting with c.
func NewDriver(c *convert.Converter) *Driver {
	return &Driver{
		conv:   c,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger.
func (d *Driver) SetLogger(l *zap.Logger) {
	d.logger = l
}

// SetRecorder sets the hook that receives each outcome.
func (d *Driver) SetRecorder(r Recorder) {
	d.recorder = r
}

// SetValidator enables validation of every written file.
func (d *Driver) SetValidator(v Validator) {
	d.validator = v
}

// SetSkipper enables incremental runs: files the skipper reports unchanged
// are not converted again, and a directory output root is kept rather than
// recreated.
func (d *Driver) SetSkipper(sk Skipper) {
	d.skipper = sk
}

// DefaultOutput returns the output path used when none is given:
// "<input>_converted" for a directory and "<stem>_converted<ext>" for a file.
func DefaultOutput(input string, isDir bool) string {
	input = filepath.Clean(input)
	if isDir {
		return input + "_converted"
	}
	stem, ext := input, ""
	if strings.HasSuffix(stem, ".gz") {
		stem = strings.TrimSuffix(stem, ".gz")
		ext = ".gz"
	}
	e := filepath.Ext(stem)
	return strings.TrimSuffix(stem, e) + "_converted" + e + ext
}

// Run converts input into output. An empty output selects DefaultOutput.
// Conversion errors are recorded per file and the run continues; errors
// writing the output tree abort it.
func (d *Driver) Run(ctx context.Context, input, output string) (*Summary, error) {
	info, err := os.Stat(input)
	if err != nil || (!info.Mode().IsRegular() && !info.IsDir()) {
		return nil, fmt.Errorf("%w: %s", ErrNotFileOrDir, input)
	}

	if output == "" {
		output = DefaultOutput(input, info.IsDir())
	}
	s := &Summary{Input: input, Output: output}

	if info.IsDir() {
		err = d.runDir(ctx, s)
	} else {
		err = d.runFile(ctx, s)
	}
	if err != nil {
		return s, err
	}

	d.logger.Info("batch complete",
		zap.String("input", input),
		zap.String("output", output),
		zap.Int("converted", s.Converted()),
		zap.Int("skipped", s.Skipped()),
		zap.Int("failed", len(s.Failures())))
	return s, nil
}

func (d *Driver) runFile(ctx context.Context, s *Summary) error {
	out := s.Output
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, filepath.Base(s.Input))
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return d.process(ctx, s, s.Input, out)
}

func (d *Driver) runDir(ctx context.Context, s *Summary) error {
	if err := checkOverlap(s.Input, s.Output); err != nil {
		return err
	}
	if d.skipper != nil {
		if err := os.MkdirAll(s.Output, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	} else if err := RecreateDir(s.Output); err != nil {
		return err
	}

	return filepath.WalkDir(s.Input, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.Input, path)
		if err != nil {
			return err
		}
		target := filepath.Join(s.Output, rel)

		if entry.IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			return nil
		}
		if !entry.Type().IsRegular() {
			d.logger.Debug("skipping non-regular file", zap.String("path", path))
			return nil
		}
		return d.process(ctx, s, path, target)
	})
}

// process converts one file and writes it. Only output and context errors
// are returned.
func (d *Driver) process(ctx context.Context, s *Summary, in, out string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if d.skipper != nil {
		unchanged, err := d.skipper.Unchanged(in, out)
		if err != nil {
			return fmt.Errorf("check %s: %w", in, err)
		}
		if unchanged {
			d.logger.Debug("skipping unchanged file", zap.String("path", in))
			s.Files = append(s.Files, FileOutcome{Input: in, Output: out, Skipped: true})
			return nil
		}
	}

	o := FileOutcome{Input: in}
	res, err := d.conv.ConvertFile(in)
	if err != nil {
		o.Err = err
		d.logger.Warn("conversion failed", zap.String("path", in), zap.Error(err))
	} else {
		if err := pdb.WriteLines(out, res.Lines); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		o.Output = out
		o.Result = res
		d.logger.Debug("converted file",
			zap.String("path", in),
			zap.String("output", out),
			zap.Int("residues", res.Residues),
			zap.Int("unsupported", len(res.Unsupported)))

		if d.validator != nil {
			if err := d.validator.Validate(ctx, out); err != nil {
				o.ValidationErr = err
				d.logger.Warn("validation failed", zap.String("path", out), zap.Error(err))
			}
		}
	}

	s.Files = append(s.Files, o)
	if d.recorder != nil {
		if err := d.recorder.Record(o); err != nil {
			return fmt.Errorf("record outcome: %w", err)
		}
	}
	return nil
}

// RecreateDir removes path with all its contents and creates it empty.
func RecreateDir(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove output directory: %w", err)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

func checkOverlap(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	if within(in, out) || within(out, in) {
		return fmt.Errorf("%w: %s and %s", ErrOverlap, input, output)
	}
	return nil
}

// within reports whether path is dir or lies beneath it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
