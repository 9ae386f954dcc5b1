package mmcif

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
	"github.com/privateer-tools/glycam2pdb/internal/pdb"
)

// Extension is appended to exported file names.
const Extension = ".mmCIF"

// Failure is a file that could not be exported.
type Failure struct {
	Path string
	Err  error
}

// Exporter converts PDB files into mmCIF, annotating each with the WURCS
// of its first glycan when an engine is available.
type Exporter struct {
	engine engine.Engine
	logger *zap.Logger
}

// NewExporter creates an exporter. A nil engine disables the _wurcs item.
func NewExporter(e engine.Engine) *Exporter {
	return &Exporter{
		engine: e,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger.
func (x *Exporter) SetLogger(l *zap.Logger) {
	x.logger = l
}

// OutputName returns the exported file name for a PDB file name,
// e.g. "cluster1.pdb.gz" -> "cluster1.mmCIF".
func OutputName(name string) string {
	name = strings.TrimSuffix(name, ".gz")
	return strings.TrimSuffix(name, filepath.Ext(name)) + Extension
}

// ExportFile writes the mmCIF rendering of in to out.
func (x *Exporter) ExportFile(ctx context.Context, in, out string) (err error) {
	lines, err := pdb.ReadLines(in)
	if err != nil {
		return err
	}
	mol, err := ReadMolecule(lines)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	doc := &Document{
		Name:     strings.TrimSuffix(OutputName(filepath.Base(in)), Extension),
		Molecule: mol,
	}
	if x.engine != nil {
		glycans, err := x.engine.DetectGlycans(ctx, in)
		switch {
		case errors.Is(err, engine.ErrNoGlycans):
			x.logger.Debug("no glycans detected", zap.String("path", in))
		case err != nil:
			return err
		case len(glycans) > 0:
			doc.WURCS = glycans[0].WURCS
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create mmcif file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, doc); err != nil {
		return err
	}
	return bw.Flush()
}

// ExportTree exports every regular file beneath inRoot into the same
// relative location beneath outRoot. Per-file failures are collected and do
// not stop the walk.
func (x *Exporter) ExportTree(ctx context.Context, inRoot, outRoot string) (written int, failures []Failure, err error) {
	err = filepath.WalkDir(inRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(inRoot, path)
		if err != nil {
			return err
		}
		out := filepath.Join(outRoot, filepath.Dir(rel), OutputName(d.Name()))
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		if err := x.ExportFile(ctx, path, out); err != nil {
			x.logger.Warn("mmcif export failed", zap.String("path", path), zap.Error(err))
			failures = append(failures, Failure{Path: path, Err: err})
			return nil
		}
		x.logger.Debug("exported", zap.String("path", path), zap.String("output", out))
		written++
		return nil
	})
	return written, failures, err
}
