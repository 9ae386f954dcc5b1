package mmcif

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privateer-tools/glycam2pdb/internal/engine"
)

var pdbLines = []string{
	"REMARK converted\n",
	"ATOM      1  C1  NAG     2       0.640   1.325   1.070  1.00  0.00\n",
	"ATOM      2  HO1 NAG     2      -1.061   1.412   0.128\n",
	"HETATM    3  O5  MAN B   3       2.640  -1.325   1.070  0.50 12.30           O\n",
	"TER\n",
	"END\n",
}

func TestReadMolecule(t *testing.T) {
	mol, err := ReadMolecule(pdbLines)
	require.NoError(t, err)
	require.Equal(t, 3, mol.Len())
	require.Len(t, mol.Coords, 1)

	a := mol.Atom(0)
	assert.Equal(t, "C1", a.Name)
	assert.Equal(t, "NAG", a.MolName)
	assert.Equal(t, DefaultChain, a.Chain)
	assert.Equal(t, 2, a.MolID)
	assert.Equal(t, "C", a.Symbol)
	assert.False(t, a.Het)

	a = mol.Atom(1)
	assert.Equal(t, "H", a.Symbol)
	assert.InDelta(t, 1.0, a.Occupancy, 1e-9)

	a = mol.Atom(2)
	assert.True(t, a.Het)
	assert.Equal(t, "B", a.Chain)
	assert.Equal(t, 3, a.MolID)
	assert.Equal(t, "O", a.Symbol)
	assert.InDelta(t, 0.5, a.Occupancy, 1e-9)
	assert.InDelta(t, -1.325, mol.Coords[0].At(2, 1), 1e-9)
	assert.InDelta(t, 12.3, mol.Bfactors[0][2], 1e-9)
}

func TestReadMolecule_Errors(t *testing.T) {
	_, err := ReadMolecule([]string{"REMARK\n", "ATOM      1  C1  NAG     2       0.640\n"})
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)

	_, err = ReadMolecule([]string{"ATOM      1  C1  NAG     2       0.640     abc   1.070\n"})
	require.Error(t, err)
	assert.False(t, errors.As(err, &pe))

	_, err = ReadMolecule([]string{"REMARK only\n", "END\n"})
	assert.ErrorIs(t, err, ErrNoAtoms)
}

func TestNormalize(t *testing.T) {
	rec, err := normalize("ATOM      2  HO1 NAG     2      -1.061   1.412   0.128\n")
	require.NoError(t, err)
	assert.Equal(t, "ATOM      2  HO1 NAG A   2      -1.061   1.412   0.128  1.00  0.00\n", rec)

	full := "HETATM    3  O5  MAN B   3       2.640  -1.325   1.070  0.50 12.30           O\n"
	rec, err = normalize(full)
	require.NoError(t, err)
	assert.Equal(t, full, rec)
}

// atomSiteRows returns the whitespace-separated fields of the atom_site rows.
func atomSiteRows(out string) [][]string {
	var rows [][]string
	inLoop := false
	for _, l := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(l, "_atom_site."):
			inLoop = true
		case inLoop && (l == "#" || l == ""):
			return rows
		case inLoop:
			rows = append(rows, strings.Fields(l))
		}
	}
	return rows
}

func TestWrite(t *testing.T) {
	mol, err := ReadMolecule(pdbLines)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &Document{Name: "cluster1", WURCS: "WURCS=2.0/1,1,0/[a2122h-1b_1-5]/1/", Molecule: mol}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "data_cluster1\n#\nloop_\n_atom_site.type_symbol\n"))
	assert.Contains(t, out, "_atom_site.pdbx_PDB_model_num\n")
	assert.True(t, strings.HasSuffix(out, "_wurcs WURCS=2.0/1,1,0/[a2122h-1b_1-5]/1/\n#\n"))
	assert.Equal(t, 1, strings.Count(out, "data_"))

	rows := atomSiteRows(out)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"C", "C1", "NAG", "?", "A", "1", "2", "1.00", "0.0", "ATOM",
		"1", "0.640", "1.325", "1.070",
	}, rows[0])
	assert.Equal(t, []string{
		"O", "O5", "MAN", "?", "B", "3", "3", "0.50", "0.0", "HETATM",
		"1", "2.640", "-1.325", "1.070",
	}, rows[2])
}

func TestWrite_NoWURCS(t *testing.T) {
	mol, err := ReadMolecule(pdbLines)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, &Document{Name: "empty model", Molecule: mol}))
	assert.True(t, strings.HasPrefix(buf.String(), "data_empty_model\n"))
	assert.NotContains(t, buf.String(), "_wurcs")
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "cluster1.mmCIF", OutputName("cluster1.pdb"))
	assert.Equal(t, "cluster1.mmCIF", OutputName("cluster1.pdb.gz"))
	assert.Equal(t, "model.mmCIF", OutputName("model"))
}

type fakeEngine struct {
	glycans []engine.Glycan
	err     error
}

func (f *fakeEngine) DetectGlycans(context.Context, string) ([]engine.Glycan, error) {
	return f.glycans, f.err
}

func writePDB(t *testing.T, path string, lines []string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "")), 0644))
}

func TestExportFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cluster1.pdb")
	out := filepath.Join(dir, "cluster1.mmCIF")
	writePDB(t, in, pdbLines)

	x := NewExporter(&fakeEngine{glycans: []engine.Glycan{{WURCS: "WURCS=2.0/first"}, {WURCS: "WURCS=2.0/second"}}})
	require.NoError(t, x.ExportFile(context.Background(), in, out))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "data_cluster1\n")
	assert.Contains(t, string(b), "_wurcs WURCS=2.0/first\n")
	assert.NotContains(t, string(b), "second")
}

func TestExportFile_EngineOutcomes(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "m.pdb")
	out := filepath.Join(dir, "m.mmCIF")
	writePDB(t, in, pdbLines)

	// No glycans: exported without the _wurcs item.
	x := NewExporter(&fakeEngine{err: &engine.Error{Op: "detect_glycans", Err: engine.ErrNoGlycans}})
	require.NoError(t, x.ExportFile(context.Background(), in, out))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "_wurcs")

	// Any other engine failure fails the file.
	x = NewExporter(&fakeEngine{err: errors.New("bridge crashed")})
	assert.EqualError(t, x.ExportFile(context.Background(), in, out), "bridge crashed")

	// Without an engine.
	require.NoError(t, NewExporter(nil).ExportFile(context.Background(), in, out))
}

func TestExportTree(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "pdb")
	out := filepath.Join(dir, "cif")
	writePDB(t, filepath.Join(in, "man5", "cluster1.pdb"), pdbLines)
	writePDB(t, filepath.Join(in, "man9", "cluster2.pdb"), pdbLines)
	writePDB(t, filepath.Join(in, "broken.pdb"), []string{"ATOM 1 C1 NAG 2 x y z\n"})
	writePDB(t, filepath.Join(in, "notes.txt"), []string{"no coordinates here\n"})

	written, failures, err := NewExporter(nil).ExportTree(context.Background(), in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	require.Len(t, failures, 2)
	assert.Equal(t, filepath.Join(in, "broken.pdb"), failures[0].Path)
	assert.ErrorIs(t, failures[1].Err, ErrNoAtoms)

	assert.FileExists(t, filepath.Join(out, "man5", "cluster1.mmCIF"))
	assert.FileExists(t, filepath.Join(out, "man9", "cluster2.mmCIF"))
	assert.NoFileExists(t, filepath.Join(out, "broken.mmCIF"))
}
