package mmcif

import (
	"io"
	"strings"

	chem "github.com/rmera/gochem"
)

// Document is the content of one exported mmCIF data block.
type Document struct {
	Name     string
	WURCS    string // written as the _wurcs item when set
	Molecule *chem.Molecule
}

// Write renders d as a single mmCIF data block: the atom_site loop followed
// by the _wurcs pair.
func Write(w io.Writer, d *Document) error {
	m := d.Molecule
	if err := chem.PDBxWrite(w, m.Coords, m, m.Bfactors, false, blockName(d.Name)); err != nil {
		return err
	}
	if d.WURCS != "" {
		if _, err := io.WriteString(w, "_wurcs "+d.WURCS+"\n#\n"); err != nil {
			return err
		}
	}
	return nil
}

// blockName makes name usable after "data_".
func blockName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r <= ' ' {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "unnamed"
	}
	return name
}
