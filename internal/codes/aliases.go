package codes

import "strings"

// acetamidoAliases maps GLYCAM N-acetyl atom names to their PDB names.
// Only the 2-acetamido-2-deoxy hexoses use this numbering; sialic acids
// number their N-acetyl group differently and are left alone.
var acetamidoAliases = map[string]string{
	"C2N": "C7",
	"O2N": "O7",
	"CME": "C8",
}

// AtomAlias returns the PDB atom name for a legacy GLYCAM atom name in a
// residue described by e.
func AtomAlias(e Entry, atom string) (string, bool) {
	if !isAcetamidoHexose(e) {
		return "", false
	}
	name, ok := acetamidoAliases[atom]
	return name, ok
}

func isAcetamidoHexose(e Entry) bool {
	return strings.HasSuffix(e.Abbreviation, "NAc") && !strings.HasPrefix(e.Abbreviation, "Neu")
}
