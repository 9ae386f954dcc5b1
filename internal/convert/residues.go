package convert

// standardResidues are never recoded. Several of them contain a table key
// behind a word character (ALA reads as A + LA), so detection alone would
// turn an alanine into a galactose.
var standardResidues = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLN": true, "GLU": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,

	// protonation and glycosylation variants written by GLYCAM/AMBER
	"HID": true, "HIE": true, "HIP": true, "CYX": true, "ASH": true,
	"GLH": true, "LYN": true, "NLN": true, "OLS": true, "OLT": true,

	"ACE": true, "NME": true, "NHE": true,

	// water
	"HOH": true, "WAT": true, "DOD": true, "H2O": true, "SOL": true,
	"TIP": true, "TP3": true, "TIP3": true, "T3P": true, "T4P": true,

	// ions, PDB names and the AMBER and CHARMM spellings (CLA reads as
	// C + LA)
	"NA": true, "CL": true, "K": true, "CA": true, "MG": true, "ZN": true,
	"MN": true, "FE": true, "CU": true, "CO": true, "NI": true, "CD": true,
	"LI": true, "RB": true, "CS": true, "BR": true, "IOD": true,
	"Na+": true, "Cl-": true, "K+": true, "Li+": true, "Rb+": true,
	"Cs+": true, "MG2": true, "ZN2": true, "CA2": true,
	"SOD": true, "CLA": true, "POT": true, "CAL": true, "CES": true,
	"LIT": true, "RUB": true, "BAR": true, "CD2": true,
}
