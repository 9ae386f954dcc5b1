package codes

// goldenTargets is the full source to target table as published with the
// GLYCAM residue naming reference, one row per key.
var goldenTargets = []struct {
	source    string
	target    string
	supported bool
}{
	{"AA", "64K", false},
	{"AB", "SEJ", false},
	{"aA", "ARA", true},
	{"aB", "ARB", true},
	{"AD", "BXY", true},
	{"AU", "BXX", true},
	{"aD", "AHR", true},
	{"aU", "FUB", false},
	{"DA", "LDY", true},
	{"DB", "Z4W", false},
	{"dA", "UNK", false},
	{"dB", "UNK", false},
	{"RA", "YYM", false},
	{"RB", "RIP", true},
	{"rA", "UNK", false},
	{"rB", "0MK", false},
	{"XA", "XYS", true},
	{"XB", "XYP", true},
	{"xA", "HSY", false},
	{"xB", "LXC", true},
	{"NA", "AFD", false},
	{"NB", "ALL", false},
	{"nA", "UNK", false},
	{"nB", "WOO", false},
	{"EA", "SHD", false},
	{"EB", "UNK", false},
	{"eA", "UNK", false},
	{"eB", "UNK", false},
	{"LA", "GLA", true},
	{"LB", "GAL", true},
	{"lA", "GXL", true},
	{"lB", "GIV", false},
	{"GA", "GLC", true},
	{"GB", "BGC", true},
	{"gA", "UNK", false},
	{"gB", "Z8T", false},
	{"KA", "4GL", false},
	{"KB", "GL0", true},
	{"kA", "GUP", true},
	{"kB", "Z8T", false},
	{"IA", "ZCD", false},
	{"IB", "UNK", false},
	{"iA", "UNK", false},
	{"iB", "4N2", false},
	{"MA", "MAN", true},
	{"MB", "BMA", true},
	{"mA", "UNK", false},
	{"mB", "UNK", false},
	{"TA", "UNK", false},
	{"TB", "SDY", false},
	{"tA", "UNK", false},
	{"tB", "ZEE", false},
	{"CA", "UNK", false},
	{"CB", "BDF", true},
	{"cA", "UNK", false},
	{"cB", "UNK", false},
	{"CD", "Z9N", false},
	{"CU", "FRU", true},
	{"cD", "UNK", false},
	{"cU", "LFR", true},
	{"PA", "UNK", false},
	{"PB", "UNK", false},
	{"pA", "UNK", false},
	{"pB", "UNK", false},
	{"PD", "PSV", true},
	{"PU", "TTV", false},
	{"pD", "SF6", false},
	{"pU", "SF9", false},
	{"BA", "UNK", false},
	{"BB", "UNK", false},
	{"bA", "SOE", true},
	{"bB", "UNK", false},
	{"JA", "T6T", false},
	{"JB", "UNK", false},
	{"jA", "UNK", false},
	{"jB", "UNK", false},
	{"FA", "FCA", true},
	{"FB", "FCB", true},
	{"fA", "FUC", true},
	{"fB", "FUL", true},
	{"QA", "G6D", false},
	{"QB", "YYK", false},
	{"qA", "UNK", false},
	{"qB", "UNK", false},
	{"HA", "XXR", false},
	{"HB", "UNK", false},
	{"hA", "RAM", true},
	{"hB", "RM4", true},
	{"OA", "ADA", true},
	{"OB", "GTR", true},
	{"oA", "UNK", false},
	{"oB", "UNK", false},
	{"ZA", "GCU", true},
	{"ZB", "BDP", true},
	{"zA", "UNK", false},
	{"zB", "UNK", false},
	{"UA", "UNK", false},
	{"UB", "UNK", false},
	{"uA", "IDR", true},
	{"uB", "UNK", false},
	{"VA", "A2G", true},
	{"VB", "NGA", true},
	{"vA", "YYQ", false},
	{"vB", "UNK", false},
	{"YA", "NDG", true},
	{"YB", "NAG", true},
	{"yA", "NGZ", true},
	{"yB", "UNK", false},
	{"WA", "BM3", true},
	{"WB", "BM7", true},
	{"wA", "UNK", false},
	{"wB", "UNK", false},
	{"SA", "SIA", true},
	{"SB", "SLB", true},
	{"KNA", "KDM", true},
	{"KNB", "KDN", true},
	{"KOA", "KDO", true},
	{"KO", "KDO", true},
	{"KOB", "KDO", true},
	{"SGA", "NGC", false},
	{"SGB", "NGE", false},
}
