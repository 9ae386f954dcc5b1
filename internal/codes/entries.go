package codes

// entries is the GLYCAM one-letter code table. Each key is the two or three
// character code that follows the linkage prefix in a GLYCAM residue name:
// the first letter names the sugar (upper case D, lower case L) and the
// second the ring form and anomer (A/B pyranose, D/U furanose).
var entries = []entrySpec{
	{Keys: []string{"AA"}, Target: "64K", Supported: false, FullName: "alpha-D-arabinopyranose", Abbreviation: "Ara"},
	{Keys: []string{"AB"}, Target: "SEJ", Supported: false, FullName: "beta-D-arabinopyranose", Abbreviation: "Ara"},
	{Keys: []string{"aA"}, Target: "ARA", Supported: true, FullName: "alpha-L-arabinopyranose", Abbreviation: "Ara"},
	{Keys: []string{"aB"}, Target: "ARB", Supported: true, FullName: "beta-L-arabinopyranose", Abbreviation: "Ara"},
	{Keys: []string{"AD"}, Target: "BXY", Supported: true, FullName: "alpha-D-arabinofuranose", Abbreviation: "Ara"},
	{Keys: []string{"AU"}, Target: "BXX", Supported: true, FullName: "beta-D-arabinofuranose", Abbreviation: "Ara"},
	{Keys: []string{"aD"}, Target: "AHR", Supported: true, FullName: "alpha-L-arabinofuranose", Abbreviation: "Ara"},
	{Keys: []string{"aU"}, Target: "FUB", Supported: false, FullName: "beta-L-arabinofuranose", Abbreviation: "Ara"},
	{Keys: []string{"DA"}, Target: "LDY", Supported: true, FullName: "alpha-D-lyxopyranose", Abbreviation: "Lyx"},
	{Keys: []string{"DB"}, Target: "Z4W", Supported: false, FullName: "beta-D-lyxopyranose", Abbreviation: "Lyx"},
	{Keys: []string{"dA"}, Target: "UNK", Supported: false, FullName: "alpha-L-lyxopyranose", Abbreviation: "Lyx"},
	{Keys: []string{"dB"}, Target: "UNK", Supported: false, FullName: "beta-L-lyxopyranose", Abbreviation: "Lyx"},
	{Keys: []string{"RA"}, Target: "YYM", Supported: false, FullName: "alpha-D-ribopyranose", Abbreviation: "Rib"},
	{Keys: []string{"RB"}, Target: "RIP", Supported: true, FullName: "beta-D-ribopyranose", Abbreviation: "Rib"},
	{Keys: []string{"rA"}, Target: "UNK", Supported: false, FullName: "alpha-L-ribopyranose", Abbreviation: "Rib"},
	{Keys: []string{"rB"}, Target: "0MK", Supported: false, FullName: "beta-L-ribopyranose", Abbreviation: "Rib"},
	{Keys: []string{"XA"}, Target: "XYS", Supported: true, FullName: "alpha-D-xylopyranose", Abbreviation: "Xyl"},
	{Keys: []string{"XB"}, Target: "XYP", Supported: true, FullName: "beta-D-xylopyranose", Abbreviation: "Xyl"},
	{Keys: []string{"xA"}, Target: "HSY", Supported: false, FullName: "alpha-L-xylopyranose", Abbreviation: "Xyl"},
	{Keys: []string{"xB"}, Target: "LXC", Supported: true, FullName: "beta-L-xylopyranose", Abbreviation: "Xyl"},
	{Keys: []string{"NA"}, Target: "AFD", Supported: false, FullName: "alpha-D-allopyranose", Abbreviation: "All"},
	{Keys: []string{"NB"}, Target: "ALL", Supported: false, FullName: "beta-D-allopyranose", Abbreviation: "All"},
	{Keys: []string{"nA"}, Target: "UNK", Supported: false, FullName: "alpha-L-allopyranose", Abbreviation: "All"},
	{Keys: []string{"nB"}, Target: "WOO", Supported: false, FullName: "beta-L-allopyranose", Abbreviation: "All"},
	{Keys: []string{"EA"}, Target: "SHD", Supported: false, FullName: "alpha-D-altropyranose", Abbreviation: "Alt"},
	{Keys: []string{"EB"}, Target: "UNK", Supported: false, FullName: "beta-D-altropyranose", Abbreviation: "Alt"},
	{Keys: []string{"eA"}, Target: "UNK", Supported: false, FullName: "alpha-L-altropyranose", Abbreviation: "Alt"},
	{Keys: []string{"eB"}, Target: "UNK", Supported: false, FullName: "beta-L-altropyranose", Abbreviation: "Alt"},
	{Keys: []string{"LA"}, Target: "GLA", Supported: true, FullName: "alpha-D-galactopyranose", Abbreviation: "Gal"},
	{Keys: []string{"LB"}, Target: "GAL", Supported: true, FullName: "beta-D-galactopyranose", Abbreviation: "Gal"},
	{Keys: []string{"lA"}, Target: "GXL", Supported: true, FullName: "alpha-L-galactopyranose", Abbreviation: "Gal"},
	{Keys: []string{"lB"}, Target: "GIV", Supported: false, FullName: "beta-L-galactopyranose", Abbreviation: "Gal"},
	{Keys: []string{"GA"}, Target: "GLC", Supported: true, FullName: "alpha-D-glucopyranose", Abbreviation: "Glc"},
	{Keys: []string{"GB"}, Target: "BGC", Supported: true, FullName: "beta-D-glucopyranose", Abbreviation: "Glc"},
	{Keys: []string{"gA"}, Target: "UNK", Supported: false, FullName: "alpha-L-glucopyranose", Abbreviation: "Glc"},
	{Keys: []string{"gB"}, Target: "Z8T", Supported: false, FullName: "beta-L-glucopyranose", Abbreviation: "Glc"},
	{Keys: []string{"KA"}, Target: "4GL", Supported: false, FullName: "alpha-D-gulopyranose", Abbreviation: "Gul"},
	{Keys: []string{"KB"}, Target: "GL0", Supported: true, FullName: "beta-D-gulopyranose", Abbreviation: "Gul"},
	{Keys: []string{"kA"}, Target: "GUP", Supported: true, FullName: "alpha-L-gulopyranose", Abbreviation: "Gul"},
	{Keys: []string{"kB"}, Target: "Z8T", Supported: false, FullName: "beta-L-gulopyranose", Abbreviation: "Gul"},
	{Keys: []string{"IA"}, Target: "ZCD", Supported: false, FullName: "alpha-D-idopyranose", Abbreviation: "Ido"},
	{Keys: []string{"IB"}, Target: "UNK", Supported: false, FullName: "beta-D-idopyranose", Abbreviation: "Ido"},
	{Keys: []string{"iA"}, Target: "UNK", Supported: false, FullName: "alpha-L-idopyranose", Abbreviation: "Ido"},
	{Keys: []string{"iB"}, Target: "4N2", Supported: false, FullName: "beta-L-idopyranose", Abbreviation: "Ido"},
	{Keys: []string{"MA"}, Target: "MAN", Supported: true, FullName: "alpha-D-mannopyranose", Abbreviation: "Man"},
	{Keys: []string{"MB"}, Target: "BMA", Supported: true, FullName: "beta-D-mannopyranose", Abbreviation: "Man"},
	{Keys: []string{"mA"}, Target: "UNK", Supported: false, FullName: "alpha-L-mannopyranose", Abbreviation: "Man"},
	{Keys: []string{"mB"}, Target: "UNK", Supported: false, FullName: "beta-L-mannopyranose", Abbreviation: "Man"},
	{Keys: []string{"TA"}, Target: "UNK", Supported: false, FullName: "alpha-D-talopyranose", Abbreviation: "Tal"},
	{Keys: []string{"TB"}, Target: "SDY", Supported: false, FullName: "beta-D-talopyranose", Abbreviation: "Tal"},
	{Keys: []string{"tA"}, Target: "UNK", Supported: false, FullName: "alpha-L-talopyranose", Abbreviation: "Tal"},
	{Keys: []string{"tB"}, Target: "ZEE", Supported: false, FullName: "beta-L-talopyranose", Abbreviation: "Tal"},
	{Keys: []string{"CA"}, Target: "UNK", Supported: false, FullName: "alpha-D-fructopyranose", Abbreviation: "Fru"},
	{Keys: []string{"CB"}, Target: "BDF", Supported: true, FullName: "beta-D-fructopyranose", Abbreviation: "Fru"},
	{Keys: []string{"cA"}, Target: "UNK", Supported: false, FullName: "alpha-L-fructopyranose", Abbreviation: "Fru"},
	{Keys: []string{"cB"}, Target: "UNK", Supported: false, FullName: "beta-L-fructopyranose", Abbreviation: "Fru"},
	{Keys: []string{"CD"}, Target: "Z9N", Supported: false, FullName: "alpha-D-fructofuranose", Abbreviation: "Fru"},
	{Keys: []string{"CU"}, Target: "FRU", Supported: true, FullName: "beta-D-fructofuranose", Abbreviation: "Fru"},
	{Keys: []string{"cD"}, Target: "UNK", Supported: false, FullName: "alpha-L-fructofuranose", Abbreviation: "Fru"},
	{Keys: []string{"cU"}, Target: "LFR", Supported: true, FullName: "beta-L-fructofuranose", Abbreviation: "Fru"},
	{Keys: []string{"PA"}, Target: "UNK", Supported: false, FullName: "alpha-D-psicopyranose", Abbreviation: "Psi"},
	{Keys: []string{"PB"}, Target: "UNK", Supported: false, FullName: "beta-D-psicopyranose", Abbreviation: "Psi"},
	{Keys: []string{"pA"}, Target: "UNK", Supported: false, FullName: "alpha-L-psicopyranose", Abbreviation: "Psi"},
	{Keys: []string{"pB"}, Target: "UNK", Supported: false, FullName: "beta-L-psicopyranose", Abbreviation: "Psi"},
	{Keys: []string{"PD"}, Target: "PSV", Supported: true, FullName: "alpha-D-psicofuranose", Abbreviation: "Psi"},
	{Keys: []string{"PU"}, Target: "TTV", Supported: false, FullName: "beta-D-psicofuranose", Abbreviation: "Psi"},
	{Keys: []string{"pD"}, Target: "SF6", Supported: false, FullName: "alpha-L-psicofuranose", Abbreviation: "Psi"},
	{Keys: []string{"pU"}, Target: "SF9", Supported: false, FullName: "beta-L-psicofuranose", Abbreviation: "Psi"},
	{Keys: []string{"BA"}, Target: "UNK", Supported: false, FullName: "alpha-D-sorbopyranose", Abbreviation: "Sor"},
	{Keys: []string{"BB"}, Target: "UNK", Supported: false, FullName: "beta-D-sorbopyranose", Abbreviation: "Sor"},
	{Keys: []string{"bA"}, Target: "SOE", Supported: true, FullName: "alpha-L-sorbopyranose", Abbreviation: "Sor"},
	{Keys: []string{"bB"}, Target: "UNK", Supported: false, FullName: "beta-L-sorbopyranose", Abbreviation: "Sor"},
	{Keys: []string{"JA"}, Target: "T6T", Supported: false, FullName: "alpha-D-tagatopyranose", Abbreviation: "Tag"},
	{Keys: []string{"JB"}, Target: "UNK", Supported: false, FullName: "beta-D-tagatopyranose", Abbreviation: "Tag"},
	{Keys: []string{"jA"}, Target: "UNK", Supported: false, FullName: "alpha-L-tagatopyranose", Abbreviation: "Tag"},
	{Keys: []string{"jB"}, Target: "UNK", Supported: false, FullName: "beta-L-tagatopyranose", Abbreviation: "Tag"},
	{Keys: []string{"FA"}, Target: "FCA", Supported: true, FullName: "alpha-D-fucopyranose", Abbreviation: "Fuc"},
	{Keys: []string{"FB"}, Target: "FCB", Supported: true, FullName: "beta-D-fucopyranose", Abbreviation: "Fuc"},
	{Keys: []string{"fA"}, Target: "FUC", Supported: true, FullName: "alpha-L-fucopyranose", Abbreviation: "Fuc"},
	{Keys: []string{"fB"}, Target: "FUL", Supported: true, FullName: "beta-L-fucopyranose", Abbreviation: "Fuc"},
	{Keys: []string{"QA"}, Target: "G6D", Supported: false, FullName: "alpha-D-quinovopyranose", Abbreviation: "Qui"},
	{Keys: []string{"QB"}, Target: "YYK", Supported: false, FullName: "beta-D-quinovopyranose", Abbreviation: "Qui"},
	{Keys: []string{"qA"}, Target: "UNK", Supported: false, FullName: "alpha-L-quinovopyranose", Abbreviation: "Qui"},
	{Keys: []string{"qB"}, Target: "UNK", Supported: false, FullName: "beta-L-quinovopyranose", Abbreviation: "Qui"},
	{Keys: []string{"HA"}, Target: "XXR", Supported: false, FullName: "alpha-D-rhamnopyranose", Abbreviation: "Rha"},
	{Keys: []string{"HB"}, Target: "UNK", Supported: false, FullName: "beta-D-rhamnopyranose", Abbreviation: "Rha"},
	{Keys: []string{"hA"}, Target: "RAM", Supported: true, FullName: "alpha-L-rhamnopyranose", Abbreviation: "Rha"},
	{Keys: []string{"hB"}, Target: "RM4", Supported: true, FullName: "beta-L-rhamnopyranose", Abbreviation: "Rha"},
	{Keys: []string{"OA"}, Target: "ADA", Supported: true, FullName: "alpha-D-galactopyranuronic acid", Abbreviation: "GalA"},
	{Keys: []string{"OB"}, Target: "GTR", Supported: true, FullName: "beta-D-galactopyranuronic acid", Abbreviation: "GalA"},
	{Keys: []string{"oA"}, Target: "UNK", Supported: false, FullName: "alpha-L-galactopyranuronic acid", Abbreviation: "GalA"},
	{Keys: []string{"oB"}, Target: "UNK", Supported: false, FullName: "beta-L-galactopyranuronic acid", Abbreviation: "GalA"},
	{Keys: []string{"ZA"}, Target: "GCU", Supported: true, FullName: "alpha-D-glucopyranuronic acid", Abbreviation: "GlcA"},
	{Keys: []string{"ZB"}, Target: "BDP", Supported: true, FullName: "beta-D-glucopyranuronic acid", Abbreviation: "GlcA"},
	{Keys: []string{"zA"}, Target: "UNK", Supported: false, FullName: "alpha-L-glucopyranuronic acid", Abbreviation: "GlcA"},
	{Keys: []string{"zB"}, Target: "UNK", Supported: false, FullName: "beta-L-glucopyranuronic acid", Abbreviation: "GlcA"},
	{Keys: []string{"UA"}, Target: "UNK", Supported: false, FullName: "alpha-D-idopyranuronic acid", Abbreviation: "IdoA"},
	{Keys: []string{"UB"}, Target: "UNK", Supported: false, FullName: "beta-D-idopyranuronic acid", Abbreviation: "IdoA"},
	{Keys: []string{"uA"}, Target: "IDR", Supported: true, FullName: "alpha-L-idopyranuronic acid", Abbreviation: "IdoA"},
	{Keys: []string{"uB"}, Target: "UNK", Supported: false, FullName: "beta-L-idopyranuronic acid", Abbreviation: "IdoA"},
	{Keys: []string{"VA"}, Target: "A2G", Supported: true, FullName: "2-acetamido-2-deoxy-alpha-D-galactopyranose", Abbreviation: "GalNAc"},
	{Keys: []string{"VB"}, Target: "NGA", Supported: true, FullName: "2-acetamido-2-deoxy-beta-D-galactopyranose", Abbreviation: "GalNAc"},
	{Keys: []string{"vA"}, Target: "YYQ", Supported: false, FullName: "2-acetamido-2-deoxy-alpha-L-galactopyranose", Abbreviation: "GalNAc"},
	{Keys: []string{"vB"}, Target: "UNK", Supported: false, FullName: "2-acetamido-2-deoxy-beta-L-galactopyranose", Abbreviation: "GalNAc"},
	{Keys: []string{"YA"}, Target: "NDG", Supported: true, FullName: "2-acetamido-2-deoxy-alpha-D-glucoopyranose", Abbreviation: "GlcNAc"},
	{Keys: []string{"YB"}, Target: "NAG", Supported: true, FullName: "2-acetamido-2-deoxy-beta-D-glucopyranose", Abbreviation: "GlcNAc"},
	{Keys: []string{"yA"}, Target: "NGZ", Supported: true, FullName: "2-acetamido-2-deoxy-alpha-L-glucoopyranose", Abbreviation: "GlcNAc"},
	{Keys: []string{"yB"}, Target: "UNK", Supported: false, FullName: "2-acetamido-2-deoxy-beta-L-glucoopyranose", Abbreviation: "GlcNAc"},
	{Keys: []string{"WA"}, Target: "BM3", Supported: true, FullName: "2-acetamido-2-deoxy-alpha-D-mannopyranose", Abbreviation: "ManNAc"},
	{Keys: []string{"WB"}, Target: "BM7", Supported: true, FullName: "2-acetamido-2-deoxy-beta-D-mannopyranose", Abbreviation: "ManNAc"},
	{Keys: []string{"wA"}, Target: "UNK", Supported: false, FullName: "2-acetamido-2-deoxy-alpha-L-mannoopyranose", Abbreviation: "ManNAc"},
	{Keys: []string{"wB"}, Target: "UNK", Supported: false, FullName: "2-acetamido-2-deoxy-beta-L-mannoopyranose", Abbreviation: "ManNAc"},
	{Keys: []string{"SA"}, Target: "SIA", Supported: true, FullName: "5-N-ACETYL-ALPHA-D-NEURAMINIC ACID", Abbreviation: "NeuNAc", Synonyms: []string{"Neu5Ac"}},
	{Keys: []string{"SB"}, Target: "SLB", Supported: true, FullName: "5-N-ACETYL-BETA-D-NEURAMINIC ACID", Abbreviation: "NeuNAc", Synonyms: []string{"Neu5Ac"}},
	{Keys: []string{"KNA"}, Target: "KDM", Supported: true, FullName: "3-deoxy-D-glycero-alpha-D-galacto-non-2-ulopyranosonic acid", Abbreviation: "KDN"},
	{Keys: []string{"KNB"}, Target: "KDN", Supported: true, FullName: "3-deoxy-D-glycero-beta-D-galacto-non-2-ulopyranosonic acid", Abbreviation: "KDN"},
	{Keys: []string{"KOA", "KO", "KOB"}, Target: "KDO", Supported: true, FullName: "3-deoxy-alpha-D-manno-oct-2-ulopyranosonic acid", Abbreviation: "KDO"},
	{Keys: []string{"SGA"}, Target: "NGC", Supported: false, FullName: "N-glycolyl-alpha-neuraminic acid", Abbreviation: "NeuNGc", Synonyms: []string{"Neu5Gc"}},
	{Keys: []string{"SGB"}, Target: "NGE", Supported: false, FullName: "N-glycolyl-beta-neuraminic acid", Abbreviation: "NeuNGc", Synonyms: []string{"Neu5Gc"}},
}
