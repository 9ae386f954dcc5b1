package codes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Size(t *testing.T) {
	tbl := Default()
	assert.Equal(t, 121, tbl.Len())
	assert.Len(t, entries, 119)
}

func TestLookup_Targets(t *testing.T) {
	tbl := Default()

	require.Len(t, goldenTargets, tbl.Len())
	seen := make(map[string]bool, len(goldenTargets))
	for _, g := range goldenTargets {
		require.False(t, seen[g.source], "duplicate golden row %s", g.source)
		seen[g.source] = true

		e, err := tbl.Lookup(g.source)
		require.NoError(t, err, g.source)
		assert.Equal(t, g.source, e.Source)
		assert.Equal(t, g.target, e.Target, g.source)
		assert.Equal(t, g.supported, e.Supported, g.source)
	}
	for _, k := range tbl.Keys() {
		assert.True(t, seen[k], "key %s missing from golden table", k)
	}

	tests := []struct {
		code      string
		target    string
		supported bool
	}{
		{"MA", "MAN", true},
		{"MB", "BMA", true},
		{"YB", "NAG", true},
		{"YA", "NDG", true},
		{"fA", "FUC", true},
		{"LB", "GAL", true},
		{"AA", "64K", false},
		{"aA", "ARA", true},
		{"dA", "UNK", false},
		{"SA", "SIA", true},
		{"SGB", "NGE", false},
		{"KNA", "KDM", true},
		{"rB", "0MK", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			e, err := tbl.Lookup(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.target, e.Target)
			assert.Equal(t, tt.supported, e.Supported)
		})
	}
}

func TestLookup_CaseSensitive(t *testing.T) {
	tbl := Default()

	upper, err := tbl.Lookup("AA")
	require.NoError(t, err)
	lower, err := tbl.Lookup("aA")
	require.NoError(t, err)

	assert.NotEqual(t, upper.Target, lower.Target)
	assert.Contains(t, upper.FullName, "-D-")
	assert.Contains(t, lower.FullName, "-L-")
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Default().Lookup("QQ")
	require.Error(t, err)

	var uce *UnknownCodeError
	require.True(t, errors.As(err, &uce))
	assert.Equal(t, "QQ", uce.Code)
	assert.Contains(t, err.Error(), `"QQ"`)
}

func TestLookup_KDOKeys(t *testing.T) {
	tbl := Default()
	for _, k := range []string{"KOA", "KO", "KOB"} {
		e, err := tbl.Lookup(k)
		require.NoError(t, err, k)
		assert.Equal(t, "KDO", e.Target)
		assert.Equal(t, "3-deoxy-alpha-D-manno-oct-2-ulopyranosonic acid", e.FullName)
	}
}

func TestLookup_NeuraminicSynonyms(t *testing.T) {
	tbl := Default()

	sa, err := tbl.Lookup("SA")
	require.NoError(t, err)
	assert.Equal(t, "NeuNAc", sa.Abbreviation)
	assert.Equal(t, []string{"Neu5Ac"}, sa.Synonyms)

	sgb, err := tbl.Lookup("SGB")
	require.NoError(t, err)
	assert.Equal(t, "NeuNGc", sgb.Abbreviation)
	assert.Equal(t, []string{"Neu5Gc"}, sgb.Synonyms)
}

func TestKeys_LongestFirst(t *testing.T) {
	keys := Default().Keys()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.GreaterOrEqual(t, len(keys[i-1]), len(keys[i]))
	}
	assert.Len(t, keys[0], 3)
}

func TestFind(t *testing.T) {
	tbl := Default()

	tests := []struct {
		in   string
		span string
		code string
		ok   bool
	}{
		{"4MA", "4MA", "MA", true},
		{"0YB", "0YB", "YB", true},
		{"0KNA", "0KNA", "KNA", true},
		{"0KOB", "0KOB", "KOB", true},
		{"0KO", "0KO", "KO", true},
		{"2SGA", "2SGA", "SGA", true},
		{"MA", "", "", false},  // bare code without prefix
		{"0QQ", "", "", false}, // not a key
		{"NAG", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, ok := tbl.Find(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.span, m.Span)
			assert.Equal(t, tt.code, m.Code)
		})
	}
}

func TestCollisions(t *testing.T) {
	// Targets the detection pattern would pick up again; recoding an
	// already converted file is not a no-op for these residues.
	assert.Equal(t, []string{
		"ADA", "ARA", "ARB", "BMA", "FCA", "FCB", "FUB",
		"GCU", "GLA", "NGA", "SIA", "SLB", "ZCD",
	}, Default().Collisions())
}

func TestByTarget(t *testing.T) {
	tbl := Default()

	e, ok := tbl.ByTarget("NAG")
	require.True(t, ok)
	assert.Equal(t, "YB", e.Source)

	_, ok = tbl.ByTarget("UNK")
	assert.False(t, ok)
	assert.True(t, tbl.IsTarget("UNK"))
	assert.True(t, tbl.IsTarget("0MK"))
	assert.False(t, tbl.IsTarget("ALA"))
}

func TestBuild_DuplicateKey(t *testing.T) {
	_, err := build([]entrySpec{
		{Keys: []string{"MA"}, Target: "MAN"},
		{Keys: []string{"MA"}, Target: "BMA"},
	})
	assert.Error(t, err)
}

func TestAtomAlias(t *testing.T) {
	tbl := Default()

	nag, err := tbl.Lookup("YB")
	require.NoError(t, err)
	name, ok := AtomAlias(nag, "C2N")
	require.True(t, ok)
	assert.Equal(t, "C7", name)

	name, ok = AtomAlias(nag, "CME")
	require.True(t, ok)
	assert.Equal(t, "C8", name)

	_, ok = AtomAlias(nag, "C1")
	assert.False(t, ok)

	sia, err := tbl.Lookup("SA")
	require.NoError(t, err)
	_, ok = AtomAlias(sia, "CME")
	assert.False(t, ok)

	man, err := tbl.Lookup("MA")
	require.NoError(t, err)
	_, ok = AtomAlias(man, "C2N")
	assert.False(t, ok)
}
