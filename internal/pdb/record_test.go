package pdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_RoundTrip(t *testing.T) {
	lines := []string{
		"ATOM      1  C1  4MA     1      10.000  20.000  30.000  1.00  0.00\n",
		"HETATM 2  O5 0YB A  12 1.0 2.0 3.0\r\n",
		"  leading\twhitespace  \t mixed \n",
		"TER\n",
		"END",
		"",
		"   \n",
		"REMARK  GLYCAM  generated",
	}
	for _, l := range lines {
		assert.Equal(t, l, Tokenize(l).String(), "%q", l)
	}
}

func TestTokenize_Fields(t *testing.T) {
	r := Tokenize("ATOM      1  C1  4MA     1      10.000  20.000  30.000\n")

	assert.Equal(t, 8, r.Len())
	assert.Equal(t, "ATOM", r.Tag())
	assert.True(t, r.IsStructural())

	atom, ok := r.AtomName()
	require.True(t, ok)
	assert.Equal(t, "C1", atom)

	res, ok := r.ResidueName()
	require.True(t, ok)
	assert.Equal(t, "4MA", res)

	assert.Equal(t, 4, r.SeqIndex())
	seq, ok := r.SeqNumber()
	require.True(t, ok)
	assert.Equal(t, "1", seq)
	assert.Equal(t, "", r.ChainID())
	assert.Equal(t, "     ", r.Sep(4))

	_, ok = r.Token(99)
	assert.False(t, ok)
}

func TestTokenize_ChainColumn(t *testing.T) {
	r := Tokenize("ATOM      1  C1  NAG A  12      10.000  20.000  30.000\n")
	assert.Equal(t, 5, r.SeqIndex())
	assert.Equal(t, "A", r.ChainID())
	seq, _ := r.SeqNumber()
	assert.Equal(t, "12", seq)
}

func TestTokenize_ShortRecords(t *testing.T) {
	assert.False(t, Tokenize("ATOM 1 C1\n").IsStructural())
	assert.False(t, Tokenize("REMARK 1 2 3 4\n").IsStructural())
	assert.True(t, Tokenize("TER\n").IsTerminal())
	assert.Equal(t, -1, Tokenize("ATOM 1 C1 0MA\n").SeqIndex())
}

func TestRecord_SetToken(t *testing.T) {
	r := Tokenize("ATOM      1  C1  4MA     1      10.000\n")
	c := r.Clone()
	c.SetToken(FieldResidueName, "MAN")
	c.SetSep(4, "    ")
	c.SetToken(42, "ignored")

	assert.Equal(t, "ATOM      1  C1  MAN    1      10.000\n", c.String())
	assert.Equal(t, "ATOM      1  C1  4MA     1      10.000\n", r.String())
}
