package engine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detectReply = `{"result": [{
	"wurcs": "WURCS=2.0/2,2,1/[a2122h-1b_1-5_2*NCC/3=O][a1122h-1a_1-5]/1-2/a4-b1",
	"glytoucan_id": "G00000XX",
	"root_chain_id": "B",
	"protein_chain_id": "A",
	"protein_residue_type": "ASN",
	"protein_residue_id": "37",
	"sugars": [
		{"short_name": "NAG", "chain_id": "B", "pdb_id": 1, "q": 0.56, "phi": 12.1, "theta": 5.3,
		 "denomination": "beta-D-aldopyranose", "conformation": "4c1", "bfactor": 20.5,
		 "context": "n-glycan", "diagnostic": "yes"},
		{"short_name": "MAN", "chain_id": "B", "pdb_id": 2, "q": 0.61, "phi": 200.0, "theta": 88.0,
		 "denomination": "alpha-D-aldopyranose", "conformation": "bo3", "bfactor": 31.0,
		 "context": "n-glycan", "diagnostic": "check"}
	]
}]}`

func TestHTTPClient_DetectGlycans(t *testing.T) {
	var got request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/"+OpDetectGlycans, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		io.WriteString(w, detectReply)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL+"/", time.Second)
	glycans, err := c.DetectGlycans(context.Background(), "/data/man5.pdb")
	require.NoError(t, err)

	assert.Equal(t, OpDetectGlycans, got.Op)
	assert.Equal(t, map[string]any{"path": "/data/man5.pdb"}, got.Args)

	require.Len(t, glycans, 1)
	g := glycans[0]
	assert.Equal(t, "G00000XX", g.GlyTouCanID)
	assert.Equal(t, 2, g.SugarCount())
	s, ok := g.Monosaccharide(1)
	require.True(t, ok)
	assert.Equal(t, "MAN", s.ShortName)
	assert.Equal(t, "bo3", s.Conformation)
	assert.InDelta(t, 200.0, s.Phi, 1e-9)
	_, ok = g.Monosaccharide(2)
	assert.False(t, ok)
}

func TestHTTPClient_EngineError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"error": "malformed structure"}`)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 0).DetectGlycans(context.Background(), "x.pdb")
	require.Error(t, err)

	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, OpDetectGlycans, ee.Op)
	assert.Equal(t, "malformed structure", ee.Message)
}

func TestHTTPClient_NonJSONFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 0).DetectGlycans(context.Background(), "x.pdb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPClient_NoGlycans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"result": []}`)
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL, 0).DetectGlycans(context.Background(), "x.pdb")
	assert.ErrorIs(t, err, ErrNoGlycans)
}

func TestHTTPClient_Graft(t *testing.T) {
	var got struct {
		Op   string       `json:"op"`
		Args GraftRequest `json:"args"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"result": [{"index": 0, "receiver_chain_id": "A", "receiver_residue_id": "38",
			"receiver_residue_type": "ASN", "grafted_chain_id": "C",
			"clashing_residues": ["A/TRP-112"], "avg_atomic_distance": 2.1}]}`)
	}))
	defer srv.Close()

	req := GraftRequest{
		Receiver: "fold.pdb",
		Donor:    "man9.pdb",
		Output:   "out.pdb",
		Targets:  []GraftTarget{{GlycanIndex: 0, ChainIndex: 0, ResidueIndex: 37}},
	}
	grafts, err := NewHTTPClient(srv.URL, 0).Graft(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, OpGraft, got.Op)
	assert.Equal(t, req, got.Args)
	require.Len(t, grafts, 1)
	assert.Equal(t, []string{"A/TRP-112"}, grafts[0].ClashingResidues)
	assert.Equal(t, "C", grafts[0].GraftedChainID)
}

func TestClient_GraftValidatesRequest(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", 0)
	_, err := c.Graft(context.Background(), GraftRequest{Receiver: "a.pdb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestExecClient(t *testing.T) {
	reply := `{"result": [{"index": 0, "chain_id": "A", "sequence": "MNGT", "residues": []}]}`
	c, err := NewExecClient([]string{"sh", "-c", "cat > /dev/null; printf '%s' '" + reply + "'"}, 10*time.Second)
	require.NoError(t, err)

	seqs, err := c.ReceiverSequences(context.Background(), "fold.pdb")
	require.NoError(t, err)
	require.Len(t, seqs, 1)
	assert.Equal(t, "MNGT", seqs[0].Sequence)
	assert.Equal(t, "A", seqs[0].ChainID)
}

func TestExecClient_Failure(t *testing.T) {
	c, err := NewExecClient([]string{"sh", "-c", "echo 'no such file' >&2; exit 3"}, 0)
	require.NoError(t, err)

	_, err = c.DetectGlycans(context.Background(), "x.pdb")
	require.Error(t, err)

	var ee *Error
	require.True(t, errors.As(err, &ee))
	assert.Contains(t, err.Error(), "no such file")
}

func TestExecClient_Timeout(t *testing.T) {
	c, err := NewExecClient([]string{"sh", "-c", "exec sleep 5"}, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = c.DetectGlycans(context.Background(), "x.pdb")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewExecClient_Empty(t *testing.T) {
	_, err := NewExecClient(nil, 0)
	assert.Error(t, err)
}
