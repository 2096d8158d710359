package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcode/core"
	"github.com/katalvlaran/mcode/export"
	"github.com/katalvlaran/mcode/mcode"
)

func fixture() (*core.Graph, *mcode.Result) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddNode("9606.X")
	res := &mcode.Result{Membership: map[string]int{"B": 0, "A": 0, "C": 2, "9606.X": 3}}
	return g, res
}

func TestWriteMembership(t *testing.T) {
	_, res := fixture()

	var tsv, csv bytes.Buffer
	require.NoError(t, export.WriteMembership(&tsv, res, '\t'))
	require.NoError(t, export.WriteMembership(&csv, res, ','))
	assert.Equal(t, "9606.X\t3\nA\t0\nB\t0\nC\t2\n", tsv.String())
	assert.Equal(t, "9606.X,3\nA,0\nB,0\nC,2\n", csv.String())
}

func TestWriteGraphviz(t *testing.T) {
	g, res := fixture()

	var plain bytes.Buffer
	require.NoError(t, export.WriteGraphviz(&plain, g))
	assert.Equal(t, "graph {\n\tA -- B\n\tB -- C\n}\n", plain.String())

	var clustered bytes.Buffer
	require.NoError(t, export.Write(&clustered, export.FormatDOT, g, res))
	assert.Equal(t, "graph {\n\tsubgraph cluster_0 {\n\t\tA\n\t\tB\n\t}\n\tA -- B\n\tB -- C\n}\n", clustered.String())
}

func TestFormat(t *testing.T) {
	f, err := export.ParseFormat("csv")
	require.NoError(t, err)
	assert.Equal(t, export.FormatCSV, f)

	_, err = export.ParseFormat("xml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)

	err = export.Write(&bytes.Buffer{}, export.Format("xml"), nil, nil)
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}
