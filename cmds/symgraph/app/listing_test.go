package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/cmds/symgraph/app"
	"github.com/katalvlaran/symgraph/core"
)

const sampleListing = `
# demo listing
sym class app::Server
sym method app::Server::Start Start() error
sym method app::Server::Start Start(ctx) error
rel call app::Server::Start net::Listen
`

// TestReadListing_BuildsGraph verifies directive parsing end to end:
// hierarchy creation, signature overloads, lazily created relation targets.
func TestReadListing_BuildsGraph(t *testing.T) {
	g, err := app.ReadListing(strings.NewReader(sampleListing), "::")
	require.NoError(t, err)

	// app, app::Server, Start#1, Start#2, net, net::Listen.
	assert.Equal(t, 6, g.NodeCount())

	server := g.NodeByName("app::Server")
	require.NotNil(t, server)
	assert.Equal(t, core.NodeClass, server.Kind())
	assert.Len(t, g.ChildrenOf(server), 2)

	start := g.NodeByName("app::Server::Start")
	require.NotNil(t, start)
	sig, ok := start.Signature()
	require.True(t, ok)
	assert.Equal(t, "Start() error", sig)

	listen := g.NodeByName("net::Listen")
	require.NotNil(t, listen)
	assert.Equal(t, core.NodeUndefined, listen.Kind())
	require.NotNil(t, g.FindEdge(func(e *core.Edge) bool {
		return e.Kind() == core.EdgeCall && e.To() == listen
	}))
}

// TestReadListing_Errors verifies line-numbered rejection of malformed
// directives.
func TestReadListing_Errors(t *testing.T) {
	cases := map[string]string{
		"bogus directive":   "frob class a::b",
		"unknown node kind": "sym gadget a::b",
		"short sym":         "sym class",
		"unknown rel kind":  "rel member a b",
		"short rel":         "rel call a",
	}
	for name, listing := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := app.ReadListing(strings.NewReader(listing), "::")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

// TestDumpCommand_Text runs the command tree against a listing on stdin
// and checks the textual dump.
func TestDumpCommand_Text(t *testing.T) {
	f := writeTempListing(t)

	cmd := app.New()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"dump", f})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Graph:\n"))
	assert.Contains(t, out, "nodes (6)")
	assert.Contains(t, out, `"app::Server"`)
}

// TestDumpCommand_DOT checks the DOT rendering path and the format guard.
func TestDumpCommand_DOT(t *testing.T) {
	f := writeTempListing(t)

	cmd := app.New()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"dump", "-f", "dot", f})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "digraph symbols {")

	cmd = app.New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"dump", "-f", "yaml", f})
	assert.Error(t, cmd.Execute())
}

// writeTempListing drops the sample listing into a temp file and returns
// its path.
func writeTempListing(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listing.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleListing), 0o600))
	return path
}
