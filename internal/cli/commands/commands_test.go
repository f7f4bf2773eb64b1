// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/gqlvis/internal/cli/config"
	"github.com/leapstack-labs/gqlvis/internal/cli/output"
	"github.com/leapstack-labs/gqlvis/internal/testutil"
)

// setupConfig loads a configuration pointing at a saved fleet schema.
func setupConfig(t *testing.T, outputMode string) string {
	t.Helper()
	dir := t.TempDir()
	schemaPath := testutil.WriteIntrospectionFile(t, dir, testutil.FleetSchema()...)

	cfgPath := filepath.Join(dir, "gqlvis.yaml")
	content := "endpoint: " + schemaPath + "\noutput: " + outputMode + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	_, err := config.LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	return schemaPath
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	ctx := config.WithLogger(context.Background(), testutil.NewTestLogger(t))
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func TestNewOutlineCommand(t *testing.T) {
	cmd := NewOutlineCommand()

	assert.Equal(t, "outline [type]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.Error(t, cmd.Args(cmd, []string{"a", "b"}), "at most one type")
}

func TestNewGraphCommand(t *testing.T) {
	cmd := NewGraphCommand()

	assert.Equal(t, "graph", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Error(t, cmd.Args(cmd, []string{"Ship"}))
}

func TestNewBrowseCommand(t *testing.T) {
	cmd := NewBrowseCommand()

	assert.Equal(t, "browse [type]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
}

func TestNewUICommand(t *testing.T) {
	cmd := NewUICommand()

	assert.Equal(t, "ui", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	// Verify flags exist
	flags := []string{"port", "no-browser", "watch", "dev"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
	assert.True(t, cmd.Flags().Lookup("dev").Hidden)
}

func TestOutline_ListingJSON(t *testing.T) {
	schemaPath := setupConfig(t, "json")

	out, err := execute(t, NewOutlineCommand())
	require.NoError(t, err)

	var listing output.ListingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &listing))

	assert.Equal(t, schemaPath, listing.Endpoint)
	var ids []string
	for _, typ := range listing.Types {
		ids = append(ids, typ.ID)
	}
	assert.Equal(t, []string{"ShipPaginator", "Ship", "Person", "Port"}, ids)

	ship := listing.Types[1]
	assert.True(t, ship.IsRoot)
	assert.Equal(t, []output.LinkInfo{
		{Field: "data", Target: "Ship", Type: "[Ship!]!"},
		{Field: "crew", Target: "Person", Type: "[Person!]!"},
		{Field: "home", Target: "Port", Type: "Port"},
	}, ship.Links)
	assert.False(t, listing.Types[2].IsRoot)
}

func TestOutline_ListingMarkdown(t *testing.T) {
	setupConfig(t, "auto")

	out, err := execute(t, NewOutlineCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "# Types (4)")
	assert.Contains(t, out, "- **Ship** (root)\n  - data: `[Ship!]!`\n  - crew: `[Person!]!`")
	assert.Contains(t, out, "- **Person**\n  - ship: `Ship`")
}

func TestOutline_Detail(t *testing.T) {
	setupConfig(t, "markdown")

	out, err := execute(t, NewOutlineCommand(), "Ship")
	require.NoError(t, err)

	assert.Contains(t, out, "# Ship (root)")
	assert.Contains(t, out, "- name: `String!`")
	assert.Contains(t, out, "- crew: `[Person!]!`")
}

func TestOutline_DetailOfExcludedType(t *testing.T) {
	setupConfig(t, "yaml")

	out, err := execute(t, NewOutlineCommand(), "PaginatorInfo")
	require.NoError(t, err)

	var d output.DetailOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &d))
	assert.Equal(t, "PaginatorInfo", d.ID)
	assert.Equal(t, []output.FieldInfo{{Name: "total", Type: "Int!", Target: "Int"}}, d.Fields)
}

func TestOutline_UnknownType(t *testing.T) {
	setupConfig(t, "text")

	_, err := execute(t, NewOutlineCommand(), "Nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `type "Nope" not found`)
}

func TestOutline_Table(t *testing.T) {
	setupConfig(t, "table")

	out, err := execute(t, NewOutlineCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "[Person!]!")
}

func TestOutline_MissingFile(t *testing.T) {
	schemaPath := setupConfig(t, "json")
	require.NoError(t, os.Remove(schemaPath))

	_, err := execute(t, NewOutlineCommand())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGraph_YAML(t *testing.T) {
	setupConfig(t, "yaml")

	out, err := execute(t, NewGraphCommand())
	require.NoError(t, err)

	var g output.GraphOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &g))

	assert.Equal(t, output.GraphSummary{Nodes: 4, Links: 4, Roots: 3, Dropped: 0}, g.Summary)

	byID := make(map[string]output.NodeInfo)
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	assert.Equal(t, 3, byID["Ship"].OutDegree)
	assert.Equal(t, 2, byID["Ship"].InDegree)
	assert.Equal(t, 1, byID["Port"].InDegree)
	assert.Zero(t, byID["ShipPaginator"].OutDegree)
	assert.ElementsMatch(t, []string{"Ship", "Person", "Port"}, byID["Ship"].Neighbors)

	require.Len(t, g.Links, 4)
	assert.Equal(t, output.EdgeInfo{Index: 3, Source: "Person", Target: "Ship", Name: "ship", Type: "Ship"}, g.Links[3])
}

func TestGraph_TextAndTable(t *testing.T) {
	setupConfig(t, "text")

	out, err := execute(t, NewGraphCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "4 nodes, 3 roots, 4 links")
	assert.Contains(t, out, "Ship out=3 in=2")

	setupConfig(t, "table")
	out, err = execute(t, NewGraphCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Nodes (4)")
	assert.Contains(t, out, "Links (4)")
}

func TestBrowse_RequiresTerminal(t *testing.T) {
	setupConfig(t, "auto")

	_, err := execute(t, NewBrowseCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}

func TestNewCommandContext_BadOutput(t *testing.T) {
	setupConfig(t, "csv")

	_, err := execute(t, NewGraphCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
