// Package main provides tests for the gqlvis CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/gqlvis/internal/cli"
	"github.com/leapstack-labs/gqlvis/internal/cli/config"
)

func testdataDir(t *testing.T) string {
	t.Helper()
	// Get the absolute path to testdata directory
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	return filepath.Join(wd, "..", "..", "testdata")
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("%s command error = %v", args[0], err)
	}
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	output := run(t, "version")
	if !strings.Contains(output, "gqlvis") {
		t.Errorf("version output should contain 'gqlvis', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output := run(t, "--help")
	expectedCommands := []string{"ui", "outline", "graph", "browse", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestOutlineCommand(t *testing.T) {
	fleet := filepath.Join(testdataDir(t), "fleet.json")

	output := run(t, "outline", "--endpoint", fleet, "--output", "markdown")

	for _, expected := range []string{"# Types (4)", "- **ShipPaginator** (root)", "  - crew: `[Person!]!`"} {
		if !strings.Contains(output, expected) {
			t.Errorf("outline output should contain %q, got: %s", expected, output)
		}
	}
	// Namespaces and internal types are not part of the graph.
	for _, unexpected := range []string{"**Query**", "**Mutation**", "**PaginatorInfo**", "__Schema"} {
		if strings.Contains(output, unexpected) {
			t.Errorf("outline output should not contain %q, got: %s", unexpected, output)
		}
	}
}

func TestGraphCommandJSON(t *testing.T) {
	fleet := filepath.Join(testdataDir(t), "fleet.json")

	output := run(t, "graph", "--endpoint", fleet, "--output", "json")

	var g struct {
		Summary struct {
			Nodes int `json:"nodes"`
			Links int `json:"links"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(output), &g); err != nil {
		t.Fatalf("graph output is not JSON: %v\n%s", err, output)
	}
	if g.Summary.Nodes != 4 || g.Summary.Links != 4 {
		t.Errorf("graph summary = %+v, want 4 nodes and 4 links", g.Summary)
	}
}
