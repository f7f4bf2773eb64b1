package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/gqlvis/internal/cli/config"
	"github.com/leapstack-labs/gqlvis/internal/cli/output"
	"github.com/leapstack-labs/gqlvis/internal/testutil"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Chdir(t.TempDir())

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"ui", "outline", "graph", "browse", "version", "completion"} {
		assert.Contains(t, names, want)
	}

	for _, flag := range []string{"config", "endpoint", "verbose", "output"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRoot_EndpointFlag(t *testing.T) {
	path := testutil.WriteIntrospectionFile(t, t.TempDir(), testutil.FleetSchema()...)

	out, _, err := runRoot(t, "outline", "--endpoint", path, "-o", "json")
	require.NoError(t, err)

	var listing output.ListingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, path, listing.Endpoint)
	assert.Len(t, listing.Types, 4)
}

func TestRoot_EnvEndpoint(t *testing.T) {
	path := testutil.WriteIntrospectionFile(t, t.TempDir(), testutil.FleetSchema()...)
	t.Setenv("GQLVIS_ENDPOINT", path)
	t.Setenv("GQLVIS_OUTPUT", "markdown")

	out, _, err := runRoot(t, "outline", "Port")
	require.NoError(t, err)
	assert.Contains(t, out, "# Port (root)")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	path := testutil.WriteIntrospectionFile(t, t.TempDir(), testutil.FleetSchema()...)

	out, errOut, err := runRoot(t, "graph", "--endpoint", path, "-o", "json", "-v")
	require.NoError(t, err)

	assert.True(t, json.Valid([]byte(out)), "stdout stays machine readable")
	assert.Contains(t, errOut, "schema loaded")
}

func TestRoot_BadOutputMode(t *testing.T) {
	_, _, err := runRoot(t, "graph", "-o", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRoot_Completion(t *testing.T) {
	out, _, err := runRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "gqlvis")

	_, _, err = runRoot(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	out, _, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gqlvis v"+Version)
}

func TestGetConfigAndRenderer_Fallbacks(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, config.Defaults(), GetConfig(ctx))
	assert.NotNil(t, GetRenderer(ctx))

	cfg := config.Defaults()
	cfg.Endpoint = "x"
	ctx = context.WithValue(ctx, configKey{}, cfg)
	assert.Same(t, cfg, GetConfig(ctx))
}
