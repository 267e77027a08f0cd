package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := NewRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func writeConfig(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "viewprofile 1.2.3")
	assert.Contains(t, out, "commit: abc")
}

func TestValidateDefaults(t *testing.T) {
	out, err := execute(t, context.Background(), "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 9 profiles, 9 handler types, 6 views")
}

func TestValidateReportsTableIssues(t *testing.T) {
	path := writeConfig(t, `
[[alternate]]
handler = "orthoview"
mode = "nav"
event = "LeftMouseDown"
target_mode = "zoom"
target_event = "LeftMouseDown"
`)
	out, err := execute(t, context.Background(), "validate", "--config", path)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "table: orthoview")
}

func TestValidateReportsSettings(t *testing.T) {
	path := writeConfig(t, `
[session]
view = "bogus"
`)
	out, err := execute(t, context.Background(), "validate", "-c", path)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "setting: session.view")
}

func TestValidateLogLevelFlag(t *testing.T) {
	out, err := execute(t, context.Background(), "validate", "--log-level", "loud")
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "setting: log.level")
}

func TestValidateMissingConfig(t *testing.T) {
	_, err := execute(t, context.Background(), "validate", "--config", filepath.Join(t.TempDir(), "none.toml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errInvalid)
}

func TestTablesFormats(t *testing.T) {
	ctx := context.Background()

	out, err := execute(t, ctx, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "orthoview")
	assert.Contains(t, out, "[[handler]]")

	out, err = execute(t, ctx, "tables", "--format", "json")
	require.NoError(t, err)
	require.True(t, gjson.Valid(out))
	assert.Equal(t, "nav", gjson.Get(out, `handlers.#(name=="orthoedit").default`).String())

	out, err = execute(t, ctx, "tables", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: orthoview")

	_, err = execute(t, ctx, "tables", "--format", "xml")
	assert.Error(t, err)
}

func TestTablesQuery(t *testing.T) {
	ctx := context.Background()

	out, err := execute(t, ctx, "tables", "--query", `handlers.#(name=="orthocrop").default`)
	require.NoError(t, err)
	assert.Equal(t, "crop\n", out)

	out, err = execute(t, ctx, "tables", "-q", `profiles.#(view=="scene3d").handler`)
	require.NoError(t, err)
	assert.Equal(t, "scene3dview\n", out)

	_, err = execute(t, ctx, "tables", "--query", "nothing.here")
	assert.Error(t, err)
}

func TestTablesWithOverrides(t *testing.T) {
	path := writeConfig(t, `
[[fallback]]
handler = "orthoview"
mode = "pick"
event = "LeftMouseDown"
remove = true
`)
	out, err := execute(t, context.Background(), "tables", "-c", path, "-q",
		`handlers.#(name=="orthoview").fallbacks.#.from`)
	require.NoError(t, err)
	assert.NotContains(t, out, "pick/LeftMouseDown")
	assert.Contains(t, out, "pick/LeftMouseDrag")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, context.Background(), "config", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "debug")
	assert.Contains(t, out, "ortho")
}

func TestConfigPath(t *testing.T) {
	out, err := execute(t, context.Background(), "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("viewprofile", "config.toml"))
}

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	oldScreen, oldTerminal := newScreen, isTerminal
	t.Cleanup(func() { newScreen, isTerminal = oldScreen, oldTerminal })

	isTerminal = func() bool { return tty }
	newScreen = func() (tcell.Screen, error) {
		return tcell.NewSimulationScreen("UTF-8"), nil
	}
}

func TestRunNeedsTerminal(t *testing.T) {
	stubTerminal(t, false)
	_, err := execute(t, context.Background(), "run")
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestRunStopsOnCancel(t *testing.T) {
	stubTerminal(t, true)

	for _, args := range [][]string{
		{"run"},
		{"run", "--profile", "edit"},
		{"run", "--view", "scene3d"},
		{"run", "--view", "timeseries", "--log-file", filepath.Join(t.TempDir(), "run.log")},
	} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := execute(t, ctx, args...)
		assert.NoError(t, err, "args %v", args)
	}
}

func TestRunUnknownProfile(t *testing.T) {
	stubTerminal(t, true)
	_, err := execute(t, context.Background(), "run", "--profile", "paint")
	assert.Error(t, err)
}
