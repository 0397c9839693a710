package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildThenVerify(t *testing.T) {
	dir := writeProject(t, validTokens)

	out, err := execute(t, "verify", "--dir", dir)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, out, "✖ missing")

	out, err = execute(t, "build", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "✅ Built 3 file(s), 3 written")
	for _, name := range []string{"variables.css", "tokens.ts", "tokens.json"} {
		require.FileExists(t, filepath.Join(dir, "src", "tokens", "generated", name))
	}

	out, err = execute(t, "verify", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "✅ Generated files are up to date (3 checked)")

	out, err = execute(t, "build", "--check", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "up to date")
}

func TestVerifyReportsDrift(t *testing.T) {
	dir := writeProject(t, validTokens)

	_, err := execute(t, "build", "--dir", dir)
	require.NoError(t, err)

	changed := strings.Replace(validTokens, "#2196f3", "#1976d2", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokens", "tokens.json"), []byte(changed), 0o644))

	out, err := execute(t, "verify", "--dir", dir)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, out, "✖ drifted")
	require.Contains(t, out, "#1976d2")
	require.Contains(t, out, "❌ 2 generated file(s) out of date")
}

func TestBuildRefusesInvalidTokens(t *testing.T) {
	dir := writeProject(t, `{"color": {"primary": {"value": "#000"}}}`)

	out, err := execute(t, "build", "--dir", dir)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, out, `Required category "spacing" is missing`)
	require.Contains(t, out, "❌ Validation failed")
	require.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestBuildRejectsCheckWithWatch(t *testing.T) {
	_, err := execute(t, "build", "--check", "--watch", "--dir", t.TempDir())
	require.EqualError(t, err, "--check and --watch cannot be combined")
}

func TestGetCommand(t *testing.T) {
	dir := writeProject(t, validTokens)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "token value", args: []string{"get", "color.primary.500"}, want: "#2196f3\n"},
		{name: "alias unresolved", args: []string{"get", "color.brand"}, want: "{color.primary.500}\n"},
		{name: "alias resolved", args: []string{"get", "color.brand", "--resolve"}, want: "#2196f3\n"},
		{name: "number", args: []string{"get", "zIndex.modal"}, want: "1050\n"},
		{name: "group", args: []string{"get", "spacing"}, want: "{\n  \"base\": {\n    \"value\": \"8px\"\n  },\n  \"lg\": {\n    \"value\": \"24px\"\n  }\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(tt.args, "--dir", dir)...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestGetCommandUnknownPath(t *testing.T) {
	dir := writeProject(t, validTokens)

	_, err := execute(t, "get", "color.missing", "--dir", dir)
	require.EqualError(t, err, `no token or group at "color.missing"`)
}

func TestSyncOutsideRepository(t *testing.T) {
	dir := writeProject(t, validTokens)

	out, err := execute(t, "sync", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "not a git repository")
	require.Contains(t, out, "✅ Built 3 file(s), 3 written")
}
