package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const validTokens = `{
  "color": {
    "primary": { "500": { "value": "#2196f3" } },
    "brand": { "value": "{color.primary.500}" }
  },
  "spacing": { "base": { "value": "8px" }, "lg": { "value": "24px" } },
  "typography": { "font": { "size": { "value": "16px" } } },
  "border": { "radius": { "value": "4px" } },
  "shadow": { "sm": { "value": "0 1px 2px #0003" } },
  "transition": { "fast": { "value": "150ms" } },
  "zIndex": { "modal": { "value": 1050 } }
}`

func writeProject(t *testing.T, tokens string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tokens"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokens", "tokens.json"), []byte(tokens), 0o644))
	return dir
}

// execute runs the root command and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
