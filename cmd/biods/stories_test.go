package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/madergk/biods/internal/preview"
)

func TestStoriesPrintsCatalogWhenRedirected(t *testing.T) {
	called := false
	original := storiesTUIRunner
	t.Cleanup(func() { storiesTUIRunner = original })
	storiesTUIRunner = func(preview.Theme) error {
		called = true
		return nil
	}

	dir := writeProject(t, validTokens)
	out, err := execute(t, "stories", "--dir", dir)
	require.NoError(t, err)
	require.False(t, called)

	for _, s := range preview.Stories() {
		require.Contains(t, out, s.Title())
	}
}

func TestStoriesFallsBackToDefaultTheme(t *testing.T) {
	out, err := execute(t, "stories", "--plain", "--dir", t.TempDir())
	require.NoError(t, err)
	require.Contains(t, out, "Button / Variants")
	require.Contains(t, out, "Pagination / Middle")
}
