package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeCombinesGroupsAndOverridesTokens(t *testing.T) {
	t.Parallel()

	base, err := Parse([]byte(`{"color": {"primary": {"500": {"value": "#2196f3"}}, "white": {"value": "#fff"}}}`))
	require.NoError(t, err)
	brand, err := Parse([]byte(`{"color": {"primary": {"700": {"value": "#1976d2"}}, "white": {"value": "#fafafa"}}, "spacing": {"md": {"value": "16px"}}}`))
	require.NoError(t, err)

	merged := Merge(base, brand)

	var names []string
	for _, tok := range Flatten(merged) {
		names = append(names, tok.Name()+"="+tok.Value.Text())
	}
	require.Equal(t, []string{
		"color.primary.500=#2196f3",
		"color.primary.700=#1976d2",
		"color.white=#fafafa",
		"spacing.md=16px",
	}, names)

	// Inputs are untouched.
	require.Len(t, base.Category("color").Get("primary").Members, 1)
	require.Equal(t, "#fff", base.Category("color").Get("white").Get("value").Text())
}

func TestMergeKeepsInFileRepeats(t *testing.T) {
	t.Parallel()

	a, err := Parse([]byte(`{"color": {"red": {"value": "#f00"}}}`))
	require.NoError(t, err)
	b, err := Parse([]byte(`{"color": {"blue": {"value": "#00f"}, "blue": {"value": "#00e"}}}`))
	require.NoError(t, err)

	color := Merge(a, b).Category("color")
	require.Len(t, color.Members, 3)
	require.Equal(t, "#00e", color.Get("blue").Get("value").Text())
}

func TestMergeSingleAndEmpty(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"color": {}}`))
	require.NoError(t, err)
	require.Same(t, doc, Merge(doc))
	require.Empty(t, Merge().Root.Members)
}

func TestLoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(first, []byte(`{"color": {"a": {"value": 1}}}`), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(`{"color": {"b": {"value": 2}}}`), 0o644))

	doc, err := LoadAll([]string{first, second})
	require.NoError(t, err)
	require.Len(t, Flatten(doc), 2)
	require.Equal(t, first+", "+second, doc.Path)

	_, err = LoadAll([]string{first, filepath.Join(dir, "missing.json")})
	require.Error(t, err)
}
