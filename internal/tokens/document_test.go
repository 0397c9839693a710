package tokens

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	bioerrors "github.com/madergk/biods/pkg/errors"
)

const sampleDocument = `{
  "$schema": "https://example.com/tokens.schema.json",
  "color": {
    "primary": {
      "500": { "value": "#2196f3", "comment": "Brand primary" },
      "700": { "value": "#1976d2" }
    },
    "text": { "default": { "value": "{color.primary.700}" } }
  },
  "spacing": {
    "0": { "value": 0 },
    "md": { "value": "16px" }
  }
}`

func TestParsePreservesMemberOrder(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	var keys []string
	for _, m := range doc.Root.Members {
		keys = append(keys, m.Key)
	}
	require.Equal(t, []string{"$schema", "color", "spacing"}, keys)
	require.Equal(t, []string{"color", "spacing"}, doc.Categories())

	primary := doc.Category("color").Get("primary")
	require.Equal(t, "500", primary.Members[0].Key)
	require.Equal(t, "700", primary.Members[1].Key)
}

func TestParseKeepsRepeatedKeys(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"color": {"red": {"value": "#f00"}, "red": {"value": "#e00"}}}`))
	require.NoError(t, err)

	color := doc.Category("color")
	require.Len(t, color.Members, 2)
	require.Equal(t, "#e00", color.Get("red").Get("value").Text(), "last member wins on lookup")
}

func TestParseScalars(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"a": {"s": "x\"y", "n": -1.5e3, "b": false, "z": null, "arr": [1, "two"]}}`))
	require.NoError(t, err)

	a := doc.Category("a")
	require.Equal(t, KindString, a.Get("s").Kind)
	require.Equal(t, `x"y`, a.Get("s").Text())
	require.Equal(t, KindNumber, a.Get("n").Kind)
	require.Equal(t, "-1.5e3", a.Get("n").Text())
	require.Equal(t, KindBool, a.Get("b").Kind)
	require.Equal(t, KindNull, a.Get("z").Kind)
	require.Equal(t, KindArray, a.Get("arr").Kind)
	require.Len(t, a.Get("arr").Items, 2)
	require.Equal(t, `[1,"two"]`, a.Get("arr").Text())
}

func TestParseKeepsEscapedKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"escaped backslash", `{"color": {"trail\\": {"value": "x"}}}`},
		{"escaped backslash before u", `{"color": {"a\\u0041": {"value": "x"}}}`},
		{"unicode escape", `{"color": {"a\u0041": {"value": "x"}}}`},
		{"quote", `{"color": {"say \"hi\"": {"value": "x"}}}`},
		{"distinct after one unescape", `{"color": {"a\\u0041": {"value": "x"}, "aA": {"value": "y"}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var decoded map[string]map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tt.src), &decoded))
			want := make([]string, 0, len(decoded["color"]))
			for key := range decoded["color"] {
				want = append(want, key)
			}

			doc, err := Parse([]byte(tt.src))
			require.NoError(t, err)

			var got []string
			for _, m := range doc.Category("color").Members {
				got = append(got, m.Key)
			}
			require.ElementsMatch(t, want, got)
		})
	}
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("{\n  \"color\": {\n    \"red\": ,\n  }\n}"))
	require.Error(t, err)

	var parseErr *bioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Line)
}

func TestParseRejectsNonObjectDocument(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`[{"value": 1}]`))
	require.ErrorContains(t, err, "must be a JSON object, got array")
}

func TestLoadReportsMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.json")
	_, err := Load(path)

	var parseErr *bioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSetsPathOnSyntaxErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"color": }`), 0o644))

	_, err := Load(path)
	var parseErr *bioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.Equal(t, 1, parseErr.Line)
}

func TestRepeatedTopLevelKeys(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(`{"color": {}, "spacing": {}, "color": {"a": {"value": 1}}}`))
	require.NoError(t, err)
	require.Equal(t, []string{"color"}, doc.RepeatedKeys())
	require.Equal(t, []string{"color", "spacing"}, doc.Categories())
	require.True(t, doc.Category("color").Has("a"))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	var names []string
	for _, tok := range Flatten(doc) {
		names = append(names, tok.Name())
	}
	want := []string{
		"color.primary.500",
		"color.primary.700",
		"color.text.default",
		"spacing.0",
		"spacing.md",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("flattened names mismatch (-want +got):\n%s", diff)
	}

	first := Flatten(doc)[0]
	require.Equal(t, "Brand primary", first.Attribute("comment").Text())
	require.Equal(t, []string{"color", "primary", "500"}, first.FullPath())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	value, ok := Lookup(doc, "color.primary.500")
	require.True(t, ok)
	require.Equal(t, "#2196f3", value.Text())

	group, ok := Lookup(doc, "color.primary")
	require.True(t, ok)
	require.True(t, group.IsObject())

	_, ok = Lookup(doc, "color.secondary.500")
	require.False(t, ok)

	_, ok = Lookup(doc, "")
	require.False(t, ok)
}

func TestReferences(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"color.primary.700"}, References("{color.primary.700}"))
	require.Equal(t, []string{"spacing.sm", "spacing.md"}, References("{spacing.sm} { spacing.md }"))
	require.Nil(t, References("#ffffff"))

	replaced := ReplaceReferences("0 0 {shadow.blur} {color.black}", func(ref string) string {
		return "<" + ref + ">"
	})
	require.Equal(t, "0 0 <shadow.blur> <color.black>", replaced)
}
