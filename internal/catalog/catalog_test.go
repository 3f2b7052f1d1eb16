package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasTwentyOneEntriesInOrder(t *testing.T) {
	cat := Default()

	require.Equal(t, 21, cat.Len())
	assert.Equal(t, "GlassyUI", cat.Name())
	assert.Equal(t, "embedded", cat.Source())

	first := cat.At(0)
	assert.Equal(t, "Toast", first.Title)
	assert.Equal(t, "/toast-page/", first.Route)
	assert.Equal(t, "message-square", first.Icon)

	last := cat.At(20)
	assert.Equal(t, "Glassmorphism Effect Generator", last.Title)
	assert.Equal(t, "/generator", last.Route)
	assert.Empty(t, last.Icon)

	assert.Equal(t, "Tool Tip", cat.At(11).Title)
	assert.Equal(t, "/tooltip-details", cat.At(11).Route)
}

func TestDefault_NoStatusBadges(t *testing.T) {
	for _, d := range Default().All() {
		assert.Empty(t, d.Status, "descriptor %q", d.Title)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	entries := []Descriptor{{Title: "A", Route: "/a"}}
	cat := New("fixture", entries)
	entries[0].Title = "changed"

	assert.Equal(t, "A", cat.At(0).Title)

	all := cat.All()
	all[0].Title = "changed again"
	assert.Equal(t, "A", cat.At(0).Title)
}

func TestNilCatalogAccessors(t *testing.T) {
	var cat *Catalog
	assert.Equal(t, 0, cat.Len())
	assert.Nil(t, cat.All())
	assert.Empty(t, cat.Name())
	assert.Empty(t, cat.Source())
}

func TestEqual(t *testing.T) {
	a := New("x", []Descriptor{{Title: "A", Route: "/a"}})
	b := New("x", []Descriptor{{Title: "A", Route: "/a"}})
	c := New("x", []Descriptor{{Title: "A", Route: "/other"}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var none *Catalog
	assert.True(t, none.Equal(nil))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cat := New("bad", []Descriptor{
		{Title: "", Route: "/x"},
		{Title: "No Route"},
		{Title: "Relative", Route: "relative"},
		{Title: "Dup", Route: "/dup"},
		{Title: "dup", Route: "/dup2"},
	})

	errs := cat.Validate()
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "title is required")
	assert.Contains(t, errs[1].Error(), "route is required")
	assert.Contains(t, errs[2].Error(), "must start with /")
	assert.Contains(t, errs[3].Error(), "duplicate title")
}

func TestLoadBytes_YAML(t *testing.T) {
	data := []byte(`
name: Fixture
components:
  - title: Buttons
    description: Buttons.
    icon: box
    route: /button-details
    status: new
`)
	cat, err := LoadBytes(data, ".yml")
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, "Fixture", cat.Name())
	assert.Equal(t, "new", cat.At(0).Status)
}

func TestLoadBytes_InvalidJSON(t *testing.T) {
	_, err := LoadBytes([]byte(`{"components": [`), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog json")
}

func TestLoadBytes_ValidationFailure(t *testing.T) {
	_, err := LoadBytes([]byte(`{"components": [{"title": "A"}]}`), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed")
	assert.Contains(t, err.Error(), "route is required")
}

func TestLoadFile_RecordsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeFile(t, path, `{"name": "One", "components": [{"title": "A", "route": "/a"}]}`)

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, cat.Source())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestLoadPattern_EmptyUsesDefault(t *testing.T) {
	cat, err := LoadPattern("  ")
	require.NoError(t, err)
	assert.Equal(t, 21, cat.Len())
}

func TestLoadPattern_MergesMatchesInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.yaml"), "components:\n  - title: B\n    route: /b\n")
	writeFile(t, filepath.Join(dir, "a.json"), `{"name": "Merged", "components": [{"title": "A", "route": "/a"}]}`)
	writeFile(t, filepath.Join(dir, "nested", "c.json"), `{"components": [{"title": "C", "route": "/c"}]}`)

	cat, err := LoadPattern(filepath.Join(dir, "**", "*.{json,yaml}"))
	require.NoError(t, err)
	require.Equal(t, 3, cat.Len())
	assert.Equal(t, "Merged", cat.Name())
	assert.Equal(t, []string{"A", "B", "C"}, titles(cat))
}

func TestLoadPattern_DuplicatesAcrossFilesFail(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{"components": [{"title": "A", "route": "/a"}]}`)
	writeFile(t, filepath.Join(dir, "b.json"), `{"components": [{"title": "a", "route": "/a2"}]}`)

	_, err := LoadPattern(filepath.Join(dir, "*.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate title")
}

func TestLoadPattern_NoMatches(t *testing.T) {
	_, err := LoadPattern(filepath.Join(t.TempDir(), "*.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog files match")
}

func TestIsPattern(t *testing.T) {
	assert.False(t, IsPattern("/etc/glassy/catalog.json"))
	assert.True(t, IsPattern("catalogs/*.json"))
	assert.True(t, IsPattern("catalogs/**/{a,b}.yaml"))
}

func titles(cat *Catalog) []string {
	out := make([]string, 0, cat.Len())
	for _, d := range cat.All() {
		out = append(out, d.Title)
	}
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
