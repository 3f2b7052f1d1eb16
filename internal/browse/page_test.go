package browse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/glassy/internal/catalog"
	"github.com/five82/glassy/internal/nav"
)

type recorder struct {
	paths []string
}

func (r *recorder) Navigate(path string) {
	r.paths = append(r.paths, path)
}

func newPage(t *testing.T, opts Options) (*Page, *recorder) {
	t.Helper()
	rec := &recorder{}
	return New(catalog.Default(), rec, opts), rec
}

func TestPage_InitialState(t *testing.T) {
	p, rec := newPage(t, Options{})

	assert.Equal(t, 21, p.Len())
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 3, p.TotalPages())
	assert.Equal(t, "Page 1 of 3", p.Label())
	assert.True(t, p.PrevDisabled())
	assert.False(t, p.NextDisabled())
	assert.Len(t, p.CurrentSlice(), 9)
	assert.Empty(t, rec.paths)
}

func TestPage_WalksAllPages(t *testing.T) {
	p, _ := newPage(t, Options{})

	require.True(t, p.NextPage())
	assert.Equal(t, "Page 2 of 3", p.Label())
	assert.Len(t, p.CurrentSlice(), 9)
	assert.Equal(t, "Popups", p.CurrentSlice()[0].Title)

	require.True(t, p.NextPage())
	assert.Equal(t, "Page 3 of 3", p.Label())
	assert.Len(t, p.CurrentSlice(), 3)
	assert.True(t, p.NextDisabled())
	assert.False(t, p.NextPage())
	assert.Equal(t, 3, p.CurrentPage())

	require.True(t, p.PrevPage())
	assert.Equal(t, 2, p.CurrentPage())
}

func TestPage_PrevIsNoOpOnFirstPage(t *testing.T) {
	p, _ := newPage(t, Options{})
	assert.False(t, p.PrevPage())
	assert.Equal(t, 1, p.CurrentPage())
}

func TestPage_QueryNarrowsResults(t *testing.T) {
	p, _ := newPage(t, Options{})

	require.True(t, p.SetQuery("tool"))
	require.Equal(t, 1, p.Len())
	assert.Equal(t, "Tool Tip", p.CurrentSlice()[0].Title)
	assert.Equal(t, "Page 1 of 1", p.Label())
	assert.True(t, p.PrevDisabled())
	assert.True(t, p.NextDisabled())

	assert.False(t, p.SetQuery("tool"), "same text is not a change")
}

func TestPage_NoMatches(t *testing.T) {
	p, _ := newPage(t, Options{})

	p.SetQuery("zzz")
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.CurrentSlice())
	assert.Equal(t, "Page 1 of 0", p.Label())
	assert.True(t, p.PrevDisabled())
	assert.True(t, p.NextDisabled())
}

func TestPage_ClearingQueryRestoresCatalog(t *testing.T) {
	p, _ := newPage(t, Options{})
	p.SetQuery("cards")
	p.SetQuery("   ")
	assert.Equal(t, 21, p.Len())
}

func TestPage_FilterKeepsPageByDefault(t *testing.T) {
	p, _ := newPage(t, Options{})
	p.NextPage()
	p.NextPage()

	p.SetQuery("cards")
	assert.Equal(t, 3, p.CurrentPage())
	assert.Equal(t, 1, p.TotalPages())
	assert.Equal(t, "Page 3 of 1", p.Label())
	assert.Empty(t, p.CurrentSlice())
	assert.True(t, p.NextDisabled())

	require.True(t, p.PrevPage())
	require.True(t, p.PrevPage())
	assert.Len(t, p.CurrentSlice(), 2)
}

func TestPage_FilterResetsPageWhenConfigured(t *testing.T) {
	p, _ := newPage(t, Options{ResetPageOnFilter: true})
	p.NextPage()
	p.NextPage()

	p.SetQuery("cards")
	assert.Equal(t, "Page 1 of 1", p.Label())
	assert.Len(t, p.CurrentSlice(), 2)
}

func TestPage_ActivateNavigatesOnce(t *testing.T) {
	p, rec := newPage(t, Options{})
	p.SetQuery("tool")
	before := p.Label()

	require.True(t, p.Activate(0))
	assert.Equal(t, []string{"/tooltip-details"}, rec.paths)
	assert.Equal(t, before, p.Label())
	assert.Equal(t, "tool", p.Query())
	assert.Equal(t, 1, p.Len())
}

func TestPage_ActivateUsesCurrentPage(t *testing.T) {
	p, rec := newPage(t, Options{})
	p.NextPage()
	p.NextPage()

	require.True(t, p.Activate(2))
	assert.Equal(t, []string{"/generator"}, rec.paths)
}

func TestPage_ActivateOutOfRange(t *testing.T) {
	p, rec := newPage(t, Options{})
	p.SetQuery("zzz")

	for _, i := range []int{-1, 0, 9} {
		assert.False(t, p.Activate(i), fmt.Sprintf("slot %d", i))
	}
	assert.Empty(t, rec.paths)
}

func TestPage_NavigateHome(t *testing.T) {
	p, rec := newPage(t, Options{})
	p.NavigateHome()
	assert.Equal(t, []string{nav.HomePath}, rec.paths)
}

func TestPage_ReplaceCatalogKeepsQueryAndPage(t *testing.T) {
	p, _ := newPage(t, Options{})
	p.NextPage()
	p.SetQuery("a")

	next := catalog.New("Small", []catalog.Descriptor{
		{Title: "Alpha", Route: "/alpha"},
		{Title: "Beta", Route: "/beta"},
		{Title: "Gamma", Route: "/gamma"},
	})
	p.ReplaceCatalog(next)

	assert.Equal(t, "Small", p.Catalog().Name())
	assert.Equal(t, "a", p.Query())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, p.CurrentPage())

	p.ReplaceCatalog(nil)
	assert.Equal(t, "Small", p.Catalog().Name())
}

func TestPage_Suggestion(t *testing.T) {
	p, _ := newPage(t, Options{})

	_, ok := p.Suggestion()
	assert.False(t, ok, "no suggestion while results exist")

	p.SetQuery("buton")
	got, ok := p.Suggestion()
	require.True(t, ok)
	assert.Equal(t, "Buttons", got)
}

func TestNew_NilArguments(t *testing.T) {
	p := New(nil, nil, Options{})
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "Page 1 of 0", p.Label())
	assert.False(t, p.Activate(0))
	p.NavigateHome()
}
