package browse

import (
	"github.com/five82/glassy/internal/catalog"
	"github.com/five82/glassy/internal/filter"
	"github.com/five82/glassy/internal/nav"
	"github.com/five82/glassy/internal/paging"
)

// Options tune page behaviour.
type Options struct {
	// ResetPageOnFilter returns to page 1 whenever the search text changes.
	// Off by default: the page keeps its position and may point past the
	// last page of a narrower result.
	ResetPageOnFilter bool

	// CacheSize bounds the filter memo; zero uses filter.DefaultCacheSize.
	CacheSize int
}

// Page holds the state of one catalog browsing page.
type Page struct {
	cache     *filter.Cache
	navigator nav.Navigator
	opts      Options

	query    string
	filtered []catalog.Descriptor
	pager    paging.Paginator
}

// New builds a page over cat. Navigation requests go to navigator.
func New(cat *catalog.Catalog, navigator nav.Navigator, opts Options) *Page {
	if cat == nil {
		cat = catalog.New("", nil)
	}
	if navigator == nil {
		navigator = nav.NavigatorFunc(func(string) {})
	}
	p := &Page{
		cache:     filter.NewCache(cat, opts.CacheSize),
		navigator: navigator,
		opts:      opts,
	}
	p.filtered = p.cache.Filter("")
	p.pager = paging.New(len(p.filtered))
	return p
}

// Catalog returns the catalog being browsed.
func (p *Page) Catalog() *catalog.Catalog {
	return p.cache.Catalog()
}

// Query returns the raw search text.
func (p *Page) Query() string {
	return p.query
}

// SetQuery updates the search text and recomputes the filtered list. It
// reports whether the text changed.
func (p *Page) SetQuery(query string) bool {
	if query == p.query {
		return false
	}
	p.query = query
	p.refilter()
	if p.opts.ResetPageOnFilter {
		p.pager.Reset()
	}
	return true
}

// ReplaceCatalog swaps in a reloaded catalog, keeping the query and the
// current page.
func (p *Page) ReplaceCatalog(cat *catalog.Catalog) {
	if cat == nil {
		return
	}
	p.cache = filter.NewCache(cat, p.opts.CacheSize)
	p.refilter()
}

func (p *Page) refilter() {
	p.filtered = p.cache.Filter(p.query)
	p.pager.SetLen(len(p.filtered))
}

// Filtered returns a copy of the filtered list.
func (p *Page) Filtered() []catalog.Descriptor {
	out := make([]catalog.Descriptor, len(p.filtered))
	copy(out, p.filtered)
	return out
}

// Len returns the size of the filtered list.
func (p *Page) Len() int {
	return len(p.filtered)
}

// CurrentPage returns the 1-based page number.
func (p *Page) CurrentPage() int {
	return p.pager.Current()
}

// TotalPages returns ceil(Len / PageSize).
func (p *Page) TotalPages() int {
	return p.pager.Total()
}

// Label returns "Page {current} of {total}".
func (p *Page) Label() string {
	return p.pager.Label()
}

// PrevDisabled mirrors the Previous control's disabled state.
func (p *Page) PrevDisabled() bool {
	return !p.pager.HasPrev()
}

// NextDisabled mirrors the Next control's disabled state.
func (p *Page) NextDisabled() bool {
	return !p.pager.HasNext()
}

// NextPage advances one page if possible.
func (p *Page) NextPage() bool {
	return p.pager.Next()
}

// PrevPage goes back one page if possible.
func (p *Page) PrevPage() bool {
	return p.pager.Prev()
}

// CurrentSlice returns the cards on the current page.
func (p *Page) CurrentSlice() []catalog.Descriptor {
	page := paging.Slice(p.pager, p.filtered)
	out := make([]catalog.Descriptor, len(page))
	copy(out, page)
	return out
}

// Activate navigates to the route of the card at slot i on the current
// page. It makes exactly one navigation call and touches no page state.
func (p *Page) Activate(i int) bool {
	page := paging.Slice(p.pager, p.filtered)
	if i < 0 || i >= len(page) {
		return false
	}
	p.navigator.Navigate(page[i].Route)
	return true
}

// NavigateHome follows the site title control.
func (p *Page) NavigateHome() {
	p.navigator.Navigate(nav.HomePath)
}

// Suggestion offers a close title when a non-blank query matched nothing.
func (p *Page) Suggestion() (string, bool) {
	if len(p.filtered) > 0 {
		return "", false
	}
	return p.cache.Suggest(p.query)
}
