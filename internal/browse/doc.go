// Package browse implements the state of the catalog browsing page.
//
// The page derives everything from three inputs: the catalog, the search
// text and the current page number.
//
//	catalog ──filter(query)──> filtered list ──paginate(page)──> current slice
//
// Filtering is a pure function of the catalog and the query (memoized per
// catalog). Pagination uses a fixed page size of nine. Card activation and
// the title control delegate to an injected nav.Navigator so the page can be
// exercised without a router.
//
// Page is not safe for concurrent use; it lives on the Bubble Tea update
// loop.
package browse
