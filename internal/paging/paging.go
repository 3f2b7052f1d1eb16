// Package paging slices a list into fixed-size pages.
package paging

import "fmt"

// PageSize is the number of cards shown per page.
const PageSize = 9

// Paginator tracks the current page over a list of a given length.
// Current starts at 1 and only moves through Next and Prev; changing the
// length does not clamp it, so a shrinking list can leave Current past
// Total until the caller calls Reset.
type Paginator struct {
	current int
	length  int
	size    int
}

// New returns a paginator on page 1 with the standard page size.
func New(length int) Paginator {
	return NewSized(length, PageSize)
}

// NewSized returns a paginator on page 1 with a custom page size.
func NewSized(length, size int) Paginator {
	if size <= 0 {
		size = PageSize
	}
	if length < 0 {
		length = 0
	}
	return Paginator{current: 1, length: length, size: size}
}

// Current returns the 1-based current page.
func (p Paginator) Current() int {
	return p.current
}

// Size returns the page size.
func (p Paginator) Size() int {
	return p.size
}

// Len returns the list length being paged.
func (p Paginator) Len() int {
	return p.length
}

// Total returns ceil(length / size); an empty list has zero pages.
func (p Paginator) Total() int {
	return (p.length + p.size - 1) / p.size
}

// SetLen updates the list length without touching the current page.
func (p *Paginator) SetLen(length int) {
	if length < 0 {
		length = 0
	}
	p.length = length
}

// Reset moves back to page 1.
func (p *Paginator) Reset() {
	p.current = 1
}

// HasNext reports whether Next would advance.
func (p Paginator) HasNext() bool {
	return p.current < p.Total()
}

// HasPrev reports whether Prev would go back.
func (p Paginator) HasPrev() bool {
	return p.current > 1
}

// Next advances one page when a later page exists. It reports whether the
// page changed.
func (p *Paginator) Next() bool {
	if !p.HasNext() {
		return false
	}
	p.current++
	return true
}

// Prev goes back one page unless already on page 1. It reports whether the
// page changed.
func (p *Paginator) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.current--
	return true
}

// Bounds returns the half-open [start, end) range of the current page,
// clipped to the list. Both are equal to length when the page is past the
// end.
func (p Paginator) Bounds() (start, end int) {
	start = (p.current - 1) * p.size
	if start > p.length {
		start = p.length
	}
	end = start + p.size
	if end > p.length {
		end = p.length
	}
	return start, end
}

// Slice returns the current page of items.
func Slice[T any](p Paginator, items []T) []T {
	q := p
	q.SetLen(len(items))
	start, end := q.Bounds()
	return items[start:end]
}

// Label renders the page indicator, e.g. "Page 1 of 3". No special case is
// made for an empty list, which reads "Page 1 of 0".
func (p Paginator) Label() string {
	return fmt.Sprintf("Page %d of %d", p.current, p.Total())
}
