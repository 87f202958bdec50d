// Package pagination slices ordered listings into fixed-size, 1-based pages.
package pagination

import (
	"strconv"
	"strings"
)

// PageSize is the number of posts on every listing page.
const PageSize = 10

// Page describes one page of a listing of Count items.
type Page struct {
	Number   int
	NumPages int
	Count    int64
	Size     int
}

// New resolves a raw page number against a collection of count items.
// Non-numeric input selects the first page; out-of-range numbers are clamped.
// An empty collection still has one (empty) page.
func New(raw string, count int64, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	if count < 0 {
		count = 0
	}

	numPages := int((count + int64(size) - 1) / int64(size))
	if numPages < 1 {
		numPages = 1
	}

	number, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil:
		number = 1
	case number < 1:
		number = 1
	case number > numPages:
		number = numPages
	}

	return Page{Number: number, NumPages: numPages, Count: count, Size: size}
}

// Offset is the number of items before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit is the maximum number of items on this page.
func (p Page) Limit() int {
	return p.Size
}

// Len is the number of items actually on this page.
func (p Page) Len() int {
	rest := p.Count - int64(p.Offset())
	switch {
	case rest <= 0:
		return 0
	case rest > int64(p.Size):
		return p.Size
	default:
		return int(rest)
	}
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) HasPrevious() bool {
	return p.Number > 1
}

func (p Page) HasOtherPages() bool {
	return p.HasNext() || p.HasPrevious()
}

func (p Page) NextNumber() int {
	if !p.HasNext() {
		return p.Number
	}
	return p.Number + 1
}

func (p Page) PreviousNumber() int {
	if !p.HasPrevious() {
		return p.Number
	}
	return p.Number - 1
}

// StartIndex is the 1-based index of the first item on the page, 0 when empty.
func (p Page) StartIndex() int {
	if p.Len() == 0 {
		return 0
	}
	return p.Offset() + 1
}

// Numbers lists every page number, for rendering page links.
func (p Page) Numbers() []int {
	numbers := make([]int, p.NumPages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}
