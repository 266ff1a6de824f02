package wardrobe

import "github.com/maya-reeves/wardrobe-api/models"

// DefaultPageSize is the number of items shown per category page in the
// wardrobe view.
const DefaultPageSize = 3

// displayOrder lists the categories rendered by the wardrobe view, in
// order. Jackets/Coats is a valid main category but is not part of this
// view.
var displayOrder = []string{
	CategoryTops,
	CategoryBottoms,
	CategoryDresses,
	CategoryShoes,
	CategoryAccessories,
}

// DisplayCategories returns the category display order of the wardrobe
// view.
func DisplayCategories() []string {
	out := make([]string, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// GroupItems groups a flat item list by main category, keeping each
// item's original relative order. Categories outside the display order
// are dropped; empty categories are absent from the result.
func GroupItems(items []models.Item) map[string][]models.Item {
	displayed := make(map[string]bool, len(displayOrder))
	for _, category := range displayOrder {
		displayed[category] = true
	}

	grouped := make(map[string][]models.Item)
	for _, item := range items {
		if !displayed[item.MainCategory] {
			continue
		}
		grouped[item.MainCategory] = append(grouped[item.MainCategory], item)
	}
	return grouped
}

// Paginator tracks an independent zero-based page cursor per category.
// Cursors only move via Next/Prev and never leave the valid page range.
type Paginator struct {
	PageSize int
	cursors  map[string]int
}

// NewPaginator creates a paginator with the given page size; sizes below
// one fall back to DefaultPageSize.
func NewPaginator(pageSize int) *Paginator {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Paginator{
		PageSize: pageSize,
		cursors:  make(map[string]int),
	}
}

// Cursor returns the current page cursor for a category.
func (p *Paginator) Cursor(category string) int {
	return p.cursors[category]
}

// Page returns the slice of items visible on the category's current page.
func (p *Paginator) Page(category string, items []models.Item) []models.Item {
	start := p.cursors[category] * p.PageSize
	if start >= len(items) {
		return nil
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// HasNext reports whether a later page exists for the category.
func (p *Paginator) HasNext(category string, itemCount int) bool {
	return (p.cursors[category]+1)*p.PageSize < itemCount
}

// HasPrev reports whether an earlier page exists for the category.
func (p *Paginator) HasPrev(category string) bool {
	return p.cursors[category] > 0
}

// Next advances the category's cursor by one page if a later page exists.
func (p *Paginator) Next(category string, itemCount int) {
	if p.HasNext(category, itemCount) {
		p.cursors[category]++
	}
}

// Prev moves the category's cursor back one page, never below zero.
func (p *Paginator) Prev(category string) {
	if p.cursors[category] > 0 {
		p.cursors[category]--
	}
}

// PageCount returns the number of pages needed for itemCount items.
func (p *Paginator) PageCount(itemCount int) int {
	if itemCount == 0 {
		return 0
	}
	return (itemCount + p.PageSize - 1) / p.PageSize
}
