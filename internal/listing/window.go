package listing

import "storefront-service/internal/models"

type PageItem = models.PageItem

// windowDelta is how many pages are shown on each side of the current one
const windowDelta = 2

// PageWindow builds the pagination control for a zero-based current page.
// Page numbers in the result are 1-based. The first and last pages are always
// present; a gap of a single page is filled in, wider gaps become an ellipsis.
func PageWindow(current, total int) []PageItem {
	if total <= 1 {
		return nil
	}
	current = max(0, min(current, total-1)) + 1

	numbers := []int{1}
	for n := max(2, current-windowDelta); n <= min(total-1, current+windowDelta); n++ {
		numbers = append(numbers, n)
	}
	numbers = append(numbers, total)

	items := make([]PageItem, 0, len(numbers)+2)
	last := 0
	for _, n := range numbers {
		switch gap := n - last; {
		case gap == 2:
			items = append(items, pageItem(n-1, current))
		case gap > 2:
			items = append(items, PageItem{Kind: models.PageItemEllipsis})
		}
		items = append(items, pageItem(n, current))
		last = n
	}
	return items
}

func pageItem(n, current int) PageItem {
	return PageItem{Kind: models.PageItemPage, Number: n, Current: n == current}
}
