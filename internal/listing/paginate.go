package listing

import "storefront-service/internal/models"

// DefaultPageSize is the number of products shown per listing page
const DefaultPageSize = 24

// Paginate splits products into contiguous pages of size items; the last page
// holds the remainder. An empty list has no pages. A non-positive size uses DefaultPageSize.
func Paginate(products []models.Product, size int) [][]models.Product {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := make([][]models.Product, 0, PageCount(len(products), size))
	for start := 0; start < len(products); start += size {
		end := min(start+size, len(products))
		pages = append(pages, products[start:end:end])
	}
	return pages
}

// PageAt returns the page at index, or an empty page when index is out of range
func PageAt(pages [][]models.Product, index int) []models.Product {
	if index < 0 || index >= len(pages) {
		return []models.Product{}
	}
	return pages[index]
}

// PageCount returns ceil(total/size)
func PageCount(total, size int) int {
	if total <= 0 {
		return 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return (total + size - 1) / size
}
