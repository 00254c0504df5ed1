package listing

import (
	"errors"

	"storefront-service/internal/models"
)

// Action is a transition of a View. The set of actions is closed.
type Action interface {
	apply(v View) View
}

// FetchResolved delivers the product collection from the catalog
type FetchResolved struct {
	Products []models.Product
}

// FetchFailed reports that the catalog could not be loaded
type FetchFailed struct {
	Err error
}

// SearchChanged sets the free-text query and the selected category key
type SearchChanged struct {
	Query    string
	Category string
}

type SortChanged struct {
	Sort models.SortKey
}

// PageChanged selects a zero-based page
type PageChanged struct {
	Page int
}

type LocaleChanged struct {
	Locale models.Locale
}

// View is the complete state of one product listing.
// A View is a value: Apply returns the next state and leaves the receiver untouched.
// Slices held by a View are never mutated after construction.
type View struct {
	Status     models.ViewStatus
	Locale     models.Locale
	Query      string
	Category   string
	Sort       models.SortKey
	Page       int
	PageSize   int
	All        []models.Product
	Results    []models.Product
	Pages      [][]models.Product
	Categories []CategoryOption
	Err        error
}

// NewView returns a view waiting for the catalog
func NewView(locale models.Locale, pageSize int) View {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return View{
		Status:   models.StatusLoading,
		Locale:   locale,
		Category: AllCategories,
		Sort:     models.SortNone,
		PageSize: pageSize,
	}
}

// Apply returns the state after action
func (v View) Apply(action Action) View {
	if action == nil {
		return v
	}
	return action.apply(v)
}

// Current returns the displayed page, empty when the page index is out of range
func (v View) Current() []models.Product {
	return PageAt(v.Pages, v.Page)
}

// PageCount returns the number of pages of the current results
func (v View) PageCount() int {
	return len(v.Pages)
}

// Interactive reports whether search, sort and page controls are live
func (v View) Interactive() bool {
	return v.Status == models.StatusReady
}

func (a FetchResolved) apply(v View) View {
	v.Err = nil
	v.All = slicesClone(a.Products)
	v.Category = AllCategories
	v.Sort = models.SortNone
	v.Page = 0
	if len(v.All) == 0 {
		v.Status = models.StatusReadyEmpty
		v.Results = []models.Product{}
		v.Pages = [][]models.Product{}
		v.Categories = ExtractCategories(nil, v.Locale)
		return v
	}
	v.Status = models.StatusReady
	v.Categories = ExtractCategories(v.All, v.Locale)
	return v.recompute()
}

func (a FetchFailed) apply(v View) View {
	err := a.Err
	if err == nil {
		err = errors.New("catalog fetch failed")
	}
	v.Status = models.StatusError
	v.Err = err
	v.All = nil
	v.Results = nil
	v.Pages = nil
	v.Categories = nil
	v.Page = 0
	return v
}

func (a SearchChanged) apply(v View) View {
	if !v.Interactive() {
		return v
	}
	v.Query = a.Query
	v.Category = a.Category
	v.Page = 0
	return v.recompute()
}

func (a SortChanged) apply(v View) View {
	if !v.Interactive() {
		return v
	}
	v.Sort = a.Sort
	if !v.Sort.IsValid() {
		v.Sort = models.SortNone
	}
	v.Page = 0
	return v.recompute()
}

func (a PageChanged) apply(v View) View {
	if !v.Interactive() {
		return v
	}
	v.Page = a.Page
	return v
}

func (a LocaleChanged) apply(v View) View {
	v.Locale = a.Locale
	v.Category = AllCategories
	v.Page = 0
	switch v.Status {
	case models.StatusReady:
		v.Categories = ExtractCategories(v.All, v.Locale)
		return v.recompute()
	case models.StatusReadyEmpty:
		v.Categories = ExtractCategories(nil, v.Locale)
	}
	return v
}

// recompute derives Results and Pages from the full list
func (v View) recompute() View {
	v.Results = Sort(Filter(v.All, v.Query, v.Category), v.Sort, v.Locale)
	v.Pages = Paginate(v.Results, v.PageSize)
	return v
}
