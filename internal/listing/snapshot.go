package listing

import (
	"errors"

	"storefront-service/internal/models"
)

// Snapshot is the persisted form of a View. Derived state is rebuilt on restore.
type Snapshot struct {
	Status   models.ViewStatus `json:"status"`
	Locale   models.Locale     `json:"locale"`
	Query    string            `json:"query"`
	Category string            `json:"category"`
	Sort     models.SortKey    `json:"sort"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
	Products []models.Product  `json:"products,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func (v View) Snapshot() Snapshot {
	s := Snapshot{
		Status:   v.Status,
		Locale:   v.Locale,
		Query:    v.Query,
		Category: v.Category,
		Sort:     v.Sort,
		Page:     v.Page,
		PageSize: v.PageSize,
		Products: v.All,
	}
	if v.Err != nil {
		s.Error = v.Err.Error()
	}
	return s
}

// Restore rebuilds the View a snapshot was taken from
func (s Snapshot) Restore() View {
	v := NewView(s.Locale, s.PageSize)
	if s.Status != "" {
		v.Status = s.Status
	}
	v.Query = s.Query
	v.Category = s.Category
	v.Sort = s.Sort
	if !v.Sort.IsValid() {
		v.Sort = models.SortNone
	}
	v.Page = s.Page

	switch v.Status {
	case models.StatusReady:
		v.All = slicesClone(s.Products)
		v.Categories = ExtractCategories(v.All, v.Locale)
		return v.recompute()
	case models.StatusReadyEmpty:
		v.All = []models.Product{}
		v.Results = []models.Product{}
		v.Pages = [][]models.Product{}
		v.Categories = ExtractCategories(nil, v.Locale)
	case models.StatusError:
		v.Err = errors.New(s.Error)
	}
	return v
}
