package models

// ViewStatus is the lifecycle state of a product listing view
type ViewStatus string

const (
	StatusLoading    ViewStatus = "loading"
	StatusReady      ViewStatus = "ready"
	StatusReadyEmpty ViewStatus = "ready-empty"
	StatusError      ViewStatus = "error"
)

// CategoryOption is an entry of the category selector.
// The synthetic "all" option carries an empty Key.
type CategoryOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PageItemKind distinguishes page links from gaps in the pagination control
type PageItemKind string

const (
	PageItemPage     PageItemKind = "page"
	PageItemEllipsis PageItemKind = "ellipsis"
)

// PageItem is one cell of the pagination control. Number is 1-based and zero for ellipses.
type PageItem struct {
	Kind    PageItemKind `json:"kind"`
	Number  int          `json:"number,omitempty"`
	Current bool         `json:"current,omitempty"`
}

type SortOption struct {
	Key   SortKey `json:"key"`
	Label string  `json:"label"`
}

// ProductCard is a product projected into a single locale
type ProductCard struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   Timestamp `json:"createdAt"`
}

// CategoryCard is a category projected into a single locale
type CategoryCard struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	SellPoints  []string `json:"sellPoints,omitempty"`
	ImageURL    string   `json:"imageUrl"`
	Priority    int      `json:"priority"`
}

// ListingData is the locale-aware state of a product listing page
type ListingData struct {
	Status      ViewStatus       `json:"status"`
	Locale      Locale           `json:"locale"`
	Dir         Direction        `json:"dir"`
	Query       string           `json:"query"`
	Category    string           `json:"category"`
	Sort        SortKey          `json:"sort"`
	SortOptions []SortOption     `json:"sortOptions"`
	Categories  []CategoryOption `json:"categories"`
	Products    []ProductCard    `json:"products"`
	Message     string           `json:"message,omitempty"`
}

type PaginationInfo struct {
	Page        int        `json:"page"`
	Limit       int        `json:"limit"`
	Total       int64      `json:"total"`
	TotalPages  int        `json:"totalPages"`
	HasNext     bool       `json:"hasNext"`
	HasPrevious bool       `json:"hasPrevious"`
	Window      []PageItem `json:"window,omitempty"`
}

type ListingResponse struct {
	Success    bool            `json:"success"`
	Data       *ListingData    `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// BrowseSession is a server-held listing view addressed by ID
type BrowseSession struct {
	ID         string          `json:"id"`
	Listing    *ListingData    `json:"listing"`
	Pagination *PaginationInfo `json:"pagination"`
}

type BrowseSessionResponse struct {
	Success bool           `json:"success"`
	Data    *BrowseSession `json:"data"`
}

// BrowseAction is a user interaction applied to a browse session
type BrowseAction struct {
	Type     string `json:"type" binding:"required,oneof=search sort page locale"`
	Query    string `json:"query,omitempty"`
	Category string `json:"category,omitempty"`
	Sort     string `json:"sort,omitempty"`
	Page     int    `json:"page,omitempty"`
	Locale   string `json:"locale,omitempty"`
}

type ProductDetailResponse struct {
	Success bool         `json:"success"`
	Data    *ProductCard `json:"data"`
	Locale  Locale       `json:"locale"`
	Dir     Direction    `json:"dir"`
}

type CategoryListResponse struct {
	Success bool           `json:"success"`
	Data    []CategoryCard `json:"data"`
	Locale  Locale         `json:"locale"`
	Dir     Direction      `json:"dir"`
}

// QuoteAcknowledgement is returned by the quote request stub
type QuoteAcknowledgement struct {
	ProductID string `json:"productId"`
	Product   string `json:"product"`
	Message   string `json:"message"`
}

type QuoteResponse struct {
	Success bool                  `json:"success"`
	Data    *QuoteAcknowledgement `json:"data"`
}

// NavigationLink is a named route of the site header
type NavigationLink struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Label string `json:"label"`
}

type NavigationResponse struct {
	Success    bool             `json:"success"`
	Data       []NavigationLink `json:"data"`
	QuoteLabel string           `json:"quoteLabel"`
	Locale     Locale           `json:"locale"`
	Dir        Direction        `json:"dir"`
}

type LanguagesResponse struct {
	Success bool       `json:"success"`
	Data    []Language `json:"data"`
	Current Locale     `json:"current"`
}

type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
