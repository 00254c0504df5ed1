package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Timestamp is a creation time sent by the catalog backend.
// The backend is not consistent about the layout, so both RFC3339 and plain dates are accepted.
// The zero value means the backend did not send one.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses any of the layouts the catalog backend is known to send
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Timestamp{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unsupported timestamp format: %q", value)
}

// MustTimestamp is ParseTimestamp for literals known to be valid
func MustTimestamp(value string) Timestamp {
	ts, err := ParseTimestamp(value)
	if err != nil {
		panic(err)
	}
	return ts
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// A malformed date is treated as missing rather than failing the whole catalog
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		*t = Timestamp{}
		return nil
	}
	*t = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// Product is a catalog record as served by the catalog backend.
// Both language variants of every text field live side by side on one record.
type Product struct {
	ID            string    `json:"id"`
	NameEN        string    `json:"name_en"`
	NameAR        string    `json:"name_ar"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAR string    `json:"description_ar"`
	CategoryEN    string    `json:"category_en"`
	CategoryAR    string    `json:"category_ar"`
	ImageURL      string    `json:"image_url,omitempty"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     Timestamp `json:"created_at"`
}

// ImagePath returns the image reference of the product, preferring image_url
func (p Product) ImagePath() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return p.Image
}

// Category is a category record as served by the catalog backend
type Category struct {
	ID                string   `json:"id"`
	NameEN            string   `json:"name_en"`
	NameAR            string   `json:"name_ar"`
	HomeDescriptionEN string   `json:"home_description_en"`
	HomeDescriptionAR string   `json:"home_description_ar"`
	SellPointsEN      []string `json:"sell_points_en,omitempty"`
	SellPointsAR      []string `json:"sell_points_ar,omitempty"`
	ImageURL          string   `json:"image_url,omitempty"`
	Priority          int      `json:"priority"`
}
