package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"rfc3339", `"2024-03-01T10:20:30Z"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"date only", `"2024-03-01"`, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"no zone", `"2024-03-01T10:20:30"`, time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
		{"garbage is missing", `"yesterday"`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.expected.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = json.Marshal(MustTimestamp("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T00:00:00Z"`, string(data))
}

func TestTimestamp_RoundTripKeepsSubSecond(t *testing.T) {
	ts := MustTimestamp("2024-03-01T10:00:00.123456789Z")

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T10:00:00.123456789Z"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, ts.Equal(decoded.Time), "got %v", decoded.Time)
}

func TestProduct_Decode(t *testing.T) {
	payload := `{"id":"p1","name_en":"Centrifuge","name_ar":"جهاز طرد","category_en":"Lab","image":"/uploads/a.png","created_at":"2024-01-05"}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(payload), &p))
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Centrifuge", p.NameEN)
	assert.Equal(t, "", p.CategoryAR)
	assert.Equal(t, "/uploads/a.png", p.ImagePath())
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProduct_ImagePathPrefersImageURL(t *testing.T) {
	p := Product{ImageURL: "/uploads/primary.png", Image: "/uploads/legacy.png"}
	assert.Equal(t, "/uploads/primary.png", p.ImagePath())
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected Locale
		ok       bool
	}{
		{"en", LocaleEnglish, true},
		{"ar", LocaleArabic, true},
		{"AR-sa", LocaleArabic, true},
		{"en_US", LocaleEnglish, true},
		{"fr", DefaultLocale, false},
		{"", DefaultLocale, false},
	}

	for _, tt := range tests {
		locale, ok := ParseLocale(tt.input)
		assert.Equal(t, tt.expected, locale, tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
	}
}

func TestLocale_Direction(t *testing.T) {
	assert.Equal(t, DirectionRTL, LocaleArabic.Direction())
	assert.Equal(t, DirectionLTR, LocaleEnglish.Direction())
	assert.Equal(t, LocaleEnglish, LocaleArabic.Other())
	assert.Equal(t, LocaleArabic, LocaleEnglish.Other())
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"":          SortNone,
		"none":      SortNone,
		"name_asc":  SortNameAsc,
		"NAME_DESC": SortNameDesc,
		"newest":    SortNewest,
		"Oldest":    SortOldest,
		"A to Z":    SortNameAsc,
		"Z to A":    SortNameDesc,
		"أ إلى ي":   SortNameAsc,
		"ي إلى أ":   SortNameDesc,
		"price":     SortNone,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, ParseSortKey(input), input)
	}
	assert.True(t, SortNewest.IsValid())
	assert.False(t, SortKey("price").IsValid())
}
