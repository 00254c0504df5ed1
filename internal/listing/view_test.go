package listing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/internal/models"
)

func readyView(t *testing.T, pageSize int) View {
	t.Helper()
	v := NewView(models.LocaleEnglish, pageSize).Apply(FetchResolved{Products: scenarioProducts()})
	require.Equal(t, models.StatusReady, v.Status)
	return v
}

func TestNewView_Defaults(t *testing.T) {
	v := NewView(models.LocaleArabic, 0)
	assert.Equal(t, models.StatusLoading, v.Status)
	assert.Equal(t, DefaultPageSize, v.PageSize)
	assert.Equal(t, AllCategories, v.Category)
	assert.Equal(t, models.SortNone, v.Sort)
	assert.Equal(t, 0, v.Page)
	assert.Empty(t, v.Current())
	assert.False(t, v.Interactive())
}

func TestView_FetchResolved(t *testing.T) {
	v := readyView(t, 2)
	assert.Equal(t, []string{"1", "2", "3"}, ids(v.Results))
	assert.Equal(t, 2, v.PageCount())
	assert.Equal(t, []string{"1", "2"}, ids(v.Current()))
	assert.Len(t, v.Categories, 3)
	assert.NoError(t, v.Err)
}

func TestView_FetchResolvedEmpty(t *testing.T) {
	v := NewView(models.LocaleEnglish, 24).Apply(FetchResolved{})
	assert.Equal(t, models.StatusReadyEmpty, v.Status)
	assert.Empty(t, v.Results)
	assert.Equal(t, 0, v.PageCount())
	require.Len(t, v.Categories, 1)
	assert.Equal(t, AllCategories, v.Categories[0].Key)
}

func TestView_FetchFailed(t *testing.T) {
	fetchErr := errors.New("connection refused")
	v := NewView(models.LocaleEnglish, 24).Apply(FetchFailed{Err: fetchErr})
	assert.Equal(t, models.StatusError, v.Status)
	assert.ErrorIs(t, v.Err, fetchErr)
	assert.Nil(t, v.Categories)
	assert.Empty(t, v.Current())

	v = NewView(models.LocaleEnglish, 24).Apply(FetchFailed{})
	assert.Error(t, v.Err)
}

func TestView_ControlsInertOutsideReady(t *testing.T) {
	for _, start := range []View{
		NewView(models.LocaleEnglish, 24),
		NewView(models.LocaleEnglish, 24).Apply(FetchFailed{Err: errors.New("boom")}),
		NewView(models.LocaleEnglish, 24).Apply(FetchResolved{}),
	} {
		after := start.
			Apply(SearchChanged{Query: "pip", Category: "Diagnostics"}).
			Apply(SortChanged{Sort: models.SortNameDesc}).
			Apply(PageChanged{Page: 3})
		assert.Equal(t, start.Status, after.Status)
		assert.Equal(t, "", after.Query)
		assert.Equal(t, AllCategories, after.Category)
		assert.Equal(t, models.SortNone, after.Sort)
		assert.Equal(t, 0, after.Page)
	}
}

func TestView_SearchChangedResetsPage(t *testing.T) {
	v := readyView(t, 2).Apply(PageChanged{Page: 1})
	require.Equal(t, 1, v.Page)

	v = v.Apply(SearchChanged{Query: "pip", Category: AllCategories})
	assert.Equal(t, 0, v.Page)
	assert.Equal(t, []string{"Pipette"}, names(v.Results))

	v = v.Apply(SearchChanged{Query: "", Category: "Diagnostics"})
	assert.Equal(t, []string{"Test Strip"}, names(v.Current()))
}

func TestView_SortRecomputesFromFullList(t *testing.T) {
	v := readyView(t, 24).
		Apply(SearchChanged{Query: "pip", Category: AllCategories}).
		Apply(SearchChanged{Query: "", Category: AllCategories}).
		Apply(SortChanged{Sort: models.SortNameDesc})

	assert.Equal(t, []string{"Test Strip", "Pipette", "Centrifuge"}, names(v.Results))

	v = v.Apply(SearchChanged{Query: "e", Category: "Lab Equipment"}).Apply(SortChanged{Sort: models.SortNewest})
	assert.Equal(t, []string{"Pipette", "Centrifuge"}, names(v.Results))
	assert.Len(t, v.All, 3)
}

func TestView_SortChangedUnknownKeyIsNone(t *testing.T) {
	v := readyView(t, 24).Apply(SortChanged{Sort: models.SortKey("price")})
	assert.Equal(t, models.SortNone, v.Sort)
	assert.Equal(t, []string{"1", "2", "3"}, ids(v.Results))
}

func TestView_PageChangedOnlyMovesSlice(t *testing.T) {
	before := readyView(t, 2).Apply(SortChanged{Sort: models.SortNameAsc})
	after := before.Apply(PageChanged{Page: 1})

	assert.Equal(t, 1, after.Page)
	assert.Equal(t, []string{"Test Strip"}, names(after.Current()))
	require.NotEmpty(t, after.Results)
	assert.Same(t, &before.Results[0], &after.Results[0])

	out := after.Apply(PageChanged{Page: 9})
	assert.Empty(t, out.Current())
	out = after.Apply(PageChanged{Page: -1})
	assert.Empty(t, out.Current())
}

func TestView_LocaleChangedResetsCategory(t *testing.T) {
	v := readyView(t, 2).
		Apply(SearchChanged{Query: "e", Category: "Lab Equipment"}).
		Apply(SortChanged{Sort: models.SortNameAsc}).
		Apply(PageChanged{Page: 1})

	v = v.Apply(LocaleChanged{Locale: models.LocaleArabic})
	assert.Equal(t, models.LocaleArabic, v.Locale)
	assert.Equal(t, AllCategories, v.Category)
	assert.Equal(t, "جميع المنتجات", v.Categories[0].Label)
	assert.False(t, HasCategory(v.Categories, "Lab Equipment"))
	assert.Equal(t, 0, v.Page)
	assert.Equal(t, "e", v.Query)
	assert.Equal(t, models.SortNameAsc, v.Sort)
	// all three match "e" once the category is cleared
	assert.Len(t, v.Results, 3)
}

func TestView_LocaleChangedResortsByLocalName(t *testing.T) {
	v := readyView(t, 24).Apply(SortChanged{Sort: models.SortNameAsc})
	assert.Equal(t, []string{"1", "2", "3"}, ids(v.Results))

	v = v.Apply(LocaleChanged{Locale: models.LocaleArabic})
	arabic := ids(v.Results)
	assert.Less(t, indexOf(arabic, "1"), indexOf(arabic, "2"))
}

func TestView_LocaleChangedWhileLoading(t *testing.T) {
	v := NewView(models.LocaleEnglish, 24).Apply(LocaleChanged{Locale: models.LocaleArabic})
	assert.Equal(t, models.StatusLoading, v.Status)
	assert.Equal(t, models.LocaleArabic, v.Locale)

	v = v.Apply(FetchResolved{Products: scenarioProducts()})
	assert.Equal(t, "جميع المنتجات", v.Categories[0].Label)
	assert.Len(t, v.Categories, 2)
}

func TestView_ApplyDoesNotMutateReceiver(t *testing.T) {
	v := readyView(t, 24)
	_ = v.Apply(SearchChanged{Query: "pip"})
	_ = v.Apply(LocaleChanged{Locale: models.LocaleArabic})
	assert.Equal(t, "", v.Query)
	assert.Equal(t, models.LocaleEnglish, v.Locale)
	assert.Len(t, v.Results, 3)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	v := readyView(t, 2).
		Apply(SearchChanged{Query: "e", Category: "Lab Equipment"}).
		Apply(SortChanged{Sort: models.SortNewest}).
		Apply(PageChanged{Page: 0})

	restored := v.Snapshot().Restore()
	assert.Equal(t, v.Status, restored.Status)
	assert.Equal(t, v.Query, restored.Query)
	assert.Equal(t, v.Category, restored.Category)
	assert.Equal(t, v.Sort, restored.Sort)
	assert.Equal(t, ids(v.Results), ids(restored.Results))
	assert.Equal(t, v.Categories, restored.Categories)

	failed := NewView(models.LocaleArabic, 24).Apply(FetchFailed{Err: errors.New("timeout")}).Snapshot().Restore()
	assert.Equal(t, models.StatusError, failed.Status)
	assert.EqualError(t, failed.Err, "timeout")
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func TestSnapshot_JSONKeepsSubSecondOrder(t *testing.T) {
	products := []models.Product{
		{ID: "a", NameEN: "Alpha", CreatedAt: models.MustTimestamp("2024-05-01T10:00:00.100Z")},
		{ID: "b", NameEN: "Beta", CreatedAt: models.MustTimestamp("2024-05-01T10:00:00.900Z")},
	}
	v := NewView(models.LocaleEnglish, 24).
		Apply(FetchResolved{Products: products}).
		Apply(SortChanged{Sort: models.SortNewest})

	data, err := json.Marshal(v.Snapshot())
	require.NoError(t, err)
	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	restored := snapshot.Restore()

	assert.Equal(t, []string{"b", "a"}, ids(v.Results))
	assert.Equal(t, ids(v.Results), ids(restored.Results))
}
