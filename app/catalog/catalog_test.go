package catalog

import (
	"testing"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() ([]models.Category, []models.MenuItem) {
	categories := []models.Category{
		{ID: "cat-espresso", Name: "Espresso", DisplayOrder: 2, Active: true},
		{ID: "cat-pastry", Name: "Pastries", DisplayOrder: 1, Active: true},
	}
	items := []models.MenuItem{
		{ID: "item-latte", CategoryID: "cat-espresso", Name: "Latte", Description: "Steamed milk and espresso", BasePrice: decimal.NewFromFloat(4.50), PricingType: models.PricingFixed, Tags: models.TagList{"Iced", "Hot"}, DisplayOrder: 2, Active: true},
		{ID: "item-mocha", CategoryID: "cat-espresso", Name: "Mocha", BasePrice: decimal.NewFromFloat(5.00), PricingType: models.PricingFixed, DisplayOrder: 1, Active: true},
		{ID: "item-croissant", CategoryID: "cat-pastry", Name: "Croissant", BasePrice: decimal.NewFromFloat(3.25), PricingType: models.PricingFixed, Tags: models.TagList{"Vegetarian"}, DisplayOrder: 1, Active: true},
	}
	return categories, items
}

func TestBuild_NestsAndDecorates(t *testing.T) {
	categories, items := sampleCatalog()

	views := Build(categories, items)
	require.Len(t, views, 2)

	// Categories come back in display order, not input order.
	assert.Equal(t, "Pastries", views[0].Name)
	assert.Equal(t, "Espresso", views[1].Name)

	require.Len(t, views[1].Items, 2)
	assert.Equal(t, "Mocha", views[1].Items[0].Name)
	assert.Equal(t, "Latte", views[1].Items[1].Name)

	latte := views[1].Items[1]
	assert.Equal(t, "Espresso", latte.CategoryName)
	assert.Equal(t, 1, latte.CategoryIndex)
	assert.Equal(t, "$4.50", latte.DisplayPrice)
}

func TestFilter(t *testing.T) {
	categories, rawItems := sampleCatalog()
	items := Flatten(Build(categories, rawItems))

	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{
			name:     "search_matches_name_case_insensitive",
			query:    Query{Search: "LATTE"},
			expected: []string{"item-latte"},
		},
		{
			name:     "search_matches_description",
			query:    Query{Search: "steamed"},
			expected: []string{"item-latte"},
		},
		{
			name:     "search_matches_category_name",
			query:    Query{Search: "pastr"},
			expected: []string{"item-croissant"},
		},
		{
			name:     "category_exact_match",
			query:    Query{CategoryID: "cat-espresso"},
			expected: []string{"item-mocha", "item-latte"},
		},
		{
			name:     "all_selector_passes_everything",
			query:    Query{CategoryID: AllCategories},
			expected: []string{"item-croissant", "item-mocha", "item-latte"},
		},
		{
			name:     "tag_or_match",
			query:    Query{Tags: []string{"vegetarian", "iced"}},
			expected: []string{"item-croissant", "item-latte"},
		},
		{
			name:     "empty_tag_set_passes_everything",
			query:    Query{Tags: nil},
			expected: []string{"item-croissant", "item-mocha", "item-latte"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(items, tc.query)
			ids := make([]string, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	categories, rawItems := sampleCatalog()
	items := Flatten(Build(categories, rawItems))

	q := Query{Search: "o", Tags: []string{"Iced", "Vegetarian"}}
	once := Filter(items, q)
	twice := Filter(once, q)
	assert.Equal(t, once, twice)
}

func TestSort(t *testing.T) {
	categories, rawItems := sampleCatalog()
	items := Flatten(Build(categories, rawItems))

	byName := Sort(items, SortByName)
	assert.Equal(t, "Croissant", byName[0].Name)
	assert.Equal(t, "Latte", byName[1].Name)
	assert.Equal(t, "Mocha", byName[2].Name)

	byPrice := Sort(items, SortByPrice)
	assert.Equal(t, "item-croissant", byPrice[0].ID)
	assert.Equal(t, "item-latte", byPrice[1].ID)
	assert.Equal(t, "item-mocha", byPrice[2].ID)

	// Unknown keys leave the input order untouched.
	unchanged := Sort(items, "bogus")
	assert.Equal(t, items, unchanged)
}

func TestPaginate_RoundTrip(t *testing.T) {
	items := make([]ItemView, 0, 7)
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		items = append(items, ItemView{MenuItem: models.MenuItem{ID: id}})
	}

	perPage := 3
	first := Paginate(items, 1, perPage)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 7, first.Total)

	var reassembled []ItemView
	for page := 1; page <= first.TotalPages; page++ {
		reassembled = append(reassembled, Paginate(items, page, perPage).Items...)
	}
	assert.Equal(t, items, reassembled)
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	items := []ItemView{
		{MenuItem: models.MenuItem{ID: "a"}},
		{MenuItem: models.MenuItem{ID: "b"}},
	}

	beyond := Paginate(items, 99, 1)
	assert.Equal(t, 2, beyond.Page)
	assert.Equal(t, "b", beyond.Items[0].ID)

	below := Paginate(items, 0, 1)
	assert.Equal(t, 1, below.Page)
	assert.Equal(t, "a", below.Items[0].ID)

	empty := Paginate(nil, 5, 10)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Items)
}

func TestResequence(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		moved    string
		newIndex int
		expected []string
	}{
		{
			name:     "move_forward",
			ids:      []string{"a", "b", "c", "d"},
			moved:    "a",
			newIndex: 2,
			expected: []string{"b", "c", "a", "d"},
		},
		{
			name:     "move_backward",
			ids:      []string{"a", "b", "c", "d"},
			moved:    "d",
			newIndex: 0,
			expected: []string{"d", "a", "b", "c"},
		},
		{
			name:     "index_past_end_clamps",
			ids:      []string{"a", "b", "c"},
			moved:    "a",
			newIndex: 99,
			expected: []string{"b", "c", "a"},
		},
		{
			name:     "unknown_id_is_a_noop",
			ids:      []string{"a", "b"},
			moved:    "z",
			newIndex: 0,
			expected: []string{"a", "b"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resequence(tc.ids, tc.moved, tc.newIndex))
		})
	}
}
