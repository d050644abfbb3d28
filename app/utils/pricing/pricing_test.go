package pricing

import (
	"testing"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestResolveDisplayPrice_Fixed(t *testing.T) {
	tests := []struct {
		name     string
		item     models.MenuItem
		expected string
	}{
		{
			name:     "base_price",
			item:     models.MenuItem{PricingType: models.PricingFixed, BasePrice: dec("4.50")},
			expected: "$4.50",
		},
		{
			name:     "unset_pricing_type_defaults_to_fixed",
			item:     models.MenuItem{BasePrice: dec("3.25")},
			expected: "$3.25",
		},
		{
			name:     "zero_base_price_renders_empty",
			item:     models.MenuItem{PricingType: models.PricingFixed},
			expected: "",
		},
		{
			name:     "negative_base_price_renders_safe_default",
			item:     models.MenuItem{PricingType: models.PricingFixed, BasePrice: dec("-2.00")},
			expected: "$0.00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveDisplayPrice(tc.item))
		})
	}
}

func TestResolveDisplayPrice_ConsistentSize(t *testing.T) {
	tests := []struct {
		name     string
		item     models.MenuItem
		expected string
	}{
		{
			name: "overrides_replace_base_price",
			item: models.MenuItem{
				PricingType: models.PricingConsistentSize,
				BasePrice:   dec("3.00"),
				SizeLinks: []models.MenuItemSize{
					{PriceOverride: decPtr("3.50")},
					{PriceOverride: decPtr("4.75")},
				},
			},
			expected: "$3.50 - $4.75",
		},
		{
			name: "missing_override_uses_base_unmodified",
			item: models.MenuItem{
				PricingType: models.PricingConsistentSize,
				BasePrice:   dec("3.00"),
				SizeLinks: []models.MenuItemSize{
					{},
					{PriceOverride: decPtr("4.00")},
				},
			},
			expected: "$3.00 - $4.00",
		},
		{
			name: "all_sizes_equal_renders_single_value",
			item: models.MenuItem{
				PricingType: models.PricingConsistentSize,
				BasePrice:   dec("5.00"),
				SizeLinks: []models.MenuItemSize{
					{},
					{PriceOverride: decPtr("5.00")},
				},
			},
			expected: "$5.00",
		},
		{
			name: "zero_linked_sizes_falls_back_to_base",
			item: models.MenuItem{
				PricingType: models.PricingConsistentSize,
				BasePrice:   dec("2.50"),
			},
			expected: "$2.50",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveDisplayPrice(tc.item))
		})
	}
}

func TestResolveDisplayPrice_CustomSize(t *testing.T) {
	item := models.MenuItem{
		PricingType: models.PricingCustomSize,
		BasePrice:   dec("1.00"),
		CustomSizes: []models.CustomSize{
			{Name: "8oz", Price: dec("2.75")},
			{Name: "12oz", Price: dec("3.25")},
			{Name: "16oz", Price: dec("3.95")},
		},
	}
	assert.Equal(t, "$2.75 - $3.95", ResolveDisplayPrice(item))

	empty := models.MenuItem{PricingType: models.PricingCustomSize, BasePrice: dec("1.00")}
	assert.Equal(t, "$1.00", ResolveDisplayPrice(empty))
}

func TestResolveDisplayPrice_Deterministic(t *testing.T) {
	item := models.MenuItem{
		PricingType: models.PricingConsistentSize,
		BasePrice:   dec("3.00"),
		SizeLinks: []models.MenuItemSize{
			{PriceOverride: decPtr("4.25")},
			{},
		},
	}
	first := ResolveDisplayPrice(item)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolveDisplayPrice(item))
	}
}

func TestResolveMinPrice(t *testing.T) {
	item := models.MenuItem{
		PricingType: models.PricingConsistentSize,
		BasePrice:   dec("3.00"),
		SizeLinks: []models.MenuItemSize{
			{PriceOverride: decPtr("2.50")},
			{PriceOverride: decPtr("4.00")},
		},
	}
	assert.True(t, ResolveMinPrice(item).Equal(dec("2.50")))

	fixed := models.MenuItem{PricingType: models.PricingFixed, BasePrice: dec("6.00")}
	assert.True(t, ResolveMinPrice(fixed).Equal(dec("6.00")))
}
