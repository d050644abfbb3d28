package pricing

import (
	"github.com/leekchan/accounting"
	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// FormatPrice renders an amount as currency text. Negative amounts are
// never shown to visitors; they render as the zero price instead.
func FormatPrice(amount decimal.Decimal) string {
	if amount.Sign() < 0 {
		amount = decimal.Zero
	}
	return usd.FormatMoneyDecimal(amount)
}

func formatRange(min, max decimal.Decimal) string {
	if min.Equal(max) {
		return FormatPrice(min)
	}
	return FormatPrice(min) + " - " + FormatPrice(max)
}

// ResolveDisplayPrice computes the customer-facing price text for a menu
// item. Which representation is authoritative is selected by PricingType:
//
//   - fixed (or unset, for rows predating the column): the base price,
//     or an empty string when no base price has been set.
//   - consistent_size: min/max over the linked sizes, where a size's
//     price override REPLACES the base price outright. The override is
//     never added to the base.
//   - custom_size: min/max over the item's embedded custom size list.
//
// A size-based item with no linked rows falls back to base-price
// formatting rather than erroring.
func ResolveDisplayPrice(item models.MenuItem) string {
	switch item.PricingType {
	case models.PricingConsistentSize:
		if len(item.SizeLinks) == 0 {
			return fixedPrice(item)
		}
		prices := make([]decimal.Decimal, 0, len(item.SizeLinks))
		for _, link := range item.SizeLinks {
			prices = append(prices, effectivePrice(item, link))
		}
		min, max := minMax(prices)
		return formatRange(min, max)

	case models.PricingCustomSize:
		if len(item.CustomSizes) == 0 {
			return fixedPrice(item)
		}
		prices := make([]decimal.Decimal, 0, len(item.CustomSizes))
		for _, cs := range item.CustomSizes {
			prices = append(prices, cs.Price)
		}
		min, max := minMax(prices)
		return formatRange(min, max)

	default:
		return fixedPrice(item)
	}
}

// ResolveMinPrice returns the numeric low end of an item's display price,
// used when sorting a menu by price.
func ResolveMinPrice(item models.MenuItem) decimal.Decimal {
	switch item.PricingType {
	case models.PricingConsistentSize:
		if len(item.SizeLinks) == 0 {
			return item.BasePrice
		}
		prices := make([]decimal.Decimal, 0, len(item.SizeLinks))
		for _, link := range item.SizeLinks {
			prices = append(prices, effectivePrice(item, link))
		}
		min, _ := minMax(prices)
		return min

	case models.PricingCustomSize:
		if len(item.CustomSizes) == 0 {
			return item.BasePrice
		}
		prices := make([]decimal.Decimal, 0, len(item.CustomSizes))
		for _, cs := range item.CustomSizes {
			prices = append(prices, cs.Price)
		}
		min, _ := minMax(prices)
		return min

	default:
		return item.BasePrice
	}
}

func fixedPrice(item models.MenuItem) string {
	if item.BasePrice.IsZero() {
		return ""
	}
	return FormatPrice(item.BasePrice)
}

func effectivePrice(item models.MenuItem, link models.MenuItemSize) decimal.Decimal {
	if link.PriceOverride != nil {
		return *link.PriceOverride
	}
	return item.BasePrice
}

func minMax(prices []decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p.LessThan(min) {
			min = p
		}
		if p.GreaterThan(max) {
			max = p
		}
	}
	return min, max
}
