package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/lunarbrew/go-cafe/app/utils/pricing"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortByName  = "name"
	SortByPrice = "price"
	SortByOrder = "order"

	// AllCategories is the selector value that disables category filtering.
	AllCategories = "all"
)

type ItemView struct {
	models.MenuItem
	CategoryName  string `json:"categoryName"`
	CategoryIndex int    `json:"categoryIndex"`
	DisplayPrice  string `json:"displayPrice"`
}

type CategoryView struct {
	models.Category
	Items []ItemView `json:"items"`
}

type Query struct {
	Search     string
	CategoryID string
	Tags       []string
}

type Page struct {
	Items      []ItemView `json:"items"`
	Page       int        `json:"page"`
	PerPage    int        `json:"perPage"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
}

// Build nests menu items under their categories and decorates each item
// with its category name, the category's index in the ordered category
// list, and its resolved display price. The same shape is produced
// whether the inputs came from a live query or a decoded snapshot.
func Build(categories []models.Category, items []models.MenuItem) []CategoryView {
	ordered := make([]models.Category, len(categories))
	copy(ordered, categories)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	views := make([]CategoryView, 0, len(ordered))
	for idx, cat := range ordered {
		view := CategoryView{Category: cat, Items: []ItemView{}}
		for _, item := range items {
			if item.CategoryID != cat.ID {
				continue
			}
			view.Items = append(view.Items, ItemView{
				MenuItem:      item,
				CategoryName:  cat.Name,
				CategoryIndex: idx,
				DisplayPrice:  pricing.ResolveDisplayPrice(item),
			})
		}
		sort.SliceStable(view.Items, func(i, j int) bool {
			return view.Items[i].DisplayOrder < view.Items[j].DisplayOrder
		})
		views = append(views, view)
	}
	return views
}

// Flatten collects every item across the built category views, in
// category order then item display order.
func Flatten(views []CategoryView) []ItemView {
	var items []ItemView
	for _, v := range views {
		items = append(items, v.Items...)
	}
	return items
}

// Filter applies the search/category/tag predicates. It is idempotent:
// re-filtering a filtered result with the same query returns the same set.
func Filter(items []ItemView, q Query) []ItemView {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]ItemView, 0, len(items))
	for _, item := range items {
		if q.CategoryID != "" && q.CategoryID != AllCategories && item.CategoryID != q.CategoryID {
			continue
		}
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		if len(q.Tags) > 0 && !matchesAnyTag(item, q.Tags) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(item ItemView, search string) bool {
	return strings.Contains(strings.ToLower(item.Name), search) ||
		strings.Contains(strings.ToLower(item.Description), search) ||
		strings.Contains(strings.ToLower(item.CategoryName), search)
}

func matchesAnyTag(item ItemView, requested []string) bool {
	for _, want := range requested {
		for _, have := range item.Tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// Sort returns a stably sorted copy; ties keep their input order. Name
// ordering is locale-aware rather than byte-wise.
func Sort(items []ItemView, by string) []ItemView {
	out := make([]ItemView, len(items))
	copy(out, items)

	switch by {
	case SortByName:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return pricing.ResolveMinPrice(out[i].MenuItem).LessThan(pricing.ResolveMinPrice(out[j].MenuItem))
		})
	case SortByOrder:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DisplayOrder < out[j].DisplayOrder
		})
	}
	return out
}

// Paginate slices one page out of the list. Out-of-range pages clamp to
// the nearest valid page instead of erroring.
func Paginate(items []ItemView, page, perPage int) Page {
	if perPage < 1 {
		perPage = 12
	}

	total := len(items)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Resequence reinserts movedID at newIndex and returns the resulting ID
// order. Callers persist it as display_order 1..N; whatever the pre-move
// values were, the scope ends up contiguous.
func Resequence(ids []string, movedID string, newIndex int) []string {
	remaining := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == movedID {
			found = true
			continue
		}
		remaining = append(remaining, id)
	}
	if !found {
		out := make([]string, len(ids))
		copy(out, ids)
		return out
	}

	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(remaining) {
		newIndex = len(remaining)
	}

	out := make([]string, 0, len(ids))
	out = append(out, remaining[:newIndex]...)
	out = append(out, movedID)
	out = append(out, remaining[newIndex:]...)
	return out
}
