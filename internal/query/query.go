// Package query filters, sorts, and paginates a catalog snapshot. It is a
// pure function over the slice it is given; the caller owns the snapshot.
package query

import (
	"sort"
	"strings"

	"overlaysnow/internal/domain"
)

// PageSizeAll is the unbounded sentinel: the full filtered and sorted set is
// returned without slicing.
const PageSizeAll = 0

const (
	SortNewest    = "newest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortPopular   = "popular"
)

type Params struct {
	Category string
	Search   string
	Sort     string
	Page     int
	PageSize int
	Featured *bool
	Exclude  string
}

type Result struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	PageSize   int              `json:"limit"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// Run applies the conjunctive filters, sorts with a stable tie-break on
// collection order, and slices the requested page window.
func Run(products []domain.Product, p Params) Result {
	filtered := filter(products, p)

	switch p.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt > filtered[j].CreatedAt
		})
	default:
		// "popular" and the default ordering: descending sales counter.
		// Deterministic by construction; ties keep collection order.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].SalesCount > filtered[j].SalesCount
		})
	}

	totalItems := len(filtered)
	if p.PageSize == PageSizeAll {
		return Result{Items: filtered, Page: 1, PageSize: PageSizeAll, TotalItems: totalItems, TotalPages: 1}
	}

	totalPages := (totalItems + p.PageSize - 1) / p.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * p.PageSize
	end := start + p.PageSize
	if end > totalItems {
		end = totalItems
	}
	items := []domain.Product{}
	if start < totalItems {
		items = filtered[start:end]
	}

	return Result{
		Items:      items,
		Page:       page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func filter(products []domain.Product, p Params) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(p.Search))
	out := make([]domain.Product, 0, len(products))
	for _, prod := range products {
		if p.Category != "" && prod.CategoryID != p.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(prod.Name), search) &&
			!strings.Contains(strings.ToLower(prod.Description), search) {
			continue
		}
		if p.Featured != nil && prod.IsFeatured != *p.Featured {
			continue
		}
		if p.Exclude != "" && prod.ID == p.Exclude {
			continue
		}
		out = append(out, prod)
	}
	return out
}
