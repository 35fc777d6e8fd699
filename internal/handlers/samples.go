package handlers

import (
	"fmt"

	"github.com/samber/lo"

	"multivendor/internal/models"
)

// Placeholder content served while no store is configured, so the storefront
// still renders.
const (
	sampleProductImage       = "https://images.unsplash.com/photo-1518443871411-05f03d4d8e8b?auto=format&fit=crop&w=800&q=60"
	sampleProductDescription = "Crystal clear sound."
	sampleProductCategory    = "Audio"
	sampleProductBasePrice   = 99.99

	sampleVendorLogo        = "https://api.dicebear.com/7.x/initials/svg?seed=VV"
	sampleVendorDescription = "Quality products from verified sellers."
	sampleVendorRating      = 4.7
)

var sampleVendorCategories = []string{"Electronics", "Home"}

func sampleProducts(n int) []models.Product {
	return lo.Times(n, func(i int) models.Product {
		return models.Product{
			Title:       fmt.Sprintf("Premium Headphones %d", i+1),
			Description: lo.ToPtr(sampleProductDescription),
			Price:       sampleProductBasePrice + float64(i),
			ImageURL:    lo.ToPtr(sampleProductImage),
			Category:    sampleProductCategory,
			InStock:     true,
			Rating:      models.DefaultProductRating,
		}
	})
}

func sampleVendors(n int) []models.Vendor {
	return lo.Times(n, func(i int) models.Vendor {
		return models.Vendor{
			Name:        fmt.Sprintf("Vendor %d", i+1),
			LogoURL:     lo.ToPtr(sampleVendorLogo),
			Description: lo.ToPtr(sampleVendorDescription),
			Rating:      sampleVendorRating,
			Categories:  append(models.StringList(nil), sampleVendorCategories...),
			IsVerified:  true,
		}
	})
}
