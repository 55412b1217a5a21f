package db

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ezpickup-backend/internal/model"
)

// Seed loads the reference data the site needs: cities, conditions, the
// device catalog, pricing rules (including the global default rule that the
// resolver's fallback contract assumes), stats and marketing content.
// Idempotent: rerunning is a no-op for existing rows.
func Seed(db *gorm.DB) error {
	if err := seedCities(db); err != nil {
		return err
	}
	if err := seedConditions(db); err != nil {
		return err
	}
	if err := seedCatalogAndRules(db); err != nil {
		return err
	}
	if err := seedContent(db); err != nil {
		return err
	}
	return nil
}

func seedCities(db *gorm.DB) error {
	cities := []model.City{
		{Name: "Mumbai", State: "Maharashtra", IsActive: true},
		{Name: "Delhi", State: "Delhi", IsActive: true},
		{Name: "Bangalore", State: "Karnataka", IsActive: true},
		{Name: "Hyderabad", State: "Telangana", IsActive: true},
		{Name: "Chennai", State: "Tamil Nadu", IsActive: true},
		{Name: "Pune", State: "Maharashtra", IsActive: true},
		{Name: "Jaipur", State: "Rajasthan", IsComingSoon: true},
		{Name: "Lucknow", State: "Uttar Pradesh", IsComingSoon: true},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&cities).Error; err != nil {
		return fmt.Errorf("seed cities: %w", err)
	}
	return nil
}

func seedConditions(db *gorm.DB) error {
	conditions := []model.Condition{
		{Name: "Excellent", Description: "Like new condition", Multiplier: 1.0, IsActive: true},
		{Name: "Good", Description: "Minor signs of wear", Multiplier: 0.8, IsActive: true},
		{Name: "Fair", Description: "Visible wear and tear", Multiplier: 0.6, IsActive: true},
		{Name: "Poor", Description: "Significant damage but functional", Multiplier: 0.4, IsActive: true},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&conditions).Error; err != nil {
		return fmt.Errorf("seed conditions: %w", err)
	}
	return nil
}

func seedCatalogAndRules(db *gorm.DB) error {
	type modelSpec struct {
		name     string
		slug     string
		variants []string
		// basePrice > 0 creates a model-scoped pricing rule.
		basePrice, minPrice, maxPrice int64
	}
	type brandSpec struct {
		name, slug string
		models     []modelSpec
	}
	type deviceSpec struct {
		name, slug string
		brands     []brandSpec
	}
	type categorySpec struct {
		name, slug, description, icon string
		devices                       []deviceSpec
	}

	catalog := []categorySpec{
		{
			name: "Mobile Phones", slug: "mobile-phones",
			description: "Smartphones and feature phones", icon: "📱",
			devices: []deviceSpec{{
				name: "Smartphones", slug: "smartphones",
				brands: []brandSpec{
					{name: "Apple", slug: "apple-mobile", models: []modelSpec{
						{name: "iPhone 15 Pro", slug: "iphone-15-pro", variants: []string{"128GB", "256GB", "512GB"}, basePrice: 85000, minPrice: 60000, maxPrice: 100000},
						{name: "iPhone 14", slug: "iphone-14", basePrice: 65000, minPrice: 45000, maxPrice: 80000},
						{name: "iPhone 13", slug: "iphone-13"},
					}},
					{name: "Samsung", slug: "samsung-mobile", models: []modelSpec{
						{name: "Galaxy S24", slug: "galaxy-s24", basePrice: 75000, minPrice: 55000, maxPrice: 90000},
						{name: "Galaxy S23", slug: "galaxy-s23"},
					}},
					{name: "OnePlus", slug: "oneplus-mobile"},
				},
			}},
		},
		{
			name: "Laptops", slug: "laptops",
			description: "Laptops and notebooks", icon: "💻",
			devices: []deviceSpec{{
				name: "Laptops", slug: "laptops-device",
				brands: []brandSpec{
					{name: "Apple", slug: "apple-laptop", models: []modelSpec{
						{name: `MacBook Pro 14"`, slug: "macbook-pro-14", basePrice: 150000, minPrice: 120000, maxPrice: 180000},
						{name: `MacBook Air 13"`, slug: "macbook-air-13"},
					}},
					{name: "Dell", slug: "dell-laptop"},
				},
			}},
		},
		{
			name: "Tablets", slug: "tablets",
			description: "Tablets and iPads", icon: "📟",
			devices: []deviceSpec{{
				name: "Tablets", slug: "tablets-device",
			}},
		},
	}

	for _, cs := range catalog {
		category := model.Category{Name: cs.name, Slug: cs.slug, Description: cs.description, Icon: cs.icon, IsActive: true}
		if err := db.Where(model.Category{Slug: cs.slug}).FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", cs.slug, err)
		}

		for _, ds := range cs.devices {
			device := model.Device{Name: ds.name, Slug: ds.slug, CategoryID: category.ID, IsActive: true}
			if err := db.Where(model.Device{Slug: ds.slug}).FirstOrCreate(&device).Error; err != nil {
				return fmt.Errorf("seed device %s: %w", ds.slug, err)
			}

			for _, bs := range ds.brands {
				brand := model.Brand{Name: bs.name, Slug: bs.slug, DeviceID: device.ID, IsActive: true}
				if err := db.Where(model.Brand{Slug: bs.slug}).FirstOrCreate(&brand).Error; err != nil {
					return fmt.Errorf("seed brand %s: %w", bs.slug, err)
				}

				for _, ms := range bs.models {
					m := model.Model{Name: ms.name, Slug: ms.slug, BrandID: brand.ID, IsActive: true}
					if err := db.Where(model.Model{Slug: ms.slug}).FirstOrCreate(&m).Error; err != nil {
						return fmt.Errorf("seed model %s: %w", ms.slug, err)
					}

					for _, variantName := range ms.variants {
						variant := model.Variant{Name: variantName, Description: variantName + " Storage", ModelID: m.ID, IsActive: true}
						if err := db.Where(model.Variant{ModelID: m.ID, Name: variantName}).FirstOrCreate(&variant).Error; err != nil {
							return fmt.Errorf("seed variant %s/%s: %w", ms.slug, variantName, err)
						}
					}

					if ms.basePrice > 0 {
						rule := model.PricingRule{
							ModelID:   &m.ID,
							BasePrice: ms.basePrice,
							MinPrice:  ms.minPrice,
							MaxPrice:  ms.maxPrice,
							IsActive:  true,
						}
						if err := db.Where("model_id = ?", m.ID).FirstOrCreate(&rule).Error; err != nil {
							return fmt.Errorf("seed pricing rule %s: %w", ms.slug, err)
						}
					}
				}
			}
		}
	}

	// Global default rule. The resolver assumes one always exists so a
	// quote never falls through to the hardcoded fallback in practice.
	globalRule := model.PricingRule{BasePrice: 1000, IsActive: true}
	err := db.Where("model_id IS NULL AND brand_id IS NULL AND device_id IS NULL AND category_id IS NULL").
		FirstOrCreate(&globalRule).Error
	if err != nil {
		return fmt.Errorf("seed global pricing rule: %w", err)
	}
	return nil
}

func seedContent(db *gorm.DB) error {
	stats := model.Stats{DevicesCollected: 15420, EnergySavedKwh: 98.7, TreesPreserved: 2847, EwasteKg: 125.6}
	if err := db.Where("1 = 1").Attrs(stats).FirstOrCreate(&model.Stats{}).Error; err != nil {
		return fmt.Errorf("seed stats: %w", err)
	}

	testimonials := []model.Testimonial{
		{
			Name: "Rajesh Kumar", Location: "Mumbai, Maharashtra", Rating: 5,
			Content: "Excellent service! They picked up my old laptop within 2 hours and paid me on the spot. Very professional and trustworthy.",
		},
		{
			Name: "Priya Sharma", Location: "Delhi, India", Rating: 5,
			Content: "I was amazed by how quick and easy the process was. Sold 3 old phones in one pickup. Highly recommend!",
		},
	}
	for i := range testimonials {
		t := testimonials[i]
		if err := db.Where(model.Testimonial{Name: t.Name, Location: t.Location}).FirstOrCreate(&t).Error; err != nil {
			return fmt.Errorf("seed testimonial: %w", err)
		}
	}

	posts := []model.BlogPost{
		{
			Title:       "5 Tips to Get Maximum Value for Your Old Smartphone",
			Slug:        "5-tips-maximum-value-old-smartphone",
			Excerpt:     "Learn how to prepare your smartphone for sale and get the best price.",
			Content:     "Back up your data, factory reset the device, keep the original box and accessories, clean it well and be honest about its condition. A transparent listing gets the best quotes.",
			IsPublished: true,
		},
		{
			Title:       "Why Recycling Electronics Matters",
			Slug:        "why-recycling-electronics-matters",
			Excerpt:     "Every recycled device keeps hazardous waste out of landfills.",
			Content:     "E-waste is the fastest growing waste stream. Reselling or recycling a device recovers valuable materials and prevents toxins from entering the soil and water.",
			IsPublished: true,
		},
	}
	for i := range posts {
		p := posts[i]
		if err := db.Where(model.BlogPost{Slug: p.Slug}).FirstOrCreate(&p).Error; err != nil {
			return fmt.Errorf("seed blog post %s: %w", p.Slug, err)
		}
	}
	return nil
}
