package filestore

import "panditji-api/models"

// Seed defaults are always present in the file-backed catalog: every
// rewrite merges them back in, keyed by legacy id, so they can never be
// deleted or overridden through this store.

func seedCategories() []models.Category {
	return []models.Category{
		{
			LegacyID:     "seed-pujas",
			Name:         "Pujas",
			Slug:         "pujas",
			Description:  "Vedic pujas performed by experienced panditjis",
			ShowOnNavbar: true,
			IsService:    true,
		},
		{
			LegacyID:     "seed-samagri",
			Name:         "Samagri",
			Slug:         "samagri",
			Description:  "Puja samagri kits and individual items",
			ShowOnNavbar: true,
			IsProduct:    true,
		},
		{
			LegacyID:    "seed-festival-specials",
			Name:        "Festival Specials",
			Slug:        "festival-specials",
			Description: "Seasonal pujas for major festivals",
			IsService:   true,
		},
	}
}

func seedPujas() []models.Puja {
	return []models.Puja{
		{
			LegacyID:         "seed-satyanarayan-puja",
			Name:             "Satyanarayan Puja",
			Price:            5100,
			PriceLabel:       "From",
			Category:         "Pujas",
			CategorySlug:     "pujas",
			ShortDescription: "Traditional Satyanarayan katha and puja at your home",
			Duration:         "2-3 hours",
			JapaOptions: []models.JapaOption{
				{Label: "1 Mala", Value: "108"},
				{Label: "11 Mala", Value: "1188"},
			},
		},
		{
			LegacyID:         "seed-griha-pravesh",
			Name:             "Griha Pravesh Puja",
			Price:            7500,
			PriceLabel:       "From",
			Category:         "Pujas",
			CategorySlug:     "pujas",
			ShortDescription: "Housewarming puja with vastu shanti",
			Duration:         "3-4 hours",
		},
		{
			LegacyID:         "seed-ganesh-puja",
			Name:             "Ganesh Puja",
			Price:            3100,
			PriceLabel:       "From",
			Category:         "Festival Specials",
			CategorySlug:     "festival-specials",
			ShortDescription: "Ganesh sthapana and puja for new beginnings",
			Duration:         "1-2 hours",
		},
	}
}
