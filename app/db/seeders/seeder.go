package seeders

import (
	"log"

	"github.com/google/uuid"
	"github.com/lunarbrew/go-cafe/app/helpers"
	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Seeder struct {
	Seeder interface{}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("seeder: bad decimal %q: %v", s, err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// SeedersRegister builds a small but complete sample catalog: every pricing
// mode is represented so a fresh install can exercise the whole menu page.
func SeedersRegister(db *gorm.DB) []Seeder {
	sizeSmall := models.Size{ID: uuid.New().String(), Name: "Small", Description: "12 oz", PriceAdjustment: dec("0.00"), DisplayOrder: 1, Active: true}
	sizeMedium := models.Size{ID: uuid.New().String(), Name: "Medium", Description: "16 oz", PriceAdjustment: dec("0.50"), DisplayOrder: 2, Active: true}
	sizeLarge := models.Size{ID: uuid.New().String(), Name: "Large", Description: "20 oz", PriceAdjustment: dec("1.00"), DisplayOrder: 3, Active: true}

	attrVegan := models.Attribute{ID: uuid.New().String(), Name: "Vegan", Description: "Contains no animal products", Color: "#2e7d32", DisplayOrder: 1, Active: true}
	attrGlutenFree := models.Attribute{ID: uuid.New().String(), Name: "Gluten-Free", Description: "Made without wheat flour", Color: "#ef6c00", DisplayOrder: 2, Active: true}
	attrSeasonal := models.Attribute{ID: uuid.New().String(), Name: "Seasonal", Description: "Available for a limited time", Color: "#6a1b9a", DisplayOrder: 3, Active: true}

	catEspresso := models.Category{ID: uuid.New().String(), Name: "Espresso Drinks", Slug: "espresso-drinks", Description: "Pulled on our two-group lever machine", DisplayOrder: 1, Active: true}
	catBrewed := models.Category{ID: uuid.New().String(), Name: "Brewed Coffee", Slug: "brewed-coffee", Description: "Single-origin batch brew and pour over", DisplayOrder: 2, Active: true}
	catTea := models.Category{ID: uuid.New().String(), Name: "Tea & More", Slug: "tea-more", Description: "Loose-leaf teas and non-coffee drinks", DisplayOrder: 3, Active: true}
	catPastries := models.Category{ID: uuid.New().String(), Name: "Pastries", Slug: "pastries", Description: "Baked in house every morning", DisplayOrder: 4, Active: true}

	latte := models.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   catEspresso.ID,
		Name:         "Latte",
		Slug:         "latte",
		Description:  "Double shot with steamed milk",
		BasePrice:    dec("4.25"),
		PricingType:  models.PricingConsistentSize,
		Tags:         models.TagList{"espresso", "milk"},
		DisplayOrder: 1,
		Active:       true,
		SizeLinks: []models.MenuItemSize{
			{SizeID: sizeSmall.ID},
			{SizeID: sizeMedium.ID},
			{SizeID: sizeLarge.ID, PriceOverride: decPtr("5.75")},
		},
	}
	espresso := models.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   catEspresso.ID,
		Name:         "Espresso",
		Slug:         "espresso",
		Description:  "Straight double shot",
		BasePrice:    dec("3.00"),
		PricingType:  models.PricingFixed,
		Tags:         models.TagList{"espresso"},
		DisplayOrder: 2,
		Active:       true,
	}
	batchBrew := models.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   catBrewed.ID,
		Name:         "Batch Brew",
		Slug:         "batch-brew",
		Description:  "Rotating single origin, brewed every hour",
		BasePrice:    dec("3.25"),
		PricingType:  models.PricingConsistentSize,
		DisplayOrder: 1,
		Active:       true,
		SizeLinks: []models.MenuItemSize{
			{SizeID: sizeSmall.ID},
			{SizeID: sizeLarge.ID},
		},
	}
	coldBrew := models.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   catBrewed.ID,
		Name:         "Cold Brew",
		Slug:         "cold-brew",
		Description:  "Steeped 18 hours, served over ice",
		BasePrice:    decimal.Zero,
		PricingType:  models.PricingCustomSize,
		Tags:         models.TagList{"iced"},
		DisplayOrder: 2,
		Active:       true,
		CustomSizes: []models.CustomSize{
			{ID: uuid.New().String(), Name: "Glass", Price: dec("4.50"), DisplayOrder: 1},
			{ID: uuid.New().String(), Name: "Growler", Price: dec("14.00"), DisplayOrder: 2},
		},
	}
	chaiLatte := models.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   catTea.ID,
		Name:         "Chai Latte",
		Slug:         "chai-latte",
		Description:  "House-spiced chai with steamed oat milk",
		BasePrice:    dec("4.50"),
		PricingType:  models.PricingFixed,
		Tags:         models.TagList{"tea", "milk"},
		DisplayOrder: 1,
		Active:       true,
		Attributes:   []models.Attribute{attrVegan},
	}
	croissant := models.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   catPastries.ID,
		Name:         "Butter Croissant",
		Slug:         "butter-croissant",
		Description:  "Laminated over three days",
		BasePrice:    dec("3.75"),
		PricingType:  models.PricingFixed,
		DisplayOrder: 1,
		Active:       true,
	}
	pumpkinLoaf := models.MenuItem{
		ID:           uuid.New().String(),
		CategoryID:   catPastries.ID,
		Name:         "Pumpkin Loaf",
		Slug:         "pumpkin-loaf",
		Description:  "Fall special with candied pepitas",
		BasePrice:    dec("4.00"),
		PricingType:  models.PricingFixed,
		DisplayOrder: 2,
		Active:       true,
		Attributes:   []models.Attribute{attrGlutenFree, attrSeasonal},
	}

	owner := models.AdminAccount{
		ID:             uuid.New().String(),
		Email:          "owner@lunarbrew.cafe",
		Name:           "Café Owner",
		PasswordDigest: helpers.HashPassword("change-me-please"),
		Active:         true,
	}

	return []Seeder{
		{Seeder: &[]models.Size{sizeSmall, sizeMedium, sizeLarge}},
		{Seeder: &[]models.Attribute{attrVegan, attrGlutenFree, attrSeasonal}},
		{Seeder: &[]models.Category{catEspresso, catBrewed, catTea, catPastries}},
		{Seeder: &[]models.MenuItem{latte, espresso, batchBrew, coldBrew, chaiLatte, croissant, pumpkinLoaf}},
		{Seeder: &owner},
	}
}

func DBSeed(db *gorm.DB) error {
	for _, seeder := range SeedersRegister(db) {
		if err := db.Create(seeder.Seeder).Error; err != nil {
			return err
		}
	}
	return nil
}
