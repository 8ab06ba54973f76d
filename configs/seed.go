package configs

import (
	"log"

	"storefront/entity"
)

// SeedCatalog loads the restaurant/menu catalog once. The catalog is the only
// persisted state and is treated as read-only after this point.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		log.Println("catalog already seeded")
		return nil
	}

	restaurants := []entity.Restaurant{
		{
			ID: "r1", Name: "Bella Italia", Image: "/images/bella-italia.jpg",
			Rating: 4.7, DeliveryTime: "25-35 min", DeliveryFee: 399, MinOrder: 1500,
			Description: "Wood-fired pizza and fresh pasta.", IsOpen: true,
			Cuisines: []entity.Cuisine{{Name: "Italian"}, {Name: "Pizza"}},
		},
		{
			ID: "r2", Name: "Tokyo Bites", Image: "/images/tokyo-bites.jpg",
			Rating: 4.5, DeliveryTime: "30-40 min", DeliveryFee: 299, MinOrder: 2000,
			Description: "Sushi rolls, ramen and bento boxes.", IsOpen: true,
			Cuisines: []entity.Cuisine{{Name: "Japanese"}, {Name: "Sushi"}},
		},
		{
			ID: "r3", Name: "Burger Shack", Image: "/images/burger-shack.jpg",
			Rating: 4.3, DeliveryTime: "20-30 min", DeliveryFee: 199, MinOrder: 1000,
			Description: "Smashed patties and hand-cut fries.", IsOpen: true,
			Cuisines: []entity.Cuisine{{Name: "American"}, {Name: "Burgers"}},
		},
		{
			ID: "r4", Name: "Spice Route", Image: "/images/spice-route.jpg",
			Rating: 4.6, DeliveryTime: "35-45 min", DeliveryFee: 349, MinOrder: 1800,
			Description: "North Indian curries and tandoor grills.", IsOpen: false,
			Cuisines: []entity.Cuisine{{Name: "Indian"}, {Name: "Curry"}},
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{
			ID: "m1", RestaurantID: "r1", Name: "Margherita", Category: "Pizza",
			Description: "Tomato, mozzarella, basil.", Price: 1000, Image: "/images/margherita.jpg",
			IsVegetarian: true, IsPopular: true,
			Sizes: []entity.SizeOption{
				{Name: "Regular", PriceDelta: 0, SortOrder: 1},
				{Name: "Large", PriceDelta: 250, SortOrder: 2},
			},
			Addons: []entity.AddonOption{
				{Name: "Cheese", PriceDelta: 100, SortOrder: 1},
				{Name: "Olives", PriceDelta: 75, SortOrder: 2},
			},
		},
		{
			ID: "m2", RestaurantID: "r1", Name: "Pepperoni", Category: "Pizza",
			Description: "Tomato, mozzarella, pepperoni.", Price: 1250, Image: "/images/pepperoni.jpg",
			IsPopular: true,
			Sizes: []entity.SizeOption{
				{Name: "Regular", PriceDelta: 0, SortOrder: 1},
				{Name: "Large", PriceDelta: 250, SortOrder: 2},
			},
			Addons: []entity.AddonOption{
				{Name: "Cheese", PriceDelta: 100, SortOrder: 1},
				{Name: "Jalapenos", PriceDelta: 75, SortOrder: 2},
			},
		},
		{
			ID: "m3", RestaurantID: "r1", Name: "Tiramisu", Category: "Dessert",
			Description: "Espresso-soaked ladyfingers, mascarpone.", Price: 500, Image: "/images/tiramisu.jpg",
			IsVegetarian: true,
		},
		{
			ID: "m4", RestaurantID: "r2", Name: "Salmon Roll", Category: "Sushi",
			Description: "Eight pieces, fresh salmon.", Price: 899, Image: "/images/salmon-roll.jpg",
			IsPopular: true,
			Addons: []entity.AddonOption{
				{Name: "Extra Wasabi", PriceDelta: 50, SortOrder: 1},
				{Name: "Ginger", PriceDelta: 50, SortOrder: 2},
			},
		},
		{
			ID: "m5", RestaurantID: "r2", Name: "Tonkotsu Ramen", Category: "Ramen",
			Description: "Pork broth, chashu, soft egg.", Price: 1199, Image: "/images/tonkotsu.jpg",
			Sizes: []entity.SizeOption{
				{Name: "Regular", PriceDelta: 0, SortOrder: 1},
				{Name: "Large", PriceDelta: 300, SortOrder: 2},
			},
			Addons: []entity.AddonOption{
				{Name: "Extra Chashu", PriceDelta: 250, SortOrder: 1},
				{Name: "Corn", PriceDelta: 100, SortOrder: 2},
			},
		},
		{
			ID: "m6", RestaurantID: "r3", Name: "Classic Smash", Category: "Burgers",
			Description: "Double patty, cheddar, house sauce.", Price: 850, Image: "/images/classic-smash.jpg",
			IsPopular: true,
			Addons: []entity.AddonOption{
				{Name: "Bacon", PriceDelta: 150, SortOrder: 1},
				{Name: "Extra Patty", PriceDelta: 300, SortOrder: 2},
			},
		},
		{
			ID: "m7", RestaurantID: "r3", Name: "Fries", Category: "Sides",
			Description: "Hand-cut, sea salt.", Price: 350, Image: "/images/fries.jpg",
			IsVegetarian: true,
			Sizes: []entity.SizeOption{
				{Name: "Small", PriceDelta: 0, SortOrder: 1},
				{Name: "Large", PriceDelta: 150, SortOrder: 2},
			},
		},
		{
			ID: "m8", RestaurantID: "r4", Name: "Butter Chicken", Category: "Curry",
			Description: "Tandoori chicken in tomato cream.", Price: 1299, Image: "/images/butter-chicken.jpg",
			IsPopular: true,
			Addons: []entity.AddonOption{
				{Name: "Garlic Naan", PriceDelta: 250, SortOrder: 1},
				{Name: "Basmati Rice", PriceDelta: 200, SortOrder: 2},
			},
		},
		{
			ID: "m9", RestaurantID: "r4", Name: "Palak Paneer", Category: "Curry",
			Description: "Spinach, cottage cheese, spices.", Price: 1099, Image: "/images/palak-paneer.jpg",
			IsVegetarian: true,
		},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	log.Println("catalog seeded")
	return nil
}
