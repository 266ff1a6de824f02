// Package wardrobe contains the decision logic of the application:
// the category catalog, the temperature-band classifier, the outfit
// assembler, the calendar aggregator and the wardrobe grouping view.
package wardrobe

// Main category names.
const (
	CategoryTops        = "Tops"
	CategoryBottoms     = "Bottoms"
	CategoryJacketsCoat = "Jackets/Coats"
	CategoryDresses     = "Dresses"
	CategoryShoes       = "Shoes"
	CategoryAccessories = "Accessories"
)

// catalog maps each main category to its allowed subcategories.
var catalog = map[string][]string{
	CategoryTops: {
		"Shirts",
		"T-Shirts",
		"Graphic Tees",
		"Sweatshirts/Hoodies",
		"Sweaters",
		"Turtlenecks",
		"Polos",
		"Crop Tops",
		"Blouses",
		"Bodysuits",
		"Tank Tops",
	},
	CategoryBottoms: {
		"Jeans",
		"Pants",
		"Sweatpants",
		"Leggings",
		"Shorts",
		"Skirts",
		"Thick Pants",
	},
	CategoryJacketsCoat: {
		"Coats",
		"Jackets & Bombers",
		"Vests",
		"Blazers",
		"Raincoats",
		"Waterproof Jackets",
		"Windbreakers",
	},
	CategoryDresses: {
		"Mini Dresses",
		"Midi Dresses",
		"Maxi Dresses",
		"Rompers",
		"Jumpsuits",
		"Sweater Dresses",
	},
	CategoryShoes: {
		"Boots",
		"Gym Shoes",
		"Sneakers",
		"Heels",
		"Sandals",
		"Waterproof Shoes",
	},
	CategoryAccessories: {
		"Hats",
		"Scarves",
		"Gloves",
		"Belts",
		"Watches & Jewelry",
		"Bags & Wallets",
		"Sunglasses",
		"Caps",
		"Umbrellas",
	},
}

// mainCategoryOrder is the canonical ordering of main categories.
var mainCategoryOrder = []string{
	CategoryTops,
	CategoryBottoms,
	CategoryJacketsCoat,
	CategoryDresses,
	CategoryShoes,
	CategoryAccessories,
}

// MainCategories returns all main category names in canonical order.
func MainCategories() []string {
	out := make([]string, len(mainCategoryOrder))
	copy(out, mainCategoryOrder)
	return out
}

// Subcategories returns the allowed subcategories for a main category,
// or nil if the main category is unknown.
func Subcategories(mainCategory string) []string {
	subs, ok := catalog[mainCategory]
	if !ok {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}

// ValidCategory reports whether subCategory belongs to mainCategory's
// allowed subcategory list.
func ValidCategory(mainCategory, subCategory string) bool {
	for _, sub := range catalog[mainCategory] {
		if sub == subCategory {
			return true
		}
	}
	return false
}
