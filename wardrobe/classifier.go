package wardrobe

// Band is one of the four temperature ranges used to select eligible
// subcategories for a recommendation.
type Band string

const (
	BandCold   Band = "Cold"
	BandChilly Band = "Chilly"
	BandMild   Band = "Mild"
	BandHot    Band = "Hot"
)

// eligible subcategories per band
var bandSubcategories = map[Band][]string{
	BandCold: {
		"Sweaters",
		"Turtlenecks",
		"Thick Pants",
		"Sweater Dresses",
		"Coats",
		"Boots",
		"Scarves",
		"Gloves",
		"Hats",
	},
	BandChilly: {
		"Sweaters",
		"Turtlenecks",
		"Jeans",
		"Leggings",
		"Blazers",
		"Jackets & Bombers",
		"Hats",
		"Scarves",
	},
	BandMild: {
		"Shirts",
		"T-Shirts",
		"Graphic Tees",
		"Jeans",
		"Skirts",
		"Mini Dresses",
		"Midi Dresses",
		"Sneakers",
		"Caps",
		"Sunglasses",
	},
	BandHot: {
		"T-Shirts",
		"Tank Tops",
		"Crop Tops",
		"Shorts",
		"Sandals",
		"Sunglasses",
		"Caps",
		"Hats",
	},
}

// Classify maps a temperature in degrees Fahrenheit to its band.
// Boundaries: 40 belongs to Chilly, 60 and 77 belong to Mild. Total over
// all inputs; every temperature maps to exactly one band.
func Classify(temperatureF float64) Band {
	switch {
	case temperatureF < 40:
		return BandCold
	case temperatureF < 60:
		return BandChilly
	case temperatureF <= 77:
		return BandMild
	default:
		return BandHot
	}
}

// EligibleSubcategories returns the subcategories suitable for the band.
func (b Band) EligibleSubcategories() []string {
	subs := bandSubcategories[b]
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}
