package wardrobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		expected    Band
	}{
		{"Well below freezing", -10, BandCold},
		{"Just below cold boundary", 39.999, BandCold},
		{"Cold boundary belongs to Chilly", 40, BandChilly},
		{"Middle of chilly range", 50, BandChilly},
		{"Just below mild boundary", 59.999, BandChilly},
		{"Chilly boundary belongs to Mild", 60, BandMild},
		{"Middle of mild range", 70, BandMild},
		{"Upper mild boundary is inclusive", 77, BandMild},
		{"Just above mild boundary", 77.001, BandHot},
		{"Heat wave", 100, BandHot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.temperature))
		})
	}
}

func TestClassifyColdSubcategories(t *testing.T) {
	// Every sub-40 temperature maps to Cold with the exact 9-item set
	expected := []string{
		"Sweaters",
		"Turtlenecks",
		"Thick Pants",
		"Sweater Dresses",
		"Coats",
		"Boots",
		"Scarves",
		"Gloves",
		"Hats",
	}

	for _, temp := range []float64{-40, 0, 20, 39.9} {
		band := Classify(temp)
		assert.Equal(t, BandCold, band)
		assert.Equal(t, expected, band.EligibleSubcategories())
	}
}

func TestEligibleSubcategoriesPerBand(t *testing.T) {
	assert.Len(t, BandCold.EligibleSubcategories(), 9)
	assert.Len(t, BandChilly.EligibleSubcategories(), 8)
	assert.Len(t, BandMild.EligibleSubcategories(), 10)
	assert.Len(t, BandHot.EligibleSubcategories(), 8)

	assert.Contains(t, BandChilly.EligibleSubcategories(), "Jackets & Bombers")
	assert.Contains(t, BandMild.EligibleSubcategories(), "Sneakers")
	assert.Contains(t, BandHot.EligibleSubcategories(), "Tank Tops")
	assert.NotContains(t, BandHot.EligibleSubcategories(), "Coats")
}

func TestEligibleSubcategoriesReturnsCopy(t *testing.T) {
	first := BandMild.EligibleSubcategories()
	first[0] = "mutated"

	second := BandMild.EligibleSubcategories()
	assert.Equal(t, "Shirts", second[0], "mutating a returned slice must not affect the band data")
}
