package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiquorInput_Normalize(t *testing.T) {
	t.Run("rating is clamped into [0,5]", func(t *testing.T) {
		assert.Equal(t, 0.0, LiquorInput{Rating: "-3"}.Normalize().Rating)
		assert.Equal(t, 5.0, LiquorInput{Rating: "9.7"}.Normalize().Rating)
		assert.Equal(t, 4.7, LiquorInput{Rating: "4.7"}.Normalize().Rating)
	})

	t.Run("non-numeric input becomes zero", func(t *testing.T) {
		l := LiquorInput{Harga: "", Diskon: "abc", Stok: "", Sold: "x"}.Normalize()
		assert.Equal(t, 0.0, l.Harga)
		assert.Equal(t, 0.0, l.Diskon)
		assert.Equal(t, 0, l.Stok)
		assert.Equal(t, 0, l.Sold)
	})

	t.Run("negative numbers are forced to zero", func(t *testing.T) {
		l := LiquorInput{Harga: "-250000", Stok: "-10", Sold: "-1"}.Normalize()
		assert.Equal(t, 0.0, l.Harga)
		assert.Equal(t, 0, l.Stok)
		assert.Equal(t, 0, l.Sold)
	})

	t.Run("diskon is clamped into [0,100]", func(t *testing.T) {
		assert.Equal(t, 100.0, LiquorInput{Diskon: "150"}.Normalize().Diskon)
		assert.Equal(t, 0.0, LiquorInput{Diskon: "-5"}.Normalize().Diskon)
		assert.Equal(t, 25.0, LiquorInput{Diskon: "25"}.Normalize().Diskon)
	})

	t.Run("full create payload keeps its values", func(t *testing.T) {
		l := LiquorInput{
			Nama:     "Old Fashioned Bourbon",
			Harga:    "250000",
			Stok:     "10",
			Kategori: "Whisky",
			Rating:   "4.7",
			Sold:     "0",
		}.Normalize()
		assert.Equal(t, "Old Fashioned Bourbon", l.Nama)
		assert.Equal(t, 250000.0, l.Harga)
		assert.Equal(t, 10, l.Stok)
		assert.Equal(t, "Whisky", l.Kategori)
		assert.Equal(t, 4.7, l.Rating)
		assert.Equal(t, 0, l.Sold)
	})
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Whisky", NormalizeCategory("Whisky"))
	assert.Equal(t, "Wine", NormalizeCategory(" wine "))
	assert.Equal(t, CategoryOthers, NormalizeCategory(""))
	assert.Equal(t, CategoryOthers, NormalizeCategory("Bensin"))
}
