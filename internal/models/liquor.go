package models

import (
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/spf13/cast"
)

// LiquorCategories est l'ensemble fermé des catégories. Toute valeur
// extérieure retombe sur CategoryOthers à l'écriture.
var LiquorCategories = []string{
	"Whisky",
	"Vodka",
	"Gin",
	"Rum",
	"Tequila",
	"Wine",
	"Cognac",
	"Liqueur",
	"Others",
}

const CategoryOthers = "Others"

type Liquor struct {
	ID        gocql.UUID `json:"id" db:"liquor_id"`
	Nama      string     `json:"nama" db:"nama"`
	Kategori  string     `json:"kategori" db:"kategori"`
	Harga     float64    `json:"harga" db:"harga"`
	Diskon    float64    `json:"diskon" db:"diskon"`
	Stok      int        `json:"stok" db:"stok"`
	Deskripsi string     `json:"deskripsi" db:"deskripsi"`
	Rating    float64    `json:"rating" db:"rating"`
	Sold      int        `json:"sold" db:"sold"`
	Gambar    string     `json:"gambar" db:"gambar"`
	GambarID  string     `json:"gambar_id" db:"gambar_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// LiquorInput porte les valeurs brutes du formulaire multipart telles que le
// dashboard les envoie. Tout arrive en string, Normalize fait la coercition.
type LiquorInput struct {
	Nama      string
	Harga     string
	Diskon    string
	Stok      string
	Deskripsi string
	Kategori  string
	Rating    string
	Sold      string
}

// Normalize convertit et borne les valeurs brutes en Liquor. Une valeur
// numérique invalide devient le défaut du champ au lieu d'être rejetée :
// harga/stok/sold forcés non-négatifs, diskon borné à [0, 100], rating à
// [0, 5]. Une kategori inconnue devient "Others".
func (in LiquorInput) Normalize() Liquor {
	return Liquor{
		Nama:      strings.TrimSpace(in.Nama),
		Kategori:  NormalizeCategory(in.Kategori),
		Harga:     clampFloat(cast.ToFloat64(strings.TrimSpace(in.Harga)), 0, 0),
		Diskon:    clampFloat(cast.ToFloat64(strings.TrimSpace(in.Diskon)), 0, 100),
		Stok:      clampInt(cast.ToInt(strings.TrimSpace(in.Stok))),
		Deskripsi: in.Deskripsi,
		Rating:    clampFloat(cast.ToFloat64(strings.TrimSpace(in.Rating)), 0, 5),
		Sold:      clampInt(cast.ToInt(strings.TrimSpace(in.Sold))),
	}
}

// NormalizeCategory ramène toute valeur hors de l'ensemble fermé sur "Others".
func NormalizeCategory(kategori string) string {
	kategori = strings.TrimSpace(kategori)
	for _, k := range LiquorCategories {
		if strings.EqualFold(k, kategori) {
			return k
		}
	}
	return CategoryOthers
}

// clampFloat borne v à [lo, hi]. hi == 0 signifie pas de borne supérieure.
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
