package model

import "github.com/shopspring/decimal"

// Product categories form a closed set; the database enforces the same
// set with a pg enum.
const (
	CategoryJewelry   = "jewelry"
	CategoryHomeDecor = "home_decor"
	CategoryCeramics  = "ceramics"
	CategoryTextiles  = "textiles"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryJewelry, CategoryHomeDecor, CategoryCeramics, CategoryTextiles:
		return true
	}
	return false
}

// Product is a catalog entry. Rating and ReviewCount are derived fields
// maintained by the review aggregation on every new review.
type Product struct {
	ProductID   int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Category    string          `json:"category"`
	InStock     bool            `json:"inStock"`
	Featured    bool            `json:"featured"`
	Rating      decimal.Decimal `json:"rating"`
	ReviewCount int             `json:"reviewCount"`
}
