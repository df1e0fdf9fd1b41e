package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workshop is a listed craft class. Read-only through the API.
type Workshop struct {
	WorkshopID     int64           `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	ImageURL       string          `json:"imageUrl"`
	Category       string          `json:"category"`
	Date           time.Time       `json:"date"`
	Price          decimal.Decimal `json:"price"`
	SpotsAvailable int             `json:"spotsAvailable"`
}
