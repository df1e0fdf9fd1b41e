package model

import "time"

// Review is immutable once created.
type Review struct {
	ReviewID  int64      `json:"id"`
	ProductID int64      `json:"productId"`
	Name      string     `json:"name"`
	Location  *string    `json:"location,omitempty"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
