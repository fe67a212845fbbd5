// internal/models/seller.go
package models

import "time"

// Seller is the party offering one or more listings.
//
// AccountCount is a manually maintained counter: it is incremented by
// application code when a listing is created and is never recomputed from the
// actual listing rows, so it can drift from the true count.
type Seller struct {
	ID           string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt    time.Time `json:"created_at"`
	Name         string    `json:"name" gorm:"not null"`
	Rating       float64   `json:"rating" gorm:"default:0"`
	Verified     bool      `json:"verified" gorm:"default:false"`
	AccountCount int       `json:"account_count" gorm:"default:0"`
	Image        string    `json:"image"`
}

func (Seller) TableName() string {
	return "sellers"
}
