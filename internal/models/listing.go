// internal/models/listing.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// Listing is a for-sale game account record. The authoritative copy lives in
// the hosted record store ("accounts" table); the application only ever holds
// a transient working copy per request.
type Listing struct {
	ID          string         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt   time.Time      `json:"created_at"`
	Level       int            `json:"level" gorm:"not null"`
	Likes       int            `json:"likes" gorm:"not null"`
	Platform    string         `json:"platform" gorm:"not null"`
	Price       int            `json:"price" gorm:"not null"`
	Details     string         `json:"details" gorm:"type:text"`
	SellerID    string         `json:"seller_id" gorm:"type:uuid;index"`
	Outfits     pq.StringArray `json:"outfits" gorm:"type:text[]"`
	OutfitCount int            `json:"outfit_count"`
	Diamonds    int            `json:"diamonds"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Sold        bool           `json:"sold" gorm:"default:false"`
}

func (Listing) TableName() string {
	return "accounts"
}

// CoverImage returns the primary image, or "" when the listing has none.
func (l *Listing) CoverImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}
