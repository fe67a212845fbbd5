// internal/models/review.go
package models

import "time"

// Review is a customer testimonial. Reviews are read-only from the
// application's perspective; no create/update/delete surface exists.
type Review struct {
	ID        string    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	Avatar    *string   `json:"avatar"`
}

func (Review) TableName() string {
	return "reviews"
}
