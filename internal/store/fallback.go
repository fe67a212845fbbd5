// internal/store/fallback.go
package store

import (
	"time"

	"github.com/lib/pq"

	"github.com/ffbazaar/ffbazaar-backend/internal/models"
)

// The fallback dataset is a fixed, hand-authored substitute for each table,
// served whenever the remote store errors or returns zero rows. Timestamps
// are pinned at process start so repeated calls return identical collections.
var fallbackSeededAt = time.Now().UTC().Truncate(time.Second)

const (
	fallbackSellerEliteID = "123e4567-e89b-12d3-a456-426614174000"
	fallbackSellerProID   = "123e4567-e89b-12d3-a456-426614174001"
)

// FallbackSellers returns a fresh copy of the seller fallback dataset,
// already in rating-descending order to match the store-requested ordering.
func FallbackSellers() []models.Seller {
	return []models.Seller{
		{
			ID:           fallbackSellerEliteID,
			CreatedAt:    fallbackSeededAt,
			Name:         "Elite Gaming Store",
			Rating:       4.9,
			Verified:     true,
			AccountCount: 156,
			Image:        "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			ID:           fallbackSellerProID,
			CreatedAt:    fallbackSeededAt,
			Name:         "Pro Gamer Shop",
			Rating:       4.7,
			Verified:     true,
			AccountCount: 89,
			Image:        "https://images.pexels.com/photos/2882566/pexels-photo-2882566.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
	}
}

// FallbackListings returns a fresh copy of the listing fallback dataset.
func FallbackListings() []models.Listing {
	return []models.Listing{
		{
			ID:        "123e4567-e89b-12d3-a456-426614174002",
			CreatedAt: fallbackSeededAt,
			Level:     75,
			Likes:     2,
			Platform:  string(models.PlatformFacebook),
			Price:     15000,
			Details:   "Level 75 account with rare skins and high-tier weapons.\n\n• Multiple legendary skins\n• Rare character collections\n• High K/D ratio\n• Tournament ready account",
			SellerID:  fallbackSellerEliteID,
			Outfits:   pq.StringArray{"Dragon Warrior", "Cyber Hunter", "Shadow Assassin"},
			OutfitCount: 3,
			Diamonds:  5000,
			Featured:  true,
			Images: pq.StringArray{
				"https://images.pexels.com/photos/2882566/pexels-photo-2882566.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
				"https://images.pexels.com/photos/3165335/pexels-photo-3165335.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
		},
		{
			ID:        "123e4567-e89b-12d3-a456-426614174003",
			CreatedAt: fallbackSeededAt.Add(-time.Hour),
			Level:     65,
			Likes:     1,
			Platform:  string(models.PlatformGmail),
			Price:     12000,
			Details:   "Level 65 account with exclusive items.\n\n• Rare weapon skins\n• Limited edition characters\n• Competitive stats\n• Perfect for serious players",
			SellerID:  fallbackSellerProID,
			Outfits:   pq.StringArray{"Neon Striker", "Arctic Warrior"},
			OutfitCount: 2,
			Diamonds:  3000,
			Featured:  false,
			Images: pq.StringArray{
				"https://images.pexels.com/photos/3165335/pexels-photo-3165335.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
		},
	}
}

// FallbackReviews returns a fresh copy of the review fallback dataset.
func FallbackReviews() []models.Review {
	johnAvatar := "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"
	janeAvatar := "https://images.pexels.com/photos/2882566/pexels-photo-2882566.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

	return []models.Review{
		{
			ID:        "123e4567-e89b-12d3-a456-426614174004",
			CreatedAt: fallbackSeededAt,
			Name:      "John Doe",
			Rating:    5,
			Comment:   "Excellent service and smooth transaction!",
			Avatar:    &johnAvatar,
		},
		{
			ID:        "123e4567-e89b-12d3-a456-426614174005",
			CreatedAt: fallbackSeededAt,
			Name:      "Jane Smith",
			Rating:    4,
			Comment:   "Great account, exactly as described.",
			Avatar:    &janeAvatar,
		},
	}
}
