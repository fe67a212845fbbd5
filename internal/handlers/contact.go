// internal/handlers/contact.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ffbazaar/ffbazaar-backend/internal/config"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

type ContactHandler struct {
	cfg *config.Config
}

func NewContactHandler(cfg *config.Config) *ContactHandler {
	return &ContactHandler{cfg: cfg}
}

// GET /v1/contact/channels
func (h *ContactHandler) GetChannels(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"channels": []gin.H{
			{"type": "whatsapp", "value": h.cfg.Contact.WhatsApp},
			{"type": "email", "value": h.cfg.Contact.Email},
			{"type": "facebook", "value": h.cfg.Contact.Facebook},
		},
	})
}
