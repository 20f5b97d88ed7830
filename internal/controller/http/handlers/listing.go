package handlers

import (
	"net/http"

	"soukcod/internal/domain/listing"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	service *listing.PromotionService
}

func NewListingHandler(s *listing.PromotionService) ListingHandler {
	return ListingHandler{service: s}
}

func (h *ListingHandler) Bump(c *gin.Context) {
	listingID := c.Param("listing_id")
	if listingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing listing_id"})
		return
	}

	res, err := h.service.Bump(c, listingID, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
