package handlers

import (
	"errors"
	"net/http"

	"soukcod/internal/controller/apperror"

	"github.com/gin-gonic/gin"
)

// actor returns the acting user id stored by the ActorRequired middleware.
func actor(c *gin.Context) string {
	return c.GetString("actor_id")
}

// respondError maps sentinel business errors onto HTTP statuses. Anything not
// recognised is a 500 with the error text.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperror.ErrOrderNotFound),
		errors.Is(err, apperror.ErrUserNotFound),
		errors.Is(err, apperror.ErrListingNotFound),
		errors.Is(err, apperror.ErrDisputeNotFound),
		errors.Is(err, apperror.ErrCodEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})

	case errors.Is(err, apperror.ErrForbidden),
		errors.Is(err, apperror.ErrAdminOnly):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})

	case errors.Is(err, apperror.ErrInvalidTransition),
		errors.Is(err, apperror.ErrCancellationDenied):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})

	case errors.Is(err, apperror.ErrOnlySellerCanAdvance),
		errors.Is(err, apperror.ErrOnlyBuyerCanConfirm),
		errors.Is(err, apperror.ErrInvalidOtp),
		errors.Is(err, apperror.ErrListingUnavailable),
		errors.Is(err, apperror.ErrSellerOwnListing),
		errors.Is(err, apperror.ErrInsufficientBalance),
		errors.Is(err, apperror.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
