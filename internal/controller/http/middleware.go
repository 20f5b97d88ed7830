package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ActorRequired pulls the acting user id from the X-User-Id header and stores
// it under "actor_id". Identity is assumed to be verified upstream; this
// service only needs the opaque id.
func ActorRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader("X-User-Id")
		if actorID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Missing X-User-Id header"})
			return
		}
		c.Set("actor_id", actorID)
		c.Next()
	}
}
