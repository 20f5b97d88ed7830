package http

import (
	"soukcod/internal/controller/http/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	order        handlers.OrderHandler
	dispute      handlers.DisputeHandler
	wallet       handlers.WalletHandler
	listing      handlers.ListingHandler
	notification handlers.NotificationHandler
}

func NewRouter(
	order handlers.OrderHandler,
	dispute handlers.DisputeHandler,
	wallet handlers.WalletHandler,
	listing handlers.ListingHandler,
	notification handlers.NotificationHandler,
) *Router {
	return &Router{
		order:        order,
		dispute:      dispute,
		wallet:       wallet,
		listing:      listing,
		notification: notification,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	api := engine.Group("/", ActorRequired())

	api.POST("/orders", r.order.Create)
	api.GET("/orders", r.order.List)
	api.GET("/orders/:order_id", r.order.Get)
	api.POST("/orders/:order_id/status", r.order.Advance)
	api.POST("/orders/:order_id/dispute", r.dispute.Open)

	api.GET("/disputes", r.dispute.List)
	api.GET("/disputes/:dispute_id", r.dispute.Get)
	api.POST("/disputes/:dispute_id/review", r.dispute.Review)
	api.POST("/disputes/:dispute_id/resolve", r.dispute.Resolve)

	api.GET("/wallet", r.wallet.Get)
	api.POST("/wallet/topup", r.wallet.TopUp)

	api.POST("/listings/:listing_id/bump", r.listing.Bump)

	api.GET("/notifications", r.notification.List)
}
