package handlers

import (
	"net/http"

	"soukcod/internal/domain/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	service *order.OrderService
}

func NewOrderHandler(s *order.OrderService) OrderHandler {
	return OrderHandler{service: s}
}

type createOrderRequest struct {
	ListingID string `json:"listing_id" binding:"required"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.service.Create(c, actor(c), req.ListingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	res, err := h.service.GetByID(c, orderID, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) List(c *gin.Context) {
	role := order.Role(c.DefaultQuery("role", string(order.RoleBuyer)))
	if role != order.RoleBuyer && role != order.RoleSeller {
		c.JSON(http.StatusBadRequest, gin.H{"message": "role must be buyer or seller"})
		return
	}

	res, err := h.service.List(c, actor(c), role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

type advanceRequest struct {
	Status string  `json:"status" binding:"required"`
	Otp    string  `json:"otp"`
	Note   *string `json:"note"`
}

func (h *OrderHandler) Advance(c *gin.Context) {
	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing order_id"})
		return
	}

	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status, err := order.NewStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	actorID := actor(c)
	res, err := h.service.Advance(c, orderID, actorID, order.AdvanceRequest{
		Status: status,
		Otp:    req.Otp,
		Note:   req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res.ForActor(actorID))
}
