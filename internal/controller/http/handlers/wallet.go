package handlers

import (
	"net/http"

	"soukcod/internal/domain/wallet"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	service *wallet.WalletService
}

func NewWalletHandler(s *wallet.WalletService) WalletHandler {
	return WalletHandler{service: s}
}

func (h *WalletHandler) Get(c *gin.Context) {
	res, err := h.service.GetWallet(c, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

type topUpRequest struct {
	AmountSDG int64  `json:"amount_sdg" binding:"required"`
	Method    string `json:"method"`
	ProofURL  string `json:"proof_url"`
}

func (h *WalletHandler) TopUp(c *gin.Context) {
	var req topUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	res, err := h.service.TopUp(c, actor(c), req.AmountSDG, req.Method, req.ProofURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
