package handlers

import (
	"net/http"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService services.InventoryService
}

func NewInventoryHandler(inventoryService services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) SetStock(c *gin.Context) {
	var entry models.Inventory
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.inventoryService.SetStock(&entry); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	branchID, ok := parseID(c, "branch_id")
	if !ok {
		return
	}

	entries, err := h.inventoryService.GetLowStock(branchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
