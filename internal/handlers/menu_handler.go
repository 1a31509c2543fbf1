package handlers

import (
	"net/http"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

func (h *MenuHandler) CreateBranch(c *gin.Context) {
	var branch models.Branch
	if err := c.ShouldBindJSON(&branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.menuService.CreateBranch(&branch); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, branch)
}

func (h *MenuHandler) GetBranches(c *gin.Context) {
	branches, err := h.menuService.GetBranches()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, branches)
}

func (h *MenuHandler) AddMenuItem(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.menuService.AddMenuItem(&item); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) GetMenu(c *gin.Context) {
	branchID, ok := parseID(c, "branch_id")
	if !ok {
		return
	}

	items, err := h.menuService.GetMenu(branchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
