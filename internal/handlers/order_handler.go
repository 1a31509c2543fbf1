package handlers

import (
	"net/http"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService   services.OrderService
	kitchenService services.KitchenService
	billingService services.BillingService
}

func NewOrderHandler(
	orderService services.OrderService,
	kitchenService services.KitchenService,
	billingService services.BillingService,
) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		kitchenService: kitchenService,
		billingService: billingService,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		BranchID   uint   `json:"branch_id"`
		OrderType  string `json:"order_type"`
		TableNo    string `json:"table_no"`
		CustomerID *uint  `json:"customer_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.CreateOrder(req.BranchID, req.OrderType, req.TableNo, req.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order_id": order.ID,
		"status":   order.Status,
	})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ItemID   uint `json:"item_id"`
		Quantity int  `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ticket, err := h.orderService.AddItem(orderID, req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ticket_id": ticket.ID,
		"status":    ticket.Status,
	})
}

func (h *OrderHandler) GetOrderItems(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	items, err := h.orderService.GetOrderItems(orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderService.UpdateStatus(orderID, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"status":   req.Status,
	})
}

func (h *OrderHandler) MarkTicketComplete(c *gin.Context) {
	ticketID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.kitchenService.MarkComplete(ticketID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ticket_id": ticketID,
		"status":    "COMPLETED",
	})
}

func (h *OrderHandler) GetPendingTickets(c *gin.Context) {
	branchID, ok := parseID(c, "branch_id")
	if !ok {
		return
	}

	tickets, err := h.kitchenService.GetPendingTickets(branchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func (h *OrderHandler) GenerateBill(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		PaymentMethod string `json:"payment_method"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	txn, err := h.billingService.GenerateBill(orderID, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

func (h *OrderHandler) ViewBill(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	txn, err := h.billingService.ViewBill(orderID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, txn)
}
