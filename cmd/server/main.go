package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/config"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/database"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/handlers"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/redis"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/repository"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize repositories
	branchRepo := repository.NewBranchRepository(db)
	itemRepo := repository.NewItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize services
	menuService := services.NewMenuService(itemRepo, branchRepo, redisClient,
		time.Duration(cfg.MenuCacheTTL)*time.Second)
	customerService := services.NewCustomerService(customerRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, itemRepo, branchRepo)
	kitchenService := services.NewKitchenService(ticketRepo)
	billingService := services.NewBillingService(transactionRepo, redisClient,
		time.Duration(cfg.BillCacheTTL)*time.Second)

	// Initialize handlers
	menuHandler := handlers.NewMenuHandler(menuService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService, kitchenService, billingService)

	// Setup routes
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Suchi's Restaurant Backend is running!")
	})

	// Branch and menu management
	router.POST("/branches", menuHandler.CreateBranch)
	router.GET("/branches", menuHandler.GetBranches)
	router.POST("/menu/add", menuHandler.AddMenuItem)
	router.GET("/menu/list/:branch_id", menuHandler.GetMenu)

	// Customer profiles
	router.POST("/customers", customerHandler.CreateCustomer)
	router.GET("/customers", customerHandler.GetCustomers)
	router.GET("/customers/:id", customerHandler.GetCustomer)

	// Inventory
	router.POST("/inventory", inventoryHandler.SetStock)
	router.GET("/inventory/low-stock/:branch_id", inventoryHandler.GetLowStock)

	// Orders, kitchen tickets and billing
	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.POST("/orders/:id/items", orderHandler.AddItem)
	router.GET("/orders/:id/items", orderHandler.GetOrderItems)
	router.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	router.POST("/orders/:id/bill", orderHandler.GenerateBill)
	router.GET("/orders/:id/bill", orderHandler.ViewBill)
	router.PUT("/kot/:id/complete", orderHandler.MarkTicketComplete)
	router.GET("/kot/pending/:branch_id", orderHandler.GetPendingTickets)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
