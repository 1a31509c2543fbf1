package migrations

import (
	"log"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/repository"

	"gorm.io/gorm"
)

// RunMigrations recreates the schema from scratch and seeds default data.
// Meant for development and first-time setup, not for live databases.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.Transaction{},
		&models.KitchenTicket{},
		&models.OrderItem{},
		&models.Order{},
		&models.Inventory{},
		&models.Customer{},
		&models.Item{},
		&models.Branch{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Branch{},
		&models.Item{},
		&models.Customer{},
		&models.Inventory{},
		&models.Order{},
		&models.OrderItem{},
		&models.KitchenTicket{},
		&models.Transaction{},
	)
	if err != nil {
		return err
	}

	// Create default data
	err = createDefaultData(db)
	if err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// createDefaultData seeds one branch and a starter menu so the system is
// usable right after setup.
func createDefaultData(db *gorm.DB) error {
	log.Println("Creating default data...")

	branchRepo := repository.NewBranchRepository(db)
	itemRepo := repository.NewItemRepository(db)

	branches, err := branchRepo.GetAll()
	if err != nil {
		return err
	}
	if len(branches) > 0 {
		log.Println("Default branch already exists")
		return nil
	}

	log.Println("Creating default branch...")
	branch := &models.Branch{
		Name:     "Suchi's Main Branch",
		Location: "MG Road",
	}
	if err := branchRepo.Create(branch); err != nil {
		return err
	}

	log.Println("Creating starter menu...")
	menu := []models.Item{
		{BranchID: branch.ID, Name: "Masala Dosa", Price: 120, GSTRate: 5, Category: "Tiffin", IsAvailable: true},
		{BranchID: branch.ID, Name: "Idli Vada", Price: 80, GSTRate: 5, Category: "Tiffin", IsAvailable: true},
		{BranchID: branch.ID, Name: "Veg Thali", Price: 250, GSTRate: 5, Category: "Meals", IsAvailable: true},
		{BranchID: branch.ID, Name: "Filter Coffee", Price: 40, GSTRate: 12, Category: "Beverages", IsAvailable: true},
	}
	for i := range menu {
		if err := itemRepo.Create(&menu[i]); err != nil {
			log.Printf("Warning: Failed to seed menu item %s: %v", menu[i].Name, err)
		}
	}

	log.Println("Default data created successfully!")
	return nil
}
