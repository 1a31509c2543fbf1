package repository

import (
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"gorm.io/gorm"
)

type BranchRepository interface {
	Create(branch *models.Branch) error
	GetByID(id uint) (*models.Branch, error)
	GetAll() ([]models.Branch, error)
}

type branchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(branch *models.Branch) error {
	return translate(r.db.Create(branch).Error)
}

func (r *branchRepository) GetByID(id uint) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &branch, nil
}

func (r *branchRepository) GetAll() ([]models.Branch, error) {
	var branches []models.Branch
	err := r.db.Order("id ASC").Find(&branches).Error
	return branches, translate(err)
}
