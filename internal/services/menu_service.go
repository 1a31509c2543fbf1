package services

import (
	"errors"
	"log"
	"time"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/redis"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/repository"
)

type MenuService interface {
	CreateBranch(branch *models.Branch) error
	GetBranches() ([]models.Branch, error)
	AddMenuItem(item *models.Item) error
	GetMenu(branchID uint) ([]models.Item, error)
}

type menuService struct {
	itemRepo     repository.ItemRepository
	branchRepo   repository.BranchRepository
	cache        *redis.Client
	menuCacheTTL time.Duration
}

func NewMenuService(
	itemRepo repository.ItemRepository,
	branchRepo repository.BranchRepository,
	cache *redis.Client,
	menuCacheTTL time.Duration,
) MenuService {
	return &menuService{
		itemRepo:     itemRepo,
		branchRepo:   branchRepo,
		cache:        cache,
		menuCacheTTL: menuCacheTTL,
	}
}

func (s *menuService) CreateBranch(branch *models.Branch) error {
	if branch.Name == "" {
		return apperrors.ValidationError{Field: "name", Message: "branch name is required"}
	}
	return s.branchRepo.Create(branch)
}

func (s *menuService) GetBranches() ([]models.Branch, error) {
	return s.branchRepo.GetAll()
}

func (s *menuService) AddMenuItem(item *models.Item) error {
	if item.Name == "" {
		return apperrors.ValidationError{Field: "name", Message: "item name is required"}
	}
	if item.Price <= 0 {
		return apperrors.ValidationError{Field: "price", Message: "price must be greater than 0"}
	}
	if item.GSTRate < 0 || item.GSTRate > 100 {
		return apperrors.ValidationError{Field: "gst_rate", Message: "gst rate must be between 0 and 100"}
	}

	if _, err := s.branchRepo.GetByID(item.BranchID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ValidationError{Field: "branch_id", Message: "branch does not exist"}
		}
		return err
	}

	if err := s.itemRepo.Create(item); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateMenu(item.BranchID); err != nil {
			log.Printf("Warning: failed to invalidate menu cache for branch %d: %v", item.BranchID, err)
		}
	}
	return nil
}

func (s *menuService) GetMenu(branchID uint) ([]models.Item, error) {
	if s.cache != nil {
		items, err := s.cache.GetMenu(branchID)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			log.Printf("Warning: failed to read menu cache for branch %d: %v", branchID, err)
		}
	}

	items, err := s.itemRepo.GetByBranch(branchID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(branchID, items, s.menuCacheTTL); err != nil {
			log.Printf("Warning: failed to cache menu for branch %d: %v", branchID, err)
		}
	}
	return items, nil
}
