package services

import (
	"errors"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/apperrors"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/repository"
)

type OrderService interface {
	CreateOrder(branchID uint, orderType, tableNo string, customerID *uint) (*models.Order, error)
	AddItem(orderID, itemID uint, quantity int) (*models.KitchenTicket, error)
	UpdateStatus(orderID uint, newStatus string) error
	GetOrder(id uint) (*models.Order, error)
	GetOrderItems(orderID uint) ([]models.OrderItem, error)
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	itemRepo      repository.ItemRepository
	branchRepo    repository.BranchRepository
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	itemRepo repository.ItemRepository,
	branchRepo repository.BranchRepository,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		itemRepo:      itemRepo,
		branchRepo:    branchRepo,
	}
}

func (s *orderService) CreateOrder(branchID uint, orderType, tableNo string, customerID *uint) (*models.Order, error) {
	if branchID == 0 {
		return nil, apperrors.ValidationError{Field: "branch_id", Message: "branch is required"}
	}
	if orderType == "" {
		return nil, apperrors.ValidationError{Field: "order_type", Message: "order type is required"}
	}
	if !models.ValidOrderType(orderType) {
		return nil, apperrors.ValidationError{Field: "order_type", Message: "invalid order type"}
	}

	if _, err := s.branchRepo.GetByID(branchID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ValidationError{Field: "branch_id", Message: "branch does not exist"}
		}
		return nil, err
	}

	order := &models.Order{
		BranchID:   branchID,
		OrderType:  orderType,
		TableNo:    tableNo,
		CustomerID: customerID,
		Status:     string(models.OrderPending),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddItem attaches a menu item to an open order. The item's current
// price and GST rate are snapshotted onto the order item, and one
// kitchen ticket is written per call; attaching the same item twice
// yields two tickets.
func (s *orderService) AddItem(orderID, itemID uint, quantity int) (*models.KitchenTicket, error) {
	if quantity <= 0 {
		return nil, apperrors.ValidationError{Field: "quantity", Message: "quantity must be greater than 0"}
	}

	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, apperrors.ValidationError{Field: "item_id", Message: "item is not available"}
	}

	orderItem := &models.OrderItem{
		ItemID:   item.ID,
		Quantity: quantity,
		Price:    item.Price,
		GSTRate:  item.GSTRate,
	}
	ticket := &models.KitchenTicket{
		ItemID:   item.ID,
		Quantity: quantity,
		Status:   string(models.TicketPending),
	}

	// The repository locks the order row, re-checks it is still open and
	// writes both rows in one transaction.
	if err := s.orderRepo.AppendItem(orderID, orderItem, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *orderService) UpdateStatus(orderID uint, newStatus string) error {
	// BILLED is never reachable through a direct update; only billing
	// may set it, together with the transaction row.
	if newStatus == string(models.OrderBilled) {
		return apperrors.ErrIllegalTransition
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if !models.ValidStatusTransition(order.Status, newStatus) {
		return apperrors.ErrIllegalTransition
	}

	ok, err := s.orderRepo.CompareAndSwapStatus(orderID, []string{order.Status}, newStatus)
	if err != nil {
		return err
	}
	if !ok {
		// Lost a race: the order moved since we read it.
		return apperrors.ErrIllegalTransition
	}
	return nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetOrderItems(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.orderRepo.GetByID(orderID); err != nil {
		return nil, err
	}
	return s.orderItemRepo.GetByOrderID(orderID)
}
